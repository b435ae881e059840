package pyinstaller

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
)

// diagnosticTailLines bounds how much tool output a failure report carries.
const diagnosticTailLines = 40

// Request describes one packaging invocation. ArtifactPath is where the
// caller expects the executable to land; the client verifies it after a
// successful run.
type Request struct {
	SourceFile     string
	ExecutableName string
	IconPath       string
	WorkspaceDir   string
	ArtifactPath   string
}

// Result is the typed outcome of a packaging run: the produced artifact on
// success, the tool's verbatim diagnostic tail on failure.
type Result struct {
	ArtifactPath string
	Diagnostic   string
}

// Packager defines the behaviour required by the packaging stage.
type Packager interface {
	Package(ctx context.Context, req Request, onOutput func(string)) (Result, error)
}

// Executor abstracts command execution for testability.
type Executor interface {
	Run(ctx context.Context, binary string, args []string, dir string, onOutput func(string)) error
}

// Option configures the client.
type Option func(*Client)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(c *Client) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// Client wraps PyInstaller invocations. The module is run through the
// configured Python interpreter so the binary provisioned by pip is the one
// that executes, regardless of PATH ordering.
type Client struct {
	python string
	exec   Executor
}

// New constructs a PyInstaller client.
func New(python string, opts ...Option) (*Client, error) {
	python = strings.TrimSpace(python)
	if python == "" {
		return nil, errors.New("python binary required")
	}
	client := &Client{python: python, exec: commandExecutor{}}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Package bundles the source file into a single windowed executable. The
// packaging process is not subject to any timeout; bundling time is
// workload-dependent and cancellation comes only from ctx.
func (c *Client) Package(ctx context.Context, req Request, onOutput func(string)) (Result, error) {
	if strings.TrimSpace(req.SourceFile) == "" {
		return Result{}, errors.New("source file required")
	}
	if strings.TrimSpace(req.ExecutableName) == "" {
		return Result{}, errors.New("executable name required")
	}
	if strings.TrimSpace(req.ArtifactPath) == "" {
		return Result{}, errors.New("artifact path required")
	}

	args := buildArgs(req)

	var tail diagnosticTail
	err := c.exec.Run(ctx, c.python, args, req.WorkspaceDir, func(line string) {
		tail.add(line)
		if onOutput != nil {
			onOutput(line)
		}
	})
	if err != nil {
		return Result{Diagnostic: tail.String()}, fmt.Errorf("pyinstaller: %w", err)
	}

	if _, statErr := os.Stat(req.ArtifactPath); errors.Is(statErr, os.ErrNotExist) {
		return Result{Diagnostic: tail.String()}, fmt.Errorf("pyinstaller reported success but %s is missing", req.ArtifactPath)
	}
	return Result{ArtifactPath: req.ArtifactPath}, nil
}

// buildArgs assembles the fixed bundling flags. The icon flag is omitted
// entirely when no icon is configured; an empty --icon argument would be a
// distinct failure mode from "no icon requested".
func buildArgs(req Request) []string {
	args := []string{
		"-m", "PyInstaller",
		"--onefile",
		"--noconsole",
		"--name", req.ExecutableName,
	}
	if icon := strings.TrimSpace(req.IconPath); icon != "" {
		args = append(args, "--icon", icon)
	}
	args = append(args, req.SourceFile)
	return args
}

// diagnosticTail keeps the last lines of tool output so packaging failures
// can surface PyInstaller's own explanation verbatim.
type diagnosticTail struct {
	lines []string
}

func (t *diagnosticTail) add(line string) {
	t.lines = append(t.lines, line)
	if len(t.lines) > diagnosticTailLines {
		t.lines = t.lines[len(t.lines)-diagnosticTailLines:]
	}
}

func (t *diagnosticTail) String() string {
	return strings.Join(t.lines, "\n")
}

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, binary string, args []string, dir string, onOutput func(string)) error {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	cmd.Dir = dir
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("stderr pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start command: %w", err)
	}

	var wg sync.WaitGroup
	scan := func(r io.Reader) {
		defer wg.Done()
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			if onOutput != nil {
				onOutput(scanner.Text())
			}
		}
	}
	wg.Add(2)
	go scan(stdout)
	go scan(stderr)
	wg.Wait()

	return cmd.Wait()
}

var _ Packager = (*Client)(nil)
