package pip

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"
)

// Installer defines the behaviour required by the provisioning stage.
type Installer interface {
	EnsureInstalled(ctx context.Context, pkg string, onOutput func(string)) error
}

// Executor abstracts command execution for testability.
type Executor interface {
	Run(ctx context.Context, binary string, args []string, onOutput func(string)) error
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

// Client wraps pip interactions through the configured Python interpreter.
type Client struct {
	python    string
	extraArgs []string
	exec      Executor
}

// New constructs a pip client. Installation goes through "python -m pip" so
// the package lands in the same interpreter that later runs PyInstaller.
func New(python string, extraArgs []string, opts ...Option) (*Client, error) {
	python = strings.TrimSpace(python)
	if python == "" {
		return nil, errors.New("python binary required")
	}
	client := &Client{
		python:    python,
		extraArgs: append([]string(nil), extraArgs...),
		exec:      commandExecutor{},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// EnsureInstalled installs or upgrades the package unconditionally. pip is
// idempotent when the package is already current, so no probe runs first.
func (c *Client) EnsureInstalled(ctx context.Context, pkg string, onOutput func(string)) error {
	pkg = strings.TrimSpace(pkg)
	if pkg == "" {
		return errors.New("package name required")
	}

	args := []string{"-m", "pip", "install", "--upgrade", pkg}
	args = append(args, c.extraArgs...)

	if err := c.exec.Run(ctx, c.python, args, onOutput); err != nil {
		return fmt.Errorf("pip install %s: %w", pkg, err)
	}
	return nil
}

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, binary string, args []string, onOutput func(string)) error {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
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

var _ Installer = (*Client)(nil)
