package preflight

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"yydbuild/internal/config"
	"yydbuild/internal/deps"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes every preflight check for the given config. These checks
// feed the status command only; the build pipeline itself provisions
// unconditionally rather than probing first.
func RunAll(ctx context.Context, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	results := make([]Result, 0, 4)
	for _, status := range deps.CheckBinaries(deps.Requirements(cfg.Python.Binary)) {
		results = append(results, Result{Name: status.Name, Passed: status.Available, Detail: status.Detail})
	}
	results = append(results, CheckPipModule(ctx, cfg.Python.Binary))
	results = append(results, CheckSourceFile(cfg.Build.SourceFile))
	results = append(results, CheckWorkspaceAccess(cfg.Build.WorkspaceDir))
	return results
}

// CheckPipModule verifies the interpreter can load pip. Provisioning runs
// "python -m pip", so a present interpreter with a stripped-down install
// (no ensurepip) would still fail later without this hint.
func CheckPipModule(ctx context.Context, pythonBinary string) Result {
	const name = "pip"

	binary := strings.TrimSpace(pythonBinary)
	if binary == "" {
		return Result{Name: name, Detail: "python binary not configured"}
	}

	checkCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	out, err := exec.CommandContext(checkCtx, binary, "-m", "pip", "--version").CombinedOutput() //nolint:gosec
	if err != nil {
		detail := strings.TrimSpace(string(out))
		if detail == "" {
			detail = err.Error()
		}
		return Result{Name: name, Detail: detail}
	}
	return Result{Name: name, Passed: true, Detail: strings.TrimSpace(string(out))}
}

// CheckSourceFile verifies the application entry point exists and is a
// regular file.
func CheckSourceFile(path string) Result {
	const name = "Source file"

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is a directory)", path)}
	}
	return Result{Name: name, Passed: true, Detail: path}
}

// CheckWorkspaceAccess verifies the workspace directory exists and is
// readable/writable, since the cleaner and packager both own it in turn.
func CheckWorkspaceAccess(path string) Result {
	const name = "Workspace"

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := accessReadWrite(path); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}
