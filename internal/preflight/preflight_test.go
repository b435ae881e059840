package preflight_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"yydbuild/internal/config"
	"yydbuild/internal/preflight"
)

func TestCheckSourceFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.py")

	result := preflight.CheckSourceFile(path)
	if result.Passed {
		t.Fatal("missing source file must not pass")
	}

	if err := os.WriteFile(path, []byte("print('hi')\n"), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	result = preflight.CheckSourceFile(path)
	if !result.Passed {
		t.Fatalf("expected pass for existing file, got %q", result.Detail)
	}

	result = preflight.CheckSourceFile(dir)
	if result.Passed {
		t.Fatal("directory must not pass as source file")
	}
}

func TestCheckWorkspaceAccess(t *testing.T) {
	dir := t.TempDir()
	result := preflight.CheckWorkspaceAccess(dir)
	if !result.Passed {
		t.Fatalf("expected writable temp dir to pass, got %q", result.Detail)
	}

	result = preflight.CheckWorkspaceAccess(filepath.Join(dir, "absent"))
	if result.Passed {
		t.Fatal("missing workspace must not pass")
	}
}

func TestCheckPipModuleBlankBinary(t *testing.T) {
	result := preflight.CheckPipModule(context.Background(), "  ")
	if result.Passed {
		t.Fatal("blank python binary must not pass")
	}
}

func TestRunAllReportsEveryCheck(t *testing.T) {
	cfg := config.Default()
	cfg.Build.WorkspaceDir = t.TempDir()
	cfg.Build.SourceFile = filepath.Join(cfg.Build.WorkspaceDir, "app.py")
	cfg.Python.Binary = "definitely-not-a-python"

	results := preflight.RunAll(context.Background(), &cfg)
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	for _, r := range results[:2] {
		if r.Passed {
			t.Fatalf("check %s should fail with bogus interpreter", r.Name)
		}
	}
}
