package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"yydbuild/internal/config"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, _, exists, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected missing config file")
	}
	if cfg.Build.ExecutableName == "" {
		t.Fatal("expected default executable name")
	}
	if !strings.HasSuffix(cfg.Build.SourceFile, "yydb.py") {
		t.Fatalf("expected default source file, got %q", cfg.Build.SourceFile)
	}
	if cfg.Python.Binary != "python" {
		t.Fatalf("expected default python binary, got %q", cfg.Python.Binary)
	}
}

func TestLoadAppliesFileOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "yydbuild.toml")
	content := `
[build]
source_file = "app.py"
executable_name = "App"
workspace_dir = "` + strings.ReplaceAll(dir, `\`, `\\`) + `"

[python]
binary = "python3"

[logging]
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to be detected")
	}
	if resolved != path {
		t.Fatalf("unexpected resolved path: %q", resolved)
	}
	if cfg.Build.ExecutableName != "App" {
		t.Fatalf("unexpected executable name: %q", cfg.Build.ExecutableName)
	}
	if cfg.Build.SourceFile != filepath.Join(dir, "app.py") {
		t.Fatalf("expected source file under workspace, got %q", cfg.Build.SourceFile)
	}
	if cfg.Python.Binary != "python3" {
		t.Fatalf("unexpected python binary: %q", cfg.Python.Binary)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected log level: %q", cfg.Logging.Level)
	}
}

func TestLoadRejectsInvalidExecutableName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "yydbuild.toml")
	content := `
[build]
executable_name = "dist/App"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected validation error for path-like executable name")
	}
}

func TestLoadRejectsUnknownLogFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "yydbuild.toml")
	content := `
[logging]
format = "xml"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected validation error for unknown log format")
	}
}

func TestHasIcon(t *testing.T) {
	cfg := config.Default()
	if cfg.HasIcon() {
		t.Fatal("default config should not have an icon")
	}
	cfg.Build.IconPath = "  "
	if cfg.HasIcon() {
		t.Fatal("whitespace icon path should not count as configured")
	}
	cfg.Build.IconPath = "app.ico"
	if !cfg.HasIcon() {
		t.Fatal("expected icon to be reported as configured")
	}
}

func TestCreateSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[build]") {
		t.Fatalf("sample config missing build section: %q", string(data))
	}

	// The sample must round-trip through Load without validation errors.
	if _, _, _, err := config.Load(target); err != nil {
		t.Fatalf("sample config failed to load: %v", err)
	}
}
