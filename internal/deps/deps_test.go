package deps

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCheckBinaries(t *testing.T) {
	binDir := t.TempDir()
	present := filepath.Join(binDir, "present")
	script := []byte("#!/bin/sh\nexit 0\n")
	if err := os.WriteFile(present, script, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	reqs := []Requirement{
		{Name: "Present", Command: present},
		{Name: "Missing", Command: "clearly-not-present-binary"},
	}

	results := CheckBinaries(reqs)
	if len(results) != len(reqs) {
		t.Fatalf("expected %d results, got %d", len(reqs), len(results))
	}

	if !results[0].Available {
		t.Fatalf("expected first requirement to be available, got %#v", results[0])
	}
	if results[1].Available {
		t.Fatalf("expected missing binary to be unavailable")
	}
	if results[1].Detail == "" {
		t.Fatalf("expected detail message for missing binary")
	}
}

func TestCheckBinariesBlankCommand(t *testing.T) {
	results := CheckBinaries([]Requirement{{Name: "Blank", Command: "  "}})
	if results[0].Available {
		t.Fatal("blank command must not report available")
	}
	if results[0].Detail != "command not configured" {
		t.Fatalf("unexpected detail: %q", results[0].Detail)
	}
}

func TestRequirementsListsPythonOnly(t *testing.T) {
	reqs := Requirements("python3")
	if len(reqs) != 1 {
		t.Fatalf("expected a single requirement, got %d", len(reqs))
	}
	if reqs[0].Command != "python3" {
		t.Fatalf("unexpected command: %q", reqs[0].Command)
	}
}
