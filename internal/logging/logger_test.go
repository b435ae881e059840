package logging_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"yydbuild/internal/logging"
	"yydbuild/internal/services"
)

func TestNewConsoleFormatsStageAndMessage(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("stage started", logging.String(logging.FieldStage, "clean"))

	line := buf.String()
	if !strings.Contains(line, "[clean]") {
		t.Fatalf("expected stage marker in output, got %q", line)
	}
	if !strings.Contains(line, "stage started") {
		t.Fatalf("expected message in output, got %q", line)
	}
}

func TestNewConsoleRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("suppressed")
	logger.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "suppressed") {
		t.Fatalf("info line should have been suppressed: %q", out)
	}
	if !strings.Contains(out, "kept") {
		t.Fatalf("warn line missing: %q", out)
	}
}

func TestNewJSONLowercasesLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Error("bundling failed")

	out := buf.String()
	if !strings.Contains(out, `"level":"error"`) {
		t.Fatalf("expected lowercase level key, got %q", out)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestWithContextStampsRunFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	ctx := services.WithRunID(context.Background(), "0123456789abcdef")
	ctx = services.WithStage(ctx, "package")

	logging.WithContext(ctx, logger).Info("invoking packager")

	line := buf.String()
	if !strings.Contains(line, "[package]") {
		t.Fatalf("expected stage from context, got %q", line)
	}
	if !strings.Contains(line, "run=01234567") {
		t.Fatalf("expected truncated run id, got %q", line)
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := logging.NewNop()
	logger.Error("should not panic or write")
}
