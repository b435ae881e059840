// Package logging assembles structured slog loggers and formatting helpers
// used across the build pipeline.
//
// It owns the console/JSON handlers, centralizes level plumbing, and exposes
// context-aware helpers so stage code can automatically tag log lines with
// run IDs and stage names. The package also provides a no-op logger for tests.
//
// Prefer these constructors over hand-rolled slog setup so new components
// emit data with the same shape as the rest of the tool.
package logging
