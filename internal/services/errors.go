package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrProvisioning  = errors.New("provisioning error")
	ErrCleanup       = errors.New("cleanup error")
	ErrPackaging     = errors.New("packaging error")
	ErrValidation    = errors.New("validation error")
	ErrConfiguration = errors.New("configuration error")
)

// Wrap builds an error message that includes stage context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrPackaging
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// StageLabel maps a tagged error to the pipeline stage that produced it, or
// "pipeline" when the marker is unknown.
func StageLabel(err error) string {
	switch {
	case errors.Is(err, ErrProvisioning):
		return "provision"
	case errors.Is(err, ErrCleanup):
		return "clean"
	case errors.Is(err, ErrPackaging):
		return "package"
	case errors.Is(err, ErrValidation), errors.Is(err, ErrConfiguration):
		return "configuration"
	default:
		return "pipeline"
	}
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
