package pipeline

import (
	"context"
	"time"
)

// Handler describes the contract the runner needs from each stage.
type Handler interface {
	Name() string
	Execute(ctx context.Context, run *Run) error
	HealthCheck(ctx context.Context) Health
}

// Run carries the state of one build through the pipeline. It lives for the
// process lifetime only; nothing persists between runs.
type Run struct {
	ID           string
	ArtifactPath string
	Diagnostic   string
	Outcomes     []Outcome
}

// Outcome records how a single stage ended.
type Outcome struct {
	Stage    string
	Duration time.Duration
	Err      error
}

// record appends a stage outcome to the run.
func (r *Run) record(stage string, duration time.Duration, err error) {
	r.Outcomes = append(r.Outcomes, Outcome{Stage: stage, Duration: duration, Err: err})
}
