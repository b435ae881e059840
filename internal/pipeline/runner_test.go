package pipeline_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/gofrs/flock"

	"yydbuild/internal/pipeline"
)

type stubStage struct {
	name  string
	err   error
	log   *[]string
	ready bool
}

func (s *stubStage) Name() string { return s.name }

func (s *stubStage) Execute(ctx context.Context, run *pipeline.Run) error {
	*s.log = append(*s.log, s.name)
	return s.err
}

func (s *stubStage) HealthCheck(ctx context.Context) pipeline.Health {
	if s.ready {
		return pipeline.Healthy(s.name)
	}
	return pipeline.Unhealthy(s.name, "not ready")
}

func TestRunExecutesStagesInOrder(t *testing.T) {
	var log []string
	runner := pipeline.NewRunner([]pipeline.Handler{
		&stubStage{name: "provision", log: &log},
		&stubStage{name: "clean", log: &log},
		&stubStage{name: "package", log: &log},
	}, "", nil)

	run, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if run.ID == "" {
		t.Fatal("expected run id to be assigned")
	}

	want := []string{"provision", "clean", "package"}
	if len(log) != len(want) {
		t.Fatalf("unexpected execution log: %v", log)
	}
	for i, name := range want {
		if log[i] != name {
			t.Fatalf("stage %d: got %q, want %q", i, log[i], name)
		}
	}
	if len(run.Outcomes) != 3 {
		t.Fatalf("expected 3 outcomes, got %d", len(run.Outcomes))
	}
}

func TestRunStopsAtFirstFailure(t *testing.T) {
	var log []string
	boom := errors.New("index unreachable")
	runner := pipeline.NewRunner([]pipeline.Handler{
		&stubStage{name: "provision", log: &log, err: boom},
		&stubStage{name: "clean", log: &log},
		&stubStage{name: "package", log: &log},
	}, "", nil)

	_, err := runner.Run(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected provisioning error, got %v", err)
	}
	if len(log) != 1 || log[0] != "provision" {
		t.Fatalf("later stages must not execute after a failure, log: %v", log)
	}
}

func TestRunFailsWhenWorkspaceLocked(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), ".yydbuild.lock")
	held := flock.New(lockPath)
	ok, err := held.TryLock()
	if err != nil || !ok {
		t.Fatalf("could not take test lock: %v %v", ok, err)
	}
	defer held.Unlock() //nolint:errcheck

	var log []string
	runner := pipeline.NewRunner([]pipeline.Handler{
		&stubStage{name: "provision", log: &log},
	}, lockPath, nil)

	if _, err := runner.Run(context.Background()); err == nil {
		t.Fatal("expected lock contention error")
	}
	if len(log) != 0 {
		t.Fatalf("no stage should run while the workspace is locked, log: %v", log)
	}
}

func TestHealthChecks(t *testing.T) {
	var log []string
	runner := pipeline.NewRunner([]pipeline.Handler{
		&stubStage{name: "provision", log: &log, ready: true},
		&stubStage{name: "package", log: &log},
	}, "", nil)

	checks := runner.HealthChecks(context.Background())
	if len(checks) != 2 {
		t.Fatalf("expected 2 health results, got %d", len(checks))
	}
	if !checks[0].Ready || checks[1].Ready {
		t.Fatalf("unexpected readiness: %+v", checks)
	}
	if len(log) != 0 {
		t.Fatal("health checks must not execute stages")
	}
}
