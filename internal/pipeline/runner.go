package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"yydbuild/internal/config"
	"yydbuild/internal/logging"
	"yydbuild/internal/services"
	"yydbuild/internal/services/pip"
	"yydbuild/internal/services/pyinstaller"
	"yydbuild/internal/workspace"
)

// Runner drives the ordered stage list and stops at the first failure. The
// pipeline is strictly acyclic and single-pass: no retries, no partial
// recovery.
type Runner struct {
	stages   []Handler
	lockPath string
	logger   *slog.Logger
}

// NewRunner constructs a runner over an explicit stage order.
func NewRunner(stages []Handler, lockPath string, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runner{stages: stages, lockPath: lockPath, logger: logger}
}

// NewDefault wires the standard provision, clean, and package stages from
// configuration.
func NewDefault(cfg *config.Config, paths workspace.Paths, logger *slog.Logger) (*Runner, error) {
	installer, err := pip.New(cfg.Python.Binary, cfg.Python.PipArgs)
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "pipeline", "pip client", "", err)
	}
	packager, err := pyinstaller.New(cfg.Python.Binary)
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "pipeline", "pyinstaller client", "", err)
	}

	stages := []Handler{
		NewProvisionStage(installer, cfg.Python.Binary, logger),
		NewCleanStage(paths, logger),
		NewPackageStage(packager, cfg, paths, logger),
	}
	return NewRunner(stages, paths.LockFile, logger), nil
}

// Run executes the pipeline once and returns the run state together with the
// first stage error, if any. The workspace lock guarantees exclusive
// ownership of build/ and dist/ for the whole run.
func (r *Runner) Run(ctx context.Context) (*Run, error) {
	run := &Run{ID: uuid.NewString()}
	ctx = services.WithRunID(ctx, run.ID)

	if r.lockPath != "" {
		lock := flock.New(r.lockPath)
		ok, err := lock.TryLock()
		if err != nil {
			return run, services.Wrap(services.ErrValidation, "pipeline", "acquire workspace lock", "", err)
		}
		if !ok {
			return run, services.Wrap(services.ErrValidation, "pipeline", "acquire workspace lock",
				"another build is already running in this workspace", nil)
		}
		defer lock.Unlock() //nolint:errcheck
	}

	for _, stage := range r.stages {
		stageCtx := services.WithStage(ctx, stage.Name())
		logger := logging.WithContext(stageCtx, r.logger)

		logger.Info("stage started")
		start := time.Now()
		err := stage.Execute(stageCtx, run)
		elapsed := time.Since(start)
		run.record(stage.Name(), elapsed, err)

		if err != nil {
			logger.Error("stage failed", logging.Error(err), logging.Duration("elapsed", elapsed))
			return run, err
		}
		logger.Info("stage completed", logging.Duration("elapsed", elapsed))
	}
	return run, nil
}

// HealthChecks reports stage readiness without executing anything.
func (r *Runner) HealthChecks(ctx context.Context) []Health {
	results := make([]Health, 0, len(r.stages))
	for _, stage := range r.stages {
		results = append(results, stage.HealthCheck(ctx))
	}
	return results
}
