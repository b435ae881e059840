package pipeline

import (
	"context"
	"log/slog"

	"yydbuild/internal/logging"
	"yydbuild/internal/services"
	"yydbuild/internal/workspace"
)

// CleanStage removes stale output from previous builds so nothing can leak
// into the new artifact. A failed removal aborts the pipeline; continuing
// would risk mixing artifacts from two builds.
type CleanStage struct {
	paths  workspace.Paths
	logger *slog.Logger
}

// NewCleanStage constructs the workspace cleaning stage.
func NewCleanStage(paths workspace.Paths, logger *slog.Logger) *CleanStage {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &CleanStage{paths: paths, logger: logger}
}

func (s *CleanStage) Name() string { return "clean" }

func (s *CleanStage) Execute(ctx context.Context, run *Run) error {
	logger := logging.WithContext(ctx, s.logger)

	stale := s.paths.StaleTargets()
	if len(stale) == 0 {
		logger.Info("workspace already clean")
		return nil
	}
	for _, target := range stale {
		logger.Info("removing stale build output", logging.String("path", target))
	}

	if err := s.paths.Clean(); err != nil {
		return services.Wrap(services.ErrCleanup, s.Name(), "remove stale output",
			"close any running copy of a previously built executable and retry", err)
	}
	return nil
}

func (s *CleanStage) HealthCheck(ctx context.Context) Health {
	return Healthy(s.Name())
}
