package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"yydbuild/internal/config"
	"yydbuild/internal/logging"
	"yydbuild/internal/services"
	"yydbuild/internal/services/pyinstaller"
	"yydbuild/internal/workspace"
)

// PackageStage invokes the packaging tool once and records the produced
// artifact on the run. The subprocess runs without a timeout; bundling time
// is workload-dependent and only context cancellation stops it early.
type PackageStage struct {
	packager pyinstaller.Packager
	cfg      *config.Config
	paths    workspace.Paths
	logger   *slog.Logger
}

// NewPackageStage constructs the packaging stage.
func NewPackageStage(packager pyinstaller.Packager, cfg *config.Config, paths workspace.Paths, logger *slog.Logger) *PackageStage {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &PackageStage{packager: packager, cfg: cfg, paths: paths, logger: logger}
}

func (s *PackageStage) Name() string { return "package" }

func (s *PackageStage) Execute(ctx context.Context, run *Run) error {
	logger := logging.WithContext(ctx, s.logger)

	if _, err := os.Stat(s.cfg.Build.SourceFile); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return services.Wrap(services.ErrPackaging, s.Name(), "locate source",
				"source file "+s.cfg.Build.SourceFile+" does not exist", nil)
		}
		return services.Wrap(services.ErrPackaging, s.Name(), "locate source", "", err)
	}

	req := pyinstaller.Request{
		SourceFile:     s.cfg.Build.SourceFile,
		ExecutableName: s.cfg.Build.ExecutableName,
		IconPath:       s.cfg.Build.IconPath,
		WorkspaceDir:   s.cfg.Build.WorkspaceDir,
		ArtifactPath:   s.paths.ArtifactPath(s.cfg),
	}
	if !s.cfg.HasIcon() {
		req.IconPath = ""
	}

	logger.Info("bundling application",
		logging.String("source", req.SourceFile),
		logging.String("name", req.ExecutableName),
		logging.Bool("icon", req.IconPath != ""),
	)

	result, err := s.packager.Package(ctx, req, func(line string) {
		logger.Debug(line)
	})
	if err != nil {
		run.Diagnostic = result.Diagnostic
		return services.Wrap(services.ErrPackaging, s.Name(), "pyinstaller", "bundling failed", err)
	}

	run.ArtifactPath = result.ArtifactPath
	logger.Info("artifact produced", logging.String("path", result.ArtifactPath))
	return nil
}

func (s *PackageStage) HealthCheck(ctx context.Context) Health {
	if _, err := os.Stat(s.cfg.Build.SourceFile); err != nil {
		return Unhealthy(s.Name(), "source file unavailable: "+s.cfg.Build.SourceFile)
	}
	return Healthy(s.Name())
}
