package pipeline

import (
	"context"
	"log/slog"

	"yydbuild/internal/deps"
	"yydbuild/internal/logging"
	"yydbuild/internal/services"
	"yydbuild/internal/services/pip"
)

// pyinstallerPackage is the pip distribution name of the packaging tool.
const pyinstallerPackage = "pyinstaller"

// ProvisionStage guarantees the packaging tool is installed before later
// stages run. It upgrades unconditionally rather than probing first; pip is
// idempotent and this runs once per build, not per iteration.
type ProvisionStage struct {
	installer pip.Installer
	python    string
	logger    *slog.Logger
}

// NewProvisionStage constructs the provisioning stage.
func NewProvisionStage(installer pip.Installer, pythonBinary string, logger *slog.Logger) *ProvisionStage {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &ProvisionStage{installer: installer, python: pythonBinary, logger: logger}
}

func (s *ProvisionStage) Name() string { return "provision" }

func (s *ProvisionStage) Execute(ctx context.Context, run *Run) error {
	logger := logging.WithContext(ctx, s.logger)
	logger.Info("ensuring packaging tool is installed", logging.String("package", pyinstallerPackage))

	err := s.installer.EnsureInstalled(ctx, pyinstallerPackage, func(line string) {
		logger.Debug(line)
	})
	if err != nil {
		return services.Wrap(services.ErrProvisioning, s.Name(), "pip install",
			"could not install the packaging tool; check network access and the package index", err)
	}
	return nil
}

func (s *ProvisionStage) HealthCheck(ctx context.Context) Health {
	statuses := deps.CheckBinaries(deps.Requirements(s.python))
	for _, status := range statuses {
		if !status.Available {
			return Unhealthy(s.Name(), status.Detail)
		}
	}
	return Healthy(s.Name())
}
