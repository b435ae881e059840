package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"yydbuild/internal/logging"
	"yydbuild/internal/pipeline"
	"yydbuild/internal/report"
	"yydbuild/internal/services"
	"yydbuild/internal/workspace"
)

// errReported marks failures the reporter already presented to the user, so
// main does not print them a second time.
var errReported = errors.New("build failed")

func newBuildCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Run the full packaging pipeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, ctx)
		},
	}
}

func runBuild(cmd *cobra.Command, cmdCtx *commandContext) error {
	cfg, err := cmdCtx.ensureConfig()
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	paths := workspace.Derive(cfg)
	runner, err := pipeline.NewDefault(cfg, paths, logger)
	if err != nil {
		return err
	}

	runCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reporter := report.New(logger, report.WithOutput(cmd.OutOrStdout()))

	run, runErr := runner.Run(runCtx)
	if runErr != nil {
		logger.Error("pipeline failed",
			logging.String("stage", services.StageLabel(runErr)),
			logging.Error(runErr),
		)
		reporter.Failure(runErr, run.Diagnostic)
		return errReported
	}

	reporter.Success(run.ArtifactPath)
	return nil
}
