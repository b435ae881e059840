package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"yydbuild/internal/config"
)

// Paths holds every filesystem location a build run touches. All fields are
// absolute once derived.
type Paths struct {
	Root     string
	BuildDir string
	DistDir  string
	SpecFile string
	LockFile string
}

// Derive computes workspace paths from the configured workspace root and
// executable name. PyInstaller writes intermediates to build/, the artifact
// to dist/, and a <name>.spec manifest next to the source.
func Derive(cfg *config.Config) Paths {
	root := cfg.Build.WorkspaceDir
	return Paths{
		Root:     root,
		BuildDir: filepath.Join(root, "build"),
		DistDir:  filepath.Join(root, "dist"),
		SpecFile: filepath.Join(root, cfg.Build.ExecutableName+".spec"),
		LockFile: filepath.Join(root, ".yydbuild.lock"),
	}
}

// ArtifactPath returns the absolute path where the packager is expected to
// leave the executable.
func (p Paths) ArtifactPath(cfg *config.Config) string {
	return filepath.Join(p.DistDir, cfg.ArtifactName())
}

// Clean removes stale build output from a previous run. Missing paths are a
// no-op; any removal failure aborts, since proceeding would risk mixing
// artifacts from two builds.
func (p Paths) Clean() error {
	for _, target := range []string{p.BuildDir, p.DistDir, p.SpecFile} {
		if err := os.RemoveAll(target); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("remove %s: %w", target, err)
		}
	}
	return nil
}

// StaleTargets lists the paths Clean would remove that currently exist.
func (p Paths) StaleTargets() []string {
	var present []string
	for _, target := range []string{p.BuildDir, p.DistDir, p.SpecFile} {
		if _, err := os.Stat(target); err == nil {
			present = append(present, target)
		}
	}
	return present
}
