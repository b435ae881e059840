package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeBuild(); err != nil {
		return err
	}
	c.normalizePython()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeBuild() error {
	var err error
	if strings.TrimSpace(c.Build.WorkspaceDir) == "" {
		c.Build.WorkspaceDir = defaultWorkspaceDir
	}
	if c.Build.WorkspaceDir, err = expandPath(c.Build.WorkspaceDir); err != nil {
		return fmt.Errorf("build.workspace_dir: %w", err)
	}

	c.Build.SourceFile = strings.TrimSpace(c.Build.SourceFile)
	if c.Build.SourceFile != "" && !filepath.IsAbs(c.Build.SourceFile) {
		c.Build.SourceFile = filepath.Join(c.Build.WorkspaceDir, c.Build.SourceFile)
	}

	c.Build.ExecutableName = strings.TrimSpace(c.Build.ExecutableName)

	c.Build.IconPath = strings.TrimSpace(c.Build.IconPath)
	if c.Build.IconPath != "" {
		if c.Build.IconPath, err = expandPath(c.Build.IconPath); err != nil {
			return fmt.Errorf("build.icon_path: %w", err)
		}
	}
	return nil
}

func (c *Config) normalizePython() {
	c.Python.Binary = strings.TrimSpace(c.Python.Binary)
	if c.Python.Binary == "" {
		c.Python.Binary = defaultPythonBinary
	}
	args := make([]string, 0, len(c.Python.PipArgs))
	for _, arg := range c.Python.PipArgs {
		if trimmed := strings.TrimSpace(arg); trimmed != "" {
			args = append(args, trimmed)
		}
	}
	c.Python.PipArgs = args
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
