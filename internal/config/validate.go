package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateBuild(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateBuild() error {
	if c.Build.SourceFile == "" {
		return errors.New("build.source_file must be set")
	}
	if c.Build.ExecutableName == "" {
		return errors.New("build.executable_name must be set")
	}
	if strings.ContainsAny(c.Build.ExecutableName, `/\`) {
		return fmt.Errorf("build.executable_name must be a bare name, got %q", c.Build.ExecutableName)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
