package main

import (
	"strings"
	"sync"

	"yydbuild/internal/config"
)

type commandContext struct {
	configFlag *string

	configOnce     sync.Once
	config         *config.Config
	configPath     string
	configResolved bool
	configErr      error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, exists, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = resolved
		c.configResolved = exists
	})
	return c.config, c.configErr
}
