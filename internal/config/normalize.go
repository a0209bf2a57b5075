package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeServer()
	c.normalizeWindow()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	if strings.TrimSpace(c.Paths.LogRoot) == "" {
		if value, ok := os.LookupEnv(logRootEnvKey); ok && strings.TrimSpace(value) != "" {
			c.Paths.LogRoot = strings.TrimSpace(value)
		} else {
			c.Paths.LogRoot = defaultLogRoot
		}
	}
	var err error
	if c.Paths.LogRoot, err = expandPath(strings.TrimSpace(c.Paths.LogRoot)); err != nil {
		return fmt.Errorf("paths.log_root: %w", err)
	}
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = defaultStateDir
	}
	if c.Paths.StateDir, err = expandPath(strings.TrimSpace(c.Paths.StateDir)); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeServer() {
	c.Server.Bind = strings.TrimSpace(c.Server.Bind)
	if c.Server.Bind == "" {
		c.Server.Bind = defaultBind
	}
	c.Server.Token = strings.TrimSpace(c.Server.Token)
	if c.Server.Token == "" {
		if value, ok := os.LookupEnv(tokenEnvironmentKey); ok {
			c.Server.Token = strings.TrimSpace(value)
		}
	}
}

func (c *Config) normalizeWindow() {
	if c.Window.DefaultBytes == 0 {
		c.Window.DefaultBytes = defaultWindowBytes
	}
	if c.Window.MaxBytes == 0 {
		c.Window.MaxBytes = defaultMaxBytes
	}
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
