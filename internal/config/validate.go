package config

import (
	"errors"
	"fmt"
	"net"
)

// Validate ensures the configuration contains the minimum required values.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateWindow(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.LogRoot == "" {
		return errors.New("paths.log_root must be set")
	}
	if c.Paths.StateDir == "" {
		return errors.New("paths.state_dir must be set")
	}
	return nil
}

func (c *Config) validateServer() error {
	if _, _, err := net.SplitHostPort(c.Server.Bind); err != nil {
		return fmt.Errorf("server.bind: %w", err)
	}
	return nil
}

func (c *Config) validateWindow() error {
	if c.Window.DefaultBytes <= 0 {
		return fmt.Errorf("window.default_bytes must be positive, got %d", c.Window.DefaultBytes)
	}
	if c.Window.MaxBytes <= 0 {
		return fmt.Errorf("window.max_bytes must be positive, got %d", c.Window.MaxBytes)
	}
	if c.Window.MaxBytes < c.Window.DefaultBytes {
		return fmt.Errorf("window.max_bytes (%d) must be >= window.default_bytes (%d)", c.Window.MaxBytes, c.Window.DefaultBytes)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
