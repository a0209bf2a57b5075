package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"logpage/internal/config"
	"logpage/internal/logclient"
	"logpage/internal/logging"
	"logpage/internal/logwindow"
)

type commandContext struct {
	configFlag *string
	serverFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag, serverFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		serverFlag: serverFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(c.configPath())
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) configPath() string {
	if c.configFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.configFlag)
}

// serverAddress prefers --server over the configured bind address.
func (c *commandContext) serverAddress(cfg *config.Config) string {
	if c.serverFlag != nil {
		if addr := strings.TrimSpace(*c.serverFlag); addr != "" {
			return addr
		}
	}
	if cfg == nil {
		return ""
	}
	return cfg.Server.Bind
}

func (c *commandContext) newClient() (*logclient.Client, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	client, err := logclient.New(c.serverAddress(cfg), cfg.Server.Token)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, fmt.Errorf("no server address: set server.bind or pass --server")
	}
	return client, nil
}

// cliLogger logs to stderr only; the state-directory log file belongs to serve.
func (c *commandContext) cliLogger() (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return logging.New(logging.Options{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
}

func (c *commandContext) newService(logger *slog.Logger) (*logwindow.Service, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return logwindow.NewService(cfg.Paths.LogRoot, windowLimits(cfg), logger)
}

func windowLimits(cfg *config.Config) logwindow.Limits {
	return logwindow.Limits{
		DefaultBytes: cfg.Window.DefaultBytes,
		MaxBytes:     cfg.Window.MaxBytes,
	}
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
