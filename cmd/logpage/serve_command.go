package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"logpage/internal/logging"
	"logpage/internal/logwindow"
	"logpage/internal/preflight"
	"logpage/internal/server"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve log windows over HTTP until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			signalCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}

			if err := preflight.Err(preflight.RunPaths(cfg)); err != nil {
				logger.Error("preflight checks failed", logging.Error(err))
				return err
			}

			svc, err := logwindow.NewService(cfg.Paths.LogRoot, windowLimits(cfg), logger)
			if err != nil {
				return err
			}
			srv, err := server.New(cfg, svc, logger)
			if err != nil {
				return err
			}
			if err := srv.Start(signalCtx); err != nil {
				return err
			}
			defer srv.Stop()

			<-signalCtx.Done()
			logger.Info("shutdown requested")
			return nil
		},
	}
}
