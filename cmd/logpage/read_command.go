package main

import (
	"github.com/spf13/cobra"

	"logpage/internal/api"
)

func newReadCommand(ctx *commandContext) *cobra.Command {
	var flags windowFlags

	cmd := &cobra.Command{
		Use:   "read",
		Short: "Read a log window directly from the log root",
		Example: `  logpage read --app app-20240101 --executor 4 --type stderr
  logpage read --driver driver-7 --type stdout --offset 0 --length 4096`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.query(cmd).Request()
			if err != nil {
				return err
			}
			logger, err := ctx.cliLogger()
			if err != nil {
				return err
			}
			svc, err := ctx.newService(logger)
			if err != nil {
				return err
			}
			window, links, err := svc.GetLogWindow(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printWindow(cmd, api.FromWindow(req, window, links), flags.asJSON)
		},
	}
	flags.register(cmd)
	return cmd
}
