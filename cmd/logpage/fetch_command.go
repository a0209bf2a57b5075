package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"logpage/internal/logclient"
)

func newFetchCommand(ctx *commandContext) *cobra.Command {
	var flags windowFlags

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch a log window from a running logpage server",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := flags.query(cmd)
			if _, err := q.Request(); err != nil {
				return err
			}
			client, err := ctx.newClient()
			if err != nil {
				return err
			}
			resp, err := client.Fetch(cmd.Context(), q)
			if err != nil {
				if logclient.IsAPIUnavailable(err) {
					return fmt.Errorf("logpage server unavailable; start it with `logpage serve`: %w", err)
				}
				return err
			}
			return printWindow(cmd, resp, flags.asJSON)
		},
	}
	flags.register(cmd)
	return cmd
}
