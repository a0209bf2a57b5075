package main

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"logpage/internal/api"
	"logpage/internal/logclient"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the status of a running logpage server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			client, err := ctx.newClient()
			if err != nil {
				return err
			}
			status, err := client.Status(cmd.Context())
			if err != nil && !logclient.IsAPIUnavailable(err) {
				return err
			}
			if asJSON {
				return writeJSON(cmd, status)
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			fmt.Fprintln(out, renderSectionHeader("Server"))
			fmt.Fprintln(out, renderStatusLine("Address", statusInfo, ctx.serverAddress(cfg), colorize))
			if err != nil {
				fmt.Fprintln(out, renderStatusLine("Server", statusError, "not reachable", colorize))
				return nil
			}
			fmt.Fprintln(out, renderStatusLine("Server", statusOK, "running (pid "+strconv.Itoa(status.PID)+")", colorize))
			fmt.Fprintln(out, renderStatusTable(status))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print status as JSON")
	return cmd
}

func renderStatusTable(status api.ServerStatus) string {
	started := status.StartedAt
	if started == "" {
		started = "-"
	}
	rows := [][]string{
		{"Log root", status.LogRoot},
		{"Lock file", status.LockFilePath},
		{"Default window", humanize.IBytes(uint64(max(status.DefaultBytes, 0)))},
		{"Max window", humanize.IBytes(uint64(max(status.MaxBytes, 0)))},
		{"Auth required", yesNo(status.AuthRequired)},
		{"Started", started},
	}
	return renderTable([]string{"Setting", "Value"}, rows, nil)
}
