package main

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"logpage/internal/api"
)

// printWindow writes the window content to stdout and a metadata table to
// stderr, or the whole response as JSON to stdout.
func printWindow(cmd *cobra.Command, resp api.LogWindowResponse, asJSON bool) error {
	if asJSON {
		return writeJSON(cmd, resp)
	}

	if _, err := cmd.OutOrStdout().Write(resp.Content); err != nil {
		return err
	}
	fmt.Fprintln(cmd.ErrOrStderr(), renderWindowTable(resp))
	return nil
}

func renderWindowTable(resp api.LogWindowResponse) string {
	rows := [][]string{
		{"Log", resp.Kind + " " + resp.LogType},
		{"Window", fmt.Sprintf("%d-%d", resp.StartByte, resp.EndByte)},
		{"Window size", sizeLabel(resp.EndByte - resp.StartByte)},
		{"File size", sizeLabel(resp.TotalLength)},
		{"Previous", pageLabel(resp.Previous)},
		{"Next", pageLabel(resp.Next)},
	}
	return renderTable([]string{"Field", "Value"}, rows, []columnAlignment{alignLeft, alignRight})
}

func sizeLabel(n int64) string {
	if n < 0 {
		n = 0
	}
	return fmt.Sprintf("%s (%s bytes)", humanize.IBytes(uint64(n)), humanize.Comma(n))
}

func pageLabel(link *api.PageLink) string {
	if link == nil {
		return "-"
	}
	return "--offset " + strconv.FormatInt(link.Offset, 10) + " --length " + strconv.FormatInt(int64(link.ByteLength), 10)
}
