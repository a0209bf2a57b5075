package main

import (
	"github.com/spf13/cobra"

	"logpage/internal/api"
)

// windowFlags holds the log selection flags shared by read and fetch.
type windowFlags struct {
	appID      string
	executorID string
	driverID   string
	logType    string
	offset     int64
	length     int32
	asJSON     bool
}

func (f *windowFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.appID, "app", "", "Application id (with --executor)")
	flags.StringVar(&f.executorID, "executor", "", "Executor id (with --app)")
	flags.StringVar(&f.driverID, "driver", "", "Driver id (instead of --app/--executor)")
	flags.StringVarP(&f.logType, "type", "t", "", "Log file name, e.g. stdout or stderr")
	flags.Int64Var(&f.offset, "offset", 0, "First byte of the window (default: tail of the file)")
	flags.Int32Var(&f.length, "length", 0, "Window length in bytes (default: window.default_bytes)")
	flags.BoolVar(&f.asJSON, "json", false, "Print the window as JSON")
	_ = cmd.MarkFlagRequired("type")
}

// query converts the flags into request parameters. Offset and length are
// only sent when set explicitly, so the tail and default-size rules apply.
func (f *windowFlags) query(cmd *cobra.Command) api.LogQuery {
	q := api.LogQuery{
		AppID:      f.appID,
		ExecutorID: f.executorID,
		DriverID:   f.driverID,
		LogType:    f.logType,
	}
	if cmd.Flags().Changed("offset") {
		offset := f.offset
		q.Offset = &offset
	}
	if cmd.Flags().Changed("length") {
		length := f.length
		q.ByteLength = &length
	}
	return q
}
