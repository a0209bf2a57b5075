package preflight

import (
	"context"
	"errors"
	"strings"

	"logpage/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes all preflight checks for the given config.
func RunAll(ctx context.Context, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	results := RunPaths(cfg)
	if ctx.Err() == nil {
		results = append(results, CheckBindAvailable("Listen address", cfg.Server.Bind))
	}
	return results
}

// RunPaths checks only the configured directories. The server uses it at
// startup because it takes its instance lock before binding, so a second
// instance must reach the lock rather than fail on the address.
func RunPaths(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}
	return []Result{
		CheckDirectoryAccess("Log root", cfg.Paths.LogRoot, ReadOnly),
		CheckDirectoryAccess("State directory", cfg.Paths.StateDir, ReadWrite),
	}
}

// Err joins the details of every failed result, or returns nil.
func Err(results []Result) error {
	var failed []string
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, r.Name+": "+r.Detail)
		}
	}
	if len(failed) == 0 {
		return nil
	}
	return errors.New("preflight failed: " + strings.Join(failed, "; "))
}
