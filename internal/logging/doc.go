// Package logging assembles structured slog loggers and formatting helpers used
// across logpage.
//
// It owns the console/JSON handlers, centralizes level and output plumbing, and
// exposes context helpers so HTTP handlers tag every line with the request id.
// The package also provides a no-op logger for tests and wiring code that
// cannot fail.
package logging
