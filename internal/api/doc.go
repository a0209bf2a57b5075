// Package api defines wire-format types and converters for the HTTP layer.
// It translates logwindow results into transport-friendly DTOs that the CLI
// and browser clients can render without coupling to internal types.
//
// # Key Types
//
// LogQuery: the query-string parameters of a window request (appId,
// executorId, driverId, logType, offset, byteLength).
//
// LogWindowResponse: window bounds, file length, content and page links.
//
// ServerStatus: log root, window limits and process details.
//
// # Design Notes
//
// DTOs use camelCase JSON tags. Content is carried as a string; invalid UTF-8
// sequences are replaced by the JSON encoder, so byte-exact consumers should
// use the plain-text endpoint instead.
package api
