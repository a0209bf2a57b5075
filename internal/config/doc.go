// Package config loads, normalizes, and validates logpage configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// LOGPAGE_API_TOKEN. The Config type centralizes the log root, window limits,
// server bind address, and logging options the CLI and server need.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths and clear validation errors.
package config
