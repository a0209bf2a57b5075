// Package main hosts the logpage CLI entrypoint and command graph.
//
// The Cobra command tree either serves log windows over HTTP (serve), reads
// them straight from disk (read) or asks a running server for them (fetch,
// status). Configuration resolution and logger setup live in the command
// context so subcommands only describe their own flags and output.
package main
