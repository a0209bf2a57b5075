// Package server exposes log windows over HTTP.
//
// Three renderings share one parameter set: a JSON document for programs, a
// plain-text body for shell pipelines and an HTML page with Previous/Next
// navigation for browsers. The server holds a file lock in the state
// directory so only one instance serves a configuration at a time.
package server
