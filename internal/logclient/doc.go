// Package logclient fetches log windows from a running logpage server.
package logclient
