// Package logwindow serves byte windows of executor and driver log files.
//
// A request names a log through a Ref (an executor of an application, or a
// driver), a log type such as "stdout", and an optional offset and length.
// The package resolves the file under a configured root, snapshots its length
// once, clamps the requested range into the file, reads at most Limits.MaxBytes
// and returns the content with the range metadata plus previous/next page
// links. Nothing is cached: every call opens, reads and closes the file.
//
// Failures are classified with the ErrInvalidRequest, ErrNotFound and ErrIO
// sentinels; use errors.Is to branch on them.
package logwindow
