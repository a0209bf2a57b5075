package logwindow

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidRequest marks identifier sets or parameters that cannot select a log.
	ErrInvalidRequest = errors.New("invalid log request")
	// ErrNotFound marks a resolved log path that does not exist.
	ErrNotFound = errors.New("no such log")
	// ErrIO marks any other filesystem failure while reading a log.
	ErrIO = errors.New("log read failed")
)

// errMissingIdentifiers is the message for identifier sets that match neither shape.
const errMissingIdentifiers = "must specify either application or driver identifiers"

// wrap tags err with marker so callers can classify it with errors.Is.
func wrap(marker error, operation, message string, err error) error {
	detail := strings.TrimSpace(operation)
	if message = strings.TrimSpace(message); message != "" {
		if detail != "" {
			detail += ": "
		}
		detail += message
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// IsInvalidRequest reports whether err was caused by a malformed request.
func IsInvalidRequest(err error) bool { return errors.Is(err, ErrInvalidRequest) }

// IsNotFound reports whether err was caused by a missing log file.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }
