package logwindow

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Resolve maps ref and logType to a file under root:
//
//	executor: root/<appID>/<executorID>/<logType>
//	driver:   root/<driverID>/<logType>
//
// Every component must be a single path element so the result stays under
// root. Resolve performs no I/O.
func Resolve(root string, ref Ref, logType string) (string, error) {
	if ref == nil {
		return "", wrap(ErrInvalidRequest, "resolve", errMissingIdentifiers, nil)
	}
	if strings.TrimSpace(root) == "" {
		return "", fmt.Errorf("resolve: log root is not configured")
	}
	parts := append(ref.segments(), logType)
	elems := make([]string, 0, len(parts)+1)
	elems = append(elems, root)
	for _, part := range parts {
		if !validSegment(part) {
			return "", wrap(ErrInvalidRequest, "resolve", fmt.Sprintf("invalid path component %q", part), nil)
		}
		elems = append(elems, part)
	}
	return filepath.Join(elems...), nil
}

func validSegment(s string) bool {
	if s == "" || s == "." || s == ".." {
		return false
	}
	return !strings.ContainsAny(s, "/\\\x00")
}
