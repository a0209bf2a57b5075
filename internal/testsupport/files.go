package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// LogContent returns size bytes of numbered log lines, so any two offsets of
// the result hold different data.
func LogContent(size int) []byte {
	buf := make([]byte, 0, size+32)
	for line := 0; len(buf) < size; line++ {
		buf = fmt.Appendf(buf, "%08d INFO executor heartbeat\n", line)
	}
	return buf[:size]
}

// WriteLog writes size bytes of LogContent to path, creating parent
// directories, and returns what was written.
func WriteLog(t testing.TB, path string, size int) []byte {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	content := LogContent(size)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return content
}
