package logwindow

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// readChunkSize bounds each read so cancellation is observed between chunks.
const readChunkSize = 64 * 1024

// Window is a contiguous byte range of a log file.
type Window struct {
	Start   int64
	End     int64
	Total   int64
	Content []byte
}

// Len returns the number of bytes in the window.
func (w Window) Len() int64 { return int64(len(w.Content)) }

func openLog(path string) (*os.File, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, wrap(ErrNotFound, "open", path, nil)
		}
		return nil, wrap(ErrIO, "open", path, err)
	}
	return file, nil
}

// logLength snapshots the size of an open log.
func logLength(file *os.File, path string) (int64, error) {
	info, err := file.Stat()
	if err != nil {
		return 0, wrap(ErrIO, "stat", path, err)
	}
	if info.IsDir() {
		return 0, wrap(ErrNotFound, "stat", fmt.Sprintf("%s is a directory", path), nil)
	}
	return info.Size(), nil
}

// readSection reads bytes [start, end) of an open log. If the file shrank
// since its length was observed the available prefix is returned.
func readSection(ctx context.Context, file *os.File, path string, start, end int64) ([]byte, error) {
	if start < 0 || end < start {
		return nil, wrap(ErrInvalidRequest, "read", fmt.Sprintf("invalid range %d-%d", start, end), nil)
	}
	size := end - start
	buf := make([]byte, size)
	var read int64
	for read < size {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		chunk := min(int64(readChunkSize), size-read)
		n, err := file.ReadAt(buf[read:read+chunk], start+read)
		read += int64(n)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, wrap(ErrIO, "read", path, err)
		}
	}
	return buf[:read], nil
}
