package logwindow

import "fmt"

// Limits bounds the size of windows. DefaultBytes applies when a request has
// no length and also sizes the tail window when it has no offset; MaxBytes is
// a hard ceiling on every read.
type Limits struct {
	DefaultBytes int32
	MaxBytes     int32
}

// Validate reports limits that could never produce a sensible window.
func (l Limits) Validate() error {
	if l.DefaultBytes <= 0 {
		return fmt.Errorf("default window must be positive, got %d", l.DefaultBytes)
	}
	if l.MaxBytes < l.DefaultBytes {
		return fmt.Errorf("max window %d is smaller than default window %d", l.MaxBytes, l.DefaultBytes)
	}
	return nil
}

// EffectiveLength is the window size actually served for a requested length:
// the default when length is nil, never negative, never above MaxBytes.
func EffectiveLength(length *int32, limits Limits) int32 {
	n := limits.DefaultBytes
	if length != nil {
		n = *length
	}
	if n > limits.MaxBytes {
		n = limits.MaxBytes
	}
	if n < 0 {
		n = 0
	}
	return n
}

// ComputeRange returns the [start, end) window of a file of total bytes.
// Without an offset the window starts DefaultBytes before the end of the file.
// Offsets are clamped into [0, total] instead of failing, so the result always
// satisfies 0 <= start <= end <= total.
func ComputeRange(total int64, offset *int64, length *int32, limits Limits) (int64, int64) {
	if total < 0 {
		total = 0
	}
	start := total - int64(limits.DefaultBytes)
	if offset != nil {
		start = *offset
	}
	start = min(max(start, 0), total)

	end := min(start+int64(EffectiveLength(length, limits)), total)
	return start, end
}
