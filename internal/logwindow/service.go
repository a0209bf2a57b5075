package logwindow

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"logpage/internal/logging"
)

// Request asks for one window of a log. A nil Offset selects the tail of the
// file; a nil Length selects the default window size.
type Request struct {
	Ref     Ref
	LogType string
	Offset  *int64
	Length  *int32
}

// Service answers window requests against logs stored under Root.
// It holds no mutable state and is safe for concurrent use.
type Service struct {
	root   string
	limits Limits
	logger *slog.Logger
}

// NewService validates limits and builds a Service rooted at root.
func NewService(root string, limits Limits, logger *slog.Logger) (*Service, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		return nil, errors.New("log root is required")
	}
	if err := limits.Validate(); err != nil {
		return nil, err
	}
	return &Service{
		root:   root,
		limits: limits,
		logger: logging.NewComponentLogger(logger, "logwindow"),
	}, nil
}

// Root returns the directory logs are resolved under.
func (s *Service) Root() string { return s.root }

// Limits returns the window limits applied to every request.
func (s *Service) Limits() Limits { return s.limits }

// GetLogWindow resolves req, reads its window and computes the adjacent pages.
// The file length is observed once per call; the file is closed before return
// on every path, including cancellation.
func (s *Service) GetLogWindow(ctx context.Context, req Request) (Window, Links, error) {
	logType := strings.TrimSpace(req.LogType)
	if logType == "" {
		return Window{}, Links{}, wrap(ErrInvalidRequest, "", "log type is required", nil)
	}
	path, err := Resolve(s.root, req.Ref, logType)
	if err != nil {
		return Window{}, Links{}, err
	}

	file, err := openLog(path)
	if err != nil {
		return Window{}, Links{}, err
	}
	defer file.Close()

	total, err := logLength(file, path)
	if err != nil {
		return Window{}, Links{}, err
	}
	start, end := ComputeRange(total, req.Offset, req.Length, s.limits)
	content, err := readSection(ctx, file, path, start, end)
	if err != nil {
		return Window{}, Links{}, err
	}

	window := Window{
		Start:   start,
		End:     start + int64(len(content)),
		Total:   total,
		Content: content,
	}
	links := ComputeLinks(window, EffectiveLength(req.Length, s.limits))

	logging.WithContext(ctx, s.logger).Debug("log window read",
		logging.String(logging.FieldLogKind, req.Ref.Kind().String()),
		logging.String(logging.FieldLogPath, path),
		logging.Int64("start", window.Start),
		logging.Int64("end", window.End),
		logging.Int64("total", window.Total),
	)
	return window, links, nil
}
