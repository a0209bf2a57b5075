package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gofrs/flock"

	"logpage/internal/api"
	"logpage/internal/config"
	"logpage/internal/logging"
	"logpage/internal/logwindow"
)

const shutdownTimeout = 5 * time.Second

// Server serves log windows from a logwindow.Service.
type Server struct {
	bind     string
	token    string
	logger   *slog.Logger
	svc      *logwindow.Service
	lockPath string
	lock     *flock.Flock
	handler  http.Handler

	mu        sync.Mutex
	listener  net.Listener
	server    *http.Server
	startedAt time.Time
	done      chan struct{}
}

// New constructs a server for cfg. The listener is not opened until Start.
func New(cfg *config.Config, svc *logwindow.Service, logger *slog.Logger) (*Server, error) {
	if cfg == nil || svc == nil {
		return nil, errors.New("server requires config and log service")
	}
	bind := strings.TrimSpace(cfg.Server.Bind)
	if bind == "" {
		return nil, errors.New("server bind address is required")
	}
	lockPath := cfg.LockPath()
	srv := &Server{
		bind:     bind,
		token:    strings.TrimSpace(cfg.Server.Token),
		logger:   logging.NewComponentLogger(logger, "server"),
		svc:      svc,
		lockPath: lockPath,
		lock:     flock.New(lockPath),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/log", srv.handleLogJSON)
	mux.HandleFunc("/log", srv.handleLogText)
	mux.HandleFunc("/logPage", srv.handleLogPage)
	mux.HandleFunc("/api/status", srv.handleStatus)

	srv.handler = requestIDMiddleware(srv.logger, authMiddleware(srv.token, mux.ServeHTTP))
	return srv, nil
}

// Handler returns the fully wrapped request handler.
func (s *Server) Handler() http.Handler { return s.handler }

// Start acquires the instance lock, opens the listener and serves until ctx
// is canceled or Stop is called.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.server != nil {
		return errors.New("server already running")
	}

	ok, err := s.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return errors.New("another logpage server instance is already running")
	}

	listener, err := net.Listen("tcp", s.bind)
	if err != nil {
		_ = s.lock.Unlock()
		return fmt.Errorf("api listen: %w", err)
	}

	httpServer := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	done := make(chan struct{})
	s.listener = listener
	s.server = httpServer
	s.startedAt = time.Now()
	s.done = done

	go func() {
		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("api server error", logging.Error(err))
		}
	}()

	go func() {
		select {
		case <-ctx.Done():
			s.Stop()
		case <-done:
		}
	}()

	s.logger.Info("api server listening",
		logging.String("address", listener.Addr().String()),
		logging.String("log_root", s.svc.Root()),
		logging.String("lock", s.lockPath),
	)
	return nil
}

// Stop shuts the HTTP server down and releases the instance lock. It is safe
// to call more than once.
func (s *Server) Stop() {
	s.mu.Lock()
	httpServer, listener, done := s.server, s.listener, s.done
	s.server = nil
	s.listener = nil
	s.startedAt = time.Time{}
	s.done = nil
	s.mu.Unlock()
	if httpServer == nil {
		return
	}
	close(done)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Warn("api server shutdown incomplete", logging.Error(err))
	}
	_ = listener.Close()
	if err := s.lock.Unlock(); err != nil {
		s.logger.Warn("failed to release server lock", logging.Error(err))
	}
	s.logger.Info("api server stopped")
}

// Addr returns the bound listener address, or "" when the server is stopped.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Status reports runtime information about the server.
func (s *Server) Status() api.ServerStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	limits := s.svc.Limits()
	status := api.ServerStatus{
		Running:      s.server != nil,
		PID:          os.Getpid(),
		LogRoot:      s.svc.Root(),
		LockFilePath: s.lockPath,
		DefaultBytes: limits.DefaultBytes,
		MaxBytes:     limits.MaxBytes,
		AuthRequired: s.token != "",
	}
	if !s.startedAt.IsZero() {
		status.StartedAt = s.startedAt.UTC().Format(time.RFC3339)
	}
	return status
}
