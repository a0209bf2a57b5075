package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"logpage/internal/api"
	"logpage/internal/logging"
	"logpage/internal/logwindow"
)

// servedWindow bundles everything a renderer needs for one response.
type servedWindow struct {
	query  api.LogQuery
	req    logwindow.Request
	window logwindow.Window
	links  logwindow.Links
}

func (s *Server) handleLogJSON(w http.ResponseWriter, r *http.Request) {
	served, err := s.serveWindow(r)
	if err != nil {
		s.failJSON(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, api.FromWindow(served.req, served.window, served.links))
}

func (s *Server) handleLogText(w http.ResponseWriter, r *http.Request) {
	served, err := s.serveWindow(r)
	if err != nil {
		s.failText(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(textHeader(served))+len(served.window.Content)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(textHeader(served)))
	_, _ = w.Write(served.window.Content)
}

func (s *Server) handleLogPage(w http.ResponseWriter, r *http.Request) {
	served, err := s.serveWindow(r)
	if err != nil {
		s.failText(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := renderPage(w, served); err != nil {
		logging.WithContext(r.Context(), s.logger).Warn("render log page failed", logging.Error(err))
	}
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody("method not allowed"))
		return
	}
	writeJSON(w, http.StatusOK, s.Status())
}

// serveWindow parses the request parameters and reads the selected window.
func (s *Server) serveWindow(r *http.Request) (servedWindow, error) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		return servedWindow{}, errMethodNotAllowed
	}
	query, err := api.ParseLogQuery(r.URL.Query())
	if err != nil {
		return servedWindow{}, err
	}
	req, err := query.Request()
	if err != nil {
		return servedWindow{}, err
	}
	window, links, err := s.svc.GetLogWindow(r.Context(), req)
	if err != nil {
		return servedWindow{}, err
	}
	return servedWindow{query: query, req: req, window: window, links: links}, nil
}

var errMethodNotAllowed = errors.New("method not allowed")

// statusForError maps core error classes onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, errMethodNotAllowed):
		return http.StatusMethodNotAllowed
	case errors.Is(err, logwindow.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, logwindow.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// publicMessage hides filesystem detail from clients for server-side failures.
func publicMessage(status int, err error) string {
	if status == http.StatusInternalServerError {
		return logwindow.ErrIO.Error()
	}
	return err.Error()
}

func (s *Server) logFailure(r *http.Request, status int, err error) {
	logger := logging.WithContext(r.Context(), s.logger)
	attrs := logging.Args(
		logging.String("path", r.URL.Path),
		logging.Int("status", status),
		logging.Error(err),
	)
	if status >= http.StatusInternalServerError {
		logger.Error("log request failed", attrs...)
		return
	}
	logger.Info("log request rejected", attrs...)
}

func (s *Server) failJSON(w http.ResponseWriter, r *http.Request, err error) {
	status := statusForError(err)
	s.logFailure(r, status, err)
	writeJSON(w, status, errorBody(publicMessage(status, err)))
}

func (s *Server) failText(w http.ResponseWriter, r *http.Request, err error) {
	status := statusForError(err)
	s.logFailure(r, status, err)
	http.Error(w, publicMessage(status, err), status)
}

func textHeader(served servedWindow) string {
	return fmt.Sprintf("==== Bytes %d-%d of %d of %s ====\n",
		served.window.Start, served.window.End, served.window.Total, served.req.LogType)
}

func errorBody(message string) api.ErrorResponse {
	return api.ErrorResponse{Error: message}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
