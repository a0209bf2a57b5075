package logclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"logpage/internal/api"
	"logpage/internal/logwindow"
)

var (
	// ErrAPIUnavailable reports that no server is configured or reachable.
	ErrAPIUnavailable = errors.New("log API unavailable")
	// ErrUnauthorized reports a missing or rejected bearer token.
	ErrUnauthorized = errors.New("log API rejected credentials")
)

const requestTimeout = 30 * time.Second

// Client talks to the JSON endpoints of a logpage server.
type Client struct {
	base  *url.URL
	token string
	http  *http.Client
}

// New returns a client for the server bound at bind. A bare host:port is
// treated as plain HTTP. An empty bind yields a nil client.
func New(bind, token string) (*Client, error) {
	bind = strings.TrimSpace(bind)
	if bind == "" {
		return nil, nil
	}
	if !strings.Contains(bind, "://") {
		bind = "http://" + bind
	}
	base, err := url.Parse(bind)
	if err != nil {
		return nil, fmt.Errorf("parse server address: %w", err)
	}
	base.Path = ""
	base.RawQuery = ""
	base.Fragment = ""

	return &Client{
		base:  base,
		token: strings.TrimSpace(token),
		http:  &http.Client{Timeout: requestTimeout},
	}, nil
}

// Fetch reads one window. Server-side error classes come back wrapped in the
// matching logwindow sentinel.
func (c *Client) Fetch(ctx context.Context, q api.LogQuery) (api.LogWindowResponse, error) {
	var payload api.LogWindowResponse
	if err := c.get(ctx, "/api/v1/log", q.Values(), &payload); err != nil {
		return api.LogWindowResponse{}, err
	}
	return payload, nil
}

// Status returns the server's runtime information.
func (c *Client) Status(ctx context.Context) (api.ServerStatus, error) {
	var payload api.ServerStatus
	if err := c.get(ctx, "/api/status", nil, &payload); err != nil {
		return api.ServerStatus{}, err
	}
	return payload, nil
}

func (c *Client) get(ctx context.Context, path string, values url.Values, out any) error {
	if c == nil {
		return ErrAPIUnavailable
	}
	endpoint := c.base.ResolveReference(&url.URL{Path: path, RawQuery: values.Encode()})
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return responseError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// responseError turns a non-2xx response into an error carrying the server's
// message and the matching sentinel.
func responseError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	message := strings.TrimSpace(string(body))
	var payload api.ErrorResponse
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		message = payload.Error
	}

	switch resp.StatusCode {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: server: %s", logwindow.ErrInvalidRequest, message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: server: %s", logwindow.ErrNotFound, message)
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: server: %s", logwindow.ErrIO, message)
	default:
		return fmt.Errorf("api returned status %d: %s", resp.StatusCode, message)
	}
}

// IsAPIUnavailable reports whether err means the server could not be reached.
func IsAPIUnavailable(err error) bool {
	if err == nil {
		return false
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		err = urlErr.Err
	}
	var opErr *net.OpError
	return errors.Is(err, ErrAPIUnavailable) || errors.As(err, &opErr)
}
