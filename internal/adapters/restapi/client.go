package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"eventdesk/internal/domain"
)

// HTTPDoer is the subset of *http.Client the client needs.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the remote entity service. It implements
// domain.UserGateway, domain.CategoryGateway and domain.EventGateway.
type Client struct {
	baseURL string
	http    HTTPDoer
	logger  *slog.Logger
}

var (
	_ domain.UserGateway     = (*Client)(nil)
	_ domain.CategoryGateway = (*Client)(nil)
	_ domain.EventGateway    = (*Client)(nil)
)

// NewClient returns a client rooted at baseURL (no trailing slash).
// A nil doer uses an *http.Client with timeout.
func NewClient(baseURL string, doer HTTPDoer, timeout time.Duration, logger *slog.Logger) *Client {
	if doer == nil {
		doer = &http.Client{Timeout: timeout}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{baseURL: baseURL, http: doer, logger: logger}
}

// StatusError is a non-success HTTP response.
type StatusError struct {
	Method string
	Path   string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.Path, e.Code)
}

// Is lets callers match domain.ErrRemoteStatus, and domain.ErrNotFound /
// domain.ErrConflict for 404 / 409.
func (e *StatusError) Is(target error) bool {
	switch target {
	case domain.ErrRemoteStatus:
		return true
	case domain.ErrNotFound:
		return e.Code == http.StatusNotFound
	case domain.ErrConflict:
		return e.Code == http.StatusConflict
	}
	return false
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json;charset=utf-8")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	c.logger.DebugContext(ctx, "remote call", "method", method, "path", path, "status", resp.StatusCode, "duration_ms", time.Since(start).Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{Method: method, Path: path, Code: resp.StatusCode}
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%s %s: empty response body", method, path)
		}
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
