// Package api implements the HTTP client for the nutrition-log backend.
// It wraps the four operations the front end uses: fetch today's log,
// fetch all logs, submit a new entry, and delete an entry.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pvernier/macrolog/internal/domain"
	"github.com/pvernier/macrolog/internal/logger"
)

// Compile-time interface check.
var _ domain.LogService = (*Client)(nil)

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithTimeout sets the HTTP client timeout. Zero disables it.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.http.Timeout = d }
}

// WithHTTPClient replaces the underlying http.Client (tests).
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) { c.http = h }
}

// Client talks to the nutrition-log REST backend.
type Client struct {
	baseURL string
	http    *http.Client
	log     *logger.Logger
}

// NewClient creates a backend client.
//   - baseURL: server root, e.g. "http://localhost:8000" (no trailing slash)
func NewClient(baseURL string, log *logger.Logger, opts ...ClientOption) *Client {
	for len(baseURL) > 0 && baseURL[len(baseURL)-1] == '/' {
		baseURL = baseURL[:len(baseURL)-1]
	}
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
		log:     log,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// errorBody is the structured error envelope the backend returns on a
// non-success status.
type errorBody struct {
	Detail string `json:"detail"`
}

// Today fetches the log for the current date. The backend answers with
// JSON null when nothing has been logged yet; that maps to an empty
// DailyLog dated today so callers render the placeholder uniformly.
func (c *Client) Today(ctx context.Context) (*domain.DailyLog, error) {
	var log *domain.DailyLog
	if err := c.get(ctx, "/logs/today", &log); err != nil {
		return nil, err
	}
	if log == nil {
		log = domain.EmptyLog(domain.Today())
	}
	return log, nil
}

// All fetches every daily log the backend holds.
func (c *Client) All(ctx context.Context) ([]domain.DailyLog, error) {
	var logs []domain.DailyLog
	if err := c.get(ctx, "/logs/all", &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// Submit posts a new food entry. A rejected entry (unknown food, bad
// weight) comes back as a *domain.ValidationError carrying the
// backend's detail message.
func (c *Client) Submit(ctx context.Context, entry domain.NewEntry) error {
	body, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("api: marshal entry: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/logs/new_entry", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("api: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.Debug("api: POST /logs/new_entry (%s, %s, %.0fg)", entry.Date, entry.Meal, entry.Weight)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("api: submit entry: %w", err)
	}
	defer resp.Body.Close()

	return c.checkStatus(resp)
}

// Delete removes the entry with the given server-assigned ID. The
// caller refetches afterwards; the row only disappears once the
// refreshed log arrives.
func (c *Client) Delete(ctx context.Context, dataID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/logs/delete_entry/"+dataID, nil)
	if err != nil {
		return fmt.Errorf("api: create request: %w", err)
	}

	c.log.Debug("api: DELETE /logs/delete_entry/%s", dataID)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("api: delete entry: %w", err)
	}
	defer resp.Body.Close()

	return c.checkStatus(resp)
}

// get issues a GET and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("api: create request: %w", err)
	}

	c.log.Debug("api: GET %s", path)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("api: GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("api: decode %s response: %w", path, err)
	}
	return nil
}

// checkStatus turns a non-2xx response into an error. A parseable
// {"detail": ...} body becomes a ValidationError; anything else is a
// generic status error.
func (c *Client) checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("api: %s (unreadable body)", resp.Status)
	}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil && eb.Detail != "" {
		c.log.Warn("api: %s: %s", resp.Status, eb.Detail)
		return &domain.ValidationError{Detail: eb.Detail}
	}

	c.log.Warn("api: %s: %s", resp.Status, truncate(string(body), 120))
	return fmt.Errorf("api: %s", resp.Status)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
