// Package genai holds thin HTTP/JSON clients for the generative AI proxy:
// chat-completion text, inline-base64 images, and long-running video
// generation with polling and streamed download. There is no control logic
// here beyond build a request, send it, decode the response.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// APIError represents a non-2xx response from the AI API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("genai: HTTP %d: %s", e.StatusCode, e.Body)
}

// IsRetryable returns true for server errors (5xx).
// Client errors (4xx) are considered permanent.
func (e *APIError) IsRetryable() bool {
	return e.StatusCode >= 500
}

// Client talks to the AI API over REST with an API key. One Client is bound
// to one base URL; the video endpoints live under a different base than the
// OpenAI-compatible ones, so callers construct a Client per surface.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	// streaming downloads must not be cut off by the JSON-call timeout
	download *http.Client
	logger   *slog.Logger

	pollInterval time.Duration
	pollCap      time.Duration
}

// NewClient returns a Client for baseURL authenticating with apiKey.
func NewClient(baseURL, apiKey string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		apiKey:       apiKey,
		http:         &http.Client{Timeout: 60 * time.Second},
		download:     &http.Client{},
		logger:       logger,
		pollInterval: 10 * time.Second,
		pollCap:      30 * time.Second,
	}
}

// apply sets the auth and content-type headers. The proxy accepts the key
// either as a bearer token or as x-goog-api-key depending on the endpoint,
// so both are always sent.
func (c *Client) apply(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("x-goog-api-key", c.apiKey)
}

// postJSON POSTs payload to path and decodes the JSON response into out.
func (c *Client) postJSON(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	c.apply(req)

	return c.do(req, out)
}

// getJSON GETs path and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	c.apply(req)

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
