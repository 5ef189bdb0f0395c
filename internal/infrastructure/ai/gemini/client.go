// Package gemini is a small REST client for the Gemini generateContent and
// streamGenerateContent endpoints.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/nexus-desk/nexus/internal/shared/logger"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com"

	apiKeyHeader  = "x-goog-api-key"
	maxErrorBytes = 4096
)

// Client implements ticket.Classifier and assistant.ChatProvider.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     logger.Interface
}

// NewClient creates a client. Calls are bounded by their context only.
func NewClient(apiKey, baseURL string, logger logger.Interface) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		// no client-level timeout: it would also cut long chat streams
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		logger:     logger.With("component", "gemini"),
	}
}

// APIError is returned when the API responds with a non-200 status.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("gemini: HTTP %d: %s: %s", e.StatusCode, e.Status, e.Message)
	}
	return fmt.Sprintf("gemini: HTTP %d: %s", e.StatusCode, e.Message)
}

func (c *Client) endpoint(model, method string, query url.Values) string {
	u := fmt.Sprintf("%s/v1beta/models/%s:%s", c.baseURL, url.PathEscape(model), method)
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// do POSTs payload as JSON. On success the caller owns the response body;
// on error it is already closed.
func (c *Client) do(ctx context.Context, endpoint string, payload any, streaming bool) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("gemini: marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("gemini: creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiKeyHeader, c.apiKey)
	if streaming {
		req.Header.Set("Accept", "text/event-stream")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gemini: sending request: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		return nil, readAPIError(resp)
	}
	return resp, nil
}

// readAPIError parses {"error":{"code":...,"message":"...","status":"..."}}
// and falls back to the raw body.
func readAPIError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBytes))

	var wire struct {
		Error struct {
			Message string `json:"message"`
			Status  string `json:"status"`
		} `json:"error"`
	}
	if json.Unmarshal(body, &wire) == nil && wire.Error.Message != "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Status:     wire.Error.Status,
			Message:    wire.Error.Message,
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    string(body),
	}
}
