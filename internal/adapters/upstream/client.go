package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/harbourline/freight_console_app/internal/apperrors"
	"github.com/harbourline/freight_console_app/internal/middleware"
)

// Client is the shared HTTP client for the remote freight backend. All
// repository adapters in this package go through it, so envelope
// unwrapping and error normalization happen in exactly one place.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a backend client rooted at baseURL.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// call issues one request against the backend and decodes the unwrapped
// payload into out (out may be nil for calls with no useful body).
// Transport failures, HTTP error statuses, and envelope-level
// status:"error" bodies all come back as a single UpstreamError whose
// text is the most specific message available: the envelope message
// wins over HTTP status text, which wins over the raw transport error.
func (c *Client) call(ctx context.Context, method, path string, reqBody any, out any) error {
	var body io.Reader
	if reqBody != nil {
		encoded, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("failed to encode request for %s: %w", path, err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := middleware.GetAuthTokenFromCtx(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.NewUpstreamError(fmt.Sprintf("backend unreachable: %v", err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.NewUpstreamError(fmt.Sprintf("failed to read backend response: %v", err))
	}

	payload, envErr := unwrapEnvelope(raw, resp.StatusCode)
	if envErr != nil {
		return envErr
	}
	if out == nil || len(payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("failed to decode backend response for %s: %w", path, err)
	}
	return nil
}
