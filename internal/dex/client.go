// ABOUTME: HTTP client for the Dex CRM REST API.
// ABOUTME: Handles request construction, auth headers, and response decoding.

package dex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DefaultBaseURL is the production Dex REST endpoint.
const DefaultBaseURL = "https://api.getdex.com/api/rest"

// DefaultTimeout is the fixed per-request timeout. Calls do not retry;
// a timed-out call surfaces as a TransportError on that call only.
const DefaultTimeout = 30 * time.Second

// apiKeyHeader is the Hasura-style auth header Dex expects.
const apiKeyHeader = "x-hasura-dex-api-key"

// Client issues requests against the Dex CRM API. It holds no per-call
// mutable state, so a single instance is safe to reuse across calls.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// ClientConfig contains configuration options for the Client.
type ClientConfig struct {
	APIKey     string
	BaseURL    string        // defaults to DefaultBaseURL
	Timeout    time.Duration // defaults to DefaultTimeout
	HTTPClient *http.Client  // overrides Timeout when set; used in tests
}

// NewClient creates a Client with the given configuration.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL: baseURL,
		apiKey:  cfg.APIKey,
		http:    httpClient,
	}
}

// PageParams is the limit/offset pair accepted by all list endpoints.
// A zero Limit becomes 10, matching the API default.
type PageParams struct {
	Limit  int
	Offset int
}

func (p PageParams) values() url.Values {
	limit := p.Limit
	if limit == 0 {
		limit = 10
	}
	return url.Values{
		"limit":  {strconv.Itoa(limit)},
		"offset": {strconv.Itoa(p.Offset)},
	}
}

// do performs one request/response round trip. Non-2xx statuses become
// an *APIError carrying the status and body; failures before a response
// become a *TransportError. The decoded JSON body is returned as-is.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (map[string]any, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiKeyHeader, c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Op: method + " " + path, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: method + " " + path, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	var out map[string]any
	if len(data) > 0 {
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("decoding response: %w", err)
		}
	}
	return out, nil
}
