// ABOUTME: Error types for Dex API failures.
// ABOUTME: Separates remote rejections (APIError) from network failures (TransportError).

package dex

import "fmt"

// APIError indicates the remote API responded with a non-2xx status.
// The response body is preserved verbatim for the caller.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("dex api: status %d: %s", e.StatusCode, e.Body)
}

// TransportError indicates the request failed before a response was
// received: connection refused, DNS failure, or the 30s timeout.
type TransportError struct {
	Op  string // "GET /contacts" etc.
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("dex transport: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
