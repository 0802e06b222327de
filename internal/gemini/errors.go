package gemini

import "fmt"

// UpstreamError reports a non-2xx status from the generative-language API,
// keeping the raw body for server-side logs. It is never shown to callers
// as-is.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("gemini api status %d: %s", e.StatusCode, e.Body)
}

// TransportError reports a network-level failure reaching the API (DNS,
// timeout, reset) before any HTTP status was received.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("gemini transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
