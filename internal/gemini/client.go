package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	DefaultModel   = "gemini-2.0-flash"
	DefaultTimeout = 30 * time.Second
)

// FallbackReply is returned whenever the API answers successfully but yields
// no usable text, so callers never see an empty reply.
const FallbackReply = "죄송합니다. 잠시 후 다시 말씀해 주세요."

// Client calls the generateContent endpoint. One request, one response;
// no retries, no streaming.
type Client struct {
	BaseURL    string
	Model      string
	APIKey     string
	HTTPClient *http.Client
}

// NewClient builds a client with the given key and bounds every call with
// the supplied timeout (DefaultTimeout when zero).
func NewClient(baseURL, model, apiKey string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		BaseURL: baseURL,
		Model:   model,
		APIKey:  apiKey,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// GenerateContent posts the request and decodes the envelope. A malformed
// envelope is reported as an empty one, not as an error: the caller falls
// back the same way it does for zero candidates.
func (c *Client) GenerateContent(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal generate request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		c.BaseURL, c.Model, url.QueryEscape(c.APIKey))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build generate request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var out GenerateResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return &GenerateResponse{}, nil
	}
	return &out, nil
}

// GenerateText runs GenerateContent and extracts the candidate text,
// substituting FallbackReply when the envelope holds none.
func (c *Client) GenerateText(ctx context.Context, req *GenerateRequest) (string, error) {
	resp, err := c.GenerateContent(ctx, req)
	if err != nil {
		return "", err
	}

	text := resp.Text()
	if text == "" {
		return FallbackReply, nil
	}
	return text, nil
}
