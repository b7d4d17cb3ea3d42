package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

const (
	ContactPath     = "/api/contact"
	RequestIDHeader = "X-Request-ID"

	// maxResponseBytes caps how much of a response body is read.
	maxResponseBytes = 1 << 20
)

// Submitter delivers a form to the contact endpoint.
type Submitter interface {
	Submit(ctx context.Context, form Form) (*Response, error)
}

type Client struct {
	httpClient *http.Client
	endpoint   string
	config     Config
}

func NewClient(config Config) (*Client, error) {
	base := strings.TrimSpace(config.BaseURL)
	if base == "" {
		return nil, fmt.Errorf("contact API base URL is required")
	}

	parsed, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("invalid contact API base URL %q: %w", base, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("contact API base URL must be http or https, got %q", base)
	}

	return &Client{
		httpClient: &http.Client{Timeout: config.Timeout},
		endpoint:   strings.TrimRight(base, "/") + ContactPath,
		config:     config,
	}, nil
}

// SetHTTPClient swaps the underlying HTTP client. The configured timeout is
// not applied to a client supplied here.
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

// Submit posts form to {baseURL}/api/contact. A non-2xx status or an
// undecodable body is returned as a *SubmissionError. A decoded body whose
// status is not "success" is returned as-is with a nil error; callers decide
// what a non-success status means.
func (c *Client) Submit(ctx context.Context, form Form) (*Response, error) {
	payload, err := json.Marshal(form)
	if err != nil {
		return nil, fmt.Errorf("failed to encode contact form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build contact request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, ClassifyError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, ClassifyError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, NewHTTPStatusError(resp.StatusCode, errorDetail(body))
	}

	var decoded Response
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, NewMalformedResponseError(err)
	}

	return &decoded, nil
}

// errorDetail extracts the "detail" field error bodies carry, if any.
func errorDetail(body []byte) string {
	var payload struct {
		Detail any `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Detail == nil {
		return ""
	}
	if s, ok := payload.Detail.(string); ok {
		return s
	}
	encoded, err := json.Marshal(payload.Detail)
	if err != nil {
		return ""
	}
	return string(encoded)
}
