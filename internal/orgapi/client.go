package orgapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"orgsetup/internal/debug"
	"orgsetup/internal/domain"
	appErrors "orgsetup/internal/errors"

	"github.com/google/uuid"
)

const (
	// DefaultUserAgent is sent on every request unless overridden.
	DefaultUserAgent = "orgsetup"
	// RequestIDHeader carries a per-request UUID for correlating backend logs.
	RequestIDHeader = "X-Request-ID"

	createPath = "organizations"
	// maxErrorBody bounds how much of a failed response is read for its payload.
	maxErrorBody = 64 << 10
)

// Client talks to the organization endpoints of the backend.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	userAgent    string
	newRequestID func() string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout sets the HTTP client timeout. Zero leaves the transport defaults.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// NewClient creates a client rooted at baseURL (e.g. "https://example.com/api").
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:      baseURL,
		httpClient:   &http.Client{},
		userAgent:    DefaultUserAgent,
		newRequestID: func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

type createEnvelope struct {
	Data *domain.Organization `json:"data"`
}

// CreateOrganization posts the form values and classifies the response.
// It never returns a Go error; every failure is a Result variant.
func (c *Client) CreateOrganization(ctx context.Context, values domain.FormValues) Result {
	endpoint, err := url.JoinPath(c.baseURL, createPath)
	if err != nil {
		return transportFailure(0, appErrors.New(appErrors.CodeConfigurationError, fmt.Sprintf("invalid api base url %q", c.baseURL), err))
	}

	body, err := json.Marshal(values)
	if err != nil {
		return transportFailure(0, appErrors.New(appErrors.CodeTransportFailed, "encode request", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return transportFailure(0, appErrors.New(appErrors.CodeTransportFailed, "create request", err))
	}
	requestID := c.newRequestID()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(RequestIDHeader, requestID)

	debug.Event("orgapi", "create.request", "url", endpoint, "request_id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return transportFailure(0, appErrors.New(appErrors.CodeTransportFailed, "network request failed", err))
	}
	defer func() { _ = resp.Body.Close() }()

	debug.Event("orgapi", "create.response", "status", resp.StatusCode, "request_id", requestID)

	switch {
	case resp.StatusCode == http.StatusOK:
		return decodeCreated(resp)
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		_, _ = io.Copy(io.Discard, resp.Body)
		return Result{
			Kind:   ResultApplicationFailure,
			Status: resp.StatusCode,
			Err:    appErrors.New(appErrors.CodeCreateRejected, fmt.Sprintf("unexpected status %d", resp.StatusCode), nil),
		}
	default:
		return decodeRejected(resp)
	}
}

func decodeCreated(resp *http.Response) Result {
	var envelope createEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return transportFailure(resp.StatusCode, appErrors.New(appErrors.CodeDecodeFailed, "decode response", err))
	}
	if envelope.Data == nil {
		return transportFailure(resp.StatusCode, appErrors.New(appErrors.CodeDecodeFailed, "response has no organization", nil))
	}
	return Result{
		Kind:         ResultCreated,
		Status:       resp.StatusCode,
		Organization: *envelope.Data,
	}
}

func decodeRejected(resp *http.Response) Result {
	raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var payload ErrorPayload
	if readErr == nil && len(bytes.TrimSpace(raw)) > 0 {
		// A non-JSON body leaves the payload empty, which classifies as unrecognized.
		_ = json.Unmarshal(raw, &payload)
	}

	failure := ClassifyMessage(payload.Message)
	cause := fmt.Errorf("status %d: %s", resp.StatusCode, describePayload(payload, raw))
	if readErr != nil {
		cause = errors.Join(cause, readErr)
	}

	return Result{
		Kind:    ResultTransportFailure,
		Status:  resp.StatusCode,
		Failure: failure,
		Payload: payload,
		Err:     appErrors.New(failure.code(), cause.Error(), cause),
	}
}

func describePayload(payload ErrorPayload, raw []byte) string {
	switch {
	case payload.Message != "":
		return payload.Message
	case payload.Error != "":
		return payload.Error
	case len(raw) > 0:
		return string(bytes.TrimSpace(raw))
	default:
		return "empty body"
	}
}

func transportFailure(status int, err error) Result {
	return Result{
		Kind:    ResultTransportFailure,
		Status:  status,
		Failure: FailureUnrecognized,
		Err:     err,
	}
}
