// Package trello implements the remote operation client for the Trello
// REST API.
//
// The client owns all knowledge of Trello's resource paths, HTTP verbs,
// parameter names and error-status mapping. It exposes one method per
// remote operation and returns either a deserialized entity or a typed
// error from the taxonomy in errors.go. The client performs exactly one
// outbound HTTP request per call: no caching, no retries, no merging of
// entities across calls.
//
// Credentials are supplied once at construction and scoped to the client
// instance. The gateway constructs one client per inbound request, so the
// same process can serve many tenants concurrently without shared
// credential state.
package trello

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/primrose-mcp/primrose-mcp-trello/internal/logging"
)

// DefaultBaseURL is the versioned root of the Trello REST API.
const DefaultBaseURL = "https://api.trello.com/1"

// defaultRetryAfter is the advisory delay reported on a 429 response that
// carries no Retry-After header.
const defaultRetryAfter = 60 * time.Second

// Credentials identifies one tenant. Both fields are required; the client
// appends them to every outbound request as query parameters, which is how
// Trello authenticates API calls.
type Credentials struct {
	Key   string
	Token string
}

// Client issues authenticated requests against the Trello API on behalf of
// a single tenant. A Client is safe for concurrent use; it holds no mutable
// state beyond the embedded http.Client.
type Client struct {
	baseURL    string
	creds      Credentials
	httpClient *http.Client
	logger     *logging.AppLogger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API root. Used by tests to point the client at
// a local fake server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient overrides the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger overrides the client's logger.
func WithLogger(logger *logging.AppLogger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a client bound to the given tenant credentials.
func NewClient(creds Credentials, opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		creds:      creds,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logging.GetDefault(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// params accumulates outbound query parameters for one request. Setters
// taking pointers implement the optional-field convention: a nil pointer
// means the caller never supplied the field and it must not appear on the
// wire; a pointer to the empty string means "clear this field" and is sent
// as an empty value.
type params struct {
	values url.Values
}

func newParams() *params {
	return &params{values: url.Values{}}
}

func (p *params) Set(name, value string) *params {
	p.values.Set(name, value)
	return p
}

func (p *params) SetBool(name string, value bool) *params {
	p.values.Set(name, strconv.FormatBool(value))
	return p
}

func (p *params) SetInt(name string, value int) *params {
	p.values.Set(name, strconv.Itoa(value))
	return p
}

func (p *params) SetOpt(name string, value *string) *params {
	if value != nil {
		p.values.Set(name, *value)
	}
	return p
}

func (p *params) SetOptBool(name string, value *bool) *params {
	if value != nil {
		p.values.Set(name, strconv.FormatBool(*value))
	}
	return p
}

func (p *params) SetOptInt(name string, value *int) *params {
	if value != nil {
		p.values.Set(name, strconv.Itoa(*value))
	}
	return p
}

// SetOptList joins identifier lists with commas, Trello's wire encoding
// for multi-valued parameters. A nil slice is omitted; an empty non-nil
// slice is sent as an empty value to clear the list.
func (p *params) SetOptList(name string, values []string) *params {
	if values != nil {
		p.values.Set(name, strings.Join(values, ","))
	}
	return p
}

// get issues a GET request and decodes the response into out.
func (c *Client) get(ctx context.Context, path string, p *params, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, p, nil, out)
}

// post issues a POST request with all arguments as query parameters, which
// is how every Trello write endpoint except the custom-field pair accepts
// its input.
func (c *Client) post(ctx context.Context, path string, p *params, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, p, nil, out)
}

// put issues a PUT request with all arguments as query parameters.
func (c *Client) put(ctx context.Context, path string, p *params, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, p, nil, out)
}

// delete issues a DELETE request. Trello returns an empty or throwaway
// body on deletes, so there is no output value.
func (c *Client) delete(ctx context.Context, path string, p *params) error {
	return c.do(ctx, http.MethodDelete, path, p, nil, nil)
}

// postJSON and putJSON send a JSON body instead of query parameters. Only
// two Trello endpoints dispatch on a JSON content type: setting a
// custom-field value on a card and adding a custom-field option. Every
// other write goes through post/put above. This split mirrors upstream
// behavior exactly and must not be "normalized".
func (c *Client) postJSON(ctx context.Context, path string, body interface{}, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) putJSON(ctx context.Context, path string, body interface{}, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

// do performs one HTTP round trip. Credentials are appended as query
// parameters on every request. Errors are classified exactly once here
// and returned unmodified to the caller.
func (c *Client) do(ctx context.Context, method, path string, p *params, jsonBody, out interface{}) error {
	query := url.Values{}
	if p != nil {
		for name, vals := range p.values {
			query[name] = vals
		}
	}
	query.Set("key", c.creds.Key)
	query.Set("token", c.creds.Token)

	reqURL := c.baseURL + path + "?" + query.Encode()

	var bodyReader io.Reader
	if jsonBody != nil {
		encoded, err := json.Marshal(jsonBody)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if jsonBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("Trello request", "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.classify(resp, body)
	}

	// 2xx with an empty body is a void success.
	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}

// classify maps a non-2xx response onto the error taxonomy. Called in
// exactly one place so every operation shares the same mapping.
func (c *Client) classify(resp *http.Response, body []byte) error {
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return &AuthenticationError{Message: strings.TrimSpace(string(body))}
	case http.StatusTooManyRequests:
		retryAfter := defaultRetryAfter
		if header := resp.Header.Get("Retry-After"); header != "" {
			if seconds, err := strconv.Atoi(header); err == nil && seconds > 0 {
				retryAfter = time.Duration(seconds) * time.Second
			}
		}
		return &RateLimitError{RetryAfter: retryAfter}
	default:
		return &APIError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}
}
