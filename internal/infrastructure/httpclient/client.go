// Package httpclient implements a small fluent HTTP client with
// configurable auth, timeout and transport-failure retry, used for all
// outbound provider calls.
package httpclient

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultTimeout bounds each individual network attempt when no timeout is
// configured.
const DefaultTimeout = 30 * time.Second

// Client is a reusable, fluent request configuration. Setters mutate and
// return the same client so calls can be chained; every verb snapshots the
// configuration into an ephemeral request, so an in-flight execution never
// observes later reconfiguration. Once configured, concurrent use is safe
// as long as no goroutine keeps calling setters.
type Client struct {
	baseURL    string
	headers    map[string]string
	authHeader string
	authValue  string
	params     []url.Values
	timeout    time.Duration
	retries    uint
}

// New creates a client for the given base URL.
func New(baseURL string) *Client {
	return &Client{baseURL: baseURL}
}

// WithToken configures a static token header. Mutually exclusive with the
// other auth modes; the last one set wins.
func (c *Client) WithToken(token string) *Client {
	c.authHeader = "token"
	c.authValue = token
	return c
}

// WithBearerToken configures an Authorization bearer header. The last auth
// mode set wins.
func (c *Client) WithBearerToken(token string) *Client {
	c.authHeader = "Authorization"
	c.authValue = "Bearer " + token
	return c
}

// WithBasicAuth configures an Authorization basic header from pre-encoded
// credentials. The last auth mode set wins.
func (c *Client) WithBasicAuth(credentials string) *Client {
	c.authHeader = "Authorization"
	c.authValue = "Basic " + credentials
	return c
}

// WithHeaders configures additional headers. Auth headers take precedence
// on key collision.
func (c *Client) WithHeaders(headers map[string]string) *Client {
	c.headers = headers
	return c
}

// Param appends one query-parameter group. All groups are serialized and
// concatenated with "&" in the order they were added.
func (c *Client) Param(params url.Values) *Client {
	c.params = append(c.params, params)
	return c
}

// Timeout configures the per-attempt timeout. Defaults to DefaultTimeout.
func (c *Client) Timeout(d time.Duration) *Client {
	c.timeout = d
	return c
}

// Retry configures how many additional attempts are made after a pure
// transport failure. Defaults to 0, meaning a single attempt.
func (c *Client) Retry(times uint) *Client {
	c.retries = times
	return c
}

// Get executes a GET request against baseURL+path.
func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	return c.execute(ctx, http.MethodGet, path, nil)
}

// Post executes a POST request with a JSON-encoded body.
func (c *Client) Post(ctx context.Context, path string, body any) (*Response, error) {
	return c.execute(ctx, http.MethodPost, path, body)
}

// Put executes a PUT request with a JSON-encoded body.
func (c *Client) Put(ctx context.Context, path string, body any) (*Response, error) {
	return c.execute(ctx, http.MethodPut, path, body)
}

// Patch executes a PATCH request with a JSON-encoded body.
func (c *Client) Patch(ctx context.Context, path string, body any) (*Response, error) {
	return c.execute(ctx, http.MethodPatch, path, body)
}

// Delete executes a DELETE request. No body is sent.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.execute(ctx, http.MethodDelete, path, nil)
}

func (c *Client) execute(ctx context.Context, method, path string, body any) (*Response, error) {
	if c.baseURL == "" {
		return nil, ErrMissingBaseURL
	}
	return c.newRequest().execute(ctx, method, c.buildURL(path), body)
}

func (c *Client) buildURL(path string) string {
	rawURL := c.baseURL + path
	if query := c.buildParams(); query != "" {
		rawURL += "?" + query
	}
	return rawURL
}

func (c *Client) buildParams() string {
	if len(c.params) == 0 {
		return ""
	}
	encoded := make([]string, 0, len(c.params))
	for _, group := range c.params {
		encoded = append(encoded, group.Encode())
	}
	return strings.Join(encoded, "&")
}

// newRequest snapshots the current configuration into an ephemeral request.
func (c *Client) newRequest() *request {
	headers := map[string]string{
		"Content-Type": "application/json",
		"Accept":       "application/json",
	}
	for k, v := range c.headers {
		headers[k] = v
	}
	if c.authHeader != "" {
		headers[c.authHeader] = c.authValue
	}

	timeout := c.timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &request{
		headers: headers,
		timeout: timeout,
		retries: c.retries,
	}
}
