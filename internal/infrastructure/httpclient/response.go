package httpclient

import (
	"encoding/json"
	"net/http"
)

// Response wraps one completed HTTP exchange. It is a pure wrapper: no
// network or retry logic lives here.
type Response struct {
	statusCode int
	body       []byte
	header     http.Header
}

// NewResponse builds a Response from a completed exchange.
func NewResponse(statusCode int, body []byte, header http.Header) *Response {
	if header == nil {
		header = http.Header{}
	}
	return &Response{
		statusCode: statusCode,
		body:       body,
		header:     header,
	}
}

// StatusCode returns the HTTP status code.
func (r *Response) StatusCode() int {
	return r.statusCode
}

// Body returns the raw response body.
func (r *Response) Body() []byte {
	return r.body
}

// JSON decodes the body into v.
func (r *Response) JSON(v any) error {
	return json.Unmarshal(r.body, v)
}

// OK reports whether the status is in the 2xx range.
func (r *Response) OK() bool {
	return r.statusCode >= 200 && r.statusCode < 300
}

// Successful is an alias for OK.
func (r *Response) Successful() bool {
	return r.OK()
}

// Failed reports whether the status is outside the 2xx range.
func (r *Response) Failed() bool {
	return !r.OK()
}

// ClientError reports whether the status is in the 4xx range.
func (r *Response) ClientError() bool {
	return r.statusCode >= 400 && r.statusCode < 500
}

// ServerError reports whether the status is in the 5xx range.
func (r *Response) ServerError() bool {
	return r.statusCode >= 500 && r.statusCode < 600
}

// Header returns one response header value.
func (r *Response) Header(key string) string {
	return r.header.Get(key)
}

// Headers returns all response headers.
func (r *Response) Headers() http.Header {
	return r.header
}

// Err returns a *RequestError carrying the response when the status
// indicates a client or server error, and nil otherwise. It lets call
// sites fail fast without inline status branching:
//
//	if err := resp.Err(); err != nil { return err }
func (r *Response) Err() error {
	if r.ClientError() || r.ServerError() {
		return &RequestError{Response: r}
	}
	return nil
}
