package httpclient

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingBaseURL is returned when a verb is executed before the
	// client was given a base URL.
	ErrMissingBaseURL = errors.New("http client base URL is not configured")

	// ErrNoResponse marks a pure transport failure: the request produced no
	// HTTP response to classify. Only these failures are retried.
	ErrNoResponse = errors.New("no response received")
)

// RequestError is the typed failure raised by Response.Err for 4xx/5xx
// statuses. It carries the whole response so call sites can still inspect
// the body and headers.
type RequestError struct {
	Response *Response
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("HTTP request returned status code %d", e.Response.StatusCode())
}
