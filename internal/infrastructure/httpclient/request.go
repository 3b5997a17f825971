package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"

	"github.com/diegosantosouza/projeto-teste-truther/internal/infrastructure/logging"
)

const (
	retryBaseDelay = 100 * time.Millisecond
	retryMaxDelay  = 2 * time.Second
)

// request is the ephemeral execution of one configured exchange. It holds a
// snapshot of the client configuration and never mutates shared state.
type request struct {
	headers map[string]string
	timeout time.Duration
	retries uint
}

// execute performs the exchange. An HTTP response with an error status is
// wrapped into a Response for the caller to inspect, never retried. Pure
// transport failures are retried up to the configured count; when every
// attempt fails without a response the ErrNoResponse-wrapped failure
// propagates. The http.Client timeout gives each attempt its own window.
func (r *request) execute(ctx context.Context, method, rawURL string, body any) (*Response, error) {
	var payload []byte
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		payload = encoded
	}

	httpClient := &http.Client{Timeout: r.timeout}

	var response *Response

	err := retry.Do(
		func() error {
			attemptResp, err := r.attempt(ctx, httpClient, method, rawURL, payload)
			if err != nil {
				return err
			}
			response = attemptResp
			return nil
		},
		retry.Attempts(r.retries+1),
		retry.Delay(retryBaseDelay),
		retry.MaxDelay(retryMaxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.RetryIf(func(err error) bool {
			return errors.Is(err, ErrNoResponse)
		}),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
		retry.OnRetry(func(n uint, err error) {
			logging.Warn(ctx, "retrying HTTP request", logging.Fields{
				"method":       method,
				"url":          rawURL,
				"attempt":      n + 1,
				"max_attempts": r.retries + 1,
				"error":        err.Error(),
			})
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("%s %s failed: %w", method, rawURL, err)
	}

	return response, nil
}

// attempt performs a single network exchange.
func (r *request) attempt(ctx context.Context, httpClient *http.Client, method, rawURL string, payload []byte) (*Response, error) {
	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for k, v := range r.headers {
		req.Header.Set(k, v)
	}

	res, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoResponse, err)
	}
	defer func() {
		_ = res.Body.Close()
	}()

	responseBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrNoResponse, err)
	}

	return NewResponse(res.StatusCode, responseBody, res.Header), nil
}
