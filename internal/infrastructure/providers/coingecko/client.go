// Package coingecko adapts the CoinGecko market-data API to the internal
// snapshot model. One authenticated client is built at startup and shared
// by every lookup; after construction it is read-only configuration.
package coingecko

import (
	"errors"
	"fmt"

	"github.com/diegosantosouza/projeto-teste-truther/internal/infrastructure/config"
	"github.com/diegosantosouza/projeto-teste-truther/internal/infrastructure/httpclient"
)

var (
	ErrMissingBaseURL     = errors.New("COINGECKO_BASE_URL is not defined")
	ErrMissingAPIKey      = errors.New("COINGECKO_API_KEY is not defined")
	ErrInvalidEnvironment = errors.New("invalid coingecko environment")
)

// authHeaders maps the deployment environment to the API key header the
// provider expects: the public key header for development, the pro key
// header for production.
var authHeaders = map[string]string{
	"development": "x-cg-api-key",
	"production":  "x-cg-pro-api-key",
}

// NewClient builds the authenticated HTTP client for CoinGecko. It fails
// fast on missing or inconsistent configuration rather than producing a
// half-configured client.
func NewClient(cfg config.CoingeckoConfig) (*httpclient.Client, error) {
	if cfg.BaseURL == "" {
		return nil, ErrMissingBaseURL
	}
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	header, ok := authHeaders[cfg.Environment]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEnvironment, cfg.Environment)
	}

	client := httpclient.New(cfg.BaseURL).
		WithHeaders(map[string]string{header: cfg.APIKey})

	if cfg.Timeout > 0 {
		client.Timeout(cfg.Timeout)
	}
	if cfg.MaxRetries > 0 {
		client.Retry(uint(cfg.MaxRetries))
	}

	return client, nil
}
