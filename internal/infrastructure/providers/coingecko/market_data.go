package coingecko

import (
	"context"
	"fmt"
	"time"

	"github.com/diegosantosouza/projeto-teste-truther/internal/domain/entities"
	"github.com/diegosantosouza/projeto-teste-truther/internal/infrastructure/config"
	"github.com/diegosantosouza/projeto-teste-truther/internal/infrastructure/httpclient"
	"github.com/diegosantosouza/projeto-teste-truther/internal/infrastructure/logging"
	"github.com/diegosantosouza/projeto-teste-truther/internal/infrastructure/metrics"
)

const (
	serviceName     = "coingecko"
	marketsEndpoint = "/coins/markets"
	pingEndpoint    = "/ping"

	// DefaultCurrency is the quote currency used when the caller does not
	// specify one.
	DefaultCurrency = "usd"
)

// CoinMarketData is the raw wire record returned by /coins/markets. It
// exists only long enough to be mapped into a snapshot. Numeric fields are
// pointers because the provider omits metrics it has no data for.
type CoinMarketData struct {
	ID                                string   `json:"id"`
	Symbol                            string   `json:"symbol"`
	Name                              string   `json:"name"`
	CurrentPrice                      *float64 `json:"current_price"`
	MarketCap                         *float64 `json:"market_cap"`
	PriceChangePercentage24h          *float64 `json:"price_change_percentage_24h"`
	PriceChangePercentage7dInCurrency *float64 `json:"price_change_percentage_7d_in_currency"`
	ATL                               *float64 `json:"atl"`
	ATH                               *float64 `json:"ath"`
	LastUpdated                       string   `json:"last_updated"`
}

// MarketData is the provider adapter. Construct one per process with
// NewMarketData and share it; concurrent lookups are safe.
type MarketData struct {
	client *httpclient.Client
}

// NewMarketData builds the adapter, validating provider configuration up
// front.
func NewMarketData(cfg config.CoingeckoConfig) (*MarketData, error) {
	client, err := NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return &MarketData{client: client}, nil
}

// Get fetches the live snapshot for one asset. It returns (nil, nil) when
// the provider answers with a non-success status, an empty result, or a
// record missing required fields: the provider is untrusted input and bad
// data is "no data", not a hard error. A non-nil error means no HTTP
// response was obtained at all.
func (m *MarketData) Get(ctx context.Context, coinID entities.CoinID, currency string) (*entities.CoinInput, error) {
	if currency == "" {
		currency = DefaultCurrency
	}

	path := fmt.Sprintf("%s?vs_currency=%s&ids=%s&price_change_percentage=7d", marketsEndpoint, currency, coinID)

	start := time.Now()
	resp, err := m.client.Get(ctx, path)
	duration := time.Since(start)

	if err != nil {
		metrics.RecordExternalAPIFailure(serviceName, marketsEndpoint)
		logging.ErrorWithError(ctx, "coingecko request failed", err, logging.Fields{
			"coin_id":     coinID,
			"duration_ms": float64(duration.Nanoseconds()) / 1e6,
		})
		return nil, fmt.Errorf("coingecko market data request: %w", err)
	}

	metrics.RecordExternalAPICall(serviceName, marketsEndpoint, resp.StatusCode(), duration.Seconds())

	if !resp.OK() {
		logging.Warn(ctx, "coingecko returned non-success status", logging.Fields{
			"coin_id":     coinID,
			"status_code": resp.StatusCode(),
		})
		return nil, nil
	}

	var records []CoinMarketData
	if err := resp.JSON(&records); err != nil {
		logging.WarnWithError(ctx, "coingecko response body is not decodable", err, logging.Fields{
			"coin_id": coinID,
		})
		return nil, nil
	}
	if len(records) == 0 {
		logging.Debug(ctx, "coingecko returned no records", logging.Fields{
			"coin_id": coinID,
		})
		return nil, nil
	}

	coin := marketDataToCoin(records[0])
	if coin == nil {
		logging.Warn(ctx, "coingecko record is missing required fields", logging.Fields{
			"coin_id": coinID,
		})
	}
	return coin, nil
}

// Ping checks provider reachability. Used by the health endpoint.
func (m *MarketData) Ping(ctx context.Context) bool {
	resp, err := m.client.Get(ctx, pingEndpoint)
	return err == nil && resp.OK()
}
