package interfaces

import (
	"context"

	"github.com/diegosantosouza/projeto-teste-truther/internal/domain/entities"
)

// MarketData fetches a live snapshot of one asset from an external provider.
// A (nil, nil) return means the provider answered but had no usable data;
// a non-nil error means no response was obtained at all.
type MarketData interface {
	Get(ctx context.Context, coinID entities.CoinID, currency string) (*entities.CoinInput, error)
}
