// Package coin holds the market snapshot use cases, including the
// read-through cache policy: live data always wins and is persisted, the
// store is consulted only when the provider yields nothing, and total
// absence is the only error case.
package coin

import (
	"context"
	"fmt"

	"github.com/diegosantosouza/projeto-teste-truther/internal/domain/entities"
	"github.com/diegosantosouza/projeto-teste-truther/internal/domain/interfaces"
	"github.com/diegosantosouza/projeto-teste-truther/internal/infrastructure/logging"
	"github.com/diegosantosouza/projeto-teste-truther/internal/infrastructure/metrics"
	"github.com/diegosantosouza/projeto-teste-truther/internal/shared/apperrors"
)

// ShowInput identifies the asset to look up.
type ShowInput struct {
	CoinID entities.CoinID
}

// ShowUseCase looks up one asset snapshot, refreshing it from the provider
// when possible and falling back to the persisted snapshot otherwise.
type ShowUseCase struct {
	coins      interfaces.CoinRepository
	marketData interfaces.MarketData
}

// NewShowUseCase wires the lookup use case.
func NewShowUseCase(coins interfaces.CoinRepository, marketData interfaces.MarketData) *ShowUseCase {
	return &ShowUseCase{
		coins:      coins,
		marketData: marketData,
	}
}

// Execute runs one lookup. Provider unavailability of any kind — transport
// failure, error status, empty or malformed payload — degrades to the
// persisted snapshot; only total absence surfaces as NotFound, and an
// upsert that returns nothing after a successful fetch surfaces as a
// server error.
func (uc *ShowUseCase) Execute(ctx context.Context, input ShowInput) (*entities.Coin, error) {
	data, err := uc.marketData.Get(ctx, input.CoinID, "")
	if err != nil {
		logging.WarnWithError(ctx, "market data unavailable, serving from store", err, logging.Fields{
			"coin_id": input.CoinID,
		})
		data = nil
	}

	if data == nil {
		cached, err := uc.coins.FindOne(ctx, map[string]any{"coinId": input.CoinID})
		if err != nil {
			return nil, fmt.Errorf("failed to read cached coin %s: %w", input.CoinID, err)
		}
		if cached == nil {
			metrics.RecordCacheFallback(input.CoinID.String(), "miss")
			return nil, apperrors.NewNotFound("coin not found")
		}

		metrics.RecordCacheFallback(input.CoinID.String(), "hit")
		logging.Info(ctx, "serving cached coin snapshot", logging.Fields{
			"coin_id":    input.CoinID,
			"updated_at": cached.UpdatedAt,
		})
		return cached, nil
	}

	refreshed, err := uc.coins.Upsert(ctx, map[string]any{"coinId": input.CoinID}, *data)
	if err != nil {
		metrics.RecordSnapshotRefresh(input.CoinID.String(), "error")
		return nil, fmt.Errorf("failed to upsert coin %s: %w", input.CoinID, err)
	}
	if refreshed == nil {
		metrics.RecordSnapshotRefresh(input.CoinID.String(), "error")
		return nil, apperrors.NewServerError("error upserting coin")
	}

	metrics.RecordSnapshotRefresh(input.CoinID.String(), "success")
	logging.Debug(ctx, "coin snapshot refreshed", logging.Fields{
		"coin_id":       input.CoinID,
		"current_price": refreshed.CurrentPrice,
	})
	return refreshed, nil
}
