package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/diegosantosouza/projeto-teste-truther/internal/domain/entities"
	"github.com/diegosantosouza/projeto-teste-truther/internal/infrastructure/logging"
	"github.com/diegosantosouza/projeto-teste-truther/internal/shared/apperrors"
)

// RefreshFunc fetches one coin snapshot, refreshing the store as a side
// effect.
type RefreshFunc func(ctx context.Context, coinID entities.CoinID) (*entities.Coin, error)

// Refresher periodically warms the snapshot cache for every supported coin
// so read traffic rarely has to wait on the provider.
type Refresher struct {
	fetch       RefreshFunc
	interval    time.Duration
	concurrency int
}

func NewRefresher(fetch RefreshFunc, interval time.Duration, concurrency int) *Refresher {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Refresher{fetch: fetch, interval: interval, concurrency: concurrency}
}

// Run refreshes once immediately and then on every tick until ctx is
// cancelled.
func (r *Refresher) Run(ctx context.Context) {
	logging.Info(ctx, "snapshot refresher started", logging.Fields{
		"interval":    r.interval.String(),
		"concurrency": r.concurrency,
	})

	r.refreshAll(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logging.Info(ctx, "snapshot refresher stopped", nil)
			return
		case <-ticker.C:
			r.refreshAll(ctx)
		}
	}
}

func (r *Refresher) refreshAll(ctx context.Context) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for _, coinID := range entities.SupportedCoins() {
		coinID := coinID
		g.Go(func() error {
			if _, err := r.fetch(gctx, coinID); err != nil {
				// A coin with no live data and no cached snapshot yet is
				// expected on a cold start, not a refresh failure.
				if apperrors.IsNotFound(err) {
					logging.Debug(gctx, "no snapshot available yet", logging.Fields{"coin": coinID})
					return nil
				}
				logging.WarnWithError(gctx, "snapshot refresh failed", err, logging.Fields{"coin": coinID})
			}
			return nil
		})
	}

	// Workers never return errors; Wait just joins them.
	_ = g.Wait()
}
