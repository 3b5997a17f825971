package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/diegosantosouza/projeto-teste-truther/internal/domain/entities"
	"github.com/diegosantosouza/projeto-teste-truther/internal/shared/apperrors"
)

func TestRefresher_RefreshesEverySupportedCoin(t *testing.T) {
	var mu sync.Mutex
	seen := map[entities.CoinID]int{}

	r := NewRefresher(func(ctx context.Context, coinID entities.CoinID) (*entities.Coin, error) {
		mu.Lock()
		defer mu.Unlock()
		seen[coinID]++
		return &entities.Coin{CoinID: coinID}, nil
	}, time.Minute, 3)

	r.refreshAll(context.Background())

	mu.Lock()
	defer mu.Unlock()
	for _, coinID := range entities.SupportedCoins() {
		assert.Equal(t, 1, seen[coinID], "coin %s", coinID)
	}
}

func TestRefresher_ToleratesFailures(t *testing.T) {
	var mu sync.Mutex
	var calls int

	r := NewRefresher(func(ctx context.Context, coinID entities.CoinID) (*entities.Coin, error) {
		mu.Lock()
		defer mu.Unlock()
		calls++
		switch coinID {
		case entities.CoinBitcoin:
			return nil, apperrors.NewNotFound("coin not found")
		case entities.CoinEthereum:
			return nil, errors.New("provider unreachable")
		default:
			return &entities.Coin{CoinID: coinID}, nil
		}
	}, time.Minute, 2)

	// One coin missing and one failing must not stop the rest.
	r.refreshAll(context.Background())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, len(entities.SupportedCoins()), calls)
}

func TestRefresher_RunStopsOnCancel(t *testing.T) {
	r := NewRefresher(func(ctx context.Context, coinID entities.CoinID) (*entities.Coin, error) {
		return &entities.Coin{CoinID: coinID}, nil
	}, time.Hour, 1)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		r.Run(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("refresher did not stop after context cancellation")
	}
}

func TestNewRefresher_ClampsConcurrency(t *testing.T) {
	r := NewRefresher(nil, time.Minute, 0)
	assert.Equal(t, 1, r.concurrency)
}
