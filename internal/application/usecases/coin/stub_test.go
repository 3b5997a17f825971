package coin

import (
	"context"

	"github.com/diegosantosouza/projeto-teste-truther/internal/domain/entities"
)

// coinRepoStub implements interfaces.CoinRepository with overridable
// behavior per test. Methods a test does not stub must not be reached.
type coinRepoStub struct {
	createFn   func(ctx context.Context, data entities.CoinInput) (*entities.Coin, error)
	findOneFn  func(ctx context.Context, filter map[string]any) (*entities.Coin, error)
	findByIDFn func(ctx context.Context, id string) (*entities.Coin, error)
	findFn     func(ctx context.Context, filter map[string]any) ([]*entities.Coin, error)
	updateFn   func(ctx context.Context, id string, partial map[string]any) (*entities.Coin, error)
	deleteFn   func(ctx context.Context, id string) (bool, error)
	upsertFn   func(ctx context.Context, filter map[string]any, data entities.CoinInput) (*entities.Coin, error)
}

func (s *coinRepoStub) Create(ctx context.Context, data entities.CoinInput) (*entities.Coin, error) {
	if s.createFn == nil {
		panic("unexpected Create call")
	}
	return s.createFn(ctx, data)
}

func (s *coinRepoStub) FindOne(ctx context.Context, filter map[string]any) (*entities.Coin, error) {
	if s.findOneFn == nil {
		panic("unexpected FindOne call")
	}
	return s.findOneFn(ctx, filter)
}

func (s *coinRepoStub) FindByID(ctx context.Context, id string) (*entities.Coin, error) {
	if s.findByIDFn == nil {
		panic("unexpected FindByID call")
	}
	return s.findByIDFn(ctx, id)
}

func (s *coinRepoStub) Find(ctx context.Context, filter map[string]any) ([]*entities.Coin, error) {
	if s.findFn == nil {
		panic("unexpected Find call")
	}
	return s.findFn(ctx, filter)
}

func (s *coinRepoStub) Update(ctx context.Context, id string, partial map[string]any) (*entities.Coin, error) {
	if s.updateFn == nil {
		panic("unexpected Update call")
	}
	return s.updateFn(ctx, id, partial)
}

func (s *coinRepoStub) Delete(ctx context.Context, id string) (bool, error) {
	if s.deleteFn == nil {
		panic("unexpected Delete call")
	}
	return s.deleteFn(ctx, id)
}

func (s *coinRepoStub) Upsert(ctx context.Context, filter map[string]any, data entities.CoinInput) (*entities.Coin, error) {
	if s.upsertFn == nil {
		panic("unexpected Upsert call")
	}
	return s.upsertFn(ctx, filter, data)
}

// marketDataStub implements interfaces.MarketData.
type marketDataStub struct {
	getFn func(ctx context.Context, coinID entities.CoinID, currency string) (*entities.CoinInput, error)
}

func (s *marketDataStub) Get(ctx context.Context, coinID entities.CoinID, currency string) (*entities.CoinInput, error) {
	return s.getFn(ctx, coinID, currency)
}
