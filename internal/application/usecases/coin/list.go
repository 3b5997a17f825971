package coin

import (
	"context"
	"fmt"

	"github.com/diegosantosouza/projeto-teste-truther/internal/domain/entities"
	"github.com/diegosantosouza/projeto-teste-truther/internal/domain/interfaces"
)

// ListUseCase returns every persisted snapshot. Listing reads the store
// only; it never triggers provider refreshes.
type ListUseCase struct {
	coins interfaces.CoinRepository
}

func NewListUseCase(coins interfaces.CoinRepository) *ListUseCase {
	return &ListUseCase{coins: coins}
}

func (uc *ListUseCase) Execute(ctx context.Context) ([]*entities.Coin, error) {
	coins, err := uc.coins.Find(ctx, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("failed to list coins: %w", err)
	}
	return coins, nil
}
