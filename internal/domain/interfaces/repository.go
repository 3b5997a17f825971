package interfaces

import (
	"context"

	"github.com/diegosantosouza/projeto-teste-truther/internal/domain/entities"
)

// Repository is the generic document-store contract. T is the stored entity
// shape, C the creation-input shape. Absence is reported as (nil, nil),
// never as an error.
type Repository[T any, C any] interface {
	Create(ctx context.Context, data C) (*T, error)
	FindOne(ctx context.Context, filter map[string]any) (*T, error)
	FindByID(ctx context.Context, id string) (*T, error)
	Find(ctx context.Context, filter map[string]any) ([]*T, error)
	Update(ctx context.Context, id string, partial map[string]any) (*T, error)
	Delete(ctx context.Context, id string) (bool, error)
	// Upsert replaces the matched document's fields with data, or inserts
	// filter+data when nothing matches. Implementations must perform this as
	// a single atomic store-level operation.
	Upsert(ctx context.Context, filter map[string]any, data C) (*T, error)
}

type CoinRepository = Repository[entities.Coin, entities.CoinInput]

type UserRepository = Repository[entities.User, entities.UserInput]
