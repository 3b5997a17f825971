package mongodb

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/diegosantosouza/projeto-teste-truther/internal/domain/entities"
)

const coinsCollection = "coins"

// NewCoinRepository instantiates the snapshot repository. Listings come
// back ordered by market cap, largest first.
func NewCoinRepository(db *mongo.Database) *BaseRepository[entities.Coin, entities.CoinInput] {
	return NewBaseRepository[entities.Coin, entities.CoinInput](db.Collection(coinsCollection)).
		WithSort(bson.D{{Key: "marketCap", Value: -1}})
}
