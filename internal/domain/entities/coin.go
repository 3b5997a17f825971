package entities

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CoinID identifies one of the assets this service tracks. Lookups for
// anything outside this set are rejected before reaching the provider.
type CoinID string

const (
	CoinBitcoin     CoinID = "bitcoin"
	CoinEthereum    CoinID = "ethereum"
	CoinSolana      CoinID = "solana"
	CoinBinanceCoin CoinID = "binancecoin"
	CoinTether      CoinID = "tether"
	CoinDogecoin    CoinID = "dogecoin"
	CoinLitecoin    CoinID = "litecoin"
)

var supportedCoins = []CoinID{
	CoinBitcoin,
	CoinEthereum,
	CoinSolana,
	CoinBinanceCoin,
	CoinTether,
	CoinDogecoin,
	CoinLitecoin,
}

// SupportedCoins returns every asset identifier the service accepts.
func SupportedCoins() []CoinID {
	out := make([]CoinID, len(supportedCoins))
	copy(out, supportedCoins)
	return out
}

// Valid reports whether the identifier belongs to the supported set.
func (c CoinID) Valid() bool {
	for _, id := range supportedCoins {
		if c == id {
			return true
		}
	}
	return false
}

func (c CoinID) String() string {
	return string(c)
}

// Coin is the persisted market snapshot of one asset. Optional metrics are
// pointers: a value the provider omitted stays absent, it is never coerced
// to zero.
type Coin struct {
	ID                       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CoinID                   CoinID             `bson:"coinId" json:"coinId"`
	Name                     string             `bson:"name" json:"name"`
	MarketCap                float64            `bson:"marketCap" json:"marketCap"`
	CurrentPrice             float64            `bson:"currentPrice" json:"currentPrice"`
	PriceChangePercentage24h *float64           `bson:"priceChangePercentage24h,omitempty" json:"priceChangePercentage24h,omitempty"`
	PriceChangePercentage7d  *float64           `bson:"priceChangePercentage7d,omitempty" json:"priceChangePercentage7d,omitempty"`
	LowestPrice              *float64           `bson:"lowestPrice,omitempty" json:"lowestPrice,omitempty"`
	HighestPrice             *float64           `bson:"highestPrice,omitempty" json:"highestPrice,omitempty"`
	CreatedAt                time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt                time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CoinInput is the snapshot shape handed to the repository. Identity and
// timestamps are assigned by the store, never by calling code. Optional
// metrics deliberately lack omitempty on the bson side: an upsert replaces
// the snapshot wholesale, so a metric the provider stopped reporting must
// overwrite the stale value with null rather than survive the refresh.
type CoinInput struct {
	CoinID                   CoinID   `bson:"coinId" json:"coinId"`
	Name                     string   `bson:"name" json:"name"`
	MarketCap                float64  `bson:"marketCap" json:"marketCap"`
	CurrentPrice             float64  `bson:"currentPrice" json:"currentPrice"`
	PriceChangePercentage24h *float64 `bson:"priceChangePercentage24h" json:"priceChangePercentage24h,omitempty"`
	PriceChangePercentage7d  *float64 `bson:"priceChangePercentage7d" json:"priceChangePercentage7d,omitempty"`
	LowestPrice              *float64 `bson:"lowestPrice" json:"lowestPrice,omitempty"`
	HighestPrice             *float64 `bson:"highestPrice" json:"highestPrice,omitempty"`
}
