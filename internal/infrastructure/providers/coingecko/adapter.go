package coingecko

import (
	"github.com/diegosantosouza/projeto-teste-truther/internal/domain/entities"
)

// marketDataToCoin maps one wire record to the internal snapshot shape,
// omitting identity and timestamp fields, which the store assigns. It
// returns nil when a required field is absent; optional metrics pass
// through as-is so absence is preserved.
func marketDataToCoin(data CoinMarketData) *entities.CoinInput {
	if data.ID == "" || data.Name == "" || data.CurrentPrice == nil || data.MarketCap == nil {
		return nil
	}

	return &entities.CoinInput{
		CoinID:                   entities.CoinID(data.ID),
		Name:                     data.Name,
		MarketCap:                *data.MarketCap,
		CurrentPrice:             *data.CurrentPrice,
		PriceChangePercentage24h: data.PriceChangePercentage24h,
		PriceChangePercentage7d:  data.PriceChangePercentage7dInCurrency,
		LowestPrice:              data.ATL,
		HighestPrice:             data.ATH,
	}
}
