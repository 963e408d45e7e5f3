package types

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/c9s/cexio/pkg/fixedpoint"
)

func TestMarketMap(t *testing.T) {
	markets := MarketMap{}
	markets.Add(Market{ID: "BTC/USD", Symbol: "BTC/USD", Base: "BTC", Quote: "USD"})
	markets.Add(Market{ID: "ETH/BTC", Symbol: "ETH/BTC", Base: "ETH", Quote: "BTC"})

	assert.True(t, markets.Has("BTC/USD"))
	assert.False(t, markets.Has("BTC/EUR"))
	assert.Equal(t, []string{"BTC/USD", "ETH/BTC"}, markets.Symbols())
	assert.Equal(t, []string{"BTC", "ETH", "USD"}, markets.Currencies())
}

func TestMarket_Format(t *testing.T) {
	market := Market{Precision: MarketPrecision{Price: 1, Amount: 8}}
	assert.Equal(t, "1234.5", market.FormatPrice(fixedpoint.MustNewFromString("1234.56")))
	assert.Equal(t, "0.00100000", market.FormatQuantity(fixedpoint.MustNewFromString("0.001")))
}
