package testhelper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderBook(t *testing.T) {
	book := OrderBook("BTC/USD", `
		15990, 1
		16000, 0.5
	`, `
		16020, 2
		16010, 0.25
	`)

	bid, ok := book.BestBid()
	assert.True(t, ok)
	assert.Equal(t, "16000", bid.Price.String())

	ask, ok := book.BestAsk()
	assert.True(t, ok)
	assert.Equal(t, "16010", ask.Price.String())
}

func TestBalancesFromText(t *testing.T) {
	balances := BalancesFromText(`
		USD, 10.5, 2.5
		BTC, 0.1
	`)
	assert.Equal(t, "13", balances["USD"].Total.String())
	assert.Equal(t, "0", balances["BTC"].Used.String())
}

func TestMarket(t *testing.T) {
	assert.Equal(t, 5, Market("ETH/BTC").Precision.Price)
	assert.Panics(t, func() { Market("XRP/USD") })
}
