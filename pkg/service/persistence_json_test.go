package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/cexio/pkg/fixedpoint"
	"github.com/c9s/cexio/pkg/types"
)

func TestJsonPersistenceService(t *testing.T) {
	service := &JsonPersistenceService{Directory: t.TempDir()}
	store := service.NewStore("markets", "cex")

	var loaded types.MarketMap
	assert.Equal(t, ErrPersistenceNotExists, store.Load(&loaded))

	minPrice := fixedpoint.MustNewFromString("100")
	markets := types.MarketMap{
		"BTC/USD": {
			ID: "BTC/USD", Symbol: "BTC/USD", Base: "BTC", Quote: "USD",
			Precision: types.MarketPrecision{Price: 0, Amount: 2},
			Limits:    types.MarketLimits{Price: types.MinMax{Min: &minPrice}},
		},
	}

	require.NoError(t, store.Save(markets))
	require.NoError(t, store.Load(&loaded))
	assert.Equal(t, markets["BTC/USD"].Precision, loaded["BTC/USD"].Precision)
	assert.Equal(t, &minPrice, loaded["BTC/USD"].Limits.Price.Min)

	assert.NoError(t, store.Reset())
	assert.NoError(t, store.Reset())
	assert.Equal(t, ErrPersistenceNotExists, store.Load(&loaded))
}
