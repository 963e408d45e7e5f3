package cex

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/cexio/pkg/testutil"
)

func TestExchange_Integration(t *testing.T) {
	key, secret, uid, ok := testutil.IntegrationTestConfigured(t, "CEX")
	if !ok {
		t.Skip("CEX api integration test is not configured")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	ex := New(key, secret, uid)

	markets, err := ex.LoadMarkets(ctx)
	require.NoError(t, err)
	require.True(t, markets.Has("BTC/USD"))

	book, err := ex.QueryOrderBook(ctx, "BTC/USD")
	require.NoError(t, err)
	assert.NotEmpty(t, book.Bids)

	balances, err := ex.QueryAccountBalances(ctx)
	require.NoError(t, err)
	assert.NotNil(t, balances.Balances)

	_, err = ex.QueryOpenOrders(ctx, "BTC/USD", nil)
	assert.NoError(t, err)
}
