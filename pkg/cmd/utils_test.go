package cmd

import (
	"bytes"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/cexio/pkg/fixedpoint"
	"github.com/c9s/cexio/pkg/testing/testhelper"
	"github.com/c9s/cexio/pkg/types"
)

func TestSubmitOrderFromFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "place"}
	cmd.Flags().String("symbol", "", "")
	cmd.Flags().String("side", "", "")
	cmd.Flags().String("type", string(types.OrderTypeLimit), "")
	cmd.Flags().String("amount", "", "")
	cmd.Flags().String("price", "", "")
	require.NoError(t, cmd.Flags().Parse([]string{"--symbol=BTC/USD", "--side=buy", "--amount=0.01", "--price=16000"}))

	order, err := submitOrderFromFlags(cmd)
	require.NoError(t, err)
	assert.Equal(t, "BTC/USD", order.Symbol)
	assert.Equal(t, types.SideTypeBuy, order.Side)
	assert.Equal(t, types.OrderTypeLimit, order.Type)
	assert.Equal(t, "0.01", order.Amount.String())
	if assert.NotNil(t, order.Price) {
		assert.Equal(t, "16000", order.Price.String())
	}
}

func TestSubmitOrderFromFlags_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing symbol", []string{"--side=buy", "--amount=1"}},
		{"invalid side", []string{"--symbol=BTC/USD", "--side=long", "--amount=1"}},
		{"invalid type", []string{"--symbol=BTC/USD", "--side=sell", "--type=stop", "--amount=1"}},
		{"invalid amount", []string{"--symbol=BTC/USD", "--side=sell", "--amount=abc"}},
		{"invalid price", []string{"--symbol=BTC/USD", "--side=sell", "--amount=1", "--price=x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cobra.Command{Use: "place"}
			cmd.Flags().String("symbol", "", "")
			cmd.Flags().String("side", "", "")
			cmd.Flags().String("type", string(types.OrderTypeLimit), "")
			cmd.Flags().String("amount", "", "")
			cmd.Flags().String("price", "", "")
			require.NoError(t, cmd.Flags().Parse(tt.args))

			_, err := submitOrderFromFlags(cmd)
			assert.Error(t, err)
		})
	}
}

func TestSinceFlag(t *testing.T) {
	now := time.Date(2017, 12, 12, 12, 0, 0, 0, time.UTC)

	cmd := &cobra.Command{Use: "trades"}
	cmd.Flags().Duration("since", 0, "")
	since, err := sinceFlag(cmd, now)
	require.NoError(t, err)
	assert.Nil(t, since)

	require.NoError(t, cmd.Flags().Parse([]string{"--since=2h"}))
	since, err = sinceFlag(cmd, now)
	require.NoError(t, err)
	if assert.NotNil(t, since) {
		assert.Equal(t, now.Add(-2*time.Hour), *since)
	}
}

func TestRenderOrderBook(t *testing.T) {
	book := testhelper.OrderBook("BTC/USD", `
		16000, 0.5
		15990, 1
	`, `
		16010, 0.25
	`)

	var buf bytes.Buffer
	renderOrderBook(&buf, book, 5)
	out := buf.String()
	assert.Contains(t, out, "16000")
	assert.Contains(t, out, "15990")
	assert.Contains(t, out, "16010")
	assert.Contains(t, out, "0.25")
}

func TestRenderBalances(t *testing.T) {
	balances := testhelper.BalancesFromText(`
		USD, 10.5, 2.5
		BTC, 0
	`)

	var buf bytes.Buffer
	renderBalances(&buf, balances.NotZero())
	out := buf.String()
	assert.Contains(t, out, "USD")
	assert.Contains(t, out, "13")
	assert.NotContains(t, out, "BTC")
}

func TestRenderOrders(t *testing.T) {
	price := fixedpoint.NewFromInt(16000)
	orders := []types.Order{
		{ID: "101", Symbol: "BTC/USD", Type: types.OrderTypeLimit, Side: types.SideTypeSell, Price: &price, Status: types.OrderStatusOpen},
	}

	var buf bytes.Buffer
	renderOrders(&buf, "Open Orders", orders)
	out := buf.String()
	assert.Contains(t, out, "101")
	assert.Contains(t, out, "16000")
	assert.Contains(t, out, "open")
}

func TestRenderMarkets(t *testing.T) {
	var buf bytes.Buffer
	renderMarkets(&buf, testhelper.AllMarkets())
	out := buf.String()
	assert.Contains(t, out, "BTC/USD")
	assert.Contains(t, out, "ETH/BTC")
	assert.Contains(t, out, "35000")
}
