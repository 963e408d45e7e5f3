package cex

import (
	"errors"
	"math"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/cexio/pkg/exchange/cex/cexapi"
	"github.com/c9s/cexio/pkg/fixedpoint"
	"github.com/c9s/cexio/pkg/types"
)

var num = fixedpoint.MustNewFromString

func numPtr(s string) *fixedpoint.Value {
	return fixedpoint.NewPtr(num(s))
}

func field(s string) cexapi.Field {
	return cexapi.NewField(s)
}

var btcusd = types.Market{ID: "BTC/USD", Symbol: "BTC/USD", Base: "BTC", Quote: "USD"}

func TestAmountPrecision(t *testing.T) {
	for k := 0; k <= 8; k++ {
		lot := strconv.FormatFloat(math.Pow10(-k), 'f', -1, 64)
		t.Run(lot, func(t *testing.T) {
			p, err := amountPrecision(field(lot))
			assert.NoError(t, err)
			assert.Equal(t, k, p)
		})
	}

	p, err := amountPrecision(field("1e-05"))
	assert.NoError(t, err)
	assert.Equal(t, 5, p)

	for _, lot := range []string{"0.003", "0", "-0.1", "abc"} {
		_, err := amountPrecision(field(lot))
		assert.True(t, errors.Is(err, types.ErrMalformedMarketData), lot)
	}

	_, err = amountPrecision(cexapi.Field{})
	assert.True(t, errors.Is(err, types.ErrMalformedMarketData))
}

func TestPricePrecision(t *testing.T) {
	tests := []struct {
		minPrice string
		want     int
	}{
		{"100", 0},
		{"0.01", 2},
		{"0.10", 2},
		{"0.00001", 5},
		{"1e-05", 5},
		{"1.5", 1},
	}

	for _, tt := range tests {
		t.Run(tt.minPrice, func(t *testing.T) {
			p, err := pricePrecision(field(tt.minPrice))
			assert.NoError(t, err)
			assert.Equal(t, tt.want, p)
		})
	}

	_, err := pricePrecision(field("abc"))
	assert.True(t, errors.Is(err, types.ErrMalformedMarketData))

	p, err := pricePrecision(cexapi.Field{})
	assert.NoError(t, err)
	assert.Equal(t, 0, p)
}

func TestToGlobalMarket(t *testing.T) {
	market, err := toGlobalMarket(cexapi.PairLimit{
		Symbol1:      "BTC",
		Symbol2:      "USD",
		MinLotSize:   field("0.01"),
		MaxLotSize:   field("30"),
		MinLotSizeS2: field("2.5"),
		MinPrice:     field("100"),
		MaxPrice:     field("35000"),
		Raw:          []byte(`{"symbol1":"BTC"}`),
	})
	require.NoError(t, err)

	assert.Equal(t, "BTC/USD", market.ID)
	assert.Equal(t, "BTC/USD", market.Symbol)
	assert.Equal(t, market.Base+"/"+market.Quote, market.Symbol)
	assert.Equal(t, types.MarketPrecision{Price: 0, Amount: 2}, market.Precision)
	assert.Equal(t, numPtr("0.01"), market.Limits.Amount.Min)
	assert.Equal(t, numPtr("30"), market.Limits.Amount.Max)
	assert.Equal(t, numPtr("100"), market.Limits.Price.Min)
	assert.Equal(t, numPtr("35000"), market.Limits.Price.Max)
	assert.Equal(t, numPtr("2.5"), market.Limits.Cost.Min)
	assert.Nil(t, market.Limits.Cost.Max)
	assert.JSONEq(t, `{"symbol1":"BTC"}`, string(market.Info))

	_, err = toGlobalMarket(cexapi.PairLimit{Symbol1: "BTC", Symbol2: "USD", MinLotSize: field("0.02"), MinPrice: field("1")})
	assert.True(t, errors.Is(err, types.ErrMalformedMarketData))

	_, err = toGlobalMarket(cexapi.PairLimit{Symbol1: "BTC", MinLotSize: field("0.01"), MinPrice: field("1")})
	assert.True(t, errors.Is(err, types.ErrMalformedMarketData))
}

func TestToGlobalMarket_WithoutMinPrice(t *testing.T) {
	market, err := toGlobalMarket(cexapi.PairLimit{
		Symbol1:    "BTC",
		Symbol2:    "USD",
		MinLotSize: field("0.01"),
		MaxPrice:   field("35000"),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, market.Precision.Price)
	assert.Nil(t, market.Limits.Price.Min)
	assert.Equal(t, numPtr("35000"), market.Limits.Price.Max)
}

func TestToGlobalMarket_Unrepresentable(t *testing.T) {
	tests := []struct {
		name  string
		limit cexapi.PairLimit
	}{
		{
			name: "max lot size beyond range",
			limit: cexapi.PairLimit{Symbol1: "SHIB", Symbol2: "USD",
				MinLotSize: field("1"), MaxLotSize: field("100000000000"), MinPrice: field("0.00000001")},
		},
		{
			name: "min price below the smallest unit",
			limit: cexapi.PairLimit{Symbol1: "SHIB", Symbol2: "USD",
				MinLotSize: field("1"), MaxLotSize: field("1000"), MinPrice: field("0.000000001")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := toGlobalMarket(tt.limit)
			assert.True(t, errors.Is(err, types.ErrMalformedMarketData), "%v", err)
		})
	}
}

func TestToGlobalTicker_Unrepresentable(t *testing.T) {
	_, err := toGlobalTicker(cexapi.Ticker{Volume: field("200000000000")}, "SHIB/USD")
	assert.True(t, errors.Is(err, types.ErrMalformedPayload), "%v", err)

	_, err = toGlobalTicker(cexapi.Ticker{Last: field("0.000000012345")}, "SHIB/USD")
	assert.True(t, errors.Is(err, types.ErrMalformedPayload), "%v", err)
}

func TestToGlobalTicker(t *testing.T) {
	ticker, err := toGlobalTicker(cexapi.Ticker{
		Timestamp: field("1513167855"),
		High:      field("17000"),
		Last:      field("16720"),
		Volume:    field("100.5"),
		Bid:       field("16700.1"),
	}, "BTC/USD")
	require.NoError(t, err)

	assert.Equal(t, "BTC/USD", ticker.Symbol)
	require.NotNil(t, ticker.Timestamp)
	assert.Equal(t, int64(1513167855000), ticker.Timestamp.UnixMilli())
	assert.Equal(t, numPtr("17000"), ticker.High)
	assert.Equal(t, numPtr("16700.1"), ticker.Bid)
	assert.Equal(t, numPtr("100.5"), ticker.BaseVolume)
	assert.Nil(t, ticker.Low)
	assert.Nil(t, ticker.Ask)
	assert.Nil(t, ticker.Vwap)
	assert.Nil(t, ticker.Change)
	assert.Nil(t, ticker.QuoteVolume)

	ticker, err = toGlobalTicker(cexapi.Ticker{}, "BTC/USD")
	require.NoError(t, err)
	assert.Nil(t, ticker.Timestamp)

	_, err = toGlobalTicker(cexapi.Ticker{Last: field("n/a")}, "BTC/USD")
	assert.True(t, errors.Is(err, types.ErrMalformedPayload))
}

func TestToGlobalOrderBook(t *testing.T) {
	book, err := toGlobalOrderBook(&cexapi.OrderBook{
		Timestamp: field("1513173506"),
		Bids: []cexapi.PriceLevel{
			{Price: field("16540"), Amount: field("1")},
			{Price: field("16541.9"), Amount: field("0.05")},
		},
		Asks: []cexapi.PriceLevel{
			{Price: field("16570"), Amount: field("2")},
			{Price: field("16560"), Amount: field("0.5")},
		},
	}, "BTC/USD")
	require.NoError(t, err)

	assert.Equal(t, int64(1513173506000), book.Timestamp.UnixMilli())
	assert.Equal(t, num("16541.9"), book.Bids[0].Price)
	assert.Equal(t, num("16540"), book.Bids[1].Price)
	assert.Equal(t, num("16560"), book.Asks[0].Price)
	assert.Equal(t, num("16570"), book.Asks[1].Price)
}

func TestToGlobalTrade(t *testing.T) {
	trade, err := toGlobalTrade(cexapi.Trade{
		TID:    "2797587",
		Type:   "buy",
		Date:   field("1513174106"),
		Amount: field("0.0100"),
		Price:  field("16750.1"),
	}, "BTC/USD")
	require.NoError(t, err)

	assert.Equal(t, "2797587", trade.ID)
	assert.Equal(t, int64(1513174106000), trade.Timestamp.UnixMilli())
	assert.Equal(t, types.SideTypeBuy, trade.Side)
	assert.Equal(t, types.OrderType(""), trade.Type)
	assert.Equal(t, num("0.01"), trade.Amount)
	assert.Equal(t, num("16750.1"), trade.Price)

	_, err = toGlobalTrade(cexapi.Trade{TID: "1", Amount: field("1")}, "BTC/USD")
	assert.True(t, errors.Is(err, types.ErrMalformedPayload))
}

func TestToGlobalOrderStatus(t *testing.T) {
	assert.Equal(t, types.OrderStatusCanceled, toGlobalOrderStatus("cd"))
	assert.Equal(t, types.OrderStatusCanceled, toGlobalOrderStatus("c"))
	assert.Equal(t, types.OrderStatusClosed, toGlobalOrderStatus("d"))
	assert.Equal(t, types.OrderStatusOpen, toGlobalOrderStatus("open"))
	assert.Equal(t, types.OrderStatus("a"), toGlobalOrderStatus("a"))
}

func TestToGlobalOrder(t *testing.T) {
	t.Run("closed order with market context", func(t *testing.T) {
		order, err := toGlobalOrder(cexapi.Order{
			ID:              "22347874",
			Time:            field("1513169144000"),
			Type:            "buy",
			Status:          "d",
			Price:           field("16000"),
			Amount:          field("0.1"),
			Remains:         field("0"),
			TradingFeeMaker: field("0.16"),
			TradingFeeTaker: field("0.25"),
			FeeAmounts:      map[string]cexapi.Field{"USD": field("4.00")},
			TotalAmounts:    map[string]cexapi.Field{"USD": field("1599.5")},
		}, &btcusd)
		require.NoError(t, err)

		assert.Equal(t, "22347874", order.ID)
		assert.Equal(t, int64(1513169144000), order.Timestamp.UnixMilli())
		assert.Equal(t, types.OrderStatusClosed, order.Status)
		assert.Equal(t, "BTC/USD", order.Symbol)
		assert.Equal(t, types.SideTypeBuy, order.Side)
		assert.Equal(t, numPtr("0.1"), order.Filled)
		assert.Equal(t, numPtr("0"), order.Remaining)
		assert.Equal(t, numPtr("1599.5"), order.Cost)
		require.NotNil(t, order.Fee)
		assert.Equal(t, "USD", order.Fee.Currency)
		assert.Equal(t, num("4"), order.Fee.Cost)
		assert.Equal(t, numPtr("0.0016"), order.Fee.Rate)
	})

	t.Run("base currency fee wins", func(t *testing.T) {
		order, err := toGlobalOrder(cexapi.Order{
			ID:              "1",
			Amount:          field("1"),
			Pending:         field("1"),
			TradingFeeTaker: field("0.25"),
			FeeAmounts:      map[string]cexapi.Field{"USD": field("4"), "BTC": field("0.0002")},
		}, &btcusd)
		require.NoError(t, err)
		require.NotNil(t, order.Fee)
		assert.Equal(t, "BTC", order.Fee.Currency)
		assert.Equal(t, num("0.0002"), order.Fee.Cost)
		assert.Equal(t, numPtr("0.0025"), order.Fee.Rate)
	})

	t.Run("zero maker fee is kept", func(t *testing.T) {
		order, err := toGlobalOrder(cexapi.Order{
			ID:              "1",
			TradingFeeMaker: field("0"),
			TradingFeeTaker: field("0.25"),
			FeeAmounts:      map[string]cexapi.Field{"USD": field("0")},
		}, &btcusd)
		require.NoError(t, err)
		require.NotNil(t, order.Fee)
		assert.Equal(t, numPtr("0"), order.Fee.Rate)
	})

	t.Run("pending is preferred over remains", func(t *testing.T) {
		order, err := toGlobalOrder(cexapi.Order{
			ID:      "1",
			Amount:  field("2"),
			Pending: field("0.5"),
			Remains: field("1.5"),
			Price:   field("100"),
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, numPtr("0.5"), order.Remaining)
		assert.Equal(t, numPtr("1.5"), order.Filled)
		assert.Equal(t, numPtr("150"), order.Cost)
		assert.Nil(t, order.Fee)
		assert.Empty(t, order.Symbol)
	})

	t.Run("zero pending does not fall back", func(t *testing.T) {
		order, err := toGlobalOrder(cexapi.Order{
			ID:      "1",
			Amount:  field("2"),
			Pending: field("0"),
			Remains: field("1.5"),
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, numPtr("0"), order.Remaining)
		assert.Equal(t, numPtr("2"), order.Filled)
		assert.Nil(t, order.Cost)
	})

	t.Run("archived order time", func(t *testing.T) {
		order, err := toGlobalOrder(cexapi.Order{ID: "1", Time: field("2017-12-13T12:48:36.583Z")}, nil)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2017, 12, 13, 12, 48, 36, 583000000, time.UTC), order.Timestamp.Time().UTC())
	})

	t.Run("non numeric amount", func(t *testing.T) {
		_, err := toGlobalOrder(cexapi.Order{ID: "1", Amount: field("x")}, nil)
		assert.True(t, errors.Is(err, types.ErrMalformedPayload))
	})
}

func TestToGlobalOrder_FilledPlusRemainingIsAmount(t *testing.T) {
	cases := [][2]string{
		{"1", "0"},
		{"1", "1"},
		{"0.3", "0.1"},
		{"12.34567891", "0.00000001"},
		{"100", "33.33333333"},
	}

	for _, c := range cases {
		order, err := toGlobalOrder(cexapi.Order{ID: "1", Amount: field(c[0]), Pending: field(c[1])}, nil)
		require.NoError(t, err)
		assert.Equal(t, *order.Amount, order.Filled.Add(*order.Remaining), c)
	}
}

func TestToGlobalBalances(t *testing.T) {
	snapshot, err := toGlobalBalances(&cexapi.Balances{
		Username:  "x",
		Timestamp: field("0"),
		Currencies: map[string]cexapi.BalanceEntry{
			"USD": {Available: field("10.5"), Orders: field("2.5")},
			"BTC": {Available: field("1")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, types.BalanceMap{
		"USD": {Currency: "USD", Free: num("10.5"), Used: num("2.5"), Total: num("13")},
		"BTC": {Currency: "BTC", Free: num("1"), Used: fixedpoint.Zero, Total: num("1")},
	}, snapshot.Balances)
}

func TestFilterSinceLimit(t *testing.T) {
	base := time.Unix(1513174106, 0)
	trades := []types.Trade{
		{ID: "3", Timestamp: types.MillisecondTimestamp(base.Add(2 * time.Second))},
		{ID: "1", Timestamp: types.MillisecondTimestamp(base)},
		{ID: "2", Timestamp: types.MillisecondTimestamp(base.Add(time.Second))},
		{ID: "4", Timestamp: types.MillisecondTimestamp(base.Add(3 * time.Second))},
	}

	timeOf := func(t types.Trade) time.Time { return t.Timestamp.Time() }
	since := base.Add(time.Second)

	got := filterSinceLimit(trades, timeOf, &since, 2)
	require.Len(t, got, 2)
	assert.Equal(t, "2", got[0].ID)
	assert.Equal(t, "3", got[1].ID)
}
