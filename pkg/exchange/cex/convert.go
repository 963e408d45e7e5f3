package cex

import (
	"sort"
	"time"

	"github.com/c9s/cexio/pkg/exchange/cex/cexapi"
	"github.com/c9s/cexio/pkg/fixedpoint"
	"github.com/c9s/cexio/pkg/types"
)

// orderTimestampScale converts the order "time" field into milliseconds.
// Order times are already reported in milliseconds, unlike every other entity.
const orderTimestampScale = 1

func toGlobalSymbol(base, quote string) string {
	return base + "/" + quote
}

func toGlobalMarket(limit cexapi.PairLimit) (types.Market, error) {
	if limit.Symbol1 == "" || limit.Symbol2 == "" {
		return types.Market{}, types.NewMalformedMarketDataError("pair without symbols: %s", limit.Raw)
	}

	symbol := toGlobalSymbol(limit.Symbol1, limit.Symbol2)

	pricePrec, err := pricePrecision(limit.MinPrice)
	if err != nil {
		return types.Market{}, err
	}

	amountPrec, err := amountPrecision(limit.MinLotSize)
	if err != nil {
		return types.Market{}, err
	}

	limits, err := toGlobalMarketLimits(limit)
	if err != nil {
		return types.Market{}, err
	}

	return types.Market{
		ID:     symbol,
		Symbol: symbol,
		Base:   limit.Symbol1,
		Quote:  limit.Symbol2,
		Precision: types.MarketPrecision{
			Price:  pricePrec,
			Amount: amountPrec,
		},
		Limits: limits,
		Info:   limit.Raw,
	}, nil
}

// secondsTimestamp converts a venue unix-seconds field, nil when absent.
func secondsTimestamp(f cexapi.Field) (*types.MillisecondTimestamp, error) {
	sec, ok, err := f.Int64()
	if err != nil || !ok {
		return nil, err
	}

	ts := types.NewMillisecondTimestampFromInt(sec * 1000)
	return &ts, nil
}

// orderTimestamp parses order times, which are integers in milliseconds or, for archived orders, ISO 8601 strings.
func orderTimestamp(f cexapi.Field) (*types.MillisecondTimestamp, error) {
	if !f.Valid {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339Nano, f.Text); err == nil {
		ts := types.MillisecondTimestamp(t)
		return &ts, nil
	}

	ms, _, err := f.Int64()
	if err != nil {
		return nil, err
	}

	ts := types.NewMillisecondTimestampFromInt(ms * orderTimestampScale)
	return &ts, nil
}

func toGlobalTicker(ticker cexapi.Ticker, symbol string) (*types.Ticker, error) {
	var err error
	t := &types.Ticker{
		Symbol: symbol,
		Info:   ticker.Raw,
	}

	if t.Timestamp, err = secondsTimestamp(ticker.Timestamp); err != nil {
		return nil, err
	}

	fields := []struct {
		dst **fixedpoint.Value
		src cexapi.Field
	}{
		{&t.High, ticker.High},
		{&t.Low, ticker.Low},
		{&t.Bid, ticker.Bid},
		{&t.Ask, ticker.Ask},
		{&t.Last, ticker.Last},
		{&t.BaseVolume, ticker.Volume},
	}

	for _, f := range fields {
		if *f.dst, err = f.src.Number(); err != nil {
			return nil, err
		}
	}

	return t, nil
}

func requiredNumber(name string, f cexapi.Field) (fixedpoint.Value, error) {
	n, err := f.Number()
	if err != nil {
		return fixedpoint.Zero, err
	}

	if n == nil {
		return fixedpoint.Zero, types.NewMalformedPayloadError("%s is missing", name)
	}

	return *n, nil
}

func toGlobalPriceVolumeSlice(levels []cexapi.PriceLevel) (types.PriceVolumeSlice, error) {
	slice := make(types.PriceVolumeSlice, 0, len(levels))
	for _, lvl := range levels {
		price, err := requiredNumber("price", lvl.Price)
		if err != nil {
			return nil, err
		}

		volume, err := requiredNumber("amount", lvl.Amount)
		if err != nil {
			return nil, err
		}

		slice = append(slice, types.PriceVolume{Price: price, Volume: volume})
	}
	return slice, nil
}

func toGlobalOrderBook(book *cexapi.OrderBook, symbol string) (*types.OrderBook, error) {
	bids, err := toGlobalPriceVolumeSlice(book.Bids)
	if err != nil {
		return nil, err
	}

	asks, err := toGlobalPriceVolumeSlice(book.Asks)
	if err != nil {
		return nil, err
	}

	ob := &types.OrderBook{
		Symbol: symbol,
		Bids:   bids.SortBids(),
		Asks:   asks.SortAsks(),
		Info:   book.Raw,
	}

	ts, err := secondsTimestamp(book.Timestamp)
	if err != nil {
		return nil, err
	}
	if ts != nil {
		ob.Timestamp = *ts
	}

	return ob, nil
}

func toGlobalTrade(trade cexapi.Trade, symbol string) (types.Trade, error) {
	price, err := requiredNumber("price", trade.Price)
	if err != nil {
		return types.Trade{}, err
	}

	amount, err := requiredNumber("amount", trade.Amount)
	if err != nil {
		return types.Trade{}, err
	}

	t := types.Trade{
		ID:     trade.TID,
		Symbol: symbol,
		Side:   types.SideType(trade.Type),
		Price:  price,
		Amount: amount,
		Info:   trade.Raw,
	}

	ts, err := secondsTimestamp(trade.Date)
	if err != nil {
		return types.Trade{}, err
	}
	if ts != nil {
		t.Timestamp = *ts
	}

	return t, nil
}

func toGlobalKLine(candle cexapi.Candle, symbol string, interval types.Interval) (types.KLine, error) {
	var k = types.KLine{Symbol: symbol, Interval: interval}
	var err error

	ts, err := secondsTimestamp(candle.Timestamp)
	if err != nil {
		return k, err
	}
	if ts == nil {
		return k, types.NewMalformedPayloadError("candle timestamp is missing")
	}
	k.StartTime = *ts

	if k.Open, err = requiredNumber("open", candle.Open); err != nil {
		return k, err
	}
	if k.High, err = requiredNumber("high", candle.High); err != nil {
		return k, err
	}
	if k.Low, err = requiredNumber("low", candle.Low); err != nil {
		return k, err
	}
	if k.Close, err = requiredNumber("close", candle.Close); err != nil {
		return k, err
	}
	if k.Volume, err = requiredNumber("volume", candle.Volume); err != nil {
		return k, err
	}

	return k, nil
}

var orderStatusMap = map[string]types.OrderStatus{
	"cd": types.OrderStatusCanceled,
	"c":  types.OrderStatusCanceled,
	"d":  types.OrderStatusClosed,
}

// toGlobalOrderStatus maps venue status codes. Unknown codes pass through unchanged.
func toGlobalOrderStatus(status string) types.OrderStatus {
	if s, ok := orderStatusMap[status]; ok {
		return s
	}
	return types.OrderStatus(status)
}

// toGlobalOrder normalizes an order. Without a market the cost and fee can not be
// read from the currency keyed fields and the cost falls back to price * filled.
func toGlobalOrder(order cexapi.Order, market *types.Market) (*types.Order, error) {
	var err error
	o := &types.Order{
		ID:     order.ID,
		Status: toGlobalOrderStatus(order.Status),
		Side:   types.SideType(order.Type),
		Info:   order.Raw,
	}

	if market != nil {
		o.Symbol = market.Symbol
	}

	if o.Timestamp, err = orderTimestamp(order.Time); err != nil {
		return nil, err
	}

	if o.Price, err = order.Price.Number(); err != nil {
		return nil, err
	}

	if o.Amount, err = order.Amount.Number(); err != nil {
		return nil, err
	}

	remainingField := order.Pending
	if !remainingField.Valid {
		remainingField = order.Remains
	}

	if o.Remaining, err = remainingField.Number(); err != nil {
		return nil, err
	}

	if o.Amount != nil && o.Remaining != nil {
		o.Filled = fixedpoint.NewPtr(o.Amount.Sub(*o.Remaining))
	}

	if market != nil {
		if total, ok := order.TotalAmounts[market.Quote]; ok {
			if o.Cost, err = total.Number(); err != nil {
				return nil, err
			}
		}

		if o.Fee, err = toGlobalFee(order, *market); err != nil {
			return nil, err
		}
	}

	if o.Cost == nil && o.Price != nil && o.Filled != nil {
		o.Cost = fixedpoint.NewPtr(o.Price.Mul(*o.Filled))
	}

	return o, nil
}

// toGlobalFee prefers the base currency fee over the quote currency fee.
// The rate is the maker percentage, or the taker one when the maker field is absent, as a 0-1 coefficient.
func toGlobalFee(order cexapi.Order, market types.Market) (*types.Fee, error) {
	var fee *types.Fee
	if cost, ok := order.FeeAmounts[market.Base]; ok {
		fee = &types.Fee{Currency: market.Base}
		c, err := cost.NumberOr(fixedpoint.Zero)
		if err != nil {
			return nil, err
		}
		fee.Cost = c
	} else if cost, ok := order.FeeAmounts[market.Quote]; ok {
		fee = &types.Fee{Currency: market.Quote}
		c, err := cost.NumberOr(fixedpoint.Zero)
		if err != nil {
			return nil, err
		}
		fee.Cost = c
	} else {
		return nil, nil
	}

	rateField := order.TradingFeeMaker
	if !rateField.Valid {
		rateField = order.TradingFeeTaker
	}

	rate, err := rateField.Number()
	if err != nil {
		return nil, err
	}

	if rate != nil {
		fee.Rate = fixedpoint.NewPtr(rate.Div(fixedpoint.NewFromInt(100)))
	}

	return fee, nil
}

// toGlobalBalances drops the administrative fields. Missing amounts default to zero.
func toGlobalBalances(balances *cexapi.Balances) (*types.BalanceSnapshot, error) {
	snapshot := &types.BalanceSnapshot{
		Balances: make(types.BalanceMap),
		Info:     balances.Raw,
	}

	for currency, entry := range balances.Currencies {
		free, err := entry.Available.NumberOr(fixedpoint.Zero)
		if err != nil {
			return nil, err
		}

		used, err := entry.Orders.NumberOr(fixedpoint.Zero)
		if err != nil {
			return nil, err
		}

		snapshot.Balances[currency] = types.NewBalance(currency, free, used)
	}

	return snapshot, nil
}

// filterSinceLimit sorts items by time, drops those before since and keeps at most limit of the rest.
func filterSinceLimit[T any](items []T, timeOf func(T) time.Time, since *time.Time, limit int) []T {
	sort.SliceStable(items, func(i, j int) bool {
		return timeOf(items[i]).Before(timeOf(items[j]))
	})

	if since != nil {
		filtered := items[:0]
		for _, item := range items {
			if !timeOf(item).Before(*since) {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	return items
}
