package cexapi

import (
	"encoding/json"
	"strings"

	"github.com/valyala/fastjson"

	"github.com/c9s/cexio/pkg/types"
)

// PairLimit is one entry of the currency_limits listing.
type PairLimit struct {
	Symbol1 string
	Symbol2 string

	MinLotSize   Field
	MaxLotSize   Field
	MinLotSizeS2 Field
	MinPrice     Field
	MaxPrice     Field

	Raw json.RawMessage
}

func decodePairLimit(v *fastjson.Value) PairLimit {
	return PairLimit{
		Symbol1:      getString(v, "symbol1"),
		Symbol2:      getString(v, "symbol2"),
		MinLotSize:   getField(v, "minLotSize"),
		MaxLotSize:   getField(v, "maxLotSize"),
		MinLotSizeS2: getField(v, "minLotSizeS2"),
		MinPrice:     getField(v, "minPrice"),
		MaxPrice:     getField(v, "maxPrice"),
		Raw:          rawOf(v),
	}
}

type Ticker struct {
	// Pair is only reported by the tickers listing, in BASE:QUOTE form.
	Pair string

	Timestamp Field
	Low       Field
	High      Field
	Last      Field
	Volume    Field
	Volume30d Field
	Bid       Field
	Ask       Field

	Raw json.RawMessage
}

func decodeTicker(v *fastjson.Value) Ticker {
	return Ticker{
		Pair:      getString(v, "pair"),
		Timestamp: getField(v, "timestamp"),
		Low:       getField(v, "low"),
		High:      getField(v, "high"),
		Last:      getField(v, "last"),
		Volume:    getField(v, "volume"),
		Volume30d: getField(v, "volume30d"),
		Bid:       getField(v, "bid"),
		Ask:       getField(v, "ask"),
		Raw:       rawOf(v),
	}
}

// Symbol converts the BASE:QUOTE pair into a BASE/QUOTE symbol.
func (t Ticker) Symbol() string {
	return strings.ReplaceAll(t.Pair, ":", "/")
}

type PriceLevel struct {
	Price  Field
	Amount Field
}

type OrderBook struct {
	Timestamp Field
	Pair      string
	Bids      []PriceLevel
	Asks      []PriceLevel

	Raw json.RawMessage
}

func decodePriceLevels(v *fastjson.Value, key string) ([]PriceLevel, error) {
	levels := v.GetArray(key)
	out := make([]PriceLevel, 0, len(levels))
	for _, lvl := range levels {
		pair := lvl.GetArray()
		if len(pair) < 2 {
			return nil, types.NewMalformedPayloadError("invalid %s level %s", key, lvl.String())
		}
		out = append(out, PriceLevel{Price: fieldOf(pair[0]), Amount: fieldOf(pair[1])})
	}
	return out, nil
}

func decodeOrderBook(v *fastjson.Value) (*OrderBook, error) {
	bids, err := decodePriceLevels(v, "bids")
	if err != nil {
		return nil, err
	}

	asks, err := decodePriceLevels(v, "asks")
	if err != nil {
		return nil, err
	}

	return &OrderBook{
		Timestamp: getField(v, "timestamp"),
		Pair:      getString(v, "pair"),
		Bids:      bids,
		Asks:      asks,
		Raw:       rawOf(v),
	}, nil
}

type Trade struct {
	TID    string
	Type   string
	Date   Field
	Amount Field
	Price  Field

	Raw json.RawMessage
}

func decodeTrade(v *fastjson.Value) Trade {
	return Trade{
		TID:    getString(v, "tid"),
		Type:   getString(v, "type"),
		Date:   getField(v, "date"),
		Amount: getField(v, "amount"),
		Price:  getField(v, "price"),
		Raw:    rawOf(v),
	}
}

const (
	feeAmountPrefix   = "fa:"
	totalAmountPrefix = "ta:"
)

// Order covers the shapes returned by get_order, open_orders, archived_orders and place_order.
type Order struct {
	ID      string
	Time    Field
	Type    string
	Status  string
	Symbol1 string
	Symbol2 string

	Price   Field
	Amount  Field
	Pending Field
	Remains Field

	TradingFeeMaker Field
	TradingFeeTaker Field

	// FeeAmounts and TotalAmounts hold the "fa:<currency>" and "ta:<currency>" fields keyed by currency.
	FeeAmounts   map[string]Field
	TotalAmounts map[string]Field

	// Complete is only reported by place_order.
	Complete *bool

	Raw json.RawMessage
}

func decodeOrder(v *fastjson.Value) Order {
	order := Order{
		ID:              getString(v, "id"),
		Time:            getField(v, "time"),
		Type:            getString(v, "type"),
		Status:          getString(v, "status"),
		Symbol1:         getString(v, "symbol1"),
		Symbol2:         getString(v, "symbol2"),
		Price:           getField(v, "price"),
		Amount:          getField(v, "amount"),
		Pending:         getField(v, "pending"),
		Remains:         getField(v, "remains"),
		TradingFeeMaker: getField(v, "tradingFeeMaker"),
		TradingFeeTaker: getField(v, "tradingFeeTaker"),
		FeeAmounts:      make(map[string]Field),
		TotalAmounts:    make(map[string]Field),
		Raw:             rawOf(v),
	}

	if c := v.Get("complete"); c != nil {
		switch c.Type() {
		case fastjson.TypeTrue:
			b := true
			order.Complete = &b
		case fastjson.TypeFalse:
			b := false
			order.Complete = &b
		}
	}

	if obj, err := v.Object(); err == nil {
		obj.Visit(func(key []byte, fv *fastjson.Value) {
			k := string(key)
			switch {
			case strings.HasPrefix(k, feeAmountPrefix):
				order.FeeAmounts[strings.TrimPrefix(k, feeAmountPrefix)] = fieldOf(fv)
			case strings.HasPrefix(k, totalAmountPrefix):
				order.TotalAmounts[strings.TrimPrefix(k, totalAmountPrefix)] = fieldOf(fv)
			}
		})
	}

	return order
}

type BalanceEntry struct {
	Available Field
	Orders    Field
}

// Balances is the account snapshot with the administrative fields split out.
type Balances struct {
	Username   string
	Timestamp  Field
	Currencies map[string]BalanceEntry

	Raw json.RawMessage
}

var balanceAdministrativeFields = map[string]struct{}{
	"username":  {},
	"timestamp": {},
}

func decodeBalances(v *fastjson.Value) (*Balances, error) {
	obj, err := v.Object()
	if err != nil {
		return nil, types.NewMalformedPayloadError("balance response is not an object: %s", v.String())
	}

	balances := &Balances{
		Username:   getString(v, "username"),
		Timestamp:  getField(v, "timestamp"),
		Currencies: make(map[string]BalanceEntry),
		Raw:        rawOf(v),
	}

	obj.Visit(func(key []byte, cv *fastjson.Value) {
		k := string(key)
		if _, skip := balanceAdministrativeFields[k]; skip {
			return
		}

		if cv.Type() != fastjson.TypeObject {
			return
		}

		balances.Currencies[k] = BalanceEntry{
			Available: getField(cv, "available"),
			Orders:    getField(cv, "orders"),
		}
	})

	return balances, nil
}

type Candle struct {
	Timestamp Field
	Open      Field
	High      Field
	Low       Field
	Close     Field
	Volume    Field
}

// OHLCV is the historical bars response, one JSON-encoded series per timeframe.
type OHLCV struct {
	Time   Field
	Series map[string]string

	Raw json.RawMessage
}

func decodeOHLCV(v *fastjson.Value) *OHLCV {
	ohlcv := &OHLCV{
		Time:   getField(v, "time"),
		Series: make(map[string]string),
		Raw:    rawOf(v),
	}

	if obj, err := v.Object(); err == nil {
		obj.Visit(func(key []byte, sv *fastjson.Value) {
			k := string(key)
			if strings.HasPrefix(k, "data") && sv.Type() == fastjson.TypeString {
				ohlcv.Series[strings.TrimPrefix(k, "data")] = string(sv.GetStringBytes())
			}
		})
	}

	return ohlcv
}

// Candles decodes the series of the given timeframe. A missing series yields no candles.
func (o *OHLCV) Candles(timeframe string) ([]Candle, error) {
	series, ok := o.Series[timeframe]
	if !ok || series == "" {
		return nil, nil
	}

	v, err := fastjson.Parse(series)
	if err != nil {
		return nil, types.NewMalformedPayloadError("invalid data%s series: %v", timeframe, err)
	}

	rows, err := v.Array()
	if err != nil {
		return nil, types.NewMalformedPayloadError("data%s series is not an array", timeframe)
	}

	candles := make([]Candle, 0, len(rows))
	for _, row := range rows {
		cols := row.GetArray()
		if len(cols) < 6 {
			return nil, types.NewMalformedPayloadError("invalid candle %s", row.String())
		}

		candles = append(candles, Candle{
			Timestamp: fieldOf(cols[0]),
			Open:      fieldOf(cols[1]),
			High:      fieldOf(cols[2]),
			Low:       fieldOf(cols[3]),
			Close:     fieldOf(cols[4]),
			Volume:    fieldOf(cols[5]),
		})
	}

	return candles, nil
}

type LastPrice struct {
	Curr1     string
	Curr2     string
	LastPrice Field

	Raw json.RawMessage
}

// TradingFee holds the fee percentages of one pair.
type TradingFee struct {
	Buy       Field
	Sell      Field
	BuyMaker  Field
	SellMaker Field
}
