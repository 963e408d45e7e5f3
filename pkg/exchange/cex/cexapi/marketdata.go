package cexapi

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/valyala/fastjson"

	"github.com/c9s/cexio/pkg/types"
)

type GetCurrencyLimitsRequest struct {
	client *RestClient
}

func (c *RestClient) NewGetCurrencyLimitsRequest() *GetCurrencyLimitsRequest {
	return &GetCurrencyLimitsRequest{client: c}
}

func (r *GetCurrencyLimitsRequest) Do(ctx context.Context) ([]PairLimit, error) {
	v, err := r.client.Call(ctx, EndpointCurrencyLimits, nil)
	if err != nil {
		return nil, err
	}

	pairs := v.GetArray("data", "pairs")
	limits := make([]PairLimit, 0, len(pairs))
	for _, p := range pairs {
		limits = append(limits, decodePairLimit(p))
	}

	return limits, nil
}

type GetTickerRequest struct {
	client *RestClient

	pair string
}

func (c *RestClient) NewGetTickerRequest() *GetTickerRequest {
	return &GetTickerRequest{client: c}
}

// Pair sets the {pair} path placeholder, e.g. "BTC/USD".
func (r *GetTickerRequest) Pair(pair string) *GetTickerRequest {
	r.pair = pair
	return r
}

func (r *GetTickerRequest) Do(ctx context.Context) (*Ticker, error) {
	v, err := r.client.Call(ctx, EndpointTicker, url.Values{"pair": {r.pair}})
	if err != nil {
		return nil, err
	}

	ticker := decodeTicker(v)
	return &ticker, nil
}

type GetTickersRequest struct {
	client *RestClient

	currencies []string
}

func (c *RestClient) NewGetTickersRequest() *GetTickersRequest {
	return &GetTickersRequest{client: c}
}

// Currencies sets the {currencies} path placeholder. They are joined by "/".
func (r *GetTickersRequest) Currencies(currencies ...string) *GetTickersRequest {
	r.currencies = currencies
	return r
}

func (r *GetTickersRequest) Do(ctx context.Context) ([]Ticker, error) {
	v, err := r.client.Call(ctx, EndpointTickers, url.Values{"currencies": {strings.Join(r.currencies, "/")}})
	if err != nil {
		return nil, err
	}

	data := v.GetArray("data")
	tickers := make([]Ticker, 0, len(data))
	for _, t := range data {
		tickers = append(tickers, decodeTicker(t))
	}

	return tickers, nil
}

type GetLastPriceRequest struct {
	client *RestClient

	pair string
}

func (c *RestClient) NewGetLastPriceRequest() *GetLastPriceRequest {
	return &GetLastPriceRequest{client: c}
}

func (r *GetLastPriceRequest) Pair(pair string) *GetLastPriceRequest {
	r.pair = pair
	return r
}

func (r *GetLastPriceRequest) Do(ctx context.Context) (*LastPrice, error) {
	v, err := r.client.Call(ctx, EndpointLastPrice, url.Values{"pair": {r.pair}})
	if err != nil {
		return nil, err
	}

	return &LastPrice{
		Curr1:     getString(v, "curr1"),
		Curr2:     getString(v, "curr2"),
		LastPrice: getField(v, "lprice"),
		Raw:       rawOf(v),
	}, nil
}

type GetOrderBookRequest struct {
	client *RestClient

	pair  string
	depth *int
}

func (c *RestClient) NewGetOrderBookRequest() *GetOrderBookRequest {
	return &GetOrderBookRequest{client: c}
}

func (r *GetOrderBookRequest) Pair(pair string) *GetOrderBookRequest {
	r.pair = pair
	return r
}

// Depth limits the number of levels per side, sent as the "depth" query parameter.
func (r *GetOrderBookRequest) Depth(depth int) *GetOrderBookRequest {
	r.depth = &depth
	return r
}

func (r *GetOrderBookRequest) Do(ctx context.Context) (*OrderBook, error) {
	params := url.Values{"pair": {r.pair}}
	if r.depth != nil {
		params.Set("depth", itoa(*r.depth))
	}

	v, err := r.client.Call(ctx, EndpointOrderBook, params)
	if err != nil {
		return nil, err
	}

	return decodeOrderBook(v)
}

type GetTradeHistoryRequest struct {
	client *RestClient

	pair  string
	since *string
}

func (c *RestClient) NewGetTradeHistoryRequest() *GetTradeHistoryRequest {
	return &GetTradeHistoryRequest{client: c}
}

func (r *GetTradeHistoryRequest) Pair(pair string) *GetTradeHistoryRequest {
	r.pair = pair
	return r
}

// SinceTID asks for trades after the given trade id, sent as the "since" query parameter.
func (r *GetTradeHistoryRequest) SinceTID(tid string) *GetTradeHistoryRequest {
	r.since = &tid
	return r
}

func (r *GetTradeHistoryRequest) Do(ctx context.Context) ([]Trade, error) {
	params := url.Values{"pair": {r.pair}}
	if r.since != nil {
		params.Set("since", *r.since)
	}

	v, err := r.client.Call(ctx, EndpointTradeHistory, params)
	if err != nil {
		return nil, err
	}

	return decodeTrades(v)
}

func decodeTrades(v *fastjson.Value) ([]Trade, error) {
	rows, err := v.Array()
	if err != nil {
		return nil, types.NewMalformedPayloadError("trade history is not an array: %s", v.String())
	}

	trades := make([]Trade, 0, len(rows))
	for _, row := range rows {
		trades = append(trades, decodeTrade(row))
	}
	return trades, nil
}

// OHLCVDateLayout is the layout of the {yyyymmdd} placeholder.
const OHLCVDateLayout = "20060102"

type GetOHLCVRequest struct {
	client *RestClient

	pair string
	date time.Time
}

func (c *RestClient) NewGetOHLCVRequest() *GetOHLCVRequest {
	return &GetOHLCVRequest{client: c}
}

func (r *GetOHLCVRequest) Pair(pair string) *GetOHLCVRequest {
	r.pair = pair
	return r
}

// Date sets the {yyyymmdd} placeholder to the UTC calendar day of t.
func (r *GetOHLCVRequest) Date(t time.Time) *GetOHLCVRequest {
	r.date = t
	return r
}

func (r *GetOHLCVRequest) Do(ctx context.Context) (*OHLCV, error) {
	params := url.Values{
		"pair":     {r.pair},
		"yyyymmdd": {r.date.UTC().Format(OHLCVDateLayout)},
	}

	v, err := r.client.Call(ctx, EndpointOHLCV, params)
	if err != nil {
		return nil, err
	}

	return decodeOHLCV(v), nil
}
