package cexapi

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/valyala/fastjson"

	"github.com/c9s/cexio/pkg/types"
)

type PlaceOrderRequest struct {
	client *RestClient

	pair      string
	side      string
	amount    string
	price     *string
	orderType *string
}

func (c *RestClient) NewPlaceOrderRequest() *PlaceOrderRequest {
	return &PlaceOrderRequest{client: c}
}

func (r *PlaceOrderRequest) Pair(pair string) *PlaceOrderRequest {
	r.pair = pair
	return r
}

// Side is sent as the "type" field, "buy" or "sell".
func (r *PlaceOrderRequest) Side(side string) *PlaceOrderRequest {
	r.side = side
	return r
}

// Amount is in base currency, except for market buys where it is the quote notional.
func (r *PlaceOrderRequest) Amount(amount string) *PlaceOrderRequest {
	r.amount = amount
	return r
}

func (r *PlaceOrderRequest) Price(price string) *PlaceOrderRequest {
	r.price = &price
	return r
}

// OrderType is sent as "order_type". Limit orders leave it unset.
func (r *PlaceOrderRequest) OrderType(orderType string) *PlaceOrderRequest {
	r.orderType = &orderType
	return r
}

func (r *PlaceOrderRequest) GetParameters() url.Values {
	params := url.Values{
		"pair":   {r.pair},
		"type":   {r.side},
		"amount": {r.amount},
	}

	if r.price != nil {
		params.Set("price", *r.price)
	}

	if r.orderType != nil {
		params.Set("order_type", *r.orderType)
	}

	return params
}

func (r *PlaceOrderRequest) Do(ctx context.Context) (*Order, error) {
	v, err := r.client.Call(ctx, EndpointPlaceOrder, r.GetParameters())
	if err != nil {
		return nil, err
	}

	order := decodeOrder(v)
	return &order, nil
}

type CancelOrderRequest struct {
	client *RestClient

	id string
}

func (c *RestClient) NewCancelOrderRequest() *CancelOrderRequest {
	return &CancelOrderRequest{client: c}
}

func (r *CancelOrderRequest) ID(id string) *CancelOrderRequest {
	r.id = id
	return r
}

func (r *CancelOrderRequest) Do(ctx context.Context) error {
	_, err := r.client.Call(ctx, EndpointCancelOrder, url.Values{"id": {r.id}})
	return err
}

type CancelOrdersRequest struct {
	client *RestClient

	pair string
}

func (c *RestClient) NewCancelOrdersRequest() *CancelOrdersRequest {
	return &CancelOrdersRequest{client: c}
}

func (r *CancelOrdersRequest) Pair(pair string) *CancelOrdersRequest {
	r.pair = pair
	return r
}

// Do cancels every open order of the pair and returns the canceled order ids.
func (r *CancelOrdersRequest) Do(ctx context.Context) ([]string, error) {
	v, err := r.client.Call(ctx, EndpointCancelOrders, url.Values{"pair": {r.pair}})
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, id := range v.GetArray("data") {
		if f := fieldOf(id); f.Valid {
			ids = append(ids, f.Text)
		}
	}
	return ids, nil
}

type GetOrderRequest struct {
	client *RestClient

	id string
}

func (c *RestClient) NewGetOrderRequest() *GetOrderRequest {
	return &GetOrderRequest{client: c}
}

func (r *GetOrderRequest) ID(id string) *GetOrderRequest {
	r.id = id
	return r
}

func (r *GetOrderRequest) Do(ctx context.Context) (*Order, error) {
	v, err := r.client.Call(ctx, EndpointGetOrder, url.Values{"id": {r.id}})
	if err != nil {
		return nil, err
	}

	order := decodeOrder(v)
	return &order, nil
}

type GetOpenOrdersRequest struct {
	client *RestClient

	pair *string
}

func (c *RestClient) NewGetOpenOrdersRequest() *GetOpenOrdersRequest {
	return &GetOpenOrdersRequest{client: c}
}

// Pair scopes the listing to one pair, otherwise every pair is listed.
func (r *GetOpenOrdersRequest) Pair(pair string) *GetOpenOrdersRequest {
	r.pair = &pair
	return r
}

func (r *GetOpenOrdersRequest) Do(ctx context.Context) ([]Order, error) {
	endpoint := EndpointOpenOrders
	params := url.Values{}
	if r.pair != nil {
		endpoint = EndpointOpenOrdersPair
		params.Set("pair", *r.pair)
	}

	v, err := r.client.Call(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}

	return decodeOrders(v)
}

type GetArchivedOrdersRequest struct {
	client *RestClient

	pair     string
	limit    *int
	dateFrom *time.Time
	dateTo   *time.Time
	status   *string
}

func (c *RestClient) NewGetArchivedOrdersRequest() *GetArchivedOrdersRequest {
	return &GetArchivedOrdersRequest{client: c}
}

func (r *GetArchivedOrdersRequest) Pair(pair string) *GetArchivedOrdersRequest {
	r.pair = pair
	return r
}

func (r *GetArchivedOrdersRequest) Limit(limit int) *GetArchivedOrdersRequest {
	r.limit = &limit
	return r
}

func (r *GetArchivedOrdersRequest) DateFrom(t time.Time) *GetArchivedOrdersRequest {
	r.dateFrom = &t
	return r
}

func (r *GetArchivedOrdersRequest) DateTo(t time.Time) *GetArchivedOrdersRequest {
	r.dateTo = &t
	return r
}

// Status filters by venue status code, e.g. "d" for done or "c" for canceled.
func (r *GetArchivedOrdersRequest) Status(status string) *GetArchivedOrdersRequest {
	r.status = &status
	return r
}

func (r *GetArchivedOrdersRequest) GetParameters() url.Values {
	params := url.Values{"pair": {r.pair}}
	if r.limit != nil {
		params.Set("limit", itoa(*r.limit))
	}
	if r.dateFrom != nil {
		params.Set("dateFrom", strconv.FormatInt(r.dateFrom.Unix(), 10))
	}
	if r.dateTo != nil {
		params.Set("dateTo", strconv.FormatInt(r.dateTo.Unix(), 10))
	}
	if r.status != nil {
		params.Set("status", *r.status)
	}
	return params
}

func (r *GetArchivedOrdersRequest) Do(ctx context.Context) ([]Order, error) {
	v, err := r.client.Call(ctx, EndpointArchivedOrders, r.GetParameters())
	if err != nil {
		return nil, err
	}

	return decodeOrders(v)
}

func decodeOrders(v *fastjson.Value) ([]Order, error) {
	// some listings wrap the records in a "data" envelope
	if data := v.Get("data"); data != nil && data.Type() == fastjson.TypeArray {
		v = data
	}

	rows, err := v.Array()
	if err != nil {
		return nil, types.NewMalformedPayloadError("order listing is not an array: %s", v.String())
	}

	orders := make([]Order, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, decodeOrder(row))
	}
	return orders, nil
}
