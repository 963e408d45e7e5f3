package cexapi

import (
	"fmt"
	"net/http"
	"net/url"
	"regexp"
)

// Endpoint identifies one REST route of the venue.
type Endpoint int

const (
	EndpointCurrencyLimits Endpoint = iota
	EndpointLastPrice
	EndpointLastPrices
	EndpointOHLCV
	EndpointOrderBook
	EndpointTicker
	EndpointTickers
	EndpointTradeHistory
	EndpointConvert
	EndpointPriceStats

	EndpointActiveOrdersStatus
	EndpointArchivedOrders
	EndpointBalance
	EndpointCancelOrder
	EndpointCancelOrders
	EndpointCancelReplaceOrder
	EndpointClosePosition
	EndpointGetAddress
	EndpointGetMyFee
	EndpointGetOrder
	EndpointGetOrderTx
	EndpointOpenOrdersPair
	EndpointOpenOrders
	EndpointOpenPosition
	EndpointOpenPositions
	EndpointPlaceOrder
)

type endpointDefinition struct {
	Name    string
	Method  string
	Path    string
	Private bool
}

var endpointDefinitions = map[Endpoint]endpointDefinition{
	EndpointCurrencyLimits: {Name: "currency_limits", Method: http.MethodGet, Path: "currency_limits/"},
	EndpointLastPrice:      {Name: "last_price", Method: http.MethodGet, Path: "last_price/{pair}/"},
	EndpointLastPrices:     {Name: "last_prices", Method: http.MethodGet, Path: "last_prices/{currencies}/"},
	EndpointOHLCV:          {Name: "ohlcv", Method: http.MethodGet, Path: "ohlcv/hd/{yyyymmdd}/{pair}"},
	EndpointOrderBook:      {Name: "order_book", Method: http.MethodGet, Path: "order_book/{pair}/"},
	EndpointTicker:         {Name: "ticker", Method: http.MethodGet, Path: "ticker/{pair}/"},
	EndpointTickers:        {Name: "tickers", Method: http.MethodGet, Path: "tickers/{currencies}/"},
	EndpointTradeHistory:   {Name: "trade_history", Method: http.MethodGet, Path: "trade_history/{pair}/"},
	EndpointConvert:        {Name: "convert", Method: http.MethodPost, Path: "convert/{pair}"},
	EndpointPriceStats:     {Name: "price_stats", Method: http.MethodPost, Path: "price_stats/{pair}"},

	EndpointActiveOrdersStatus: {Name: "active_orders_status", Method: http.MethodPost, Path: "active_orders_status/", Private: true},
	EndpointArchivedOrders:     {Name: "archived_orders", Method: http.MethodPost, Path: "archived_orders/{pair}/", Private: true},
	EndpointBalance:            {Name: "balance", Method: http.MethodPost, Path: "balance/", Private: true},
	EndpointCancelOrder:        {Name: "cancel_order", Method: http.MethodPost, Path: "cancel_order/", Private: true},
	EndpointCancelOrders:       {Name: "cancel_orders", Method: http.MethodPost, Path: "cancel_orders/{pair}/", Private: true},
	EndpointCancelReplaceOrder: {Name: "cancel_replace_order", Method: http.MethodPost, Path: "cancel_replace_order/{pair}/", Private: true},
	EndpointClosePosition:      {Name: "close_position", Method: http.MethodPost, Path: "close_position/{pair}/", Private: true},
	EndpointGetAddress:         {Name: "get_address", Method: http.MethodPost, Path: "get_address/", Private: true},
	EndpointGetMyFee:           {Name: "get_myfee", Method: http.MethodPost, Path: "get_myfee/", Private: true},
	EndpointGetOrder:           {Name: "get_order", Method: http.MethodPost, Path: "get_order/", Private: true},
	EndpointGetOrderTx:         {Name: "get_order_tx", Method: http.MethodPost, Path: "get_order_tx/", Private: true},
	EndpointOpenOrdersPair:     {Name: "open_orders_pair", Method: http.MethodPost, Path: "open_orders/{pair}/", Private: true},
	EndpointOpenOrders:         {Name: "open_orders", Method: http.MethodPost, Path: "open_orders/", Private: true},
	EndpointOpenPosition:       {Name: "open_position", Method: http.MethodPost, Path: "open_position/{pair}/", Private: true},
	EndpointOpenPositions:      {Name: "open_positions", Method: http.MethodPost, Path: "open_positions/{pair}/", Private: true},
	EndpointPlaceOrder:         {Name: "place_order", Method: http.MethodPost, Path: "place_order/{pair}/", Private: true},
}

func (e Endpoint) definition() (endpointDefinition, bool) {
	def, ok := endpointDefinitions[e]
	return def, ok
}

func (e Endpoint) String() string {
	if def, ok := e.definition(); ok {
		return def.Name
	}
	return fmt.Sprintf("endpoint(%d)", int(e))
}

func (e Endpoint) IsPrivate() bool {
	def, _ := e.definition()
	return def.Private
}

var placeholderRE = regexp.MustCompile(`\{([a-zA-Z0-9_]+)\}`)

// implodeParams substitutes the {name} placeholders of path with the matching params
// and returns the params that were not consumed.
func implodeParams(path string, params url.Values) (string, url.Values, error) {
	rest := url.Values{}
	for k, vs := range params {
		rest[k] = vs
	}

	var missing string
	out := placeholderRE.ReplaceAllStringFunc(path, func(m string) string {
		name := m[1 : len(m)-1]
		v := params.Get(name)
		if v == "" && missing == "" {
			missing = name
		}
		delete(rest, name)
		return v
	})

	if missing != "" {
		return "", nil, fmt.Errorf("missing path parameter %q for %s", missing, path)
	}

	return out, rest, nil
}
