package types

import (
	"encoding/json"

	"github.com/c9s/cexio/pkg/fixedpoint"
)

type OrderType string

const (
	OrderTypeLimit  OrderType = "limit"
	OrderTypeMarket OrderType = "market"
)

type OrderStatus string

const (
	OrderStatusOpen     OrderStatus = "open"
	OrderStatusClosed   OrderStatus = "closed"
	OrderStatusCanceled OrderStatus = "canceled"
)

func (s OrderStatus) Closed() bool {
	return s == OrderStatusClosed || s == OrderStatusCanceled
}

type Fee struct {
	Currency string `json:"currency"`

	// Rate is a coefficient between 0 and 1, nil when the venue reports none.
	Rate *fixedpoint.Value `json:"rate,omitempty"` // nullable

	Cost fixedpoint.Value `json:"cost"`
}

// SubmitOrder is an order request.
type SubmitOrder struct {
	Symbol string    `json:"symbol"`
	Type   OrderType `json:"type"`
	Side   SideType  `json:"side"`

	// Amount is always in base currency units.
	Amount fixedpoint.Value `json:"amount"`

	// Price is the limit price for limit orders. Market buys need it to compute the quote notional.
	Price *fixedpoint.Value `json:"price,omitempty"` // nullable
}

type Order struct {
	ID        string                `json:"id"`
	Timestamp *MillisecondTimestamp `json:"timestamp,omitempty"`
	Status    OrderStatus           `json:"status,omitempty"`
	Symbol    string                `json:"symbol,omitempty"`
	Type      OrderType             `json:"type,omitempty"`
	Side      SideType              `json:"side,omitempty"`

	Price     *fixedpoint.Value `json:"price,omitempty"`
	Amount    *fixedpoint.Value `json:"amount,omitempty"`
	Filled    *fixedpoint.Value `json:"filled,omitempty"`
	Remaining *fixedpoint.Value `json:"remaining,omitempty"`
	Cost      *fixedpoint.Value `json:"cost,omitempty"`

	Fee *Fee `json:"fee,omitempty"`

	Info json.RawMessage `json:"info,omitempty"`
}
