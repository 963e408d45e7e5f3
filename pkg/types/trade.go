package types

import (
	"encoding/json"

	"github.com/c9s/cexio/pkg/fixedpoint"
)

type Trade struct {
	ID        string               `json:"id"`
	Timestamp MillisecondTimestamp `json:"timestamp"`
	Symbol    string               `json:"symbol"`

	// Type is the order type behind the trade, empty when the venue does not report it.
	Type OrderType `json:"type,omitempty"`
	Side SideType  `json:"side"`

	Price  fixedpoint.Value `json:"price"`
	Amount fixedpoint.Value `json:"amount"`

	Info json.RawMessage `json:"info,omitempty"`
}
