package types

import (
	"encoding/json"

	"github.com/c9s/cexio/pkg/fixedpoint"
)

// Ticker is a market summary. Fields the venue does not report stay nil.
type Ticker struct {
	Symbol    string                `json:"symbol"`
	Timestamp *MillisecondTimestamp `json:"timestamp,omitempty"`

	High *fixedpoint.Value `json:"high,omitempty"`
	Low  *fixedpoint.Value `json:"low,omitempty"`
	Bid  *fixedpoint.Value `json:"bid,omitempty"`
	Ask  *fixedpoint.Value `json:"ask,omitempty"`
	Last *fixedpoint.Value `json:"last,omitempty"`

	Vwap       *fixedpoint.Value `json:"vwap,omitempty"`
	Open       *fixedpoint.Value `json:"open,omitempty"`
	Close      *fixedpoint.Value `json:"close,omitempty"`
	Change     *fixedpoint.Value `json:"change,omitempty"`
	Percentage *fixedpoint.Value `json:"percentage,omitempty"`
	Average    *fixedpoint.Value `json:"average,omitempty"`

	BaseVolume  *fixedpoint.Value `json:"baseVolume,omitempty"`
	QuoteVolume *fixedpoint.Value `json:"quoteVolume,omitempty"`

	Info json.RawMessage `json:"info,omitempty"`
}
