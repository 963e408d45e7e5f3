package types

import (
	"github.com/c9s/cexio/pkg/fixedpoint"
)

type Interval string

const Interval1m = Interval("1m")

func (i Interval) String() string {
	return string(i)
}

// KLine is one OHLCV bar.
type KLine struct {
	Symbol    string               `json:"symbol"`
	Interval  Interval             `json:"interval"`
	StartTime MillisecondTimestamp `json:"startTime"`

	Open   fixedpoint.Value `json:"open"`
	High   fixedpoint.Value `json:"high"`
	Low    fixedpoint.Value `json:"low"`
	Close  fixedpoint.Value `json:"close"`
	Volume fixedpoint.Value `json:"volume"`
}
