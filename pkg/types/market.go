package types

import (
	"encoding/json"
	"sort"

	"github.com/c9s/cexio/pkg/fixedpoint"
)

// MinMax is a trading limit range, either end may be unset.
type MinMax struct {
	Min *fixedpoint.Value `json:"min,omitempty"` // nullable
	Max *fixedpoint.Value `json:"max,omitempty"` // nullable
}

type MarketPrecision struct {
	// Price is the number of decimal places allowed in a price.
	Price int `json:"price"`

	// Amount is the number of decimal places allowed in an order amount.
	Amount int `json:"amount"`
}

type MarketLimits struct {
	Amount MinMax `json:"amount"`
	Price  MinMax `json:"price"`
	Cost   MinMax `json:"cost"`
}

type Market struct {
	ID     string `json:"id"`
	Symbol string `json:"symbol"`
	Base   string `json:"base"`
	Quote  string `json:"quote"`

	Precision MarketPrecision `json:"precision"`
	Limits    MarketLimits    `json:"limits"`

	// Info is the venue payload this market was parsed from.
	Info json.RawMessage `json:"info,omitempty"`
}

func (m Market) FormatPrice(val fixedpoint.Value) string {
	return val.FormatString(m.Precision.Price)
}

func (m Market) FormatQuantity(val fixedpoint.Value) string {
	return val.FormatString(m.Precision.Amount)
}

type MarketMap map[string]Market

func (m MarketMap) Add(market Market) {
	m[market.Symbol] = market
}

func (m MarketMap) Has(symbol string) bool {
	_, ok := m[symbol]
	return ok
}

// Symbols returns the market symbols in lexical order.
func (m MarketMap) Symbols() []string {
	symbols := make([]string, 0, len(m))
	for s := range m {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	return symbols
}

// Currencies returns every base and quote currency listed, deduplicated and sorted.
func (m MarketMap) Currencies() []string {
	set := make(map[string]struct{})
	for _, market := range m {
		set[market.Base] = struct{}{}
		set[market.Quote] = struct{}{}
	}

	currencies := make([]string, 0, len(set))
	for c := range set {
		currencies = append(currencies, c)
	}
	sort.Strings(currencies)
	return currencies
}
