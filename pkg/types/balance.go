package types

import (
	"encoding/json"
	"sort"

	"github.com/c9s/cexio/pkg/fixedpoint"
)

type Balance struct {
	Currency string           `json:"currency"`
	Free     fixedpoint.Value `json:"free"`
	Used     fixedpoint.Value `json:"used"`
	Total    fixedpoint.Value `json:"total"`
}

func NewBalance(currency string, free, used fixedpoint.Value) Balance {
	return Balance{
		Currency: currency,
		Free:     free,
		Used:     used,
		Total:    free.Add(used),
	}
}

type BalanceMap map[string]Balance

func (m BalanceMap) Currencies() []string {
	currencies := make([]string, 0, len(m))
	for c := range m {
		currencies = append(currencies, c)
	}
	sort.Strings(currencies)
	return currencies
}

// NotZero returns the balances that hold any funds.
func (m BalanceMap) NotZero() BalanceMap {
	bm := make(BalanceMap)
	for c, b := range m {
		if !b.Total.IsZero() {
			bm[c] = b
		}
	}
	return bm
}

// BalanceSnapshot is the account balance sheet together with the raw payload.
type BalanceSnapshot struct {
	Balances BalanceMap      `json:"balances"`
	Info     json.RawMessage `json:"info,omitempty"`
}
