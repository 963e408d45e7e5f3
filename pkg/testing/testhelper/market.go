package testhelper

import (
	"fmt"

	"github.com/c9s/cexio/pkg/fixedpoint"
	"github.com/c9s/cexio/pkg/types"
)

var _markets = types.MarketMap{
	"BTC/USD": {
		ID:        "BTC/USD",
		Symbol:    "BTC/USD",
		Base:      "BTC",
		Quote:     "USD",
		Precision: types.MarketPrecision{Price: 0, Amount: 2},
		Limits: types.MarketLimits{
			Amount: types.MinMax{Min: NumberPtr(0.01), Max: NumberPtr(30)},
			Price:  types.MinMax{Min: NumberPtr(100), Max: NumberPtr(35000)},
			Cost:   types.MinMax{Min: NumberPtr(2.5)},
		},
	},
	"ETH/BTC": {
		ID:        "ETH/BTC",
		Symbol:    "ETH/BTC",
		Base:      "ETH",
		Quote:     "BTC",
		Precision: types.MarketPrecision{Price: 5, Amount: 1},
		Limits: types.MarketLimits{
			Amount: types.MinMax{Min: NumberPtr(0.1), Max: NumberPtr(1000)},
			Price:  types.MinMax{Min: NumberPtr(0.00001), Max: NumberPtr(1)},
			Cost:   types.MinMax{Min: NumberPtr(0.001)},
		},
	},
}

func AllMarkets() types.MarketMap {
	markets := make(types.MarketMap, len(_markets))
	for symbol, market := range _markets {
		markets[symbol] = market
	}
	return markets
}

func Market(symbol string) types.Market {
	market, ok := _markets[symbol]
	if !ok {
		panic(fmt.Errorf("%s test market not found, valid markets: %v", symbol, _markets.Symbols()))
	}

	return market
}

func Number(v float64) fixedpoint.Value {
	return fixedpoint.NewFromFloat(v)
}

func NumberPtr(v float64) *fixedpoint.Value {
	return fixedpoint.NewPtr(Number(v))
}
