package cex

import (
	"math"
	"strconv"
	"strings"

	"github.com/c9s/cexio/pkg/exchange/cex/cexapi"
	"github.com/c9s/cexio/pkg/fixedpoint"
	"github.com/c9s/cexio/pkg/types"
)

// log10Tolerance absorbs the float error of math.Log10 on exact powers of ten.
const log10Tolerance = 1e-9

// pricePrecision counts the fractional digits of the minimum price as written by the venue.
// Trailing zeros count: "0.10" has a precision of 2. A pair without a minimum price has a precision of 0.
func pricePrecision(minPrice cexapi.Field) (int, error) {
	if !minPrice.Valid {
		return 0, nil
	}

	text := strings.TrimSpace(minPrice.Text)
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, types.NewMalformedMarketDataError("minPrice %q is not a number", minPrice.Text)
	}

	// numbers rendered in exponent form carry no trailing zeros
	if strings.ContainsAny(text, "eE") {
		text = strconv.FormatFloat(f, 'f', -1, 64)
	}

	idx := strings.IndexByte(text, '.')
	if idx < 0 {
		return 0, nil
	}

	return len(text) - idx - 1, nil
}

// amountPrecision is -log10(minLotSize). The lot size must be a power of ten.
func amountPrecision(minLotSize cexapi.Field) (int, error) {
	if !minLotSize.Valid {
		return 0, types.NewMalformedMarketDataError("minLotSize is missing")
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(minLotSize.Text), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, types.NewMalformedMarketDataError("minLotSize %q is not a number", minLotSize.Text)
	}

	if f <= 0 {
		return 0, types.NewMalformedMarketDataError("minLotSize %q is not positive", minLotSize.Text)
	}

	p := -math.Log10(f)
	rounded := math.Round(p)
	if math.Abs(p-rounded) > log10Tolerance {
		return 0, types.NewMalformedMarketDataError("minLotSize %q is not a power of ten", minLotSize.Text)
	}

	return int(rounded), nil
}

func marketNumber(name string, f cexapi.Field) (*fixedpoint.Value, error) {
	n, err := f.Number()
	if err != nil {
		return nil, types.NewMalformedMarketDataError("%s %q is not a number", name, f.Text)
	}
	return n, nil
}

// toGlobalMarketLimits derives the amount, price and cost ranges. The venue has no cost ceiling.
func toGlobalMarketLimits(limit cexapi.PairLimit) (types.MarketLimits, error) {
	var limits types.MarketLimits
	var err error

	if limits.Amount.Min, err = marketNumber("minLotSize", limit.MinLotSize); err != nil {
		return limits, err
	}
	if limits.Amount.Max, err = marketNumber("maxLotSize", limit.MaxLotSize); err != nil {
		return limits, err
	}
	if limits.Price.Min, err = marketNumber("minPrice", limit.MinPrice); err != nil {
		return limits, err
	}
	if limits.Price.Max, err = marketNumber("maxPrice", limit.MaxPrice); err != nil {
		return limits, err
	}
	if limits.Cost.Min, err = marketNumber("minLotSizeS2", limit.MinLotSizeS2); err != nil {
		return limits, err
	}

	return limits, nil
}
