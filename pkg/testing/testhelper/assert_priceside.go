package testhelper

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/c9s/cexio/pkg/fixedpoint"
	"github.com/c9s/cexio/pkg/types"
)

type PriceSideAmountAssert struct {
	Price  *fixedpoint.Value
	Side   types.SideType
	Amount fixedpoint.Value
}

// AssertOrdersPriceSideAmount compares the orders with the expected price, side and amount one by one.
func AssertOrdersPriceSideAmount(t *testing.T, asserts []PriceSideAmountAssert, orders []types.Order) {
	if !assert.Equalf(t, len(asserts), len(orders), "expecting %d orders", len(asserts)) {
		return
	}

	for i, a := range asserts {
		o := orders[i]
		assert.Equalf(t, a.Side, o.Side, "order #%d side", i+1)

		if a.Price == nil {
			assert.Nilf(t, o.Price, "order #%d should have no price", i+1)
		} else if assert.NotNilf(t, o.Price, "order #%d price", i+1) {
			assert.Equalf(t, a.Price.Float64(), o.Price.Float64(), "order #%d price should be %s", i+1, a.Price.String())
		}

		if assert.NotNilf(t, o.Amount, "order #%d amount", i+1) {
			assert.Equalf(t, a.Amount.Float64(), o.Amount.Float64(), "order #%d amount should be %s", i+1, a.Amount.String())
		}
	}
}
