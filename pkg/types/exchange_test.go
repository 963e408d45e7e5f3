package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExchangeName(t *testing.T) {
	assert.Equal(t, "cex", ExchangeCEX.String())
}

func TestOrderStatus_Closed(t *testing.T) {
	assert.False(t, OrderStatusOpen.Closed())
	assert.True(t, OrderStatusClosed.Closed())
	assert.True(t, OrderStatusCanceled.Closed())
}
