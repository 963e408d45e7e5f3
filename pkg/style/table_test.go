package style

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/c9s/cexio/pkg/fixedpoint"
	"github.com/c9s/cexio/pkg/types"
)

func TestNewTable(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTable(&buf, "Markets", "Symbol", "Min Price")
	tbl.AppendRow([]interface{}{"BTC/USD", OptionalValue(fixedpoint.NewPtr(fixedpoint.NewFromInt(100)))})
	tbl.AppendRow([]interface{}{"ETH/BTC", OptionalValue(nil)})
	tbl.Render()

	out := buf.String()
	assert.Contains(t, out, "BTC/USD")
	assert.Contains(t, out, "100")
	assert.Contains(t, out, "-")
}

func TestSideString(t *testing.T) {
	assert.Contains(t, SideString(types.SideTypeBuy), "buy")
	assert.Contains(t, SideString(types.SideTypeSell), "sell")
}
