package exchange

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/cexio/pkg/exchange/cex"
	"github.com/c9s/cexio/pkg/types"
)

func TestNewWithEnvVarPrefix(t *testing.T) {
	t.Setenv("CEX_API_KEY", "key")
	t.Setenv("CEX_API_SECRET", "secret")
	t.Setenv("CEX_API_UID", "up123")
	t.Setenv("CEX_BASE_URL", "https://sandbox.example.com/api")
	t.Setenv("CEX_RATE_LIMIT", "2+1/1s")

	ex, err := NewWithEnvVarPrefix(types.ExchangeCEX, "")
	require.NoError(t, err)

	cexEx, ok := ex.(*cex.Exchange)
	require.True(t, ok)
	assert.True(t, cexEx.Client().HasCredentials())
	assert.Equal(t, "https://sandbox.example.com/api/", cexEx.Client().BaseURL.String())
}

func TestDefaultEnvVarLoader_IncompleteCredentials(t *testing.T) {
	t.Setenv("CEXT_API_KEY", "key")

	_, err := DefaultEnvVarLoader("CEXT")
	assert.Error(t, err)
}

func TestNewPublic(t *testing.T) {
	ex, err := NewPublic(types.ExchangeCEX)
	require.NoError(t, err)
	assert.Equal(t, types.ExchangeCEX, ex.Name())
	assert.False(t, ex.(*cex.Exchange).Client().HasCredentials())

	_, err = NewPublic("binance")
	assert.Error(t, err)
}

func TestNew_InvalidRateLimit(t *testing.T) {
	_, err := New(types.ExchangeCEX, ExchangeOptions{ExchangeOptionsKeyRateLimit: "often"})
	assert.Error(t, err)
}
