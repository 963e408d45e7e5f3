package cmdutil

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/cexio/pkg/exchange"
	"github.com/c9s/cexio/pkg/service"
)

const currencyLimitsResponse = `{
	"e": "currency_limits",
	"ok": "ok",
	"data": {"pairs": [
		{"symbol1":"BTC","symbol2":"USD","minLotSize":0.01,"minLotSizeS2":2.5,"maxLotSize":30,"minPrice":"100","maxPrice":"35000"}
	]}
}`

func newCurrencyLimitsServer(t *testing.T) (*httptest.Server, *int32) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/currency_limits/" {
			http.NotFound(w, r)
			return
		}
		atomic.AddInt32(&hits, 1)
		fmt.Fprint(w, currencyLimitsResponse)
	}))
	t.Cleanup(server.Close)
	return server, &hits
}

func TestExchangeOptions(t *testing.T) {
	v := viper.New()
	v.Set("cex-api-key", "key")
	v.Set("cex-api-secret", "secret")
	v.Set("cex-api-uid", "up123")
	v.Set("cex-rate-limit", "1500ms")

	options := ExchangeOptions(v)
	assert.Equal(t, exchange.ExchangeOptions{
		exchange.ExchangeOptionsKeyAPIKey:    "key",
		exchange.ExchangeOptionsKeyAPISecret: "secret",
		exchange.ExchangeOptionsKeyAPIUID:    "up123",
		exchange.ExchangeOptionsKeyRateLimit: "1500ms",
	}, options)
}

func TestNewPersistenceFacade(t *testing.T) {
	t.Setenv("REDIS_HOST", "")

	facade, err := NewPersistenceFacade(nil)
	require.NoError(t, err)
	assert.Nil(t, facade.Redis)
	assert.Nil(t, facade.Json)
	assert.IsType(t, &service.MemoryService{}, facade.Get())

	dir := t.TempDir()
	facade, err = NewPersistenceFacade(&PersistenceConfig{Json: &service.JsonPersistenceConfig{Directory: dir}})
	require.NoError(t, err)
	assert.Equal(t, &service.JsonPersistenceService{Directory: dir}, facade.Get())
}

func TestNewPersistenceFacade_RedisFromEnv(t *testing.T) {
	t.Setenv("REDIS_HOST", "127.0.0.1")

	facade, err := NewPersistenceFacade(nil)
	require.NoError(t, err)
	assert.NotNil(t, facade.Redis)
	assert.IsType(t, &service.RedisPersistenceService{}, facade.Get())
}

func TestNewExchange_MarketsFromStore(t *testing.T) {
	server, hits := newCurrencyLimitsServer(t)
	ctx := context.Background()

	v := viper.New()
	v.Set("cex-base-url", server.URL+"/api/")

	facade := &service.PersistenceServiceFacade{
		Json: &service.JsonPersistenceService{Directory: t.TempDir()},
	}

	ex, err := NewExchange(ctx, v, facade)
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(hits))

	markets, err := ex.LoadMarkets(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"BTC/USD"}, markets.Symbols())
	assert.Equal(t, int32(1), atomic.LoadInt32(hits))

	// a second process reads the stored snapshot
	_, err = NewExchange(ctx, v, facade)
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(hits))
}

func TestNewExchange_NoMarketsCache(t *testing.T) {
	server, hits := newCurrencyLimitsServer(t)

	v := viper.New()
	v.Set("cex-base-url", server.URL+"/api/")
	v.Set("no-markets-cache", true)

	ex, err := NewExchange(context.Background(), v, nil)
	require.NoError(t, err)
	assert.Equal(t, int32(0), atomic.LoadInt32(hits))
	assert.Equal(t, "cex", ex.Name().String())
}
