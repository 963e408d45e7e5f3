package cexapi

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/cexio/pkg/testing/httptesting"
	"github.com/c9s/cexio/pkg/types"
)

func TestSign(t *testing.T) {
	sig := Sign("1513167855000", "up123", "key", "secret")
	assert.Equal(t, "ED358F208904C9DAD5297A09D30BEC51EBC64C76A964CABDCC28B4623EF30D15", sig)

	// deterministic
	assert.Equal(t, sig, Sign("1513167855000", "up123", "key", "secret"))

	// every input participates
	assert.NotEqual(t, sig, Sign("1513167855001", "up123", "key", "secret"))
	assert.NotEqual(t, sig, Sign("1513167855000", "up124", "key", "secret"))
	assert.NotEqual(t, sig, Sign("1513167855000", "up123", "key2", "secret"))
	assert.NotEqual(t, sig, Sign("1513167855000", "up123", "key", "secret2"))
}

func TestImplodeParams(t *testing.T) {
	path, rest, err := implodeParams("open_orders/{pair}/", url.Values{
		"pair":  {"BTC/USD"},
		"limit": {"10"},
	})
	require.NoError(t, err)
	assert.Equal(t, "open_orders/BTC/USD/", path)
	assert.Equal(t, url.Values{"limit": {"10"}}, rest)

	path, rest, err = implodeParams("ohlcv/hd/{yyyymmdd}/{pair}", url.Values{
		"pair":     {"BTC/USD"},
		"yyyymmdd": {"20171212"},
	})
	require.NoError(t, err)
	assert.Equal(t, "ohlcv/hd/20171212/BTC/USD", path)
	assert.Empty(t, rest)

	_, _, err = implodeParams("ticker/{pair}/", nil)
	assert.Error(t, err)
}

func TestRestClient_NewAuthenticatedRequest(t *testing.T) {
	client := NewClient()

	_, err := client.NewAuthenticatedRequest(context.Background(), http.MethodPost, "balance/", nil)
	assert.True(t, errors.Is(err, types.ErrAuthentication))

	client.Auth("key", "", "up123")
	_, err = client.NewAuthenticatedRequest(context.Background(), http.MethodPost, "balance/", nil)
	assert.True(t, errors.Is(err, types.ErrMissingCredentials))

	client.Auth("key", "secret", "up123")
	req, err := client.NewAuthenticatedRequest(context.Background(), http.MethodPost, "get_order/", url.Values{"id": {"42"}})
	require.NoError(t, err)

	assert.Equal(t, "https://cex.io/api/get_order/", req.URL.String())
	assert.Equal(t, "application/x-www-form-urlencoded", req.Header.Get("Content-Type"))

	form, err := httptesting.ReadForm(req)
	require.NoError(t, err)
	assert.Equal(t, "key", form.Get("key"))
	assert.Equal(t, "42", form.Get("id"))
	assert.NotEmpty(t, form.Get("nonce"))
	assert.Equal(t, Sign(form.Get("nonce"), "up123", "key", "secret"), form.Get("signature"))
}

func TestRestClient_Call(t *testing.T) {
	t.Run("public request carries the remaining params as query", func(t *testing.T) {
		var req *http.Request
		client := NewClient()
		client.HttpClient = httptesting.HttpClientSaver(&req, `{"timestamp":"1513167855"}`)

		_, err := client.Call(context.Background(), EndpointOrderBook, url.Values{
			"pair":  {"BTC/USD"},
			"depth": {"5"},
		})
		require.NoError(t, err)
		assert.Equal(t, http.MethodGet, req.Method)
		assert.Equal(t, "/api/order_book/BTC/USD/", req.URL.Path)
		assert.Equal(t, "depth=5", req.URL.RawQuery)
		assert.Nil(t, req.Body)
	})

	t.Run("private request without credentials is not sent", func(t *testing.T) {
		var req *http.Request
		client := NewClient()
		client.HttpClient = httptesting.HttpClientSaver(&req, `true`)

		_, err := client.Call(context.Background(), EndpointCancelOrder, url.Values{"id": {"1"}})
		assert.True(t, errors.Is(err, types.ErrAuthentication))
		assert.Nil(t, req)
	})

	t.Run("rejection is classified", func(t *testing.T) {
		client := NewClient().Auth("key", "secret", "up123")
		client.HttpClient = httptesting.HttpClientWithContent(`{"error":"Invalid amount"}`)

		_, err := client.Call(context.Background(), EndpointPlaceOrder, url.Values{"pair": {"BTC/USD"}})
		assert.True(t, errors.Is(err, types.ErrExchangeRejected))
	})

	t.Run("transport error passes through", func(t *testing.T) {
		transportErr := errors.New("connection reset")
		client := NewClient()
		client.HttpClient = httptesting.HttpClientWithError(transportErr)

		_, err := client.Call(context.Background(), EndpointTicker, url.Values{"pair": {"BTC/USD"}})
		assert.ErrorIs(t, err, transportErr)
	})

	t.Run("http error status", func(t *testing.T) {
		transport := &httptesting.MockTransport{}
		transport.GET("/api/ticker/BTC/USD/", func(_ *http.Request) (*http.Response, error) {
			return httptesting.BuildResponseString(http.StatusBadGateway, "bad gateway"), nil
		})

		client := NewClient()
		client.HttpClient = transport.Client()

		_, err := client.Call(context.Background(), EndpointTicker, url.Values{"pair": {"BTC/USD"}})
		assert.Error(t, err)
		var exErr *types.ExchangeError
		assert.False(t, errors.As(err, &exErr))
	})
}

func TestRestClient_SetBaseURL(t *testing.T) {
	client := NewClient()
	require.NoError(t, client.SetBaseURL("http://localhost:8080/api"))

	req, err := client.NewRequest(context.Background(), http.MethodGet, "ticker/BTC/USD/", nil)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api/ticker/BTC/USD/", req.URL.String())
}
