package cexapi

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/valyala/fastjson"

	"github.com/c9s/cexio/pkg/types"
)

func TestClassifyResponse(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{name: "empty body", body: "", wantErr: types.ErrEmptyResponse},
		{name: "null", body: "null", wantErr: types.ErrEmptyResponse},
		{name: "false", body: "false", wantErr: types.ErrEmptyResponse},
		{name: "empty string", body: `""`, wantErr: types.ErrEmptyResponse},
		{name: "true", body: "true"},
		{name: "envelope ok", body: `{"e":"order-book-subscribe","ok":"ok"}`},
		{name: "envelope error", body: `{"e":"get_myfee","ok":"error","data":{"error":"Permission denied"}}`, wantErr: types.ErrExchangeRejected},
		{name: "envelope without ok", body: `{"e":"tickers"}`, wantErr: types.ErrExchangeRejected},
		{name: "error field", body: `{"error":"Invalid amount"}`, wantErr: types.ErrExchangeRejected},
		{name: "empty error field", body: `{"error":"","id":"1"}`},
		{name: "null error field", body: `{"error":null,"id":"1"}`},
		{name: "plain object", body: `{"timestamp":"1513167855"}`},
		{name: "array", body: `[{"tid":"1"}]`},
		{name: "not json", body: `<html>`, wantErr: types.ErrMalformedPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ClassifyResponse([]byte(tt.body))
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				assert.Nil(t, v)
				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, v)
		})
	}
}

func TestClassifyResponse_PassThrough(t *testing.T) {
	v, err := ClassifyResponse([]byte("true"))
	assert.NoError(t, err)
	assert.Equal(t, fastjson.TypeTrue, v.Type())

	v, err = ClassifyResponse([]byte(`{"e":"tickers","ok":"ok","data":[]}`))
	assert.NoError(t, err)
	assert.Equal(t, "tickers", string(v.GetStringBytes("e")))
}

func TestClassifyResponse_RejectedDetail(t *testing.T) {
	body := `{"error":"Invalid amount"}`
	_, err := ClassifyResponse([]byte(body))

	var exErr *types.ExchangeError
	if assert.True(t, errors.As(err, &exErr)) {
		assert.Equal(t, types.ErrorKindExchangeRejected, exErr.Kind)
		assert.Equal(t, "Invalid amount", exErr.Message)
		assert.Equal(t, body, exErr.Detail)
	}
}
