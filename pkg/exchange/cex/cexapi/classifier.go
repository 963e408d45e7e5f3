package cexapi

import (
	"bytes"

	"github.com/valyala/fastjson"

	"github.com/c9s/cexio/pkg/types"
)

// ClassifyResponse decodes a response body and decides whether the venue accepted the request.
// Envelope errors ("e" without "ok":"ok") are checked before the generic "error" field.
func ClassifyResponse(body []byte) (*fastjson.Value, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, types.NewEmptyResponseError("empty response body")
	}

	v, err := fastjson.ParseBytes(body)
	if err != nil {
		return nil, types.NewMalformedPayloadError("response is not json: %v", err)
	}

	if isFalsy(v) {
		return nil, types.NewEmptyResponseError("falsy response %s", body)
	}

	if v.Type() == fastjson.TypeTrue {
		return v, nil
	}

	if v.Type() != fastjson.TypeObject {
		return v, nil
	}

	if v.Exists("e") {
		if ok := v.Get("ok"); ok != nil && ok.Type() == fastjson.TypeString && string(ok.GetStringBytes()) == "ok" {
			return v, nil
		}

		return nil, types.NewExchangeRejectedError(errorMessage(v), body)
	}

	if errValue := v.Get("error"); errValue != nil && !isFalsy(errValue) {
		return nil, types.NewExchangeRejectedError(errorMessage(v), body)
	}

	return v, nil
}

func errorMessage(v *fastjson.Value) string {
	if s := v.GetStringBytes("error"); len(s) > 0 {
		return string(s)
	}

	if s := v.GetStringBytes("data", "error"); len(s) > 0 {
		return string(s)
	}

	if s := v.GetStringBytes("e"); len(s) > 0 {
		return string(s) + " rejected"
	}

	return "request rejected"
}

// isFalsy reports null, false, zero and the empty string.
func isFalsy(v *fastjson.Value) bool {
	if v == nil {
		return true
	}

	switch v.Type() {
	case fastjson.TypeNull, fastjson.TypeFalse:
		return true
	case fastjson.TypeString:
		return len(v.GetStringBytes()) == 0
	case fastjson.TypeNumber:
		return v.GetFloat64() == 0
	}

	return false
}
