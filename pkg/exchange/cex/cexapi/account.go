package cexapi

import (
	"context"
	"strconv"

	"github.com/valyala/fastjson"
)

func itoa(i int) string {
	return strconv.Itoa(i)
}

type GetBalanceRequest struct {
	client *RestClient
}

func (c *RestClient) NewGetBalanceRequest() *GetBalanceRequest {
	return &GetBalanceRequest{client: c}
}

func (r *GetBalanceRequest) Do(ctx context.Context) (*Balances, error) {
	v, err := r.client.Call(ctx, EndpointBalance, nil)
	if err != nil {
		return nil, err
	}

	return decodeBalances(v)
}

type GetMyFeeRequest struct {
	client *RestClient
}

func (c *RestClient) NewGetMyFeeRequest() *GetMyFeeRequest {
	return &GetMyFeeRequest{client: c}
}

// Do returns the fee percentages keyed by BASE:QUOTE pair.
func (r *GetMyFeeRequest) Do(ctx context.Context) (map[string]TradingFee, error) {
	v, err := r.client.Call(ctx, EndpointGetMyFee, nil)
	if err != nil {
		return nil, err
	}

	fees := make(map[string]TradingFee)
	if obj := v.GetObject("data"); obj != nil {
		obj.Visit(func(key []byte, fv *fastjson.Value) {
			fees[string(key)] = TradingFee{
				Buy:       getField(fv, "buy"),
				Sell:      getField(fv, "sell"),
				BuyMaker:  getField(fv, "buyMaker"),
				SellMaker: getField(fv, "sellMaker"),
			}
		})
	}

	return fees, nil
}
