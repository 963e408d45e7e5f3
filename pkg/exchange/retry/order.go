package retry

import (
	"context"
	"fmt"

	"github.com/c9s/cexio/pkg/types"
	"github.com/c9s/cexio/pkg/util/backoff"
)

type orderCancelService interface {
	CancelOrders(ctx context.Context, orders ...types.Order) error
}

// QueryOrderUntilClosed polls the order until it is no longer open.
func QueryOrderUntilClosed(ctx context.Context, queryOrderService types.ExchangeTradeService, orderID string) (o *types.Order, err error) {
	err = backoff.RetryGeneral(ctx, func() (err2 error) {
		o, err2 = queryOrderService.QueryOrder(ctx, orderID)
		if err2 != nil || o == nil {
			return err2
		}

		if !o.Status.Closed() {
			return fmt.Errorf("order %s is still %s", orderID, o.Status)
		}

		return nil
	})

	return o, err
}

func QueryOpenOrdersUntilSuccessful(ctx context.Context, ex types.ExchangeTradeService, symbol string) (openOrders []types.Order, err error) {
	var op = func() (err2 error) {
		openOrders, err2 = ex.QueryOpenOrders(ctx, symbol, nil)
		return err2
	}

	err = backoff.RetryGeneral(ctx, op)
	return openOrders, err
}

func CancelOrdersUntilSuccessful(ctx context.Context, service orderCancelService, orders ...types.Order) error {
	var op = func() (err2 error) {
		err2 = service.CancelOrders(ctx, orders...)
		return err2
	}

	return backoff.RetryGeneral(ctx, op)
}
