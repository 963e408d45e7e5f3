package retry

import (
	"context"
	"errors"
	"fmt"

	"github.com/c9s/cexio/pkg/types"
	"github.com/c9s/cexio/pkg/util/backoff"
)

func QueryTradesUntilSuccessful(
	ctx context.Context, ex types.ExchangeMarketDataService, symbol string, q *types.TradeQueryOptions,
) (trades []types.Trade, err error) {
	var stopOnErr error
	var op = func() (err2 error) {
		trades, err2 = ex.QueryTrades(ctx, symbol, q)
		if errors.Is(err2, context.DeadlineExceeded) {
			// return nil to stop retrying
			stopOnErr = fmt.Errorf("retry query trades stopped on %w", err2)
			return nil
		}
		return err2
	}

	err = backoff.RetryGeneral(ctx, op)
	if stopOnErr != nil {
		err = stopOnErr
	}
	return trades, err
}

func QueryMarketsUntilSuccessfulLite(ctx context.Context, ex types.ExchangePublic) (markets types.MarketMap, err error) {
	var op = func() (err2 error) {
		markets, err2 = ex.QueryMarkets(ctx)
		return err2
	}

	err = backoff.RetryLite(ctx, op)
	return markets, err
}
