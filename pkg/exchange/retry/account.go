package retry

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/c9s/cexio/pkg/types"
	"github.com/c9s/cexio/pkg/util/backoff"
)

func QueryAccountBalancesUntilSuccessful(
	ctx context.Context, ex types.ExchangeAccountService,
) (snapshot *types.BalanceSnapshot, err error) {
	var op = func() (err2 error) {
		snapshot, err2 = ex.QueryAccountBalances(ctx)
		if err2 != nil {
			log.WithError(err2).Errorf("failed to query account balances")
		}

		return err2
	}

	err = backoff.RetryGeneral(ctx, op)
	return snapshot, err
}

func QueryAccountBalancesUntilSuccessfulLite(
	ctx context.Context, ex types.ExchangeAccountService,
) (snapshot *types.BalanceSnapshot, err error) {
	var op = func() (err2 error) {
		snapshot, err2 = ex.QueryAccountBalances(ctx)
		return err2
	}

	err = backoff.RetryLite(ctx, op)
	return snapshot, err
}
