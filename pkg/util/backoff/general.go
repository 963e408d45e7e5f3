package backoff

import (
	"context"
	"errors"

	"github.com/cenkalti/backoff/v4"

	"github.com/c9s/cexio/pkg/types"
)

var MaxRetries uint64 = 101

// LiteMaxRetries bounds the retries of interactive callers.
var LiteMaxRetries uint64 = 5

// IsPermanent reports whether retrying the same request can not succeed:
// rejected credentials, invalid orders and malformed market data.
func IsPermanent(err error) bool {
	return errors.Is(err, types.ErrAuthentication) ||
		errors.Is(err, types.ErrInvalidOrder) ||
		errors.Is(err, types.ErrMalformedMarketData)
}

func RetryGeneral(ctx context.Context, op backoff.Operation) (err error) {
	return retry(ctx, op, MaxRetries)
}

func RetryLite(ctx context.Context, op backoff.Operation) (err error) {
	return retry(ctx, op, LiteMaxRetries)
}

func retry(ctx context.Context, op backoff.Operation, maxRetries uint64) error {
	wrapped := func() error {
		err := op()
		if err != nil && IsPermanent(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	return backoff.Retry(wrapped, backoff.WithContext(
		backoff.WithMaxRetries(
			backoff.NewExponentialBackOff(),
			maxRetries),
		ctx))
}
