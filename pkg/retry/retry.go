package retry

import (
	"context"
	"time"
)

// Do executes op up to maxRetries+1 times, sleeping between attempts according
// to the configured backoff strategy. The first success returns immediately;
// if every attempt fails, the last failure is returned unmodified so the
// caller can classify it at the boundary where it is handled.
//
// Attempts are strictly sequential: the next attempt never starts before the
// previous one has settled and its backoff delay has elapsed. Cancelling ctx
// aborts the wait between attempts, but an in-flight op is only interrupted if
// it observes ctx itself.
func Do[T any](ctx context.Context, op func(context.Context) (T, error), opts ...Option) (T, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	var zero T
	var lastErr error

	for attempt := 0; attempt <= o.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-time.After(o.backoff.NextDelay(attempt)):
			}
		}

		result, err := op(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if o.retryIf != nil && !o.retryIf(err) {
			return zero, lastErr
		}

		if attempt < o.maxRetries && o.onRetry != nil {
			o.onRetry(attempt+1, err)
		}
	}

	return zero, lastErr
}
