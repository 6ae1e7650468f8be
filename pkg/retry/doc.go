// Package retry runs fallible operations with bounded, exponentially backed
// off re-attempts.
//
// The single entry point is the generic Do function. Policy is supplied via
// functional options; the defaults (3 retries, 1s initial delay doubling up to
// a 10s cap) suit most transient transport failures.
//
// # Usage
//
//	user, err := retry.Do(ctx, func(ctx context.Context) (User, error) {
//	    return api.FetchUser(ctx, id)
//	},
//	    retry.WithMaxRetries(5),
//	    retry.WithExponentialBackoff(500*time.Millisecond, 8*time.Second, 2),
//	    retry.WithOnRetry(func(attempt int, err error) {
//	        log.Warn("retrying", "attempt", attempt, "error", err)
//	    }),
//	)
//
// Do deliberately returns the last failure unclassified. Deciding whether a
// failure is user-facing, recoverable, or worth logging belongs to the caller;
// see the classify package.
package retry
