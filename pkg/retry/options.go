package retry

import "time"

// OnRetryHook is invoked after each failed attempt that will be retried.
// Attempt starts at 1 and counts failures, not retries.
type OnRetryHook func(attempt int, err error)

type options struct {
	maxRetries int
	backoff    BackoffStrategy
	onRetry    OnRetryHook
	retryIf    func(error) bool
}

func defaultOptions() *options {
	return &options{
		maxRetries: 3,
		backoff:    DefaultBackoffStrategy(),
	}
}

// Option configures a Do call.
type Option func(*options)

// WithMaxRetries sets the maximum number of retries after the first attempt.
// Zero disables retries entirely; negative values are ignored.
func WithMaxRetries(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.maxRetries = n
		}
	}
}

// WithBackoff sets the delay strategy between attempts.
func WithBackoff(strategy BackoffStrategy) Option {
	return func(o *options) {
		if strategy != nil {
			o.backoff = strategy
		}
	}
}

// WithExponentialBackoff is shorthand for an ExponentialBackoff strategy
// without jitter, which keeps delays deterministic.
func WithExponentialBackoff(initial, maxDelay time.Duration, factor float64) Option {
	return func(o *options) {
		o.backoff = ExponentialBackoff{
			InitialDelay: initial,
			MaxDelay:     maxDelay,
			Factor:       factor,
		}
	}
}

// WithOnRetry registers a hook called before each backoff delay, useful for
// logging and metrics.
func WithOnRetry(hook OnRetryHook) Option {
	return func(o *options) {
		o.onRetry = hook
	}
}

// WithRetryIf restricts retries to failures the predicate accepts. Failures
// it rejects are returned immediately without further attempts.
func WithRetryIf(predicate func(error) bool) Option {
	return func(o *options) {
		if predicate != nil {
			o.retryIf = predicate
		}
	}
}
