package breaker

import (
	"context"
	"log/slog"
	"time"
)

// CircuitBreaker wraps a single fallible operation with breaker protection.
// Construct one per protected call site and reuse it for that call site's
// lifetime; the failure history is the whole point.
type CircuitBreaker[T any] struct {
	op      func(context.Context) (T, error)
	breaker *Breaker
	log     *slog.Logger
}

type config struct {
	failureThreshold int
	resetTimeout     time.Duration
	log              *slog.Logger
}

// Option configures a CircuitBreaker.
type Option func(*config)

// WithFailureThreshold sets how many consecutive failures open the circuit.
// Default is 5.
func WithFailureThreshold(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.failureThreshold = n
		}
	}
}

// WithResetTimeout sets the cool-down before a probe call is allowed.
// Default is 60 seconds.
func WithResetTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.resetTimeout = d
		}
	}
}

// WithLogger sets the logger used to report state transitions.
func WithLogger(log *slog.Logger) Option {
	return func(c *config) {
		if log != nil {
			c.log = log
		}
	}
}

// New creates a CircuitBreaker around op.
func New[T any](op func(context.Context) (T, error), opts ...Option) *CircuitBreaker[T] {
	cfg := &config{
		failureThreshold: 5,
		resetTimeout:     time.Minute,
		log:              slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &CircuitBreaker[T]{
		op:      op,
		breaker: NewBreaker(cfg.failureThreshold, cfg.resetTimeout),
		log:     cfg.log,
	}
}

// Execute runs the wrapped operation under breaker protection. While the
// circuit is open it returns ErrCircuitOpen immediately without invoking the
// operation. The first call after the cool-down is a probe: its success closes
// the circuit, its failure reopens it and restarts the cool-down.
func (cb *CircuitBreaker[T]) Execute(ctx context.Context) (T, error) {
	if !cb.breaker.Allow() {
		var zero T
		return zero, ErrCircuitOpen
	}

	result, err := cb.op(ctx)
	if err != nil {
		if cb.breaker.RecordFailure() {
			cb.log.WarnContext(ctx, "circuit breaker opened",
				slog.Int("consecutive_failures", cb.breaker.ConsecutiveFailures()),
				slog.Any("error", err),
			)
		}
		var zero T
		return zero, err
	}

	cb.breaker.RecordSuccess()
	return result, nil
}

// State returns the breaker's current state.
func (cb *CircuitBreaker[T]) State() State {
	return cb.breaker.State()
}

// ConsecutiveFailures returns the breaker's current failure counter.
func (cb *CircuitBreaker[T]) ConsecutiveFailures() int {
	return cb.breaker.ConsecutiveFailures()
}

// Reset forces the breaker back to closed.
func (cb *CircuitBreaker[T]) Reset() {
	cb.breaker.Reset()
}
