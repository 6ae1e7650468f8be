package recovery

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/faultkit/pkg/classify"
)

// Dispatcher evaluates an ordered strategy list against classified errors.
type Dispatcher struct {
	strategies []Strategy
	log        *slog.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger used to report recovery attempts and failures.
func WithLogger(log *slog.Logger) Option {
	return func(d *Dispatcher) {
		if log != nil {
			d.log = log
		}
	}
}

// New creates a Dispatcher with the given strategy order.
func New(strategies []Strategy, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		strategies: strategies,
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Attempt walks the strategies in order and runs the first one that matches
// cerr. It returns true when a strategy matched and its recovery completed
// without error. A failed recovery is logged and reported as false; it never
// propagates, so the caller's error-handling path cannot be crashed by a
// broken remediation. No match returns false.
func (d *Dispatcher) Attempt(ctx context.Context, cerr *classify.Error) bool {
	for _, s := range d.strategies {
		if !s.CanRecover(cerr) {
			continue
		}

		d.log.InfoContext(ctx, "attempting error recovery",
			slog.String("kind", string(cerr.Kind)),
			slog.String("code", cerr.Code),
		)

		if err := s.Recover(ctx); err != nil {
			d.log.ErrorContext(ctx, "error recovery failed",
				slog.String("kind", string(cerr.Kind)),
				slog.Any("error", err),
			)
			return false
		}
		return true
	}
	return false
}

// Attempt is a convenience wrapper dispatching cerr against strategies with
// the default logger.
func Attempt(ctx context.Context, cerr *classify.Error, strategies ...Strategy) bool {
	return New(strategies).Attempt(ctx, cerr)
}
