package breaker_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/faultkit/pkg/breaker"
)

var errDependency = errors.New("dependency down")

func TestCircuitBreaker_Execute(t *testing.T) {
	t.Parallel()

	discard := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("passes through results", func(t *testing.T) {
		t.Parallel()

		cb := breaker.New(func(ctx context.Context) (string, error) {
			return "hello", nil
		}, breaker.WithLogger(discard))

		result, err := cb.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "hello", result)
		assert.Equal(t, breaker.StateClosed, cb.State())
	})

	t.Run("fails fast once open", func(t *testing.T) {
		t.Parallel()

		calls := 0
		cb := breaker.New(func(ctx context.Context) (int, error) {
			calls++
			return 0, errDependency
		},
			breaker.WithFailureThreshold(5),
			breaker.WithResetTimeout(time.Minute),
			breaker.WithLogger(discard),
		)

		for range 5 {
			_, err := cb.Execute(context.Background())
			assert.Same(t, errDependency, err)
		}
		assert.Equal(t, 5, calls)
		assert.Equal(t, breaker.StateOpen, cb.State())

		// Sixth call rejected without invoking the operation.
		_, err := cb.Execute(context.Background())
		assert.True(t, breaker.IsCircuitOpen(err))
		assert.Equal(t, 5, calls)
	})

	t.Run("probe recovers the circuit", func(t *testing.T) {
		t.Parallel()

		healthy := false
		cb := breaker.New(func(ctx context.Context) (int, error) {
			if healthy {
				return 7, nil
			}
			return 0, errDependency
		},
			breaker.WithFailureThreshold(2),
			breaker.WithResetTimeout(30*time.Millisecond),
			breaker.WithLogger(discard),
		)

		_, _ = cb.Execute(context.Background())
		_, _ = cb.Execute(context.Background())
		assert.Equal(t, breaker.StateOpen, cb.State())

		healthy = true
		time.Sleep(40 * time.Millisecond)

		result, err := cb.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 7, result)
		assert.Equal(t, breaker.StateClosed, cb.State())
		assert.Zero(t, cb.ConsecutiveFailures())
	})

	t.Run("failed probe reopens", func(t *testing.T) {
		t.Parallel()

		cb := breaker.New(func(ctx context.Context) (int, error) {
			return 0, errDependency
		},
			breaker.WithFailureThreshold(1),
			breaker.WithResetTimeout(30*time.Millisecond),
			breaker.WithLogger(discard),
		)

		_, _ = cb.Execute(context.Background())
		time.Sleep(40 * time.Millisecond)

		_, err := cb.Execute(context.Background())
		assert.Same(t, errDependency, err, "probe invokes the operation")

		_, err = cb.Execute(context.Background())
		assert.True(t, breaker.IsCircuitOpen(err), "failed probe restarts the cool-down")
	})

	t.Run("reset closes the circuit", func(t *testing.T) {
		t.Parallel()

		cb := breaker.New(func(ctx context.Context) (int, error) {
			return 0, errDependency
		},
			breaker.WithFailureThreshold(1),
			breaker.WithLogger(discard),
		)

		_, _ = cb.Execute(context.Background())
		assert.Equal(t, breaker.StateOpen, cb.State())

		cb.Reset()
		assert.Equal(t, breaker.StateClosed, cb.State())
	})
}
