package recovery_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/faultkit/pkg/classify"
	"github.com/dmitrymomot/faultkit/pkg/recovery"
)

func discardLogger() recovery.Option {
	return recovery.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type spyStrategy struct {
	matches   bool
	recovered int
	fail      error
}

func (s *spyStrategy) CanRecover(cerr *classify.Error) bool { return s.matches }

func (s *spyStrategy) Recover(ctx context.Context) error {
	s.recovered++
	return s.fail
}

func TestDispatcher_FirstMatchWins(t *testing.T) {
	t.Parallel()

	a := &spyStrategy{matches: true}
	b := &spyStrategy{matches: true}
	d := recovery.New([]recovery.Strategy{a, b}, discardLogger())

	ok := d.Attempt(context.Background(), classify.Classify(errors.New("boom")))

	assert.True(t, ok)
	assert.Equal(t, 1, a.recovered)
	assert.Zero(t, b.recovered, "later strategies must not run after a match")
}

func TestDispatcher_NoMatch(t *testing.T) {
	t.Parallel()

	a := &spyStrategy{matches: false}
	d := recovery.New([]recovery.Strategy{a}, discardLogger())

	ok := d.Attempt(context.Background(), classify.Classify(errors.New("boom")))

	assert.False(t, ok)
	assert.Zero(t, a.recovered)
}

func TestDispatcher_FailureContainment(t *testing.T) {
	t.Parallel()

	a := &spyStrategy{matches: true, fail: errors.New("recovery exploded")}
	b := &spyStrategy{matches: true}
	d := recovery.New([]recovery.Strategy{a, b}, discardLogger())

	var ok bool
	assert.NotPanics(t, func() {
		ok = d.Attempt(context.Background(), classify.Classify(errors.New("boom")))
	})

	assert.False(t, ok, "failed recovery reports false")
	assert.Equal(t, 1, a.recovered)
	assert.Zero(t, b.recovered, "a failed match still stops the scan")
}

func TestDispatcher_EmptyStrategies(t *testing.T) {
	t.Parallel()

	d := recovery.New(nil, discardLogger())
	assert.False(t, d.Attempt(context.Background(), classify.Classify(errors.New("boom"))))
}

type spyClearer struct{ calls int }

func (s *spyClearer) Clear(ctx context.Context) error {
	s.calls++
	return nil
}

type spyRedirector struct{ calls int }

func (s *spyRedirector) RedirectToLogin(ctx context.Context) error {
	s.calls++
	return nil
}

func TestUnauthorized(t *testing.T) {
	t.Parallel()

	t.Run("matches only unauthorized", func(t *testing.T) {
		t.Parallel()

		s := recovery.NewUnauthorized(&spyClearer{}, &spyRedirector{})
		assert.True(t, s.CanRecover(classify.Classify(&classify.ResponseError{StatusCode: 401})))
		assert.False(t, s.CanRecover(classify.Classify(&classify.ResponseError{StatusCode: 403})))
		assert.False(t, s.CanRecover(nil))
	})

	t.Run("clears session then redirects", func(t *testing.T) {
		t.Parallel()

		clearer := &spyClearer{}
		redirector := &spyRedirector{}
		s := recovery.NewUnauthorized(clearer, redirector)

		assert.NoError(t, s.Recover(context.Background()))
		assert.Equal(t, 1, clearer.calls)
		assert.Equal(t, 1, redirector.calls)
	})

	t.Run("nil redirector is allowed", func(t *testing.T) {
		t.Parallel()

		clearer := &spyClearer{}
		s := recovery.NewUnauthorized(clearer, nil)
		assert.NoError(t, s.Recover(context.Background()))
		assert.Equal(t, 1, clearer.calls)
	})
}

func TestNetwork(t *testing.T) {
	t.Parallel()

	t.Run("matches only network", func(t *testing.T) {
		t.Parallel()

		s := recovery.NewNetwork(time.Millisecond)
		assert.True(t, s.CanRecover(&classify.Error{Kind: classify.KindNetwork}))
		assert.False(t, s.CanRecover(&classify.Error{Kind: classify.KindServer}))
	})

	t.Run("waits the configured delay", func(t *testing.T) {
		t.Parallel()

		s := recovery.NewNetwork(30 * time.Millisecond)
		start := time.Now()
		assert.NoError(t, s.Recover(context.Background()))
		assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
	})

	t.Run("cancellation aborts the wait", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		s := recovery.NewNetwork(time.Minute)
		err := s.Recover(ctx)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestDefaults_Order(t *testing.T) {
	t.Parallel()

	clearer := &spyClearer{}
	strategies := recovery.Defaults(clearer, nil)

	// Unauthorized must be evaluated before network.
	assert.True(t, strategies[0].CanRecover(&classify.Error{Kind: classify.KindUnauthorized}))
	assert.True(t, strategies[1].CanRecover(&classify.Error{Kind: classify.KindNetwork}))

	ok := recovery.New(strategies, discardLogger()).
		Attempt(context.Background(), classify.Classify(&classify.ResponseError{StatusCode: 401}))
	assert.True(t, ok)
	assert.Equal(t, 1, clearer.calls)
}

func TestFunc(t *testing.T) {
	t.Parallel()

	t.Run("adapts closures", func(t *testing.T) {
		t.Parallel()

		ran := false
		s := recovery.Func{
			CanRecoverFunc: func(cerr *classify.Error) bool { return cerr.Kind == classify.KindTimeout },
			RecoverFunc: func(ctx context.Context) error {
				ran = true
				return nil
			},
		}

		ok := recovery.New([]recovery.Strategy{s}, discardLogger()).
			Attempt(context.Background(), &classify.Error{Kind: classify.KindTimeout})
		assert.True(t, ok)
		assert.True(t, ran)
	})

	t.Run("zero value matches nothing", func(t *testing.T) {
		t.Parallel()

		var s recovery.Func
		assert.False(t, s.CanRecover(&classify.Error{Kind: classify.KindNetwork}))
		assert.NoError(t, s.Recover(context.Background()))
	})
}
