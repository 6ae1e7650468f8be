package retry

import (
	"math"
	"math/rand"
	"time"
)

// BackoffStrategy computes the delay before a retry. Attempt starts at 1 for
// the first retry. Implementations must be safe for concurrent use.
type BackoffStrategy interface {
	NextDelay(attempt int) time.Duration
}

// ExponentialBackoff grows the delay geometrically, optionally spreading it
// with jitter so coordinated clients do not retry in lockstep.
type ExponentialBackoff struct {
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Factor       float64
	JitterFactor float64
}

// NextDelay returns min(InitialDelay * Factor^(attempt-1), MaxDelay), with
// jitter applied before clamping. Non-positive attempts yield zero.
func (e ExponentialBackoff) NextDelay(attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}

	initial := e.InitialDelay
	if initial == 0 {
		initial = time.Second
	}

	maxDelay := e.MaxDelay
	if maxDelay == 0 {
		maxDelay = 10 * time.Second
	}

	factor := e.Factor
	if factor < 1 {
		factor = 2
	}

	delay := float64(initial) * math.Pow(factor, float64(attempt-1))

	if e.JitterFactor > 0 {
		delay *= 1 + (rand.Float64()*2-1)*e.JitterFactor
	}

	// Clamp after jitter so MaxDelay is a hard upper bound even when the
	// exponent would overflow.
	if delay > float64(maxDelay) || delay < 0 {
		delay = float64(maxDelay)
	}

	return time.Duration(delay)
}

// FixedBackoff waits the same interval between every retry.
type FixedBackoff struct {
	Interval time.Duration
}

// NextDelay always returns Interval for positive attempts.
func (f FixedBackoff) NextDelay(attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}
	return f.Interval
}

// DefaultBackoffStrategy returns the exponential backoff used when no
// strategy is configured: 1s initial, 10s cap, doubling, no jitter.
func DefaultBackoffStrategy() BackoffStrategy {
	return ExponentialBackoff{
		InitialDelay: time.Second,
		MaxDelay:     10 * time.Second,
		Factor:       2,
	}
}
