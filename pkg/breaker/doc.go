// Package breaker implements the circuit breaker pattern: after a run of
// consecutive failures the circuit opens and calls fail fast without touching
// the dependency, until a cool-down elapses and a probe call tests recovery.
//
// Two surfaces are provided. CircuitBreaker owns the protected operation and
// exposes Execute, which is the right shape for a single call site:
//
//	cb := breaker.New(func(ctx context.Context) (Report, error) {
//	    return reports.Fetch(ctx)
//	},
//	    breaker.WithFailureThreshold(5),
//	    breaker.WithResetTimeout(time.Minute),
//	)
//
//	report, err := cb.Execute(ctx)
//	if breaker.IsCircuitOpen(err) {
//	    // dependency is known-bad, skip it for now
//	}
//
// Breaker is the underlying Allow/RecordSuccess/RecordFailure state machine
// for callers that build the request themselves per attempt, such as an HTTP
// client wrapping varied requests behind one guarded endpoint.
//
// A breaker trades occasional false rejections during the cool-down window
// for not hammering a dependency that is known to be down. Construct one per
// dependency; a shared instance would mix unrelated failure histories.
package breaker
