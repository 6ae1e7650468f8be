// Package recovery dispatches typed remediation actions for classified
// failures: clear the session and head to login on an authentication failure,
// wait out a flaky connection on a network failure.
//
// Strategies are evaluated strictly in order and only the first match runs.
// A recovery action that itself fails is logged and swallowed; attempting
// recovery must never make the original failure worse.
//
// # Usage
//
//	d := recovery.New(recovery.Defaults(sessionStore, router))
//
//	cerr := classify.Classify(err)
//	if d.Attempt(ctx, cerr) {
//	    return // handled, e.g. user is on the login screen now
//	}
//	// fall through to plain error presentation
//
// Custom strategies implement the two-method Strategy interface or wrap a
// pair of closures in Func. Passing a custom list to New replaces the
// defaults entirely rather than merging with them.
package recovery
