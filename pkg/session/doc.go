// Package session persists the signed-in agent's credentials so they survive
// a reload and, just as importantly, so they can be cleared when the backend
// rejects them.
//
// Both stores satisfy the recovery package's SessionClearer interface, which
// is how the unauthorized-recovery strategy drops stale credentials before
// redirecting to login:
//
//	store := session.NewRedisStore(redisClient)
//	d := recovery.New(recovery.Defaults(store, router))
//
// MemoryStore is the in-process variant for tests and short-lived tools.
package session
