package session

import "context"

// Store persists the current session. Implementations satisfy the recovery
// package's SessionClearer, which is the hook the unauthorized-recovery
// strategy uses to drop stale credentials.
type Store interface {
	// Save stores the session, replacing any existing one.
	Save(ctx context.Context, session *Session) error

	// Load returns the current session. ErrSessionNotFound when none is
	// stored, ErrSessionExpired when the stored one has lapsed.
	Load(ctx context.Context) (*Session, error)

	// Clear removes the current session. Clearing an empty store is not an
	// error.
	Clear(ctx context.Context) error
}
