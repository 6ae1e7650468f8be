package session

import "errors"

var (
	// ErrInvalidSession indicates a nil session or one without a token.
	ErrInvalidSession = errors.New("session: invalid session")

	// ErrSessionNotFound indicates no session is stored.
	ErrSessionNotFound = errors.New("session: not found")

	// ErrSessionExpired indicates the stored session has lapsed.
	ErrSessionExpired = errors.New("session: expired")

	// ErrStoreUnavailable wraps backend failures (e.g. redis connectivity).
	ErrStoreUnavailable = errors.New("session: store unavailable")
)
