package session

import (
	"time"

	"github.com/google/uuid"
)

// Session is the persisted credential state for the signed-in agent. The
// console is single-user, so a store holds at most one current session.
type Session struct {
	ID        string         `json:"id"`
	Token     string         `json:"token"`
	UserID    string         `json:"user_id"`
	ExpiresAt time.Time      `json:"expires_at"`
	CreatedAt time.Time      `json:"created_at"`
	Data      map[string]any `json:"data,omitempty"`
}

// New creates a session for userID with the given auth token and lifetime.
func New(userID, token string, ttl time.Duration) *Session {
	now := time.Now()
	return &Session{
		ID:        uuid.New().String(),
		Token:     token,
		UserID:    userID,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}
}

// IsExpired reports whether the session lifetime has passed.
func (s *Session) IsExpired() bool {
	return !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt)
}
