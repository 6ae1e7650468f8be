package session

import (
	"context"
	"maps"
	"sync"
)

// MemoryStore keeps the session in process memory. Suitable for tests and
// ephemeral environments; state does not survive a restart.
type MemoryStore struct {
	mu      sync.RWMutex
	current *Session
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save stores the session, replacing any existing one.
func (m *MemoryStore) Save(ctx context.Context, session *Session) error {
	if session == nil || session.Token == "" {
		return ErrInvalidSession
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = copySession(session)
	return nil
}

// Load returns the current session.
func (m *MemoryStore) Load(ctx context.Context) (*Session, error) {
	m.mu.RLock()
	current := m.current
	m.mu.RUnlock()

	if current == nil {
		return nil, ErrSessionNotFound
	}
	if current.IsExpired() {
		m.mu.Lock()
		m.current = nil
		m.mu.Unlock()
		return nil, ErrSessionExpired
	}
	return copySession(current), nil
}

// Clear removes the current session.
func (m *MemoryStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = nil
	return nil
}

// copySession returns a deep enough copy that callers cannot mutate stored
// state through the Data map.
func copySession(s *Session) *Session {
	c := *s
	if s.Data != nil {
		c.Data = make(map[string]any, len(s.Data))
		maps.Copy(c.Data, s.Data)
	}
	return &c
}
