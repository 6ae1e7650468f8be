package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/faultkit/pkg/session"
)

func TestMemoryStore_SaveLoad(t *testing.T) {
	t.Parallel()

	store := session.NewMemoryStore()
	ctx := context.Background()

	s := session.New("agent-1", "tok-123", time.Hour)
	s.Data = map[string]any{"team": "support"}
	require.NoError(t, store.Save(ctx, s))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "agent-1", loaded.UserID)
	assert.Equal(t, "tok-123", loaded.Token)
	assert.Equal(t, "support", loaded.Data["team"])
}

func TestMemoryStore_LoadEmpty(t *testing.T) {
	t.Parallel()

	store := session.NewMemoryStore()
	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestMemoryStore_Expiry(t *testing.T) {
	t.Parallel()

	store := session.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, session.New("agent-1", "tok", 10*time.Millisecond)))
	time.Sleep(20 * time.Millisecond)

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, session.ErrSessionExpired)

	// Expired session is dropped, subsequent loads see an empty store.
	_, err = store.Load(ctx)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestMemoryStore_Clear(t *testing.T) {
	t.Parallel()

	store := session.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, session.New("agent-1", "tok", time.Hour)))
	require.NoError(t, store.Clear(ctx))

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)

	assert.NoError(t, store.Clear(ctx), "clearing an empty store is not an error")
}

func TestMemoryStore_RejectsInvalid(t *testing.T) {
	t.Parallel()

	store := session.NewMemoryStore()
	ctx := context.Background()

	assert.ErrorIs(t, store.Save(ctx, nil), session.ErrInvalidSession)
	assert.ErrorIs(t, store.Save(ctx, &session.Session{}), session.ErrInvalidSession)
}

func TestMemoryStore_CopiesData(t *testing.T) {
	t.Parallel()

	store := session.NewMemoryStore()
	ctx := context.Background()

	s := session.New("agent-1", "tok", time.Hour)
	s.Data = map[string]any{"k": "v"}
	require.NoError(t, store.Save(ctx, s))

	s.Data["k"] = "mutated"

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "v", loaded.Data["k"], "stored state must not alias the caller's map")
}

func TestSession_IsExpired(t *testing.T) {
	t.Parallel()

	assert.False(t, session.New("u", "t", time.Hour).IsExpired())
	assert.True(t, session.New("u", "t", -time.Minute).IsExpired())
	assert.False(t, (&session.Session{Token: "t"}).IsExpired(), "zero expiry never expires")
}
