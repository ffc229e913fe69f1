package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumi/pkg/models"
)

func TestMemoryStoreLifecycle(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	defer store.Close()

	ctx := context.Background()

	session := &Session{
		ID:        "abc",
		Profile:   &models.Profile{PrimaryRole: "operations"},
		CreatedAt: time.Now(),
	}

	require.NoError(t, store.Create(ctx, session))

	got, err := store.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "operations", got.Profile.PrimaryRole)

	// Preferences replace in place
	session.Preferences = &models.UserPreferences{RemoteOnly: true}
	require.NoError(t, store.Update(ctx, session))

	got, err = store.Get(ctx, "abc")
	require.NoError(t, err)
	require.NotNil(t, got.Preferences)
	assert.True(t, got.Preferences.RemoteOnly)

	require.NoError(t, store.Delete(ctx, "abc"))
	_, err = store.Get(ctx, "abc")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreGetUnknown(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	defer store.Close()

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreUpdateUnknown(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	defer store.Close()

	err := store.Update(context.Background(), &Session{ID: "missing"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore(10 * time.Millisecond)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.Create(ctx, &Session{ID: "short"}))

	time.Sleep(20 * time.Millisecond)

	_, err := store.Get(ctx, "short")
	assert.ErrorIs(t, err, ErrNotFound)
}
