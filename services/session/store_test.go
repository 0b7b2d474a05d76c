package session

import (
	"context"
	"testing"

	"salvatore/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storeUnderTest runs the same contract checks against every backend.
func storeUnderTest(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("creates a fresh session", func(t *testing.T) {
		sess, err := store.GetOrCreate(ctx, "fresh-1")
		require.NoError(t, err)
		assert.Equal(t, "fresh-1", sess.ID)
		assert.Zero(t, sess.Step)
		require.Len(t, sess.History, 1)
		assert.Equal(t, models.SenderSystem, sess.History[0].Sender)
	})

	t.Run("save round-trips mutations", func(t *testing.T) {
		sess, err := store.GetOrCreate(ctx, "saved-1")
		require.NoError(t, err)

		sess.Step = 3
		sess.Booking.Date = "2026-11-01"
		sess.AddMessage(models.SenderUser, "November 1st")
		require.NoError(t, store.Save(ctx, sess))

		got, err := store.GetOrCreate(ctx, "saved-1")
		require.NoError(t, err)
		assert.Equal(t, 3, got.Step)
		assert.Equal(t, "2026-11-01", got.Booking.Date)
		assert.Len(t, got.History, 2)
	})

	t.Run("reset keeps the id and drops everything else", func(t *testing.T) {
		sess, err := store.GetOrCreate(ctx, "reset-1")
		require.NoError(t, err)
		sess.Step = 9
		sess.Booking.Email = "guest@example.com"
		require.NoError(t, store.Save(ctx, sess))

		fresh, err := store.Reset(ctx, "reset-1")
		require.NoError(t, err)
		assert.Equal(t, "reset-1", fresh.ID)
		assert.Zero(t, fresh.Step)
		assert.Empty(t, fresh.Booking.Email)

		got, err := store.GetOrCreate(ctx, "reset-1")
		require.NoError(t, err)
		assert.Zero(t, got.Step)
		assert.Empty(t, got.Booking.Email)
	})
}

func TestMemoryStore(t *testing.T) {
	storeUnderTest(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	storeUnderTest(t, store)
}

func TestFileStoreSanitizesIdentifiers(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	sess, err := store.GetOrCreate(ctx, "../../etc/passwd")
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, sess))

	// The write must land inside the sessions dir.
	got, err := store.GetOrCreate(ctx, "../../etc/passwd")
	require.NoError(t, err)
	assert.Equal(t, "../../etc/passwd", got.ID)
}
