package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/itf-dev/schedule-masters/internal/model/chat"
)

func testStores(t *testing.T) map[string]Store {
	t.Helper()

	sqlite, err := NewSQLiteStore(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close() })

	return map[string]Store{
		"sqlite": sqlite,
		"memory": NewMemoryStore(),
	}
}

func TestStoreMissingKey(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := store.Load(context.Background(), Key{TopicID: "siwes", IdentityKey: "user-1"})
			require.NoError(t, err)
			require.False(t, ok)
		})
	}
}

func TestStoreRoundTrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	messages := []chat.Message{
		{ID: "m1", Role: chat.RoleAssistant, Content: "welcome", CreatedAt: now},
		{ID: "m2", Role: chat.RoleUser, Content: "What is SIWES?", CreatedAt: now.Add(time.Second)},
	}

	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			key := Key{TopicID: "siwes", IdentityKey: "user-1"}

			require.NoError(t, store.Save(ctx, key, messages))

			got, ok, err := store.Load(ctx, key)
			require.NoError(t, err)
			require.True(t, ok)
			require.Equal(t, messages, got)
		})
	}
}

func TestStoreOverwriteLastWriteWins(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			key := Key{TopicID: "tna", IdentityKey: "user-2"}

			require.NoError(t, store.Save(ctx, key, []chat.Message{{ID: "old", Role: chat.RoleUser, Content: "old"}}))
			require.NoError(t, store.Save(ctx, key, []chat.Message{{ID: "new", Role: chat.RoleUser, Content: "new"}}))

			got, ok, err := store.Load(ctx, key)
			require.NoError(t, err)
			require.True(t, ok)
			require.Len(t, got, 1)
			require.Equal(t, "new", got[0].ID)
		})
	}
}

func TestStoreKeysAreIndependent(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, store.Save(ctx, Key{TopicID: "siwes", IdentityKey: "a"}, []chat.Message{{ID: "m1"}}))

			_, ok, err := store.Load(ctx, Key{TopicID: "siwes", IdentityKey: "b"})
			require.NoError(t, err)
			require.False(t, ok)

			_, ok, err = store.Load(ctx, Key{TopicID: "msme", IdentityKey: "a"})
			require.NoError(t, err)
			require.False(t, ok)
		})
	}
}
