package memory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/agroclima/agroclima-api/internal/domain"
)

func TestHistoryStorePutGet(t *testing.T) {
	store := NewHistoryStore(time.Hour)

	_, ok := store.Get("s1")
	require.False(t, ok, "expected no entry before first Put")

	turns := []domain.Turn{{Role: domain.RoleSystem, Content: domain.SystemPrompt}}
	store.Put("s1", turns)

	got, ok := store.Get("s1")
	require.True(t, ok)
	require.Equal(t, turns, got)
}

func TestHistoryStoreCopiesOnReadAndWrite(t *testing.T) {
	store := NewHistoryStore(0)

	turns := []domain.Turn{{Role: domain.RoleUser, Content: "hola"}}
	store.Put("s1", turns)

	// Mutating the caller's slice must not reach the store.
	turns[0].Content = "mutated"

	got, ok := store.Get("s1")
	require.True(t, ok)
	require.Equal(t, "hola", got[0].Content)

	// Mutating a returned slice must not reach the store either.
	got[0].Content = "mutated again"

	got2, ok := store.Get("s1")
	require.True(t, ok)
	require.Equal(t, "hola", got2[0].Content)
}

func TestHistoryStoreExpiry(t *testing.T) {
	store := NewHistoryStore(6 * time.Hour)

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	now := base
	store.now = func() time.Time { return now }

	store.Put("s1", []domain.Turn{{Role: domain.RoleUser, Content: "hola"}})

	now = base.Add(5 * time.Hour)
	_, ok := store.Get("s1")
	require.True(t, ok, "entry should survive within the ttl")

	// Every Put renews the deadline.
	store.Put("s1", []domain.Turn{{Role: domain.RoleUser, Content: "hola"}})
	now = base.Add(10 * time.Hour)
	_, ok = store.Get("s1")
	require.True(t, ok, "ttl should slide on write")

	now = base.Add(20 * time.Hour)
	_, ok = store.Get("s1")
	require.False(t, ok, "entry should expire after the ttl")

	// Expired entries are removed, not resurrected.
	now = base
	_, ok = store.Get("s1")
	require.False(t, ok)
}

func TestHistoryStoreDelete(t *testing.T) {
	store := NewHistoryStore(time.Hour)

	store.Put("s1", []domain.Turn{{Role: domain.RoleUser, Content: "hola"}})
	store.Delete("s1")

	_, ok := store.Get("s1")
	require.False(t, ok)

	// Deleting an absent entry is fine.
	store.Delete("s1")
	store.Delete("never-stored")
}
