package memory

import (
	"sync"
	"time"

	"github.com/agroclima/agroclima-api/internal/domain"
)

type entry struct {
	turns     []domain.Turn
	expiresAt time.Time
}

// HistoryStore is an in-memory implementation of domain.HistoryStore.
// Entries expire after the configured ttl of inactivity; a ttl <= 0
// disables expiry. Not persistent, only suitable for a single process.
type HistoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[domain.SessionID]*entry
	now     func() time.Time
}

func NewHistoryStore(ttl time.Duration) *HistoryStore {
	return &HistoryStore{
		ttl:     ttl,
		entries: make(map[domain.SessionID]*entry),
		now:     time.Now,
	}
}

// Get returns a copy of the stored turns. An expired entry counts as
// absent and is removed on the spot.
func (s *HistoryStore) Get(id domain.SessionID) ([]domain.Turn, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return nil, false
	}
	if !e.expiresAt.IsZero() && s.now().After(e.expiresAt) {
		delete(s.entries, id)
		return nil, false
	}

	out := make([]domain.Turn, len(e.turns))
	copy(out, e.turns)
	return out, true
}

// Put stores a copy of turns and renews the expiry deadline.
func (s *HistoryStore) Put(id domain.SessionID, turns []domain.Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]domain.Turn, len(turns))
	copy(stored, turns)

	e := &entry{turns: stored}
	if s.ttl > 0 {
		e.expiresAt = s.now().Add(s.ttl)
	}
	s.entries[id] = e
}

func (s *HistoryStore) Delete(id domain.SessionID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, id)
}
