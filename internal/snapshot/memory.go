package snapshot

import (
	"context"
	"sync"
)

// MemoryStore is the in-process fallback used when no Redis URL is
// configured, and by tests.
type MemoryStore struct {
	mu   sync.RWMutex
	snap Snapshot
	ok   bool
}

// NewMemory creates an empty in-memory store.
func NewMemory() *MemoryStore {
	return &MemoryStore{}
}

// Save replaces the stored snapshot.
func (s *MemoryStore) Save(_ context.Context, snap Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap
	s.ok = true
	return nil
}

// Load returns the stored snapshot, or ok=false when none exists.
func (s *MemoryStore) Load(_ context.Context) (Snapshot, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap, s.ok, nil
}
