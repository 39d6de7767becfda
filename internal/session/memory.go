package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/mohammedtarek245/real-estate-ai-agent/internal/agent"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryStore is an in-process Store for single-instance deployments and
// tests. Entries expire lazily on access.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryStore builds a MemoryStore. A non-positive ttl falls back to
// DefaultTTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, chatID string) (*agent.State, error) {
	s.mu.RLock()
	entry, ok := s.entries[chatID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	if s.now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.entries, chatID)
		s.mu.Unlock()
		return nil, ErrNotFound
	}
	var state agent.State
	if err := json.Unmarshal(entry.data, &state); err != nil {
		return nil, err
	}
	state.Normalize()
	return &state, nil
}

func (s *MemoryStore) Save(_ context.Context, chatID string, state *agent.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.entries[chatID] = memoryEntry{data: data, expiresAt: s.now().Add(s.ttl)}
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, chatID string) error {
	s.mu.Lock()
	delete(s.entries, chatID)
	s.mu.Unlock()
	return nil
}
