package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"studio_api/internal/domain/wizard"
	"studio_api/internal/usecase/interfaces"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryStore is the single-instance draft store used when Redis is not configured.
// Drafts are stored serialized so callers never share a pointer with the store.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

var _ interfaces.IDraftStore = (*MemoryStore)(nil)

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry), ttl: ttl, now: time.Now}
}

func (s *MemoryStore) Save(_ context.Context, d *wizard.Draft) error {
	data, err := json.Marshal(d)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[d.ID] = memoryEntry{data: data, expiresAt: s.now().Add(s.ttl)}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*wizard.Draft, error) {
	s.mu.Lock()
	e, ok := s.entries[id]
	if ok && s.ttl > 0 && s.now().After(e.expiresAt) {
		delete(s.entries, id)
		ok = false
	}
	s.mu.Unlock()
	if !ok {
		return nil, nil
	}
	var d wizard.Draft
	if err := json.Unmarshal(e.data, &d); err != nil {
		return nil, err
	}
	return &d, nil
}
