package entry

import (
	"context"
	"fmt"
	"sync"

	"github.com/ethanbaker/lineramind/pkg/entry"
)

// InMemoryStore keeps entries in process memory, for tests and local runs
type InMemoryStore struct {
	entries map[int64]*entry.Entry
	nextID  int64
	mutex   sync.RWMutex
}

// NewInMemoryStore creates an empty in-memory store
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		entries: make(map[int64]*entry.Entry),
		nextID:  1,
	}
}

// CreateEntry appends a new entry, assigning its id and timestamp
func (s *InMemoryStore) CreateEntry(ctx context.Context, in entry.NewEntry) (*entry.Entry, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	e := &entry.Entry{
		ID:          s.nextID,
		Question:    in.Question,
		Answer:      in.Answer,
		ChainID:     in.ChainID,
		BlockHeight: in.BlockHeight,
		Timestamp:   now(),
	}
	s.entries[e.ID] = e
	s.nextID++

	return e.Clone(), nil
}

// GetEntry reads an entry by id
func (s *InMemoryStore) GetEntry(ctx context.Context, id int64) (*entry.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	e, exists := s.entries[id]
	if !exists {
		return nil, fmt.Errorf("entry %d: %w", id, entry.ErrNotFound)
	}
	return e.Clone(), nil
}

// Close is a no-op
func (s *InMemoryStore) Close() error {
	return nil
}
