package store

import (
	"sync"

	"github.com/sandrolain/gojsh/pkg/types"
)

// MemoryStore keeps the serialized document in process memory.
type MemoryStore struct {
	mu   sync.Mutex
	data []byte
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load implements Store. Every call returns a fresh copy.
func (s *MemoryStore) Load() (types.Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return nil, ErrNoDocument
	}
	return types.Unmarshal(s.data)
}

// Save implements Store.
func (s *MemoryStore) Save(doc types.Value) error {
	data, err := types.Marshal(doc)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data = data
	s.mu.Unlock()
	return nil
}

// Close implements Store.
func (s *MemoryStore) Close() error {
	return nil
}
