package storage

import (
	"encoding/json"
	"sync"

	"github.com/cristiano-superacao/superacao/internal/errors"
)

// MemoryStore is an in-memory Store used in tests and as the fallback when
// no writable directory is available.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[Key][]byte
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[Key][]byte)}
}

// Get decodes the record stored under key into out.
func (s *MemoryStore) Get(key Key, out interface{}) error {
	s.mu.RLock()
	data, ok := s.data[key]
	s.mu.RUnlock()

	if !ok {
		return errors.NewNotFoundError("record", string(key))
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.NewStorageError("decode", string(key), err)
	}
	return nil
}

// Set encodes value and stores it under key.
func (s *MemoryStore) Set(key Key, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.NewStorageError("encode", string(key), err)
	}

	s.mu.Lock()
	s.data[key] = data
	s.mu.Unlock()
	return nil
}

// Remove deletes the record stored under key.
func (s *MemoryStore) Remove(key Key) error {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	return nil
}
