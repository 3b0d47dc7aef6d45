package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/cristiano-superacao/superacao/internal/errors"
)

// FileStore persists each key as a JSON file inside a directory. Writes go
// through a temp file and rename so a crash never leaves a half-written
// record behind.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore creates the backing directory if needed and returns a store.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.NewStorageError("create directory", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key Key) string {
	return filepath.Join(s.dir, fmt.Sprintf("%s.json", key))
}

// Get reads and decodes the record stored under key.
func (s *FileStore) Get(key Key, out interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return errors.NewNotFoundError("record", string(key))
		}
		return errors.NewStorageError("read", string(key), err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return errors.NewStorageError("decode", string(key), err)
	}
	return nil
}

// Set encodes value and writes it under key.
func (s *FileStore) Set(key Key, value interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return errors.NewStorageError("encode", string(key), err)
	}

	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.NewStorageError("write", string(key), err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		os.Remove(tmp)
		return errors.NewStorageError("write", string(key), err)
	}
	return nil
}

// Remove deletes the record stored under key. Removing an absent key is not
// an error.
func (s *FileStore) Remove(key Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return errors.NewStorageError("remove", string(key), err)
	}
	return nil
}
