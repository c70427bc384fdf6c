package favorites

import (
	"errors"
	"maps"
	"sync"
)

var ErrKeyNotFound = errors.New("key not found")

// Storage is a flat key-value store. Values are opaque bytes; callers own the
// encoding.
type Storage interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
}

// MemoryStorage keeps values in a map. SetErr, when non-nil, is returned by
// every Set without storing anything, mimicking a full quota.
type MemoryStorage struct {
	mu     sync.Mutex
	values map[string][]byte
	SetErr error
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string][]byte)}
}

func (s *MemoryStorage) Get(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.values[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return append([]byte(nil), v...), nil
}

func (s *MemoryStorage) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.SetErr != nil {
		return s.SetErr
	}
	if s.values == nil {
		s.values = make(map[string][]byte)
	}
	s.values[key] = append([]byte(nil), value...)
	return nil
}

// Snapshot returns a copy of every stored key.
func (s *MemoryStorage) Snapshot() map[string][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return maps.Clone(s.values)
}
