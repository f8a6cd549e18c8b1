package localstore

import "sync"

// Store is the device-scoped, synchronous key/value store a session writes
// through. Implementations must never fail: a broken backend degrades to
// "no data" on reads and silently drops writes.
type Store interface {
	Get(key string) string
	Set(key, value string)
	Remove(key string)
}

type memoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemory returns an in-process Store. One instance backs all guest
// sessions served by this process; keys carry the device ID.
func NewMemory() Store {
	return &memoryStore{data: make(map[string]string)}
}

func (s *memoryStore) Get(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data[key]
}

func (s *memoryStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
}

func (s *memoryStore) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}
