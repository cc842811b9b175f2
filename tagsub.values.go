package tagsub

import (
	"sort"
	"sync"
)

// ValueStore is the key-value collaborator behind the default '$' hook: span
// payloads are looked up here by name. It is thread-safe, but mutating it
// while an interpretation is in flight must be serialized by the caller.
type ValueStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewValueStore creates an empty value store.
func NewValueStore() *ValueStore {
	return &ValueStore{
		values: make(map[string]string),
	}
}

// Set stores a value under name, replacing any existing entry.
func (s *ValueStore) Set(name, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[name] = value
}

// SetAll stores every entry of values.
func (s *ValueStore) SetAll(values map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for name, value := range values {
		s.values[name] = value
	}
}

// Get retrieves the value stored under name.
func (s *ValueStore) Get(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[name]
	return value, ok
}

// Has checks if a value is stored under name.
func (s *ValueStore) Has(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.values[name]
	return ok
}

// Delete removes the entry under name.
// Returns true if the entry existed and was removed, false otherwise.
func (s *ValueStore) Delete(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.values[name]; !ok {
		return false
	}
	delete(s.values, name)
	return true
}

// Keys returns all stored names in sorted order.
func (s *ValueStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.values))
	for name := range s.values {
		keys = append(keys, name)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of stored values.
func (s *ValueStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.values)
}
