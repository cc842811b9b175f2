package tagsub

import (
	"sort"
	"sync"
)

// Properties is a template's property bag: pure accessor storage with no
// engine semantics. The interpretation engine never reads it; it exists for
// callers to attach arbitrary per-template data.
type Properties struct {
	mu    sync.RWMutex
	items map[string]any
}

// NewProperties creates an empty property bag.
func NewProperties() *Properties {
	return &Properties{
		items: make(map[string]any),
	}
}

// Set stores a value under key, replacing any existing entry.
func (p *Properties) Set(key string, value any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.items[key] = value
}

// Get retrieves the value stored under key.
func (p *Properties) Get(key string) (any, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	value, ok := p.items[key]
	return value, ok
}

// GetString retrieves the value under key if it is a string.
func (p *Properties) GetString(key string) (string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	value, ok := p.items[key]
	if !ok {
		return "", false
	}
	s, ok := value.(string)
	return s, ok
}

// Has checks if a value is stored under key.
func (p *Properties) Has(key string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	_, ok := p.items[key]
	return ok
}

// Delete removes the entry under key.
// Returns true if the entry existed and was removed, false otherwise.
func (p *Properties) Delete(key string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.items[key]; !ok {
		return false
	}
	delete(p.items, key)
	return true
}

// Keys returns all stored keys in sorted order.
func (p *Properties) Keys() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	keys := make([]string, 0, len(p.items))
	for key := range p.items {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of stored properties.
func (p *Properties) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return len(p.items)
}

// Map returns a copy of the stored properties.
func (p *Properties) Map() map[string]any {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make(map[string]any, len(p.items))
	for key, value := range p.items {
		out[key] = value
	}
	return out
}
