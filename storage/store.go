package storage

import (
	"context"
	"strings"
	"sync"
)

// Key addresses one cached query: an ordered tuple of identifiers, e.g.
// {"tasks", boardID, cardID}. Two keys with equal components denote the same
// entry.
type Key []string

// NewKey builds a key from its components.
func NewKey(parts ...string) Key { return Key(parts) }

// String renders the key's textual form used by the backing stores.
func (k Key) String() string { return strings.Join(k, ":") }

// Matches reports whether k equals prefix or extends it by further
// components.
func (k Key) Matches(prefix Key) bool {
	if len(prefix) > len(k) {
		return false
	}
	for i := range prefix {
		if k[i] != prefix[i] {
			return false
		}
	}
	return true
}

// Store holds last-known server values keyed by query. Implementations must
// be safe for concurrent use. Deleting an absent key is a no-op.
type Store interface {
	Get(ctx context.Context, key Key) ([]byte, bool, error)
	Set(ctx context.Context, key Key, value []byte) error
	Delete(ctx context.Context, keys ...Key) error
	DeletePrefix(ctx context.Context, prefix Key) error
}

// Memory is the default process-wide store.
type Memory struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string][]byte)}
}

func (m *Memory) Get(_ context.Context, key Key) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.entries[key.String()]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (m *Memory) Set(_ context.Context, key Key, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key.String()] = append([]byte(nil), value...)
	return nil
}

func (m *Memory) Delete(_ context.Context, keys ...Key) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.entries, k.String())
	}
	return nil
}

func (m *Memory) DeletePrefix(_ context.Context, prefix Key) error {
	p := prefix.String()
	m.mu.Lock()
	defer m.mu.Unlock()
	for k := range m.entries {
		if k == p || strings.HasPrefix(k, p+":") {
			delete(m.entries, k)
		}
	}
	return nil
}
