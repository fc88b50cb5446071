// Package persistence stores ledger collections in a key-value store as
// versioned JSON envelopes and keeps an Entity Store in step with it.
package persistence

import (
	"context"
	"slices"
	"sync"
)

// KV is the storage collaborator. Load reports ok=false for absent keys.
type KV interface {
	Load(ctx context.Context, key string) (value []byte, ok bool, err error)
	Save(ctx context.Context, key string, value []byte) error
}

// ChangeFunc receives a key and its new value after a write, possibly one
// made by another process or another Syncer sharing the store.
type ChangeFunc func(key string, value []byte)

// MemoryKV is an in-process KV. Every Save is broadcast to all watchers,
// including the writer's own, after the write is visible.
type MemoryKV struct {
	mu       sync.RWMutex
	data     map[string][]byte
	watchers map[int]ChangeFunc
	nextID   int
}

// NewMemoryKV returns an empty MemoryKV.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{
		data:     make(map[string][]byte),
		watchers: make(map[int]ChangeFunc),
	}
}

// Load implements KV.
func (m *MemoryKV) Load(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return slices.Clone(v), ok, nil
}

// Save implements KV.
func (m *MemoryKV) Save(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	m.data[key] = slices.Clone(value)
	watchers := make([]ChangeFunc, 0, len(m.watchers))
	for _, fn := range m.watchers {
		watchers = append(watchers, fn)
	}
	m.mu.Unlock()

	for _, fn := range watchers {
		fn(key, slices.Clone(value))
	}
	return nil
}

// Watch registers fn for every subsequent Save and returns a cancel func.
func (m *MemoryKV) Watch(fn ChangeFunc) (cancel func()) {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.watchers[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.watchers, id)
		m.mu.Unlock()
	}
}
