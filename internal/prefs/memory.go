package prefs

import (
	"context"
	"sync"
)

// Memory keeps preferences in process memory. Nothing survives a restart.
type Memory struct {
	mu     sync.Mutex
	values map[string]bool
}

// NewMemory returns an empty in-memory backend.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]bool)}
}

func (m *Memory) GetBoolean(_ context.Context, key string, def bool) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return def, nil
	}
	return v, nil
}

func (m *Memory) PutBoolean(_ context.Context, key string, value bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *Memory) Close() error { return nil }
