package storage

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time // zero = never
}

// MemoryBackend is an in-process Backend used for tests and for running
// the API without Redis or Postgres
type MemoryBackend struct {
	name    string
	now     func() time.Time
	mu      sync.RWMutex
	entries map[string]memoryEntry
	failErr error
}

func NewMemoryBackend(name string, now func() time.Time) *MemoryBackend {
	if now == nil {
		now = time.Now
	}
	if name == "" {
		name = "memory"
	}
	return &MemoryBackend{
		name:    name,
		now:     now,
		entries: make(map[string]memoryEntry),
	}
}

func (m *MemoryBackend) Name() string { return m.name }

// FailWith makes every following call return err (nil restores normal behavior)
func (m *MemoryBackend) FailWith(err error) {
	m.mu.Lock()
	m.failErr = err
	m.mu.Unlock()
}

func (m *MemoryBackend) Read(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.failErr != nil {
		return "", m.failErr
	}
	e, ok := m.entries[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	if !e.expiresAt.IsZero() && !m.now().Before(e.expiresAt) {
		return "", ErrKeyNotFound
	}
	return e.value, nil
}

func (m *MemoryBackend) Write(_ context.Context, key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return m.failErr
	}
	if ttl < 0 {
		delete(m.entries, key)
		return nil
	}
	e := memoryEntry{value: value}
	if ttl > 0 {
		e.expiresAt = m.now().Add(ttl)
	}
	m.entries[key] = e
	return nil
}

func (m *MemoryBackend) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return m.failErr
	}
	delete(m.entries, key)
	return nil
}

// Raw returns the stored value ignoring expiry, for inspection in tests
func (m *MemoryBackend) Raw(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[key]
	return e.value, ok
}

func (m *MemoryBackend) Close() error { return nil }
