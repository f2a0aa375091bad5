package blobstore

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore is an in-memory Store implementation for testing and ephemeral
// collections. Thread-safe for concurrent reads and writes.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryStore creates a new in-memory blob store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		blobs: make(map[string][]byte),
	}
}

// ReadAll returns the full content of the named blob.
func (m *MemoryStore) ReadAll(_ context.Context, name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.blobs[name]
	if !ok {
		return nil, ErrNotFound
	}

	// Return a copy to prevent external mutation
	copied := make([]byte, len(data))
	copy(copied, data)
	return copied, nil
}

// WriteAll replaces the named blob with data.
func (m *MemoryStore) WriteAll(_ context.Context, name string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := make([]byte, len(data))
	copy(copied, data)
	m.blobs[name] = copied
	return nil
}

// Append appends rows to the named blob, creating it with header first if it
// does not yet exist. Unlike LocalStore, appends are serialized by the store
// lock rather than by the filesystem.
func (m *MemoryStore) Append(_ context.Context, name string, header, rows []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, ok := m.blobs[name]
	if !ok {
		data = append([]byte(nil), header...)
	}
	m.blobs[name] = append(data, rows...)
	return nil
}

// Delete removes the named blob. Deleting an absent blob is not an error.
func (m *MemoryStore) Delete(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.blobs, name)
	return nil
}

// List returns the names of all blobs, sorted.
func (m *MemoryStore) List(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.blobs))
	for name := range m.blobs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
