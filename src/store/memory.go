package store

import (
	"context"
	"sync"
)

// MemoryObjectStore keeps objects in a map. It backs the test suites and
// local runs without S3 credentials.
type MemoryObjectStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func NewMemoryObjectStore() *MemoryObjectStore {
	return &MemoryObjectStore{objects: make(map[string][]byte)}
}

func (m *MemoryObjectStore) ResolveKeyByName(ctx context.Context, name string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.objects[name]
	return name, ok
}

func (m *MemoryObjectStore) GetObjectContents(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.objects[key], nil
}

func (m *MemoryObjectStore) PutObjectContents(ctx context.Context, name string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[name] = data
	return nil
}

// Len reports how many objects exist, for asserting that reads do not
// create files as a side effect.
func (m *MemoryObjectStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects)
}

// Corrupt overwrites an object with arbitrary bytes, bypassing the store.
func (m *MemoryObjectStore) Corrupt(name string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[name] = data
}
