package store

import (
	"bytes"
	"sort"
	"sync"
)

// MemoryStore ... In-memory Store implementation used for tests and
// local development; mirrors the durable region layout without
// persistence
type MemoryStore struct {
	mu      sync.RWMutex
	regions map[string]map[string][]byte
}

// NewMemoryStore ... Initializer
func NewMemoryStore() *MemoryStore {
	regions := make(map[string]map[string][]byte)
	for _, bucket := range Buckets() {
		regions[string(bucket)] = make(map[string][]byte)
	}

	return &MemoryStore{regions: regions}
}

// Put ... Implements the Store interface
func (ms *MemoryStore) Put(bucket, key, value []byte) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.regions[string(bucket)][string(key)] = append([]byte{}, value...)
	return nil
}

// Get ... Implements the Store interface
func (ms *MemoryStore) Get(bucket, key []byte) ([]byte, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	val, exists := ms.regions[string(bucket)][string(key)]
	if !exists {
		return nil, ErrKeyNotFound
	}

	return append([]byte{}, val...), nil
}

// Delete ... Implements the Store interface
func (ms *MemoryStore) Delete(bucket, key []byte) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	delete(ms.regions[string(bucket)], string(key))
	return nil
}

// Seek ... Implements the Store interface; the snapshot is taken under
// the read lock and the callback runs outside of it
func (ms *MemoryStore) Seek(bucket, prefix []byte, f func(k, v []byte) error) error {
	ms.mu.RLock()

	keys := make([]string, 0, len(ms.regions[string(bucket)]))
	for k := range ms.regions[string(bucket)] {
		if bytes.HasPrefix([]byte(k), prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	snapshot := make(map[string][]byte, len(keys))
	for _, k := range keys {
		snapshot[k] = append([]byte{}, ms.regions[string(bucket)][k]...)
	}
	ms.mu.RUnlock()

	for _, k := range keys {
		if err := f([]byte(k), snapshot[k]); err != nil {
			return err
		}
	}

	return nil
}

// Close ... Implements the Store interface
func (ms *MemoryStore) Close() error {
	return nil
}
