// ABOUTME: Key-value persistence port used by the record stores.
// ABOUTME: Defines the durable-slot contract plus an in-memory test double.
package kv

import "sync"

// KV is the durable slot contract: named byte slots with whole-value reads
// and writes. A missing key is (nil, false, nil), not an error.
type KV interface {
	// Get returns the bytes stored under key and whether the key exists.
	Get(key string) ([]byte, bool, error)

	// Set overwrites the full value stored under key.
	Set(key string, data []byte) error
}

// MemKV is an in-memory KV for tests. SetErr, when non-nil, is returned
// from every Set call to exercise write-failure paths.
type MemKV struct {
	mu     sync.Mutex
	data   map[string][]byte
	SetErr error
}

// NewMemKV creates an empty in-memory KV.
func NewMemKV() *MemKV {
	return &MemKV{data: make(map[string][]byte)}
}

// Get returns the stored bytes for key, if any.
func (m *MemKV) Get(key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, true, nil
}

// Set stores data under key, or fails with SetErr when injected.
func (m *MemKV) Set(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SetErr != nil {
		return m.SetErr
	}
	stored := make([]byte, len(data))
	copy(stored, data)
	m.data[key] = stored
	return nil
}
