// ABOUTME: Keyed record store adding update and delete by record identity.
// ABOUTME: Identity is a type-level capability; append-only record types cannot be keyed.
package store

import "github.com/developer-ongar/daytrack/internal/kv"

// Identifier is the capability a record type needs for update and delete.
// Types without it (like mood entries) can only live in an append-only
// RecordStore.
type Identifier interface {
	Identity() string
}

// KeyedStore is a RecordStore whose records carry stable identities,
// enabling in-place update and delete.
type KeyedStore[T Identifier] struct {
	*RecordStore[T]
}

// NewKeyed creates a keyed store bound to one slot, restoring existing
// state the same way New does.
func NewKeyed[T Identifier](store kv.KV, key string, opts ...Option) *KeyedStore[T] {
	return &KeyedStore[T]{RecordStore: New[T](store, key, opts...)}
}

// Update replaces the first record whose identity matches, preserving its
// position, then notifies and writes through. An unknown identity is a
// no-op: Update reports whether a record was replaced, but raises no
// error, matching the store's absorb-all-failures contract.
func (s *KeyedStore[T]) Update(record T) bool {
	s.mu.Lock()
	idx := s.indexOf(record.Identity())
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	s.records[idx] = record
	snap := s.snapshot()
	fns := s.subscribers()
	s.save()
	s.mu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
	return true
}

// Delete removes the first record whose identity matches, preserving the
// relative order of the rest. An unknown identity is a silent no-op.
func (s *KeyedStore[T]) Delete(record T) bool {
	return s.DeleteID(record.Identity())
}

// DeleteID removes the record with the given identity, if present.
func (s *KeyedStore[T]) DeleteID(id string) bool {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	s.records = append(s.records[:idx], s.records[idx+1:]...)
	snap := s.snapshot()
	fns := s.subscribers()
	s.save()
	s.mu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
	return true
}

// Get returns the record with the given identity.
func (s *KeyedStore[T]) Get(id string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOf(id)
	if idx < 0 {
		var zero T
		return zero, false
	}
	return s.records[idx], true
}

// indexOf returns the position of the record with the given identity, or
// -1. Callers must hold mu.
func (s *KeyedStore[T]) indexOf(id string) int {
	for i, rec := range s.records {
		if rec.Identity() == id {
			return i
		}
	}
	return -1
}
