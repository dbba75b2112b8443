// ABOUTME: Generic write-through record store over a durable KV slot.
// ABOUTME: Keeps an ordered in-memory list, persists the full list as JSON, and notifies subscribers.
package store

import (
	"encoding/json"
	"log"
	"os"
	"sync"

	"github.com/developer-ongar/daytrack/internal/kv"
)

// RecordStore keeps an ordered collection of T durable under a single KV
// key. The in-memory list is the source of truth for readers; every
// mutation writes the full list through to the slot before returning.
//
// Records of an arbitrary T are append-only. Update and delete require an
// identity and live on KeyedStore.
type RecordStore[T any] struct {
	mu      sync.Mutex
	kv      kv.KV
	key     string
	records []T
	subs    map[int]func([]T)
	nextSub int
	logger  *log.Logger
}

// Option configures optional RecordStore dependencies.
type Option func(*options)

type options struct {
	logger *log.Logger
}

// WithLogger sets the logger used for absorbed load/save failures.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// New creates a record store bound to one slot and restores any existing
// state. Restore is best-effort: an absent slot leaves the list empty, and
// a slot that fails to read or parse is discarded with a log line.
// Corrupt data must never prevent startup.
func New[T any](store kv.KV, key string, opts ...Option) *RecordStore[T] {
	o := options{logger: log.New(os.Stderr, "", log.LstdFlags)}
	for _, opt := range opts {
		opt(&o)
	}

	s := &RecordStore[T]{
		kv:     store,
		key:    key,
		subs:   make(map[int]func([]T)),
		logger: o.logger,
	}
	s.load()
	return s
}

// load restores the in-memory list from the slot. Failures are absorbed.
func (s *RecordStore[T]) load() {
	data, ok, err := s.kv.Get(s.key)
	if err != nil {
		s.logger.Printf("slot %s: read failed, starting empty: %v", s.key, err)
		return
	}
	if !ok {
		return
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		s.logger.Printf("slot %s: discarding unparseable data: %v", s.key, err)
		return
	}
	s.records = records
}

// List returns a copy of the current records in insertion order.
func (s *RecordStore[T]) List() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Len returns the number of records.
func (s *RecordStore[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Add appends a record, notifies subscribers, and writes through.
func (s *RecordStore[T]) Add(record T) {
	s.mu.Lock()
	s.records = append(s.records, record)
	snap := s.snapshot()
	fns := s.subscribers()
	s.save()
	s.mu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}

// Subscribe registers a callback invoked synchronously after every
// mutation with a snapshot of the list. It returns a token for
// Unsubscribe. Callbacks run outside the store's lock, so they may call
// List or mutate the store.
func (s *RecordStore[T]) Subscribe(fn func([]T)) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSub++
	s.subs[s.nextSub] = fn
	return s.nextSub
}

// Unsubscribe removes a previously registered callback.
func (s *RecordStore[T]) Unsubscribe(token int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, token)
}

// save writes the full list to the slot. A failed write is logged and
// swallowed: the in-memory list stays authoritative and the next
// successful save catches the slot up. Callers must hold mu.
func (s *RecordStore[T]) save() {
	data, err := json.Marshal(s.records)
	if err != nil {
		s.logger.Printf("slot %s: marshal failed, state not persisted: %v", s.key, err)
		return
	}
	if err := s.kv.Set(s.key, data); err != nil {
		s.logger.Printf("slot %s: write failed, state not persisted: %v", s.key, err)
	}
}

// snapshot copies the record list. Callers must hold mu.
func (s *RecordStore[T]) snapshot() []T {
	out := make([]T, len(s.records))
	copy(out, s.records)
	return out
}

// subscribers copies the callback set. Callers must hold mu.
func (s *RecordStore[T]) subscribers() []func([]T) {
	fns := make([]func([]T), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	return fns
}
