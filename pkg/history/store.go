// Package history keeps the most recent generated QR codes in memory.
package history

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-qrgen/pkg/model"
)

// DefaultCapacity is the number of entries kept before the oldest is evicted.
const DefaultCapacity = 10

// Entry is one generated code.
type Entry struct {
	ID        string         `json:"id"`
	Category  model.Category `json:"category"`
	Fields    model.FieldMap `json:"fields"`
	Payload   string         `json:"payload"`
	PNG       []byte         `json:"-"`
	CreatedAt time.Time      `json:"created_at"`
}

// Store is a bounded FIFO of entries.
type Store struct {
	mu       sync.RWMutex
	capacity int
	entries  []Entry
	newID    func() string
}

// Option customises a Store.
type Option func(*Store)

// WithCapacity overrides DefaultCapacity. Values below one are ignored.
func WithCapacity(capacity int) Option {
	return func(s *Store) {
		if capacity > 0 {
			s.capacity = capacity
		}
	}
}

// WithIDGenerator replaces the uuid generator, mainly for tests.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// NewStore creates an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		capacity: DefaultCapacity,
		newID:    func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Add appends a copy of entry, assigning an ID when empty, and evicts the
// oldest entries beyond capacity. The stored entry is returned.
func (s *Store) Add(entry Entry) Entry {
	entry = cloneEntry(entry)
	if entry.ID == "" {
		entry.ID = s.newID()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, entry)
	if overflow := len(s.entries) - s.capacity; overflow > 0 {
		s.entries = append([]Entry(nil), s.entries[overflow:]...)
	}
	return cloneEntry(entry)
}

// Entries returns every entry, oldest first.
func (s *Store) Entries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneEntries(s.entries)
}

// Recent returns up to n of the newest entries, oldest first.
func (s *Store) Recent(n int) []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if n <= 0 {
		return nil
	}
	start := len(s.entries) - n
	if start < 0 {
		start = 0
	}
	return cloneEntries(s.entries[start:])
}

// Get looks an entry up by ID.
func (s *Store) Get(id string) (Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, entry := range s.entries {
		if entry.ID == id {
			return cloneEntry(entry), nil
		}
	}
	return Entry{}, fmt.Errorf("history: entry %q: %w", id, ErrNotFound)
}

// Len reports the number of stored entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Capacity reports the maximum number of entries kept.
func (s *Store) Capacity() int {
	return s.capacity
}

// Clear drops every entry.
func (s *Store) Clear() {
	s.mu.Lock()
	s.entries = nil
	s.mu.Unlock()
}

func cloneEntry(entry Entry) Entry {
	entry.Fields = entry.Fields.Clone()
	entry.PNG = append([]byte(nil), entry.PNG...)
	return entry
}

func cloneEntries(entries []Entry) []Entry {
	if len(entries) == 0 {
		return nil
	}
	out := make([]Entry, len(entries))
	for i, entry := range entries {
		out[i] = cloneEntry(entry)
	}
	return out
}
