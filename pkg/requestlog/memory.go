package requestlog

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

// DefaultMaxEntries bounds the in-memory log.
const DefaultMaxEntries = 1000

// MemoryStore is an in-memory, bounded Store. Oldest entries are evicted
// first once the limit is reached. Safe for concurrent use.
type MemoryStore struct {
	mu         sync.RWMutex
	entries    []*Entry
	byID       map[string]*Entry
	maxEntries int
}

// NewMemoryStore creates a memory store holding at most maxEntries entries.
// A non-positive limit falls back to DefaultMaxEntries.
func NewMemoryStore(maxEntries int) *MemoryStore {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &MemoryStore{
		byID:       make(map[string]*Entry),
		maxEntries: maxEntries,
	}
}

// Log records an entry, assigning it an ID if it has none.
func (s *MemoryStore) Log(entry *Entry) {
	if entry == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	s.entries = append(s.entries, entry)
	s.byID[entry.ID] = entry

	if len(s.entries) > s.maxEntries {
		evicted := s.entries[0]
		s.entries = s.entries[1:]
		delete(s.byID, evicted.ID)
	}
}

// Get retrieves a log entry by ID.
func (s *MemoryStore) Get(id string) *Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byID[id]
}

// List returns entries in insertion order, filtered if a filter is given.
func (s *MemoryStore) List(filter *Filter) []*Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*Entry
	skipped := 0
	for _, entry := range s.entries {
		if !matches(entry, filter) {
			continue
		}
		if filter != nil && skipped < filter.Offset {
			skipped++
			continue
		}
		out = append(out, entry)
		if filter != nil && filter.Limit > 0 && len(out) >= filter.Limit {
			break
		}
	}
	return out
}

// Clear removes all log entries.
func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
	s.byID = make(map[string]*Entry)
}

// Count returns the number of log entries.
func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func matches(entry *Entry, filter *Filter) bool {
	if filter == nil {
		return true
	}
	if filter.Method != "" && entry.Method != filter.Method {
		return false
	}
	if filter.URL != "" && !strings.HasPrefix(entry.URL, filter.URL) {
		return false
	}
	if filter.Matched != nil && entry.Matched != *filter.Matched {
		return false
	}
	return true
}
