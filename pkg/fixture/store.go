package fixture

import "errors"

// ErrIndexOutOfRange is returned by Store.RemoveAt for an invalid index.
// Given correct orchestration it never fires; treat it as an invariant
// violation, not a recoverable condition.
var ErrIndexOutOfRange = errors.New("entry index out of range")

// Store holds capture entries in recording order. Scan priority is insertion
// order, and removal preserves the relative order of the remaining entries.
// The store is populated once at construction and only ever shrinks.
//
// Store provides no internal locking. The replay engine serializes access by
// holding its own lock across each scan-then-remove sequence; see
// replay.Engine.
type Store struct {
	entries []Entry
}

// NewStore creates a store over the given entries. The slice is copied, so
// the caller keeps ownership of its argument.
func NewStore(entries []Entry) *Store {
	s := &Store{entries: make([]Entry, len(entries))}
	copy(s.entries, entries)
	return s
}

// Len returns the number of entries remaining.
func (s *Store) Len() int {
	return len(s.entries)
}

// At returns the entry at index i. The index must be in [0, Len).
func (s *Store) At(i int) Entry {
	return s.entries[i]
}

// Entries returns a copy of the remaining entries in capture order.
func (s *Store) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// RemoveAt removes exactly one entry. The entries after it shift down one
// position; their relative order is unchanged.
func (s *Store) RemoveAt(i int) error {
	if i < 0 || i >= len(s.entries) {
		return ErrIndexOutOfRange
	}
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	return nil
}
