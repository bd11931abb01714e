// Package slot provides an ordered multimap of (address, value) pairs.
package slot

import "sort"

// Entry is a single (address, value) pair in a Slot.
type Entry[A comparable, V any] struct {
	Address A
	Value   V
}

// Slot is a list of entries kept sorted by an externally supplied comparator.
// Entries with equal addresses are not merged; callers pair each Insert with a
// later Remove of the same address.
type Slot[A comparable, V any] struct {
	entries []Entry[A, V]
}

// Insert appends the entry and re-sorts the whole slot with cmp.  The sort is
// stable, so entries that compare equal keep their insertion order.
func (s *Slot[A, V]) Insert(cmp func(a, b A) int, address A, value V) {
	s.entries = append(s.entries, Entry[A, V]{Address: address, Value: value})
	sort.SliceStable(s.entries, func(i, j int) bool {
		return cmp(s.entries[i].Address, s.entries[j].Address) < 0
	})
}

// Remove drops every entry having the given address.  It reports how many
// entries were removed.
func (s *Slot[A, V]) Remove(address A) int {
	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.Address != address {
			kept = append(kept, e)
		}
	}
	removed := len(s.entries) - len(kept)
	// clear the tail so removed values can be collected
	var zero Entry[A, V]
	for i := len(kept); i < len(s.entries); i++ {
		s.entries[i] = zero
	}
	s.entries = kept
	return removed
}

// Top returns the first entry, which is the least address.
func (s *Slot[A, V]) Top() (Entry[A, V], bool) {
	if len(s.entries) == 0 {
		var zero Entry[A, V]
		return zero, false
	}
	return s.entries[0], true
}

// Len returns the number of entries.
func (s *Slot[A, V]) Len() int {
	return len(s.entries)
}

// IsEmpty reports whether the slot has no entries.
func (s *Slot[A, V]) IsEmpty() bool {
	return len(s.entries) == 0
}

// Entries returns the entries in order.  The returned slice must not be
// modified.
func (s *Slot[A, V]) Entries() []Entry[A, V] {
	return s.entries
}
