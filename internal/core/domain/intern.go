package domain

import (
	"encoding/binary"
	"sync"
	"unique"
)

// InternTable maps text content to a single canonical Text.
// Entries are written once, under the table lock, and never changed afterwards.
type InternTable struct {
	mu      sync.Mutex
	entries map[unique.Handle[string]]Text
}

// NewInternTable creates an empty intern table.
func NewInternTable() *InternTable {
	return &InternTable{entries: make(map[unique.Handle[string]]Text)}
}

var defaultInterns = NewInternTable()

// Intern returns the canonical instance for t's content from the process-wide table.
func Intern(t Text) Text {
	return defaultInterns.Intern(t)
}

// Intern returns the canonical instance for t's content, registering t if the
// content has not been seen before.
func (tab *InternTable) Intern(t Text) Text {
	if t.IsEmpty() {
		return Empty
	}
	h := unique.Make(t.key())

	tab.mu.Lock()
	defer tab.mu.Unlock()

	if canonical, ok := tab.entries[h]; ok {
		return canonical
	}
	tab.entries[h] = t
	return t
}

// Len returns the number of distinct contents in the table.
func (tab *InternTable) Len() int {
	tab.mu.Lock()
	defer tab.mu.Unlock()
	return len(tab.entries)
}

// key packs the code units big-endian into a string usable as a map key.
func (t Text) key() string {
	b := make([]byte, 0, 2*len(t.units))
	for _, u := range t.units {
		b = binary.BigEndian.AppendUint16(b, u)
	}
	return string(b)
}
