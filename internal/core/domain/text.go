// Package domain defines the immutable text value and the check suite model built on it.
package domain

import (
	"slices"
	"strconv"
	"unicode/utf16"
)

// Text is an immutable sequence of 16-bit code units.
// The zero value is the empty text. Text is meant to be used as a value type;
// the backing storage is never written after construction, so a Text can be
// read from any number of goroutines without synchronization.
type Text struct {
	units []uint16
}

// Empty is the empty text.
var Empty = Text{}

// newText takes ownership of units. Callers must not retain the slice.
func newText(units []uint16) Text {
	if len(units) == 0 {
		return Text{}
	}
	return Text{units: units}
}

// Len returns the number of code units.
func (t Text) Len() int {
	return len(t.units)
}

// IsEmpty reports whether the text has no code units.
func (t Text) IsEmpty() bool {
	return len(t.units) == 0
}

// Units returns a copy of the code units.
func (t Text) Units() []uint16 {
	return slices.Clone(t.units)
}

// String returns the UTF-8 form of the text.
// Unpaired surrogates become U+FFFD.
func (t Text) String() string {
	return string(utf16.Decode(t.units))
}

// GoString renders the text as a quoted Go literal, used by %#v.
func (t Text) GoString() string {
	return "domain.FromString(" + strconv.Quote(t.String()) + ")"
}

// Clone returns the receiver itself. Text is immutable, so a clone never
// needs its own storage and t.Same(t.Clone()) always holds.
func (t Text) Clone() Text {
	return t
}

// Same reports whether t and o share the same backing storage.
// Two empty texts are always the same.
func (t Text) Same(o Text) bool {
	if len(t.units) != len(o.units) {
		return false
	}
	if len(t.units) == 0 {
		return true
	}
	return &t.units[0] == &o.units[0]
}

// MarshalText implements encoding.TextMarshaler.
// It returns the UTF-8 form of the text.
func (t Text) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Text) UnmarshalText(text []byte) error {
	*t = FromString(string(text))
	return nil
}
