package domain

import (
	"iter"
	"slices"

	"go.trai.ch/zerr"
)

// At returns the code unit at index i.
func (t Text) At(i int) (uint16, error) {
	if i < 0 || i >= len(t.units) {
		return 0, zerr.With(zerr.With(zerr.Wrap(ErrRange, "unit index"), "index", i), "length", len(t.units))
	}
	return t.units[i], nil
}

// Contains reports whether needle occurs anywhere in t.
// The empty needle is always contained.
func (t Text) Contains(needle Text) bool {
	return t.IndexOfText(needle) >= 0
}

// StartsWith reports whether t begins with prefix.
func (t Text) StartsWith(prefix Text) bool {
	return len(prefix.units) <= len(t.units) &&
		slices.Equal(t.units[:len(prefix.units)], prefix.units)
}

// EndsWith reports whether t ends with suffix.
func (t Text) EndsWith(suffix Text) bool {
	return len(suffix.units) <= len(t.units) &&
		slices.Equal(t.units[len(t.units)-len(suffix.units):], suffix.units)
}

// IndexOf returns the index of the first occurrence of u, or -1.
func (t Text) IndexOf(u uint16) int {
	return slices.Index(t.units, u)
}

// LastIndexOf returns the index of the last occurrence of u, or -1.
func (t Text) LastIndexOf(u uint16) int {
	for i := len(t.units) - 1; i >= 0; i-- {
		if t.units[i] == u {
			return i
		}
	}
	return -1
}

// IndexOfText returns the index of the first occurrence of needle, or -1.
func (t Text) IndexOfText(needle Text) int {
	n := len(needle.units)
	if n == 0 {
		return 0
	}
	if n > len(t.units) {
		return -1
	}
	first := needle.units[0]
	for i := 0; i <= len(t.units)-n; i++ {
		if t.units[i] != first {
			continue
		}
		if slices.Equal(t.units[i:i+n], needle.units) {
			return i
		}
	}
	return -1
}

// Slice returns the count units starting at start as a new text.
func (t Text) Slice(start, count int) (Text, error) {
	if err := checkRange(len(t.units), start, count); err != nil {
		return Text{}, err
	}
	if start == 0 && count == len(t.units) {
		return t, nil
	}
	return newText(slices.Clone(t.units[start : start+count])), nil
}

// CopyTo copies count units starting at srcStart into dst starting at dstStart.
// Nothing is written when either range is out of bounds.
func (t Text) CopyTo(srcStart int, dst []uint16, dstStart, count int) error {
	if err := checkRange(len(t.units), srcStart, count); err != nil {
		return zerr.Wrap(err, "source range")
	}
	if err := checkRange(len(dst), dstStart, count); err != nil {
		return zerr.Wrap(err, "destination range")
	}
	copy(dst[dstStart:dstStart+count], t.units[srcStart:srcStart+count])
	return nil
}

// All yields each index and code unit in order. Each call starts a fresh traversal.
func (t Text) All() iter.Seq2[int, uint16] {
	return func(yield func(int, uint16) bool) {
		for i, u := range t.units {
			if !yield(i, u) {
				return
			}
		}
	}
}

// Values yields each code unit in order.
func (t Text) Values() iter.Seq[uint16] {
	return func(yield func(uint16) bool) {
		for _, u := range t.units {
			if !yield(u) {
				return
			}
		}
	}
}
