package domain

import (
	"slices"
	"unicode/utf16"

	"go.trai.ch/zerr"
)

// FromRepeated returns a text of count copies of ch.
func FromRepeated(ch uint16, count int) (Text, error) {
	if count < 0 {
		return Text{}, zerr.With(zerr.Wrap(ErrRange, "negative repeat count"), "count", count)
	}
	units := make([]uint16, count)
	for i := range units {
		units[i] = ch
	}
	return newText(units), nil
}

// FromUnits returns a text holding a copy of units.
func FromUnits(units []uint16) Text {
	return newText(slices.Clone(units))
}

// FromUnitsRange returns a text holding a copy of units[start : start+count].
func FromUnitsRange(units []uint16, start, count int) (Text, error) {
	if err := checkRange(len(units), start, count); err != nil {
		return Text{}, err
	}
	return newText(slices.Clone(units[start : start+count])), nil
}

// FromTerminatedUnits copies units from start up to, and excluding, the first zero unit.
func FromTerminatedUnits(units []uint16, start int) (Text, error) {
	if start < 0 || start > len(units) {
		return Text{}, zerr.With(zerr.With(zerr.Wrap(ErrRange, "terminated units start"), "start", start), "length", len(units))
	}
	end := slices.Index(units[start:], 0)
	if end < 0 {
		return Text{}, zerr.With(zerr.Wrap(ErrDecode, "no zero unit"), "start", start)
	}
	return newText(slices.Clone(units[start : start+end])), nil
}

// FromBytes decodes length units of data starting at offset.
func FromBytes(data []byte, offset, length int, enc Encoding) (Text, error) {
	return FromSource(ByteSource{Data: data, Offset: offset, Length: length, Encoding: enc})
}

// FromTerminatedBytes decodes data from offset up to the first zero unit.
func FromTerminatedBytes(data []byte, offset int, enc Encoding) (Text, error) {
	return FromSource(ByteSource{Data: data, Offset: offset, Length: ScanToTerminator, Encoding: enc})
}

// FromSource decodes src into a new text.
func FromSource(src ByteSource) (Text, error) {
	units, err := Decode(src)
	if err != nil {
		return Text{}, err
	}
	return newText(units), nil
}

// FromString converts a UTF-8 Go string into a text.
func FromString(s string) Text {
	units := make([]uint16, 0, len(s))
	for _, r := range s {
		units = utf16.AppendRune(units, r)
	}
	return newText(units)
}

// checkRange validates a start/count window over a sequence of n units.
func checkRange(n, start, count int) error {
	if start < 0 || count < 0 || start > n || count > n-start {
		return zerr.With(zerr.With(zerr.With(zerr.Wrap(ErrRange, "unit window"),
			"start", start),
			"count", count),
			"length", n)
	}
	return nil
}
