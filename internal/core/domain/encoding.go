package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Encoding identifies how raw bytes map to code units.
type Encoding int

const (
	// ASCII maps each byte to one code unit; bytes above 0x7F decode as '?'.
	ASCII Encoding = iota + 1
	// UTF8 decodes multi-byte sequences into UTF-16 code units.
	UTF8
	// UTF16LE combines byte pairs low byte first.
	UTF16LE
	// UTF16BE combines byte pairs high byte first.
	UTF16BE
)

var encodingNames = map[Encoding]string{
	ASCII:   "ascii",
	UTF8:    "utf8",
	UTF16LE: "utf16le",
	UTF16BE: "utf16be",
}

var encodingAliases = map[string]Encoding{
	"ascii":            ASCII,
	"us-ascii":         ASCII,
	"utf8":             UTF8,
	"utf-8":            UTF8,
	"utf16le":          UTF16LE,
	"utf-16le":         UTF16LE,
	"unicode":          UTF16LE,
	"utf16be":          UTF16BE,
	"utf-16be":         UTF16BE,
	"bigendianunicode": UTF16BE,
}

// ParseEncoding resolves an encoding name, ignoring case.
func ParseEncoding(name string) (Encoding, error) {
	enc, ok := encodingAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, zerr.With(zerr.Wrap(ErrUnknownEncoding, "parse encoding"), "encoding", name)
	}
	return enc, nil
}

// String returns the canonical name of the encoding.
func (e Encoding) String() string {
	if name, ok := encodingNames[e]; ok {
		return name
	}
	return "unknown"
}

// UnitSize returns the number of bytes in one encoding unit, or 0 for an unknown encoding.
func (e Encoding) UnitSize() int {
	switch e {
	case ASCII, UTF8:
		return 1
	case UTF16LE, UTF16BE:
		return 2
	default:
		return 0
	}
}

// MarshalText implements encoding.TextMarshaler.
func (e Encoding) MarshalText() ([]byte, error) {
	if e.UnitSize() == 0 {
		return nil, zerr.With(zerr.Wrap(ErrUnknownEncoding, "marshal encoding"), "encoding", int(e))
	}
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Encoding) UnmarshalText(text []byte) error {
	enc, err := ParseEncoding(string(text))
	if err != nil {
		return err
	}
	*e = enc
	return nil
}
