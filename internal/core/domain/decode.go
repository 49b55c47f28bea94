package domain

import (
	"encoding/binary"
	"unicode/utf16"

	"go.trai.ch/zerr"
	"golang.org/x/text/encoding/unicode"
)

// ScanToTerminator as a ByteSource length selects implicit-length decoding:
// the decoder reads up to, and excluding, the first zero unit.
const ScanToTerminator = -1

// asciiReplacement stands in for bytes outside the 7-bit range.
const asciiReplacement = '?'

// ByteSource describes a window of raw bytes to decode.
// Offset and Length count encoding units (bytes for ASCII and UTF8, byte pairs
// for UTF-16). The source is not retained after decoding.
type ByteSource struct {
	Data     []byte
	Offset   int
	Length   int
	Encoding Encoding
}

// Terminated reports whether the source uses implicit-length decoding.
func (s ByteSource) Terminated() bool {
	return s.Length == ScanToTerminator
}

// Decode turns a byte window into UTF-16 code units.
func Decode(src ByteSource) ([]uint16, error) {
	window, err := src.window()
	if err != nil {
		return nil, err
	}

	switch src.Encoding {
	case ASCII:
		return decodeASCII(window), nil
	case UTF8:
		return decodeUTF8(window)
	case UTF16LE:
		return decodeUTF16(window, binary.LittleEndian), nil
	case UTF16BE:
		return decodeUTF16(window, binary.BigEndian), nil
	default:
		return nil, zerr.With(zerr.Wrap(ErrUnknownEncoding, "decode"), "encoding", int(src.Encoding))
	}
}

// window validates the source bounds and returns the bytes to decode.
func (s ByteSource) window() ([]byte, error) {
	size := s.Encoding.UnitSize()
	if size == 0 {
		return nil, zerr.With(zerr.Wrap(ErrUnknownEncoding, "byte window"), "encoding", int(s.Encoding))
	}
	if s.Offset < 0 || s.Length < ScanToTerminator {
		return nil, zerr.With(zerr.With(zerr.Wrap(ErrRange, "negative offset or length"), "offset", s.Offset), "length", s.Length)
	}

	available := len(s.Data) / size
	if s.Offset > available {
		if s.Terminated() {
			return nil, zerr.With(zerr.Wrap(ErrDecode, "offset past end of buffer"), "offset", s.Offset)
		}
		return nil, zerr.With(zerr.With(zerr.Wrap(ErrRange, "offset past end of buffer"), "offset", s.Offset), "buffer_units", available)
	}
	start := s.Offset * size

	if s.Terminated() {
		n, ok := scanTerminator(s.Data[start:], size)
		if !ok {
			return nil, zerr.With(zerr.With(zerr.Wrap(ErrDecode, "no zero unit"), "offset", s.Offset), "encoding", s.Encoding.String())
		}
		return s.Data[start : start+n*size], nil
	}

	if s.Length > available-s.Offset {
		return nil, zerr.With(zerr.With(zerr.With(zerr.Wrap(ErrRange, "window overruns buffer"),
			"offset", s.Offset),
			"length", s.Length),
			"buffer_units", available)
	}
	return s.Data[start : start+s.Length*size], nil
}

// scanTerminator counts the whole units in data before the first zero unit.
func scanTerminator(data []byte, size int) (int, bool) {
	for i := 0; i+size <= len(data); i += size {
		zero := true
		for _, b := range data[i : i+size] {
			if b != 0 {
				zero = false
				break
			}
		}
		if zero {
			return i / size, true
		}
	}
	return 0, false
}

func decodeASCII(window []byte) []uint16 {
	units := make([]uint16, len(window))
	for i, b := range window {
		if b > 0x7F {
			units[i] = asciiReplacement
			continue
		}
		units[i] = uint16(b)
	}
	return units
}

func decodeUTF8(window []byte) ([]uint16, error) {
	valid, err := unicode.UTF8.NewDecoder().Bytes(window)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to decode utf-8")
	}
	units := make([]uint16, 0, len(valid))
	for _, r := range string(valid) {
		units = utf16.AppendRune(units, r)
	}
	return units, nil
}

func decodeUTF16(window []byte, order binary.ByteOrder) []uint16 {
	units := make([]uint16, len(window)/2)
	for i := range units {
		units[i] = order.Uint16(window[2*i:])
	}
	return units
}

// Encode is the inverse of Decode: it serializes t's code units under enc.
// ASCII replaces units above 0x7F with '?'; UTF8 replaces unpaired surrogates with U+FFFD.
func Encode(t Text, enc Encoding) ([]byte, error) {
	switch enc {
	case ASCII:
		out := make([]byte, len(t.units))
		for i, u := range t.units {
			if u > 0x7F {
				out[i] = asciiReplacement
				continue
			}
			out[i] = byte(u)
		}
		return out, nil
	case UTF8:
		return []byte(t.String()), nil
	case UTF16LE:
		return encodeUTF16(t.units, binary.LittleEndian), nil
	case UTF16BE:
		return encodeUTF16(t.units, binary.BigEndian), nil
	default:
		return nil, zerr.With(zerr.Wrap(ErrUnknownEncoding, "encode"), "encoding", int(enc))
	}
}

func encodeUTF16(units []uint16, order binary.AppendByteOrder) []byte {
	out := make([]byte, 0, 2*len(units))
	for _, u := range units {
		out = order.AppendUint16(out, u)
	}
	return out
}
