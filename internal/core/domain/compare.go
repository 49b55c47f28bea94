package domain

import (
	"strings"
	"unicode"
	"unicode/utf16"

	"go.trai.ch/zerr"
)

// ComparisonMode selects how two texts are compared.
// Only the ordinal modes are evaluated by this package; the culture modes are
// answered by a collator supplied by the caller.
type ComparisonMode int

const (
	// Ordinal compares code units by numeric value.
	Ordinal ComparisonMode = iota
	// OrdinalIgnoreCase folds each code unit to upper case before comparing.
	OrdinalIgnoreCase
	// CurrentCulture collates under the caller's configured locale.
	CurrentCulture
	// CurrentCultureIgnoreCase collates under the caller's locale, ignoring case.
	CurrentCultureIgnoreCase
	// InvariantCulture collates under the root locale.
	InvariantCulture
	// InvariantCultureIgnoreCase collates under the root locale, ignoring case.
	InvariantCultureIgnoreCase
)

var comparisonNames = [...]string{
	Ordinal:                    "ordinal",
	OrdinalIgnoreCase:          "ordinalignorecase",
	CurrentCulture:             "currentculture",
	CurrentCultureIgnoreCase:   "currentcultureignorecase",
	InvariantCulture:           "invariantculture",
	InvariantCultureIgnoreCase: "invariantcultureignorecase",
}

// ComparisonModes lists every mode in declaration order.
var ComparisonModes = []ComparisonMode{
	Ordinal,
	OrdinalIgnoreCase,
	CurrentCulture,
	CurrentCultureIgnoreCase,
	InvariantCulture,
	InvariantCultureIgnoreCase,
}

// ParseComparisonMode resolves a mode name, ignoring case, dashes and underscores.
func ParseComparisonMode(name string) (ComparisonMode, error) {
	norm := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(name))
	for mode, n := range comparisonNames {
		if n == norm {
			return ComparisonMode(mode), nil
		}
	}
	return 0, zerr.With(zerr.Wrap(ErrUnknownComparison, "parse comparison mode"), "mode", name)
}

func (m ComparisonMode) String() string {
	if m < 0 || int(m) >= len(comparisonNames) {
		return "unknown"
	}
	return comparisonNames[m]
}

// IsCultural reports whether the mode needs a collator.
func (m ComparisonMode) IsCultural() bool {
	return m >= CurrentCulture && m <= InvariantCultureIgnoreCase
}

// IgnoresCase reports whether the mode folds case.
func (m ComparisonMode) IgnoresCase() bool {
	switch m {
	case OrdinalIgnoreCase, CurrentCultureIgnoreCase, InvariantCultureIgnoreCase:
		return true
	default:
		return false
	}
}

// Compare orders a and b by code unit value. It returns -1, 0 or +1.
// A strict prefix orders before the longer text.
func Compare(a, b Text) int {
	return compareUnits(a.units, b.units, identity)
}

// CompareFold orders a and b after folding each code unit.
func CompareFold(a, b Text) int {
	return compareUnits(a.units, b.units, FoldUnit)
}

// CompareTo is the method form of Compare.
func (t Text) CompareTo(o Text) int {
	return Compare(t, o)
}

// Equals reports ordinal equality.
func (t Text) Equals(o Text) bool {
	return t.Same(o) || Compare(t, o) == 0
}

// Equal reports whether a and b are equal under an ordinal mode.
// Culture modes return ErrCultureRequired.
func Equal(a, b Text, mode ComparisonMode) (bool, error) {
	switch mode {
	case Ordinal:
		return a.Equals(b), nil
	case OrdinalIgnoreCase:
		return a.Len() == b.Len() && CompareFold(a, b) == 0, nil
	default:
		if mode.IsCultural() {
			return false, zerr.With(zerr.Wrap(ErrCultureRequired, "equal"), "mode", mode.String())
		}
		return false, zerr.With(zerr.Wrap(ErrUnknownComparison, "equal"), "mode", int(mode))
	}
}

// FoldUnit maps a code unit to its simple upper case form when that form is a
// single BMP code unit. Surrogates and caseless units pass through.
func FoldUnit(u uint16) uint16 {
	if utf16.IsSurrogate(rune(u)) {
		return u
	}
	up := unicode.ToUpper(rune(u))
	if up > 0xFFFF {
		return u
	}
	return uint16(up)
}

func identity(u uint16) uint16 { return u }

func compareUnits(a, b []uint16, fold func(uint16) uint16) int {
	n := min(len(a), len(b))
	for i := range n {
		x, y := fold(a[i]), fold(b[i])
		if x != y {
			if x < y {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}
