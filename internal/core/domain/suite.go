package domain

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// SourceKind names the constructor a case uses to build its text.
type SourceKind string

const (
	// SourceLiteral builds from a UTF-8 literal.
	SourceLiteral SourceKind = "literal"
	// SourceRepeated builds Count copies of Char.
	SourceRepeated SourceKind = "repeated"
	// SourceUnits copies a whole code unit array.
	SourceUnits SourceKind = "units"
	// SourceUnitsRange copies Count units of Units starting at Start.
	SourceUnitsRange SourceKind = "unitsrange"
	// SourceTerminatedUnits copies Units from Start up to the first zero unit.
	SourceTerminatedUnits SourceKind = "terminatedunits"
	// SourceBytes decodes Length units of Bytes starting at Offset.
	SourceBytes SourceKind = "bytes"
	// SourceTerminated decodes Bytes from Offset up to the first zero unit.
	SourceTerminated SourceKind = "terminated"
)

// Source describes how to construct the text under test.
type Source struct {
	Kind     SourceKind
	Literal  string
	Char     uint16
	Count    int
	Units    []uint16
	Start    int
	Bytes    []byte
	Offset   int
	Length   int
	Encoding Encoding
}

// Build runs the constructor described by s.
func (s Source) Build() (Text, error) {
	switch s.Kind {
	case SourceLiteral:
		return FromString(s.Literal), nil
	case SourceRepeated:
		return FromRepeated(s.Char, s.Count)
	case SourceUnits:
		return FromUnits(s.Units), nil
	case SourceUnitsRange:
		return FromUnitsRange(s.Units, s.Start, s.Count)
	case SourceTerminatedUnits:
		return FromTerminatedUnits(s.Units, s.Start)
	case SourceBytes:
		return FromBytes(s.Bytes, s.Offset, s.Length, s.Encoding)
	case SourceTerminated:
		return FromTerminatedBytes(s.Bytes, s.Offset, s.Encoding)
	default:
		return Text{}, zerr.With(zerr.Wrap(ErrSuiteInvalid, "unknown source kind"), "source_kind", string(s.Kind))
	}
}

// Op names a property checked against a constructed text.
type Op string

// Supported expectation operations.
const (
	OpText       Op = "text"
	OpLength     Op = "length"
	OpAt         Op = "at"
	OpError      Op = "error"
	OpCompare    Op = "compare"
	OpEquals     Op = "equals"
	OpContains   Op = "contains"
	OpStartsWith Op = "startswith"
	OpEndsWith   Op = "endswith"
	OpIndexOf    Op = "indexof"
	OpHash       Op = "hash"
	OpIterate    Op = "iterate"
	OpSame       Op = "same"
)

var knownOps = []Op{
	OpText, OpLength, OpAt, OpError, OpCompare, OpEquals, OpContains,
	OpStartsWith, OpEndsWith, OpIndexOf, OpHash, OpIterate, OpSame,
}

// ParseOp resolves an operation name, ignoring case.
func ParseOp(name string) (Op, error) {
	op := Op(strings.ToLower(name))
	if !slices.Contains(knownOps, op) {
		return "", zerr.With(zerr.Wrap(ErrSuiteInvalid, "unknown op"), "op", name)
	}
	return op, nil
}

// WantRange and WantDecode are the Want values that expect a failure.
const (
	WantRange  = "!range"
	WantDecode = "!decode"
)

// Expectation is one property a case asserts.
type Expectation struct {
	Op   Op
	Arg  string
	Mode ComparisonMode
	Want string
}

func (e Expectation) String() string {
	if e.Arg == "" {
		return fmt.Sprintf("%s want %q", e.Op, e.Want)
	}
	return fmt.Sprintf("%s(%q) want %q", e.Op, e.Arg, e.Want)
}

// Case is a named text construction with the expectations it must satisfy.
type Case struct {
	Name   string
	Source Source
	Expect []Expectation
}

// Suite is an ordered collection of cases.
type Suite struct {
	Version string
	Cases   []Case
}

// Result records the outcome of one case.
type Result struct {
	Case     string
	Failures []error
}

// Passed reports whether the case satisfied every expectation.
func (r Result) Passed() bool {
	return len(r.Failures) == 0
}

// CheckBuildError evaluates the error expectation against a construction error.
// A nil want means the case expects construction to succeed.
func CheckBuildError(want *Expectation, err error) error {
	if want == nil {
		if err != nil {
			return zerr.Wrap(err, "construction failed")
		}
		return nil
	}
	if err == nil {
		return mismatch(*want, "no error")
	}
	if !matchesFailure(want.Want, err) {
		return mismatch(*want, err.Error())
	}
	return nil
}

// Check evaluates e against t. Cultural equality returns ErrCultureRequired;
// a hash expectation without Want is not decidable here and returns nil.
func (e Expectation) Check(t Text) error {
	switch e.Op {
	case OpText:
		return e.expectBool(t.Equals(FromString(e.Want)), t.String())
	case OpLength:
		return e.expectInt(t.Len())
	case OpAt:
		return e.checkAt(t)
	case OpCompare:
		want, err := e.wantInt()
		if err != nil {
			return err
		}
		got := Compare(t, FromString(e.Arg))
		if sign(want) != got {
			return mismatch(e, strconv.Itoa(got))
		}
		return nil
	case OpEquals:
		eq, err := Equal(t, FromString(e.Arg), e.Mode)
		if err != nil {
			return err
		}
		return e.expectFlag(eq)
	case OpContains:
		return e.expectFlag(t.Contains(FromString(e.Arg)))
	case OpStartsWith:
		return e.expectFlag(t.StartsWith(FromString(e.Arg)))
	case OpEndsWith:
		return e.expectFlag(t.EndsWith(FromString(e.Arg)))
	case OpIndexOf:
		arg := FromString(e.Arg)
		if arg.Len() != 1 {
			return zerr.With(zerr.Wrap(ErrSuiteInvalid, "indexof takes a single code unit"), "indexof_arg", e.Arg)
		}
		return e.expectInt(t.IndexOf(arg.units[0]))
	case OpHash:
		if e.Want == "" {
			return nil
		}
		got := FormatHash(t.Hash())
		if !strings.EqualFold(got, e.Want) {
			return mismatch(e, got)
		}
		return nil
	case OpIterate:
		return checkIterate(t)
	case OpSame:
		return checkSame(t)
	case OpError:
		return nil
	default:
		return zerr.With(zerr.Wrap(ErrSuiteInvalid, "unknown op"), "op", string(e.Op))
	}
}

// CheckEqual evaluates an equals expectation whose outcome was decided
// elsewhere, such as by a collator for the culture modes.
func (e Expectation) CheckEqual(equal bool) error {
	return e.expectFlag(equal)
}

// FormatHash renders a hash the way suites and the CLI print it.
func FormatHash(h uint32) string {
	return fmt.Sprintf("%08x", h)
}

func (e Expectation) checkAt(t Text) error {
	idx, err := strconv.Atoi(e.Arg)
	if err != nil {
		return zerr.With(zerr.Wrap(ErrSuiteInvalid, "at index"), "arg", e.Arg)
	}
	u, err := t.At(idx)
	if strings.HasPrefix(e.Want, "!") {
		if err == nil {
			return mismatch(e, FromUnits([]uint16{u}).String())
		}
		if !matchesFailure(e.Want, err) {
			return mismatch(e, err.Error())
		}
		return nil
	}
	if err != nil {
		return mismatch(e, err.Error())
	}
	want := FromString(e.Want)
	if want.Len() != 1 || want.units[0] != u {
		return mismatch(e, FromUnits([]uint16{u}).String())
	}
	return nil
}

func checkIterate(t Text) error {
	first := slices.Collect(t.Values())
	second := slices.Collect(t.Values())
	if !slices.Equal(first, second) || !slices.Equal(first, t.units) {
		return zerr.With(zerr.Wrap(ErrExpectation, "iteration is not repeatable"), "op", string(OpIterate))
	}
	for i, u := range t.All() {
		if t.units[i] != u {
			return zerr.With(zerr.With(zerr.Wrap(ErrExpectation, "iteration is not repeatable"), "op", string(OpIterate)), "index", i)
		}
	}
	return nil
}

func checkSame(t Text) error {
	if !t.Same(t.Clone()) {
		return zerr.With(zerr.Wrap(ErrExpectation, "clone is not the same instance"), "op", string(OpSame))
	}
	canonical := Intern(t)
	if !Intern(FromUnits(t.units)).Same(canonical) {
		return zerr.With(zerr.Wrap(ErrExpectation, "interned texts are not the same instance"), "op", string(OpSame))
	}
	return nil
}

func matchesFailure(want string, err error) bool {
	switch want {
	case WantRange:
		return errors.Is(err, ErrRange)
	case WantDecode:
		return errors.Is(err, ErrDecode)
	default:
		return false
	}
}

func (e Expectation) wantInt() (int, error) {
	n, err := strconv.Atoi(e.Want)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(ErrSuiteInvalid, "want is not an integer"), "want", e.Want)
	}
	return n, nil
}

func (e Expectation) expectInt(got int) error {
	want, err := e.wantInt()
	if err != nil {
		return err
	}
	if want != got {
		return mismatch(e, strconv.Itoa(got))
	}
	return nil
}

func (e Expectation) expectFlag(got bool) error {
	want, err := strconv.ParseBool(e.Want)
	if err != nil {
		return zerr.With(zerr.Wrap(ErrSuiteInvalid, "want is not a boolean"), "want", e.Want)
	}
	return e.expectBool(want == got, strconv.FormatBool(got))
}

func (e Expectation) expectBool(ok bool, got string) error {
	if !ok {
		return mismatch(e, got)
	}
	return nil
}

func mismatch(e Expectation, got string) error {
	return zerr.With(zerr.With(zerr.With(zerr.Wrap(ErrExpectation, "mismatch"),
		"op", string(e.Op)),
		"want", e.Want),
		"got", got)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
