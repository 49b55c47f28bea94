package domain

import "go.trai.ch/zerr"

var (
	// ErrRange is returned when an index, offset or count falls outside valid bounds.
	ErrRange = zerr.New("index out of range")

	// ErrDecode is returned when a terminator scan runs off the end of the buffer.
	ErrDecode = zerr.New("unterminated byte sequence")

	// ErrUnknownEncoding is returned when an encoding name cannot be parsed.
	ErrUnknownEncoding = zerr.New("unknown encoding")

	// ErrUnknownComparison is returned when a comparison mode or locale cannot be parsed.
	ErrUnknownComparison = zerr.New("unknown comparison mode")

	// ErrCultureRequired is returned when a culture-sensitive mode is evaluated without a collator.
	ErrCultureRequired = zerr.New("comparison mode requires a collator")

	// ErrSuiteInvalid is returned when a check suite definition is malformed.
	ErrSuiteInvalid = zerr.New("invalid suite")

	// ErrExpectation is returned when an evaluated expectation does not hold.
	ErrExpectation = zerr.New("expectation not met")

	// ErrCheckFailed is returned when one or more cases of a suite failed.
	ErrCheckFailed = zerr.New("check failed")
)
