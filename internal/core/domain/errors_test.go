package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/utext/internal/core/domain"
)

func TestErrors_KeepSentinelIdentity(t *testing.T) {
	tests := []struct {
		name     string
		call     func() error
		sentinel error
	}{
		{"at out of range", func() error {
			_, err := domain.FromString("abc").At(3)
			return err
		}, domain.ErrRange},
		{"negative repeat", func() error {
			_, err := domain.FromRepeated('a', -1)
			return err
		}, domain.ErrRange},
		{"units window", func() error {
			_, err := domain.FromUnitsRange([]uint16{1, 2}, 1, 5)
			return err
		}, domain.ErrRange},
		{"units without terminator", func() error {
			_, err := domain.FromTerminatedUnits([]uint16{65, 66}, 0)
			return err
		}, domain.ErrDecode},
		{"byte window overrun", func() error {
			_, err := domain.FromBytes([]byte{65, 0, 66, 0}, 0, 5, domain.UTF16LE)
			return err
		}, domain.ErrRange},
		{"bytes without terminator", func() error {
			_, err := domain.FromTerminatedBytes([]byte{65, 66}, 0, domain.ASCII)
			return err
		}, domain.ErrDecode},
		{"unknown encoding", func() error {
			_, err := domain.ParseEncoding("ebcdic")
			return err
		}, domain.ErrUnknownEncoding},
		{"unknown comparison name", func() error {
			_, err := domain.ParseComparisonMode("lexical")
			return err
		}, domain.ErrUnknownComparison},
		{"cultural equality", func() error {
			_, err := domain.Equal(domain.Empty, domain.Empty, domain.InvariantCulture)
			return err
		}, domain.ErrCultureRequired},
		{"unknown op", func() error {
			_, err := domain.ParseOp("reverse")
			return err
		}, domain.ErrSuiteInvalid},
		{"expectation mismatch", func() error {
			return domain.Expectation{Op: domain.OpLength, Want: "4"}.Check(domain.FromString("abc"))
		}, domain.ErrExpectation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.sentinel), "got %v", err)
		})
	}
}

func TestCheckBuildError_MatchesWrappedFailures(t *testing.T) {
	_, rangeErr := domain.FromRepeated('a', -1)
	require.Error(t, rangeErr)
	_, decodeErr := domain.FromTerminatedBytes([]byte{65}, 0, domain.ASCII)
	require.Error(t, decodeErr)

	assert.NoError(t, domain.CheckBuildError(&domain.Expectation{Op: domain.OpError, Want: domain.WantRange}, rangeErr))
	assert.NoError(t, domain.CheckBuildError(&domain.Expectation{Op: domain.OpError, Want: domain.WantDecode}, decodeErr))

	err := domain.CheckBuildError(&domain.Expectation{Op: domain.OpError, Want: domain.WantRange}, decodeErr)
	assert.True(t, errors.Is(err, domain.ErrExpectation))
}
