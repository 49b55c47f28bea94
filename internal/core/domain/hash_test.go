package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/utext/internal/core/domain"
)

func TestHash_Deterministic(t *testing.T) {
	s := domain.FromString("ABCDE")
	assert.Equal(t, s.Hash(), s.Hash())

	decoded, err := domain.FromTerminatedBytes(asciiBytes, 0, domain.ASCII)
	require.NoError(t, err)
	assert.Equal(t, s.Hash(), decoded.Hash())

	fromUnits := domain.FromUnits(s.Units())
	assert.Equal(t, s.Hash(), fromUnits.Hash())
}

func TestHash_OrderSensitive(t *testing.T) {
	assert.NotEqual(t, domain.FromString("ab").Hash(), domain.FromString("ba").Hash())
	assert.NotEqual(t, domain.FromString("a").Hash(), domain.FromString("aa").Hash())
	assert.NotEqual(t, domain.FromString("ABCDE").Hash(), domain.FromString("abcde").Hash())
	assert.Equal(t, domain.FromString("ABCDE").HashFold(), domain.FromString("abcde").HashFold())
}

func TestHash_LongText(t *testing.T) {
	// Longer than the internal chunk buffer.
	long, err := domain.FromRepeated('x', 1000)
	require.NoError(t, err)
	other, err := domain.FromRepeated('x', 1000)
	require.NoError(t, err)
	assert.Equal(t, long.Hash(), other.Hash())

	shorter, err := domain.FromRepeated('x', 999)
	require.NoError(t, err)
	assert.NotEqual(t, long.Hash(), shorter.Hash())
}

func TestFormatHash(t *testing.T) {
	assert.Equal(t, "0000002a", domain.FormatHash(42))
}
