package domain

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Hash returns a deterministic 32-bit hash of the code units.
// Texts that are ordinal-equal always hash equal.
func (t Text) Hash() uint32 {
	return hashUnits(t.units, identity)
}

// HashFold returns a hash consistent with OrdinalIgnoreCase equality.
func (t Text) HashFold() uint32 {
	return hashUnits(t.units, FoldUnit)
}

func hashUnits(units []uint16, fold func(uint16) uint16) uint32 {
	digest := xxhash.New()
	var buf [256]byte
	chunk := buf[:0]
	for _, u := range units {
		chunk = binary.BigEndian.AppendUint16(chunk, fold(u))
		if len(chunk) == len(buf) {
			_, _ = digest.Write(chunk)
			chunk = buf[:0]
		}
	}
	_, _ = digest.Write(chunk)

	sum := digest.Sum64()
	return uint32(sum ^ sum>>32)
}
