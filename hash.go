package number

import (
	"encoding/binary"
	"hash"
	"math"
)

// canonicalNaN is the bit pattern written for every NaN.
const canonicalNaN = 0x7ff8000000000001

// Hash writes a canonical 8-byte image of n to h.
// The image is the big-endian bit pattern of [Number.Float64], with all NaNs
// collapsed into one pattern and -0 mapped to +0.
// Numbers that are equal according to [Number.Equal] therefore hash equally,
// even when their representations differ.
func (n Number) Hash(h hash.Hash) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], n.bits())
	_, _ = h.Write(buf[:])
}

func (n Number) bits() uint64 {
	f := n.Float64()
	switch {
	case math.IsNaN(f):
		return canonicalNaN
	case f == 0:
		return 0
	}
	return math.Float64bits(f)
}
