package interop

import (
	bnb "github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/bitset"
)

// ToBitSet returns a bits-and-blooms bitset holding the set bits of b.
// Pairs of 32-bit words are packed little-end first into 64-bit words.
func ToBitSet(b *bitset.Bitset) *bnb.BitSet {
	src := b.Words()
	dst := make([]uint64, (len(src)+1)/2)
	for i, w := range src {
		dst[i/2] |= uint64(w) << (32 * (i % 2))
	}
	return bnb.From(dst)
}

// FromBitSet returns a bitset holding the set bits of bs.
func FromBitSet(bs *bnb.BitSet) *bitset.Bitset {
	src := bs.Words()
	dst := make([]uint32, 2*len(src))
	for i, w := range src {
		dst[2*i] = uint32(w)
		dst[2*i+1] = uint32(w >> 32)
	}
	return bitset.FromWords(dst)
}
