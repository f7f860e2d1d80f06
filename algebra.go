package bitset

import (
	"github.com/hupe1980/bitset/internal/words"
)

// Intersection returns a new bitset holding the bits set in both b and o.
//
// The result has the shorter operand's word length: AND with the implicit
// zero words of the shorter operand is zero.
func (b *Bitset) Intersection(o *Bitset) *Bitset {
	n := min(len(b.words), len(o.words))
	out := &Bitset{words: makeWords(n, n)}
	copy(out.words, b.words[:n])
	words.AndWords(out.words, o.words)
	return out
}

// InPlaceIntersection keeps only the bits of b that are also set in o.
// If b is longer than o, its buffer is reallocated down to o's length first.
func (b *Bitset) InPlaceIntersection(o *Bitset) *Bitset {
	b.shrink(len(o.words))
	words.AndWords(b.words, o.words)
	return b
}

// Union returns a new bitset holding the bits set in either b or o.
func (b *Bitset) Union(o *Bitset) *Bitset {
	long, short := b, o
	if len(short.words) > len(long.words) {
		long, short = short, long
	}

	out := long.Clone()
	words.OrWords(out.words, short.words)
	return out
}

// InPlaceUnion sets in b every bit set in o, growing b to o's length if
// needed.
func (b *Bitset) InPlaceUnion(o *Bitset) *Bitset {
	b.grow(len(o.words))
	words.OrWords(b.words, o.words)
	return b
}

// Difference returns a new bitset holding the bits set in b but not in o.
// The result has b's word length.
func (b *Bitset) Difference(o *Bitset) *Bitset {
	out := b.Clone()
	words.AndNotWords(out.words, o.words)
	return out
}

// InPlaceDifference clears from b every bit set in o. It never grows b.
func (b *Bitset) InPlaceDifference(o *Bitset) *Bitset {
	words.AndNotWords(b.words, o.words)
	return b
}

// SymmetricDifference returns a new bitset holding the bits set in exactly
// one of b and o.
func (b *Bitset) SymmetricDifference(o *Bitset) *Bitset {
	long, short := b, o
	if len(short.words) > len(long.words) {
		long, short = short, long
	}

	// The tail of the longer operand is copied as is: XOR with zero.
	out := long.Clone()
	words.XorWords(out.words, short.words)
	return out
}

// InPlaceSymmetricDifference rewrites b to hold the bits set in exactly one
// of b and o, growing b to o's length if needed.
func (b *Bitset) InPlaceSymmetricDifference(o *Bitset) *Bitset {
	b.grow(len(o.words))
	words.XorWords(b.words, o.words)
	return b
}

// Intersection returns a new bitset holding the bits set in both a and b.
func Intersection(a, b *Bitset) *Bitset { return a.Intersection(b) }

// Union returns a new bitset holding the bits set in either a or b.
func Union(a, b *Bitset) *Bitset { return a.Union(b) }

// Difference returns a new bitset holding the bits set in a but not in b.
func Difference(a, b *Bitset) *Bitset { return a.Difference(b) }

// SymmetricDifference returns a new bitset holding the bits set in exactly
// one of a and b.
func SymmetricDifference(a, b *Bitset) *Bitset { return a.SymmetricDifference(b) }
