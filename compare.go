package bitset

import (
	"github.com/hupe1980/bitset/internal/words"
)

// Equal reports whether b and o hold the same bits, regardless of their
// word lengths.
func (b *Bitset) Equal(o *Bitset) bool {
	n := min(len(b.words), len(o.words))
	return words.EqualWords(b.words, o.words) &&
		words.IsZero(b.words[n:]) &&
		words.IsZero(o.words[n:])
}

// IsSubset reports whether every bit set in b is also set in o.
func (b *Bitset) IsSubset(o *Bitset) bool {
	n := min(len(b.words), len(o.words))
	// o has no bits above its length to cover b's tail.
	return words.SubsetWords(b.words, o.words) && words.IsZero(b.words[n:])
}

// IsStrictSubset reports whether b is a subset of o and o has at least one
// bit that b lacks.
func (b *Bitset) IsStrictSubset(o *Bitset) bool {
	if !b.IsSubset(o) {
		return false
	}

	// b ⊆ o, so any difference is a bit of o missing from b, either in the
	// common prefix or in o's tail.
	n := min(len(b.words), len(o.words))
	return !words.EqualWords(b.words, o.words) || !words.IsZero(o.words[n:])
}
