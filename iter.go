package bitset

import (
	"math/bits"
	"strconv"
	"strings"

	"github.com/hupe1980/bitset/internal/words"
)

// NextSet returns the index of the next set bit at or after i.
// It returns false if there is none.
func (b *Bitset) NextSet(i int) (int, bool) {
	i = max(i, 0)

	w, bit := words.Index(i)
	if w >= len(b.words) {
		return 0, false
	}

	// Mask out bits before i in its own word
	word := b.words[w] & words.HighMask(bit)
	for {
		if word != 0 {
			return words.Capacity(w) + bits.TrailingZeros32(word), true
		}
		w++
		if w >= len(b.words) {
			return 0, false
		}
		word = b.words[w]
	}
}

// Indices returns the indices of all set bits in ascending order.
func (b *Bitset) Indices() []int {
	out := make([]int, 0, b.Count())
	for w, word := range b.words {
		for word != 0 {
			out = append(out, words.Capacity(w)+bits.TrailingZeros32(word))
			word &= word - 1 // Clear lowest bit
		}
	}
	return out
}

// String formats the set bits as {i, j, ...}.
func (b *Bitset) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for n, i := range b.Indices() {
		if n > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(i))
	}
	sb.WriteByte('}')
	return sb.String()
}
