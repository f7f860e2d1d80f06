package bitset

import (
	"runtime"

	"github.com/hupe1980/bitset/internal/words"
)

// Bitset is a dense bit vector backed by 32-bit words.
//
// Word 0 holds bits [0,32), word 1 holds bits [32,64), and so on. A Bitset
// always owns at least one word. The zero value is not usable; create one
// with New, Alloc or Clone.
type Bitset struct {
	// words is the backing storage. len(words) is the word length reported
	// by WordLen; spare capacity is kept for amortized growth and is always
	// zeroed before it becomes visible.
	words []uint32
}

// New returns an empty bitset owning a single zeroed word.
func New() *Bitset {
	return &Bitset{words: makeWords(1, 1)}
}

// Alloc returns a bitset sized to hold bit index capacityBits, that is
// capacityBits/32 + 1 words.
//
// If fill is true, exactly the bits [0, capacityBits) are set and the high
// bits of the last word stay zero.
func Alloc(capacityBits int, fill bool) (*Bitset, error) {
	if capacityBits < 0 {
		return nil, &IndexError{Op: "alloc", Arg: ArgSize, Index: capacityBits}
	}

	n := words.CountFor(capacityBits)
	b := &Bitset{words: makeWords(n, n)}

	if fill {
		words.Fill(b.words[:n-1], words.AllOnes)
		_, bit := words.Index(capacityBits)
		b.words[n-1] = words.LowMask(bit)
	}

	return b, nil
}

// FromWords returns a bitset holding a copy of the given raw words.
// An empty slice yields the same result as New.
func FromWords(src []uint32) *Bitset {
	if len(src) == 0 {
		return New()
	}
	b := &Bitset{words: makeWords(len(src), len(src))}
	copy(b.words, src)
	return b
}

// Clone returns an independent copy of b.
func (b *Bitset) Clone() *Bitset {
	c := &Bitset{words: makeWords(len(b.words), len(b.words))}
	copy(c.words, b.words)
	return c
}

// WordLen returns the number of allocated words.
func (b *Bitset) WordLen() int {
	return len(b.words)
}

// RawWord returns the raw word at index i. Intended for tests and debugging.
func (b *Bitset) RawWord(i int) (uint32, error) {
	if i < 0 || i >= len(b.words) {
		return 0, &IndexError{Op: "dump_raw", Arg: ArgIndex, Index: i}
	}
	return b.words[i], nil
}

// Words returns a copy of the raw word array. Intended for tests and debugging.
func (b *Bitset) Words() []uint32 {
	out := make([]uint32, len(b.words))
	copy(out, b.words)
	return out
}

// capacity returns the number of addressable bits.
func (b *Bitset) capacity() int {
	return words.Capacity(len(b.words))
}

// ensureCapacity grows the buffer so that bit index highest is addressable.
func (b *Bitset) ensureCapacity(highest int) {
	if highest < b.capacity() {
		return
	}
	b.grow(words.CountFor(highest))
}

// grow extends the word length to n, zero-filling the new words.
// It never shrinks.
func (b *Bitset) grow(n int) {
	currentLen := len(b.words)
	if n <= currentLen {
		return
	}

	if n <= cap(b.words) {
		b.words = b.words[:n]
		clear(b.words[currentLen:])
		return
	}

	newCap := currentLen * 2
	if newCap < n || newCap > words.MaxWords {
		newCap = n
	}

	newWords := makeWords(n, newCap)
	copy(newWords, b.words)
	b.words = newWords
}

// shrink reallocates the buffer down to n words.
func (b *Bitset) shrink(n int) {
	if n >= len(b.words) {
		return
	}
	newWords := makeWords(n, n)
	copy(newWords, b.words[:n])
	b.words = newWords
}

// makeWords allocates a zeroed word buffer. A word count that can never be
// addressed panics with *AllocationError before anything is allocated, as
// does a size the runtime rejects.
func makeWords(n, capacity int) []uint32 {
	if n < 1 || n > words.MaxWords {
		panic(&AllocationError{Words: n})
	}

	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(runtime.Error); ok {
				panic(&AllocationError{Words: capacity})
			}
			panic(r)
		}
	}()

	return make([]uint32, n, capacity)
}
