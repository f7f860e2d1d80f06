package words

import "math"

const (
	// Width is the number of bits per word.
	Width = 32

	// Log2Width is log2(Width), used to turn a bit index into a word index.
	Log2Width = 5

	// AllOnes is a word with every bit set.
	AllOnes = ^uint32(0)

	// MaxWords is the largest word count a buffer may have. Its bit capacity
	// fits in an int, and on 64-bit platforms it stays within the 2^48-byte
	// limit the runtime places on a single allocation.
	MaxWords = min(math.MaxInt/Width, 1<<46)
)

// Index splits a non-negative bit index into its word index and bit offset.
func Index(i int) (word int, bit uint) {
	return i >> Log2Width, uint(i & (Width - 1))
}

// CountFor returns the number of words needed to hold bit index highest,
// i.e. highest/Width + 1.
func CountFor(highest int) int {
	return highest>>Log2Width + 1
}

// Capacity returns the number of addressable bits in n words.
func Capacity(n int) int {
	return n * Width
}

// Bit returns the single-bit mask for offset bit.
func Bit(bit uint) uint32 {
	return uint32(1) << (bit & (Width - 1))
}

// LowMask returns a word with bits [0, n) set.
func LowMask(n uint) uint32 {
	if n >= Width {
		return AllOnes
	}
	return ^(AllOnes << n)
}

// HighMask returns a word with bits [n, Width) set.
func HighMask(n uint) uint32 {
	if n >= Width {
		return 0
	}
	return AllOnes << n
}

// RangeMask returns a word with bits [lo, hi) set. It is zero when lo >= hi.
func RangeMask(lo, hi uint) uint32 {
	return HighMask(lo) & LowMask(hi)
}
