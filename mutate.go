package bitset

import (
	"github.com/hupe1980/bitset/internal/words"
)

// Set sets bit i, growing the bitset if i is beyond its capacity.
func (b *Bitset) Set(i int) error {
	if i < 0 {
		return &IndexError{Op: "set", Arg: ArgIndex, Index: i}
	}

	b.ensureCapacity(i)

	w, bit := words.Index(i)
	b.words[w] |= words.Bit(bit)
	return nil
}

// Clear clears bit i. Clearing beyond the capacity is a no-op.
func (b *Bitset) Clear(i int) error {
	if i < 0 {
		return &IndexError{Op: "clear", Arg: ArgIndex, Index: i}
	}

	w, bit := words.Index(i)
	if w < len(b.words) {
		b.words[w] &^= words.Bit(bit)
	}
	return nil
}

// Get reports whether bit i is set. Bits beyond the capacity read as false.
func (b *Bitset) Get(i int) (bool, error) {
	if i < 0 {
		return false, &IndexError{Op: "get", Arg: ArgIndex, Index: i}
	}
	return b.Test(i), nil
}

// Test reports whether bit i is set. Negative indices read as false.
func (b *Bitset) Test(i int) bool {
	if i < 0 {
		return false
	}
	w, bit := words.Index(i)
	if w >= len(b.words) {
		return false
	}
	return b.words[w]&words.Bit(bit) != 0
}

// SetRange sets every bit in the half-open range [lo, hi). The bounds may
// be given in either order. The bitset grows to cover hi.
func (b *Bitset) SetRange(lo, hi int) error {
	lo, hi, err := orderRange("set_range", lo, hi)
	if err != nil {
		return err
	}
	if lo == hi {
		return nil
	}

	b.ensureCapacity(hi)

	first, firstMask, last, lastMask := span(lo, hi)
	if first == last {
		b.words[first] |= firstMask
		return nil
	}

	b.words[first] |= firstMask
	words.Fill(b.words[first+1:last], words.AllOnes)
	b.words[last] |= lastMask
	return nil
}

// ClearRange clears every bit in the half-open range [lo, hi). The bounds
// may be given in either order. It never grows the bitset: a range that
// starts beyond the capacity is a no-op and hi is clamped to the capacity.
func (b *Bitset) ClearRange(lo, hi int) error {
	lo, hi, err := orderRange("clear_range", lo, hi)
	if err != nil {
		return err
	}

	capBits := b.capacity()
	if lo >= capBits || lo == hi {
		return nil
	}
	hi = min(hi, capBits)

	first, firstMask, last, lastMask := span(lo, hi)
	if first == last {
		b.words[first] &^= firstMask
		return nil
	}

	b.words[first] &^= firstMask
	clear(b.words[first+1 : last])
	b.words[last] &^= lastMask
	return nil
}

// GetRange returns the bits in [lo, hi) in ascending order. The bounds may
// be given in either order; bits beyond the capacity read as false.
func (b *Bitset) GetRange(lo, hi int) ([]bool, error) {
	lo, hi, err := orderRange("get_range", lo, hi)
	if err != nil {
		return nil, err
	}

	out := make([]bool, hi-lo)
	end := min(hi, b.capacity())
	for i := lo; i < end; i++ {
		w, bit := words.Index(i)
		out[i-lo] = b.words[w]&words.Bit(bit) != 0
	}
	return out, nil
}

// Count returns the number of set bits.
func (b *Bitset) Count() int {
	return words.PopcountWords(b.words)
}

// IsEmpty reports whether no bit is set.
func (b *Bitset) IsEmpty() bool {
	return words.IsZero(b.words)
}

// orderRange validates a pair of range bounds and returns them ascending.
func orderRange(op string, lo, hi int) (int, int, error) {
	if lo < 0 {
		return 0, 0, &IndexError{Op: op, Arg: ArgLowerBound, Index: lo}
	}
	if hi < 0 {
		return 0, 0, &IndexError{Op: op, Arg: ArgUpperBound, Index: hi}
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi, nil
}

// span returns the first and last words touched by the non-empty range
// [lo, hi) along with their in-word masks. When both bounds fall in the same
// word, first == last and both masks are the combined range mask.
func span(lo, hi int) (first int, firstMask uint32, last int, lastMask uint32) {
	first, loBit := words.Index(lo)
	last, hiBit := words.Index(hi - 1)

	if first == last {
		m := words.RangeMask(loBit, hiBit+1)
		return first, m, last, m
	}
	return first, words.HighMask(loBit), last, words.LowMask(hiBit + 1)
}
