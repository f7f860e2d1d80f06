package words

import "math/bits"

// AndWords performs dst[i] &= src[i] over the common prefix.
func AndWords(dst, src []uint32) {
	n := min(len(dst), len(src))
	dst, src = dst[:n], src[:n]

	// Process 4 words at a time (unrolled)
	i := 0
	for ; i+4 <= n; i += 4 {
		dst[i] &= src[i]
		dst[i+1] &= src[i+1]
		dst[i+2] &= src[i+2]
		dst[i+3] &= src[i+3]
	}
	for ; i < n; i++ {
		dst[i] &= src[i]
	}
}

// AndNotWords performs dst[i] &^= src[i] over the common prefix.
func AndNotWords(dst, src []uint32) {
	n := min(len(dst), len(src))
	dst, src = dst[:n], src[:n]

	i := 0
	for ; i+4 <= n; i += 4 {
		dst[i] &^= src[i]
		dst[i+1] &^= src[i+1]
		dst[i+2] &^= src[i+2]
		dst[i+3] &^= src[i+3]
	}
	for ; i < n; i++ {
		dst[i] &^= src[i]
	}
}

// OrWords performs dst[i] |= src[i] over the common prefix.
func OrWords(dst, src []uint32) {
	n := min(len(dst), len(src))
	dst, src = dst[:n], src[:n]

	i := 0
	for ; i+4 <= n; i += 4 {
		dst[i] |= src[i]
		dst[i+1] |= src[i+1]
		dst[i+2] |= src[i+2]
		dst[i+3] |= src[i+3]
	}
	for ; i < n; i++ {
		dst[i] |= src[i]
	}
}

// XorWords performs dst[i] ^= src[i] over the common prefix.
func XorWords(dst, src []uint32) {
	n := min(len(dst), len(src))
	dst, src = dst[:n], src[:n]

	i := 0
	for ; i+4 <= n; i += 4 {
		dst[i] ^= src[i]
		dst[i+1] ^= src[i+1]
		dst[i+2] ^= src[i+2]
		dst[i+3] ^= src[i+3]
	}
	for ; i < n; i++ {
		dst[i] ^= src[i]
	}
}

// Fill sets every word of dst to v.
func Fill(dst []uint32, v uint32) {
	for i := range dst {
		dst[i] = v
	}
}

// PopcountWords counts all set bits across words.
func PopcountWords(words []uint32) int {
	count := 0
	i := 0
	for ; i+4 <= len(words); i += 4 {
		count += bits.OnesCount32(words[i])
		count += bits.OnesCount32(words[i+1])
		count += bits.OnesCount32(words[i+2])
		count += bits.OnesCount32(words[i+3])
	}
	for ; i < len(words); i++ {
		count += bits.OnesCount32(words[i])
	}
	return count
}

// IsZero reports whether every word is zero.
func IsZero(words []uint32) bool {
	for _, w := range words {
		if w != 0 {
			return false
		}
	}
	return true
}

// EqualWords reports whether a and b match over their common prefix.
func EqualWords(a, b []uint32) bool {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// SubsetWords reports whether every bit of a is also set in b over their
// common prefix.
func SubsetWords(a, b []uint32) bool {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i]|b[i] != b[i] {
			return false
		}
	}
	return true
}
