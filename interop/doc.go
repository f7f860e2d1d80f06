// Package interop converts bitsets to and from the bitmap types of
// github.com/RoaringBitmap/roaring/v2 and github.com/bits-and-blooms/bitset.
//
// Conversions preserve logical content, not word length: a round trip
// yields a bitset that is Equal to the original but may own a different
// number of words.
//
//	rb, err := interop.ToRoaring(b)     // compressed, for long-lived indexes
//	b2, err := interop.FromRoaring(rb)
//
//	bs := interop.ToBitSet(b)           // 64-bit word bitset
//	b3 := interop.FromBitSet(bs)
package interop
