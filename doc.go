// Package bitset provides a dense, dynamically growable bit vector.
//
// A Bitset packs logical bits into 32-bit words and behaves as a conceptually
// infinite bit array: every bit beyond the allocated words reads as zero.
// Setting a bit past the end grows the buffer; clearing or reading past the
// end never does.
//
// # Quick Start
//
//	a := bitset.New()
//	_ = a.Set(1)
//	_ = a.SetRange(3, 6) // half-open: bits 3, 4, 5
//
//	b, _ := bitset.Alloc(64, true) // bits [0, 64) set
//
//	both := a.Intersection(b) // new bitset, operands untouched
//	a.InPlaceUnion(b)         // a is rewritten (and grown) in place
//
//	fmt.Println(both, a.IsSubset(b), a.Count())
//
// # Set Algebra
//
// Every binary operation has a constructive form (Intersection, Union,
// Difference, SymmetricDifference) that allocates its result, and an
// in-place form (InPlaceIntersection, ...) that rewrites the receiver and
// returns it. Operands of different word lengths are combined without
// padding: missing high words are treated as zero.
//
// # Errors
//
// Negative indices and bounds are rejected with an *IndexError wrapping
// ErrInvalidArgument before anything is modified. A word count that cannot
// be allocated panics with an *AllocationError wrapping ErrOutOfMemory.
//
// # Concurrency
//
// A Bitset is not safe for concurrent use. Distinct instances share no
// state.
package bitset
