// Package conv provides safe integer type conversion utilities.
//
// These functions perform bounds checking to prevent integer overflow/underflow
// when converting between signed/unsigned and different bit-width integer types.
//
// Use cases:
//   - Narrowing host integers (int64) to Go int bit indices
//   - Converting bit indices to and from the uint32 values used by roaring bitmaps
//
// For conversions that are provably safe by domain constraints (e.g., word
// offsets, loop indices), use direct type casts instead to avoid overhead.
package conv
