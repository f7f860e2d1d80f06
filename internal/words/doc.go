// Package words provides the 32-bit word arithmetic behind the bitset engine.
//
// # Indexing
//
// A logical bit index i lives in word i>>5 at bit offset i&31:
//
//	┌──────────────────┬──────────────────┬──────────────────┐
//	│  word 0          │  word 1          │  word 2          │ ...
//	│  bits [0,32)     │  bits [32,64)    │  bits [64,96)    │
//	└──────────────────┴──────────────────┴──────────────────┘
//
// # Masks
//
// LowMask, HighMask and RangeMask build in-word masks for partial boundary
// words. A shift amount equal to the word width is handled explicitly:
// LowMask(32) is all ones and HighMask(32) is zero.
//
// # Kernels
//
// AndWords, AndNotWords, OrWords, XorWords and PopcountWords combine word
// slices in place. They process the common prefix of their operands, so
// callers never have to pad the shorter slice.
package words
