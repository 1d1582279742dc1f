// Package word provides constant-time bit and field primitives over a 64-bit word.
//
// A word is treated as a row of fixed-width fields: field i of width f covers
// bits [i*f, i*f+f). Fields can be nested to address a packed matrix, where
// field i is a row and sub-field j of width g is a column:
//
//	  row 2        row 1        row 0
//	┌────────────┬────────────┬────────────┐
//	│ c3 c2 c1 c0│ c3 c2 c1 c0│ c3 c2 c1 c0│   stride = 4, g = 1
//	└────────────┴────────────┴────────────┘
//	 bit 11                          bit 0
//
// # Most significant bit
//
// MSB runs in a fixed number of arithmetic steps with no loop over the input.
// Two strategies are available:
//
//   - Generic: the Fredman–Willard cluster algorithm (MSBWordParallel)
//   - Hardware: a leading-zero-count instruction (MSBHardware)
//
// The strategy is chosen once at init from CPU features. Set FUSION_MSB to
// "generic" or "hardware" to override the choice.
//
// # Preconditions
//
// Bit and field indices outside the word are defects in the caller. The
// accessors panic with an error wrapping ErrOutOfRange instead of returning it.
package word
