// Package packed computes the rank of a query among sorted fields packed in
// one word, in a constant number of word operations.
//
// A word holds m values of b bits each, field i at bits [i*b, i*b+b), sorted
// ascending by field index. Rank(x, a, m, b) returns how many of them are
// strictly less than x.
//
// The fields are split by their leading bit. Inside each half the leading
// bit doubles as a borrow sentinel, so a single subtraction compares x with
// every field of that half at once without a borrow crossing into the
// neighbouring field:
//
//	field:     1 v v v      (leading bit forced to 1)
//	query:   - 0 x x x
//	           ─────────
//	           s . . .      s = 1  ⇔  field >= query
//
// Sorted order means the fields below x form a prefix, so the lowest
// surviving sentinel gives the rank.
package packed
