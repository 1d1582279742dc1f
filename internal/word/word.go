package word

import (
	"errors"
	"fmt"
)

// Width is the number of bits in a word.
const Width = 64

// ErrOutOfRange is the panic value (wrapped) for bit or field indices outside a word.
var ErrOutOfRange = errors.New("word: index out of range")

func checkBit(d int) {
	if d < 0 || d >= Width {
		panic(fmt.Errorf("%w: bit %d", ErrOutOfRange, d))
	}
}

func checkField(i, f int) {
	if f < 1 || f > Width || i < 0 || i*f >= Width {
		panic(fmt.Errorf("%w: field %d of width %d", ErrOutOfRange, i, f))
	}
}

// Bit returns bit d of a (0 or 1).
func Bit(d int, a uint64) uint64 {
	checkBit(d)
	return (a >> d) & 1
}

// SetBit returns a with bit d set.
func SetBit(d int, a uint64) uint64 {
	checkBit(d)
	return a | 1<<d
}

// ClearBit returns a with bit d cleared.
func ClearBit(d int, a uint64) uint64 {
	checkBit(d)
	return a &^ (1 << d)
}

// LowMask returns a word with the low n bits set, 0 <= n <= 64.
func LowMask(n int) uint64 {
	// A shift by 64 yields 0, so LowMask(64) wraps to all ones.
	return (uint64(1) << n) - 1
}

// GetField returns the i-th field of width f.
func GetField(i, f int, a uint64) uint64 {
	checkField(i, f)
	return (a >> (i * f)) & LowMask(f)
}

// SetField returns a with the i-th field of width f replaced by the low f bits of y.
func SetField(i, f int, y, a uint64) uint64 {
	checkField(i, f)
	shift := i * f
	mask := LowMask(f) << shift
	return a&^mask | (y<<shift)&mask
}

func checkField2d(i, j, g, f int) {
	if g < 1 || j < 0 || (j+1)*g > f {
		panic(fmt.Errorf("%w: sub-field %d of width %d in field width %d", ErrOutOfRange, j, g, f))
	}
	checkField(i, f)
	if i*f+j*g >= Width {
		panic(fmt.Errorf("%w: sub-field %d of field %d", ErrOutOfRange, j, i))
	}
}

// GetField2d returns sub-field j (width g) of field i (width f).
//
// Viewing a as a matrix with rows of f bits, this reads cell (i, j).
func GetField2d(i, j, g, f int, a uint64) uint64 {
	checkField2d(i, j, g, f)
	return (a >> (i*f + j*g)) & LowMask(g)
}

// SetField2d returns a with sub-field j (width g) of field i (width f)
// replaced by the low g bits of y.
func SetField2d(i, j, g, f int, y, a uint64) uint64 {
	checkField2d(i, j, g, f)
	shift := i*f + j*g
	mask := LowMask(g) << shift
	return a&^mask | (y<<shift)&mask
}

func checkLayout(m, b int) {
	if b < 1 || m < 0 || m*b > Width {
		panic(fmt.Errorf("%w: %d fields of width %d", ErrOutOfRange, m, b))
	}
}

// Ones returns the copying constant for m fields of width b: a word with the
// lowest bit of each field set.
func Ones(m, b int) uint64 {
	checkLayout(m, b)
	// Sum of 2^(i*b) for i < m is (2^(m*b) - 1) / (2^b - 1).
	return LowMask(m*b) / LowMask(b)
}

// HighBits returns a word with the leading bit of each of m fields of width b set.
func HighBits(m, b int) uint64 {
	return Ones(m, b) << (b - 1)
}

// Replicate copies the low b bits of x into each of m fields of width b.
func Replicate(x uint64, m, b int) uint64 {
	return (x & LowMask(b)) * Ones(m, b)
}

// Fields returns a mask covering every bit of fields [lo, hi) of width b.
func Fields(lo, hi, b int) uint64 {
	return LowMask(hi*b) &^ LowMask(lo*b)
}

// InsertField opens a gap at field i by moving fields i and above up one
// field width, then stores the low f bits of y at i.
//
// The caller guarantees the topmost field is empty.
func InsertField(a uint64, i, f int, y uint64) uint64 {
	checkField(i, f)
	low := LowMask(i * f)
	return a&low | (a&^low)<<f | (y&LowMask(f))<<(i*f)
}

// DeleteField removes field i by moving fields above it down one field width.
// The vacated top field is zero.
func DeleteField(a uint64, i, f int) uint64 {
	checkField(i, f)
	low := LowMask(i * f)
	return a&low | (a>>f)&^low
}
