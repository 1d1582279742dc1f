package packed

import (
	"errors"
	"fmt"

	"github.com/hupe1980/fusion/internal/word"
)

// ErrInvalidLayout is the panic value (wrapped) for a field layout that does
// not fit in a word.
var ErrInvalidLayout = errors.New("packed: invalid field layout")

func checkLayout(m, b int) {
	if b < 1 || m < 0 || m*b > word.Width {
		panic(fmt.Errorf("%w: %d fields of width %d", ErrInvalidLayout, m, b))
	}
}

// Rank returns the number of fields of a that are strictly less than x.
//
// a holds m ascending b-bit fields; only the low b bits of x are used.
func Rank(x, a uint64, m, b int) int {
	checkLayout(m, b)
	if m == 0 {
		return 0
	}

	x &= word.LowMask(b)
	a &= word.LowMask(m * b)
	high := word.HighBits(m, b)
	top := uint64(1) << (b - 1)

	// Fields [0, z) start with 0, fields [z, m) start with 1.
	z := m
	if lead := a & high; lead != 0 {
		z = word.LSB(lead) / b
	}

	if x&top != 0 {
		if z == m {
			return m
		}
		span := word.Fields(z, m, b)
		// Both sides carry the leading 1, so compare the remainders.
		diff := ((a & span) - word.Replicate(x&^top, m, b)&span) & high & span
		if diff == 0 {
			return m
		}
		return word.LSB(diff) / b
	}

	if z == 0 {
		return 0
	}
	span := word.Fields(0, z, b)
	// Force the leading bit of every field so the subtraction cannot borrow
	// out of a field; it survives exactly where field >= x.
	diff := ((a&span | high&span) - word.Replicate(x, z, b)) & high & span
	if diff == 0 {
		return z
	}
	return word.LSB(diff) / b
}

// Pack stores values as consecutive b-bit fields, values[0] lowest.
func Pack(values []uint64, b int) uint64 {
	checkLayout(len(values), b)
	var a uint64
	for i, v := range values {
		a |= (v & word.LowMask(b)) << (i * b)
	}
	return a
}
