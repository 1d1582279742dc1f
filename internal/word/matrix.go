package word

import (
	"fmt"
)

// Column returns a mask with bit col set in each of the first rows rows of a
// matrix with the given stride.
func Column(rows, stride, col int) uint64 {
	if col < 0 || col >= stride {
		panic(fmt.Errorf("%w: column %d of stride %d", ErrOutOfRange, col, stride))
	}
	return Ones(rows, stride) << col
}

// InsertColumn opens an empty column at col in the first rows rows of a
// matrix, moving columns col and above one position up inside their row.
//
// The caller guarantees the top column of every row is empty, so no bit
// crosses into the next row.
func InsertColumn(a uint64, rows, stride, col int) uint64 {
	if col < 0 || col >= stride {
		panic(fmt.Errorf("%w: column %d of stride %d", ErrOutOfRange, col, stride))
	}
	low := Replicate(LowMask(col), rows, stride)
	region := LowMask(rows * stride)
	return a&^region | a&low | ((a&region)&^low)<<1
}
