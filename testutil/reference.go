package testutil

import (
	"errors"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// ErrFull is returned by Reference.Insert when the reference is at capacity.
var ErrFull = errors.New("testutil: reference full")

// Reference is an ordered set backed by a roaring64 bitmap. It has the same
// method set as a fusion node and serves as the expected result in
// differential tests.
type Reference struct {
	bm       *roaring64.Bitmap
	capacity int
}

// NewReference returns an empty reference holding at most capacity keys.
// A capacity <= 0 means unbounded.
func NewReference(capacity int) *Reference {
	return &Reference{bm: roaring64.New(), capacity: capacity}
}

// Insert adds x. It fails with ErrFull if x is absent and the set is full.
func (r *Reference) Insert(x uint64) error {
	if r.bm.Contains(x) {
		return nil
	}
	if r.capacity > 0 && r.Size() >= r.capacity {
		return ErrFull
	}
	r.bm.Add(x)
	return nil
}

// Delete removes x and reports whether it was present.
func (r *Reference) Delete(x uint64) bool {
	if !r.bm.Contains(x) {
		return false
	}
	r.bm.Remove(x)
	return true
}

// Member reports whether x is present.
func (r *Reference) Member(x uint64) bool { return r.bm.Contains(x) }

// Rank returns the number of keys strictly less than x.
func (r *Reference) Rank(x uint64) int {
	if x == 0 {
		return 0
	}
	// roaring counts keys <= its argument.
	return int(r.bm.Rank(x - 1))
}

// Select returns the key of rank i.
func (r *Reference) Select(i int) (uint64, bool) {
	if i < 0 || i >= r.Size() {
		return 0, false
	}
	x, err := r.bm.Select(uint64(i))
	if err != nil {
		return 0, false
	}
	return x, true
}

// Predecessor returns the greatest key strictly less than x.
func (r *Reference) Predecessor(x uint64) (uint64, bool) {
	rank := r.Rank(x)
	if rank == 0 {
		return 0, false
	}
	return r.Select(rank - 1)
}

// Successor returns the smallest key greater than or equal to x.
func (r *Reference) Successor(x uint64) (uint64, bool) {
	return r.Select(r.Rank(x))
}

func (r *Reference) Size() int     { return int(r.bm.GetCardinality()) }
func (r *Reference) Cap() int      { return r.capacity }
func (r *Reference) IsEmpty() bool { return r.bm.IsEmpty() }
func (r *Reference) Reset()        { r.bm.Clear() }

// Keys appends the keys in ascending order to dst.
func (r *Reference) Keys(dst []uint64) []uint64 {
	return append(dst, r.bm.ToArray()...)
}
