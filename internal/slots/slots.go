// Package slots implements the key storage shared by the fusion node variants:
// an unordered array of key slots, a bitmap of vacant slots and a packed
// index word mapping each rank to the slot holding the key of that rank.
//
// Inserting at rank r takes the lowest vacant slot and splices its number
// into the index at field r; deleting removes field r. Neither moves a key.
package slots

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/hupe1980/fusion/internal/word"
)

// MaxCapacity is the largest capacity k with k*IndexWidth(k) <= 64.
const MaxCapacity = 16

// ErrCorrupt is returned by Check when the table breaks one of its invariants.
var ErrCorrupt = errors.New("slots: corrupt table")

// IndexWidth returns the bits needed to store a slot number, ceil(lg capacity),
// and at least 1.
func IndexWidth(capacity int) int {
	if capacity <= 2 {
		return 1
	}
	return word.MSB(uint64(capacity-1)) + 1
}

// Table is a fixed-capacity slot table. The zero value is not usable; use New.
type Table struct {
	keys [MaxCapacity]uint64

	// vacant has bit i set when slot i is free.
	vacant uint64

	// index holds, at field r, the slot of the key with rank r.
	index uint64

	n        int
	capacity int
	width    int
}

// New returns an empty table. It panics if capacity is outside [1, MaxCapacity].
func New(capacity int) Table {
	if capacity < 1 || capacity > MaxCapacity {
		panic(fmt.Sprintf("slots: capacity %d outside [1, %d]", capacity, MaxCapacity))
	}
	return Table{
		vacant:   word.LowMask(capacity),
		capacity: capacity,
		width:    IndexWidth(capacity),
	}
}

// Reset empties the table.
func (t *Table) Reset() {
	*t = New(t.capacity)
}

// Len returns the number of keys.
func (t *Table) Len() int { return t.n }

// Cap returns the capacity.
func (t *Table) Cap() int { return t.capacity }

// Full reports whether every slot is taken.
func (t *Table) Full() bool { return t.n == t.capacity }

// Slot returns the slot holding the key of rank r. r must be in [0, Len()).
func (t *Table) Slot(r int) int {
	return int(word.GetField(r, t.width, t.index))
}

// Key returns the key of rank r. r must be in [0, Len()).
func (t *Table) Key(r int) uint64 {
	return t.keys[t.Slot(r)]
}

// Select returns the key of rank r, or false if r is outside [0, Len()).
func (t *Table) Select(r int) (uint64, bool) {
	if r < 0 || r >= t.n {
		return 0, false
	}
	return t.Key(r), true
}

// Insert stores key with rank r, shifting the ranks of keys at r and above.
// The caller guarantees the table is not full and r is in [0, Len()].
func (t *Table) Insert(r int, key uint64) {
	slot := word.LSB(t.vacant)
	t.keys[slot] = key
	t.vacant = word.ClearBit(slot, t.vacant)
	t.index = word.InsertField(t.index, r, t.width, uint64(slot))
	t.n++
}

// Delete removes the key of rank r and returns it.
// The caller guarantees r is in [0, Len()).
func (t *Table) Delete(r int) uint64 {
	slot := t.Slot(r)
	key := t.keys[slot]
	t.keys[slot] = 0
	t.vacant = word.SetBit(slot, t.vacant)
	t.index = word.DeleteField(t.index, r, t.width)
	t.n--
	return key
}

// Keys appends the keys in ascending order to dst.
func (t *Table) Keys(dst []uint64) []uint64 {
	for r := 0; r < t.n; r++ {
		dst = append(dst, t.Key(r))
	}
	return dst
}

// Check verifies that the index is a permutation of the occupied slots in
// strictly ascending key order.
func (t *Table) Check() error {
	occupied := word.LowMask(t.capacity) &^ t.vacant
	if t.vacant&^word.LowMask(t.capacity) != 0 {
		return fmt.Errorf("%w: vacancy bits %#x beyond capacity %d", ErrCorrupt, t.vacant, t.capacity)
	}
	if got := bits.OnesCount64(occupied); got != t.n {
		return fmt.Errorf("%w: %d occupied slots, size %d", ErrCorrupt, got, t.n)
	}
	if t.n < t.capacity && t.index>>(t.n*t.width) != 0 {
		return fmt.Errorf("%w: index %#x has fields beyond size %d", ErrCorrupt, t.index, t.n)
	}

	var seen uint64
	for r := 0; r < t.n; r++ {
		slot := t.Slot(r)
		if slot >= t.capacity || word.Bit(slot, occupied) == 0 {
			return fmt.Errorf("%w: rank %d maps to vacant slot %d", ErrCorrupt, r, slot)
		}
		if word.Bit(slot, seen) == 1 {
			return fmt.Errorf("%w: slot %d indexed twice", ErrCorrupt, slot)
		}
		seen = word.SetBit(slot, seen)
		if r > 0 && t.Key(r-1) >= t.Key(r) {
			return fmt.Errorf("%w: rank %d key %#x not above rank %d key %#x", ErrCorrupt, r, t.Key(r), r-1, t.Key(r-1))
		}
	}
	return nil
}
