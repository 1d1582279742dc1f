package fusion

import (
	"fmt"
	"math/bits"

	"github.com/hupe1980/fusion/internal/word"
)

// rebuild recomputes the significant positions, sketches and BRANCH/FREE
// matrices from the present keys.
func (s *SketchNode) rebuild() {
	s.compressingKey, s.sketches, s.branch, s.free = 0, 0, 0, 0
	n := s.slots.Len()
	if n < 2 {
		return
	}

	var buf [MaxSketchCapacity]uint64
	keys := s.slots.Keys(buf[:0])

	s.compressingKey = significantBits(keys)
	for r, key := range keys {
		s.sketches = word.SetField(r, s.stride, s.compress(key), s.sketches)
	}
	s.markDontCares(0, n, bits.OnesCount64(s.compressingKey)-1)
	s.branch = s.sketches &^ s.free
}

// significantBits returns the most significant differing bit of every pair of keys.
func significantBits(keys []uint64) uint64 {
	var sig uint64
	for a := 0; a < len(keys); a++ {
		for b := a + 1; b < len(keys); b++ {
			sig = word.SetBit(word.MSB(keys[a]^keys[b]), sig)
		}
	}
	return sig
}

// markDontCares marks column col and below for the rows [lo, hi), which
// agree on every column above col.
//
// A column on which all rows of the range agree does not separate any of
// them and is a don't-care for the whole range. Otherwise the ascending
// sketches switch from 0 to 1 exactly once and each side continues alone.
func (s *SketchNode) markDontCares(lo, hi, col int) {
	for ; col >= 0; col-- {
		span := word.Column(hi, s.stride, col) & word.Fields(lo, hi, s.stride)
		ones := s.sketches & span
		if ones != 0 && ones != span {
			t := word.LSB(ones) / s.stride
			s.markDontCares(lo, t, col-1)
			s.markDontCares(t, hi, col-1)
			return
		}
		s.free |= span
	}
}

// Check verifies the internal invariants of the node. The incrementally
// maintained compression state must equal a rebuild from the present keys,
// and every key must match its own rank.
func (s *SketchNode) Check() error {
	if err := s.slots.Check(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvariantViolated, err)
	}

	n := s.slots.Len()
	want := *s
	want.rebuild()

	if s.compressingKey != want.compressingKey {
		return fmt.Errorf("%w: significant bits %#x, rebuild has %#x", ErrInvariantViolated, s.compressingKey, want.compressingKey)
	}
	cols := bits.OnesCount64(s.compressingKey)
	if s.sketches != want.sketches {
		return fmt.Errorf("%w: sketches\n%srebuild has\n%s", ErrInvariantViolated,
			word.FormatMatrix(s.sketches, n, cols, s.stride),
			word.FormatMatrix(want.sketches, n, cols, s.stride))
	}
	if s.branch != want.branch || s.free != want.free {
		return fmt.Errorf("%w: don't-cares\n%srebuild has\n%s", ErrInvariantViolated,
			word.FormatDontCares(s.branch, s.free, n, cols, s.stride),
			word.FormatDontCares(want.branch, want.free, n, cols, s.stride))
	}

	for r := 0; r < n; r++ {
		if got := s.match(s.slots.Key(r)); got != r {
			return fmt.Errorf("%w: key %#x of rank %d matches rank %d", ErrInvariantViolated, s.slots.Key(r), r, got)
		}
	}
	return nil
}
