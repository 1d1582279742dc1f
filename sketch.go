package fusion

import (
	"math/bits"

	"github.com/hupe1980/fusion/internal/packed"
	"github.com/hupe1980/fusion/internal/slots"
	"github.com/hupe1980/fusion/internal/word"
)

// SketchNode is a fusion node answering rank in a constant number of word
// operations.
//
// Every key is compressed to its bits at the significant positions, the
// positions where some pair of present keys first differs. Per key and
// position the BRANCH/FREE matrices record either the bit that separates the
// key from its neighbours or a don't-care. Substituting the query's own bits
// at the don't-cares leaves the rows sorted, so one packed rank finds the key
// whose path the query follows; two more probes fix up the final rank.
//
// Insert maintains the matrices incrementally. Delete rebuilds them from the
// remaining keys, which costs O(k^2) for the constant k.
//
// A SketchNode is not safe for concurrent use. Wrap it with NewLocked if needed.
type SketchNode struct {
	slots slots.Table

	// stride is the row width of the matrices and equals the capacity.
	stride int

	// compressingKey has a bit set at every significant position.
	compressingKey uint64

	// sketches holds compress(key) of the key of rank r at row r.
	sketches uint64

	// branch and free hold one row per rank and one column per significant
	// position, lowest position first. free marks don't-cares; branch holds
	// the key's bit wherever free is clear.
	branch uint64
	free   uint64
}

// NewSketchNode creates an empty SketchNode holding up to capacity keys,
// 1 <= capacity <= MaxSketchCapacity.
func NewSketchNode(capacity int) (*SketchNode, error) {
	if err := checkCapacity(KindSketch, capacity); err != nil {
		return nil, err
	}
	return &SketchNode{
		slots:  slots.New(capacity),
		stride: capacity,
	}, nil
}

// compress projects x onto the significant positions. Bit h of the result is
// the bit of x at the h-th lowest significant position.
func (s *SketchNode) compress(x uint64) uint64 {
	var q uint64
	h := 0
	// At most k-1 significant positions exist.
	for m := s.compressingKey; m != 0; m &= m - 1 {
		p := word.LSB(m)
		q |= ((x >> p) & 1) << h
		h++
	}
	return q
}

// match returns the rank of the key whose trie path x follows at every
// branching position. The node must not be empty.
func (s *SketchNode) match(x uint64) int {
	n := s.slots.Len()
	q := s.compress(x)
	a := s.branch | word.Replicate(q, n, s.stride)&s.free
	return packed.Rank(q, a, n, s.stride)
}

// Rank implements Set.
func (s *SketchNode) Rank(x uint64) int {
	if s.slots.Len() == 0 {
		return 0
	}
	i := s.match(x)
	y := s.slots.Key(i)
	if x == y {
		return i
	}

	// No key shares x's prefix through bit j. Pinning the bits below j to
	// the extreme on x's side lands on the boundary key of that prefix.
	j := word.MSB(x ^ y)
	below := word.LowMask(j)
	if x < y {
		return s.match(x &^ below)
	}
	return s.match(x|below) + 1
}

// Member implements Set.
func (s *SketchNode) Member(x uint64) bool {
	if s.slots.Len() == 0 {
		return false
	}
	return s.slots.Key(s.match(x)) == x
}

// Insert implements Set.
func (s *SketchNode) Insert(x uint64) error {
	n := s.slots.Len()
	if n == 0 {
		s.slots.Insert(0, x)
		return nil
	}

	i := s.match(x)
	y := s.slots.Key(i)
	if y == x {
		return nil
	}
	if s.slots.Full() {
		return capacityExceeded(x, s.slots.Cap())
	}

	j := word.MSB(x ^ y)
	below := word.LowMask(j)
	h := bits.OnesCount64(s.compressingKey & below)

	if word.Bit(j, s.compressingKey) == 0 {
		s.addColumn(j, h)
	}

	// The keys sharing x's prefix above j hold the ranks [i0, i1] and agree
	// on bit j. That bit now separates them from x, so it stops being a
	// don't-care for them.
	i0 := s.match(x &^ below)
	i1 := s.match(x | below)
	col := word.Column(n, s.stride, h) & word.Fields(i0, i1+1, s.stride)
	if word.Bit(j, y) == 1 {
		s.branch |= col
	} else {
		s.branch &^= col
	}
	s.free &^= col

	// x follows row i above column h, branches at h and is alone below it.
	above := ^word.LowMask(h + 1)
	rowBranch := word.GetField(i, s.stride, s.branch)&above | word.Bit(j, x)<<h
	rowFree := word.GetField(i, s.stride, s.free)&above | word.LowMask(h)

	r := i0
	if x > y {
		r = i1 + 1
	}
	s.branch = word.InsertField(s.branch, r, s.stride, rowBranch)
	s.free = word.InsertField(s.free, r, s.stride, rowFree)
	s.sketches = word.InsertField(s.sketches, r, s.stride, s.compress(x))
	s.slots.Insert(r, x)
	return nil
}

// addColumn makes bit j significant. Column h opens as a don't-care in every
// row, since no two present keys first differ at j.
func (s *SketchNode) addColumn(j, h int) {
	n := s.slots.Len()
	s.compressingKey = word.SetBit(j, s.compressingKey)
	s.branch = word.InsertColumn(s.branch, n, s.stride, h)
	s.free = word.InsertColumn(s.free, n, s.stride, h) | word.Column(n, s.stride, h)

	s.sketches = word.InsertColumn(s.sketches, n, s.stride, h)
	for r := 0; r < n; r++ {
		s.sketches = word.SetField2d(r, h, 1, s.stride, word.Bit(j, s.slots.Key(r)), s.sketches)
	}
}

// Delete implements Set.
func (s *SketchNode) Delete(x uint64) bool {
	r := s.Rank(x)
	if r >= s.slots.Len() || s.slots.Key(r) != x {
		return false
	}
	s.slots.Delete(r)
	s.rebuild()
	return true
}

// Select implements Set.
func (s *SketchNode) Select(i int) (uint64, bool) {
	return s.slots.Select(i)
}

// Predecessor implements Set.
func (s *SketchNode) Predecessor(x uint64) (uint64, bool) {
	return predecessor(s, x)
}

// Successor implements Set.
func (s *SketchNode) Successor(x uint64) (uint64, bool) {
	return successor(s, x)
}

// Size implements Set.
func (s *SketchNode) Size() int { return s.slots.Len() }

// Cap implements Set.
func (s *SketchNode) Cap() int { return s.slots.Cap() }

// IsEmpty implements Set.
func (s *SketchNode) IsEmpty() bool { return s.slots.Len() == 0 }

// Reset implements Set.
func (s *SketchNode) Reset() {
	s.slots.Reset()
	s.compressingKey, s.sketches, s.branch, s.free = 0, 0, 0, 0
}

// Keys appends the keys in ascending order to dst.
func (s *SketchNode) Keys(dst []uint64) []uint64 {
	return s.slots.Keys(dst)
}

// SignificantBits returns the word with a bit set at every significant position.
func (s *SketchNode) SignificantBits() uint64 {
	return s.compressingKey
}
