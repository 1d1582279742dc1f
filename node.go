package fusion

import (
	"fmt"

	"github.com/hupe1980/fusion/internal/slots"
)

// Node is a fusion node whose rank is resolved by binary search over its
// packed rank index, using at most ceil(lg(k+1)) key comparisons.
//
// Keys live in an unordered slot array; the index word maps each rank to a
// slot, so insert and delete only splice one field of the index.
//
// A Node is not safe for concurrent use. Wrap it with NewLocked if needed.
type Node struct {
	slots slots.Table
}

// NewNode creates an empty Node holding up to capacity keys,
// 1 <= capacity <= MaxNodeCapacity.
func NewNode(capacity int) (*Node, error) {
	if err := checkCapacity(KindNode, capacity); err != nil {
		return nil, err
	}
	return &Node{slots: slots.New(capacity)}, nil
}

// Insert implements Set.
func (n *Node) Insert(x uint64) error {
	r := n.Rank(x)
	if r < n.slots.Len() && n.slots.Key(r) == x {
		return nil
	}
	if n.slots.Full() {
		return capacityExceeded(x, n.slots.Cap())
	}
	n.slots.Insert(r, x)
	return nil
}

// Delete implements Set.
func (n *Node) Delete(x uint64) bool {
	r := n.Rank(x)
	if r >= n.slots.Len() || n.slots.Key(r) != x {
		return false
	}
	n.slots.Delete(r)
	return true
}

// Member implements Set.
func (n *Node) Member(x uint64) bool {
	r := n.Rank(x)
	return r < n.slots.Len() && n.slots.Key(r) == x
}

// Rank implements Set.
func (n *Node) Rank(x uint64) int {
	lo, hi := 0, n.slots.Len()
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if n.slots.Key(mid) < x {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// Select implements Set.
func (n *Node) Select(i int) (uint64, bool) {
	return n.slots.Select(i)
}

// Predecessor implements Set.
func (n *Node) Predecessor(x uint64) (uint64, bool) {
	return predecessor(n, x)
}

// Successor implements Set.
func (n *Node) Successor(x uint64) (uint64, bool) {
	return successor(n, x)
}

// Size implements Set.
func (n *Node) Size() int { return n.slots.Len() }

// Cap implements Set.
func (n *Node) Cap() int { return n.slots.Cap() }

// IsEmpty implements Set.
func (n *Node) IsEmpty() bool { return n.slots.Len() == 0 }

// Reset implements Set.
func (n *Node) Reset() { n.slots.Reset() }

// Keys appends the keys in ascending order to dst.
func (n *Node) Keys(dst []uint64) []uint64 {
	return n.slots.Keys(dst)
}

// Check verifies the internal invariants of the node.
func (n *Node) Check() error {
	if err := n.slots.Check(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvariantViolated, err)
	}
	return nil
}
