package fusion

import (
	"fmt"
	"strings"

	"github.com/hupe1980/fusion/internal/slots"
)

const (
	// MaxNodeCapacity is the largest k with k*ceil(lg k) <= 64, the bound for
	// packing the rank index of a Node into one word.
	MaxNodeCapacity = slots.MaxCapacity

	// MaxSketchCapacity is the largest k with k*k <= 64, the bound for packing
	// the k-by-k BRANCH and FREE matrices of a SketchNode into one word each.
	MaxSketchCapacity = 8
)

// Set is the contract a fusion node exposes to whatever assembles nodes into a
// larger structure. Keys are 64-bit values compared in unsigned order.
type Set interface {
	// Insert adds x. Inserting a present key is a no-op. It returns an error
	// wrapping ErrCapacityExceeded when the set is full and x is absent; the
	// set is unchanged in that case.
	Insert(x uint64) error

	// Delete removes x and reports whether it was present.
	Delete(x uint64) bool

	// Member reports whether x is present.
	Member(x uint64) bool

	// Rank returns the number of present keys strictly less than x.
	Rank(x uint64) int

	// Select returns the key of rank i, or false if i is outside [0, Size()).
	Select(i int) (uint64, bool)

	// Predecessor returns the greatest key strictly less than x.
	Predecessor(x uint64) (uint64, bool)

	// Successor returns the smallest key greater than or equal to x.
	Successor(x uint64) (uint64, bool)

	// Size returns the number of present keys.
	Size() int

	// Cap returns the fixed capacity.
	Cap() int

	// IsEmpty reports whether Size() == 0.
	IsEmpty() bool

	// Reset removes every key.
	Reset()
}

var (
	_ Set = (*Node)(nil)
	_ Set = (*SketchNode)(nil)
	_ Set = (*Instrumented)(nil)
	_ Set = (*Locked)(nil)
)

// Kind identifies a node variant.
type Kind uint8

const (
	// KindNode resolves rank by binary search over the packed index.
	KindNode Kind = iota
	// KindSketch resolves rank in O(1) with sketches and don't-cares.
	KindSketch
)

// String returns the string representation of a Kind.
func (k Kind) String() string {
	switch k {
	case KindNode:
		return "node"
	case KindSketch:
		return "sketch"
	default:
		return "unknown"
	}
}

// ParseKind parses a string into a Kind value.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "node", "binary":
		return KindNode, true
	case "sketch":
		return KindSketch, true
	default:
		return KindNode, false
	}
}

// MaxCapacity returns the largest capacity supported by the variant.
func (k Kind) MaxCapacity() int {
	switch k {
	case KindNode:
		return MaxNodeCapacity
	case KindSketch:
		return MaxSketchCapacity
	default:
		return 0
	}
}

// New creates an empty node of the given kind.
func New(kind Kind, capacity int) (Set, error) {
	switch kind {
	case KindNode:
		n, err := NewNode(capacity)
		if err != nil {
			return nil, err
		}
		return n, nil
	case KindSketch:
		n, err := NewSketchNode(capacity)
		if err != nil {
			return nil, err
		}
		return n, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, kind)
	}
}

// predecessor and successor derive the neighbour queries from rank and select.
func predecessor(s Set, x uint64) (uint64, bool) {
	r := s.Rank(x)
	if r == 0 {
		return 0, false
	}
	return s.Select(r - 1)
}

func successor(s Set, x uint64) (uint64, bool) {
	return s.Select(s.Rank(x))
}
