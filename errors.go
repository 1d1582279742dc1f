package fusion

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacityExceeded is returned by Insert when the node is full and the
	// key is absent. It is a contract violation: check Size() < Cap() first or
	// route the key to another node. It is never worth retrying.
	ErrCapacityExceeded = errors.New("node capacity exceeded")

	// ErrInvariantViolated is returned by Check when internal state is inconsistent.
	ErrInvariantViolated = errors.New("node invariant violated")

	// ErrUnknownKind is returned by New for an unsupported Kind.
	ErrUnknownKind = errors.New("unknown node kind")
)

// ErrInvalidCapacity indicates a capacity outside [1, Kind.MaxCapacity()].
type ErrInvalidCapacity struct {
	Kind     Kind
	Capacity int
}

func (e *ErrInvalidCapacity) Error() string {
	return fmt.Sprintf("invalid %s capacity: %d (supported: 1..%d)", e.Kind, e.Capacity, e.Kind.MaxCapacity())
}

func capacityExceeded(x uint64, capacity int) error {
	return fmt.Errorf("%w: key %#x, capacity %d", ErrCapacityExceeded, x, capacity)
}

func checkCapacity(kind Kind, capacity int) error {
	if capacity < 1 || capacity > kind.MaxCapacity() {
		return &ErrInvalidCapacity{Kind: kind, Capacity: capacity}
	}
	return nil
}
