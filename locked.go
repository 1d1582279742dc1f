package fusion

import "sync"

// Locked guards a Set with a read-write mutex. Queries share the read lock;
// Insert, Delete and Reset take the write lock.
type Locked struct {
	mu  sync.RWMutex
	set Set
}

// NewLocked wraps s. The caller must not use s directly afterwards.
func NewLocked(s Set) *Locked {
	return &Locked{set: s}
}

func (l *Locked) Insert(x uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.set.Insert(x)
}

func (l *Locked) Delete(x uint64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.set.Delete(x)
}

func (l *Locked) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.set.Reset()
}

func (l *Locked) Member(x uint64) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.set.Member(x)
}

func (l *Locked) Rank(x uint64) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.set.Rank(x)
}

func (l *Locked) Select(i int) (uint64, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.set.Select(i)
}

func (l *Locked) Predecessor(x uint64) (uint64, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.set.Predecessor(x)
}

func (l *Locked) Successor(x uint64) (uint64, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.set.Successor(x)
}

func (l *Locked) Size() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.set.Size()
}

// Cap is fixed at construction and needs no lock.
func (l *Locked) Cap() int { return l.set.Cap() }

func (l *Locked) IsEmpty() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.set.IsEmpty()
}

// Do runs fn with exclusive access to the wrapped set, for multi-step updates
// such as moving a key between siblings.
func (l *Locked) Do(fn func(s Set) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return fn(l.set)
}
