package fusion

import (
	"errors"
	"time"

	"golang.org/x/time/rate"
)

// Instrumented wraps a Set with logging and metrics.
//
// Results are passed through unchanged. Instrumented adds no locking; wrap a
// Locked set to share it between goroutines.
type Instrumented struct {
	set     Set
	logger  *Logger
	metrics MetricsCollector
	warn    *rate.Sometimes
}

// Instrument wraps s. Without options it logs nothing and records nothing.
func Instrument(s Set, opts ...Option) *Instrumented {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	logger := o.logger.WithCapacity(s.Cap())
	if k, ok := kindOf(s); ok {
		logger = logger.WithKind(k)
	}

	warn := &rate.Sometimes{First: 1, Interval: o.warnInterval}
	if o.warnInterval == 0 {
		warn = &rate.Sometimes{Every: 1}
	}

	return &Instrumented{
		set:     s,
		logger:  logger,
		metrics: o.metricsCollector,
		warn:    warn,
	}
}

func kindOf(s Set) (Kind, bool) {
	switch v := s.(type) {
	case *Node:
		return KindNode, true
	case *SketchNode:
		return KindSketch, true
	case *Locked:
		return kindOf(v.set)
	case *Instrumented:
		return kindOf(v.set)
	default:
		return 0, false
	}
}

// Unwrap returns the wrapped set.
func (s *Instrumented) Unwrap() Set { return s.set }

// Insert adds x to the wrapped set.
func (s *Instrumented) Insert(x uint64) error {
	start := time.Now()
	err := s.set.Insert(x)
	s.metrics.RecordInsert(time.Since(start), err)

	if errors.Is(err, ErrCapacityExceeded) {
		// Overflow is routine for callers that route keys to a sibling node.
		s.warn.Do(func() {
			s.logger.Warn("node full, rejecting inserts",
				"key", x,
				"size", s.set.Size(),
			)
		})
		return err
	}
	s.logger.LogInsert(x, s.set.Size(), err)
	return err
}

// Delete removes x from the wrapped set.
func (s *Instrumented) Delete(x uint64) bool {
	start := time.Now()
	removed := s.set.Delete(x)
	s.metrics.RecordDelete(time.Since(start), removed)
	s.logger.LogDelete(x, removed, s.set.Size())
	return removed
}

// Member reports whether x is in the wrapped set.
func (s *Instrumented) Member(x uint64) bool {
	start := time.Now()
	ok := s.set.Member(x)
	s.metrics.RecordQuery(OpMember, time.Since(start))
	return ok
}

// Rank returns the number of keys less than x.
func (s *Instrumented) Rank(x uint64) int {
	start := time.Now()
	r := s.set.Rank(x)
	s.metrics.RecordQuery(OpRank, time.Since(start))
	return r
}

// Select returns the key of rank i.
func (s *Instrumented) Select(i int) (uint64, bool) {
	start := time.Now()
	x, ok := s.set.Select(i)
	s.metrics.RecordQuery(OpSelect, time.Since(start))
	return x, ok
}

// Predecessor returns the greatest key strictly less than x.
func (s *Instrumented) Predecessor(x uint64) (uint64, bool) {
	start := time.Now()
	y, ok := s.set.Predecessor(x)
	s.metrics.RecordQuery(OpPredecessor, time.Since(start))
	return y, ok
}

// Successor returns the smallest key greater than or equal to x.
func (s *Instrumented) Successor(x uint64) (uint64, bool) {
	start := time.Now()
	y, ok := s.set.Successor(x)
	s.metrics.RecordQuery(OpSuccessor, time.Since(start))
	return y, ok
}

func (s *Instrumented) Size() int     { return s.set.Size() }
func (s *Instrumented) Cap() int      { return s.set.Cap() }
func (s *Instrumented) IsEmpty() bool { return s.set.IsEmpty() }

// Reset empties the wrapped set.
func (s *Instrumented) Reset() {
	n := s.set.Size()
	s.set.Reset()
	s.logger.LogReset(n)
}
