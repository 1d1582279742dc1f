// Package fusion implements fusion nodes: fixed-capacity sorted sets of 64-bit
// keys that answer rank queries with word-level parallelism.
//
// Two variants are provided:
//
//   - Node keeps its keys in insertion slots and a packed rank index, and
//     resolves rank by binary search.
//   - SketchNode additionally compresses every key to a sketch over the
//     significant bit positions of the set. Rank is then a constant number
//     of word operations: one parallel comparison against the sketch matrix
//     with don't-care bits, one msb, and one more comparison.
//
// Both implement Set, the contract a larger structure (a fusion tree, a
// dynamic predecessor index) uses to assemble nodes. Nodes never grow; an
// insert into a full node fails with ErrCapacityExceeded.
//
// # Quick start
//
//	s, err := fusion.New(fusion.KindSketch, 8)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = s.Insert(10)
//	_ = s.Insert(42)
//	s.Rank(20)        // 1
//	s.Successor(20)   // 42, true
//
// # Concurrency
//
// Nodes are not safe for concurrent use. Wrap one with NewLocked to share it.
//
// # Observability
//
// Instrument wraps a Set with a structured Logger (log/slog) and a
// MetricsCollector. Capacity overflows are logged at warn level, throttled
// by WithCapacityWarnInterval.
package fusion
