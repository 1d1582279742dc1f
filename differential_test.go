package fusion

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hupe1980/fusion/testutil"
)

// compare checks every query of s against ref at the given probe keys.
func compare(s Set, ref *testutil.Reference, probes []uint64) error {
	if s.Size() != ref.Size() {
		return fmt.Errorf("size %d, want %d", s.Size(), ref.Size())
	}
	for i := -1; i <= ref.Size(); i++ {
		got, gok := s.Select(i)
		want, wok := ref.Select(i)
		if got != want || gok != wok {
			return fmt.Errorf("select(%d) = %#x %v, want %#x %v", i, got, gok, want, wok)
		}
	}
	for _, x := range probes {
		for _, q := range testutil.Neighbours(x) {
			if got, want := s.Rank(q), ref.Rank(q); got != want {
				return fmt.Errorf("rank(%#x) = %d, want %d", q, got, want)
			}
			if got, want := s.Member(q), ref.Member(q); got != want {
				return fmt.Errorf("member(%#x) = %v, want %v", q, got, want)
			}
			gp, gok := s.Predecessor(q)
			wp, wok := ref.Predecessor(q)
			if gp != wp || gok != wok {
				return fmt.Errorf("predecessor(%#x) = %#x %v, want %#x %v", q, gp, gok, wp, wok)
			}
			gs, gok := s.Successor(q)
			ws, wok := ref.Successor(q)
			if gs != ws || gok != wok {
				return fmt.Errorf("successor(%#x) = %#x %v, want %#x %v", q, gs, gok, ws, wok)
			}
		}
	}
	return nil
}

// checkProperties verifies the rank/select identities that hold for any set.
func checkProperties(s Set, probes []uint64) error {
	n := s.Size()
	for i := 0; i < n; i++ {
		x, ok := s.Select(i)
		if !ok {
			return fmt.Errorf("select(%d) missing", i)
		}
		if r := s.Rank(x); r != i {
			return fmt.Errorf("rank(select(%d)) = %d", i, r)
		}
		if !s.Member(x) {
			return fmt.Errorf("select(%d) = %#x not a member", i, x)
		}
	}
	for a := range probes {
		for b := range probes {
			if probes[a] <= probes[b] && s.Rank(probes[a]) > s.Rank(probes[b]) {
				return fmt.Errorf("rank not monotone at %#x, %#x", probes[a], probes[b])
			}
		}
	}
	for _, x := range probes {
		r := s.Rank(x)
		y, ok := s.Select(r)
		if s.Member(x) != (ok && y == x) {
			return fmt.Errorf("member(%#x) disagrees with select(rank)", x)
		}
	}
	return nil
}

func TestDifferential(t *testing.T) {
	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			capacity := kind.MaxCapacity()

			err := testutil.CrossCheck(context.Background(), testutil.Seeds(1000, 32), 8,
				func(ctx context.Context, rng *testutil.RNG) error {
					s, err := New(kind, capacity)
					if err != nil {
						return err
					}
					c := s.(checker)
					ref := testutil.NewReference(capacity)

					// A small key universe makes deletes and duplicates frequent.
					universe := rng.ClusteredKeys(4*capacity, 8)

					for step := 0; step < 400; step++ {
						if err := ctx.Err(); err != nil {
							return err
						}

						x := universe[rng.Intn(len(universe))]
						switch rng.Intn(3) {
						case 0, 1:
							gotErr := s.Insert(x)
							wantErr := ref.Insert(x)
							if errors.Is(gotErr, ErrCapacityExceeded) != errors.Is(wantErr, testutil.ErrFull) {
								return fmt.Errorf("step %d: insert(%#x) = %v, want %v", step, x, gotErr, wantErr)
							}
						default:
							if got, want := s.Delete(x), ref.Delete(x); got != want {
								return fmt.Errorf("step %d: delete(%#x) = %v, want %v", step, x, got, want)
							}
						}

						if err := c.Check(); err != nil {
							return fmt.Errorf("step %d: %w", step, err)
						}
						if err := compare(s, ref, universe[:8]); err != nil {
							return fmt.Errorf("step %d: %w", step, err)
						}
					}
					return checkProperties(s, universe)
				})
			require.NoError(t, err)
		})
	}
}

func TestNodeAndSketchAgree(t *testing.T) {
	err := testutil.CrossCheck(context.Background(), testutil.Seeds(7, 64), 0,
		func(_ context.Context, rng *testutil.RNG) error {
			node, err := NewNode(MaxSketchCapacity)
			if err != nil {
				return err
			}
			sketch, err := NewSketchNode(MaxSketchCapacity)
			if err != nil {
				return err
			}

			keys := rng.Keys(MaxSketchCapacity)
			for _, x := range keys {
				if err := node.Insert(x); err != nil {
					return err
				}
				if err := sketch.Insert(x); err != nil {
					return err
				}
			}

			for i := 0; i < 256; i++ {
				q := rng.Pick(keys)
				if node.Rank(q) != sketch.Rank(q) {
					return fmt.Errorf("rank(%#x): node %d, sketch %d", q, node.Rank(q), sketch.Rank(q))
				}
			}
			return checkProperties(sketch, keys)
		})
	require.NoError(t, err)
}
