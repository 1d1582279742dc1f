package fusion

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var kinds = []Kind{KindNode, KindSketch}

// checker is implemented by both node variants.
type checker interface {
	Set
	Check() error
	Keys(dst []uint64) []uint64
}

func newChecker(t testing.TB, kind Kind, capacity int) checker {
	t.Helper()
	s, err := New(kind, capacity)
	require.NoError(t, err)
	c, ok := s.(checker)
	require.True(t, ok)
	return c
}

func TestInsertQuery(t *testing.T) {
	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			s := newChecker(t, kind, 8)

			for _, x := range []uint64{10, 12, 42, uint64(1<<64 - 1337), uint64(1<<64 - 42)} {
				require.NoError(t, s.Insert(x))
				require.NoError(t, s.Check())
			}

			assert.Equal(t, 5, s.Size())
			assert.Equal(t, 0, s.Rank(10))
			assert.Equal(t, 1, s.Rank(12))
			assert.Equal(t, 2, s.Rank(42))
			assert.Equal(t, 3, s.Rank(uint64(1<<64-1337)))
			assert.Equal(t, 4, s.Rank(uint64(1<<64-42)))
			assert.Equal(t, 5, s.Rank(^uint64(0)))

			p, ok := s.Predecessor(11)
			assert.True(t, ok)
			assert.Equal(t, uint64(10), p)

			n, ok := s.Successor(11)
			assert.True(t, ok)
			assert.Equal(t, uint64(12), n)

			n, ok = s.Successor(12)
			assert.True(t, ok)
			assert.Equal(t, uint64(12), n)

			_, ok = s.Predecessor(10)
			assert.False(t, ok)

			_, ok = s.Successor(^uint64(0))
			assert.False(t, ok)

			assert.Equal(t, []uint64{10, 12, 42, uint64(1<<64 - 1337), uint64(1<<64 - 42)}, s.Keys(nil))
		})
	}
}

func TestDeleteSmallest(t *testing.T) {
	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			k := kind.MaxCapacity()
			s := newChecker(t, kind, k)

			for x := 0; x < k; x++ {
				require.NoError(t, s.Insert(uint64(x)))
			}
			require.True(t, s.Delete(0))
			require.NoError(t, s.Check())

			assert.Equal(t, k-1, s.Size())
			assert.False(t, s.Member(0))
			assert.Equal(t, 0, s.Rank(1))
			assert.False(t, s.Delete(0))
		})
	}
}

func TestEmpty(t *testing.T) {
	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			s := newChecker(t, kind, 4)

			for _, x := range []uint64{0, 1, 42, ^uint64(0)} {
				assert.Equal(t, 0, s.Rank(x))
				assert.False(t, s.Member(x))

				_, ok := s.Predecessor(x)
				assert.False(t, ok)
				_, ok = s.Successor(x)
				assert.False(t, ok)
			}

			_, ok := s.Select(0)
			assert.False(t, ok)
			assert.True(t, s.IsEmpty())
			assert.False(t, s.Delete(7))
			assert.NoError(t, s.Check())
		})
	}
}

func TestCapacityExceeded(t *testing.T) {
	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			s := newChecker(t, kind, 3)

			require.NoError(t, s.Insert(5))
			require.NoError(t, s.Insert(1))
			require.NoError(t, s.Insert(9))

			// Present keys are accepted even when full.
			require.NoError(t, s.Insert(5))

			err := s.Insert(7)
			require.ErrorIs(t, err, ErrCapacityExceeded)
			assert.Equal(t, 3, s.Size())
			assert.False(t, s.Member(7))
			assert.NoError(t, s.Check())

			require.True(t, s.Delete(1))
			require.NoError(t, s.Insert(7))
			assert.Equal(t, []uint64{5, 7, 9}, s.Keys(nil))
		})
	}
}

func TestDuplicateInsert(t *testing.T) {
	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			s := newChecker(t, kind, 4)

			require.NoError(t, s.Insert(3))
			require.NoError(t, s.Insert(3))
			assert.Equal(t, 1, s.Size())
			assert.NoError(t, s.Check())
		})
	}
}

func TestReset(t *testing.T) {
	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			s := newChecker(t, kind, 4)
			for _, x := range []uint64{4, 8, 15, 16} {
				require.NoError(t, s.Insert(x))
			}

			s.Reset()
			assert.True(t, s.IsEmpty())
			assert.Equal(t, 4, s.Cap())
			assert.NoError(t, s.Check())

			require.NoError(t, s.Insert(23))
			assert.Equal(t, 0, s.Rank(23))
			assert.True(t, s.Member(23))
		})
	}
}

func TestSelectOutOfRange(t *testing.T) {
	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			s := newChecker(t, kind, 4)
			require.NoError(t, s.Insert(1))

			_, ok := s.Select(-1)
			assert.False(t, ok)
			_, ok = s.Select(1)
			assert.False(t, ok)

			x, ok := s.Select(0)
			assert.True(t, ok)
			assert.Equal(t, uint64(1), x)
		})
	}
}

func TestNewInvalidCapacity(t *testing.T) {
	tests := []struct {
		kind     Kind
		capacity int
	}{
		{KindNode, 0},
		{KindNode, -1},
		{KindNode, MaxNodeCapacity + 1},
		{KindSketch, 0},
		{KindSketch, MaxSketchCapacity + 1},
	}

	for _, tt := range tests {
		s, err := New(tt.kind, tt.capacity)
		assert.Nil(t, s)

		var invalid *ErrInvalidCapacity
		require.True(t, errors.As(err, &invalid), "%s/%d", tt.kind, tt.capacity)
		assert.Equal(t, tt.kind, invalid.Kind)
		assert.Equal(t, tt.capacity, invalid.Capacity)
	}

	for _, kind := range kinds {
		s, err := New(kind, kind.MaxCapacity())
		require.NoError(t, err)
		assert.Equal(t, kind.MaxCapacity(), s.Cap())
	}
}

func TestNewUnknownKind(t *testing.T) {
	s, err := New(Kind(42), 4)
	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
		ok   bool
	}{
		{"node", KindNode, true},
		{"Binary", KindNode, true},
		{" sketch ", KindSketch, true},
		{"fusion", KindNode, false},
	}

	for _, tt := range tests {
		got, ok := ParseKind(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		if ok {
			assert.Equal(t, tt.want, got, tt.in)
		}
	}

	assert.Equal(t, "unknown", Kind(9).String())
}
