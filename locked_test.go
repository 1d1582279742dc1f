package fusion

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockedConcurrent(t *testing.T) {
	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			inner, err := New(kind, 4)
			require.NoError(t, err)
			l := NewLocked(inner)

			// Even keys stay put; writers toggle odd keys.
			require.NoError(t, l.Insert(0))
			require.NoError(t, l.Insert(100))

			var wg sync.WaitGroup
			for w := 0; w < 2; w++ {
				wg.Add(1)
				go func(x uint64) {
					defer wg.Done()
					for i := 0; i < 500; i++ {
						_ = l.Insert(x)
						l.Delete(x)
					}
				}(uint64(2*w + 1))
			}
			for r := 0; r < 4; r++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for i := 0; i < 500; i++ {
						assert.True(t, l.Member(0))
						assert.True(t, l.Member(100))
						assert.Equal(t, 0, l.Rank(0))
						n, ok := l.Successor(50)
						assert.True(t, ok)
						assert.Equal(t, uint64(100), n)
					}
				}()
			}
			wg.Wait()

			assert.Equal(t, 2, l.Size())
			assert.Equal(t, 4, l.Cap())
		})
	}
}

func TestLockedDo(t *testing.T) {
	a, err := NewNode(4)
	require.NoError(t, err)
	b, err := NewSketchNode(4)
	require.NoError(t, err)

	la, lb := NewLocked(a), NewLocked(b)
	require.NoError(t, la.Insert(9))

	// Move 9 from a to b.
	err = la.Do(func(s Set) error {
		if err := lb.Insert(9); err != nil {
			return err
		}
		s.Delete(9)
		return nil
	})
	require.NoError(t, err)

	assert.True(t, la.IsEmpty())
	assert.True(t, lb.Member(9))
	x, ok := lb.Select(0)
	assert.True(t, ok)
	assert.Equal(t, uint64(9), x)
	_, ok = lb.Predecessor(9)
	assert.False(t, ok)

	lb.Reset()
	assert.True(t, lb.IsEmpty())
}
