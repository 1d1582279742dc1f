package fusion

import (
	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// ToBitmap returns the keys of s as a roaring64 bitmap.
func ToBitmap(s Set) *roaring64.Bitmap {
	b := roaring64.New()
	n := s.Size()
	for i := 0; i < n; i++ {
		x, ok := s.Select(i)
		if !ok {
			break
		}
		b.Add(x)
	}
	return b
}

// InsertBitmap inserts the keys of b into s in ascending order. It stops at the
// first failed insert and returns how many keys were inserted before it. Keys
// already in s count as inserted.
func InsertBitmap(s Set, b *roaring64.Bitmap) (int, error) {
	if b == nil {
		return 0, nil
	}
	inserted := 0
	it := b.Iterator()
	for it.HasNext() {
		if err := s.Insert(it.Next()); err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}
