package testutil

import (
	"math/bits"
	"math/rand"
	"slices"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Keys returns n distinct keys drawn uniformly from the 64-bit range.
func (r *RNG) Keys(n int) []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[uint64]struct{}, n)
	keys := make([]uint64, 0, n)
	for len(keys) < n {
		x := r.rand.Uint64()
		if _, ok := seen[x]; ok {
			continue
		}
		seen[x] = struct{}{}
		keys = append(keys, x)
	}
	return keys
}

// ClusteredKeys returns n distinct keys that share every bit except a random
// choice of spread positions. Such keys have long common prefixes, so a sketch
// node adds and reuses significant columns on almost every insert.
//
// It panics if n > 2^spread or spread is outside [1, 64].
func (r *RNG) ClusteredKeys(n, spread int) []uint64 {
	if spread < 1 || spread > 64 || (spread < 64 && n > 1<<spread) {
		panic("testutil: cannot draw that many clustered keys")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	positions := r.rand.Perm(64)[:spread]
	base := r.rand.Uint64()

	seen := make(map[uint64]struct{}, n)
	keys := make([]uint64, 0, n)
	for len(keys) < n {
		x := base
		for _, p := range positions {
			if r.rand.Intn(2) == 1 {
				x ^= 1 << p
			}
		}
		if _, ok := seen[x]; ok {
			continue
		}
		seen[x] = struct{}{}
		keys = append(keys, x)
	}
	return keys
}

// Pick returns a key that is present in keys with probability one half and an
// arbitrary key otherwise. keys may be empty.
func (r *RNG) Pick(keys []uint64) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(keys) > 0 && r.rand.Intn(2) == 0 {
		return keys[r.rand.Intn(len(keys))]
	}
	return r.rand.Uint64()
}

// Neighbours returns x together with x-1 and x+1 (wrapping), the keys most
// likely to expose an off-by-one in rank.
func Neighbours(x uint64) []uint64 {
	return []uint64{x - 1, x, x + 1}
}

// SortedCopy returns keys sorted in ascending order.
func SortedCopy(keys []uint64) []uint64 {
	out := slices.Clone(keys)
	slices.Sort(out)
	return out
}

// CommonPrefixLen returns the number of leading bits a and b share.
func CommonPrefixLen(a, b uint64) int {
	return bits.LeadingZeros64(a ^ b)
}
