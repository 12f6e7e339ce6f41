package testutil

import (
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

// Uint32 returns a pseudo-random uint32.
func (r *RNG) Uint32() uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint32()
}

// Keys returns n distinct sorted 16-bit keys. n must not exceed 65536.
func (r *RNG) Keys(n int) []uint16 {
	r.mu.Lock()
	defer r.mu.Unlock()

	perm := r.rand.Perm(1 << 16)[:n]
	keys := make([]uint16, n)
	for i, k := range perm {
		keys[i] = uint16(k)
	}
	slices.Sort(keys)
	return keys
}

// Values returns up to n distinct sorted values whose high 16 bits are below
// keySpan. Fewer than n values are returned if the space is too small.
func (r *RNG) Values(n int, keySpan int) []uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	limit := int64(keySpan) << 16
	seen := make(map[uint32]struct{}, n)
	for len(seen) < n && int64(len(seen)) < limit {
		seen[uint32(r.rand.Int63n(limit))] = struct{}{}
	}
	values := make([]uint32, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	slices.Sort(values)
	return values
}

// LowValues returns n distinct sorted 16-bit values.
func (r *RNG) LowValues(n int) []uint16 {
	r.mu.Lock()
	defer r.mu.Unlock()

	perm := r.rand.Perm(1 << 16)[:n]
	values := make([]uint16, n)
	for i, v := range perm {
		values[i] = uint16(v)
	}
	slices.Sort(values)
	return values
}
