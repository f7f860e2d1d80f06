package testutil

import (
	"context"
	"math/rand"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/bitset"
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
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
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

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Indices returns the ascending indices in [0, maxBits) chosen independently
// with probability density. Locks only once per call.
func (r *RNG) Indices(maxBits int, density float64) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []int
	for i := 0; i < maxBits; i++ {
		if r.rand.Float64() < density {
			out = append(out, i)
		}
	}
	return out
}

// Bitset returns a bitset whose bits in [0, maxBits) are set with
// probability density. Its word length is random too, between the minimum
// needed for its highest bit and the one needed for maxBits, so that
// operands of different lengths show up in property tests.
func (r *RNG) Bitset(maxBits int, density float64) *bitset.Bitset {
	b, err := bitset.Alloc(r.Intn(maxBits+1), false)
	if err != nil {
		panic(err)
	}
	for _, i := range r.Indices(maxBits, density) {
		if err := b.Set(i); err != nil {
			panic(err)
		}
	}
	return b
}

// FromIndices builds a bitset with exactly the given bits set.
func FromIndices(indices ...int) *bitset.Bitset {
	b := bitset.New()
	for _, i := range indices {
		if err := b.Set(i); err != nil {
			panic(err)
		}
	}
	return b
}

// Sweep runs check once per seed in [0, seeds), in parallel. Each call gets
// its own RNG, so every check works on bitsets no other goroutine touches.
// The first error cancels the remaining checks and is returned.
func Sweep(ctx context.Context, seeds int, check func(ctx context.Context, rng *RNG) error) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for seed := 0; seed < seeds; seed++ {
		rng := NewRNG(int64(seed))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return check(ctx, rng)
		})
	}

	return g.Wait()
}
