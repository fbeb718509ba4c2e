package bt

import (
	"math/rand"
	"sync"
	"time"
)

var _ Rand = (*LockedRand)(nil)

// LockedRand is a math/rand generator guarded by a mutex so one seeded source
// can be shared by every tree and by the oracle.
type LockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRand returns a source seeded once with seed.
func NewRand(seed int64) *LockedRand {
	return &LockedRand{rng: rand.New(rand.NewSource(seed))}
}

func (r *LockedRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64()
}

func (r *LockedRand) Shuffle(n int, swap func(i, j int)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rng.Shuffle(n, swap)
}

func (r *LockedRand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(n)
}

var (
	defaultRand     *LockedRand
	defaultRandOnce sync.Once
)

// DefaultRand returns the process-wide source, seeded from the clock on first use.
func DefaultRand() *LockedRand {
	defaultRandOnce.Do(func() {
		defaultRand = NewRand(time.Now().UnixNano())
	})
	return defaultRand
}
