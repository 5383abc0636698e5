package planner

import (
	"math"
	"math/rand/v2"
	"sync"
)

// Random is the randomness the planner consumes. *rand.Rand from
// math/rand/v2 satisfies it, which lets tests pin exact outputs with a
// seeded PCG source.
type Random interface {
	Float64() float64
	IntN(n int) int
}

// SystemRandom draws from the runtime's global generator. It is safe for
// concurrent use.
type SystemRandom struct{}

func (SystemRandom) Float64() float64 { return rand.Float64() }
func (SystemRandom) IntN(n int) int   { return rand.IntN(n) }

// lockedRandom serialises access to a seeded generator so one seed can be
// shared by concurrent requests.
type lockedRandom struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSeededRandom returns a goroutine-safe generator with a fixed seed.
func NewSeededRandom(seed uint64) Random {
	return &lockedRandom{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (l *lockedRandom) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rnd.Float64()
}

func (l *lockedRandom) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rnd.IntN(n)
}

// round2 rounds half away from zero to two decimals.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
