package simon

import (
	"math/rand"
	"sync"
	"time"
)

// Generator draws the next signal appended to a pattern.
type Generator interface {
	Next() Signal
}

// RandomGenerator draws uniformly from the four signals.
// It is safe for concurrent use, although the engine only calls it from
// its own loop.
type RandomGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomGenerator creates a generator seeded with seed.
// A zero seed uses the current time.
func NewRandomGenerator(seed int64) *RandomGenerator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomGenerator{rng: rand.New(rand.NewSource(seed))}
}

// Next returns a uniformly drawn signal.
func (g *RandomGenerator) Next() Signal {
	g.mu.Lock()
	defer g.mu.Unlock()
	return Signals[g.rng.Intn(len(Signals))]
}

// GeneratorFunc adapts a plain function to Generator.
type GeneratorFunc func() Signal

// Next calls f.
func (f GeneratorFunc) Next() Signal {
	return f()
}
