package fortune

import (
	"math/rand/v2"

	"github.com/CodewithAN/paper-fortune-teller/parameter"
)

// RNG is the source of uniform picks
// *rand.Rand satisfies it; tests substitute a seeded or scripted source
type RNG interface {
	IntN(n int) int
}

// NewStdRNG returns the default source, math/rand/v2 seeded from the runtime
func NewStdRNG() RNG {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// NewSeededRNG returns a deterministic source for reproducible runs
func NewSeededRNG(seed uint64) RNG {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Pool is the ordered, read-only list of fortune messages
type Pool struct {
	entries []string
}

// NewPool copies entries into a pool, an empty or nil list falls back to the built-in messages
func NewPool(entries []string) *Pool {
	if len(entries) == 0 {
		entries = parameter.DefaultFortunes
	}
	cp := make([]string, len(entries))
	copy(cp, entries)
	return &Pool{entries: cp}
}

// Len returns the number of messages
func (p *Pool) Len() int {
	return len(p.entries)
}

// Pick draws one message uniformly, returning its index and text
func (p *Pool) Pick(rng RNG) (int, string) {
	i := rng.IntN(len(p.entries))
	return i, p.entries[i]
}
