// SPDX-License-Identifier: MIT

package sampler

import (
	"math/rand"

	"github.com/katalvlaran/oracles/internal/seed"
)

// Option customizes a Fourier collector.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*config)

type config struct {
	rng *rand.Rand // drives inputs and outcomes; nil fails Collect
}

func newConfig(opts ...Option) config {
	var cfg config // rng = nil until an option sets it
	for _, opt := range opts {
		opt(&cfg) // last wins
	}

	return cfg
}

// WithRand sets the RNG that drives inputs and outcomes. Panics on nil.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("sampler: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed seeds a fresh math/rand RNG.
// Complexity: O(1) time, O(1) space.
func WithSeed(s int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(s))
	}
}

// WithSeedPhrase seeds the RNG from a SHAKE256 stream over phrase.
// Panics on the empty phrase.
// Complexity: O(len(phrase)) time, O(1) space.
func WithSeedPhrase(phrase string) Option {
	if phrase == "" {
		panic("sampler: WithSeedPhrase(\"\")")
	}
	return func(c *config) {
		c.rng = seed.NewRand(phrase)
	}
}
