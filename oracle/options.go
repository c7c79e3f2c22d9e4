// SPDX-License-Identifier: MIT
// Package: oracle
//
// options.go: functional options for the builders.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Builders themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed, WithRand or
//     WithSeedPhrase; without one, random secrets fail with ErrNeedRandSource.
//   • No hidden globals; everything flows through config.
//
// Hints:
//   • Prefer WithSeed in tests and WithSeedPhrase for reproducible CLI runs.
//   • WithoutObfuscation makes f(x) readable by eye (period: f(x) = x mod p).

package oracle

import (
	"math/rand" // RNG source for secret selection and output flips

	"github.com/katalvlaran/oracles/internal/seed" // SHAKE256-backed sources
)

// Option customizes a builder by mutating its config before construction.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*config)

// WithRand provides an explicit RNG for secret selection and obfuscation flips.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		// Option constructors validate and panic.
		panic("oracle: WithRand(nil)")
	}
	return func(c *config) {
		// Attach the RNG; callers decide the seed policy.
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Complexity: O(1) time, O(1) space.
func WithSeed(s int64) Option {
	return func(c *config) {
		// Seeded source: equal seeds give equal secrets and flips.
		c.rng = rand.New(rand.NewSource(s))
	}
}

// WithSeedPhrase seeds the RNG from a SHAKE256 stream over phrase, so runs can
// be reproduced from a memorable string. Panics on the empty phrase.
// Complexity: O(len(phrase)) time, O(1) space.
func WithSeedPhrase(phrase string) Option {
	if phrase == "" {
		// An empty phrase names no stream.
		panic("oracle: WithSeedPhrase(\"\")")
	}
	return func(c *config) {
		// Stream is identical across platforms and Go releases.
		c.rng = seed.NewRand(phrase)
	}
}

// WithoutObfuscation disables the constant output flips of both builders.
// Complexity: O(1) time, O(1) space.
func WithoutObfuscation() Option {
	return func(c *config) {
		// Gate list keeps only the secret-bearing gates.
		c.obfuscate = false
	}
}
