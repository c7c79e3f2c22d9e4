// SPDX-License-Identifier: MIT
// Package: oracle
//
// config.go: internal configuration and deterministic defaults.
//
// Design:
//   • config is the single source of truth for all builder knobs.
//   • newConfig applies options in order (later overrides earlier).
//
// Deterministic defaults:
//   • rng       = nil   (pure/deterministic unless seeded)
//   • obfuscate = true  (constant output flips on)

package oracle

import "math/rand" // RNG for secret selection and flips

// config aggregates all knobs used by builders.
// It is passed by VALUE to builders (immutable to callers).
type config struct {
	// RNG for secret selection and period-oracle flips; nil means “no randomness”.
	rng *rand.Rand
	// Whether constant output flips are emitted.
	obfuscate bool
}

// Deterministic defaults (named, no magic values).
const (
	defaultObfuscate = true // output flips on unless WithoutObfuscation
)

// newConfig constructs a config with deterministic defaults and applies all
// options in order; last wins.
// Complexity: O(len(opts)) time, O(1) space.
func newConfig(opts ...Option) config {
	// Start with strict, deterministic defaults.
	cfg := config{
		rng:       nil,              // no RNG unless explicitly set
		obfuscate: defaultObfuscate, // true
	}
	// Apply user options in order.
	for _, opt := range opts {
		opt(&cfg) // each option mutates cfg in place
	}

	return cfg
}
