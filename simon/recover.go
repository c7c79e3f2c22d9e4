// SPDX-License-Identifier: MIT

package simon

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/oracles/bitvec"
	"github.com/katalvlaran/oracles/oracle"
	"github.com/katalvlaran/oracles/sampler"
)

const opRecover = "Recover"

const (
	// DefaultShots is the first attempt's shot count.
	DefaultShots = 1024
	// DefaultMaxAttempts bounds the collect-and-solve rounds.
	DefaultMaxAttempts = 4
	// MaxShots caps a single attempt after doubling.
	MaxShots = 1 << 20
)

// Result describes a successful recovery.
type Result struct {
	Mask     bitvec.Vector
	Attempts int
	Samples  int // total outcomes collected over all attempts
}

// RecoverOption customizes Recover.
type RecoverOption func(*recoverConfig)

type recoverConfig struct {
	shots       int
	maxAttempts int
	logf        func(format string, args ...interface{})
}

// WithShots sets the first attempt's shot count. Panics if shots < 1.
func WithShots(shots int) RecoverOption {
	if shots < 1 {
		panic(fmt.Sprintf("simon: WithShots(%d)", shots))
	}
	return func(c *recoverConfig) {
		c.shots = shots
	}
}

// WithMaxAttempts bounds the number of collect-and-solve rounds. Panics if k < 1.
func WithMaxAttempts(k int) RecoverOption {
	if k < 1 {
		panic(fmt.Sprintf("simon: WithMaxAttempts(%d)", k))
	}
	return func(c *recoverConfig) {
		c.maxAttempts = k
	}
}

// WithLogf reports each retry through logf (log.Printf fits). Panics on nil.
func WithLogf(logf func(format string, args ...interface{})) RecoverOption {
	if logf == nil {
		panic("simon: WithLogf(nil)")
	}
	return func(c *recoverConfig) {
		c.logf = logf
	}
}

// Recover collects outcomes of Simon's experiment on o and solves for its mask.
//
// Each attempt collects shots new outcomes and solves over everything gathered
// so far. On ErrInsufficientSamples the shot count doubles (up to MaxShots)
// and Recover tries again, at most maxAttempts times; any other error,
// including ctx cancellation inside the collector, is returned at once.
//
// Errors:
//   - oracle.ErrNilOracle, ErrWrongKind for unusable oracles.
//   - Collector errors, wrapped.
//   - ErrInsufficientSamples after the last attempt.
func Recover(ctx context.Context, c sampler.Collector, o *oracle.Oracle, opts ...RecoverOption) (Result, error) {
	cfg := recoverConfig{
		shots:       DefaultShots,
		maxAttempts: DefaultMaxAttempts,
		logf:        func(string, ...interface{}) {},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if o == nil {
		return Result{}, fmt.Errorf("%s: %w", opRecover, oracle.ErrNilOracle)
	}
	if o.Kind() != oracle.KindXorMask {
		return Result{}, fmt.Errorf("%s: %s: %w", opRecover, o.Kind(), ErrWrongKind)
	}

	var (
		samples []bitvec.Vector
		lastErr error
	)
	shots := cfg.shots
	for attempt := 1; attempt <= cfg.maxAttempts; attempt++ {
		batch, err := c.Collect(ctx, o, shots)
		if err != nil {
			return Result{}, fmt.Errorf("%s: attempt %d: %w", opRecover, attempt, err)
		}
		samples = append(samples, batch...)

		s, err := Solve(samples, o.Width())
		if err == nil {
			return Result{Mask: s, Attempts: attempt, Samples: len(samples)}, nil
		}
		if !errors.Is(err, ErrInsufficientSamples) {
			return Result{}, fmt.Errorf("%s: attempt %d: %w", opRecover, attempt, err)
		}
		lastErr = err

		if attempt < cfg.maxAttempts {
			if shots *= 2; shots > MaxShots {
				shots = MaxShots
			}
			cfg.logf("simon: attempt %d: %v; retrying with %d shots", attempt, err, shots)
		}
	}

	return Result{}, fmt.Errorf("%s: %d attempts: %w", opRecover, cfg.maxAttempts, lastErr)
}
