// SPDX-License-Identifier: MIT

// Package period estimates the hidden period of a period oracle from
// inverse-QFT outcomes. An oracle with period p produces exactly p distinct
// peaks (the multiples of 2^n/p), so the number of distinct outcomes seen
// approaches p as shots grow.
package period

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/oracles/bitvec"
	"github.com/katalvlaran/oracles/oracle"
	"github.com/katalvlaran/oracles/sampler"
)

const opRecover = "Recover"

// ErrWrongKind indicates an oracle that does not embed a period.
var ErrWrongKind = errors.New("period: oracle is not a period oracle")

// Estimate returns the number of distinct outcomes in samples; 0 when empty.
func Estimate(samples []bitvec.Vector) int {
	distinct := make(map[string]struct{}, len(samples))
	for _, s := range samples {
		distinct[s.String()] = struct{}{}
	}

	return len(distinct)
}

// Result describes one estimation run.
type Result struct {
	Estimate int
	Shots    int
	Peaks    []sampler.Count // distinct outcomes, most frequent first
}

// Recover collects shots outcomes of the period experiment on o and estimates
// the period from them.
//
// Errors: oracle.ErrNilOracle, ErrWrongKind, or the collector's error, wrapped.
func Recover(ctx context.Context, c sampler.Collector, o *oracle.Oracle, shots int) (Result, error) {
	if o == nil {
		return Result{}, fmt.Errorf("%s: %w", opRecover, oracle.ErrNilOracle)
	}
	if o.Kind() != oracle.KindPeriod {
		return Result{}, fmt.Errorf("%s: %s: %w", opRecover, o.Kind(), ErrWrongKind)
	}

	samples, err := c.Collect(ctx, o, shots)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opRecover, err)
	}

	return Result{
		Estimate: Estimate(samples),
		Shots:    len(samples),
		Peaks:    sampler.Tally(samples),
	}, nil
}
