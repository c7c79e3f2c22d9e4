// SPDX-License-Identifier: MIT

// Package sampler produces the measurement outcomes of the two interference
// experiments that reveal an oracle's secret, without simulating amplitudes.
//
// A Collector returns one n-bit vector per shot. The Fourier collector uses
// the closed-form output distributions:
//
//   - xor-mask oracles (Hadamard, query, Hadamard): measuring the input
//     register after the output collapses to f(x) yields y uniform over the
//     orthogonal complement of the preimage class of f(x), shifted to 0.
//   - period oracles (Hadamard, query, inverse QFT): the preimage class is
//     {x0, x0+d, x0+2d, ...}, and the outcome is j*2^n/d for j uniform in [0, d).
//
// Both distributions are computed from the oracle's truth table, so widths
// are limited to MaxWidth.
//
// Determinism: Fourier draws from the RNG set with WithSeed, WithRand or
// WithSeedPhrase; equal seeds give equal sample streams.
package sampler
