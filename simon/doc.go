// SPDX-License-Identifier: MIT

// Package simon recovers the hidden XOR mask of an oracle with
// f(x) = f(x ⊕ s) from measurement outcomes of Simon's experiment.
//
// Every outcome y satisfies y·s = 0 over GF(2). Once n-1 independent
// outcomes are known, s is the unique nonzero vector of their null space.
//
//   - Solve is pure: samples in, mask out, or a typed failure.
//   - Recover drives a sampler.Collector, asking for more shots while the
//     samples are insufficient.
//
// Errors:
//
//	ErrInvalidSize         - n < 1.
//	ErrSampleWidth         - a sample's width differs from n.
//	ErrInsufficientSamples - fewer than n-1 independent samples; resample.
//	ErrDegenerateSystem    - samples admit only the zero solution.
//	ErrWrongKind           - Recover was given a non xor-mask oracle.
package simon
