// SPDX-License-Identifier: MIT

// Package bitvec provides Vector, a fixed-width immutable bit-vector used as
// the common currency between oracle builders, samplers and GF(2) solvers.
//
// Bit i of a Vector is register position i. The textual form is MSB-first,
// the same order in which measurement results are printed:
//
//	Parse("0101") → bits {0, 2} set, Len() == 4
//
// Storage is backed by github.com/bits-and-blooms/bitset; every operation
// returns a fresh Vector and never mutates its receiver, so a Vector can be
// shared freely between goroutines.
package bitvec
