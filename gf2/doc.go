// SPDX-License-Identifier: MIT

// Package gf2 offers a boolean matrix over the two-element field GF(2) and
// the forward row reduction the hidden-mask solver is built on.
//
// The package provides:
//
//   - Matrix: a rows×cols bit matrix with XOR-only row operations
//     (SwapRows, XorRows); no scaling exists or is needed in GF(2).
//   - Reduce: row-echelon reduction returning the reduced rows together
//     with the pivot column of each row, all-zero rows removed.
//   - Rank, MulVec: the small helpers solvers use to check a candidate
//     against the original system.
//
// Rows are stored on github.com/bits-and-blooms/bitset, so a row XOR costs
// O(cols/64) word operations.
//
// All functions validate shapes and return the sentinels in errors.go; no
// function panics on user input.
package gf2
