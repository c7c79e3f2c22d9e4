// SPDX-License-Identifier: MIT

// Package simon - mask recovery from samples.
//
// Implementation:
//   - Stage 1: validate widths; drop zero vectors and duplicates.
//   - Stage 2: gf2.Reduce to echelon form with explicit pivot columns.
//   - Stage 3: rank n-1 leaves exactly one free column; the null-space basis
//     vector owning it (free bit 1, pivots back-substituted bottom-up) is s.
//   - Stage 4: check s against every input sample before returning it.
//
// Complexity:
//   - Time O(k * n * n/64) for k distinct samples, Space O(k * n/64).

package simon

import (
	"fmt"

	"github.com/katalvlaran/oracles/bitvec"
	"github.com/katalvlaran/oracles/gf2"
)

const opSolve = "Solve"

// Solve returns the unique nonzero s with v·s = 0 for every sample v.
//
// Samples may repeat and may include the zero vector. Extra independent
// constraints beyond n-1 are not allowed: rank n means no nonzero solution.
//
// Errors: ErrInvalidSize, ErrSampleWidth, ErrInsufficientSamples,
// ErrDegenerateSystem. Solve never returns a guessed mask.
func Solve(samples []bitvec.Vector, n int) (bitvec.Vector, error) {
	if n < 1 {
		return bitvec.Vector{}, fmt.Errorf("%s: n=%d: %w", opSolve, n, ErrInvalidSize)
	}

	seen := make(map[string]struct{}, len(samples))
	rows := make([]bitvec.Vector, 0, len(samples))
	for i, v := range samples {
		if v.Len() != n {
			return bitvec.Vector{}, fmt.Errorf("%s: sample %d has width %d, want %d: %w",
				opSolve, i, v.Len(), n, ErrSampleWidth)
		}
		if v.IsZero() {
			continue
		}
		key := v.String()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		rows = append(rows, v)
	}

	m, err := gf2.FromVectors(n, rows)
	if err != nil {
		return bitvec.Vector{}, fmt.Errorf("%s: %w", opSolve, err)
	}
	e, err := gf2.Reduce(m)
	if err != nil {
		return bitvec.Vector{}, fmt.Errorf("%s: %w", opSolve, err)
	}

	switch rank := e.Rank(); {
	case rank == n:
		return bitvec.Vector{}, fmt.Errorf("%s: rank %d of %d: %w", opSolve, rank, n, ErrDegenerateSystem)
	case rank < n-1:
		return bitvec.Vector{}, fmt.Errorf("%s: rank %d, need %d: %w", opSolve, rank, n-1, ErrInsufficientSamples)
	}

	basis, err := gf2.NullSpace(e)
	if err != nil {
		return bitvec.Vector{}, fmt.Errorf("%s: %w", opSolve, err)
	}
	s := basis[0]

	if s.IsZero() {
		return bitvec.Vector{}, fmt.Errorf("%s: zero solution: %w", opSolve, ErrDegenerateSystem)
	}
	for i, v := range samples {
		if !v.Orthogonal(s) {
			return bitvec.Vector{}, fmt.Errorf("%s: sample %d not orthogonal to %s: %w",
				opSolve, i, s, ErrDegenerateSystem)
		}
	}

	return s, nil
}
