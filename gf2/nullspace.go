// SPDX-License-Identifier: MIT

package gf2

import (
	"fmt"

	"github.com/katalvlaran/oracles/bitvec"
)

const opNullSpace = "NullSpace"

// NullSpace returns a basis of {x : M·x = 0} for the matrix reduced in e,
// one vector per free column.
//
// Implementation:
//   - For each free column f: set x[f] = 1 and every other free column to 0.
//   - Walk rows bottom-up; row i fixes its pivot p as the parity of
//     row_i AND x over the columns right of p.
//
// The basis vectors are independent (each owns one free column), so uniform
// random subsets of them are uniform over the null space.
//
// Errors:
//   - ErrNilMatrix if e.Matrix is nil.
//
// Complexity:
//   - Time O(free * rank * cols/64), Space O(free * cols/64).
func NullSpace(e Echelon) ([]bitvec.Vector, error) {
	if e.Matrix == nil {
		return nil, fmt.Errorf("%s: %w", opNullSpace, ErrNilMatrix)
	}
	cols := e.Matrix.Cols()
	free := e.FreeColumns()
	basis := make([]bitvec.Vector, 0, len(free))

	for _, f := range free {
		x := make([]bool, cols)
		x[f] = true
		for i := len(e.Pivots) - 1; i >= 0; i-- {
			p := e.Pivots[i]
			row := e.Matrix.rows[i]
			parity := false
			for j, ok := row.NextSet(uint(p + 1)); ok && int(j) < cols; j, ok = row.NextSet(j + 1) {
				if x[j] {
					parity = !parity
				}
			}
			x[p] = parity
		}
		basis = append(basis, bitvec.FromBits(x))
	}

	return basis, nil
}
