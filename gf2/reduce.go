// SPDX-License-Identifier: MIT

// Package gf2 - forward elimination to row-echelon form.
//
// Purpose:
//   - Turn an arbitrary sample matrix into row-echelon form with XOR-only
//     row operations and report which column each surviving row pivots on.
//   - Remove all-zero rows with an exact test so a sparse but legitimate row
//     is never mistaken for an empty one.
//
// Notes:
//   - Pivot columns are returned explicitly. Solvers MUST use them instead of
//     scanning the diagonal: once a column without a pivot is skipped, row i no
//     longer pivots on column i.

package gf2

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

const opReduce = "Reduce"

// Echelon is the result of Reduce.
//   - Matrix holds only non-zero rows, in echelon order.
//   - Pivots[i] is the leading column of row i; Pivots is strictly increasing.
type Echelon struct {
	Matrix *Matrix
	Pivots []int
}

// Rank returns the number of non-zero rows, i.e. the GF(2) rank of the input.
func (e Echelon) Rank() int { return len(e.Pivots) }

// FreeColumns returns the columns that carry no pivot, ascending.
// Their count is Cols() - Rank(): the dimension of the null space.
func (e Echelon) FreeColumns() []int {
	if e.Matrix == nil {
		return nil
	}
	free := make([]int, 0, e.Matrix.Cols()-len(e.Pivots))
	next := 0
	for c := 0; c < e.Matrix.Cols(); c++ {
		if next < len(e.Pivots) && e.Pivots[next] == c {
			next++
			continue
		}
		free = append(free, c)
	}

	return free
}

// Reduce returns the row-echelon form of m. The input is not mutated.
//
// Implementation:
//   - Stage 1: clone m; curRow = curCol = 0.
//   - Stage 2: while curRow < rows && curCol < cols:
//     if entry (curRow,curCol) is 0, swap in the first lower row with a 1 in
//     curCol; if none exists advance curCol only and retry.
//     XOR the pivot row into every lower row with a 1 in curCol, record the
//     pivot, advance curRow (curCol follows: the column is now clear below).
//   - Stage 3: keep exactly the rows that are not all-zero.
//
// Behavior highlights:
//   - Deterministic: fixed scan orders, first-found pivot row.
//   - Rows beyond the last pivot are zero by construction; Stage 3 still
//     applies the exact zero-row test rather than relying on position.
//
// Errors:
//   - ErrNilMatrix for a nil input.
//
// Complexity:
//   - Time O(rows * min(rows,cols) * cols/64), Space O(rows*cols/64).
func Reduce(m *Matrix) (Echelon, error) {
	if m == nil {
		return Echelon{}, fmt.Errorf("%s: %w", opReduce, ErrNilMatrix)
	}

	// Stage 1: work on a copy; the caller's matrix stays intact.
	w := m.Clone()
	rows, cols := w.Rows(), w.Cols()
	pivotOf := make([]int, rows) // pivot column per row index, -1 = none
	for i := range pivotOf {
		pivotOf[i] = -1 // no pivot until Stage 2 assigns one
	}

	// Stage 2: forward elimination.
	curRow, curCol := 0, 0
	for curRow < rows && curCol < cols {
		if !w.rows[curRow].Test(uint(curCol)) {
			swapWith := -1 // first lower row with a 1 in curCol
			for j := curRow + 1; j < rows; j++ {
				if w.rows[j].Test(uint(curCol)) {
					swapWith = j
					break // first-found row
				}
			}
			if swapWith < 0 {
				curCol++ // column is clear from curRow down; curRow stays
				continue
			}
			w.rows[curRow], w.rows[swapWith] = w.rows[swapWith], w.rows[curRow] // O(1) pointer swap
		}

		// Eliminate curCol from every subsequent row.
		for j := curRow + 1; j < rows; j++ {
			if w.rows[j].Test(uint(curCol)) {
				w.rows[j].InPlaceSymmetricDifference(w.rows[curRow])
			}
		}

		pivotOf[curRow] = curCol // record before advancing
		curRow++
		curCol++
	}

	// Stage 3: keep exactly the non-zero rows, pivots aligned with them.
	out := &Matrix{cols: cols, rows: make([]*bitset.BitSet, 0, curRow)}
	pivots := make([]int, 0, curRow)
	for i, r := range w.rows {
		if r.None() {
			continue // exact all-zero test
		}
		out.rows = append(out.rows, r)      // rows are owned by the clone
		pivots = append(pivots, pivotOf[i]) // strictly increasing by construction
	}

	return Echelon{Matrix: out, Pivots: pivots}, nil
}

// Rank returns the GF(2) rank of m.
// Complexity: as Reduce.
func Rank(m *Matrix) (int, error) {
	e, err := Reduce(m)
	if err != nil {
		return 0, err
	}

	return e.Rank(), nil
}
