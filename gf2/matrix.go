// SPDX-License-Identifier: MIT

// Package gf2 - Matrix storage (one bitset per row) & safe accessors.
//
// Purpose:
//   - Provide row-granular storage so SwapRows is a pointer swap and XorRows
//     is a word-wise symmetric difference.
//   - Guarantee safety at the public surface: accessors return errors instead
//     of panicking.
//
// Complexity quicksheet:
//   - New: O(1); AppendRow: O(cols); At/Set: O(1); SwapRows: O(1);
//     XorRows: O(cols/64); Clone: O(rows*cols/64).

package gf2

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/oracles/bitvec"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"
	ctxSet       = "Set"
	ctxRow       = "Row"
	ctxAppendRow = "AppendRow"
	ctxSwapRows  = "SwapRows"
	ctxXorRows   = "XorRows"
	ctxMulVec    = "MulVec"
)

// ---------- formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
)

// matrixErrorf wraps a sentinel with method context and the offending indices.
func matrixErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, i, j, err)
}

// Matrix is a boolean matrix with a fixed column count and a growable row list.
// Row i, column j holds bit j of the i-th stored row.
type Matrix struct {
	cols int
	rows []*bitset.BitSet
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// New creates an empty matrix with the given number of columns.
// Errors: ErrBadShape if cols <= 0.
func New(cols int) (*Matrix, error) {
	if cols <= 0 {
		return nil, fmt.Errorf("New(%d): %w", cols, ErrBadShape)
	}

	return &Matrix{cols: cols}, nil
}

// FromVectors creates a cols-wide matrix whose rows are copies of vs, in order.
// Errors: ErrBadShape (cols <= 0), ErrDimensionMismatch (a vector of another width).
func FromVectors(cols int, vs []bitvec.Vector) (*Matrix, error) {
	m, err := New(cols)
	if err != nil {
		return nil, err
	}
	m.rows = make([]*bitset.BitSet, 0, len(vs))
	for _, v := range vs {
		if err = m.AppendRow(v); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Rows returns the number of stored rows.
func (m *Matrix) Rows() int { return len(m.rows) }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.cols }

// AppendRow copies v as a new last row.
// Errors: ErrDimensionMismatch if v.Len() != Cols().
func (m *Matrix) AppendRow(v bitvec.Vector) error {
	if v.Len() != m.cols {
		return matrixErrorf(ctxAppendRow, len(m.rows), v.Len(), ErrDimensionMismatch)
	}
	m.rows = append(m.rows, v.BitSet())

	return nil
}

// At reports entry (i,j).
func (m *Matrix) At(i, j int) (bool, error) {
	if !m.inRow(i) || !m.inCol(j) {
		return false, matrixErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return m.rows[i].Test(uint(j)), nil
}

// Set assigns entry (i,j).
func (m *Matrix) Set(i, j int, b bool) error {
	if !m.inRow(i) || !m.inCol(j) {
		return matrixErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	m.rows[i].SetTo(uint(j), b)

	return nil
}

// Row returns a copy of row i as a Vector.
func (m *Matrix) Row(i int) (bitvec.Vector, error) {
	if !m.inRow(i) {
		return bitvec.Vector{}, matrixErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return bitvec.FromBitSet(m.cols, m.rows[i])
}

// IsZeroRow reports whether row i has no set entry.
// This is the exact test used to discard rows after reduction.
func (m *Matrix) IsZeroRow(i int) (bool, error) {
	if !m.inRow(i) {
		return false, matrixErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return m.rows[i].None(), nil
}

// SwapRows exchanges rows i and j in O(1).
func (m *Matrix) SwapRows(i, j int) error {
	if !m.inRow(i) || !m.inRow(j) {
		return matrixErrorf(ctxSwapRows, i, j, ErrOutOfRange)
	}
	m.rows[i], m.rows[j] = m.rows[j], m.rows[i]

	return nil
}

// XorRows replaces row dst with row dst ⊕ row src.
// This is both addition and subtraction in GF(2).
func (m *Matrix) XorRows(dst, src int) error {
	if !m.inRow(dst) || !m.inRow(src) {
		return matrixErrorf(ctxXorRows, dst, src, ErrOutOfRange)
	}
	m.rows[dst].InPlaceSymmetricDifference(m.rows[src])

	return nil
}

// MulVec returns M·x over GF(2): entry i is the parity of row i AND x.
// A zero result means x lies in the null space of M.
// Errors: ErrDimensionMismatch if x.Len() != Cols().
func (m *Matrix) MulVec(x bitvec.Vector) (bitvec.Vector, error) {
	if x.Len() != m.cols {
		return bitvec.Vector{}, matrixErrorf(ctxMulVec, m.Rows(), x.Len(), ErrDimensionMismatch)
	}
	xs := x.BitSet()
	out := make([]bool, len(m.rows))
	for i, r := range m.rows {
		out[i] = r.IntersectionCardinality(xs)&1 == 1
	}

	return bitvec.FromBits(out), nil
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	cp := &Matrix{cols: m.cols, rows: make([]*bitset.BitSet, len(m.rows))}
	for i, r := range m.rows {
		cp.rows[i] = r.Clone()
	}

	return cp
}

// String renders one row per line, column 0 first: "[1 0 1]".
func (m *Matrix) String() string {
	if m == nil {
		return "<nil>"
	}
	var sb strings.Builder
	for _, r := range m.rows {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			if r.Test(uint(j)) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

func (m *Matrix) inRow(i int) bool { return i >= 0 && i < len(m.rows) }
func (m *Matrix) inCol(j int) bool { return j >= 0 && j < m.cols }
