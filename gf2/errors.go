// SPDX-License-Identifier: MIT
// Package gf2: sentinel error set.
// All functions MUST return these sentinels (optionally wrapped with %w) and
// tests MUST check them via errors.Is.

package gf2

import "errors"

var (
	// ErrBadShape is returned when a requested column count is non-positive.
	ErrBadShape = errors.New("gf2: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("gf2: index out of range")

	// ErrDimensionMismatch indicates a row or vector whose width differs from Cols().
	ErrDimensionMismatch = errors.New("gf2: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Matrix was passed.
	ErrNilMatrix = errors.New("gf2: nil matrix")
)
