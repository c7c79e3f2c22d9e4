// SPDX-License-Identifier: MIT
// Package bitvec: sentinel error set.

package bitvec

import "errors"

var (
	// ErrMalformed is returned by Parse when the input contains a rune other than '0' or '1'.
	ErrMalformed = errors.New("bitvec: malformed bit string")

	// ErrWidthMismatch indicates two operands of different widths.
	ErrWidthMismatch = errors.New("bitvec: width mismatch")

	// ErrBadWidth indicates a negative width, or a width that does not fit the requested encoding.
	ErrBadWidth = errors.New("bitvec: invalid width")
)
