// SPDX-License-Identifier: MIT
// Package: oracle
//
// errors.go: sentinel errors for the oracle package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Refinements wrap their class: errors.Is(ErrZeroMask, ErrInvalidSecret) holds,
//     so callers may branch on the broad class or the precise cause.
//   • Implementations attach context with %w: "BuildPeriod: p=3: <sentinel>".

package oracle

import (
	"errors"
	"fmt"
)

// ErrInvalidSize indicates a register width n outside the supported domain (n < 1,
// or wider than the builder can represent).
var ErrInvalidSize = errors.New("oracle: invalid size")

// ErrInvalidSecret is the class of all secret validation failures.
var ErrInvalidSecret = errors.New("oracle: invalid secret")

// ErrMaskLength indicates a fixed mask whose width differs from n.
var ErrMaskLength = fmt.Errorf("%w: mask length differs from size", ErrInvalidSecret)

// ErrZeroMask indicates the all-zero mask, which yields a bijective, non-hiding oracle.
var ErrZeroMask = fmt.Errorf("%w: mask must be nonzero", ErrInvalidSecret)

// ErrInvalidPeriod indicates a fixed period that is not a positive power of two.
var ErrInvalidPeriod = fmt.Errorf("%w: period is not a power of two", ErrInvalidSecret)

// ErrPeriodTooLarge indicates a fixed period p with log2(p) > n.
var ErrPeriodTooLarge = fmt.Errorf("%w: period exceeds 2^n", ErrInvalidSecret)

// ErrNeedRandSource indicates a random secret was requested without an RNG
// (supply WithSeed, WithRand or WithSeedPhrase).
var ErrNeedRandSource = errors.New("oracle: rng is required")

// ErrInputWidth indicates an evaluation input whose width does not match the register.
var ErrInputWidth = errors.New("oracle: input width mismatch")

// ErrTooWide indicates an oracle too wide for the requested fast path
// (EvaluateUint needs all qubits in a uint64, TruthTable needs n <= MaxTableWidth).
var ErrTooWide = errors.New("oracle: register too wide")

// ErrNilOracle indicates a nil *Oracle receiver or argument.
var ErrNilOracle = errors.New("oracle: nil oracle")

// builderErrorf prefixes a sentinel with the method name and a formatted detail,
// preserving the sentinel for errors.Is.
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
