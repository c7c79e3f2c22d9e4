// SPDX-License-Identifier: MIT

package sampler

import "errors"

// ErrWidthTooLarge indicates an oracle wider than MaxWidth.
var ErrWidthTooLarge = errors.New("sampler: oracle too wide to tabulate")

// ErrBadShots indicates a shot count below one.
var ErrBadShots = errors.New("sampler: shots must be positive")

// ErrNotPeriodic indicates a period oracle whose preimage classes are not
// arithmetic progressions covering the input ring.
var ErrNotPeriodic = errors.New("sampler: preimage class is not periodic")

// ErrNotAffine indicates an xor-mask oracle whose preimage class is not a
// coset of a linear subspace.
var ErrNotAffine = errors.New("sampler: preimage class is not affine")

// ErrUnknownKind indicates an oracle kind without an interference experiment.
var ErrUnknownKind = errors.New("sampler: unknown oracle kind")

// ErrNeedRandSource indicates a Fourier collector built without an RNG.
var ErrNeedRandSource = errors.New("sampler: rng is required")
