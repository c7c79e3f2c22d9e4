// SPDX-License-Identifier: MIT

package simon

import "errors"

var (
	// ErrInvalidSize indicates n < 1.
	ErrInvalidSize = errors.New("simon: invalid size")

	// ErrSampleWidth indicates a sample whose width differs from n.
	ErrSampleWidth = errors.New("simon: sample width mismatch")

	// ErrInsufficientSamples indicates the samples span fewer than n-1
	// independent constraints. The caller should collect more.
	ErrInsufficientSamples = errors.New("simon: insufficient independent samples")

	// ErrDegenerateSystem indicates samples of full rank n, whose only common
	// orthogonal vector is zero. They cannot come from a nonzero mask.
	ErrDegenerateSystem = errors.New("simon: degenerate system")

	// ErrWrongKind indicates an oracle that does not embed an XOR mask.
	ErrWrongKind = errors.New("simon: oracle is not an xor-mask oracle")
)
