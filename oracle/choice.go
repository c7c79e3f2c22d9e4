// SPDX-License-Identifier: MIT

package oracle

import "github.com/katalvlaran/oracles/bitvec"

// MaskChoice selects the secret of an XOR-mask oracle: either drawn at random
// from the builder's RNG, or a caller-supplied value. The zero value means random.
type MaskChoice struct {
	fixed bool
	mask  bitvec.Vector
}

// RandomMask requests a mask drawn uniformly from the 2^n - 1 nonzero masks.
func RandomMask() MaskChoice { return MaskChoice{} }

// FixedMask requests the given mask. It is validated at build time.
func FixedMask(s bitvec.Vector) MaskChoice { return MaskChoice{fixed: true, mask: s} }

// Fixed returns the supplied mask and true, or false for RandomMask.
func (c MaskChoice) Fixed() (bitvec.Vector, bool) { return c.mask, c.fixed }

// PeriodChoice selects the secret of a period oracle. The zero value means random.
type PeriodChoice struct {
	fixed  bool
	period int
}

// RandomPeriod requests a period drawn uniformly from {2^0, 2^1, ..., 2^(n-1)}.
func RandomPeriod() PeriodChoice { return PeriodChoice{} }

// FixedPeriod requests the given period. It is validated at build time, so
// FixedPeriod(0) fails instead of silently meaning "random".
func FixedPeriod(p int) PeriodChoice { return PeriodChoice{fixed: true, period: p} }

// Fixed returns the supplied period and true, or false for RandomPeriod.
func (c PeriodChoice) Fixed() (int, bool) { return c.period, c.fixed }
