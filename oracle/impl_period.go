// SPDX-License-Identifier: MIT
// Package: oracle
//
// impl_period.go - BuildPeriod(n, choice): the period-finding oracle.
//
// Construction (2n qubits: input, output):
//  1. CX(input[i], output[i]) for i < log2(p) to copy the residue x mod p.
//  2. X(output[i]) for each i where the RNG draws 1 as obfuscation flips
//     (skipped without an RNG or WithoutObfuscation).
//
// Resulting map: f(x) = (x mod p) ⊕ c for a constant c, so f is constant on
// every residue class x + pZ and distinct across classes. Higher output bits
// are constants and leak nothing about p beyond what c already fixes.
//
// Contract:
//   - n in [MinWidth, MaxPeriodWidth] (else ErrInvalidSize).
//   - Fixed period: a positive power of two (else ErrInvalidPeriod) with
//     log2(p) <= n (else ErrPeriodTooLarge). p = 1 and p = 2^n are admissible.
//   - Random period: cfg.rng required (else ErrNeedRandSource); uniform over
//     {2^0, ..., 2^(n-1)}, so p = 1 is reachable.
//
// Complexity:
//   - Time O(n); Space O(n).

package oracle

// BuildPeriod returns a period oracle over n-bit inputs. The embedded period is
// available from Oracle.Period().
func BuildPeriod(n int, choice PeriodChoice, opts ...Option) (*Oracle, error) {
	if err := validateWidth(MethodBuildPeriod, n, MaxPeriodWidth); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)

	// 1) Resolve the secret.
	p, fixed := choice.Fixed()
	if fixed {
		if !isPowerOfTwo(p) {
			return nil, builderErrorf(MethodBuildPeriod, ErrInvalidPeriod, "p=%d", p)
		}
		if log2(p) > n {
			return nil, builderErrorf(MethodBuildPeriod, ErrPeriodTooLarge, "p=%d, n=%d", p, n)
		}
	} else {
		if cfg.rng == nil {
			return nil, builderErrorf(MethodBuildPeriod, ErrNeedRandSource, "random period")
		}
		p = 1 << uint(cfg.rng.Intn(n))
	}

	// 2) Emit gates.
	regs := newRegisters(n, false)
	in, out := regs[0], regs[1]
	k := log2(p)

	gates := make([]Gate, 0, k+n)
	for i := 0; i < k; i++ {
		gates = append(gates, gateCX(in.Qubit(i), out.Qubit(i)))
	}
	if cfg.obfuscate && cfg.rng != nil {
		for i := 0; i < n; i++ {
			if cfg.rng.Intn(2) == 1 {
				gates = append(gates, gateX(out.Qubit(i)))
			}
		}
	}

	return &Oracle{
		kind:      KindPeriod,
		n:         n,
		registers: regs,
		gates:     gates,
		period:    p,
	}, nil
}
