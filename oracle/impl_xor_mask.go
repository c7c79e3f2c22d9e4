// SPDX-License-Identifier: MIT
// Package: oracle
//
// impl_xor_mask.go - BuildXorMask(n, choice): the Simon's-problem oracle.
//
// Construction (3n qubits: input, output, secret):
//  1. X(secret[i]) for every i with s[i] = 1 to load s into the secret register.
//  2. CX(input[i], output[i]) for all i, so output = x.
//  3. CCX(input[msb], secret[i], output[i]), so output ^= s when x[msb] = 1,
//     for every i with s[i] = 1; msb is the lowest set bit of s.
//  4. X(output[i]) for every i % ObfuscationStride == 0 (unless WithoutObfuscation).
//
// Resulting map: f(x) = x ⊕ (x[msb]·s) ⊕ c for the constant c of step 4.
// Since s[msb] = 1, exactly one of x, x⊕s has x[msb] = 0 and both map to it
// (⊕ c): f is exactly 2-to-1 with f(x) = f(y) iff y ∈ {x, x⊕s}.
//
// Contract:
//   - n in [MinWidth, MaxMaskWidth] (else ErrInvalidSize).
//   - Fixed mask: width n (else ErrMaskLength) and nonzero (else ErrZeroMask).
//   - Random mask: cfg.rng required (else ErrNeedRandSource); uniform over the
//     2^n - 1 nonzero masks by rejecting the zero draw.
//
// Complexity:
//   - Time O(n) gates (+ expected O(n) RNG words for a random mask); Space O(n).

package oracle

import (
	"math/rand"

	"github.com/katalvlaran/oracles/bitvec"
)

// BuildXorMask returns an XOR-mask oracle over n-bit inputs. The embedded mask
// is available from Oracle.Mask().
func BuildXorMask(n int, choice MaskChoice, opts ...Option) (*Oracle, error) {
	if err := validateWidth(MethodBuildXorMask, n, MaxMaskWidth); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)

	// 1) Resolve the secret.
	s, fixed := choice.Fixed()
	if fixed {
		if s.Len() != n {
			return nil, builderErrorf(MethodBuildXorMask, ErrMaskLength, "len(s)=%d, n=%d", s.Len(), n)
		}
		if s.IsZero() {
			return nil, builderErrorf(MethodBuildXorMask, ErrZeroMask, "s=%s", s)
		}
	} else {
		if cfg.rng == nil {
			return nil, builderErrorf(MethodBuildXorMask, ErrNeedRandSource, "random mask")
		}
		s = randomNonzeroMask(n, cfg.rng)
	}

	// 2) Emit gates in a stable, documented order.
	regs := newRegisters(n, true)
	in, out, sec := regs[0], regs[1], regs[2]
	msb, _ := s.LowestSet() // s != 0 here
	ones := s.Indices()

	gates := make([]Gate, 0, 2*len(ones)+n+n/ObfuscationStride+1)
	for _, i := range ones {
		gates = append(gates, gateX(sec.Qubit(i)))
	}
	for i := 0; i < n; i++ {
		gates = append(gates, gateCX(in.Qubit(i), out.Qubit(i)))
	}
	for _, i := range ones {
		gates = append(gates, gateCCX(in.Qubit(msb), sec.Qubit(i), out.Qubit(i)))
	}
	if cfg.obfuscate {
		for i := 0; i < n; i += ObfuscationStride {
			gates = append(gates, gateX(out.Qubit(i)))
		}
	}

	return &Oracle{
		kind:      KindXorMask,
		n:         n,
		registers: regs,
		gates:     gates,
		mask:      s,
	}, nil
}

// randomNonzeroMask draws n uniform bits until the result is nonzero.
func randomNonzeroMask(n int, rng *rand.Rand) bitvec.Vector {
	bits := make([]bool, n)
	for {
		nonzero := false
		var word uint64
		for i := 0; i < n; i++ {
			if i%64 == 0 {
				word = rng.Uint64()
			}
			bits[i] = word&1 == 1
			word >>= 1
			nonzero = nonzero || bits[i]
		}
		if nonzero {
			return bitvec.FromBits(bits)
		}
	}
}
