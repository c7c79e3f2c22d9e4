// SPDX-License-Identifier: MIT

// Package oracle builds reversible black-box functions with an embedded secret
// and evaluates them classically.
//
// An Oracle is an immutable, ordered list of self-inverse gates (X, CX, CCX)
// over a qubit register laid out as
//
//	input  [0, n)    output [n, 2n)    secret [2n, 3n)  (XOR-mask oracles only)
//
// The package offers:
//
//   - BuildXorMask: f(x) = f(x ⊕ s) for a nonzero secret mask s, exactly 2-to-1
//     (Simon's problem).
//   - BuildPeriod: f depends only on the low log2(p) input bits for a
//     power-of-two period p (period finding).
//   - Apply / Evaluate / EvaluateUint / TruthTable: classical evaluation on
//     basis states; Inverse: the gate list reversed, as a KindInverse oracle
//     that reports no secret.
//
// Configuration follows the functional-options pattern:
//
//   - WithSeed / WithRand / WithSeedPhrase inject the random source used for
//     secret selection and obfuscation flips. Nothing reads a global RNG.
//   - WithoutObfuscation drops the constant output flips, which is handy for
//     golden tests that inspect raw truth tables.
//
// Secrets are requested with tagged choices: RandomMask()/FixedMask(s) and
// RandomPeriod()/FixedPeriod(p). A zero-like fixed value is validated, never
// mistaken for "absent".
//
// Errors are package-level sentinels; branch on them with errors.Is.
// Builders never panic; option constructors panic on meaningless input.
package oracle
