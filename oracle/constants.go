// SPDX-License-Identifier: MIT

package oracle

// Method name tokens used as error prefixes.
const (
	MethodBuildXorMask = "BuildXorMask"
	MethodBuildPeriod  = "BuildPeriod"
	MethodApply        = "Apply"
	MethodEvaluate     = "Evaluate"
	MethodTruthTable   = "TruthTable"
)

// MinWidth is the smallest register width n for every builder.
const MinWidth = 1

// MaxMaskWidth bounds n for XOR-mask oracles (3n qubits of gate indices).
const MaxMaskWidth = 1 << 16

// MaxPeriodWidth bounds n for period oracles so that every admissible period,
// up to 2^n, fits an int on 64-bit platforms.
const MaxPeriodWidth = 62

// MaxTableWidth bounds n for TruthTable (2^n entries).
const MaxTableWidth = 20

// ObfuscationStride selects the output bits flipped by XOR-mask oracles: every
// output bit i with i % ObfuscationStride == 0. The mask is public and constant,
// so it cannot affect the 2-to-1 structure.
const ObfuscationStride = 3

// Register names.
const (
	RegInput  = "input"
	RegOutput = "output"
	RegSecret = "secret"
)
