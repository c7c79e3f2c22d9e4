// SPDX-License-Identifier: MIT

// Package oracle - classical evaluation on basis states.
//
// Purpose:
//   - Apply runs the gate list on a full register state of any width.
//   - EvaluateUint is the fast path for registers that fit a uint64; it is what
//     samplers call 2^n times when tabulating f.
//
// Complexity quicksheet:
//   - Apply: O(gates + qubits/64); EvaluateUint: O(gates); TruthTable: O(2^n * gates).

package oracle

import "github.com/katalvlaran/oracles/bitvec"

// uintQubits is the widest register EvaluateUint can hold.
const uintQubits = 64

// Apply runs the oracle on a full basis state of Qubits() bits and returns the
// resulting state. The input is not mutated.
//
// Errors:
//   - ErrNilOracle for a nil receiver or an oracle not made by a builder.
//   - ErrInputWidth if state.Len() != Qubits().
func (o *Oracle) Apply(state bitvec.Vector) (bitvec.Vector, error) {
	if err := o.usable(MethodApply); err != nil {
		return bitvec.Vector{}, err
	}
	q := o.Qubits()
	if state.Len() != q {
		return bitvec.Vector{}, builderErrorf(MethodApply, ErrInputWidth, "state width %d, want %d", state.Len(), q)
	}

	b := state.BitSet()
	for _, g := range o.gates {
		switch g.NumControls() {
		case 2:
			if !b.Test(uint(g.Controls[0])) || !b.Test(uint(g.Controls[1])) {
				continue
			}
		case 1:
			if !b.Test(uint(g.Controls[0])) {
				continue
			}
		}
		b.Flip(uint(g.Target))
	}

	return bitvec.FromBitSet(q, b)
}

// Evaluate returns f(x): the output register after applying the oracle to
// input = x with every other qubit 0.
//
// Errors:
//   - ErrInputWidth if x.Len() != Width().
func (o *Oracle) Evaluate(x bitvec.Vector) (bitvec.Vector, error) {
	if err := o.usable(MethodEvaluate); err != nil {
		return bitvec.Vector{}, err
	}
	if x.Len() != o.n {
		return bitvec.Vector{}, builderErrorf(MethodEvaluate, ErrInputWidth, "input width %d, want %d", x.Len(), o.n)
	}

	state := make([]bool, o.Qubits())
	in := o.Input()
	for _, i := range x.Indices() {
		state[in.Qubit(i)] = true
	}
	res, err := o.Apply(bitvec.FromBits(state))
	if err != nil {
		return bitvec.Vector{}, err
	}

	out := o.Output()
	bits := make([]bool, out.Size)
	for i := range bits {
		bits[i] = res.Bit(out.Qubit(i))
	}

	return bitvec.FromBits(bits), nil
}

// EvaluateUint is Evaluate on integers (bit i ↔ 2^i) for oracles whose full
// register fits in 64 bits.
//
// Errors:
//   - ErrTooWide if Qubits() > 64.
//   - ErrInputWidth if x >= 2^n.
func (o *Oracle) EvaluateUint(x uint64) (uint64, error) {
	if err := o.usable(MethodEvaluate); err != nil {
		return 0, err
	}
	if o.Qubits() > uintQubits {
		return 0, builderErrorf(MethodEvaluate, ErrTooWide, "qubits=%d > %d", o.Qubits(), uintQubits)
	}
	if x>>uint(o.n) != 0 {
		return 0, builderErrorf(MethodEvaluate, ErrInputWidth, "x=%#x has bits above n=%d", x, o.n)
	}

	return o.evalUint(x), nil
}

// TruthTable returns f(x) for every x in [0, 2^n), indexed by x.
//
// Errors:
//   - ErrTooWide if Width() > MaxTableWidth.
func (o *Oracle) TruthTable() ([]uint64, error) {
	if err := o.usable(MethodTruthTable); err != nil {
		return nil, err
	}
	if o.n > MaxTableWidth {
		return nil, builderErrorf(MethodTruthTable, ErrTooWide, "n=%d > %d", o.n, MaxTableWidth)
	}

	size := uint64(1) << uint(o.n)
	table := make([]uint64, size)
	for xv := uint64(0); xv < size; xv++ {
		table[xv] = o.evalUint(xv)
	}

	return table, nil
}

// evalUint runs the gates on a uint64 state; callers guarantee Qubits() <= 64
// and x < 2^n.
func (o *Oracle) evalUint(x uint64) uint64 {
	state := x // input occupies the low n bits; all ancillas start at 0
	for _, g := range o.gates {
		switch g.NumControls() {
		case 2:
			if state>>uint(g.Controls[0])&1 == 0 || state>>uint(g.Controls[1])&1 == 0 {
				continue
			}
		case 1:
			if state>>uint(g.Controls[0])&1 == 0 {
				continue
			}
		}
		state ^= uint64(1) << uint(g.Target)
	}

	out := o.Output()
	mask := uint64(1)<<uint(out.Size) - 1

	return (state >> uint(out.Offset)) & mask
}
