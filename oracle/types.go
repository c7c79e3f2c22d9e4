// SPDX-License-Identifier: MIT

// Package oracle - core types: Kind, Op, Gate, Register, Oracle.
//
// Design:
//   - Oracle is immutable after construction; accessors return copies.
//   - Every gate is its own inverse, so the reversed gate list is the inverse map.

package oracle

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/oracles/bitvec"
)

// Kind tells which hidden structure an oracle embeds, and therefore which
// interference experiment reveals it.
type Kind int

const (
	// KindXorMask oracles satisfy f(x) = f(x ⊕ s) and are probed with Hadamard transforms.
	KindXorMask Kind = iota + 1
	// KindPeriod oracles are constant on residues mod p and are probed with an inverse QFT.
	KindPeriod
	// KindInverse marks a reversed gate list. It embeds no secret: evaluated
	// from zero ancillas it need not hide any structure.
	KindInverse
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindXorMask:
		return "xor-mask"
	case KindPeriod:
		return "period"
	case KindInverse:
		return "inverse"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Op enumerates the gate set.
type Op uint8

const (
	// OpX flips the target.
	OpX Op = iota + 1
	// OpCX flips the target when the control is 1.
	OpCX
	// OpCCX flips the target when both controls are 1 (Toffoli).
	OpCCX
)

// String implements fmt.Stringer.
func (o Op) String() string {
	switch o {
	case OpX:
		return "x"
	case OpCX:
		return "cx"
	case OpCCX:
		return "ccx"
	default:
		return fmt.Sprintf("Op(%d)", uint8(o))
	}
}

// Gate is one reversible operation on absolute qubit indices.
// Controls holds NumControls() meaningful entries.
type Gate struct {
	Op       Op
	Controls [2]int
	Target   int
}

// NumControls returns 0, 1 or 2 for X, CX, CCX.
func (g Gate) NumControls() int {
	switch g.Op {
	case OpCX:
		return 1
	case OpCCX:
		return 2
	default:
		return 0
	}
}

// String renders "ccx(0,8→4)".
func (g Gate) String() string {
	switch g.NumControls() {
	case 1:
		return fmt.Sprintf("%s(%d→%d)", g.Op, g.Controls[0], g.Target)
	case 2:
		return fmt.Sprintf("%s(%d,%d→%d)", g.Op, g.Controls[0], g.Controls[1], g.Target)
	default:
		return fmt.Sprintf("%s(%d)", g.Op, g.Target)
	}
}

func gateX(t int) Gate { return Gate{Op: OpX, Target: t} }

func gateCX(c, t int) Gate { return Gate{Op: OpCX, Controls: [2]int{c, 0}, Target: t} }

func gateCCX(c0, c1, t int) Gate { return Gate{Op: OpCCX, Controls: [2]int{c0, c1}, Target: t} }

// Register is a named contiguous qubit range [Offset, Offset+Size).
type Register struct {
	Name   string
	Offset int
	Size   int
}

// Qubit returns the absolute index of the register's i-th qubit.
func (r Register) Qubit(i int) int { return r.Offset + i }

// Oracle is an immutable reversible function with an embedded secret.
type Oracle struct {
	kind      Kind
	n         int
	registers []Register
	gates     []Gate
	mask      bitvec.Vector
	period    int
}

// Kind returns the hidden-structure family.
func (o *Oracle) Kind() Kind { return o.kind }

// Width returns n, the input (and output) register width.
func (o *Oracle) Width() int { return o.n }

// Qubits returns the total register width (2n, or 3n with a secret register).
func (o *Oracle) Qubits() int {
	total := 0
	for _, r := range o.registers {
		total += r.Size
	}

	return total
}

// Registers returns a copy of the register layout, input first.
func (o *Oracle) Registers() []Register {
	return append([]Register(nil), o.registers...)
}

// Input returns the input register; the zero Register for an oracle not made by a builder.
func (o *Oracle) Input() Register {
	if len(o.registers) < 1 {
		return Register{}
	}
	return o.registers[0]
}

// Output returns the output register; the zero Register for an oracle not made by a builder.
func (o *Oracle) Output() Register {
	if len(o.registers) < 2 {
		return Register{}
	}
	return o.registers[1]
}

// usable reports ErrNilOracle for a nil receiver or an oracle without the
// input/output layout a builder lays down (e.g. &Oracle{}).
func (o *Oracle) usable(method string) error {
	if o == nil {
		return fmt.Errorf("%s: %w", method, ErrNilOracle)
	}
	if len(o.registers) < 2 {
		return builderErrorf(method, ErrNilOracle, "oracle has no register layout")
	}

	return nil
}

// Gates returns a copy of the gate list in application order.
func (o *Oracle) Gates() []Gate {
	return append([]Gate(nil), o.gates...)
}

// Mask returns the embedded mask for KindXorMask oracles.
func (o *Oracle) Mask() (bitvec.Vector, bool) {
	return o.mask, o.kind == KindXorMask
}

// Period returns the embedded period for KindPeriod oracles.
func (o *Oracle) Period() (int, bool) {
	return o.period, o.kind == KindPeriod
}

// Inverse returns the oracle whose gate list is reversed. Applying o then
// o.Inverse() is the identity on every basis state.
//
// The result has KindInverse and reports no secret: with the secret-loading
// gates moved to the end, it no longer satisfies the invariant of o's kind.
// Samplers and solvers reject it.
func (o *Oracle) Inverse() *Oracle {
	if o == nil {
		return nil
	}
	inv := &Oracle{
		kind:      KindInverse,
		n:         o.n,
		registers: o.Registers(),
		gates:     make([]Gate, len(o.gates)),
	}
	for i, g := range o.gates {
		inv.gates[len(o.gates)-1-i] = g
	}

	return inv
}

// String renders a one-line summary followed by the gate list.
func (o *Oracle) String() string {
	if o == nil {
		return "<nil>"
	}
	parts := make([]string, len(o.gates))
	for i, g := range o.gates {
		parts[i] = g.String()
	}

	return fmt.Sprintf("oracle(%s, n=%d, qubits=%d): %s", o.kind, o.n, o.Qubits(), strings.Join(parts, " "))
}

// newRegisters lays out input, output and optionally secret registers of width n.
func newRegisters(n int, withSecret bool) []Register {
	regs := []Register{
		{Name: RegInput, Offset: 0, Size: n},
		{Name: RegOutput, Offset: n, Size: n},
	}
	if withSecret {
		regs = append(regs, Register{Name: RegSecret, Offset: 2 * n, Size: n})
	}

	return regs
}
