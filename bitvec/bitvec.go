// SPDX-License-Identifier: MIT

// Package bitvec - Vector storage, constructors and GF(2) primitives.
//
// Purpose:
//   - Keep a single immutable representation of n-bit register contents.
//   - Expose the two GF(2) primitives every solver needs: XOR (addition) and
//     the parity dot product.
//
// Complexity quicksheet:
//   - New/Parse/String: O(n); Bit: O(1); Xor/Dot/Equal: O(n/64).

package bitvec

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Formatting literals.
const (
	_zero = '0'
	_one  = '1'
)

// maxUintWidth is the widest Vector that round-trips through a uint64.
const maxUintWidth = 64

// Vector is an immutable n-bit vector. The zero value is the empty vector (n = 0).
type Vector struct {
	n    uint
	bits *bitset.BitSet
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = Vector{}

// New returns the all-zero vector of width n.
// Errors: ErrBadWidth if n < 0.
func New(n int) (Vector, error) {
	if n < 0 {
		return Vector{}, fmt.Errorf("New(%d): %w", n, ErrBadWidth)
	}

	return Vector{n: uint(n), bits: bitset.New(uint(n))}, nil
}

// FromBits builds a vector whose bit i equals bits[i].
// Complexity: O(len(bits)).
func FromBits(bits []bool) Vector {
	b := bitset.New(uint(len(bits)))
	for i, on := range bits {
		if on {
			b.Set(uint(i))
		}
	}

	return Vector{n: uint(len(bits)), bits: b}
}

// FromUint64 builds an n-bit vector from the low n bits of x (bit i ↔ 2^i).
// Errors: ErrBadWidth if n < 0 or n > 64.
func FromUint64(n int, x uint64) (Vector, error) {
	if n < 0 || n > maxUintWidth {
		return Vector{}, fmt.Errorf("FromUint64(%d): %w", n, ErrBadWidth)
	}
	if n < maxUintWidth {
		x &= (uint64(1) << uint(n)) - 1
	}
	b := bitset.New(uint(n))
	for i := 0; i < n; i++ {
		if x&(uint64(1)<<uint(i)) != 0 {
			b.Set(uint(i))
		}
	}

	return Vector{n: uint(n), bits: b}, nil
}

// FromBitSet copies the low n bits of b into a new vector. A nil b yields zero.
// Errors: ErrBadWidth if n < 0.
func FromBitSet(n int, b *bitset.BitSet) (Vector, error) {
	v, err := New(n)
	if err != nil {
		return Vector{}, err
	}
	if b == nil {
		return v, nil
	}
	for i, ok := b.NextSet(0); ok && i < v.n; i, ok = b.NextSet(i + 1) {
		v.bits.Set(i)
	}

	return v, nil
}

// Parse reads an MSB-first bit string: the last rune is bit 0.
// Surrounding whitespace is ignored; an empty string yields the empty vector.
//
// Errors:
//   - ErrMalformed for any rune other than '0' or '1'.
func Parse(s string) (Vector, error) {
	s = strings.TrimSpace(s)
	n := len(s)
	b := bitset.New(uint(n))
	for k := 0; k < n; k++ {
		switch s[k] {
		case _zero:
		case _one:
			b.Set(uint(n - 1 - k))
		default:
			return Vector{}, fmt.Errorf("Parse(%q): position %d: %w", s, k, ErrMalformed)
		}
	}

	return Vector{n: uint(n), bits: b}, nil
}

// MustParse is Parse for literals known to be valid; it panics on error.
func MustParse(s string) Vector {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return v
}

// Len returns the width n.
func (v Vector) Len() int { return int(v.n) }

// Bit reports whether bit i is set. Out-of-range indices read as 0.
func (v Vector) Bit(i int) bool {
	if i < 0 || uint(i) >= v.n || v.bits == nil {
		return false
	}

	return v.bits.Test(uint(i))
}

// IsZero reports whether no bit is set.
func (v Vector) IsZero() bool {
	return v.bits == nil || v.bits.None()
}

// OnesCount returns the Hamming weight.
func (v Vector) OnesCount() int {
	if v.bits == nil {
		return 0
	}

	return int(v.bits.Count())
}

// LowestSet returns the smallest index i with Bit(i) set.
// ok is false for the zero vector.
func (v Vector) LowestSet() (i int, ok bool) {
	if v.bits == nil {
		return 0, false
	}
	idx, found := v.bits.NextSet(0)
	if !found || idx >= v.n {
		return 0, false
	}

	return int(idx), true
}

// Indices returns the set bit positions in ascending order.
func (v Vector) Indices() []int {
	out := make([]int, 0, v.OnesCount())
	if v.bits == nil {
		return out
	}
	for i, ok := v.bits.NextSet(0); ok && i < v.n; i, ok = v.bits.NextSet(i + 1) {
		out = append(out, int(i))
	}

	return out
}

// Xor returns v ⊕ w (GF(2) addition).
// Errors: ErrWidthMismatch when widths differ.
func (v Vector) Xor(w Vector) (Vector, error) {
	if v.n != w.n {
		return Vector{}, fmt.Errorf("Xor(%d,%d): %w", v.n, w.n, ErrWidthMismatch)
	}

	return Vector{n: v.n, bits: v.set().SymmetricDifference(w.set())}, nil
}

// Dot returns the GF(2) inner product v·w as 0 or 1.
// Errors: ErrWidthMismatch when widths differ.
func (v Vector) Dot(w Vector) (int, error) {
	if v.n != w.n {
		return 0, fmt.Errorf("Dot(%d,%d): %w", v.n, w.n, ErrWidthMismatch)
	}

	return int(v.set().IntersectionCardinality(w.set()) & 1), nil
}

// Orthogonal reports v·w = 0 over GF(2). Vectors of different widths are never orthogonal.
func (v Vector) Orthogonal(w Vector) bool {
	d, err := v.Dot(w)

	return err == nil && d == 0
}

// Equal reports equal widths and equal bits.
func (v Vector) Equal(w Vector) bool {
	return v.n == w.n && v.set().Equal(w.set())
}

// Uint64 returns the vector as an integer (bit i ↔ 2^i).
// ok is false when the width exceeds 64.
func (v Vector) Uint64() (x uint64, ok bool) {
	if v.n > maxUintWidth {
		return 0, false
	}
	for _, i := range v.Indices() {
		x |= uint64(1) << uint(i)
	}

	return x, true
}

// BitSet returns a copy of the underlying storage, sized to Len().
func (v Vector) BitSet() *bitset.BitSet {
	return v.set().Clone()
}

// String renders the vector MSB-first ("0101" for bits {0,2} of width 4).
func (v Vector) String() string {
	var sb strings.Builder
	sb.Grow(int(v.n))
	for i := int(v.n) - 1; i >= 0; i-- {
		if v.Bit(i) {
			sb.WriteByte(_one)
		} else {
			sb.WriteByte(_zero)
		}
	}

	return sb.String()
}

// set returns the storage, materialising an empty set for the zero value.
func (v Vector) set() *bitset.BitSet {
	if v.bits == nil {
		return bitset.New(v.n)
	}

	return v.bits
}
