// SPDX-License-Identifier: MIT

// Package sampler - the Fourier collector.
//
// Implementation:
//   - Stage 1: tabulate f and group inputs by output value (preimage classes,
//     ascending).
//   - Stage 2: per shot, draw x uniformly and look up its class C.
//   - Stage 3: draw the outcome from the distribution the oracle kind defines
//     on C. Per-class data (null-space basis or progression step) is computed
//     once per Collect call and cached.
//
// Complexity:
//   - Tabulation O(2^n * gates); per shot O(n) after the class is cached.

package sampler

import (
	"context"
	"fmt"
	"sync"

	"github.com/katalvlaran/oracles/bitvec"
	"github.com/katalvlaran/oracles/gf2"
	"github.com/katalvlaran/oracles/oracle"
)

// MaxWidth is the widest oracle Fourier will tabulate.
const MaxWidth = 16

const opCollect = "Fourier.Collect"

// Collector gathers shots measurement outcomes from o.
type Collector interface {
	Collect(ctx context.Context, o *oracle.Oracle, shots int) ([]bitvec.Vector, error)
}

// Fourier samples the exact outcome distributions of the Hadamard (xor-mask)
// and inverse-QFT (period) experiments. It is safe for concurrent use; calls
// are serialised on the shared RNG.
type Fourier struct {
	mu  sync.Mutex
	cfg config
}

var _ Collector = (*Fourier)(nil)

// NewFourier returns a collector configured by opts.
func NewFourier(opts ...Option) *Fourier {
	return &Fourier{cfg: newConfig(opts...)}
}

// Collect returns shots outcomes, each of width o.Width().
//
// Errors:
//   - oracle.ErrNilOracle, ErrBadShots, ErrWidthTooLarge, ErrNeedRandSource,
//     ErrUnknownKind on invalid arguments.
//   - ErrNotAffine / ErrNotPeriodic if o does not have the structure its kind claims.
//   - ctx.Err() if ctx is done before all shots are drawn.
func (f *Fourier) Collect(ctx context.Context, o *oracle.Oracle, shots int) ([]bitvec.Vector, error) {
	if o == nil {
		return nil, fmt.Errorf("%s: %w", opCollect, oracle.ErrNilOracle)
	}
	if shots < 1 {
		return nil, fmt.Errorf("%s: shots=%d: %w", opCollect, shots, ErrBadShots)
	}
	n := o.Width()
	if n > MaxWidth {
		return nil, fmt.Errorf("%s: n=%d > %d: %w", opCollect, n, MaxWidth, ErrWidthTooLarge)
	}
	if f.cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", opCollect, ErrNeedRandSource)
	}

	var draw func(class []uint64) (uint64, error)
	switch o.Kind() {
	case oracle.KindXorMask:
		draw = f.newHadamard(n)
	case oracle.KindPeriod:
		draw = f.newQFT(n)
	default:
		return nil, fmt.Errorf("%s: %s: %w", opCollect, o.Kind(), ErrUnknownKind)
	}

	table, err := o.TruthTable()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCollect, err)
	}
	classes := preimageClasses(table)

	f.mu.Lock()
	defer f.mu.Unlock()

	size := int64(len(table))
	out := make([]bitvec.Vector, 0, shots)
	for i := 0; i < shots; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		x := f.cfg.rng.Int63n(size)
		y, err := draw(classes[table[x]])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opCollect, err)
		}
		v, err := bitvec.FromUint64(n, y)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opCollect, err)
		}
		out = append(out, v)
	}

	return out, nil
}

// preimageClasses groups inputs by f(x); each class is ascending.
func preimageClasses(table []uint64) map[uint64][]uint64 {
	classes := make(map[uint64][]uint64)
	for x, fx := range table {
		classes[fx] = append(classes[fx], uint64(x))
	}

	return classes
}

// newHadamard returns a drawer for y uniform over {y : y·(c ⊕ c0) = 0 for all c in C}.
// The caller holds f.mu.
func (f *Fourier) newHadamard(n int) func([]uint64) (uint64, error) {
	cache := make(map[uint64][]uint64)

	return func(class []uint64) (uint64, error) {
		key := class[0]
		basis, ok := cache[key]
		if !ok {
			var err error
			if basis, err = complementBasis(n, class); err != nil {
				return 0, err
			}
			cache[key] = basis
		}

		var y uint64
		for _, b := range basis {
			if f.cfg.rng.Intn(2) == 1 {
				y ^= b
			}
		}

		return y, nil
	}
}

// complementBasis returns a basis of the orthogonal complement of
// span{c ⊕ class[0]}, after checking the class is exactly that coset.
func complementBasis(n int, class []uint64) ([]uint64, error) {
	m, err := gf2.New(n)
	if err != nil {
		return nil, err
	}
	for _, c := range class[1:] {
		d, err := bitvec.FromUint64(n, c^class[0])
		if err != nil {
			return nil, err
		}
		if err = m.AppendRow(d); err != nil {
			return nil, err
		}
	}
	e, err := gf2.Reduce(m)
	if err != nil {
		return nil, err
	}
	if len(class) != 1<<uint(e.Rank()) {
		return nil, fmt.Errorf("class of %d has %d elements, span rank %d: %w",
			class[0], len(class), e.Rank(), ErrNotAffine)
	}

	null, err := gf2.NullSpace(e)
	if err != nil {
		return nil, err
	}
	basis := make([]uint64, len(null))
	for i, v := range null {
		basis[i], _ = v.Uint64()
	}

	return basis, nil
}

// newQFT returns a drawer for y = j*2^n/d, j uniform in [0, d), where d is
// the common difference of the class. The caller holds f.mu.
func (f *Fourier) newQFT(n int) func([]uint64) (uint64, error) {
	size := uint64(1) << uint(n)
	cache := make(map[uint64]uint64)

	return func(class []uint64) (uint64, error) {
		key := class[0]
		d, ok := cache[key]
		if !ok {
			var err error
			if d, err = progressionStep(size, class); err != nil {
				return 0, err
			}
			cache[key] = d
		}
		j := uint64(f.cfg.rng.Int63n(int64(d)))

		return j * (size / d), nil
	}
}

// progressionStep returns d such that class = {x0 + k*d} covers [0, size)
// with size/d elements. A singleton class has d = size.
func progressionStep(size uint64, class []uint64) (uint64, error) {
	if len(class) == 1 {
		return size, nil
	}
	d := class[1] - class[0]
	for i := 2; i < len(class); i++ {
		if class[i]-class[i-1] != d {
			return 0, fmt.Errorf("class of %d: uneven step at %d: %w", class[0], class[i], ErrNotPeriodic)
		}
	}
	if uint64(len(class))*d != size || size%d != 0 {
		return 0, fmt.Errorf("class of %d: %d elements with step %d do not tile 2^n: %w",
			class[0], len(class), d, ErrNotPeriodic)
	}

	return d, nil
}
