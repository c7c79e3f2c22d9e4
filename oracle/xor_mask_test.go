package oracle_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/oracles/bitvec"
	"github.com/katalvlaran/oracles/oracle"
)

// allMasks enumerates every nonzero n-bit mask.
func allMasks(t *testing.T, n int) []bitvec.Vector {
	t.Helper()
	out := make([]bitvec.Vector, 0, (1<<uint(n))-1)
	for s := uint64(1); s < uint64(1)<<uint(n); s++ {
		v, err := bitvec.FromUint64(n, s)
		require.NoError(t, err)
		out = append(out, v)
	}

	return out
}

// TestBuildXorMask_TwoToOne checks f(x) = f(x ⊕ s) for every x and that every
// output value has exactly two preimages, for every nonzero mask up to n = 6.
func TestBuildXorMask_TwoToOne(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 6; n++ {
		for _, s := range allMasks(t, n) {
			t.Run(fmt.Sprintf("n=%d/s=%s", n, s), func(t *testing.T) {
				o, err := oracle.BuildXorMask(n, oracle.FixedMask(s))
				require.NoError(t, err)
				got, ok := o.Mask()
				require.True(t, ok)
				require.True(t, s.Equal(got))

				table, err := o.TruthTable()
				require.NoError(t, err)
				su, _ := s.Uint64()

				preimages := make(map[uint64]int, len(table)/2)
				for x, fx := range table {
					require.Equal(t, fx, table[uint64(x)^su], "f(x) != f(x^s) at x=%d", x)
					preimages[fx]++
				}
				require.Len(t, preimages, len(table)/2)
				for fx, c := range preimages {
					require.Equal(t, 2, c, "output %b has %d preimages", fx, c)
				}
			})
		}
	}
}

func TestBuildXorMask_KnownValues(t *testing.T) {
	t.Parallel()

	s := bitvec.MustParse("0110") // bits {1,2}; pivot bit 1
	plain, err := oracle.BuildXorMask(4, oracle.FixedMask(s), oracle.WithoutObfuscation())
	require.NoError(t, err)

	f := func(o *oracle.Oracle, in string) string {
		out, err := o.Evaluate(bitvec.MustParse(in))
		require.NoError(t, err)
		return out.String()
	}
	assert.Equal(t, "0100", f(plain, "0010"))
	assert.Equal(t, "0100", f(plain, "0100"))
	assert.Equal(t, "0000", f(plain, "0000"))
	assert.Equal(t, "0000", f(plain, "0110"))

	// Constant flips on output bits 0 and 3.
	obf, err := oracle.BuildXorMask(4, oracle.FixedMask(s))
	require.NoError(t, err)
	assert.Equal(t, "1001", f(obf, "0000"))
	assert.Equal(t, "1101", f(obf, "0100"))
}

func TestBuildXorMask_GateLayout(t *testing.T) {
	t.Parallel()

	o, err := oracle.BuildXorMask(4, oracle.FixedMask(bitvec.MustParse("1010")))
	require.NoError(t, err)
	require.Equal(t, oracle.KindXorMask, o.Kind())
	require.Equal(t, 4, o.Width())
	require.Equal(t, 12, o.Qubits())

	var counts [4]int
	for _, g := range o.Gates() {
		counts[g.Op]++
	}
	assert.Equal(t, 2+2, counts[oracle.OpX], "two secret loads + flips on bits 0 and 3")
	assert.Equal(t, 4, counts[oracle.OpCX])
	assert.Equal(t, 2, counts[oracle.OpCCX])

	regs := o.Registers()
	require.Len(t, regs, 3)
	assert.Equal(t, oracle.Register{Name: oracle.RegSecret, Offset: 8, Size: 4}, regs[2])
}

func TestBuildXorMask_RandomMask(t *testing.T) {
	t.Parallel()

	a, err := oracle.BuildXorMask(5, oracle.RandomMask(), oracle.WithSeed(11))
	require.NoError(t, err)
	b, err := oracle.BuildXorMask(5, oracle.RandomMask(), oracle.WithSeed(11))
	require.NoError(t, err)
	ma, _ := a.Mask()
	mb, _ := b.Mask()
	assert.True(t, ma.Equal(mb), "same seed, same mask")

	// n = 1 has a single admissible mask.
	for seed := int64(0); seed < 20; seed++ {
		o, err := oracle.BuildXorMask(1, oracle.RandomMask(), oracle.WithSeed(seed))
		require.NoError(t, err)
		m, _ := o.Mask()
		require.Equal(t, "1", m.String())
	}

	// Across seeds every nonzero 3-bit mask shows up and zero never does.
	seen := map[string]bool{}
	for seed := int64(0); seed < 400; seed++ {
		o, err := oracle.BuildXorMask(3, oracle.RandomMask(), oracle.WithSeed(seed))
		require.NoError(t, err)
		m, _ := o.Mask()
		require.False(t, m.IsZero())
		seen[m.String()] = true
	}
	assert.Len(t, seen, 7)
}

func TestBuildXorMask_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		n      int
		choice oracle.MaskChoice
		opts   []oracle.Option
		want   []error
	}{
		{"n=0", 0, oracle.RandomMask(), []oracle.Option{oracle.WithSeed(1)}, []error{oracle.ErrInvalidSize}},
		{"n<0", -2, oracle.FixedMask(bitvec.MustParse("1")), nil, []error{oracle.ErrInvalidSize}},
		{"length mismatch", 4, oracle.FixedMask(bitvec.MustParse("101")), nil, []error{oracle.ErrInvalidSecret, oracle.ErrMaskLength}},
		{"zero mask", 4, oracle.FixedMask(bitvec.MustParse("0000")), nil, []error{oracle.ErrInvalidSecret, oracle.ErrZeroMask}},
		{"no rng", 4, oracle.RandomMask(), nil, []error{oracle.ErrNeedRandSource}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			o, err := oracle.BuildXorMask(tc.n, tc.choice, tc.opts...)
			require.Error(t, err)
			require.Nil(t, o)
			for _, w := range tc.want {
				assert.True(t, errors.Is(err, w), "want %v, got %v", w, err)
			}
		})
	}
}
