package oracle_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/oracles/bitvec"
	"github.com/katalvlaran/oracles/oracle"
)

// TestApply_Reversible runs every 9-qubit basis state through the oracle and
// its inverse: the forward map must be a bijection and the round trip the identity.
func TestApply_Reversible(t *testing.T) {
	t.Parallel()

	o, err := oracle.BuildXorMask(3, oracle.FixedMask(bitvec.MustParse("101")))
	require.NoError(t, err)
	inv := o.Inverse()
	q := o.Qubits()
	require.Equal(t, 9, q)

	images := make(map[string]bool, 1<<uint(q))
	for s := uint64(0); s < uint64(1)<<uint(q); s++ {
		in, err := bitvec.FromUint64(q, s)
		require.NoError(t, err)
		out, err := o.Apply(in)
		require.NoError(t, err)
		images[out.String()] = true

		back, err := inv.Apply(out)
		require.NoError(t, err)
		require.True(t, in.Equal(back), "state %s", in)
	}
	assert.Len(t, images, 1<<uint(q))
}

func TestEvaluate_MatchesEvaluateUint(t *testing.T) {
	t.Parallel()

	for _, build := range []func() (*oracle.Oracle, error){
		func() (*oracle.Oracle, error) {
			return oracle.BuildXorMask(5, oracle.RandomMask(), oracle.WithSeed(5))
		},
		func() (*oracle.Oracle, error) {
			return oracle.BuildPeriod(5, oracle.RandomPeriod(), oracle.WithSeed(5))
		},
	} {
		o, err := build()
		require.NoError(t, err)
		for x := uint64(0); x < 32; x++ {
			xv, _ := bitvec.FromUint64(5, x)
			fv, err := o.Evaluate(xv)
			require.NoError(t, err)
			fu, err := o.EvaluateUint(x)
			require.NoError(t, err)
			got, _ := fv.Uint64()
			require.Equal(t, fu, got, "%s x=%d", o.Kind(), x)
		}
	}
}

func TestEvaluate_Errors(t *testing.T) {
	t.Parallel()

	o, err := oracle.BuildPeriod(4, oracle.FixedPeriod(2))
	require.NoError(t, err)

	_, err = o.Evaluate(bitvec.MustParse("101"))
	assert.True(t, errors.Is(err, oracle.ErrInputWidth))
	_, err = o.EvaluateUint(16)
	assert.True(t, errors.Is(err, oracle.ErrInputWidth))
	_, err = o.Apply(bitvec.MustParse("1"))
	assert.True(t, errors.Is(err, oracle.ErrInputWidth))

	wide, err := oracle.BuildPeriod(oracle.MaxTableWidth+1, oracle.FixedPeriod(2))
	require.NoError(t, err)
	_, err = wide.TruthTable()
	assert.True(t, errors.Is(err, oracle.ErrTooWide))

	huge, err := oracle.BuildXorMask(40, oracle.FixedMask(bitvec.MustParse("1"+strings.Repeat("0", 39))))
	require.NoError(t, err)
	_, err = huge.EvaluateUint(1)
	assert.True(t, errors.Is(err, oracle.ErrTooWide))

	var nilOracle *oracle.Oracle
	_, err = nilOracle.Evaluate(bitvec.MustParse("1"))
	assert.True(t, errors.Is(err, oracle.ErrNilOracle))
}

func TestInverse_DoesNotAlias(t *testing.T) {
	t.Parallel()

	o, err := oracle.BuildPeriod(3, oracle.FixedPeriod(4), oracle.WithSeed(1))
	require.NoError(t, err)
	gates := o.Gates()
	inv := o.Inverse()
	require.Equal(t, gates, o.Gates(), "Inverse leaves the original untouched")

	ig := inv.Gates()
	for i := range gates {
		assert.Equal(t, gates[i], ig[len(ig)-1-i])
	}
	assert.Contains(t, o.String(), "oracle(period, n=3, qubits=6)")
}

func TestOptions_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { oracle.WithRand(nil) })
	assert.Panics(t, func() { oracle.WithSeedPhrase("") })
}

// TestInverse_DropsSecret checks the reversed oracle no longer claims the
// mask: evaluated from zero ancillas it is a bijection, not 2-to-1.
func TestInverse_DropsSecret(t *testing.T) {
	t.Parallel()

	o, err := oracle.BuildXorMask(4, oracle.FixedMask(bitvec.MustParse("0110")))
	require.NoError(t, err)
	inv := o.Inverse()

	assert.Equal(t, oracle.KindInverse, inv.Kind())
	assert.Equal(t, "inverse", inv.Kind().String())
	_, ok := inv.Mask()
	assert.False(t, ok)
	_, ok = inv.Period()
	assert.False(t, ok)

	table, err := inv.TruthTable()
	require.NoError(t, err)
	distinct := map[uint64]bool{}
	for _, fx := range table {
		distinct[fx] = true
	}
	assert.Len(t, distinct, 16)

	_, ok = o.Mask()
	assert.True(t, ok, "the original keeps its secret")

	var nilOracle *oracle.Oracle
	assert.Nil(t, nilOracle.Inverse())
}

// TestZeroOracle_ReturnsError covers oracles not made by a builder: every
// evaluation path reports ErrNilOracle instead of indexing missing registers.
func TestZeroOracle_ReturnsError(t *testing.T) {
	t.Parallel()

	zero := &oracle.Oracle{}
	assert.Equal(t, oracle.Register{}, zero.Input())
	assert.Equal(t, oracle.Register{}, zero.Output())

	_, err := zero.Evaluate(bitvec.Vector{})
	assert.ErrorIs(t, err, oracle.ErrNilOracle)
	_, err = zero.EvaluateUint(0)
	assert.ErrorIs(t, err, oracle.ErrNilOracle)
	_, err = zero.TruthTable()
	assert.ErrorIs(t, err, oracle.ErrNilOracle)
	_, err = zero.Apply(bitvec.Vector{})
	assert.ErrorIs(t, err, oracle.ErrNilOracle)
}
