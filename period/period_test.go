package period_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/oracles/bitvec"
	"github.com/katalvlaran/oracles/oracle"
	"github.com/katalvlaran/oracles/period"
	"github.com/katalvlaran/oracles/sampler"
)

func TestEstimate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		samples []string
		want    int
	}{
		{"empty", nil, 0},
		{"single", []string{"0000"}, 1},
		{"repeats", []string{"0000", "1000", "0000", "1000", "1000"}, 2},
		{"four peaks", []string{"0000", "0100", "1000", "1100", "0100"}, 4},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			samples := make([]bitvec.Vector, len(tc.samples))
			for i, s := range tc.samples {
				samples[i] = bitvec.MustParse(s)
			}
			assert.Equal(t, tc.want, period.Estimate(samples))
		})
	}
}

func TestRecover_MatchesPeriod(t *testing.T) {
	t.Parallel()

	const n = 6
	for p := 1; p <= 1<<n; p <<= 1 {
		t.Run(fmt.Sprintf("p=%d", p), func(t *testing.T) {
			o, err := oracle.BuildPeriod(n, oracle.FixedPeriod(p), oracle.WithSeed(int64(p)))
			require.NoError(t, err)

			res, err := period.Recover(context.Background(), sampler.NewFourier(sampler.WithSeed(3)), o, 2048)
			require.NoError(t, err)
			assert.Equal(t, p, res.Estimate)
			assert.Equal(t, 2048, res.Shots)
			require.Len(t, res.Peaks, p)

			step := uint64((1 << n) / p)
			for _, c := range res.Peaks {
				v, _ := c.Value.Uint64()
				assert.Zero(t, v%step)
			}
		})
	}
}

func TestRecover_Errors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := sampler.NewFourier(sampler.WithSeed(1))

	_, err := period.Recover(ctx, f, nil, 10)
	assert.ErrorIs(t, err, oracle.ErrNilOracle)

	x, err := oracle.BuildXorMask(3, oracle.FixedMask(bitvec.MustParse("100")))
	require.NoError(t, err)
	_, err = period.Recover(ctx, f, x, 10)
	assert.ErrorIs(t, err, period.ErrWrongKind)

	p, err := oracle.BuildPeriod(3, oracle.FixedPeriod(2))
	require.NoError(t, err)
	_, err = period.Recover(ctx, f, p, 0)
	assert.ErrorIs(t, err, sampler.ErrBadShots)

	_, err = period.Recover(ctx, f, p.Inverse(), 10)
	assert.ErrorIs(t, err, period.ErrWrongKind)
}
