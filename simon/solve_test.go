package simon_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/oracles/bitvec"
	"github.com/katalvlaran/oracles/simon"
)

// complement lists every y with y·s = 0, zero included.
func complement(t testing.TB, s bitvec.Vector) []bitvec.Vector {
	t.Helper()
	n := s.Len()
	out := make([]bitvec.Vector, 0, 1<<uint(n-1))
	for yv := uint64(0); yv < uint64(1)<<uint(n); yv++ {
		y, err := bitvec.FromUint64(n, yv)
		require.NoError(t, err)
		if y.Orthogonal(s) {
			out = append(out, y)
		}
	}

	return out
}

// TestSolve_RoundTrip feeds the full orthogonal complement, shuffled, for
// every nonzero mask up to n = 8 and expects the mask back.
func TestSolve_RoundTrip(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(8))
	for n := 1; n <= 8; n++ {
		for sv := uint64(1); sv < uint64(1)<<uint(n); sv++ {
			s, err := bitvec.FromUint64(n, sv)
			require.NoError(t, err)
			samples := complement(t, s)
			rng.Shuffle(len(samples), func(i, j int) { samples[i], samples[j] = samples[j], samples[i] })

			got, err := simon.Solve(samples, n)
			require.NoError(t, err, "n=%d s=%s", n, s)
			require.True(t, s.Equal(got), "n=%d want %s got %s", n, s, got)
		}
	}
}

// TestSolve_RandomSubsets draws random subsets of the complement: whenever
// Solve succeeds the answer is the mask, orthogonal to every sample and nonzero;
// otherwise it reports insufficiency and never guesses.
func TestSolve_RandomSubsets(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 500; trial++ {
		n := 2 + rng.Intn(9)
		s, err := bitvec.FromUint64(n, 1+uint64(rng.Int63n(int64(1)<<uint(n)-1)))
		require.NoError(t, err)
		pool := complement(t, s)

		k := rng.Intn(2 * n)
		samples := make([]bitvec.Vector, k)
		for i := range samples {
			samples[i] = pool[rng.Intn(len(pool))]
		}

		got, err := simon.Solve(samples, n)
		if err != nil {
			require.ErrorIs(t, err, simon.ErrInsufficientSamples, "n=%d k=%d", n, k)
			continue
		}
		require.True(t, s.Equal(got))
		require.False(t, got.IsZero())
		for _, v := range samples {
			require.True(t, v.Orthogonal(got))
		}
	}
}

func TestSolve_KnownInstance(t *testing.T) {
	t.Parallel()

	// s = 110 (bits 1 and 2): complement {000, 001, 110, 111}.
	samples := []bitvec.Vector{
		bitvec.MustParse("001"),
		bitvec.MustParse("000"),
		bitvec.MustParse("111"),
		bitvec.MustParse("111"),
	}
	got, err := simon.Solve(samples, 3)
	require.NoError(t, err)
	assert.Equal(t, "110", got.String())
}

func TestSolve_SingleBit(t *testing.T) {
	t.Parallel()

	got, err := simon.Solve(nil, 1)
	require.NoError(t, err)
	assert.Equal(t, "1", got.String())

	got, err = simon.Solve([]bitvec.Vector{bitvec.MustParse("0")}, 1)
	require.NoError(t, err)
	assert.Equal(t, "1", got.String())

	_, err = simon.Solve([]bitvec.Vector{bitvec.MustParse("1")}, 1)
	assert.ErrorIs(t, err, simon.ErrDegenerateSystem)
}

func TestSolve_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		samples []string
		n       int
		want    error
	}{
		{"n=0", nil, 0, simon.ErrInvalidSize},
		{"n<0", nil, -1, simon.ErrInvalidSize},
		{"width", []string{"101", "11"}, 3, simon.ErrSampleWidth},
		{"empty", nil, 3, simon.ErrInsufficientSamples},
		{"only zeros", []string{"0000", "0000"}, 4, simon.ErrInsufficientSamples},
		{"rank 2 of 4", []string{"0011", "0101", "0110"}, 4, simon.ErrInsufficientSamples},
		{"duplicates do not add rank", []string{"011", "011", "011"}, 3, simon.ErrInsufficientSamples},
		{"full rank", []string{"001", "010", "100"}, 3, simon.ErrDegenerateSystem},
		{"full rank, mixed", []string{"011", "110", "111", "000"}, 3, simon.ErrDegenerateSystem},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			samples := make([]bitvec.Vector, len(tc.samples))
			for i, s := range tc.samples {
				samples[i] = bitvec.MustParse(s)
			}
			got, err := simon.Solve(samples, tc.n)
			require.ErrorIs(t, err, tc.want)
			assert.Zero(t, got.Len(), "no mask on failure")
		})
	}
}

// TestSolve_SkippedColumn covers a pivot layout that is not the diagonal:
// column 0 has no pivot, so row i pivots on column i+1.
func TestSolve_SkippedColumn(t *testing.T) {
	t.Parallel()

	samples := []bitvec.Vector{
		bitvec.MustParse("0010"),
		bitvec.MustParse("0100"),
		bitvec.MustParse("1000"),
	}
	got, err := simon.Solve(samples, 4)
	require.NoError(t, err)
	assert.Equal(t, "0001", got.String())
}

func BenchmarkSolve(b *testing.B) {
	for _, n := range []int{8, 16, 32} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := rand.New(rand.NewSource(int64(n)))
			s, _ := bitvec.FromUint64(n, 1|uint64(rng.Int63n(int64(1)<<uint(n))))
			samples := make([]bitvec.Vector, 0, 4*n)
			for len(samples) < cap(samples) {
				y, _ := bitvec.FromUint64(n, uint64(rng.Int63n(int64(1)<<uint(n))))
				if y.Orthogonal(s) {
					samples = append(samples, y)
				}
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = simon.Solve(samples, n)
			}
		})
	}
}
