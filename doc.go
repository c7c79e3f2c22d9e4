// Package oracles is a small laboratory for hidden-structure extraction:
// build a reversible black-box function with an embedded secret, sample the
// interference experiment that exposes it, and recover the secret classically.
//
// Two problems are covered:
//
//	Simon's problem  - f(x) = f(x ⊕ s); recover the nonzero mask s.
//	Period finding   - f(x) = f(x mod p); estimate the power-of-two period p.
//
// Packages:
//
//	bitvec/  - fixed-width bit vectors (bit 0 rightmost in strings)
//	gf2/     - GF(2) matrices, row-echelon reduction with pivot tracking, null spaces
//	oracle/  - gate-level oracle builders (XOR-mask, period) and classical evaluation
//	sampler/ - Collector interface and the exact Fourier outcome sampler
//	simon/   - Solve (samples → mask) and Recover (collect, solve, retry)
//	period/  - Estimate (distinct peaks) and Recover
//	cmd/     - simon and period command-line entry points
//
// Quick example:
//
//	o, _ := oracle.BuildXorMask(4, oracle.FixedMask(bitvec.MustParse("1011")))
//	res, _ := simon.Recover(ctx, sampler.NewFourier(sampler.WithSeed(1)), o)
//	fmt.Println(res.Mask) // 1011
//
// Determinism: every source of randomness is injected (WithSeed, WithRand,
// WithSeedPhrase); nothing reads a global RNG.
package oracles
