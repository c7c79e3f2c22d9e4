// SPDX-License-Identifier: MIT

package oracle

import "math/bits"

// validateWidth ensures MinWidth <= n <= max.
func validateWidth(method string, n, limit int) error {
	if n < MinWidth || n > limit {
		return builderErrorf(method, ErrInvalidSize, "n=%d not in [%d,%d]", n, MinWidth, limit)
	}

	return nil
}

// isPowerOfTwo reports p = 2^k for some k >= 0.
func isPowerOfTwo(p int) bool {
	return p > 0 && p&(p-1) == 0
}

// log2 returns k for p = 2^k. p must be a power of two.
func log2(p int) int {
	return bits.TrailingZeros64(uint64(p))
}
