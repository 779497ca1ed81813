// Package wordops implements the fixed-width word primitives every
// higher layer of the arithmetic core is built from: wide multiply,
// wide divide, bit counting, and the unsigned-compare trick used
// throughout the rest of the module.
//
// Everything here is a pure function over machine words. None of it
// branches on the magnitude of a "secret" value in a way that would
// make this unsuitable for constant-time code, but no side-channel
// hardening beyond that is attempted.
package wordops

import "math/bits"

// MulAdd returns a*b + c widened to 64 bits. The result never
// overflows: a, b, c are all at most 2^32-1, so the maximum value is
// (2^32-1)^2 + (2^32-1) < 2^64.
func MulAdd(a, b, c uint32) uint64 {
	return uint64(a)*uint64(b) + uint64(c)
}

// MulAddCarry returns the low and high words of a*b + c + carry.
func MulAddCarry(a, b, c, carry uint32) (lo, hi uint32) {
	wide := uint64(a)*uint64(b) + uint64(c) + uint64(carry)
	return uint32(wide), uint32(wide >> 32)
}

// DivWide divides the 64-bit value (hi:lo) by d, returning quotient
// and remainder. The caller must ensure (hi:lo) < d<<32 when hi != 0,
// i.e. the quotient fits in 32 bits.
func DivWide(hi, lo, d uint32) (q, r uint32) {
	quo, rem := bits.Div32(hi, lo, d)
	return quo, rem
}

// DivRemNegLong computes the quotient and remainder of dividing a
// negative int64 n by a nonzero, non-unit int64 d. A plain uint64
// reinterpretation of n overestimates the magnitude (the top bit is
// the sign, not data), so this halves both operands for a first
// quotient estimate, folds the quotient of the leftover remainder back
// in, and then needs at most one adjustment by |d| to bring the
// remainder into [0, |d|).
func DivRemNegLong(n, d int64) (r, q int64) {
	q = (n >> 1) / (d >> 1)
	r = n - q*d
	adj := r / d
	q += adj
	r -= adj * d
	if r < 0 {
		r += absInt64(d)
		if d > 0 {
			q--
		} else {
			q++
		}
	}
	return r, q
}

func absInt64(d int64) int64 {
	if d < 0 {
		return -d
	}
	return d
}

// LeadingZeros32 and friends are thin wrappers over math/bits so call
// sites in this module don't need to import it directly.
func LeadingZeros32(x uint32) int { return bits.LeadingZeros32(x) }
func LeadingZeros64(x uint64) int { return bits.LeadingZeros64(x) }
func TrailingZeros32(x uint32) int {
	if x == 0 {
		return 32
	}
	return bits.TrailingZeros32(x)
}
func TrailingZeros64(x uint64) int {
	if x == 0 {
		return 64
	}
	return bits.TrailingZeros64(x)
}
func PopCount32(x uint32) int { return bits.OnesCount32(x) }
func PopCount64(x uint64) int { return bits.OnesCount64(x) }

// ULongCompare implements the "a + MIN_I64 > b + MIN_I64" unsigned
// comparison idiom: returns true iff a, interpreted as unsigned,
// exceeds b interpreted as unsigned. Equivalent to a > b for uint64,
// kept as a named primitive because higher layers port expressions
// written exactly this way.
func ULongCompare(a, b uint64) bool {
	return a > b
}
