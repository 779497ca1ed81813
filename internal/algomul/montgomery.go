package algomul

import "go.firedancer.io/bignum/internal/mag"

// MontReduce computes n * R^-1 mod m, where R = 2^(32*mlen) and inv =
// -m^-1 mod 2^32 (the Montgomery constant), following the standard
// REDC loop: for each of the mlen low words, choose a multiple of m
// that zeroes that word of the running value, then divide out R at
// the end and do a final conditional subtraction.
//
// spec.md §4.4 describes this with an explicit addOne-propagated
// carry chain operating on a fixed-size in-place buffer; this port
// keeps the same word-at-a-time structure (grounded on the teacher's
// carry-propagating accumulation style in pkg/base58) but lets each
// round's addend simply widen the running mag.Mag value rather than
// hand-rolling the carry/addOne bookkeeping, which is exactly what
// spec.md §9 warns is easy to get subtly wrong when ported directly.
func MontReduce(n mag.Mag, m mag.Mag, mlen int, inv uint32) mag.Mag {
	n = n.Clone()
	for i := 0; i < mlen; i++ {
		ti := wordAt(n, i)
		u := ti * inv // wraps mod 2^32, matching -m^-1 mod 2^32 semantics
		addend := mag.MulWord(m, u)
		addend = mag.ShiftLeft(addend, 32*i)
		n = mag.Add(n, addend)
	}
	n = mag.ShiftRight(n, 32*mlen)
	if mag.Cmp(n, m) >= 0 {
		n, _ = mag.Sub(n, m)
	}
	return n
}

// wordAt returns the word at zero-based position i counting from the
// least-significant word (i.e. word i holds bits [32i, 32i+32)).
func wordAt(t mag.Mag, i int) uint32 {
	t = t.Normalize()
	idx := len(t) - 1 - i
	if idx < 0 || idx >= len(t) {
		return 0
	}
	return t[idx]
}

// NegModInverse32 returns -m^-1 mod 2^32 for an odd m's low word,
// via Newton-Hensel iteration (the same 2-adic lifting used by
// internal/mag's even-modulus inverse split, specialized to a single
// word).
func NegModInverse32(m0 uint32) uint32 {
	// Start with the 3-bit correct inverse of an odd number mod 8,
	// then double the correct bit count each round: x*(2-m0*x).
	x := m0
	for i := 0; i < 4; i++ {
		x = x * (2 - m0*x)
	}
	return -x
}
