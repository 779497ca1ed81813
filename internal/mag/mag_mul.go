package mag

import "math/bits"

// bigMultiply is the multiplication entry point internal uses of this
// package (chiefly Burnikel-Ziegler division's q*b2 step) call for
// their larger products. It defaults to this package's own schoolbook
// Multiply, but internal/algomul's init() upgrades it to its own
// size-dispatched Multiply (schoolbook/Karatsuba/Toom-Cook) via
// SetBigMultiply — internal/algomul already imports this package, so
// the upgrade happens one-way to avoid an import cycle back into it.
var bigMultiply = Multiply

// SetBigMultiply lets a caller (internal/algomul, at init time) swap
// in a size-dispatching multiply so large in-package products (e.g.
// inside Burnikel-Ziegler division) run Karatsuba/Toom-Cook instead of
// always schoolbook.
func SetBigMultiply(f func(a, b Mag) Mag) {
	bigMultiply = f
}

// Multiply is schoolbook big-magnitude multiplication: O(n*m) word
// multiply-adds. internal/algomul dispatches to Karatsuba/Toom-Cook
// above the size thresholds and falls back here below them.
func Multiply(a, b Mag) Mag {
	a, b = a.Normalize(), b.Normalize()
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	if len(a) == 1 {
		return MulWord(b, a[0])
	}
	if len(b) == 1 {
		return MulWord(a, b[0])
	}
	out := make(Mag, len(a)+len(b))
	// a, b are big-endian; iterate from least-significant word.
	for i := len(b) - 1; i >= 0; i-- {
		bw := b[i]
		if bw == 0 {
			continue
		}
		var carry uint64
		oi := i + len(a)
		for j := len(a) - 1; j >= 0; j-- {
			lo, hi := bits.Mul32(a[j], bw)
			sum := uint64(lo) + uint64(out[oi]) + carry
			out[oi] = uint32(sum)
			carry = uint64(hi) + (sum >> 32)
			oi--
		}
		for carry != 0 {
			sum := uint64(out[oi]) + carry
			out[oi] = uint32(sum)
			carry = sum >> 32
			oi--
		}
	}
	return out.Normalize()
}

// SquareToLen computes m*m using the standard "sum the off-diagonal
// row products, double, then add the diagonal" trick: each cross term
// a[i]*a[j] (i!=j) is counted once and doubled instead of computed
// twice, roughly halving the word multiplies versus a full schoolbook
// square.
func SquareToLen(m Mag) Mag {
	m = m.Normalize()
	n := len(m)
	if n == 0 {
		return nil
	}
	out := make(Mag, 2*n)

	// Off-diagonal terms: for each i, add m[i] * m[i+1:] into out at
	// the matching offset, accumulating into a wide scratch area so we
	// can left-shift by one bit afterward (dividing the diagonal sum by
	// two is equivalent to doubling everything else).
	for i := 0; i < n-1; i++ {
		if m[i] == 0 {
			continue
		}
		var carry uint64
		oi := i + n
		for j := n - 1; j > i; j-- {
			lo, hi := bits.Mul32(m[i], m[j])
			sum := uint64(lo) + uint64(out[oi]) + carry
			out[oi] = uint32(sum)
			carry = uint64(hi) + (sum >> 32)
			oi--
		}
		for carry != 0 {
			sum := uint64(out[oi]) + carry
			out[oi] = uint32(sum)
			carry = sum >> 32
			oi--
		}
	}

	// Double the off-diagonal sum (shift left by 1 across the whole
	// buffer).
	out = primitiveLeftShiftOne(out)

	// Add the diagonal terms m[i]*m[i]. Each diagonal term spans two
	// words at [2i, 2i+1]; add it in directly and ripple any carry
	// leftward through the buffer.
	for i := n - 1; i >= 0; i-- {
		lo, hi := bits.Mul32(m[i], m[i])
		pos := 2*i + 1
		sum := uint64(lo) + uint64(out[pos])
		out[pos] = uint32(sum)
		carry := uint64(hi) + (sum >> 32)
		p := pos - 1
		for carry != 0 && p >= 0 {
			sum := uint64(out[p]) + carry
			out[p] = uint32(sum)
			carry = sum >> 32
			p--
		}
	}
	return out.Normalize()
}

func primitiveLeftShiftOne(z Mag) Mag {
	carry := uint32(0)
	for i := len(z) - 1; i >= 0; i-- {
		v := uint64(z[i])<<1 | uint64(carry)
		z[i] = uint32(v)
		carry = uint32(v >> 32)
	}
	return z
}
