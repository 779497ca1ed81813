// Package algomul implements the big-magnitude multiplication
// algorithms spec.md §4.4 calls for above the schoolbook size
// thresholds: Karatsuba, 3-way Toom-Cook, the exact-divide-by-3 used
// inside Toom-Cook's interpolation, and Montgomery reduction for
// odd-modulus modular exponentiation.
package algomul

import (
	"go.firedancer.io/bignum/internal/mag"
)

// Size thresholds, reproduced byte-exact from spec.md §6 (part of the
// ABI, not just an implementation detail).
const (
	KaratsubaThreshold       = 80
	ToomCookThreshold        = 240
	KaratsubaSquareThreshold = 128
	ToomCookSquareThreshold  = 216
)

func init() {
	// Let internal/mag's Burnikel-Ziegler division run its large
	// products (q*b2 in the 3n-by-2n kernel) through this package's
	// size-dispatched Multiply instead of always schoolbook, without
	// internal/mag importing this package back.
	mag.SetBigMultiply(Multiply)
}

// Multiply dispatches to schoolbook, Karatsuba, or Toom-Cook-3 based
// on operand size, per spec.md §4.3's multiplication dispatch rule.
func Multiply(a, b mag.Mag) mag.Mag {
	a, b = a.Normalize(), b.Normalize()
	x, y := len(a), len(b)
	small := x
	large := y
	if y < x {
		small, large = y, x
	}
	switch {
	case small < KaratsubaThreshold:
		return mag.Multiply(a, b)
	case large < ToomCookThreshold:
		return Karatsuba(a, b)
	default:
		return ToomCook3(a, b)
	}
}

// Square dispatches to schoolbook squareToLen, Karatsuba, or Toom-Cook
// based on the squaring-specific thresholds: Karatsuba from
// KaratsubaSquareThreshold (128 words, above the general multiply's 80)
// and Toom-Cook from ToomCookSquareThreshold (216 words, below the
// general multiply's 240).
func Square(a mag.Mag) mag.Mag {
	a = a.Normalize()
	n := len(a)
	switch {
	case n < KaratsubaSquareThreshold:
		return mag.SquareToLen(a)
	case n < ToomCookSquareThreshold:
		return Karatsuba(a, a)
	default:
		return ToomCook3(a, a)
	}
}

// Karatsuba multiplies a and b via the standard 3-multiply
// divide-and-conquer split at the half-word boundary:
//
//	a = ah*B^half + al, b = bh*B^half + bl
//	p1 = ah*bh, p2 = al*bl, p3 = (ah+al)*(bh+bl)
//	result = p1*B^(2*half) + (p3-p1-p2)*B^half + p2
func Karatsuba(a, b mag.Mag) mag.Mag {
	a, b = a.Normalize(), b.Normalize()
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	if n < 2 {
		return mag.Multiply(a, b)
	}
	half := (n + 1) / 2

	ah, al := splitAt(a, half)
	bh, bl := splitAt(b, half)

	p1 := Multiply(ah, bh)
	p2 := Multiply(al, bl)
	p3 := Multiply(mag.Add(ah, al), mag.Add(bh, bl))

	mid, _ := mag.Sub(p3, p1)
	mid, sign := mag.Sub(mid, p2)
	// p3 - p1 - p2 is always >= 0 for nonnegative operands; sign tracks
	// the last subtraction but the true result is nonnegative because
	// (ah+al)(bh+bl) = p1+p2+cross and cross >= 0.
	_ = sign

	result := mag.ShiftLeft(p1, 64*half)
	result = mag.Add(result, mag.ShiftLeft(mid, 32*half))
	result = mag.Add(result, p2)
	return result.Normalize()
}

func splitAt(m mag.Mag, half int) (hi, lo mag.Mag) {
	m = m.Normalize()
	if len(m) <= half {
		return nil, m.Clone()
	}
	return m[:len(m)-half].Clone(), m[len(m)-half:].Clone()
}
