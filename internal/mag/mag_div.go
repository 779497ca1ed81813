package mag

import (
	"math/bits"
	"errors"

	"go.firedancer.io/bignum/internal/wordops"
)

// ErrDivByZero is returned by every division entry point in this
// package when the divisor is zero.
var ErrDivByZero = errors.New("mag: division by zero")

// BZThreshold and BZOffset gate the Knuth/Burnikel-Ziegler dispatch in
// Divide: below BZThreshold divisor words, or when the dividend isn't
// at least BZOffset words longer than the divisor, Knuth D is used —
// Burnikel-Ziegler's recursive overhead only pays off once both
// operands are genuinely large. These are ABI constants (spec.md §6).
const (
	BZThreshold = 80
	BZOffset    = 40
)

// Divide computes quotient and remainder of a/b (unsigned). Dispatches
// to the one-word fast path, Knuth D, or Burnikel-Ziegler depending on
// operand size.
func Divide(a, b Mag) (q, r Mag, err error) {
	a, b = a.Normalize(), b.Normalize()
	if len(b) == 0 {
		return nil, nil, ErrDivByZero
	}
	if len(b) == 1 {
		quot, rem := DivideOneWord(a, b[0])
		return quot, FromUint64(uint64(rem)), nil
	}
	if Cmp(a, b) < 0 {
		return nil, a.Clone(), nil
	}
	if len(b) < BZThreshold || len(a)-len(b) < BZOffset {
		return knuthDivide(a, b)
	}
	return burnikelZieglerDivide(a, b)
}

// DivideOneWord performs word-by-word long division of m by a single
// nonzero divisor word, producing one quotient word per dividend word
// (after the possibly-short first step) and the final remainder.
func DivideOneWord(m Mag, divisor uint32) (q Mag, rem uint32) {
	m = m.Normalize()
	if len(m) == 0 {
		return nil, 0
	}
	// Fast path matching a 64-bit divide when the dividend fits.
	if len(m) == 1 {
		return Mag{m[0] / divisor}, m[0] % divisor
	}
	shift := wordops.LeadingZeros32(divisor)
	dnorm := divisor << uint(shift)
	// Normalize the dividend by the same shift, with one extra leading
	// word to hold any bits shifted out of m[0].
	work := make([]uint32, len(m)+1)
	if shift == 0 {
		copy(work[1:], m)
	} else {
		var carry uint32
		for i := len(m) - 1; i >= 0; i-- {
			v := uint64(m[i])<<uint(shift) | uint64(carry)
			work[i+1] = uint32(v)
			carry = uint32(v >> 32)
		}
		work[0] = carry
	}
	q = make(Mag, len(m))
	r := work[0]
	for i := 0; i < len(m); i++ {
		hi := r
		lo := work[i+1]
		qi, ri := wordops.DivWide(hi, lo, dnorm)
		q[i] = qi
		r = ri
	}
	return q.Normalize(), r >> uint(shift)
}

// knuthDivide implements Knuth Algorithm D: normalize the divisor so
// its top word's high bit is set, carry the same shift through the
// dividend, then for each output digit estimate qhat from the top two
// normalized divisor-relative dividend words, correct it by trial
// multiply-subtract, and unnormalize the remainder at the end.
func knuthDivide(a, b Mag) (q, r Mag, err error) {
	n := len(b)
	shift := wordops.LeadingZeros32(b[0])

	bn := shiftLeftBits(b, shift)
	// an may need one extra leading word.
	an := shiftLeftBitsExtra(a, shift)

	m := len(an) - n - 1
	if m < 0 {
		m = 0
	}
	qout := make([]uint32, m+1)

	bTop := uint64(bn[0])
	bNext := uint64(0)
	if n > 1 {
		bNext = uint64(bn[1])
	}

	rem := append([]uint32(nil), an...)

	for j := 0; j <= m; j++ {
		// rem[j:j+n+1] is the current n+1-word working window.
		hi := uint64(rem[j])
		lo := uint64(0)
		if j+1 < len(rem) {
			lo = uint64(rem[j+1])
		}
		numerator := hi<<32 | lo
		var qhat, rhat uint64
		if hi == bTop {
			qhat = (1 << 32) - 1
			rhat = lo + bTop
		} else {
			qhat = numerator / bTop
			rhat = numerator % bTop
		}
		for rhat < (1<<32) && n > 1 {
			third := uint64(0)
			if j+2 < len(rem) {
				third = uint64(rem[j+2])
			}
			if qhat*bNext > (rhat<<32)+third {
				qhat--
				rhat += bTop
			} else {
				break
			}
		}

		// Multiply-subtract bn*qhat from rem[j:j+n+1].
		borrow := int64(0)
		var carry uint64
		for k := n - 1; k >= 0; k-- {
			lo, hi := bits.Mul32(bn[k], uint32(qhat))
			prod := uint64(lo) + carry
			carry = uint64(hi) + (prod >> 32)
			prodLo := uint32(prod)
			idx := j + 1 + k
			d := int64(rem[idx]) - int64(prodLo) - borrow
			if d < 0 {
				d += 1 << 32
				borrow = 1
			} else {
				borrow = 0
			}
			rem[idx] = uint32(d)
		}
		d := int64(rem[j]) - int64(carry) - borrow
		negResult := d < 0
		if negResult {
			d += 1 << 32
		}
		rem[j] = uint32(d)

		if negResult {
			qhat--
			// Add bn back into rem[j:j+n].
			var addCarry uint64
			for k := n - 1; k >= 0; k-- {
				idx := j + 1 + k
				sum := uint64(rem[idx]) + uint64(bn[k]) + addCarry
				rem[idx] = uint32(sum)
				addCarry = sum >> 32
			}
			rem[j] = uint32(uint64(rem[j]) + addCarry)
		}
		qout[j] = uint32(qhat)
	}

	remainder := Mag(rem[len(rem)-n:]).Clone()
	remainder = shiftRightBits(remainder, shift)
	return Mag(qout).Normalize(), remainder.Normalize(), nil
}

func shiftLeftBits(m Mag, shift int) Mag {
	if shift == 0 {
		return m.Clone()
	}
	out := make(Mag, len(m))
	var carry uint32
	for i := len(m) - 1; i >= 0; i-- {
		v := uint64(m[i])<<uint(shift) | uint64(carry)
		out[i] = uint32(v)
		carry = uint32(v >> 32)
	}
	return out
}

func shiftLeftBitsExtra(m Mag, shift int) []uint32 {
	if shift == 0 {
		out := make([]uint32, len(m)+1)
		copy(out[1:], m)
		return out
	}
	out := make([]uint32, len(m)+1)
	var carry uint32
	for i := len(m) - 1; i >= 0; i-- {
		v := uint64(m[i])<<uint(shift) | uint64(carry)
		out[i+1] = uint32(v)
		carry = uint32(v >> 32)
	}
	out[0] = carry
	return out
}

func shiftRightBits(m Mag, shift int) Mag {
	if shift == 0 {
		return m
	}
	out := make(Mag, len(m))
	var carry uint32
	for i := 0; i < len(m); i++ {
		out[i] = m[i]>>uint(shift) | carry
		carry = m[i] << uint(32-shift)
	}
	return out
}
