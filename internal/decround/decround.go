// Package decround implements the divide-and-round kernels
// spec.md §4.7 calls DecDivRound: the rounding-mode-aware integer
// division primitives pkg/bigdecimal's divide operations bottom out
// in, specialized for the i64/i64, 128-by-64, and BigInt paths so the
// common compact-long fast path never pays for a BigInt allocation.
package decround

import (
	"errors"
	"math/bits"

	"go.firedancer.io/bignum/internal/mag"
)

// RoundingMode mirrors java.math.RoundingMode's eight variants.
type RoundingMode int

const (
	Up RoundingMode = iota
	Down
	Ceiling
	Floor
	HalfUp
	HalfDown
	HalfEven
	Unnecessary
)

// ErrRoundingNecessary is returned by any kernel under Unnecessary
// mode when a nonzero remainder would require rounding.
var ErrRoundingNecessary = errors.New("decround: rounding necessary")

// NeedIncrement decides whether to add qsign (the quotient's sign, as
// -1 or +1) to q, given the divisor, remainder, and rounding mode;
// this is spec.md §4.7's needIncrement, the shared decision kernel
// every divide-and-round path below bottoms out in.
func NeedIncrement(divisorAbs, remAbs uint64, mode RoundingMode, qsign int, qOdd bool) (bool, error) {
	if remAbs == 0 {
		return false, nil
	}
	switch mode {
	case Up:
		return true, nil
	case Down:
		return false, nil
	case Ceiling:
		return qsign > 0, nil
	case Floor:
		return qsign < 0, nil
	case Unnecessary:
		return false, ErrRoundingNecessary
	}
	// HALF_* family: compare 2*|r| to |divisor|.
	twiceR := remAbs * 2
	twiceROverflow := remAbs > (^uint64(0))/2
	var cmp int
	if twiceROverflow || twiceR > divisorAbs {
		cmp = 1
	} else if twiceR < divisorAbs {
		cmp = -1
	} else {
		cmp = 0
	}
	switch mode {
	case HalfDown:
		return cmp > 0, nil
	case HalfUp:
		return cmp >= 0, nil
	case HalfEven:
		if cmp > 0 {
			return true, nil
		}
		if cmp < 0 {
			return false, nil
		}
		return qOdd, nil
	}
	return false, errors.New("decround: unknown rounding mode")
}

// DivideAndRoundInt64 implements the (i64,i64) kernel: plain hardware
// division then NeedIncrement.
func DivideAndRoundInt64(dividend, divisor int64, mode RoundingMode) (int64, error) {
	q := dividend / divisor
	r := dividend % divisor
	qsign := 1
	if (dividend < 0) != (divisor < 0) {
		qsign = -1
	}
	rAbs := uint64(r)
	if r < 0 {
		rAbs = uint64(-r)
	}
	dAbs := uint64(divisor)
	if divisor < 0 {
		dAbs = uint64(-divisor)
	}
	inc, err := NeedIncrement(dAbs, rAbs, mode, qsign, q&1 != 0)
	if err != nil {
		return 0, err
	}
	if inc {
		q += int64(qsign)
	}
	return q, nil
}

// DivideAndRound128By64 implements spec.md §4.7's 128-by-64
// specialization, used when a raise factor multiplied into the
// dividend would overflow int64 but still fits in 128 bits. dividendHi
// holds the sign-extended high 64 bits and dividendLo the low 64 bits
// of the (signed) 128-bit dividend; divisor is a nonzero int64.
// Returns ok=false when the true quotient does not fit in an int64,
// signaling the caller to fall back to full BigInt division.
func DivideAndRound128By64(dividendHi uint64, dividendLo uint64, divisor int64, mode RoundingMode) (result int64, ok bool, err error) {
	negDividend := int64(dividendHi) < 0
	negDivisor := divisor < 0

	hi, lo := dividendHi, dividendLo
	if negDividend {
		lo, hi = negate128(hi, lo)
	}
	dAbs := uint64(divisor)
	if negDivisor {
		dAbs = uint64(-divisor)
	}

	if hi >= dAbs {
		// Quotient would need more than 64 bits.
		return 0, false, nil
	}

	q, r := bits.Div64(hi, lo, dAbs)

	qsign := 1
	if negDividend != negDivisor {
		qsign = -1
	}
	if q > 1<<63 {
		return 0, false, nil
	}
	if q == 1<<63 && qsign > 0 {
		return 0, false, nil
	}

	inc, err := NeedIncrement(dAbs, r, mode, qsign, q&1 != 0)
	if err != nil {
		return 0, false, err
	}
	signedQ := int64(q)
	if qsign < 0 {
		signedQ = -signedQ
	}
	if inc {
		signedQ += int64(qsign)
	}
	return signedQ, true, nil
}

func negate128(hi, lo uint64) (newHi, newLo uint64) {
	lo = ^lo + 1
	hi = ^hi
	if lo == 0 {
		hi++
	}
	return hi, lo
}

// DivideAndRoundMag implements the (BigInt, BigInt) and (BigInt, i64)
// kernels by delegating to internal/mag.Divide and applying
// NeedIncrement on the magnitude-level remainder/divisor comparison
// (2|r| vs |divisor|, computed via mag.Cmp on a shifted remainder
// rather than a 64-bit compare since both operands may be arbitrarily
// large).
func DivideAndRoundMag(dividend, divisor mag.Mag, dividendSign, divisorSign int, mode RoundingMode) (quo mag.Mag, quoSign int, err error) {
	q, r, err := mag.Divide(dividend, divisor)
	if err != nil {
		return nil, 0, err
	}
	qsign := dividendSign * divisorSign
	if r.IsZero() {
		return q, qsign, nil
	}
	inc, err := needIncrementMag(divisor, r, mode, qsign, q)
	if err != nil {
		return nil, 0, err
	}
	if inc {
		q = mag.Add(q, mag.Mag{1})
	}
	return q, qsign, nil
}

func needIncrementMag(divisor, r mag.Mag, mode RoundingMode, qsign int, q mag.Mag) (bool, error) {
	if r.IsZero() {
		return false, nil
	}
	switch mode {
	case Up:
		return true, nil
	case Down:
		return false, nil
	case Ceiling:
		return qsign > 0, nil
	case Floor:
		return qsign < 0, nil
	case Unnecessary:
		return false, ErrRoundingNecessary
	}
	twiceR := mag.ShiftLeft(r, 1)
	cmp := mag.Cmp(twiceR, divisor)
	switch mode {
	case HalfDown:
		return cmp > 0, nil
	case HalfUp:
		return cmp >= 0, nil
	case HalfEven:
		if cmp > 0 {
			return true, nil
		}
		if cmp < 0 {
			return false, nil
		}
		qOdd := len(q) > 0 && q[len(q)-1]&1 == 1
		return qOdd, nil
	}
	return false, errors.New("decround: unknown rounding mode")
}
