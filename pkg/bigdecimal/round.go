package bigdecimal

import (
	"sync/atomic"

	"go.firedancer.io/bignum/internal/decround"
	"go.firedancer.io/bignum/pkg/bigint"
)

// Precision returns the number of digits in d's unscaled value
// (treating zero as having precision 1).
func (d *Decimal) Precision() int {
	if v := atomic.LoadInt32(&d.precisionCache); v != 0 {
		return int(v - 1)
	}
	var p int
	if d.isInflated() {
		s := d.inflated.Abs().Text(10)
		p = len(s)
	} else {
		p = decimalDigitCount(absU64(d.intCompact))
	}
	atomic.StoreInt32(&d.precisionCache, int32(p)+1)
	return p
}

func decimalDigitCount(v uint64) int {
	if v == 0 {
		return 1
	}
	n := 0
	for v > 0 {
		n++
		v /= 10
	}
	return n
}

// SetScale returns d rescaled to newScale, rounding with mode if
// newScale < d.scale (losing digits) and erroring under Unnecessary
// mode when the truncation would be lossy.
func SetScale(d *Decimal, newScale int32, mode RoundingMode) (*Decimal, error) {
	if newScale == d.scale {
		return d, nil
	}
	if newScale > d.scale {
		return rescaleUnscaled(d, newScale-d.scale)
	}
	drop := d.scale - newScale
	if !d.isInflated() && drop <= 18 {
		divisor := longTenPowers[drop]
		q, err := decround.DivideAndRoundInt64(d.intCompact, divisor, mode)
		if err != nil {
			return nil, err
		}
		return fromCompact(q, newScale), nil
	}
	divisor := powerOfTen(int(drop))
	q, sign, err := divideAndRoundBig(d.unscaledBig(), divisor, mode)
	if err != nil {
		return nil, err
	}
	if sign < 0 {
		q = q.Neg()
	}
	return fromInflated(q, newScale), nil
}

func divideAndRoundBig(dividend, divisor *bigint.Int, mode RoundingMode) (*bigint.Int, int, error) {
	q, r, err := bigint.DivMod(dividend, divisor)
	if err != nil {
		return nil, 0, err
	}
	absQ := q.Abs()
	qsign := dividend.Sign() * divisor.Sign()
	inc, err := needIncrementBig(divisor.Abs(), r.Abs(), mode, qsign, absQ)
	if err != nil {
		return nil, 0, err
	}
	if inc {
		absQ = bigint.Add(absQ, bigint.One)
	}
	return absQ, qsign, nil
}

func needIncrementBig(divisorAbs, remAbs *bigint.Int, mode RoundingMode, qsign int, q *bigint.Int) (bool, error) {
	if remAbs.IsZero() {
		return false, nil
	}
	switch mode {
	case decround.Up:
		return true, nil
	case decround.Down:
		return false, nil
	case decround.Ceiling:
		return qsign > 0, nil
	case decround.Floor:
		return qsign < 0, nil
	case decround.Unnecessary:
		return false, decround.ErrRoundingNecessary
	}
	twiceR := bigint.Mul(remAbs, bigint.Two)
	cmp := twiceR.Cmp(divisorAbs)
	switch mode {
	case decround.HalfDown:
		return cmp > 0, nil
	case decround.HalfUp:
		return cmp >= 0, nil
	case decround.HalfEven:
		if cmp > 0 {
			return true, nil
		}
		if cmp < 0 {
			return false, nil
		}
		return q.TestBit(0), nil
	}
	return false, nil
}

// StripTrailingZeros returns d with all trailing fractional zeros
// removed from its unscaled value, lowering scale to match (but never
// lowering scale below whatever would reintroduce a sign ambiguity
// for zero).
func StripTrailingZeros(d *Decimal) *Decimal {
	if d.Sign() == 0 {
		return fromCompact(0, 0)
	}
	cur := d
	for {
		q, r, err := bigint.DivMod(cur.unscaledBig(), bigint.Ten)
		if err != nil || !r.IsZero() {
			break
		}
		if cur.scale == -(1<<31) {
			break
		}
		cur = fromInflated(q, cur.scale-1)
	}
	return cur
}

// DoRound implements spec.md §4.7's doRound: if d's precision exceeds
// ctx.Precision (and ctx.Precision > 0), divide-and-round by
// 10^(precision-targetPrecision) under ctx.Mode, iterating because a
// rounding carry (999->1000) can itself need one more round of
// trimming.
func DoRound(d *Decimal, ctx MathContext) (*Decimal, error) {
	if ctx.Precision == 0 {
		return d, nil
	}
	cur := d
	for {
		p := cur.Precision()
		if p <= int(ctx.Precision) {
			return cur, nil
		}
		drop := int32(p - int(ctx.Precision))
		newScale := cur.scale - drop
		rounded, err := SetScale(cur, newScale, ctx.Mode)
		if err != nil {
			return nil, err
		}
		cur = rounded
	}
}
