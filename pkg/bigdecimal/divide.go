package bigdecimal

import (
	"errors"

	"go.firedancer.io/bignum/internal/decround"
	"go.firedancer.io/bignum/pkg/bigint"
)

// ErrDivisionByZero is returned by every Divide variant when the
// divisor is zero.
var ErrDivisionByZero = errors.New("bigdecimal: division by zero")

// DivideScaled returns a/b rescaled to preferredScale and rounded per
// mode, per spec.md §4.7's "division with explicit scale+rounding"
// kernel: align scales, then delegate to divide_and_round.
func DivideScaled(a, b *Decimal, preferredScale int32, mode RoundingMode) (*Decimal, error) {
	if b.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	if a.Sign() == 0 {
		return fromCompact(0, preferredScale), nil
	}

	// Scale the dividend so the quotient comes out at preferredScale:
	// we need a.scale - b.scale + shift == preferredScale, i.e. shift
	// == preferredScale - a.scale + b.scale applied to the dividend's
	// unscaled value (an extra power of ten multiplied in before
	// dividing).
	shift := preferredScale - a.scale + b.scale
	dividendUnscaled := a.unscaledBig()
	if shift > 0 {
		dividendUnscaled = bigint.Mul(dividendUnscaled, powerOfTen(int(shift)))
	}
	divisorUnscaled := b.unscaledBig()
	if shift < 0 {
		divisorUnscaled = bigint.Mul(divisorUnscaled, powerOfTen(int(-shift)))
	}

	q, r, err := bigint.DivMod(dividendUnscaled, divisorUnscaled)
	if err != nil {
		return nil, err
	}
	absQ := q.Abs()
	qsign := dividendUnscaled.Sign() * divisorUnscaled.Sign()
	inc, err := needIncrementBig(divisorUnscaled.Abs(), r.Abs(), mode, qsign, absQ)
	if err != nil {
		return nil, err
	}
	if inc {
		absQ = bigint.Add(absQ, bigint.One)
	}
	if qsign < 0 {
		absQ = absQ.Neg()
	}
	return fromInflated(absQ, preferredScale), nil
}

// DivideExact returns a/b with no rounding, erroring under the
// Unnecessary contract (spec.md §7's ArithmeticError) if the division
// is not exact at the natural preferred scale a.scale-b.scale.
func DivideExact(a, b *Decimal) (*Decimal, error) {
	return DivideScaled(a, b, a.scale-b.scale, decround.Unnecessary)
}

// DivideContext implements spec.md §4.7's MathContext-driven division:
// scale the dividend (or the divisor) by a power of ten so the integer
// quotient carries ctx.Precision plus two or three significant digits,
// append a sticky digit when that quotient is inexact, then DoRound to
// ctx.Precision. An exact result then has its trailing zeros stripped
// down toward, but not below, the preferred scale a.scale-b.scale.
func DivideContext(a, b *Decimal, ctx MathContext) (*Decimal, error) {
	if b.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	if ctx.Precision == 0 {
		return DivideExact(a, b)
	}
	if a.Sign() == 0 {
		return fromCompact(0, a.scale-b.scale), nil
	}

	preferredScale := a.scale - b.scale

	aUnscaled := a.unscaledBig().Abs()
	bUnscaled := b.unscaledBig().Abs()

	// Extra guard digits beyond the requested precision so the final
	// DoRound sees enough trailing information to round correctly.
	extraDigits := int(ctx.Precision) + 2

	// Scale up the dividend so the quotient carries
	// precision-plus-guard significant digits: compare digit counts
	// and shift by the difference plus the guard.
	aDigits := decimalTextLen(aUnscaled)
	bDigits := decimalTextLen(bUnscaled)
	shift := (bDigits - aDigits) + extraDigits
	workScale := preferredScale + int32(shift)
	if shift > 0 {
		aUnscaled = bigint.Mul(aUnscaled, powerOfTen(shift))
	} else if shift < 0 {
		bUnscaled = bigint.Mul(bUnscaled, powerOfTen(-shift))
	}

	q, rem, err := bigint.DivMod(aUnscaled, bUnscaled)
	if err != nil {
		return nil, err
	}
	if !rem.IsZero() {
		q = bigint.Add(bigint.Mul(q, bigint.Ten), bigint.One)
		workScale++
	}
	sign := a.Sign() * b.Sign()
	if sign < 0 {
		q = q.Neg()
	}
	result := fromInflated(q, workScale)
	rounded, err := DoRound(result, ctx)
	if err != nil || !rem.IsZero() || Cmp(rounded, result) != 0 {
		return rounded, err
	}
	for rounded.scale > preferredScale {
		q, r, _ := bigint.DivMod(rounded.unscaledBig(), bigint.Ten)
		if !r.IsZero() {
			break
		}
		rounded = fromInflated(q, rounded.scale-1)
	}
	return rounded, nil
}

func decimalTextLen(v *bigint.Int) int {
	if v.IsZero() {
		return 1
	}
	return len(v.Text(10))
}
