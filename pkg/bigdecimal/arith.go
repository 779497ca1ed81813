package bigdecimal

import (
	"math/bits"

	"go.firedancer.io/bignum/pkg/bigint"
)

// Add returns a+b, with preferred scale max(a.scale, b.scale), per
// spec.md §4.7.
func Add(a, b *Decimal) (*Decimal, error) {
	if a.scale == b.scale {
		return addAligned(a, b, a.scale)
	}
	if a.scale < b.scale {
		rescaled, err := rescaleUnscaled(a, b.scale-a.scale)
		if err != nil {
			return nil, err
		}
		return addAligned(rescaled, b, b.scale)
	}
	rescaled, err := rescaleUnscaled(b, a.scale-b.scale)
	if err != nil {
		return nil, err
	}
	return addAligned(a, rescaled, a.scale)
}

// rescaleUnscaled returns a Decimal equal to d but with its unscaled
// value multiplied by 10^n (n >= 0), widening to the inflated
// representation on overflow.
func rescaleUnscaled(d *Decimal, n int32) (*Decimal, error) {
	if n == 0 {
		return d, nil
	}
	newScale, err := addScale(d.scale, n)
	if err != nil {
		return nil, err
	}
	if !d.isInflated() && n <= 18 {
		hi, lo := bits.Mul64(absU64(d.intCompact), uint64(longTenPowers[n]))
		if hi == 0 && lo <= 1<<63 {
			v := int64(lo)
			if d.intCompact < 0 {
				v = -v
			}
			return fromCompact(v, newScale), nil
		}
	}
	scaled := bigint.Mul(d.unscaledBig(), powerOfTen(int(n)))
	return fromInflated(scaled, newScale), nil
}

func powerOfTen(n int) *bigint.Int {
	return bigTenToThe(n)
}

func absU64(v int64) uint64 {
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}

func addAligned(a, b *Decimal, scale int32) (*Decimal, error) {
	if !a.isInflated() && !b.isInflated() {
		sum, carry := bits.Add64(uint64(a.intCompact), uint64(b.intCompact), 0)
		_ = carry
		overflow := ((a.intCompact > 0 && b.intCompact > 0 && int64(sum) < 0) ||
			(a.intCompact < 0 && b.intCompact < 0 && int64(sum) >= 0))
		if !overflow {
			return fromCompact(int64(sum), scale), nil
		}
	}
	sum := bigint.Add(a.unscaledBig(), b.unscaledBig())
	return fromInflated(sum, scale), nil
}

// Sub returns a-b.
func Sub(a, b *Decimal) (*Decimal, error) {
	return Add(a, Neg(b))
}

// Neg returns -d.
func Neg(d *Decimal) *Decimal {
	if d.isInflated() {
		return fromInflated(d.inflated.Neg(), d.scale)
	}
	if d.intCompact == inflatedSentinel {
		return fromInflated(bigint.FromInt64(d.intCompact).Neg(), d.scale)
	}
	return fromCompact(-d.intCompact, d.scale)
}

// Abs returns |d|.
func Abs(d *Decimal) *Decimal {
	if d.Sign() < 0 {
		return Neg(d)
	}
	return d
}

// Mul returns a*b, with preferred scale a.scale+b.scale, per
// spec.md §4.7.
func Mul(a, b *Decimal) (*Decimal, error) {
	newScale, err := addScale(a.scale, b.scale)
	if err != nil {
		return nil, err
	}
	if !a.isInflated() && !b.isInflated() {
		hi, lo := bits.Mul64(absU64(a.intCompact), absU64(b.intCompact))
		if hi == 0 && lo <= 1<<63 {
			v := int64(lo)
			if (a.intCompact < 0) != (b.intCompact < 0) {
				v = -v
			}
			if lo != 1<<63 || (a.intCompact < 0) != (b.intCompact < 0) {
				return fromCompact(v, newScale), nil
			}
		}
	}
	product := bigint.Mul(a.unscaledBig(), b.unscaledBig())
	return fromInflated(product, newScale), nil
}
