package bigdecimal

import "go.firedancer.io/bignum/pkg/bigint"

// Cmp compares a and b by value (scale-independent): -1, 0, +1.
func Cmp(a, b *Decimal) int {
	sa, sb := a.Sign(), b.Sign()
	if sa != sb {
		if sa < sb {
			return -1
		}
		return 1
	}
	if sa == 0 {
		return 0
	}
	if a.scale == b.scale {
		if !a.isInflated() && !b.isInflated() {
			switch {
			case a.intCompact < b.intCompact:
				return -1
			case a.intCompact > b.intCompact:
				return 1
			default:
				return 0
			}
		}
		return a.unscaledBig().Cmp(b.unscaledBig())
	}
	// Align scales by cross-multiplying against 10^|scaleDiff| so no
	// precision is lost comparing across different scales.
	if a.scale < b.scale {
		scaled, err := rescaleUnscaled(a, b.scale-a.scale)
		if err != nil {
			return bigint.Mul(a.unscaledBig(), powerOfTen(int(b.scale-a.scale))).Cmp(b.unscaledBig())
		}
		return scaled.unscaledBig().Cmp(b.unscaledBig())
	}
	scaled, err := rescaleUnscaled(b, a.scale-b.scale)
	if err != nil {
		return a.unscaledBig().Cmp(bigint.Mul(b.unscaledBig(), powerOfTen(int(a.scale-b.scale))))
	}
	return a.unscaledBig().Cmp(scaled.unscaledBig())
}

// Equal reports whether a and b represent the same numeric value
// (2.0 and 2.00 are Equal but not identical representations).
func Equal(a, b *Decimal) bool {
	return Cmp(a, b) == 0
}
