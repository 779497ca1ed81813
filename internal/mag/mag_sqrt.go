package mag

import "math"

// Sqrt returns the integer square root s = floor(sqrt(m)) via Newton
// iteration x_{k+1} = (x_k + m/x_k) / 2, seeded from a float64
// estimate and terminated as soon as the iterate stops decreasing.
func Sqrt(m Mag) Mag {
	m = m.Normalize()
	if len(m) == 0 {
		return nil
	}
	if m.BitLen() <= 63 {
		return sqrtSmall(m.Uint64())
	}

	// Shift m right by an even amount so it fits a positive-float64
	// seed range, seed from math.Sqrt, then shift the seed back by
	// half that amount before iterating in full precision.
	bl := m.BitLen()
	shift := bl - 52
	if shift%2 != 0 {
		shift++
	}
	if shift < 0 {
		shift = 0
	}
	reduced := ShiftRight(m, shift)
	seed := uint64(math.Sqrt(float64(reduced.Uint64())))
	x := ShiftLeft(FromUint64(seed), shift/2)
	if x.IsZero() {
		x = Mag{1}
	}

	for {
		q, _, _ := Divide(m, x)
		sum := Add(x, q)
		next := ShiftRight(sum, 1)
		if Cmp(next, x) >= 0 {
			break
		}
		x = next
	}
	for Multiply(x, x).IsZero() == false && Cmp(Multiply(x, x), m) > 0 {
		x, _ = Sub(x, Mag{1})
	}
	return x
}

func sqrtSmall(n uint64) Mag {
	if n == 0 {
		return nil
	}
	x := uint64(math.Sqrt(float64(n)))
	for x > 0 && x*x > n {
		x--
	}
	for (x+1)*(x+1) <= n {
		x++
	}
	return FromUint64(x)
}

// SqrtAndRemainder returns (s, m - s*s) where s = Sqrt(m).
func SqrtAndRemainder(m Mag) (s, rem Mag) {
	s = Sqrt(m)
	rem, _ = Sub(m, Multiply(s, s))
	return s, rem
}
