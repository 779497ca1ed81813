package bigint

import (
	"errors"

	"go.firedancer.io/bignum/internal/algomul"
	"go.firedancer.io/bignum/internal/mag"
)

// Pow returns x^exp for exp >= 0, via binary exponentiation routed
// through algomul.Multiply/Square so large powers exercise the same
// Karatsuba/Toom-Cook dispatch as ordinary multiplication.
func Pow(x *Int, exp int) *Int {
	if exp < 0 {
		panic("bigint: negative exponent")
	}
	if exp == 0 {
		return One
	}
	if x.sign == 0 {
		return Zero
	}
	resultSign := 1
	if x.sign < 0 && exp%2 == 1 {
		resultSign = -1
	}
	base := x.m
	result := mag.Mag{1}
	for e := exp; e > 0; e >>= 1 {
		if e&1 == 1 {
			result = algomul.Multiply(result, base)
		}
		e2 := e >> 1
		if e2 > 0 {
			base = algomul.Square(base)
		}
	}
	return intern(resultSign, result)
}

// GCD returns the nonnegative greatest common divisor of x and y,
// via internal/mag's hybrid Euclid/binary-GCD.
func GCD(x, y *Int) *Int {
	g := mag.HybridGCD(x.m, y.m)
	return intern(1, g)
}

// ModPow returns x^exp mod m for m > 0, handling negative exponents
// as ModInverse(x,m)^(-exp) per java.math.BigInteger.modPow's
// contract. Dispatches to Montgomery reduction when m is odd (the
// common case for cryptographic-style exponentiation), falling back
// to plain square-and-reduce otherwise.
func ModPow(x, exp, m *Int) (*Int, error) {
	if m.sign <= 0 {
		return nil, errors.New("bigint: modulus must be positive")
	}
	if m.sign != 0 && len(m.m) == 1 && m.m[0] == 1 {
		return Zero, nil
	}
	base := x
	e := exp
	if e.sign < 0 {
		inv, err := ModInverse(x, m)
		if err != nil {
			return nil, err
		}
		base = inv
		e = e.Neg()
	}
	_, baseMod, err := mag.Divide(base.Abs().m, m.m)
	if err != nil {
		return nil, err
	}
	if base.sign < 0 && !baseMod.IsZero() {
		baseMod, _ = mag.Sub(m.m, baseMod)
	}

	var resultMag mag.Mag
	if m.m[len(m.m)-1]&1 == 1 {
		resultMag = montgomeryModPow(baseMod, e.m, m.m)
	} else {
		resultMag = plainModPow(baseMod, e.m, m.m)
	}
	return intern(1, resultMag), nil
}

func plainModPow(base, exp, m mag.Mag) mag.Mag {
	result := mag.Mag{1}
	_, result, _ = mag.Divide(result, m)
	for i := exp.BitLen() - 1; i >= 0; i-- {
		result = algomul.Square(result)
		_, result, _ = mag.Divide(result, m)
		if exp.TestBit(i) {
			result = algomul.Multiply(result, base)
			_, result, _ = mag.Divide(result, m)
		}
	}
	return result
}

// montgomeryModPow performs modular exponentiation in Montgomery
// form: convert base into Montgomery space (base*R mod m), run the
// square-and-multiply loop with algomul.MontReduce replacing the
// reduction step, then convert the result back out of Montgomery
// space with one final reduction.
func montgomeryModPow(base, exp, m mag.Mag) mag.Mag {
	mlen := len(m)
	inv := algomul.NegModInverse32(m[len(m)-1])

	// rSquared = R^2 mod m, R = 2^(32*mlen): 2^(64*mlen) reduced mod m
	// directly, one reduction only. A second Square+Divide here would
	// yield R^4 mod m and throw off every Montgomery invariant below.
	rSquared := mag.ShiftLeft(mag.Mag{1}, 64*mlen)
	_, rSquared, _ = mag.Divide(rSquared, m)

	baseMont := algomul.MontReduce(algomul.Multiply(base, rSquared), m, mlen, inv)
	result := algomul.MontReduce(rSquared, m, mlen, inv) // 1 in Montgomery form

	for i := exp.BitLen() - 1; i >= 0; i-- {
		result = algomul.MontReduce(algomul.Square(result), m, mlen, inv)
		if exp.TestBit(i) {
			result = algomul.MontReduce(algomul.Multiply(result, baseMont), m, mlen, inv)
		}
	}
	return algomul.MontReduce(result, m, mlen, inv)
}

// ModInverse returns x^-1 mod m.
func ModInverse(x, m *Int) (*Int, error) {
	if m.sign <= 0 {
		return nil, errors.New("bigint: modulus must be positive")
	}
	_, xMod, err := mag.Divide(x.Abs().m, m.m)
	if err != nil {
		return nil, err
	}
	if x.sign < 0 && !xMod.IsZero() {
		xMod, _ = mag.Sub(m.m, xMod)
	}
	inv, err := mag.ModInverse(xMod, m.m)
	if err != nil {
		return nil, err
	}
	return intern(1, inv), nil
}
