package bigint

import (
	"errors"

	"go.firedancer.io/bignum/internal/algomul"
	"go.firedancer.io/bignum/internal/mag"
)

// ErrDivisionByZero is returned by every division-family operation
// when the divisor is zero.
var ErrDivisionByZero = errors.New("bigint: division by zero")

// Add returns x+y.
func Add(x, y *Int) *Int {
	if x.sign == 0 {
		return y
	}
	if y.sign == 0 {
		return x
	}
	if x.sign == y.sign {
		return intern(int(x.sign), mag.Add(x.m, y.m))
	}
	diff, cmp := mag.Sub(x.m, y.m)
	if cmp == 0 {
		return Zero
	}
	sign := int(x.sign)
	if cmp < 0 {
		sign = int(y.sign)
	}
	return intern(sign, diff)
}

// Sub returns x-y.
func Sub(x, y *Int) *Int {
	return Add(x, y.Neg())
}

// Mul returns x*y, dispatching through internal/algomul's size-based
// schoolbook/Karatsuba/Toom-Cook selection (squaring when x and y
// share the same backing magnitude).
func Mul(x, y *Int) *Int {
	if x.sign == 0 || y.sign == 0 {
		return Zero
	}
	var product mag.Mag
	if sameMag(x.m, y.m) {
		product = algomul.Square(x.m)
	} else {
		product = algomul.Multiply(x.m, y.m)
	}
	return intern(int(x.sign)*int(y.sign), product)
}

func sameMag(a, b mag.Mag) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return &a[0] == &b[0]
}

// DivMod returns the quotient and remainder of x/y using truncated
// (toward-zero) division, matching java.math.BigInteger's
// divideAndRemainder: the remainder's sign matches the dividend's.
func DivMod(x, y *Int) (quo, rem *Int, err error) {
	if y.sign == 0 {
		return nil, nil, ErrDivisionByZero
	}
	if x.sign == 0 {
		return Zero, Zero, nil
	}
	q, r, err := mag.Divide(x.m, y.m)
	if err != nil {
		return nil, nil, err
	}
	qSign := int(x.sign) * int(y.sign)
	return intern(qSign, q), intern(int(x.sign), r), nil
}

// Div returns the truncated quotient of x/y.
func Div(x, y *Int) (*Int, error) {
	q, _, err := DivMod(x, y)
	return q, err
}

// Rem returns the truncated remainder of x/y (sign follows x).
func Rem(x, y *Int) (*Int, error) {
	_, r, err := DivMod(x, y)
	return r, err
}

// Mod returns the Euclidean-style nonnegative remainder of x mod y,
// for y > 0, matching java.math.BigInteger.mod: always in [0,y).
func Mod(x, y *Int) (*Int, error) {
	if y.sign <= 0 {
		return nil, errors.New("bigint: modulus must be positive")
	}
	_, r, err := mag.Divide(x.m, y.m)
	if err != nil {
		return nil, err
	}
	result := intern(1, r)
	if x.sign < 0 && result.sign != 0 {
		result = Sub(y, result)
	}
	return result, nil
}
