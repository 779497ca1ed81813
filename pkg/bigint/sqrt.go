package bigint

import (
	"errors"

	"go.firedancer.io/bignum/internal/mag"
)

// ErrNegativeSqrt is returned by Sqrt/SqrtAndRemainder for a negative
// operand.
var ErrNegativeSqrt = errors.New("bigint: square root of negative value")

// Sqrt returns floor(sqrt(x)) for x >= 0.
func Sqrt(x *Int) (*Int, error) {
	if x.sign < 0 {
		return nil, ErrNegativeSqrt
	}
	if x.sign == 0 {
		return Zero, nil
	}
	return intern(1, mag.Sqrt(x.m)), nil
}

// SqrtAndRemainder returns floor(sqrt(x)) and x - floor(sqrt(x))^2.
func SqrtAndRemainder(x *Int) (s, rem *Int, err error) {
	if x.sign < 0 {
		return nil, nil, ErrNegativeSqrt
	}
	if x.sign == 0 {
		return Zero, Zero, nil
	}
	sm, rm := mag.SqrtAndRemainder(x.m)
	return intern(1, sm), intern(1, rm), nil
}
