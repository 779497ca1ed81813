package bigint

import (
	"errors"

	"go.firedancer.io/bignum/internal/mag"
	"go.firedancer.io/bignum/pkg/primetest"
)

// ErrInvalidBitLength is returned by ProbablePrime for a non-positive
// bit length.
var ErrInvalidBitLength = errors.New("bigint: bit length must be positive")

// IsProbablyPrime reports whether x is probably prime with the given
// certainty, per java.math.BigInteger.isProbablePrime's contract:
// certainty values closer to 100 cost more Miller-Rabin rounds but
// shrink the false-positive probability toward 2^-certainty.
func (x *Int) IsProbablyPrime(certainty int) bool {
	if x.sign <= 0 {
		return false
	}
	if len(x.m) == 1 && x.m[0] <= 1 {
		return false
	}
	if len(x.m) == 1 && x.m[0] == 2 {
		return true
	}
	if x.m[len(x.m)-1]&1 == 0 {
		return false
	}
	if !primetest.PassesTrialDivision(x.m) {
		return false
	}
	ok, err := primetest.IsProbablyPrime(x.m, certainty, nil)
	if err != nil {
		return false
	}
	return ok
}

// ProbablePrime returns a random probable prime of the given bit
// length, with failure probability bounded as 2^-100, following
// java.math.BigInteger(int bitLength, Random rnd)'s "probable prime"
// constructor: repeatedly sieve a random odd candidate against the
// small-prime trial-division pre-screen, then run the full
// Miller-Rabin/Lucas test on survivors.
func ProbablePrime(bitLength int, src primetest.ByteSource) (*Int, error) {
	if bitLength <= 0 {
		return nil, ErrInvalidBitLength
	}
	if src == nil {
		src = primetest.DefaultSource
	}
	if bitLength < 2 {
		return Two, nil
	}
	byteLen := (bitLength + 7) / 8
	buf := make([]byte, byteLen)
	for {
		if err := src.NextBytes(buf); err != nil {
			return nil, err
		}
		excess := byteLen*8 - bitLength
		if excess > 0 {
			buf[0] &= 0xFF >> uint(excess)
		}
		buf[0] |= 1 << uint(7-excess%8) // force the top bit so the length is exact
		buf[len(buf)-1] |= 1            // force odd

		m := bytesToMagLocal(buf)
		if m.BitLen() != bitLength {
			continue
		}
		if !primetest.PassesTrialDivision(m) {
			continue
		}
		ok, err := primetest.IsProbablyPrimeCached(m, 100, src)
		if err != nil {
			return nil, err
		}
		if ok {
			return intern(1, m), nil
		}
	}
}

func bytesToMagLocal(b []byte) mag.Mag {
	for len(b) > 0 && b[0] == 0 {
		b = b[1:]
	}
	n := (len(b) + 3) / 4
	out := make(mag.Mag, n)
	padded := make([]byte, n*4)
	copy(padded[n*4-len(b):], b)
	for i := 0; i < n; i++ {
		out[i] = uint32(padded[i*4])<<24 | uint32(padded[i*4+1])<<16 | uint32(padded[i*4+2])<<8 | uint32(padded[i*4+3])
	}
	return out.Normalize()
}

// NextProbablePrime returns the smallest probable prime strictly
// greater than x, per java.math.BigInteger.nextProbablePrime.
func (x *Int) NextProbablePrime() (*Int, error) {
	if x.sign < 0 {
		return nil, errors.New("bigint: nextProbablePrime requires a nonnegative value")
	}
	if x.Cmp(Two) < 0 {
		return Two, nil
	}
	candidate := Add(x, One)
	if candidate.m[len(candidate.m)-1]&1 == 0 {
		candidate = Add(candidate, One)
	}
	for {
		if candidate.IsProbablyPrime(100) {
			return candidate, nil
		}
		candidate = Add(candidate, Two)
	}
}
