// Package primetest implements spec.md §4.6: Miller-Rabin compositeness
// testing strengthened with a Lucas strong probable-prime test for
// large candidates, plus a small-prime trial-division pre-screen for
// candidate generation.
package primetest

import (
	"crypto/rand"
	"io"

	"go.firedancer.io/bignum/internal/mag"
)

// ByteSource is the external uniform-bytes collaborator spec.md §6
// calls for: primality testing consumes randomness only through this
// interface, never a global RNG.
type ByteSource interface {
	NextBytes(buf []byte) error
}

// cryptoRandSource adapts crypto/rand as the default ByteSource.
type cryptoRandSource struct{}

func (cryptoRandSource) NextBytes(buf []byte) error {
	_, err := io.ReadFull(rand.Reader, buf)
	return err
}

// DefaultSource is the default random-bytes provider.
var DefaultSource ByteSource = cryptoRandSource{}

// smallPrimes are the trial-division pre-screen divisors, 3 through
// 41, per spec.md §4.6.
var smallPrimes = []uint32{3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41}

// smallPrimesProduct is the product of smallPrimes, used for a single
// GCD-based pre-screen instead of one division per prime.
var smallPrimesProduct = func() mag.Mag {
	p := mag.Mag{1}
	for _, sp := range smallPrimes {
		p = mag.MulWord(p, sp)
	}
	return p
}()

// PassesTrialDivision reports whether n (odd, >2) is not divisible by
// any of the small pre-screen primes — a cheap rejection filter used
// by candidate generators before paying for Miller-Rabin.
func PassesTrialDivision(n mag.Mag) bool {
	g := mag.HybridGCD(n, smallPrimesProduct)
	return len(g) == 1 && g[0] == 1
}

// roundsForCertainty maps a requested certainty to a Miller-Rabin
// round count, capped by bit-length per spec.md §4.6's size-based
// table.
func roundsForCertainty(certainty int, bitLen int) int {
	rounds := (certainty + 1) / 2
	var cap int
	switch {
	case bitLen < 100:
		cap = 50
	case bitLen < 256:
		cap = 27
	case bitLen < 512:
		cap = 15
	case bitLen < 768:
		cap = 8
	case bitLen < 1024:
		cap = 4
	default:
		cap = 2
	}
	if rounds > cap {
		rounds = cap
	}
	if rounds < 1 {
		rounds = 1
	}
	return rounds
}

// IsProbablyPrime implements spec.md §4.6's is_probably_prime: assumes
// n > 2 and odd. Runs Miller-Rabin for the certainty-derived round
// count, then — for candidates at least 100 bits — one Lucas strong
// probable-prime test.
func IsProbablyPrime(n mag.Mag, certainty int, src ByteSource) (bool, error) {
	if src == nil {
		src = DefaultSource
	}
	bitLen := n.BitLen()
	rounds := roundsForCertainty(certainty, bitLen)

	ok, err := millerRabin(n, rounds, src)
	if err != nil || !ok {
		return false, err
	}
	if bitLen >= 100 {
		if !lucasStrongTest(n) {
			return false, nil
		}
	}
	return true, nil
}
