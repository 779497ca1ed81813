package primetest

import (
	"testing"

	"go.firedancer.io/bignum/internal/mag"
)

// fixedSource hands out a deterministic byte stream so Miller-Rabin's
// witness selection is reproducible in tests.
type fixedSource struct {
	b byte
}

func (s *fixedSource) NextBytes(buf []byte) error {
	for i := range buf {
		buf[i] = s.b
		s.b += 0x2f
	}
	return nil
}

func magFromUint64(v uint64) mag.Mag {
	return mag.FromUint64(v)
}

var smallPrimesList = []uint64{3, 5, 7, 11, 13, 101, 1009, 7919, 104729}
var smallCompositesList = []uint64{9, 15, 21, 25, 49, 91, 561, 1105, 1729}

func TestIsProbablyPrimeSmallPrimes(t *testing.T) {
	src := &fixedSource{b: 7}
	for _, p := range smallPrimesList {
		ok, err := IsProbablyPrime(magFromUint64(p), 50, src)
		if err != nil {
			t.Fatalf("IsProbablyPrime(%d): %v", p, err)
		}
		if !ok {
			t.Errorf("IsProbablyPrime(%d) = false, want true", p)
		}
	}
}

func TestIsProbablyPrimeCarmichael(t *testing.T) {
	// 561, 1105, 1729 are the first three Carmichael numbers: Fermat
	// witnesses alone can miss them, which is exactly why Miller-Rabin
	// (not a bare Fermat test) is required here.
	src := &fixedSource{b: 11}
	for _, c := range smallCompositesList {
		ok, err := IsProbablyPrime(magFromUint64(c), 50, src)
		if err != nil {
			t.Fatalf("IsProbablyPrime(%d): %v", c, err)
		}
		if ok {
			t.Errorf("IsProbablyPrime(%d) = true, want false", c)
		}
	}
}

func TestPassesTrialDivision(t *testing.T) {
	if !PassesTrialDivision(magFromUint64(101)) {
		t.Errorf("PassesTrialDivision(101) = false, want true")
	}
	if PassesTrialDivision(magFromUint64(91)) {
		t.Errorf("PassesTrialDivision(91) = true, want false (91 = 7*13)")
	}
}

func TestRoundsForCertaintyMonotone(t *testing.T) {
	low := roundsForCertainty(20, 200)
	high := roundsForCertainty(100, 200)
	if high < low {
		t.Errorf("roundsForCertainty not monotone in certainty: %d rounds at 100 vs %d at 20", high, low)
	}
}

func TestJacobiSymbolKnownValues(t *testing.T) {
	cases := []struct {
		a    int64
		n    uint64
		want int
	}{
		{5, 21, 1},
		{2, 9, 1},
		{3, 7, -1},
	}
	for _, c := range cases {
		got := jacobiSymbol(c.a, magFromUint64(c.n))
		if got != c.want {
			t.Errorf("jacobiSymbol(%d, %d) = %d, want %d", c.a, c.n, got, c.want)
		}
	}
}

func TestIsProbablyPrimeCached(t *testing.T) {
	src := &fixedSource{b: 3}
	n := magFromUint64(104729)
	ok1, err := IsProbablyPrimeCached(n, 50, src)
	if err != nil {
		t.Fatalf("IsProbablyPrimeCached: %v", err)
	}
	if !ok1 {
		t.Fatalf("IsProbablyPrimeCached(104729) = false, want true")
	}
	ok2, err := IsProbablyPrimeCached(n, 50, src)
	if err != nil {
		t.Fatalf("IsProbablyPrimeCached (cached): %v", err)
	}
	if ok2 != ok1 {
		t.Errorf("cached result disagrees with fresh result")
	}
}
