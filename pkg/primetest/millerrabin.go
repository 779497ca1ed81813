package primetest

import "go.firedancer.io/bignum/internal/mag"

// modPowMag is a minimal modular-exponentiation helper local to this
// package (the Montgomery implementation lives in
// pkg/bigint; primetest only needs correctness, not BigInt's
// performance path, to stay a leaf consumer of mag per spec.md §2's
// "PrimeTest consumes BigInt only through its public contract" — here
// specialized to mag.Mag directly since primetest sits below bigint
// in the dependency order required to avoid an import cycle, and the
// algorithm is identical either way: square-and-multiply).
func modPowMag(base, exp, m mag.Mag) mag.Mag {
	result := mag.Mag{1}
	_, b, _ := mag.Divide(base, m)
	for i := exp.BitLen() - 1; i >= 0; i-- {
		result = mag.Multiply(result, result)
		_, result, _ = mag.Divide(result, m)
		if exp.TestBit(i) {
			result = mag.Multiply(result, b)
			_, result, _ = mag.Divide(result, m)
		}
	}
	return result
}

// millerRabin runs spec.md §4.6's Fermat-witness loop: write n-1 =
// d*2^a with d odd, then for each round draw a uniform base in (1,n),
// compute b^d mod n, and repeatedly square up to a-1 times looking for
// -1 (i.e. n-1); composite if neither 1 nor n-1 is ever reached.
func millerRabin(n mag.Mag, rounds int, src ByteSource) (bool, error) {
	one := mag.Mag{1}
	nMinus1, _ := mag.Sub(n, one)
	a := nMinus1.LowestSetBit()
	d := mag.ShiftRight(nMinus1, a)

	for r := 0; r < rounds; r++ {
		b, err := randomInRange(n, src)
		if err != nil {
			return false, err
		}
		z := modPowMag(b, d, n)
		if len(z) == 1 && z[0] == 1 {
			continue
		}
		if mag.Cmp(z, nMinus1) == 0 {
			continue
		}
		composite := true
		for j := 1; j < a; j++ {
			z = mag.Multiply(z, z)
			_, z, _ = mag.Divide(z, n)
			if mag.Cmp(z, nMinus1) == 0 {
				composite = false
				break
			}
			if len(z) == 1 && z[0] == 1 {
				return false, nil
			}
		}
		if composite {
			return false, nil
		}
	}
	return true, nil
}

// randomInRange draws a uniform magnitude in (1, n) using src's
// uniform bytes, by rejection sampling against n's bit length.
func randomInRange(n mag.Mag, src ByteSource) (mag.Mag, error) {
	bitLen := n.BitLen()
	byteLen := (bitLen + 7) / 8
	buf := make([]byte, byteLen)
	for {
		if err := src.NextBytes(buf); err != nil {
			return nil, err
		}
		excess := byteLen*8 - bitLen
		if excess > 0 {
			buf[0] &= 0xFF >> uint(excess)
		}
		m := bytesToMag(buf)
		if m.IsZero() {
			continue
		}
		one := mag.Mag{1}
		if mag.Cmp(m, one) == 0 {
			continue
		}
		if mag.Cmp(m, n) >= 0 {
			continue
		}
		return m, nil
	}
}

func bytesToMag(b []byte) mag.Mag {
	for len(b) > 0 && b[0] == 0 {
		b = b[1:]
	}
	n := (len(b) + 3) / 4
	out := make(mag.Mag, n)
	// Fill from the least-significant byte.
	bi := len(b) - 1
	for wi := n - 1; wi >= 0; wi-- {
		var w uint32
		for shift := uint(0); shift < 32 && bi >= 0; shift += 8 {
			w |= uint32(b[bi]) << shift
			bi--
		}
		out[wi] = w
	}
	return out.Normalize()
}
