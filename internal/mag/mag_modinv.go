package mag

import "errors"

// ErrNotInvertible is returned when no modular inverse exists.
var ErrNotInvertible = errors.New("mag: not invertible")

// ModInverseOdd computes x such that self*x ≡ 1 (mod modulus), for an
// odd modulus, using Schroeppel's "almost inverse" algorithm: maintain
// (f, g, c, d) with the invariant f*inv ≡ c * 2^k (mod modulus),
// reduce f and g toward gcd by repeated halving/differencing, then
// fix up the power-of-two factor at the end.
func ModInverseOdd(self, modulus Mag) (Mag, error) {
	f := self.Clone()
	if !f.IsZero() {
		_, f, _ = Divide(f, modulus)
	}
	g := modulus.Clone()
	c := Mag{1}
	d := Mag(nil)
	k := 0

	shiftToOdd := func(x, y *Mag, kk *int) {
		for !x.IsZero() && x.TestBit(0) == false {
			*x = ShiftRight(*x, 1)
			*y = ShiftLeft(*y, 1)
			*kk++
		}
	}

	shiftToOdd(&f, &d, &k)

	for {
		if f.IsZero() {
			return nil, ErrNotInvertible
		}
		if len(f) == 1 && f[0] == 1 {
			break
		}
		if Cmp(f, g) < 0 {
			f, g = g, f
			c, d = d, c
		}
		// f ≡ g (mod 4)?
		fm4 := f.TestBit(0) == g.TestBit(0) && f.TestBit(1) == g.TestBit(1)
		if fm4 {
			f, _ = Sub(f, g)
			c = modSub(c, d, modulus)
		} else {
			f = Add(f, g)
			c = modAdd(c, d, modulus)
		}
		shiftToOdd(&f, &d, &k)
	}

	// Normalize c to [0, modulus).
	_, c, _ = Divide(c, modulus)

	// Fixup: compute X ≡ c * 2^-k (mod modulus) by successively halving
	// c modulo `modulus`, k times. Since modulus is odd, c/2 mod
	// modulus is well defined: if c is even, halve directly; if odd,
	// add modulus first (making it even) then halve.
	x := c
	for i := 0; i < k; i++ {
		if x.TestBit(0) {
			x = Add(x, modulus)
		}
		x = ShiftRight(x, 1)
	}
	_, x, _ = Divide(x, modulus)
	return x, nil
}

// modAdd and modSub are general modular add/subtract: inputs need not
// already lie in [0, m), which matters because the almost-inverse
// loop's c/d accumulators can run ahead of m between reductions.
func modAdd(a, b, m Mag) Mag {
	_, a, _ = Divide(a, m)
	_, b, _ = Divide(b, m)
	sum := Add(a, b)
	if Cmp(sum, m) >= 0 {
		sum, _ = Sub(sum, m)
	}
	return sum
}

func modSub(a, b, m Mag) Mag {
	_, a, _ = Divide(a, m)
	_, b, _ = Divide(b, m)
	if Cmp(a, b) >= 0 {
		d, _ := Sub(a, b)
		return d
	}
	d, _ := Sub(b, a)
	r, _ := Sub(m, d)
	return r
}

// ModInverse computes the modular inverse of self mod modulus for any
// modulus > 0: if modulus is odd, the almost-inverse algorithm applies
// directly; if even, split modulus = m1*m2 with m2 a power of two and
// m1 odd, invert against each factor, and recombine with CRT.
func ModInverse(self, modulus Mag) (Mag, error) {
	if modulus.TestBit(0) {
		return ModInverseOdd(self, modulus)
	}
	if !self.TestBit(0) {
		return nil, ErrNotInvertible
	}
	p := modulus.LowestSetBit()
	m2 := ShiftLeft(Mag{1}, p)
	m1 := ShiftRight(modulus, p)

	a1, err := ModInverseOdd(self, m1)
	if err != nil {
		return nil, err
	}
	a2, err := modInversePow2(self, p)
	if err != nil {
		return nil, err
	}
	y1, err := ModInverseOdd(m2, m1)
	if err != nil {
		return nil, err
	}
	y2, err := modInversePow2(m1, p)
	if err != nil {
		return nil, err
	}
	t1 := Multiply(Multiply(a1, m2), y1)
	t2 := Multiply(Multiply(a2, m1), y2)
	sum := Add(t1, t2)
	_, res, _ := Divide(sum, modulus)
	return res, nil
}

// modInversePow2 computes the inverse of an odd self modulo 2^p using
// Hensel lifting (Newton's method for the 2-adic inverse): each
// iteration doubles the number of correct bits, x <- x*(2 - self*x).
func modInversePow2(self Mag, p int) (Mag, error) {
	if !self.TestBit(0) {
		return nil, ErrNotInvertible
	}
	twoPow := ShiftLeft(Mag{1}, p)
	_, self, _ = Divide(self, twoPow)
	_, twoMod, _ := Divide(Mag{2}, twoPow)
	x := Mag{1}
	for bits := 1; bits < p; bits *= 2 {
		prod := Multiply(self, x)
		_, prod, _ = Divide(prod, twoPow)
		t := modSub(twoMod, prod, twoPow)
		prod2 := Multiply(x, t)
		_, x, _ = Divide(prod2, twoPow)
	}
	return x, nil
}
