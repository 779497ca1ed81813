package mag

// burnikelZieglerDivide implements Burnikel-Ziegler's top-level block
// recursion (Algorithm 3 of spec.md §4.2): split the dividend into
// n-word blocks sized so the divisor is an exact multiple of n after
// a left-shift by sigma, then fold two-block windows through the
// 2n-by-1n kernel, carrying the running remainder forward.
func burnikelZieglerDivide(a, b Mag) (q, r Mag, err error) {
	s := len(b)
	m := 1
	for m < pow2Ceil(s, BZThreshold) {
		m *= 2
	}
	j := (s + m - 1) / m
	n := j * m

	sigma := 0
	if need := n*32 - b.BitLen(); need > 0 {
		sigma = need
	}
	bShifted := padToWords(ShiftLeft(b, sigma), n)
	aShifted := ShiftLeft(a, sigma)

	blocks := splitIntoBlocks(aShifted, n)
	if len(blocks) < 2 {
		blocks = append([]Mag{nil}, blocks...)
	}
	t := len(blocks)

	z := concatBlocks(blocks[0], blocks[1])
	quotient := Mag(nil)
	for i := 2; i <= t; i++ {
		qi, ri, e := divide2n1n(z, bShifted, n)
		if e != nil {
			return nil, nil, e
		}
		quotient = orShiftedIn(quotient, qi, n)
		if i < t {
			z = concatBlocks(ri, blocks[i])
		} else {
			z = ri
		}
	}
	remainder := ShiftRight(z, sigma)
	return quotient.Normalize(), remainder.Normalize(), nil
}

func pow2Ceil(s, threshold int) int {
	v := (s + threshold - 1) / threshold
	if v < 1 {
		v = 1
	}
	return v
}

func padToWords(m Mag, n int) Mag {
	m = m.Normalize()
	if len(m) >= n {
		return m
	}
	out := make(Mag, n)
	copy(out[n-len(m):], m)
	return out
}

// splitIntoBlocks splits m into ceil(len(m)/n) big-endian n-word
// blocks, most-significant block first, left-padding with zero words
// so every block is exactly n words wide.
func splitIntoBlocks(m Mag, n int) []Mag {
	full := ((len(m) + n - 1) / n) * n
	if full == 0 {
		full = n
	}
	padded := padToWords(m, full)
	count := full / n
	blocks := make([]Mag, count)
	for i := 0; i < count; i++ {
		blocks[i] = padded[i*n : (i+1)*n]
	}
	return blocks
}

func concatBlocks(hi, lo Mag) Mag {
	out := make(Mag, len(hi)+len(lo))
	copy(out, hi)
	copy(out[len(hi):], lo)
	return out
}

func orShiftedIn(acc, part Mag, n int) Mag {
	shifted := ShiftLeft(acc, n*32)
	return Add(shifted, padToWords(part, n).Normalize())
}

// divide2n1n divides a 2n-word dividend by an n-word divisor whose
// leading word is nonzero, implementing Algorithm 1 of spec.md §4.2:
// below BZThreshold or for odd n, fall back to Knuth D directly;
// otherwise split the dividend into four n/2-word blocks and recurse
// through divide3n2n twice, carrying the first call's remainder into
// the second.
func divide2n1n(a Mag, b Mag, n int) (q, r Mag, err error) {
	a = padToWords(a, 2*n)
	b = padToWords(b, n)
	if n%2 != 0 || n < BZThreshold {
		return knuthDivide(a, b)
	}
	h := n / 2
	a1, a2, a3, a4 := a[0:h], a[h:2*h], a[2*h:3*h], a[3*h:4*h]
	b1, b2 := b[0:h], b[h:2*h]

	q1, r1, err := divide3n2n(a1, a2, a3, b1, b2, b, h)
	if err != nil {
		return nil, nil, err
	}
	r1 = padToWords(r1, 2*h)
	q2, r2, err := divide3n2n(r1[0:h], r1[h:2*h], a4, b1, b2, b, h)
	if err != nil {
		return nil, nil, err
	}
	return concatBlocks(padToWords(q1, h), padToWords(q2, h)).Normalize(), r2.Normalize(), nil
}

// divide3n2n divides the 3h-word dividend [a1,a2,a3] by the 2h-word
// divisor [b1,b2] (b = concat(b1,b2)), implementing Algorithm 2 of
// spec.md §4.2: estimate the quotient from the top 2h-by-h division
// (recursing into divide2n1n, or the closed-form beta^h-1 estimate
// when a1 >= b1), fold in the bottom block a3, subtract q*b2, and
// correct by adding back the full divisor b while decrementing q
// until the remainder is nonnegative.
func divide3n2n(a1, a2, a3, b1, b2, b Mag, h int) (q, r Mag, err error) {
	a12 := concatBlocks(a1, a2)

	var q1, r1 Mag
	if Cmp(a1, b1) < 0 {
		q1, r1, err = divide2n1n(a12, b1, h)
		if err != nil {
			return nil, nil, err
		}
	} else {
		q1 = allOnesWords(h)
		shifted := ShiftLeft(b1, 32*h)
		diff, cmp := Sub(a12, shifted)
		if cmp < 0 {
			diff = nil
		}
		r1 = Add(diff, b1)
	}

	rCat := concatBlocks(padToWords(r1, 2*h), a3)
	qb2 := bigMultiply(q1, b2)
	rMag, rSign := subSigned(rCat, 1, qb2, 1)

	bFull := padToWords(b, 2*h)
	for rSign < 0 {
		rMag, rSign = addSigned(rMag, rSign, bFull, 1)
		q1, _ = Sub(q1, Mag{1})
	}
	return q1.Normalize(), rMag.Normalize(), nil
}

// addSigned computes a*aSign + b*bSign, returning (magnitude, sign).
func addSigned(a Mag, aSign int, b Mag, bSign int) (Mag, int) {
	if aSign == 0 {
		return b.Clone(), bSign
	}
	if bSign == 0 {
		return a.Clone(), aSign
	}
	if aSign == bSign {
		return Add(a, b), aSign
	}
	d, cmp := Sub(a, b)
	if cmp == 0 {
		return nil, 0
	}
	if cmp > 0 {
		return d, aSign
	}
	return d, bSign
}

// subSigned computes a*aSign - b*bSign, returning (magnitude, sign).
func subSigned(a Mag, aSign int, b Mag, bSign int) (Mag, int) {
	return addSigned(a, aSign, b, -bSign)
}

func allOnesWords(h int) Mag {
	out := make(Mag, h)
	for i := range out {
		out[i] = 0xFFFFFFFF
	}
	return out
}
