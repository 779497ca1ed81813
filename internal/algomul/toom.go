package algomul

import "go.firedancer.io/bignum/internal/mag"

// ToomCook3 multiplies a and b via Bodrato's 3-way Toom-Cook schedule:
// split each operand into three slices, evaluate the product
// polynomial at five points (0, 1, -1, 2, infinity), and interpolate.
func ToomCook3(a, b mag.Mag) mag.Mag {
	a, b = a.Normalize(), b.Normalize()
	full := len(a)
	if len(b) > full {
		full = len(b)
	}
	if full < 3 {
		return Karatsuba(a, b)
	}
	k := (full + 2) / 3
	r := full - 2*k

	a0, a1, a2 := toomSlices(a, k, r, full)
	b0, b1, b2 := toomSlices(b, k, r, full)

	v0 := Multiply(a0, b0)
	vInf := Multiply(a2, b2)

	da1 := mag.Add(mag.Add(a2, a1), a0)
	db1 := mag.Add(mag.Add(b2, b1), b0)
	v1 := Multiply(da1, db1)

	dam1, sa := mag.Sub(mag.Add(a2, a0), a1)
	dbm1, sb := mag.Sub(mag.Add(b2, b0), b1)
	vm1 := Multiply(dam1, dbm1)
	if sa*sb < 0 {
		vm1 = negate(vm1)
	}

	// v2 evaluates the polynomial at x=2: the source computes it as
	// ((da1+a2)<<1 - a0), which equals 4*a2+2*a1+a0 since
	// da1 = a2+a1+a0: ((a2+a1+a0+a2)*2) - a0 = 2*(2a2+a1+a0) - a0
	//                = 4a2+2a1+2a0-a0 = 4a2+2a1+a0. Non-obvious but
	// correct; see spec.md §9's open question about this exact line.
	va2 := mag.ShiftLeft(mag.Add(da1, a2), 1)
	va2, _ = mag.Sub(va2, a0)
	vb2 := mag.ShiftLeft(mag.Add(db1, b2), 1)
	vb2, _ = mag.Sub(vb2, b0)
	v2 := Multiply(va2, vb2)

	result := interpolate(v0, v1, vm1, sa*sb, v2, vInf, k)
	return result.Normalize()
}

type signedMag struct {
	m    mag.Mag
	sign int // +1, 0, -1
}

func negate(m mag.Mag) mag.Mag { return m } // magnitude only; sign tracked externally by caller

// interpolate applies Bodrato's optimal interpolation schedule to
// recover the product from its five evaluations.
func interpolate(v0, v1, vm1 mag.Mag, vm1Sign int, v2, vInf mag.Mag, k int) mag.Mag {
	// t2 = exactDivideBy3(v2 - vm1)
	var t2 mag.Mag
	var t2Sign int
	if vm1Sign >= 0 {
		t2, t2Sign = subSigned(v2, 1, vm1, 1)
	} else {
		t2, t2Sign = subSigned(v2, 1, vm1, -1)
	}
	t2 = ExactDivideBy3(t2)

	// tm1 = (v1 - vm1) >> 1
	var tm1 mag.Mag
	var tm1Sign int
	if vm1Sign >= 0 {
		tm1, tm1Sign = subSigned(v1, 1, vm1, 1)
	} else {
		tm1, tm1Sign = subSigned(v1, 1, vm1, -1)
	}
	tm1 = mag.ShiftRight(tm1, 1)

	// t1 = v1 - v0
	t1, t1Sign := subSigned(v1, 1, v0, 1)

	// t2 = (t2 - t1) >> 1
	t2, t2Sign = subSigned(t2, t2Sign, t1, t1Sign)
	t2 = mag.ShiftRight(t2, 1)

	// t1 = t1 - tm1 - vInf
	t1, t1Sign = subSigned(t1, t1Sign, tm1, tm1Sign)
	t1, t1Sign = subSigned(t1, t1Sign, vInf, 1)

	// t2 = t2 - 2*vInf
	t2, t2Sign = subSigned(t2, t2Sign, mag.ShiftLeft(vInf, 1), 1)

	// tm1 = tm1 - t2
	tm1, tm1Sign = subSigned(tm1, tm1Sign, t2, t2Sign)

	// result = vInf*B^4 + t2*B^3 + t1*B^2 + tm1*B + v0, B = 2^(32k)
	result := mag.ShiftLeft(vInf, 32*4*k)
	result = addSignedInto(result, t2, t2Sign, 32*3*k)
	result = addSignedInto(result, t1, t1Sign, 32*2*k)
	result = addSignedInto(result, tm1, tm1Sign, 32*k)
	result = mag.Add(result, v0)
	return result
}

// subSigned computes a*aSign - b*bSign, returning (magnitude, sign).
func subSigned(a mag.Mag, aSign int, b mag.Mag, bSign int) (mag.Mag, int) {
	// a*aSign - b*bSign = a*aSign + b*(-bSign)
	return addSigned(a, aSign, b, -bSign)
}

func addSigned(a mag.Mag, aSign int, b mag.Mag, bSign int) (mag.Mag, int) {
	if aSign == 0 {
		return b.Clone(), bSign
	}
	if bSign == 0 {
		return a.Clone(), aSign
	}
	if aSign == bSign {
		return mag.Add(a, b), aSign
	}
	d, cmp := mag.Sub(a, b)
	if cmp == 0 {
		return nil, 0
	}
	if cmp > 0 {
		return d, aSign
	}
	return d, bSign
}

func addSignedInto(acc mag.Mag, m mag.Mag, sign int, shift int) mag.Mag {
	shifted := mag.ShiftLeft(m, shift)
	if sign >= 0 {
		return mag.Add(acc, shifted)
	}
	d, cmp := mag.Sub(acc, shifted)
	if cmp < 0 {
		// acc < shifted does not occur for a correctly formed Toom-3
		// interpolation; if it did, the magnitude of the difference is
		// returned with its sign dropped.
		return d
	}
	return d
}

// toomSlices splits value into three slices per spec.md §4.4's
// getToomSlice: slice 0 (a2, most significant) has length r, slices 1
// and 2 (a1, a0) have length k.
func toomSlices(value mag.Mag, k, r, fullSize int) (a2, a1, a0 mag.Mag) {
	value = mag.Mag(padLeft(value, fullSize))
	a2 = value[:r]
	a1 = value[r : r+k]
	a0 = value[r+k : r+2*k]
	return a2.Normalize(), a1.Normalize(), a0.Normalize()
}

func padLeft(m mag.Mag, n int) mag.Mag {
	m = m.Normalize()
	if len(m) >= n {
		return m
	}
	out := make(mag.Mag, n)
	copy(out[n-len(m):], m)
	return out
}

// ExactDivideBy3 divides x by 3 exactly, assuming x >= 0 and x is a
// multiple of 3. Walks words low to high multiplying each by the
// modular inverse of 3 mod 2^32 and propagating a borrow derived from
// which third of the word range the raw product falls in.
func ExactDivideBy3(x mag.Mag) mag.Mag {
	x = x.Normalize()
	if len(x) == 0 {
		return nil
	}
	const inv3 = 0xAAAAAAAB // 3^-1 mod 2^32
	out := make(mag.Mag, len(x))
	var borrow uint64
	for i := len(x) - 1; i >= 0; i-- {
		// x[i]-borrow is taken mod 2^32; when it wraps below zero, one
		// more unit of borrow carries into the next word.
		w32 := uint32(uint64(x[i]) - borrow)
		var next uint64
		if borrow > uint64(x[i]) {
			next = 1
		}
		q := w32 * inv3
		out[i] = q
		switch {
		case q < 0x55555556:
		case q < 0xAAAAAAAB:
			next++
		default:
			next += 2
		}
		borrow = next
	}
	return out.Normalize()
}
