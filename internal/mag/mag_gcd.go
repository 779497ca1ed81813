package mag

// HybridGCD computes gcd(a, b) using Euclid's algorithm while the two
// operands differ substantially in length (each division step then
// drops many bits), switching to binary GCD once they're within one
// word of each other in length, where a single division drops little
// and shift-and-subtract wins instead.
func HybridGCD(a, b Mag) Mag {
	a, b = a.Normalize(), b.Normalize()
	for len(a) > 0 && len(b) > 0 && absInt(len(a)-len(b)) >= 2 {
		if Cmp(a, b) < 0 {
			a, b = b, a
		}
		_, rem, _ := Divide(a, b)
		a, b = b, rem
	}
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	return binaryGCD(a, b)
}

func binaryGCD(a, b Mag) Mag {
	shiftA := a.LowestSetBit()
	shiftB := b.LowestSetBit()
	common := shiftA
	if shiftB < common {
		common = shiftB
	}
	a = ShiftRight(a, shiftA)
	b = ShiftRight(b, shiftB)
	for {
		if Cmp(a, b) < 0 {
			a, b = b, a
		}
		diff, sign := Sub(a, b)
		if sign == 0 {
			break
		}
		a = ShiftRight(diff, diff.LowestSetBit())
	}
	return ShiftLeft(a, common)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
