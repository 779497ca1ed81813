package bigint

import "go.firedancer.io/bignum/internal/mag"

// ShiftLeft returns x << n for n >= 0.
func ShiftLeft(x *Int, n int) *Int {
	if x.sign == 0 || n == 0 {
		return x
	}
	if n < 0 {
		return ShiftRight(x, -n)
	}
	return intern(int(x.sign), mag.ShiftLeft(x.m, n))
}

// ShiftRight returns x >> n for n >= 0, an arithmetic shift: negative
// values round toward negative infinity, matching
// java.math.BigInteger.shiftRight.
func ShiftRight(x *Int, n int) *Int {
	if n < 0 {
		return ShiftLeft(x, -n)
	}
	if x.sign >= 0 {
		return intern(int(x.sign), mag.ShiftRight(x.m, n))
	}
	// Arithmetic right shift of a negative value: shift the magnitude,
	// then add one to it if any shifted-out bit was set, giving
	// -ceil(|x| / 2^n).
	shifted := mag.ShiftRight(x.m, n)
	lost := hasAnyLowBitSet(x.m, n)
	if lost {
		shifted = mag.Add(shifted, mag.Mag{1})
	}
	return intern(-1, shifted)
}

func hasAnyLowBitSet(m mag.Mag, n int) bool {
	for i := 0; i < n; i++ {
		if m.TestBit(i) {
			return true
		}
	}
	return false
}

// TestBit reports the two's-complement bit i (0 = LSB) of x.
func (x *Int) TestBit(i int) bool {
	if i < 0 {
		panic("bigint: negative bit index")
	}
	if x.sign >= 0 {
		return x.m.TestBit(i)
	}
	// Two's complement of a negative value: bit i is the complement
	// of (|x|-1)'s bit i.
	magMinus1, _ := mag.Sub(x.m, mag.Mag{1})
	return !magMinus1.TestBit(i)
}

// SetBit returns a copy of x with two's-complement bit i set.
func SetBit(x *Int, i int) *Int {
	if x.TestBit(i) {
		return x
	}
	if x.sign >= 0 {
		return intern(1, mag.SetBit(x.m, i))
	}
	magMinus1, _ := mag.Sub(x.m, mag.Mag{1})
	magMinus1 = mag.ClearBit(magMinus1, i)
	return intern(-1, mag.Add(magMinus1, mag.Mag{1}))
}

// ClearBit returns a copy of x with two's-complement bit i cleared.
func ClearBit(x *Int, i int) *Int {
	if !x.TestBit(i) {
		return x
	}
	if x.sign >= 0 {
		return intern(1, mag.ClearBit(x.m, i))
	}
	magMinus1, _ := mag.Sub(x.m, mag.Mag{1})
	magMinus1 = mag.SetBit(magMinus1, i)
	return intern(-1, mag.Add(magMinus1, mag.Mag{1}))
}

// FlipBit returns a copy of x with two's-complement bit i toggled.
func FlipBit(x *Int, i int) *Int {
	if x.TestBit(i) {
		return ClearBit(x, i)
	}
	return SetBit(x, i)
}

// twosComplementWords returns x's two's complement representation as
// big-endian words, at least `words` words wide (sign-extended). For
// a negative x, uses firstNonzeroIntNum to negate word-by-word instead
// of a ripple-carry loop: words below the first nonzero magnitude word
// are zero, the word at that index negates with no incoming borrow,
// and every word above it is a plain bitwise complement.
func twosComplementWords(x *Int, words int) []uint32 {
	m := x.m
	if len(m) > words {
		words = len(m)
	}
	out := make([]uint32, words)
	if x.sign >= 0 {
		copy(out[words-len(m):], m)
		return out
	}
	fn := x.firstNonzeroIntNum()
	for n := 0; n < words; n++ {
		idx := words - 1 - n
		var magInt uint32
		if n < len(m) {
			magInt = m[len(m)-1-n]
		}
		switch {
		case n < fn:
			out[idx] = 0
		case n == fn:
			out[idx] = -magInt
		default:
			out[idx] = ^magInt
		}
	}
	return out
}

func fromTwosComplementWords(words []uint32) *Int {
	if len(words) == 0 {
		return Zero
	}
	if words[0]&0x80000000 == 0 {
		return intern(1, mag.Mag(words).Normalize())
	}
	// Negative: negate to recover the magnitude.
	out := make([]uint32, len(words))
	carry := uint64(1)
	for i := len(words) - 1; i >= 0; i-- {
		v := uint64(^words[i]) + carry
		out[i] = uint32(v)
		carry = v >> 32
	}
	return intern(-1, mag.Mag(out).Normalize())
}

func bitwiseOp(x, y *Int, op func(a, b uint32) uint32) *Int {
	n := maxLen(x, y) + 1
	xw := twosComplementWords(x, n)
	yw := twosComplementWords(y, n)
	out := make([]uint32, n)
	for i := range out {
		out[i] = op(xw[i], yw[i])
	}
	return fromTwosComplementWords(out)
}

func maxLen(x, y *Int) int {
	if len(x.m) > len(y.m) {
		return len(x.m)
	}
	return len(y.m)
}

// And returns the bitwise two's-complement AND of x and y.
func And(x, y *Int) *Int {
	return bitwiseOp(x, y, func(a, b uint32) uint32 { return a & b })
}

// Or returns the bitwise two's-complement OR of x and y.
func Or(x, y *Int) *Int {
	return bitwiseOp(x, y, func(a, b uint32) uint32 { return a | b })
}

// Xor returns the bitwise two's-complement XOR of x and y.
func Xor(x, y *Int) *Int {
	return bitwiseOp(x, y, func(a, b uint32) uint32 { return a ^ b })
}

// AndNot returns x &^ y (x AND NOT y) in two's complement.
func AndNot(x, y *Int) *Int {
	return bitwiseOp(x, y, func(a, b uint32) uint32 { return a &^ b })
}

// Not returns the two's-complement bitwise NOT of x: -(x+1).
func Not(x *Int) *Int {
	return Sub(Zero, Add(x, One))
}
