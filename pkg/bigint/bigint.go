// Package bigint implements BigInt: an immutable arbitrary-precision
// signed integer, the public surface spec.md builds around the
// unsigned internal/mag engine. Every exported operation returns a
// fresh Int; none of the internal/mag scratch buffers backing a
// receiver are ever exposed or mutated after construction.
package bigint

import (
	"sync/atomic"

	"go.firedancer.io/bignum/internal/mag"
)

// Int is an immutable signed arbitrary-precision integer: sign is -1,
// 0, or +1, and magnitude is a normalized internal/mag.Mag. sign==0
// implies an empty magnitude, and vice versa — the zero value of Int
// is the integer zero.
type Int struct {
	sign int8
	m    mag.Mag

	// Lazy single-assignment caches, each storing (value+offset) so 0
	// means "not yet computed" without colliding with a legitimate
	// value of 0. Safe for concurrent use: a race just recomputes the
	// same cacheable value twice, matching spec.md §5's "benign race"
	// allowance, stored via atomic so a duplicate compute can't tear
	// a read.
	bitLenCache             int32 // bitLength + 1
	bitCountCache           int32 // bitCount + 1
	lowestSetBitCache       int32 // lowestSetBit + 2
	firstNonzeroIntNumCache int32 // firstNonzeroIntNum + 2
}

// Small-integer interning tables, mirroring spec.md §3's constant
// pool: posConst[i] is the Int for i, negConst[i] is the Int for -i,
// for i in [0,16].
var (
	posConst [17]*Int
	negConst [17]*Int
)

// Frequently used named constants.
var (
	Zero        = fromSignMag(0, nil)
	One         = fromSignMag(1, mag.Mag{1})
	Two         = fromSignMag(1, mag.Mag{2})
	Ten         = fromSignMag(1, mag.Mag{10})
	NegativeOne = fromSignMag(-1, mag.Mag{1})
)

func init() {
	posConst[0] = Zero
	negConst[0] = Zero
	for i := 1; i <= 16; i++ {
		posConst[i] = fromSignMag(1, mag.FromUint64(uint64(i)))
		negConst[i] = fromSignMag(-1, mag.FromUint64(uint64(i)))
	}
}

func fromSignMag(sign int, m mag.Mag) *Int {
	m = m.Normalize()
	if len(m) == 0 {
		return &Int{sign: 0}
	}
	return &Int{sign: int8(sign), m: m}
}

// intern returns the cached small constant for (sign, m) when one
// exists, else a freshly built Int.
func intern(sign int, m mag.Mag) *Int {
	m = m.Normalize()
	if len(m) == 0 {
		return Zero
	}
	if len(m) == 1 && m[0] <= 16 {
		if sign > 0 {
			return posConst[m[0]]
		}
		if sign < 0 {
			return negConst[m[0]]
		}
	}
	return fromSignMag(sign, m)
}

// FromInt64 builds an Int from a machine int64.
func FromInt64(v int64) *Int {
	if v == 0 {
		return Zero
	}
	sign := 1
	u := uint64(v)
	if v < 0 {
		sign = -1
		u = uint64(-v)
	}
	return intern(sign, mag.FromUint64(u))
}

// FromUint64 builds a nonnegative Int from a machine uint64.
func FromUint64(v uint64) *Int {
	if v == 0 {
		return Zero
	}
	return intern(1, mag.FromUint64(v))
}

// Sign returns -1, 0, or +1.
func (x *Int) Sign() int {
	return int(x.sign)
}

// IsZero reports whether x is zero.
func (x *Int) IsZero() bool {
	return x.sign == 0
}

// Neg returns -x.
func (x *Int) Neg() *Int {
	if x.sign == 0 {
		return Zero
	}
	return intern(-int(x.sign), x.m)
}

// Abs returns |x|.
func (x *Int) Abs() *Int {
	if x.sign >= 0 {
		return x
	}
	return x.Neg()
}

// Cmp compares x and y: -1, 0, +1.
func (x *Int) Cmp(y *Int) int {
	if x.sign != y.sign {
		if x.sign < y.sign {
			return -1
		}
		return 1
	}
	c := mag.Cmp(x.m, y.m)
	if x.sign < 0 {
		return -c
	}
	return c
}

// Equal reports whether x and y represent the same value.
func (x *Int) Equal(y *Int) bool {
	return x.Cmp(y) == 0
}

func loadCache(slot *int32, offset int32) (int, bool) {
	v := atomic.LoadInt32(slot)
	if v == 0 {
		return 0, false
	}
	return int(v - offset), true
}

func storeCache(slot *int32, value int, offset int32) {
	atomic.StoreInt32(slot, int32(value)+offset)
}

// BitLength returns the number of bits in the minimal two's-complement
// representation of x, excluding the sign bit (matching
// java.math.BigInteger.bitLength's convention: bitLength() of a
// negative power of two is one less than its magnitude's bit length).
func (x *Int) BitLength() int {
	if v, ok := loadCache(&x.bitLenCache, 1); ok {
		return v
	}
	var n int
	if x.sign == 0 {
		n = 0
	} else if x.sign > 0 {
		n = x.m.BitLen()
	} else {
		n = x.m.BitLen()
		if x.isNegativePowerOfTwo() {
			n--
		}
	}
	storeCache(&x.bitLenCache, n, 1)
	return n
}

func (x *Int) isNegativePowerOfTwo() bool {
	if x.m.BitCount() != 1 {
		return false
	}
	return true
}

// BitCount returns the number of bits in the two's-complement
// representation of x that differ from its sign bit: the population
// count of the magnitude when x >= 0, and the population count of
// magnitude-1 when x < 0.
func (x *Int) BitCount() int {
	if v, ok := loadCache(&x.bitCountCache, 1); ok {
		return v
	}
	var n int
	if x.sign >= 0 {
		n = x.m.BitCount()
	} else {
		// Matches java.math.BigInteger.bitCount's derivation for
		// negative values: popcount(magnitude) plus the magnitude's
		// trailing zero count, minus one.
		n = x.m.BitCount() + x.m.LowestSetBit() - 1
	}
	storeCache(&x.bitCountCache, n, 1)
	return n
}

// LowestSetBit returns the index of the rightmost set bit in x's
// two's-complement representation, or -1 if x is zero. Since negation
// doesn't change the position of the lowest set bit, this equals the
// magnitude's LowestSetBit.
func (x *Int) LowestSetBit() int {
	if v, ok := loadCache(&x.lowestSetBitCache, 2); ok {
		return v
	}
	n := -1
	if x.sign != 0 {
		n = x.m.LowestSetBit()
	}
	storeCache(&x.lowestSetBitCache, n, 2)
	return n
}

// firstNonzeroIntNum returns the index, counting whole 32-bit words
// from the least-significant word (index 0), of the first nonzero
// word in x's magnitude. twosComplementWords uses this to negate a
// negative magnitude into two's-complement words without a
// ripple-carry loop: every word below this index is already zero in
// the negated form, the word at this index is the lone two's-complement
// negation with no incoming borrow, and every word above it is a plain
// bitwise complement.
func (x *Int) firstNonzeroIntNum() int {
	if v, ok := loadCache(&x.firstNonzeroIntNumCache, 2); ok {
		return v
	}
	n := 0
	for i := len(x.m) - 1; i >= 0 && x.m[i] == 0; i-- {
		n++
	}
	storeCache(&x.firstNonzeroIntNumCache, n, 2)
	return n
}

// Magnitude returns a defensive copy of x's unsigned magnitude words,
// most-significant first; used by pkg/wire and pkg/bigdecimal, which
// both live outside this package and must not share backing storage
// with an Int's internal representation.
func (x *Int) Magnitude() []uint32 {
	out := make([]uint32, len(x.m))
	copy(out, x.m)
	return out
}

// FromMagnitude builds an Int from a sign and big-endian magnitude
// words, mirroring the internal sign/magnitude constructor spec.md
// describes; sign must be -1, 0, or +1, and sign==0 requires an
// all-zero (or empty) magnitude.
func FromMagnitude(sign int, words []uint32) *Int {
	m := mag.Mag(words).Normalize()
	if len(m) == 0 {
		return Zero
	}
	return intern(sign, m)
}

func (x *Int) rawMag() mag.Mag {
	return x.m
}
