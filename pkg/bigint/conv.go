package bigint

import (
	"go.firedancer.io/bignum/internal/algoconv"
	"go.firedancer.io/bignum/internal/mag"
)

// String returns x formatted in base 10.
func (x *Int) String() string {
	return algoconv.FormatSigned(int(x.sign), x.m, 10)
}

// Text returns x formatted in the given radix (2..36).
func (x *Int) Text(radix int) string {
	return algoconv.FormatSigned(int(x.sign), x.m, radix)
}

// FromString parses a signed decimal string into an Int.
func FromString(s string) (*Int, error) {
	return FromStringRadix(s, 10)
}

// FromStringRadix parses a signed string in the given radix (2..36)
// into an Int.
func FromStringRadix(s string, radix int) (*Int, error) {
	sign, m, err := algoconv.ParseSigned(s, radix)
	if err != nil {
		return nil, err
	}
	return intern(sign, m), nil
}

// Int64 returns x's value truncated to an int64 (two's-complement
// truncation, matching java.math.BigInteger.longValue's low-64-bits
// contract, narrowed to 64 bits).
func (x *Int) Int64() int64 {
	u := x.m.Uint64()
	if x.sign < 0 {
		return -int64(u)
	}
	return int64(u)
}

// IsInt64 reports whether x's value fits exactly in an int64.
func (x *Int) IsInt64() bool {
	return x.BitLength() < 64
}

// Bytes returns the big-endian magnitude of x (sign discarded), the
// same contract as java.math.BigInteger.toByteArray's magnitude half.
func (x *Int) Bytes() []byte {
	m := x.m
	out := make([]byte, len(m)*4)
	for i, w := range m {
		out[i*4] = byte(w >> 24)
		out[i*4+1] = byte(w >> 16)
		out[i*4+2] = byte(w >> 8)
		out[i*4+3] = byte(w)
	}
	i := 0
	for i < len(out) && out[i] == 0 {
		i++
	}
	return out[i:]
}

// FromBytes builds a nonnegative Int from a big-endian byte slice.
func FromBytes(b []byte) *Int {
	if len(b) == 0 {
		return Zero
	}
	n := (len(b) + 3) / 4
	padded := make([]byte, n*4)
	copy(padded[n*4-len(b):], b)
	m := make(mag.Mag, n)
	for i := 0; i < n; i++ {
		m[i] = uint32(padded[i*4])<<24 | uint32(padded[i*4+1])<<16 | uint32(padded[i*4+2])<<8 | uint32(padded[i*4+3])
	}
	return intern(1, m.Normalize())
}

// FromSignAndBytes builds an Int from an explicit sign and big-endian
// magnitude bytes, mirroring java.math.BigInteger(int signum, byte[]
// magnitude).
func FromSignAndBytes(sign int, b []byte) *Int {
	v := FromBytes(b)
	if v.sign == 0 {
		return Zero
	}
	return intern(sign, v.m)
}
