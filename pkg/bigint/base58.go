package bigint

import (
	"errors"
	"fmt"

	"go.firedancer.io/bignum/pkg/base58"
)

// ErrBase58Range is returned by Base58/Base58Wide when x does not fit
// in the target fixed-width unsigned encoding.
var ErrBase58Range = errors.New("bigint: value out of range for fixed-width base58 encoding")

// Base58 encodes x as a fixed-width 32-byte (256-bit) base58 string —
// a compact alternative to Text(58) for values known to fit a single
// 256-bit word, the size pkg/base58's encTable32/decTable32 precompute
// for.
func (x *Int) Base58() (string, error) {
	return x.Base58Wide(32)
}

// FromBase58 decodes a fixed-width 32-byte base58 string into a
// nonnegative Int.
func FromBase58(s string) (*Int, error) {
	return FromBase58Wide(s, 32)
}

// Base58Wide encodes x as a fixed-width base58 string of the given
// byte width, which must be 32 or 64 (pkg/base58's two precomputed
// table sizes).
func (x *Int) Base58Wide(width int) (string, error) {
	if width != 32 && width != 64 {
		return "", fmt.Errorf("bigint: unsupported base58 width %d (need 32 or 64)", width)
	}
	if x.Sign() < 0 {
		return "", ErrBase58Range
	}
	b := x.Bytes()
	if len(b) > width {
		return "", ErrBase58Range
	}
	padded := make([]byte, width)
	copy(padded[width-len(b):], b)
	return base58.Encode(padded), nil
}

// FromBase58Wide decodes a fixed-width base58 string of the given byte
// width (32 or 64) into a nonnegative Int.
func FromBase58Wide(s string, width int) (*Int, error) {
	if width != 32 && width != 64 {
		return nil, fmt.Errorf("bigint: unsupported base58 width %d (need 32 or 64)", width)
	}
	out, ok := base58.Decode(width, []byte(s))
	if !ok {
		return nil, ErrBase58Range
	}
	return FromBytes(out), nil
}
