// Package wire implements length-prefixed binary encoding for
// pkg/bigint.Int and pkg/bigdecimal.Decimal, generalizing the teacher
// repo's pkg/sealevel field-by-field binary.Write discipline into a
// reusable Borsh-style codec built on github.com/gagliardetto/binary,
// with an xxhash integrity checksum appended to every encoded payload
// so a corrupted or truncated wire message is caught before decoding
// proceeds (spec.md §7's "malformed input" errors extend to transport
// corruption, not just textual parse failures).
package wire

import (
	"encoding/binary"
	"errors"

	bin "github.com/gagliardetto/binary"
	"github.com/cespare/xxhash/v2"

	"go.firedancer.io/bignum/pkg/bigdecimal"
	"go.firedancer.io/bignum/pkg/bigint"
)

// ErrChecksum is returned when a decoded payload's trailing xxhash
// checksum does not match its body.
var ErrChecksum = errors.New("wire: checksum mismatch")

// ErrTruncated is returned when a payload is too short to contain even
// the trailing checksum.
var ErrTruncated = errors.New("wire: truncated payload")

const checksumLen = 8

// wireInt is the Borsh-encodable envelope for a bigint.Int: sign plus
// a length-prefixed big-endian magnitude, mirroring pkg/sealevel's
// discriminant-then-fields struct layout.
type wireInt struct {
	Sign      int8
	Magnitude []byte
}

func (w *wireInt) MarshalWithEncoder(enc *bin.Encoder) error {
	if err := enc.WriteInt8(w.Sign); err != nil {
		return err
	}
	return enc.WriteBytes(w.Magnitude, true)
}

func (w *wireInt) UnmarshalWithDecoder(dec *bin.Decoder) error {
	sign, err := dec.ReadInt8()
	if err != nil {
		return err
	}
	mag, err := dec.ReadByteSlice()
	if err != nil {
		return err
	}
	w.Sign = sign
	w.Magnitude = mag
	return nil
}

// wireDecimal is the Borsh-encodable envelope for a bigdecimal.Decimal:
// an embedded wireInt for the unscaled value plus a scale.
type wireDecimal struct {
	Unscaled wireInt
	Scale    int32
}

func (w *wireDecimal) MarshalWithEncoder(enc *bin.Encoder) error {
	if err := w.Unscaled.MarshalWithEncoder(enc); err != nil {
		return err
	}
	return enc.WriteInt32(w.Scale, bin.LE)
}

func (w *wireDecimal) UnmarshalWithDecoder(dec *bin.Decoder) error {
	if err := w.Unscaled.UnmarshalWithDecoder(dec); err != nil {
		return err
	}
	scale, err := dec.ReadInt32(bin.LE)
	if err != nil {
		return err
	}
	w.Scale = scale
	return nil
}

// appendChecksum appends an 8-byte little-endian xxhash64 of body.
func appendChecksum(body []byte) []byte {
	sum := xxhash.Sum64(body)
	out := make([]byte, len(body)+checksumLen)
	copy(out, body)
	binary.LittleEndian.PutUint64(out[len(body):], sum)
	return out
}

// splitChecksum verifies and strips the trailing checksum, returning
// the body.
func splitChecksum(data []byte) ([]byte, error) {
	if len(data) < checksumLen {
		return nil, ErrTruncated
	}
	body := data[:len(data)-checksumLen]
	want := binary.LittleEndian.Uint64(data[len(data)-checksumLen:])
	if xxhash.Sum64(body) != want {
		return nil, ErrChecksum
	}
	return body, nil
}

// MarshalBigInt encodes x as sign+magnitude, checksummed.
func MarshalBigInt(x *bigint.Int) ([]byte, error) {
	body, err := bin.MarshalBorsh(&wireInt{Sign: int8(x.Sign()), Magnitude: x.Bytes()})
	if err != nil {
		return nil, err
	}
	return appendChecksum(body), nil
}

// UnmarshalBigInt decodes a payload produced by MarshalBigInt,
// verifying its checksum first.
func UnmarshalBigInt(data []byte) (*bigint.Int, error) {
	body, err := splitChecksum(data)
	if err != nil {
		return nil, err
	}
	var w wireInt
	if err := bin.UnmarshalBorsh(&w, body); err != nil {
		return nil, err
	}
	return bigint.FromSignAndBytes(int(w.Sign), w.Magnitude), nil
}

// MarshalDecimal encodes d as an unscaled wireInt plus scale,
// checksummed.
func MarshalDecimal(d *bigdecimal.Decimal) ([]byte, error) {
	unscaled := d.UnscaledBigInt()
	env := &wireDecimal{
		Unscaled: wireInt{Sign: int8(unscaled.Sign()), Magnitude: unscaled.Bytes()},
		Scale:    d.Scale(),
	}
	body, err := bin.MarshalBorsh(env)
	if err != nil {
		return nil, err
	}
	return appendChecksum(body), nil
}

// UnmarshalDecimal decodes a payload produced by MarshalDecimal,
// verifying its checksum first.
func UnmarshalDecimal(data []byte) (*bigdecimal.Decimal, error) {
	body, err := splitChecksum(data)
	if err != nil {
		return nil, err
	}
	var w wireDecimal
	if err := bin.UnmarshalBorsh(&w, body); err != nil {
		return nil, err
	}
	unscaled := bigint.FromSignAndBytes(int(w.Unscaled.Sign), w.Unscaled.Magnitude)
	return bigdecimal.FromBigIntUnscaled(unscaled, w.Scale), nil
}
