package wire

import (
	"testing"

	"go.firedancer.io/bignum/pkg/bigdecimal"
	"go.firedancer.io/bignum/pkg/bigint"
)

func TestMarshalBigIntRoundtrip(t *testing.T) {
	cases := []string{"0", "1", "-1", "123456789012345678901234567890", "-987654321"}
	for _, s := range cases {
		x, err := bigint.FromString(s)
		if err != nil {
			t.Fatal(err)
		}
		data, err := MarshalBigInt(x)
		if err != nil {
			t.Fatalf("MarshalBigInt(%s): %v", s, err)
		}
		got, err := UnmarshalBigInt(data)
		if err != nil {
			t.Fatalf("UnmarshalBigInt(%s): %v", s, err)
		}
		if got.Cmp(x) != 0 {
			t.Errorf("roundtrip %s -> %s", s, got.String())
		}
	}
}

func TestMarshalBigIntChecksumDetectsCorruption(t *testing.T) {
	x := bigint.FromUint64(42)
	data, err := MarshalBigInt(x)
	if err != nil {
		t.Fatal(err)
	}
	data[0] ^= 0xFF
	if _, err := UnmarshalBigInt(data); err != ErrChecksum {
		t.Fatalf("expected ErrChecksum, got %v", err)
	}
}

func TestUnmarshalBigIntTruncated(t *testing.T) {
	if _, err := UnmarshalBigInt([]byte{1, 2, 3}); err != ErrTruncated {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestMarshalDecimalRoundtrip(t *testing.T) {
	cases := []string{"0", "123.456", "-0.001", "1E10", "-42"}
	for _, s := range cases {
		d, err := bigdecimal.Parse(s)
		if err != nil {
			t.Fatal(err)
		}
		data, err := MarshalDecimal(d)
		if err != nil {
			t.Fatalf("MarshalDecimal(%s): %v", s, err)
		}
		got, err := UnmarshalDecimal(data)
		if err != nil {
			t.Fatalf("UnmarshalDecimal(%s): %v", s, err)
		}
		if !bigdecimal.Equal(got, d) || got.Scale() != d.Scale() {
			t.Errorf("roundtrip %s -> %s (scale %d vs %d)", s, got.String(), got.Scale(), d.Scale())
		}
	}
}
