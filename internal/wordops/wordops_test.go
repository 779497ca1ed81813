package wordops

import "testing"

func TestMulAdd(t *testing.T) {
	want := uint64(0xFFFFFFFF)*uint64(0xFFFFFFFF) + uint64(0xFFFFFFFF)
	if got := MulAdd(0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF); got != want {
		t.Fatalf("MulAdd overflowed: got %d want %d", got, want)
	}
}

func TestDivWide(t *testing.T) {
	q, r := DivWide(0, 100, 7)
	if q != 14 || r != 2 {
		t.Fatalf("DivWide(0,100,7) = %d,%d want 14,2", q, r)
	}
}

func TestDivRemNegLong(t *testing.T) {
	cases := []struct{ n, d int64 }{
		{-7, 3},
		{-9, 3},
		{-1, 2},
		{-100, 7},
		{-1 << 62, 3},
	}
	for _, c := range cases {
		r, q := DivRemNegLong(c.n, c.d)
		if q*c.d+r != c.n {
			t.Fatalf("identity broken for (%d,%d): q*d+r = %d, want %d", c.n, c.d, q*c.d+r, c.n)
		}
		if r < 0 || r >= absInt64(c.d) {
			t.Fatalf("remainder out of range for (%d,%d): r=%d", c.n, c.d, r)
		}
	}
}

func TestTrailingZerosZero(t *testing.T) {
	if TrailingZeros32(0) != 32 {
		t.Fatal("TrailingZeros32(0) should be 32")
	}
	if TrailingZeros64(0) != 64 {
		t.Fatal("TrailingZeros64(0) should be 64")
	}
}
