package decround

import (
	"testing"

	"go.firedancer.io/bignum/internal/mag"
)

func TestDivideAndRoundInt64HalfUp(t *testing.T) {
	q, err := DivideAndRoundInt64(5, 2, HalfUp)
	if err != nil {
		t.Fatal(err)
	}
	if q != 3 {
		t.Fatalf("5/2 HALF_UP = %d, want 3", q)
	}
}

func TestDivideAndRoundInt64HalfEven(t *testing.T) {
	cases := []struct {
		num, den int64
		want     int64
	}{
		{5, 2, 2}, // 2.5 -> 2 (even)
		{7, 2, 4}, // 3.5 -> 4 (even)
		{1, 2, 0}, // 0.5 -> 0 (even)
		{3, 2, 2}, // 1.5 -> 2 (even)
	}
	for _, c := range cases {
		got, err := DivideAndRoundInt64(c.num, c.den, HalfEven)
		if err != nil {
			t.Fatal(err)
		}
		if got != c.want {
			t.Errorf("%d/%d HALF_EVEN = %d, want %d", c.num, c.den, got, c.want)
		}
	}
}

func TestDivideAndRoundInt64Ceiling(t *testing.T) {
	q, err := DivideAndRoundInt64(-7, 2, Ceiling)
	if err != nil {
		t.Fatal(err)
	}
	if q != -3 {
		t.Fatalf("-7/2 CEILING = %d, want -3", q)
	}
}

func TestDivideAndRoundInt64Floor(t *testing.T) {
	q, err := DivideAndRoundInt64(-7, 2, Floor)
	if err != nil {
		t.Fatal(err)
	}
	if q != -4 {
		t.Fatalf("-7/2 FLOOR = %d, want -4", q)
	}
}

func TestDivideAndRoundInt64Unnecessary(t *testing.T) {
	_, err := DivideAndRoundInt64(5, 2, Unnecessary)
	if err == nil {
		t.Fatalf("expected error for inexact UNNECESSARY division")
	}
	q, err := DivideAndRoundInt64(6, 2, Unnecessary)
	if err != nil {
		t.Fatal(err)
	}
	if q != 3 {
		t.Fatalf("6/2 UNNECESSARY = %d, want 3", q)
	}
}

func TestDivideAndRound128By64(t *testing.T) {
	// dividend = 10 (fits easily in the low word), divisor = 3.
	q, ok, err := DivideAndRound128By64(0, 10, 3, HalfUp)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatalf("expected ok=true")
	}
	if q != 3 {
		t.Fatalf("10/3 HALF_UP = %d, want 3", q)
	}
}

func TestDivideAndRoundMag(t *testing.T) {
	dividend := mag.FromUint64(7)
	divisor := mag.FromUint64(2)
	q, sign, err := DivideAndRoundMag(dividend, divisor, 1, 1, HalfUp)
	if err != nil {
		t.Fatal(err)
	}
	if sign != 1 || q.Uint64() != 4 {
		t.Fatalf("7/2 HALF_UP = %d (sign %d), want 4 (sign 1)", q.Uint64(), sign)
	}
}

func TestNeedIncrementUnnecessary(t *testing.T) {
	_, err := NeedIncrement(2, 1, Unnecessary, 1, false)
	if err != ErrRoundingNecessary {
		t.Fatalf("expected ErrRoundingNecessary, got %v", err)
	}
}
