package bigdecimal

import "testing"

func parseOrFail(t *testing.T, s string) *Decimal {
	t.Helper()
	d, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q): %v", s, err)
	}
	return d
}

func TestParseAndString(t *testing.T) {
	cases := []string{"0", "1", "-1", "123.456", "0.001", "1E10", "1.5E-3", "-123.456"}
	for _, s := range cases {
		d := parseOrFail(t, s)
		_ = d.String()
	}
}

func TestAddScaleRule(t *testing.T) {
	a := parseOrFail(t, "1.5")
	b := parseOrFail(t, "2.25")
	sum, err := Add(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if sum.Scale() != 2 {
		t.Fatalf("(1.5+2.25).scale = %d, want 2 (max of 1,2)", sum.Scale())
	}
	if sum.String() != "3.75" {
		t.Fatalf("1.5+2.25 = %s, want 3.75", sum.String())
	}
}

func TestMulScaleRule(t *testing.T) {
	a := parseOrFail(t, "1.5")
	b := parseOrFail(t, "2.25")
	prod, err := Mul(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if prod.Scale() != 3 {
		t.Fatalf("(1.5*2.25).scale = %d, want 3", prod.Scale())
	}
	if prod.String() != "3.375" {
		t.Fatalf("1.5*2.25 = %s, want 3.375", prod.String())
	}
}

func TestDivideScenarioS5(t *testing.T) {
	one := parseOrFail(t, "1")
	three := parseOrFail(t, "3")
	q, err := DivideContext(one, three, MathContext{Precision: 10, Mode: HalfUp})
	if err != nil {
		t.Fatal(err)
	}
	if q.String() != "0.3333333333" {
		t.Fatalf("1/3 @ 10 HALF_UP = %s, want 0.3333333333", q.String())
	}

	_, err = DivideExact(one, three)
	if err == nil {
		t.Fatalf("expected ArithmeticError from exact 1/3 division")
	}
}

func TestSetScaleScenarioS6(t *testing.T) {
	x := parseOrFail(t, "123.456")
	rounded, err := SetScale(x, 1, HalfEven)
	if err != nil {
		t.Fatal(err)
	}
	if rounded.String() != "123.5" {
		t.Fatalf("123.456 setScale(1,HALF_EVEN) = %s, want 123.5", rounded.String())
	}
	down, err := SetScale(x, 1, Down)
	if err != nil {
		t.Fatal(err)
	}
	if down.String() != "123.4" {
		t.Fatalf("123.456 setScale(1,DOWN) = %s, want 123.4", down.String())
	}
}

func TestHalfEvenTieBreaks(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"1.5", "2"},
		{"2.5", "2"},
		{"3.5", "4"},
		{"-2.5", "-2"},
	}
	for _, c := range cases {
		x := parseOrFail(t, c.in)
		rounded, err := SetScale(x, 0, HalfEven)
		if err != nil {
			t.Fatal(err)
		}
		if rounded.String() != c.want {
			t.Errorf("%s HALF_EVEN -> %s, want %s", c.in, rounded.String(), c.want)
		}
	}
}

func TestUnnecessaryFailsOnLossyRounding(t *testing.T) {
	x := parseOrFail(t, "1.23")
	_, err := SetScale(x, 1, Unnecessary)
	if err == nil {
		t.Fatalf("expected error rounding 1.23 to scale 1 under UNNECESSARY")
	}
	exact, err := SetScale(x, 2, Unnecessary)
	if err != nil {
		t.Fatal(err)
	}
	if exact.String() != "1.23" {
		t.Fatalf("exact no-op setScale changed value: %s", exact.String())
	}
}

func TestStripTrailingZeros(t *testing.T) {
	x := parseOrFail(t, "1.2300")
	stripped := StripTrailingZeros(x)
	if Cmp(stripped, x) != 0 {
		t.Fatalf("stripTrailingZeros changed value")
	}
	if stripped.String() != "1.23" {
		t.Fatalf("StripTrailingZeros(1.2300) = %s, want 1.23", stripped.String())
	}
}

func TestCompareAcrossScales(t *testing.T) {
	a := parseOrFail(t, "2.0")
	b := parseOrFail(t, "2.00")
	if !Equal(a, b) {
		t.Fatalf("2.0 and 2.00 should compare equal")
	}
	c := parseOrFail(t, "2.01")
	if Cmp(a, c) >= 0 {
		t.Fatalf("2.0 should be less than 2.01")
	}
}

func TestPlainStringNegativeScale(t *testing.T) {
	d, err := Parse("1E+3")
	if err != nil {
		t.Fatal(err)
	}
	if d.PlainString() != "1000" {
		t.Fatalf("1E+3 plain string = %s, want 1000", d.PlainString())
	}
}
