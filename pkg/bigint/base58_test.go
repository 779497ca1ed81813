package bigint

import "testing"

func TestBase58Roundtrip(t *testing.T) {
	cases := []string{"0", "1", "257", "115792089237316195423570985008687907853269984665640564039457584007913129639935"}
	for _, s := range cases {
		x, err := FromString(s)
		if err != nil {
			t.Fatal(err)
		}
		enc, err := x.Base58()
		if err != nil {
			t.Fatalf("Base58(%s): %v", s, err)
		}
		back, err := FromBase58(enc)
		if err != nil {
			t.Fatalf("FromBase58(%s): %v", enc, err)
		}
		if back.Cmp(x) != 0 {
			t.Errorf("roundtrip %s -> %s -> %s", s, enc, back.String())
		}
	}
}

func TestBase58RejectsNegativeAndOverflow(t *testing.T) {
	neg, _ := FromString("-1")
	if _, err := neg.Base58(); err != ErrBase58Range {
		t.Fatalf("expected ErrBase58Range for negative value, got %v", err)
	}
	tooBig, _ := FromString("115792089237316195423570985008687907853269984665640564039457584007913129639936")
	if _, err := tooBig.Base58(); err != ErrBase58Range {
		t.Fatalf("expected ErrBase58Range for 2^256, got %v", err)
	}
}

func TestBase58WideRoundtrip512(t *testing.T) {
	max512 := Sub(Pow(Two, 512), One)
	cases := []string{"0", "1", "1208925819614629174706176" /* 2^80 */, max512.String()}
	for _, s := range cases {
		x, err := FromString(s)
		if err != nil {
			t.Fatal(err)
		}
		enc, err := x.Base58Wide(64)
		if err != nil {
			t.Fatalf("Base58Wide(64) for %s: %v", s, err)
		}
		back, err := FromBase58Wide(enc, 64)
		if err != nil {
			t.Fatalf("FromBase58Wide(%s): %v", enc, err)
		}
		if back.Cmp(x) != 0 {
			t.Errorf("wide roundtrip %s -> %s -> %s", s, enc, back.String())
		}
	}
}

func TestBase58WideRejectsUnsupportedWidth(t *testing.T) {
	one := One
	if _, err := one.Base58Wide(16); err == nil {
		t.Fatal("expected an error for an unsupported width")
	}
	if _, err := FromBase58Wide("1", 16); err == nil {
		t.Fatal("expected an error for an unsupported width")
	}
}
