package algoconv

import (
	"errors"

	"go.firedancer.io/bignum/internal/mag"
)

// ErrFormat reports malformed integer-string input.
var ErrFormat = errors.New("algoconv: invalid number format")

// ErrOverflow reports a magnitude that would exceed the implementation's
// maximum representable length.
var ErrOverflow = errors.New("algoconv: magnitude too large")

// MaxMagLen bounds the word length of any parsed or computed
// magnitude, sized so the value fits within +/-2^(MaxInt32) per
// spec.md §3.
const MaxMagLen = (1 << 26) // words; generous bound for a pure-software implementation

// Parse converts a digit string (no sign) in the given radix into a
// magnitude, following spec.md §4.5: skip leading zeros, parse the
// first short group sized numDigits mod digitsPerInt[radix], then
// absorb each subsequent digitsPerInt[radix]-digit group via
// destructiveMulAdd.
func Parse(s string, radix int) (mag.Mag, error) {
	radix = normalizeRadix(radix)
	if len(s) == 0 {
		return nil, ErrFormat
	}
	start := 0
	for start < len(s) && s[start] == '0' {
		start++
	}
	if start == len(s) {
		return nil, nil
	}
	digits := s[start:]
	numDigits := len(digits)

	bitsNeeded := (bitsPerDigit[radix]*int64(numDigits))/1024 + 1
	if bitsNeeded/32+1 > MaxMagLen {
		return nil, ErrOverflow
	}

	perInt := digitsPerInt[radix]
	firstGroupLen := numDigits % perInt
	if firstGroupLen == 0 {
		firstGroupLen = perInt
	}

	group := digits[:firstGroupLen]
	v, err := parseGroup(group, radix)
	if err != nil {
		return nil, err
	}
	result := mag.FromUint64(uint64(v))

	superRadix := intRadix[radix]
	for i := firstGroupLen; i < numDigits; i += perInt {
		group = digits[i : i+perInt]
		v, err := parseGroup(group, radix)
		if err != nil {
			return nil, err
		}
		result = mag.MulAddWord(result, superRadix, uint32(v))
		if len(result) > MaxMagLen {
			return nil, ErrOverflow
		}
	}
	return result.Normalize(), nil
}

func parseGroup(group string, radix int) (uint64, error) {
	var v uint64
	for i := 0; i < len(group); i++ {
		d, ok := digitValue(group[i], radix)
		if !ok {
			return 0, ErrFormat
		}
		v = v*uint64(radix) + uint64(d)
	}
	return v, nil
}

// ParseSigned parses an optional leading sign followed by Parse's
// grammar, returning the sign (-1, 0, +1) and magnitude.
func ParseSigned(s string, radix int) (sign int, m mag.Mag, err error) {
	if len(s) == 0 {
		return 0, nil, ErrFormat
	}
	neg := false
	body := s
	switch s[0] {
	case '+':
		body = s[1:]
	case '-':
		neg = true
		body = s[1:]
	}
	if len(body) == 0 {
		return 0, nil, ErrFormat
	}
	m, err = Parse(body, radix)
	if err != nil {
		return 0, nil, err
	}
	if m.IsZero() {
		return 0, nil, nil
	}
	if neg {
		return -1, m, nil
	}
	return 1, m, nil
}
