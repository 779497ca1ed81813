package bigdecimal

import (
	"errors"
	"strconv"

	"go.firedancer.io/bignum/pkg/bigint"
)

// ErrFormat reports a malformed decimal string.
var ErrFormat = errors.New("bigdecimal: invalid number format")

// parseState names the BigDecimal string parser's states, per
// spec.md §4.8: a terminal state must have seen at least one digit;
// any unexpected character fails with ErrFormat.
type parseState int

const (
	stateSign parseState = iota
	stateIntegerPart
	stateFractionPart
	stateExponentSign
	stateExponentDigits
	stateEnd
)

// Parse implements spec.md §4.8's decimal grammar:
//
//	Sign? (Digits ('.' Digits?)? | '.' Digits) (('e'|'E') Sign? Digits)?
func Parse(s string) (*Decimal, error) {
	if len(s) == 0 {
		return nil, ErrFormat
	}
	i := 0
	neg := false
	state := stateSign

	var digits []byte
	fractionDigits := 0
	sawDigit := false
	expNeg := false
	var expDigits []byte

	for i < len(s) {
		c := s[i]
		switch state {
		case stateSign:
			switch {
			case c == '+':
				i++
			case c == '-':
				neg = true
				i++
			}
			state = stateIntegerPart
		case stateIntegerPart:
			switch {
			case c >= '0' && c <= '9':
				digits = append(digits, c)
				sawDigit = true
				i++
			case c == '.':
				state = stateFractionPart
				i++
			case c == 'e' || c == 'E':
				if !sawDigit {
					return nil, ErrFormat
				}
				state = stateExponentSign
				i++
			default:
				return nil, ErrFormat
			}
		case stateFractionPart:
			switch {
			case c >= '0' && c <= '9':
				digits = append(digits, c)
				fractionDigits++
				sawDigit = true
				i++
			case c == 'e' || c == 'E':
				if !sawDigit {
					return nil, ErrFormat
				}
				state = stateExponentSign
				i++
			default:
				return nil, ErrFormat
			}
		case stateExponentSign:
			switch {
			case c == '+':
				i++
			case c == '-':
				expNeg = true
				i++
			}
			state = stateExponentDigits
		case stateExponentDigits:
			if c >= '0' && c <= '9' {
				expDigits = append(expDigits, c)
				i++
			} else {
				return nil, ErrFormat
			}
		}
	}

	if !sawDigit {
		return nil, ErrFormat
	}
	if state == stateExponentSign || (state == stateExponentDigits && len(expDigits) == 0) {
		return nil, ErrFormat
	}
	if len(digits) == 0 {
		digits = []byte{'0'}
	}

	unscaled, err := bigint.FromString(string(digits))
	if err != nil {
		return nil, ErrFormat
	}
	if neg {
		unscaled = unscaled.Neg()
	}

	scale := int64(fractionDigits)
	if len(expDigits) > 0 {
		exp, err := strconv.ParseInt(string(expDigits), 10, 64)
		if err != nil {
			return nil, ErrFormat
		}
		if expNeg {
			exp = -exp
		}
		scale -= exp
	}
	if scale > 1<<31-1 || scale < -(1<<31) {
		return nil, ErrFormat
	}
	return fromInflated(unscaled, int32(scale)), nil
}
