package bigdecimal

import "strings"

// String implements spec.md §4.7's scientific toString layout.
func (d *Decimal) String() string {
	return d.layout(true)
}

// PlainString never uses E-notation, padding with trailing zeros if
// scale < 0, matching java.math.BigDecimal.toPlainString.
func (d *Decimal) PlainString() string {
	return d.layout(false)
}

func (d *Decimal) layout(allowExponential bool) string {
	neg := d.Sign() < 0
	coeff := d.unscaledBig().Abs().Text(10)
	coeffDigits := int32(len(coeff))
	scale := d.scale

	var body string
	if scale == 0 {
		body = coeff
	} else if allowExponential && scale >= 0 {
		adjusted := coeffDigits - 1 - scale
		if adjusted >= -6 {
			body = plainForm(coeff, scale)
		} else {
			body = scientificForm(coeff, adjusted, false)
		}
	} else if !allowExponential {
		body = plainForm(coeff, scale)
	} else {
		adjusted := coeffDigits - 1 - scale
		body = scientificForm(coeff, adjusted, false)
	}

	if neg {
		return "-" + body
	}
	return body
}

func plainForm(coeff string, scale int32) string {
	if scale <= 0 {
		return coeff + strings.Repeat("0", int(-scale))
	}
	coeffDigits := int32(len(coeff))
	if scale >= coeffDigits {
		return "0." + strings.Repeat("0", int(scale-coeffDigits)) + coeff
	}
	point := coeffDigits - scale
	return coeff[:point] + "." + coeff[point:]
}

func scientificForm(coeff string, adjusted int32, engineering bool) string {
	var sb strings.Builder
	if !engineering {
		sb.WriteByte(coeff[0])
		if len(coeff) > 1 {
			sb.WriteByte('.')
			sb.WriteString(coeff[1:])
		}
		sb.WriteByte('E')
		if adjusted >= 0 {
			sb.WriteByte('+')
		}
		sb.WriteString(itoa32(adjusted))
		return sb.String()
	}
	return engineeringForm(coeff, adjusted)
}

// EngineeringString formats d with the exponent aligned to a multiple
// of 3, padding the coefficient with trailing zeros (and adjusting the
// exponent) when fewer integer digits than the alignment remain.
func (d *Decimal) EngineeringString() string {
	neg := d.Sign() < 0
	coeff := d.unscaledBig().Abs().Text(10)
	scale := d.scale
	coeffDigits := int32(len(coeff))
	adjusted := coeffDigits - 1 - scale

	body := engineeringForm(coeff, adjusted)
	if neg {
		return "-" + body
	}
	return body
}

func engineeringForm(coeff string, adjusted int32) string {
	rem := adjusted % 3
	if rem < 0 {
		rem += 3
	}
	exp := adjusted - rem
	intDigits := rem + 1

	for int32(len(coeff)) < intDigits {
		coeff += "0"
	}
	var sb strings.Builder
	sb.WriteString(coeff[:intDigits])
	if int32(len(coeff)) > intDigits {
		sb.WriteByte('.')
		sb.WriteString(coeff[intDigits:])
	}
	sb.WriteByte('E')
	if exp >= 0 {
		sb.WriteByte('+')
	}
	sb.WriteString(itoa32(exp))
	return sb.String()
}

func itoa32(v int32) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [16]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
