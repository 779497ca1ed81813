package algoconv

import (
	"math"
	"strings"
	"sync"

	"go.firedancer.io/bignum/internal/mag"
)

// radixCache is the process-wide append-only cache of radix^(2^n)
// magnitudes used by recursive Schönhage conversion. It is a
// publish-once structure: entries are only ever appended, guarded by
// a mutex for a correct (if stricter-than-required) publish/acquire
// pattern, per spec.md §5's "benign double-compute race" allowance.
type radixCache struct {
	mu    sync.Mutex
	cache [37][]mag.Mag
}

var globalRadixCache radixCache

// powerOf returns radix^(2^n), computing and caching any missing
// entries by squaring the last known power.
func (c *radixCache) powerOf(radix, n int) mag.Mag {
	c.mu.Lock()
	defer c.mu.Unlock()
	powers := c.cache[radix]
	if len(powers) == 0 {
		powers = append(powers, mag.FromUint64(uint64(radix)))
	}
	for len(powers) <= n {
		last := powers[len(powers)-1]
		powers = append(powers, mag.Multiply(last, last))
	}
	c.cache[radix] = powers
	return powers[n]
}

// Format converts a magnitude to a digit string in the given radix
// (no sign), per spec.md §4.5: below SchoenhageBaseConversionThreshold
// words, repeated single-word-scale division; above it, recursive
// Schönhage base conversion.
func Format(m mag.Mag, radix int) string {
	radix = normalizeRadix(radix)
	m = m.Normalize()
	if len(m) == 0 {
		return "0"
	}
	if len(m) <= SchoenhageBaseConversionThreshold {
		return formatSmall(m, radix)
	}
	return schoenhageFormat(m, radix, 0)
}

func formatSmall(m mag.Mag, radix int) string {
	var groups []string
	superRadix := longRadix[radix]
	width := digitsPerLong[radix]
	for !m.IsZero() {
		q, r, _ := mag.Divide(m, mag.FromUint64(superRadix))
		group := formatGroupPadded(r.Uint64(), radix, width)
		groups = append(groups, group)
		m = q
	}
	if len(groups) == 0 {
		return "0"
	}
	// groups were produced least-significant first; the most
	// significant group must not be zero-padded.
	last := len(groups) - 1
	groups[last] = strings.TrimLeft(groups[last], "0")
	if groups[last] == "" {
		groups[last] = "0"
	}
	var sb strings.Builder
	for i := last; i >= 0; i-- {
		sb.WriteString(groups[i])
	}
	return sb.String()
}

func formatGroupPadded(v uint64, radix int, width int) string {
	buf := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		buf[i] = digitChar(int(v % uint64(radix)))
		v /= uint64(radix)
	}
	return string(buf)
}

// schoenhageFormat recursively halves the magnitude by radix^(2^n)
// where n is chosen so 2^n is close to half of m's digit count in the
// target radix, then concatenates the formatted halves, left-padding
// the low half with zeros to its requested width.
func schoenhageFormat(m mag.Mag, radix int, digits int) string {
	m = m.Normalize()
	if len(m) <= SchoenhageBaseConversionThreshold {
		s := formatSmall(m, radix)
		if digits > 0 {
			return padDigits(s, digits)
		}
		return s
	}
	b := float64(m.BitLen())
	n := int(math.Round(math.Log2(b*ln2/math.Log(float64(radix))))) - 1
	if n < 0 {
		n = 0
	}
	v := globalRadixCache.powerOf(radix, n)
	lowDigits := 1 << uint(n)

	q, r, _ := mag.Divide(m, v)
	hi := schoenhageFormat(q, radix, digits-lowDigits)
	lo := schoenhageFormat(r, radix, lowDigits)
	return hi + lo
}

const ln2 = 0.6931471805599453

func padDigits(s string, digits int) string {
	if digits <= len(s) {
		return s
	}
	return strings.Repeat("0", digits-len(s)) + s
}

// FormatSigned formats sign/magnitude into a string, prepending '-'
// for negative values.
func FormatSigned(sign int, m mag.Mag, radix int) string {
	if sign == 0 {
		return "0"
	}
	s := Format(m, radix)
	if sign < 0 {
		return "-" + s
	}
	return s
}
