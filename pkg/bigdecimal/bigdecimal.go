// Package bigdecimal implements BigDecimal: an immutable fixed-point
// decimal built on pkg/bigint, following spec.md §4.7's compact/
// inflated dual representation — the unscaled value lives in a plain
// int64 whenever it fits, falling back to a *bigint.Int only when it
// doesn't, so the overwhelmingly common case (small coefficients)
// never pays for a big-integer allocation.
package bigdecimal

import (
	"errors"
	"sync"
	"sync/atomic"

	"go.firedancer.io/bignum/internal/decround"
	"go.firedancer.io/bignum/pkg/bigint"
)

// inflatedSentinel is the intCompact value meaning "consult inflated"
// instead — math.MinInt64 can never be a legal compact unscaled value
// since its absolute value would itself overflow int64, per spec.md
// §4.7 and §9's INFLATED sentinel note.
const inflatedSentinel = int64(-1) << 63

// RoundingMode re-exports internal/decround's eight-variant enum at
// the package boundary BigDecimal callers actually use.
type RoundingMode = decround.RoundingMode

const (
	Up          = decround.Up
	Down        = decround.Down
	Ceiling     = decround.Ceiling
	Floor       = decround.Floor
	HalfUp      = decround.HalfUp
	HalfDown    = decround.HalfDown
	HalfEven    = decround.HalfEven
	Unnecessary = decround.Unnecessary
)

// MathContext configures precision-bounded arithmetic: precision == 0
// means "exact, no rounding".
type MathContext struct {
	Precision uint32
	Mode      RoundingMode
}

// Decimal is an immutable fixed-point decimal value = unscaled * 10^-scale.
type Decimal struct {
	intCompact int64
	inflated   *bigint.Int
	scale      int32

	precisionCache int32 // precision + 1; 0 means uncached
	stringCache    atomic.Value
}

var (
	bigTenPowersMu sync.RWMutex
	bigTenPowers   = []*bigint.Int{bigint.One}
)

func bigTenToThe(n int) *bigint.Int {
	if n < 0 {
		return bigint.Zero
	}
	bigTenPowersMu.RLock()
	if n < len(bigTenPowers) {
		v := bigTenPowers[n]
		bigTenPowersMu.RUnlock()
		return v
	}
	bigTenPowersMu.RUnlock()

	bigTenPowersMu.Lock()
	defer bigTenPowersMu.Unlock()
	for len(bigTenPowers) <= n {
		next := bigint.Mul(bigTenPowers[len(bigTenPowers)-1], bigint.Ten)
		bigTenPowers = append(bigTenPowers, next)
	}
	return bigTenPowers[n]
}

// longTenPowers[i] = 10^i for i in [0,18], the compact-path analogue
// of bigTenPowers.
var longTenPowers = [19]int64{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000,
	1000000000, 10000000000, 100000000000, 1000000000000,
	10000000000000, 100000000000000, 1000000000000000,
	10000000000000000, 100000000000000000, 1000000000000000000,
}

func fromCompact(unscaled int64, scale int32) *Decimal {
	if unscaled == inflatedSentinel {
		// math.MinInt64 cannot be represented in the compact slot
		// (its absolute value overflows int64); force inflation.
		return fromInflated(bigint.FromInt64(unscaled), scale)
	}
	return &Decimal{intCompact: unscaled, scale: scale}
}

func fromInflated(v *bigint.Int, scale int32) *Decimal {
	if v.IsInt64() {
		return fromCompact(v.Int64(), scale)
	}
	return &Decimal{intCompact: inflatedSentinel, inflated: v, scale: scale}
}

// isInflated reports whether d must be read through d.inflated.
func (d *Decimal) isInflated() bool {
	return d.intCompact == inflatedSentinel
}

// unscaledBig returns d's unscaled value as a *bigint.Int regardless
// of representation.
func (d *Decimal) unscaledBig() *bigint.Int {
	if d.isInflated() {
		return d.inflated
	}
	return bigint.FromInt64(d.intCompact)
}

// UnscaledBigInt returns d's unscaled value as a *bigint.Int,
// regardless of whether d is stored compact or inflated.
func (d *Decimal) UnscaledBigInt() *bigint.Int {
	return d.unscaledBig()
}

// Scale returns d's scale: value == unscaled * 10^-scale.
func (d *Decimal) Scale() int32 {
	return d.scale
}

// Sign returns -1, 0, or +1.
func (d *Decimal) Sign() int {
	if d.isInflated() {
		return d.inflated.Sign()
	}
	switch {
	case d.intCompact > 0:
		return 1
	case d.intCompact < 0:
		return -1
	default:
		return 0
	}
}

// ErrOverflow is returned when a computed scale would exceed int32
// range.
var ErrOverflow = errors.New("bigdecimal: scale overflow")

func addScale(a, b int32) (int32, error) {
	sum := int64(a) + int64(b)
	if sum > 1<<31-1 || sum < -(1<<31) {
		return 0, ErrOverflow
	}
	return int32(sum), nil
}

// FromInt64Unscaled builds a Decimal directly from an unscaled int64
// and a scale.
func FromInt64Unscaled(unscaled int64, scale int32) *Decimal {
	return fromCompact(unscaled, scale)
}

// FromBigIntUnscaled builds a Decimal from an unscaled *bigint.Int and
// a scale.
func FromBigIntUnscaled(unscaled *bigint.Int, scale int32) *Decimal {
	return fromInflated(unscaled, scale)
}
