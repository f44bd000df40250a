package inventory

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is the single currency label used across the whole catalog.
const Currency = money.EUR

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// Money represents a monetary value in the catalog currency.
//
// It is backed by an exact decimal so that summing per-category totals and
// summing item totals always yield the same amount. Rounding to two digits
// happens only at the display and serialization boundaries.
type Money struct {
	value decimal.Decimal
}

func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// ParseMoney parses a monetary amount from text. Both '.' and ',' are
// accepted as the decimal separator. Negative amounts are rejected.
func ParseMoney(s string) (Money, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	value, err := decimal.NewFromString(normalized)
	if err != nil {
		return Money{}, fmt.Errorf("%w: price %q is not a number", ErrInvalidValue, s)
	}
	if value.IsNegative() {
		return Money{}, fmt.Errorf("%w: price %q is negative", ErrInvalidValue, s)
	}
	return Money{value: value}, nil
}

// currency returns the catalog currency, never nil.
func (m Money) currency() money.Currency {
	return *money.New(0, Currency).Currency()
}

// String returns the amount formatted with the currency symbol, for display.
func (m Money) String() string {
	cur := m.currency()
	cents := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(cents.IntPart())
}

// Fixed returns the amount with a '.' decimal separator and exactly two
// fractional digits, the only numeric form ever written to CSV.
func (m Money) Fixed() string { return m.value.StringFixed(2) }

func (m Money) Equal(n Money) bool   { return m.value.Equal(n.value) }
func (m Money) Cmp(n Money) int      { return m.value.Cmp(n.value) }
func (m Money) IsZero() bool         { return m.value.IsZero() }
func (m Money) IsPositive() bool     { return m.value.IsPositive() }
func (m Money) IsNegative() bool     { return m.value.IsNegative() }
func (m Money) Add(n Money) Money    { return Money{value: m.value.Add(n.value)} }
func (m Money) MulInt(n int) Money   { return Money{value: m.value.Mul(decimal.NewFromInt(int64(n)))} }
