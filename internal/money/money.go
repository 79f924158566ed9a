// Package money provides fixed-precision currency arithmetic for receipts.
//
// Values are carried at full precision while a receipt is being assembled;
// rounding to cents happens only when a value crosses a display boundary.
package money

import (
	"github.com/shopspring/decimal"
)

// Money is a full-precision decimal amount of store currency.
type Money = decimal.Decimal

// Zero returns a zero amount.
func Zero() Money {
	return decimal.Zero
}

// FromFloat converts a float into an exact decimal amount.
func FromFloat(value float64) Money {
	return decimal.NewFromFloat(value)
}

// FromInt converts whole currency units into an amount.
func FromInt(value int64) Money {
	return decimal.NewFromInt(value)
}

// Parse reads an amount from its string form, e.g. "12.45".
func Parse(value string) (Money, error) {
	return decimal.NewFromString(value)
}

// MulCount multiplies a unit price by a line quantity at full precision.
func MulCount(unit Money, count int) Money {
	return unit.Mul(decimal.NewFromInt(int64(count)))
}

// Round2 rounds to two decimal places, half away from zero. This is the one
// rounding mode the receipt contract allows and it is applied independently
// to each displayed field, never to intermediate sums.
func Round2(value Money) Money {
	return value.Round(2)
}

// Format renders an amount with exactly two decimal places.
func Format(value Money) string {
	return value.StringFixed(2)
}

// Min returns the smaller of two amounts.
func Min(a, b Money) Money {
	if a.LessThan(b) {
		return a
	}
	return b
}
