// Package money implements the fixed-point rounding discipline used for all
// currency values.
//
// Money is represented as decimal.Decimal with two decimal places. Partial sums
// are kept unrounded, only final aggregates and displayed subtotals are passed
// through Round.
package money

import (
	"github.com/shopspring/decimal"
)

// Places is the number of decimal places of the currency.
const Places = 2

var hundred = decimal.NewFromInt(100)

// Round rounds d to two decimal places, half away from zero.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Places)
}

// FromNull returns the value of a nullable decimal, or zero if it is not set.
func FromNull(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}

	return d.Decimal
}

// NonNegative clamps d to be at least zero.
func NonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}

	return d
}

// Sum adds all values without intermediate rounding.
func Sum(values ...decimal.Decimal) decimal.Decimal {
	sum := decimal.Zero
	for _, v := range values {
		sum = sum.Add(v)
	}

	return sum
}

// Percent returns part / total × 100. If total is zero, it returns zero.
func Percent(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}

	return part.Div(total).Mul(hundred)
}

// PercentOf returns value × percent / 100.
func PercentOf(value, percent decimal.Decimal) decimal.Decimal {
	return value.Mul(percent).Div(hundred)
}
