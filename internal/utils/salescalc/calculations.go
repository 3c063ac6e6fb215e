package salescalc

import (
	"github.com/shopspring/decimal"
)

// Reported ratios and averages are rounded to this many decimal places.
const ratioPlaces = 2

var hundred = decimal.NewFromInt(100)

// Percentage returns part/whole*100, or zero when whole is zero.
func Percentage(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred).Round(ratioPlaces)
}

// Change returns the growth of current over previous in percent. Growth from nothing
// counts as 100 when anything was sold and 0 otherwise.
func Change(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		if current.IsPositive() {
			return hundred
		}
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous.Abs()).Mul(hundred).Round(ratioPlaces)
}

// Average returns total/count, or zero when count is zero.
func Average(total decimal.Decimal, count int) decimal.Decimal {
	if count <= 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(count))).Round(ratioPlaces)
}

// IsFullyPaid reports whether paid covers value.
func IsFullyPaid(paid, value decimal.Decimal) bool {
	return paid.GreaterThanOrEqual(value)
}
