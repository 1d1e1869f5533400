package money

import "github.com/shopspring/decimal"

// Epsilon is the closure threshold: balances at or below this are treated
// as fully repaid. Keeps repeated 2-decimal rounding from leaving a loan
// open over residual cents.
var Epsilon = decimal.NewFromFloat(0.01)

// Round2 rounds to currency precision (2 decimal places).
func Round2(d decimal.Decimal) decimal.Decimal { return d.Round(2) }

// IsSettled reports whether a balance is within Epsilon of zero.
func IsSettled(balance decimal.Decimal) bool {
	return balance.LessThanOrEqual(Epsilon)
}

// Min returns the smaller of a and b.
func Min(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}
