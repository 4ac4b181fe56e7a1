package cheapshark

import (
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ParsePrice reads an upstream price. Blank or unparseable input is zero.
func ParsePrice(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Savings is the percentage discount of sale against normal, rounded to two
// places and clamped to [0, 100]. A non-positive normal price yields zero.
func Savings(sale, normal decimal.Decimal) decimal.Decimal {
	if !normal.IsPositive() {
		return decimal.Zero
	}
	pct := normal.Sub(sale).Div(normal).Mul(hundred).Round(2)
	if pct.IsNegative() {
		return decimal.Zero
	}
	if pct.GreaterThan(hundred) {
		return hundred
	}
	return pct
}
