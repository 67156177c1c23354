package engine

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

const currencySymbol = "₹"

var (
	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)
)

// formatMoney renders a whole-unit amount with thousands separators, e.g. ₹12,500.
func formatMoney(d decimal.Decimal) string {
	s := d.Round(0).StringFixed(0)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	if neg {
		return "-" + currencySymbol + b.String()
	}
	return currencySymbol + b.String()
}

// percentChange returns (current-previous)/previous*100. Callers must guard previous == 0.
func percentChange(current, previous decimal.Decimal) float64 {
	return current.Sub(previous).Div(previous).Mul(hundred).InexactFloat64()
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

func maxDecimal(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}
