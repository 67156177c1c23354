package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/SscSPs/money_coach_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrentBalance is the running balance over every transaction in the ledger:
// income adds, expenses subtract. It may be negative.
func CurrentBalance(l *Ledger) decimal.Decimal {
	bal := decimal.Zero
	for _, t := range l.Transactions() {
		bal = bal.Add(t.Signed())
	}
	return bal
}

// AverageMonthlyIncome averages the calendar-month income totals over the
// trailing lookbackMonths. Months without income are not counted.
func AverageMonthlyIncome(l *Ledger, asOf time.Time, lookbackMonths int) domain.IncomeStats {
	if lookbackMonths <= 0 {
		lookbackMonths = DefaultSettings().IncomeLookbackMonths
	}
	var totals []decimal.Decimal
	for _, m := range l.GroupByMonth(TrailingMonths(asOf, lookbackMonths)) {
		if m.Income.IsPositive() {
			totals = append(totals, m.Income)
		}
	}

	if len(totals) == 0 {
		return domain.IncomeStats{
			Average:  decimal.Zero,
			Severity: domain.SeverityCritical,
			Alert:    fmt.Sprintf("No income detected in last %d months", lookbackMonths),
		}
	}

	n := decimal.NewFromInt(int64(len(totals)))
	avg := decimal.Sum(totals[0], totals[1:]...).Div(n)

	variance := decimal.Zero
	for _, t := range totals {
		d := t.Sub(avg)
		variance = variance.Add(d.Mul(d))
	}
	variance = variance.Div(n)

	return domain.IncomeStats{
		Average:      avg,
		Volatility:   math.Sqrt(variance.InexactFloat64()) / avg.InexactFloat64() * 100,
		ActiveMonths: len(totals),
		Severity:     domain.SeveritySafe,
	}
}
