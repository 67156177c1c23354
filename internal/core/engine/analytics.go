package engine

import (
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/money_coach_app/internal/core/domain"
)

// ParseTimeframe accepts month, 3months and year. An empty value means month.
func ParseTimeframe(s string) (domain.AnalyticsTimeframe, error) {
	switch tf := domain.AnalyticsTimeframe(s); tf {
	case "":
		return domain.TimeframeMonth, nil
	case domain.TimeframeMonth, domain.TimeframeThreeMonths, domain.TimeframeYear:
		return tf, nil
	}
	return "", fmt.Errorf("unknown timeframe %q", s)
}

func timeframeStart(asOf time.Time, tf domain.AnalyticsTimeframe) time.Time {
	switch tf {
	case domain.TimeframeThreeMonths:
		return asOf.AddDate(0, -3, 0)
	case domain.TimeframeYear:
		return asOf.AddDate(-1, 0, 0)
	}
	return asOf.AddDate(0, -1, 0)
}

// Analytics reports income against expenses over the timeframe ending at asOf.
func Analytics(l *Ledger, asOf time.Time, tf domain.AnalyticsTimeframe) domain.IncomeExpenseReport {
	if tf == "" {
		tf = domain.TimeframeMonth
	}
	w := Window{Start: timeframeStart(asOf, tf), End: asOf}
	sub := l.Window(w)
	p := sub.Partition()

	income := sub.Income(w)
	expenses := sub.Expenses(w)
	rep := domain.IncomeExpenseReport{
		Timeframe:         tf,
		From:              w.Start,
		TotalIncome:       income,
		TotalExpenses:     expenses,
		NetSavings:        income.Sub(expenses),
		IncomeCount:       len(p.Income),
		ExpenseCount:      len(p.Essential) + len(p.NonEssential),
		Months:            sub.GroupByMonth(w),
		CategoryBreakdown: []domain.CategoryShare{},
	}
	if income.IsPositive() {
		rep.SavingsRate = roundTo(rep.NetSavings.Div(income).Mul(hundred).InexactFloat64(), 1)
	}

	for name, amt := range sub.expensesByCategory(w) {
		share := 0.0
		if expenses.IsPositive() {
			share = roundTo(amt.Div(expenses).Mul(hundred).InexactFloat64(), 1)
		}
		rep.CategoryBreakdown = append(rep.CategoryBreakdown, domain.CategoryShare{Name: name, Amount: amt, Share: share})
	}
	sort.Slice(rep.CategoryBreakdown, func(i, j int) bool {
		a, b := rep.CategoryBreakdown[i], rep.CategoryBreakdown[j]
		if !a.Amount.Equal(b.Amount) {
			return a.Amount.GreaterThan(b.Amount)
		}
		return a.Name < b.Name
	})
	return rep
}
