package engine

import (
	"time"

	"github.com/SscSPs/money_coach_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

const trendMonths = 3

// Trends builds the monthly spending heatmap from the first day of the month
// three months before asOf up to asOf.
func Trends(l *Ledger, asOf time.Time) domain.TrendsReport {
	w := Window{Start: startOfMonth(asOf).AddDate(0, -trendMonths, 0), End: asOf}
	sub := l.Window(w)
	months := sub.GroupByMonth(w)

	rep := domain.TrendsReport{
		Months:            months,
		TotalTransactions: sub.Len(),
		From:              w.Start,
		To:                w.End,
	}
	if len(months) == 0 {
		return rep
	}

	current := months[len(months)-1]
	if current.Income.IsPositive() {
		r := roundTo(current.TotalExpense.Div(current.Income).InexactFloat64(), 2)
		rep.ExpenseIncomeRatio = &r
	}
	rep.TopCategory = topCategory(current)

	if len(months) < 2 {
		return rep
	}
	previous := months[len(months)-2]
	rep.MonthOverMonth = &domain.MonthOverMonthChange{
		Total:        changePercent(current.TotalExpense, previous.TotalExpense),
		Essential:    changePercent(current.Essential, previous.Essential),
		NonEssential: changePercent(current.NonEssential, previous.NonEssential),
		Income:       changePercent(current.Income, previous.Income),
	}

	curDaily := current.TotalExpense.Div(decimal.NewFromInt(int64(daysForMonth(current.Month, asOf))))
	prevDaily := previous.TotalExpense.Div(decimal.NewFromInt(int64(daysForMonth(previous.Month, asOf))))
	rep.DailyVelocity = &domain.DailyVelocity{
		Current:       curDaily.Round(0),
		Previous:      prevDaily.Round(0),
		ChangePercent: changePercent(curDaily, prevDaily),
	}
	return rep
}

// changePercent is the rounded month-over-month change. A zero previous value
// reads as a 100% rise when current is positive and as no change otherwise.
func changePercent(current, previous decimal.Decimal) float64 {
	if previous.IsZero() {
		if current.IsPositive() {
			return 100
		}
		return 0
	}
	return roundTo(percentChange(current, previous), 1)
}

// daysForMonth is the elapsed days for asOf's own month and the full month length otherwise.
func daysForMonth(key string, asOf time.Time) int {
	if key == monthKey(asOf) {
		return elapsedDaysInMonth(asOf)
	}
	t, err := time.ParseInLocation("2006-01", key, asOf.Location())
	if err != nil {
		return 30
	}
	return daysInMonth(t)
}

func topCategory(m domain.MonthlyBreakdown) *domain.CategoryShare {
	var best *domain.CategoryShare
	for name, amt := range m.ByCategory {
		if best == nil || amt.GreaterThan(best.Amount) || (amt.Equal(best.Amount) && name < best.Name) {
			best = &domain.CategoryShare{Name: name, Amount: amt}
		}
	}
	if best != nil && m.TotalExpense.IsPositive() {
		best.Share = roundTo(best.Amount.Div(m.TotalExpense).Mul(hundred).InexactFloat64(), 0)
	}
	return best
}
