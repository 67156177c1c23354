package engine

import (
	"time"

	"github.com/SscSPs/money_coach_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MeasureVelocity is the month-to-date spend divided by the started days of the month.
func MeasureVelocity(l *Ledger, asOf time.Time) domain.SpendingVelocity {
	total := l.Expenses(MonthToDate(asOf))
	days := elapsedDaysInMonth(asOf)
	return domain.SpendingVelocity{
		CurrentDailySpend:   total.Div(decimal.NewFromInt(int64(days))).Round(0),
		TotalSpentThisMonth: total,
		DaysElapsed:         days,
	}
}
