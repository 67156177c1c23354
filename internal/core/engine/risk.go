package engine

import (
	"fmt"
	"time"

	"github.com/SscSPs/money_coach_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	velocityWeight  = decimal.NewFromInt(2)
	categoryWeight  = decimal.NewFromFloat(1.5)
	bufferWeight    = decimal.NewFromInt(3)
	trendScale      = decimal.NewFromInt(10)
	overspendWeight = decimal.NewFromFloat(2.5)
	maxRiskScore    = decimal.NewFromInt(100)
)

// ScoreRisk computes the 0-100 risk score from rolling-window signals and the
// already computed engine result.
func ScoreRisk(l *Ledger, res domain.EngineResult, s Settings) domain.RiskReport {
	s = s.Normalize()
	asOf := res.AsOf

	sig := domain.RiskSignals{
		VelocityBreaches:     velocityBreaches(l, asOf, res.SafeToSpend.DailyAllowance, s),
		CategoryWarnings:     categoryWarnings(l, asOf, s),
		RepeatedOverspending: repeatedOverspending(l, asOf, s),
	}
	if res.CurrentBalance.LessThan(res.EmergencyBuffer) {
		sig.BufferBreaches = 1
	}
	trend := one.Sub(decimal.NewFromFloat(res.Drift.PenaltyFactor)).Mul(trendScale)
	sig.TrendPenalty = trend.InexactFloat64()

	total := decimal.NewFromInt(int64(sig.VelocityBreaches)).Mul(velocityWeight).
		Add(decimal.NewFromInt(int64(sig.CategoryWarnings)).Mul(categoryWeight)).
		Add(decimal.NewFromInt(int64(sig.BufferBreaches)).Mul(bufferWeight)).
		Add(trend).
		Add(decimal.NewFromInt(int64(sig.RepeatedOverspending)).Mul(overspendWeight))
	if total.GreaterThan(maxRiskScore) {
		total = maxRiskScore
	}

	return domain.RiskReport{
		Score:       int(total.Round(0).IntPart()),
		Signals:     sig,
		Explanation: explainRisk(sig, s),
	}
}

// velocityBreaches counts the days of the trailing window, today included,
// whose spending exceeds the tolerated daily allowance.
func velocityBreaches(l *Ledger, asOf time.Time, allowance decimal.Decimal, s Settings) int {
	start := startOfDay(asOf).AddDate(0, 0, -(s.VelocityWindowDays - 1))
	perDay := l.expensesByDay(Window{Start: start, End: asOf})
	limit := allowance.Mul(decimal.NewFromFloat(s.VelocityTolerance))

	n := 0
	for _, spent := range perDay {
		if spent.GreaterThan(limit) {
			n++
		}
	}
	return n
}

// categoryWarnings counts non-essential categories above the share limit of this month's spending.
func categoryWarnings(l *Ledger, asOf time.Time, s Settings) int {
	w := MonthToDate(asOf)
	total := l.Expenses(w)
	if total.IsZero() {
		return 0
	}
	limit := decimal.NewFromFloat(s.CategoryShareLimitPercent)

	n := 0
	for cat, spent := range l.expensesByCategory(w) {
		if l.Policy().IsEssential(cat) {
			continue
		}
		if spent.Div(total).Mul(hundred).GreaterThan(limit) {
			n++
		}
	}
	return n
}

// repeatedOverspending counts the trailing Sunday-start weeks, the current one
// included, whose spending exceeds the weekly threshold.
func repeatedOverspending(l *Ledger, asOf time.Time, s Settings) int {
	thisWeek := startOfWeek(asOf)
	n := 0
	for i := 0; i < s.OverspendWeeks; i++ {
		start := thisWeek.AddDate(0, 0, -7*i)
		end := start.AddDate(0, 0, 7).Add(-time.Nanosecond)
		if l.Expenses(Window{Start: start, End: end}).GreaterThan(s.WeeklyOverspendThreshold) {
			n++
		}
	}
	return n
}

func explainRisk(sig domain.RiskSignals, s Settings) []string {
	var out []string
	if sig.VelocityBreaches > 0 {
		out = append(out, fmt.Sprintf("Daily spending limit exceeded %d times this week", sig.VelocityBreaches))
	}
	if sig.CategoryWarnings > 0 {
		out = append(out, fmt.Sprintf("%d categories consuming over %v%% of budget", sig.CategoryWarnings, s.CategoryShareLimitPercent))
	}
	if sig.BufferBreaches > 0 {
		out = append(out, "Emergency buffer has been breached")
	}
	if sig.TrendPenalty > 0 {
		out = append(out, "Recent spending trends indicate risk")
	}
	if sig.RepeatedOverspending > 0 {
		out = append(out, fmt.Sprintf("Overspending detected in %d of last %d weeks", sig.RepeatedOverspending, s.OverspendWeeks))
	}
	if len(out) == 0 {
		out = append(out, "No significant risk factors detected")
	}
	return out
}
