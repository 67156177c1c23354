package engine

import (
	"github.com/SscSPs/money_coach_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

const (
	loanBurdenLimit      = 0.3
	loanPenalty          = 30
	nonEssentialWeight   = 30
	lowBalancePenalty    = 20
	highRiskScore        = 50
	highRiskPenalty      = 15
	minHealthScore       = 10
	maxHealthScore       = 100
	nonEssentialPressure = 0.4

	pressureLowCash      = "High (Low Cash Buffer)"
	pressureNonEssential = "High (High Non-Essential Spending)"
	pressureModerate     = "Medium"
	eventIncomeDay       = "Income/Fixed Expenses Day"
)

// Health builds the weekly coaching snapshot from an engine result and its risk report.
func Health(cfg domain.FinancialConfig, l *Ledger, res domain.EngineResult, risk domain.RiskReport, s Settings) domain.HealthSummary {
	s = s.Normalize()
	asOf := res.AsOf
	w := TrailingDays(asOf, s.HealthLookbackDays)

	essential := l.Sum(w, domain.ClassEssential)
	nonEssential := l.Sum(w, domain.ClassNonEssential)
	spent := essential.Add(nonEssential)

	ratio := 0.0
	if spent.IsPositive() {
		ratio = nonEssential.Div(spent).InexactFloat64()
	}
	weeks := decimal.NewFromInt(int64(s.HealthLookbackDays)).Div(decimal.NewFromInt(7))
	weeklyEssential := essential.Div(weeks)

	forecast, lowest := projectBalance(cfg, res, weeklyEssential, s.ForecastDays)
	low := lowest.LessThan(s.LowBalanceThreshold)

	score := maxHealthScore
	if sumLoans(cfg).GreaterThan(cfg.MonthlyIncome.Mul(decimal.NewFromFloat(loanBurdenLimit))) {
		score -= loanPenalty
	}
	score -= int(decimal.NewFromFloat(ratio * nonEssentialWeight).Round(0).IntPart())
	if low {
		score -= lowBalancePenalty
	}
	if risk.Score > highRiskScore {
		score -= highRiskPenalty
	}
	score = max(minHealthScore, min(maxHealthScore, score))

	pressure := pressureModerate
	switch {
	case low:
		pressure = pressureLowCash
	case ratio > nonEssentialPressure:
		pressure = pressureNonEssential
	}

	return domain.HealthSummary{
		UserID:               res.UserID,
		AsOf:                 asOf,
		Score:                score,
		NonEssentialRatio:    roundTo(ratio, 2),
		WeeklyEssentialSpend: weeklyEssential.Round(0),
		LowBalanceRisk:       low,
		SpendingPressure:     pressure,
		Forecast:             forecast,
		RiskScore:            risk.Score,
		Level:                KillSwitchLevelFor(risk.Score),
		DailyAllowance:       res.SafeToSpend.DailyAllowance,
		RemainingSafeToSpend: res.SafeToSpend.RemainingSafeToSpend,
	}
}

// projectBalance walks the balance forward day by day: declared income minus
// obligations lands on the 1st, essential spending is drawn every day.
func projectBalance(cfg domain.FinancialConfig, res domain.EngineResult, weeklyEssential decimal.Decimal, days int) ([]domain.ForecastPoint, decimal.Decimal) {
	dailyEssential := weeklyEssential.Div(decimal.NewFromInt(7))
	monthlyNet := cfg.MonthlyIncome.Sub(res.TotalObligations)

	balance := res.CurrentBalance
	lowest := balance
	points := make([]domain.ForecastPoint, 0, days)
	for i := 0; i < days; i++ {
		date := startOfDay(res.AsOf).AddDate(0, 0, i)
		event := ""
		if date.Day() == 1 {
			balance = balance.Add(monthlyNet)
			event = eventIncomeDay
		}
		balance = balance.Sub(dailyEssential)
		if balance.LessThan(lowest) {
			lowest = balance
		}
		points = append(points, domain.ForecastPoint{Date: date, ProjectedBalance: balance.Round(0), PressureEvent: event})
	}
	return points, lowest
}

// sumLoans totals the obligations that look like loan repayments.
func sumLoans(cfg domain.FinancialConfig) decimal.Decimal {
	total := decimal.Zero
	for _, ob := range cfg.FixedObligations {
		if ob.IsLoan() {
			total = total.Add(ob.Amount)
		}
	}
	return total
}
