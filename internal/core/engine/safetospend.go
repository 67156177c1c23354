package engine

import (
	"fmt"
	"time"

	"github.com/SscSPs/money_coach_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

const (
	criticalRunwayDays = 7
	warningRunwayDays  = 15
	cautionRunwayDays  = 30
)

// DaysRemainingInMonth counts today and the days after it in today's month.
func DaysRemainingInMonth(today time.Time) int {
	d := daysInMonth(today) - today.Day() + 1
	if d < 1 {
		return 1
	}
	return d
}

// CalculateSafeToSpend withholds the buffer and upcoming obligations from the
// balance, applies the drift penalty and spreads the rest over the month.
func CalculateSafeToSpend(balance, emergencyBuffer, upcoming decimal.Decimal, penaltyFactor float64, asOf time.Time) domain.SafeToSpend {
	available := maxDecimal(decimal.Zero, balance.Sub(emergencyBuffer).Sub(upcoming))
	adjusted := available.Mul(decimal.NewFromFloat(penaltyFactor))
	days := DaysRemainingInMonth(asOf)
	return domain.SafeToSpend{
		AvailablePool:        available,
		AdjustedPool:         adjusted,
		RemainingSafeToSpend: adjusted.Round(0),
		DailyAllowance:       adjusted.Div(decimal.NewFromInt(int64(days))).Round(0),
		RemainingDays:        days,
	}
}

// ForecastExhaustion estimates how many days remainingSafeToSpend lasts at the
// trailing average daily spend.
func ForecastExhaustion(l *Ledger, asOf time.Time, balance, remainingSafeToSpend decimal.Decimal, s Settings) domain.ExhaustionForecast {
	s = s.Normalize()
	avg := l.DailyAverage(TrailingDays(asOf, s.ExhaustionLookbackDays))

	if !balance.IsPositive() {
		now := asOf
		return domain.ExhaustionForecast{
			ExhaustionDate:         &now,
			AvgDailySpending:       avg.Round(0),
			RequiredDailyReduction: decimal.Zero,
			Severity:               domain.SeverityCritical,
			Alert:                  "Balance is already at or below zero",
		}
	}
	if avg.IsZero() {
		return domain.ExhaustionForecast{
			Unbounded:              true,
			AvgDailySpending:       decimal.Zero,
			RequiredDailyReduction: decimal.Zero,
			Severity:               domain.SeveritySafe,
		}
	}

	days := int(remainingSafeToSpend.Div(avg).Floor().IntPart())
	if days < 0 {
		days = 0
	}
	date := asOf.AddDate(0, 0, days)
	f := domain.ExhaustionForecast{
		DaysUntilExhaustion:    days,
		ExhaustionDate:         &date,
		AvgDailySpending:       avg.Round(0),
		RequiredDailyReduction: decimal.Zero,
		Severity:               domain.SeveritySafe,
	}
	dateStr := dayKey(date)

	switch {
	case days <= criticalRunwayDays:
		safeDaily := balance.Div(decimal.NewFromInt(cautionRunwayDays))
		f.RequiredDailyReduction = avg.Sub(safeDaily).Round(0)
		f.Severity = domain.SeverityCritical
		if f.RequiredDailyReduction.IsPositive() {
			f.Alert = fmt.Sprintf("URGENT: Funds exhausted by %s. Daily spending must drop to %s (reduce by %s).",
				dateStr, formatMoney(safeDaily), formatMoney(f.RequiredDailyReduction))
		} else {
			f.Alert = fmt.Sprintf("URGENT: Safe-to-spend exhausted by %s.", dateStr)
		}
	case days <= warningRunwayDays:
		f.Severity = domain.SeverityWarning
		f.Alert = fmt.Sprintf("WARNING: Balance will run out on %s. Reduce non-essential spending immediately.", dateStr)
	case days <= cautionRunwayDays:
		f.Severity = domain.SeverityCaution
		f.Alert = fmt.Sprintf("Your balance will last %d days at current pace.", days)
	}
	return f
}

// Compute runs the full safe-to-spend pipeline for one user at asOf.
// l must hold the user's complete ledger; the balance is taken over all of it.
func Compute(cfg domain.FinancialConfig, l *Ledger, asOf time.Time, s Settings) domain.EngineResult {
	s = s.Normalize()

	balance := CurrentBalance(l)
	income := AverageMonthlyIncome(l, asOf, s.IncomeLookbackMonths)
	total := TotalMonthlyObligations(cfg)
	coverage := IncomeCoverageRatio(income.Average, total)
	upcoming := UpcomingObligations(cfg, asOf)
	buffer := income.Average.Mul(decimal.NewFromFloat(cfg.EmergencyBufferPercent)).Div(hundred)
	drift := DetectDrift(l, asOf, s)
	sts := CalculateSafeToSpend(balance, buffer, upcoming, drift.PenaltyFactor, asOf)
	exhaustion := ForecastExhaustion(l, asOf, balance, sts.RemainingSafeToSpend, s)
	velocity := MeasureVelocity(l, asOf)

	res := domain.EngineResult{
		UserID:              cfg.UserID,
		AsOf:                asOf,
		CurrentBalance:      balance,
		Income:              income,
		Coverage:            coverage,
		TotalObligations:    total,
		UpcomingObligations: upcoming,
		EmergencyBuffer:     buffer,
		Drift:               drift,
		SafeToSpend:         sts,
		Exhaustion:          exhaustion,
		Velocity:            velocity,
		BreachFlags:         append([]string{}, drift.Flags...),
		Alerts:              []domain.Alert{},
		Advice:              []string{},
	}

	if coverage.Alert != "" {
		res.Alerts = append(res.Alerts, domain.Alert{Severity: coverage.Severity, Message: coverage.Alert})
	}
	if exhaustion.Alert != "" {
		res.Alerts = append(res.Alerts, domain.Alert{Severity: exhaustion.Severity, Message: exhaustion.Alert})
	}
	if velocity.CurrentDailySpend.GreaterThan(sts.DailyAllowance) {
		res.BreachFlags = append(res.BreachFlags, fmt.Sprintf("Daily spending (%s) exceeds allowance (%s)",
			formatMoney(velocity.CurrentDailySpend), formatMoney(sts.DailyAllowance)))
		res.Alerts = append(res.Alerts, domain.Alert{
			Severity: domain.SeverityWarning,
			Message: fmt.Sprintf("Current daily spending (%s) exceeds safe limit (%s)",
				formatMoney(velocity.CurrentDailySpend), formatMoney(sts.DailyAllowance)),
		})
	}

	if exhaustion.RequiredDailyReduction.IsPositive() {
		res.Advice = append(res.Advice, fmt.Sprintf("Reduce daily spending by %s to extend balance to 30 days.",
			formatMoney(exhaustion.RequiredDailyReduction)))
	}
	if !coverage.Unbounded && coverage.Ratio < coverageSafeRatio {
		res.Advice = append(res.Advice, "Income does not adequately cover fixed expenses. Consider increasing income or reducing obligations.")
	}
	if drift.Status == domain.DriftDeteriorating {
		cut := int(one.Sub(decimal.NewFromFloat(drift.PenaltyFactor)).Mul(hundred).Round(0).IntPart())
		res.Advice = append(res.Advice, fmt.Sprintf("Spending patterns are deteriorating. Safe-to-Spend reduced by %d%% as protection.", cut))
	}
	return res
}
