package engine

import (
	"time"

	"github.com/SscSPs/money_coach_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Coverage below this ratio is reported as a warning.
const coverageSafeRatio = 1.2

// TotalMonthlyObligations sums every fixed obligation.
func TotalMonthlyObligations(cfg domain.FinancialConfig) decimal.Decimal {
	total := decimal.Zero
	for _, ob := range cfg.FixedObligations {
		total = total.Add(ob.Amount)
	}
	return total
}

// UpcomingObligations sums the obligations not yet due this cycle, i.e. those whose
// due day is today or later. Obligations due earlier in the month count as paid.
func UpcomingObligations(cfg domain.FinancialConfig, today time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, ob := range cfg.FixedObligations {
		if ob.DueDayOfMonth >= today.Day() {
			total = total.Add(ob.Amount)
		}
	}
	return total
}

// IncomeCoverageRatio grades how comfortably avgIncome covers totalObligations.
func IncomeCoverageRatio(avgIncome, totalObligations decimal.Decimal) domain.IncomeCoverage {
	if !avgIncome.IsPositive() {
		return domain.IncomeCoverage{
			Ratio:    0,
			Severity: domain.SeverityCritical,
			Alert:    "No income to cover fixed obligations",
		}
	}
	if !totalObligations.IsPositive() {
		return domain.IncomeCoverage{Unbounded: true, Severity: domain.SeveritySafe}
	}

	ratio := avgIncome.Div(totalObligations).InexactFloat64()
	switch {
	case ratio < 1:
		return domain.IncomeCoverage{
			Ratio:    ratio,
			Severity: domain.SeverityCritical,
			Alert:    "Income does NOT cover fixed obligations. Shortfall: " + formatMoney(totalObligations.Sub(avgIncome)),
		}
	case ratio < coverageSafeRatio:
		return domain.IncomeCoverage{
			Ratio:    ratio,
			Severity: domain.SeverityWarning,
			Alert:    "Income barely covers fixed obligations. Buffer: " + formatMoney(avgIncome.Sub(totalObligations)),
		}
	}
	return domain.IncomeCoverage{Ratio: ratio, Severity: domain.SeveritySafe}
}
