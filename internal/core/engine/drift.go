package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/SscSPs/money_coach_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

const (
	nonEssentialSurgePercent = 20
	incomeSpendRatioLimit    = 0.85
	totalSpendGrowthPercent  = 15
	incomeDropPercent        = -5
	spendRisePercent         = 5

	deterioratingScore = 60
	stableScore        = 30
)

var incomeSpendRatio = decimal.NewFromFloat(incomeSpendRatioLimit)

// DetectDrift compares the latest month with data against the month before it
// over the trailing drift window and maps the result to a pool penalty.
func DetectDrift(l *Ledger, asOf time.Time, s Settings) domain.DriftReport {
	s = s.Normalize()
	w := TrailingMonths(asOf, s.DriftLookbackMonths)
	sub := l.Window(w)
	months := sub.GroupByMonth(w)
	if sub.Len() < s.DriftMinTransactions || len(months) < 2 {
		return domain.DriftReport{Status: domain.DriftStable, PenaltyFactor: 1.0, Flags: []string{}}
	}

	current := months[len(months)-1]
	previous := months[len(months)-2]
	score := 0
	flags := []string{}

	if previous.NonEssential.IsPositive() {
		growth := percentChange(current.NonEssential, previous.NonEssential)
		if growth > nonEssentialSurgePercent {
			score += 35
			flags = append(flags, fmt.Sprintf("Non-essential spending surged %d%%", int(math.Round(growth))))
		}
	}

	if current.Income.IsPositive() && current.TotalExpense.Div(current.Income).GreaterThan(incomeSpendRatio) {
		score += 30
		pct := current.TotalExpense.Div(current.Income).Mul(hundred).InexactFloat64()
		flags = append(flags, fmt.Sprintf("Spending %d%% of income", int(math.Round(pct))))
	}

	if previous.TotalExpense.IsPositive() {
		growth := percentChange(current.TotalExpense, previous.TotalExpense)
		if growth > totalSpendGrowthPercent {
			score += 20
			flags = append(flags, fmt.Sprintf("Total spending increased %d%%", int(math.Round(growth))))
		}
	}

	if previous.Income.IsPositive() && previous.TotalExpense.IsPositive() {
		incomeChange := percentChange(current.Income, previous.Income)
		spendChange := percentChange(current.TotalExpense, previous.TotalExpense)
		if incomeChange < incomeDropPercent && spendChange > spendRisePercent {
			score += 25
			flags = append(flags, "Income decreased while spending increased")
		}
	}

	status, penalty := driftStatus(score)
	return domain.DriftReport{Status: status, PenaltyFactor: penalty, Flags: flags, Score: score}
}

// driftStatus maps a drift score to its status and penalty. A STABLE score
// still carries a 10% haircut while IMPROVING carries none.
func driftStatus(score int) (domain.DriftStatus, float64) {
	switch {
	case score >= deterioratingScore:
		return domain.DriftDeteriorating, 0.7
	case score >= stableScore:
		return domain.DriftStable, 0.9
	}
	return domain.DriftImproving, 1.0
}
