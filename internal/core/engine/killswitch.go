package engine

import (
	"fmt"
	"math"

	"github.com/SscSPs/money_coach_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

const (
	redThreshold    = 75
	orangeThreshold = 50
	yellowThreshold = 25
)

var (
	recoveryDailyShare  = decimal.NewFromFloat(0.7)
	recoveryIncomeShare = decimal.NewFromFloat(0.5)
)

// KillSwitchLevelFor maps a risk score onto its level. Each threshold is inclusive.
func KillSwitchLevelFor(score int) domain.KillSwitchLevel {
	switch {
	case score >= redThreshold:
		return domain.LevelRed
	case score >= orangeThreshold:
		return domain.LevelOrange
	case score >= yellowThreshold:
		return domain.LevelYellow
	}
	return domain.LevelGreen
}

// DecisionInput is everything Decide needs to judge one candidate transaction.
// TodaySpending is the user's expense total so far today.
type DecisionInput struct {
	Candidate     domain.CandidateTransaction
	Result        domain.EngineResult
	RiskScore     int
	TodaySpending decimal.Decimal
	Policy        domain.CategoryPolicy
}

// Decide judges a candidate transaction against the kill-switch level.
// Income and essential expenses are always allowed.
func Decide(in DecisionInput) domain.KillSwitchDecision {
	level := KillSwitchLevelFor(in.RiskScore)
	c := in.Candidate

	if c.Direction == domain.Income {
		return allowed(level, "Income transactions are always allowed")
	}
	if in.Policy.IsEssential(c.Category) {
		return allowed(level, "Essential expenses are never blocked")
	}

	switch level {
	case domain.LevelGreen:
		return allowed(level, "Financial health is good")
	case domain.LevelYellow:
		return domain.KillSwitchDecision{
			Allowed:  true,
			Status:   domain.StatusWarning,
			Level:    level,
			Reason:   "Spending velocity is elevated. Consider reducing non-essential expenses.",
			Severity: domain.DecisionSeverityMedium,
		}
	case domain.LevelOrange:
		limit := in.Result.SafeToSpend.DailyAllowance
		today := in.TodaySpending
		attempted := today.Add(c.Amount)
		if attempted.GreaterThan(limit) {
			plan := SimulateRecovery(in.Result, in.RiskScore)
			return domain.KillSwitchDecision{
				Allowed:           false,
				Status:            domain.StatusBlocked,
				Level:             level,
				Reason:            fmt.Sprintf("Daily spending limit (%s) would be exceeded", formatMoney(limit)),
				Severity:          domain.DecisionSeverityHigh,
				CurrentDailySpend: &today,
				AttemptedTotal:    &attempted,
				DailyLimit:        &limit,
				Recovery:          &plan,
			}
		}
		return domain.KillSwitchDecision{
			Allowed:  true,
			Status:   domain.StatusWarning,
			Level:    level,
			Reason:   "Spending is high but within daily limit. Proceed with caution.",
			Severity: domain.DecisionSeverityMedium,
		}
	}

	plan := SimulateRecovery(in.Result, in.RiskScore)
	return domain.KillSwitchDecision{
		Allowed:  false,
		Status:   domain.StatusBlocked,
		Level:    level,
		Reason:   "Critical financial risk detected. Non-essential spending is blocked.",
		Severity: domain.DecisionSeverityCritical,
		Recovery: &plan,
	}
}

func allowed(level domain.KillSwitchLevel, reason string) domain.KillSwitchDecision {
	return domain.KillSwitchDecision{Allowed: true, Status: domain.StatusAllowed, Level: level, Reason: reason}
}

// SimulateRecovery lists the ways out of a blocked state, always in the same order.
// Pausing discretionary spending is the recommendation.
func SimulateRecovery(res domain.EngineResult, riskScore int) domain.RecoveryPlan {
	target := res.SafeToSpend.DailyAllowance.Mul(recoveryDailyShare).Round(0)
	reduceDays := ceilDays(15 - float64(redThreshold-riskScore)/5)
	pauseDays := ceilDays(10 - float64(redThreshold-riskScore)/10)
	income := res.EmergencyBuffer.Mul(recoveryIncomeShare).Round(0)

	scenarios := []domain.RecoveryScenario{
		{
			Action:           domain.ActionReduceSpending,
			Description:      "Reduce daily spending to " + formatMoney(target),
			Impact:           fmt.Sprintf("Unlock in %d days", reduceDays),
			DaysRequired:     reduceDays,
			TargetDailySpend: &target,
		},
		{
			Action:       domain.ActionPauseDiscretionary,
			Description:  "Pause all non-essential spending",
			Impact:       fmt.Sprintf("Unlock in %d days", pauseDays),
			DaysRequired: pauseDays,
		},
		{
			Action:             domain.ActionAddIncome,
			Description:        "Add income of " + formatMoney(income),
			Impact:             "Unlock immediately",
			UnlocksImmediately: true,
			AmountRequired:     &income,
		},
	}
	return domain.RecoveryPlan{Scenarios: scenarios, Recommendation: scenarios[1]}
}

func ceilDays(v float64) int {
	d := int(math.Ceil(v))
	if d < 0 {
		return 0
	}
	return d
}

// Status describes the kill-switch for dashboards.
func Status(level domain.KillSwitchLevel, policy domain.CategoryPolicy) domain.KillSwitchStatus {
	st := domain.KillSwitchStatus{Level: level, Active: level != domain.LevelGreen, BlockedCategories: []string{}}
	if level == domain.LevelOrange || level == domain.LevelRed {
		st.BlockedCategories = policy.DiscretionaryCategories()
	}
	return st
}
