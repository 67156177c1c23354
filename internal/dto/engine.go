package dto

import (
	"time"

	"github.com/SscSPs/money_coach_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// SafeToSpendResponse is the JSON view of an engine result.
// IncomeCoverageRatio is null when there are no obligations; DaysUntilExhaustion
// and ExhaustionDate are null when there is no recent spending.
type SafeToSpendResponse struct {
	AsOf                   time.Time       `json:"asOf"`
	CurrentBalance         decimal.Decimal `json:"currentBalance"`
	AverageMonthlyIncome   decimal.Decimal `json:"averageMonthlyIncome"`
	IncomeVolatility       float64         `json:"incomeVolatility"`
	IncomeActiveMonths     int             `json:"incomeActiveMonths"`
	IncomeSeverity         domain.Severity `json:"incomeSeverity"`
	IncomeCoverageRatio    *float64        `json:"incomeCoverageRatio"`
	CoverageSeverity       domain.Severity `json:"coverageSeverity"`
	TotalObligations       decimal.Decimal `json:"totalObligations"`
	UpcomingObligations    decimal.Decimal `json:"upcomingObligations"`
	EmergencyBuffer        decimal.Decimal `json:"emergencyBuffer"`
	DriftStatus            string          `json:"driftStatus"`
	DriftScore             int             `json:"driftScore"`
	PenaltyFactor          float64         `json:"penaltyFactor"`
	AvailablePool          decimal.Decimal `json:"availablePool"`
	RemainingSafeToSpend   decimal.Decimal `json:"remainingSafeToSpend"`
	DailyAllowance         decimal.Decimal `json:"dailyAllowance"`
	RemainingDays          int             `json:"remainingDays"`
	DaysUntilExhaustion    *int            `json:"daysUntilExhaustion"`
	ExhaustionDate         *string         `json:"exhaustionDate"`
	ExhaustionSeverity     domain.Severity `json:"exhaustionSeverity"`
	AvgDailySpending       decimal.Decimal `json:"avgDailySpending"`
	RequiredDailyReduction decimal.Decimal `json:"requiredDailyReduction"`
	CurrentDailySpend      decimal.Decimal `json:"currentDailySpend"`
	TotalSpentThisMonth    decimal.Decimal `json:"totalSpentThisMonth"`
	BreachFlags            []string        `json:"breachFlags"`
	Alerts                 []domain.Alert  `json:"alerts"`
	Advice                 []string        `json:"advice"`
}

// ToSafeToSpendResponse converts a domain.EngineResult to its DTO.
func ToSafeToSpendResponse(r *domain.EngineResult) SafeToSpendResponse {
	out := SafeToSpendResponse{
		AsOf:                   r.AsOf,
		CurrentBalance:         r.CurrentBalance,
		AverageMonthlyIncome:   r.Income.Average.Round(0),
		IncomeVolatility:       round2(r.Income.Volatility),
		IncomeActiveMonths:     r.Income.ActiveMonths,
		IncomeSeverity:         r.Income.Severity,
		CoverageSeverity:       r.Coverage.Severity,
		TotalObligations:       r.TotalObligations,
		UpcomingObligations:    r.UpcomingObligations,
		EmergencyBuffer:        r.EmergencyBuffer.Round(0),
		DriftStatus:            string(r.Drift.Status),
		DriftScore:             r.Drift.Score,
		PenaltyFactor:          r.Drift.PenaltyFactor,
		AvailablePool:          r.SafeToSpend.AvailablePool.Round(0),
		RemainingSafeToSpend:   r.SafeToSpend.RemainingSafeToSpend,
		DailyAllowance:         r.SafeToSpend.DailyAllowance,
		RemainingDays:          r.SafeToSpend.RemainingDays,
		ExhaustionSeverity:     r.Exhaustion.Severity,
		AvgDailySpending:       r.Exhaustion.AvgDailySpending,
		RequiredDailyReduction: r.Exhaustion.RequiredDailyReduction,
		CurrentDailySpend:      r.Velocity.CurrentDailySpend,
		TotalSpentThisMonth:    r.Velocity.TotalSpentThisMonth,
		BreachFlags:            nonNil(r.BreachFlags),
		Alerts:                 r.Alerts,
		Advice:                 nonNil(r.Advice),
	}
	if out.Alerts == nil {
		out.Alerts = []domain.Alert{}
	}
	if !r.Coverage.Unbounded {
		ratio := round2(r.Coverage.Ratio)
		out.IncomeCoverageRatio = &ratio
	}
	if !r.Exhaustion.Unbounded {
		days := r.Exhaustion.DaysUntilExhaustion
		out.DaysUntilExhaustion = &days
		if r.Exhaustion.ExhaustionDate != nil {
			d := r.Exhaustion.ExhaustionDate.Format(dateLayout)
			out.ExhaustionDate = &d
		}
	}
	return out
}

// RiskResponse is the JSON view of a risk report.
type RiskResponse struct {
	RiskScore   int                    `json:"riskScore"`
	Level       domain.KillSwitchLevel `json:"level"`
	Signals     domain.RiskSignals     `json:"signals"`
	Explanation []string               `json:"explanation"`
}

// ToRiskResponse converts a domain.RiskReport and its level to the DTO.
func ToRiskResponse(r *domain.RiskReport, level domain.KillSwitchLevel) RiskResponse {
	return RiskResponse{RiskScore: r.Score, Level: level, Signals: r.Signals, Explanation: nonNil(r.Explanation)}
}

// KillSwitchStatusResponse is the dashboard view of the kill-switch.
type KillSwitchStatusResponse struct {
	Level             domain.KillSwitchLevel `json:"level"`
	Active            bool                   `json:"active"`
	BlockedCategories []string               `json:"blockedCategories"`
	RiskScore         int                    `json:"riskScore"`
	Explanation       []string               `json:"explanation"`
}

// ToKillSwitchStatusResponse converts a status and the risk behind it to the DTO.
func ToKillSwitchStatusResponse(st *domain.KillSwitchStatus, risk *domain.RiskReport) KillSwitchStatusResponse {
	return KillSwitchStatusResponse{
		Level:             st.Level,
		Active:            st.Active,
		BlockedCategories: nonNil(st.BlockedCategories),
		RiskScore:         risk.Score,
		Explanation:       nonNil(risk.Explanation),
	}
}

// ValidateTransactionRequest is a candidate transaction to check against the kill-switch.
type ValidateTransactionRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category" binding:"max=64"`
	Direction   string          `json:"direction" binding:"required"`
	Description string          `json:"description" binding:"max=512"`
}

// RecoveryScenarioResponse is one way out of a blocked state.
type RecoveryScenarioResponse struct {
	Action             domain.RecoveryAction `json:"action"`
	Description        string                `json:"description"`
	Impact             string                `json:"impact"`
	DaysRequired       int                   `json:"daysRequired"`
	UnlocksImmediately bool                  `json:"unlocksImmediately"`
	TargetDailySpend   *decimal.Decimal      `json:"targetDailySpend,omitempty"`
	AmountRequired     *decimal.Decimal      `json:"amountRequired,omitempty"`
}

// RecoveryPlanResponse lists the scenarios and the recommended one.
type RecoveryPlanResponse struct {
	Scenarios      []RecoveryScenarioResponse `json:"scenarios"`
	Recommendation RecoveryScenarioResponse   `json:"recommendation"`
}

// KillSwitchDecisionResponse is the verdict on a candidate transaction.
type KillSwitchDecisionResponse struct {
	Allowed           bool                   `json:"allowed"`
	Status            domain.DecisionStatus  `json:"status"`
	Level             domain.KillSwitchLevel `json:"level"`
	Reason            string                 `json:"reason"`
	Severity          string                 `json:"severity,omitempty"`
	CurrentDailySpend *decimal.Decimal       `json:"currentDailySpend,omitempty"`
	AttemptedTotal    *decimal.Decimal       `json:"attemptedTotal,omitempty"`
	DailyLimit        *decimal.Decimal       `json:"dailyLimit,omitempty"`
	Recovery          *RecoveryPlanResponse  `json:"recovery,omitempty"`
}

// SimulateRecoveryResponse is returned by the recovery simulator.
type SimulateRecoveryResponse struct {
	RiskScore int                    `json:"riskScore"`
	Level     domain.KillSwitchLevel `json:"level"`
	Recovery  RecoveryPlanResponse   `json:"recovery"`
}

func toRecoveryScenarioResponse(s domain.RecoveryScenario) RecoveryScenarioResponse {
	return RecoveryScenarioResponse{
		Action:             s.Action,
		Description:        s.Description,
		Impact:             s.Impact,
		DaysRequired:       s.DaysRequired,
		UnlocksImmediately: s.UnlocksImmediately,
		TargetDailySpend:   s.TargetDailySpend,
		AmountRequired:     s.AmountRequired,
	}
}

// ToRecoveryPlanResponse converts a domain.RecoveryPlan to its DTO.
func ToRecoveryPlanResponse(p *domain.RecoveryPlan) RecoveryPlanResponse {
	out := RecoveryPlanResponse{
		Scenarios:      make([]RecoveryScenarioResponse, len(p.Scenarios)),
		Recommendation: toRecoveryScenarioResponse(p.Recommendation),
	}
	for i, s := range p.Scenarios {
		out.Scenarios[i] = toRecoveryScenarioResponse(s)
	}
	return out
}

// ToKillSwitchDecisionResponse converts a domain.KillSwitchDecision to its DTO.
func ToKillSwitchDecisionResponse(d *domain.KillSwitchDecision) KillSwitchDecisionResponse {
	out := KillSwitchDecisionResponse{
		Allowed:           d.Allowed,
		Status:            d.Status,
		Level:             d.Level,
		Reason:            d.Reason,
		Severity:          string(d.Severity),
		CurrentDailySpend: d.CurrentDailySpend,
		AttemptedTotal:    d.AttemptedTotal,
		DailyLimit:        d.DailyLimit,
	}
	if d.Recovery != nil {
		plan := ToRecoveryPlanResponse(d.Recovery)
		out.Recovery = &plan
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
