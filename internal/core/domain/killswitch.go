package domain

import "github.com/shopspring/decimal"

// KillSwitchLevel is the coarse risk tier gating discretionary spending.
type KillSwitchLevel string

const (
	LevelGreen  KillSwitchLevel = "GREEN"
	LevelYellow KillSwitchLevel = "YELLOW"
	LevelOrange KillSwitchLevel = "ORANGE"
	LevelRed    KillSwitchLevel = "RED"
)

// DecisionStatus is the outcome for a candidate transaction.
type DecisionStatus string

const (
	StatusAllowed DecisionStatus = "ALLOWED"
	StatusWarning DecisionStatus = "WARNING"
	StatusBlocked DecisionStatus = "BLOCKED"
)

// DecisionSeverity grades warnings and blocks. The zero value means no severity.
type DecisionSeverity string

const (
	DecisionSeverityMedium   DecisionSeverity = "MEDIUM"
	DecisionSeverityHigh     DecisionSeverity = "HIGH"
	DecisionSeverityCritical DecisionSeverity = "CRITICAL"
)

// CandidateTransaction is a transaction the user is about to record.
type CandidateTransaction struct {
	Amount      decimal.Decimal
	Category    string
	Direction   Direction
	Description string
}

// RecoveryAction names a recovery scenario.
type RecoveryAction string

const (
	ActionReduceSpending     RecoveryAction = "REDUCE_SPENDING"
	ActionPauseDiscretionary RecoveryAction = "PAUSE_DISCRETIONARY"
	ActionAddIncome          RecoveryAction = "ADD_INCOME"
)

// RecoveryScenario is one way out of a blocked state.
type RecoveryScenario struct {
	Action             RecoveryAction
	Description        string
	Impact             string
	DaysRequired       int
	UnlocksImmediately bool
	TargetDailySpend   *decimal.Decimal
	AmountRequired     *decimal.Decimal
}

// RecoveryPlan lists the scenarios in fixed order plus the recommended one.
type RecoveryPlan struct {
	Scenarios      []RecoveryScenario
	Recommendation RecoveryScenario
}

// KillSwitchDecision is the verdict for one candidate transaction. It is never stored.
type KillSwitchDecision struct {
	Allowed  bool
	Status   DecisionStatus
	Level    KillSwitchLevel
	Reason   string
	Severity DecisionSeverity

	// Set only for ORANGE-level daily limit checks.
	CurrentDailySpend *decimal.Decimal
	AttemptedTotal    *decimal.Decimal
	DailyLimit        *decimal.Decimal

	Recovery *RecoveryPlan
}

// KillSwitchStatus is the dashboard view of the kill-switch.
type KillSwitchStatus struct {
	Level             KillSwitchLevel
	Active            bool
	BlockedCategories []string
}
