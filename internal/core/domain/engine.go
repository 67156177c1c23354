package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Severity grades income, coverage and exhaustion findings.
type Severity string

const (
	SeveritySafe     Severity = "SAFE"
	SeverityCaution  Severity = "CAUTION"
	SeverityWarning  Severity = "WARNING"
	SeverityCritical Severity = "CRITICAL"
)

// Alert is a user-facing finding attached to an EngineResult.
type Alert struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// IncomeStats summarises income over the lookback window.
// Volatility is the population standard deviation of monthly totals as a percentage of the mean.
type IncomeStats struct {
	Average      decimal.Decimal
	Volatility   float64
	ActiveMonths int
	Severity     Severity
	Alert        string
}

// IncomeCoverage is average income divided by total fixed obligations.
// Unbounded is set when there are no obligations to cover; Ratio is then meaningless.
type IncomeCoverage struct {
	Ratio     float64
	Unbounded bool
	Severity  Severity
	Alert     string
}

// DriftStatus describes the month-over-month direction of spending behaviour.
type DriftStatus string

const (
	DriftStable        DriftStatus = "STABLE"
	DriftDeteriorating DriftStatus = "DETERIORATING"
	DriftImproving     DriftStatus = "IMPROVING"
)

// DriftReport is the behavioural drift verdict and the haircut applied to the spendable pool.
type DriftReport struct {
	Status        DriftStatus
	PenaltyFactor float64
	Flags         []string
	Score         int
}

// SafeToSpend is the bounded allowance for the rest of the calendar month.
type SafeToSpend struct {
	AvailablePool        decimal.Decimal
	AdjustedPool         decimal.Decimal
	RemainingSafeToSpend decimal.Decimal
	DailyAllowance       decimal.Decimal
	RemainingDays        int
}

// ExhaustionForecast predicts how long the safe pool lasts at the trailing spend rate.
// Unbounded marks the "never" case (no recent spending); DaysUntilExhaustion is then 0
// and ExhaustionDate is nil.
type ExhaustionForecast struct {
	DaysUntilExhaustion    int
	Unbounded              bool
	ExhaustionDate         *time.Time
	AvgDailySpending       decimal.Decimal
	RequiredDailyReduction decimal.Decimal
	Severity               Severity
	Alert                  string
}

// SpendingVelocity is the month-to-date average daily spend.
type SpendingVelocity struct {
	CurrentDailySpend   decimal.Decimal
	TotalSpentThisMonth decimal.Decimal
	DaysElapsed         int
}

// EngineResult is the full safe-to-spend computation for one user at one instant.
// It is recomputed per request and never treated as a source of truth.
type EngineResult struct {
	UserID              string
	AsOf                time.Time
	CurrentBalance      decimal.Decimal
	Income              IncomeStats
	Coverage            IncomeCoverage
	TotalObligations    decimal.Decimal
	UpcomingObligations decimal.Decimal
	EmergencyBuffer     decimal.Decimal
	Drift               DriftReport
	SafeToSpend         SafeToSpend
	Exhaustion          ExhaustionForecast
	Velocity            SpendingVelocity
	BreachFlags         []string
	Alerts              []Alert
	Advice              []string
}

// RiskSignals are the raw counts behind a risk score.
type RiskSignals struct {
	VelocityBreaches     int     `json:"velocityBreaches"`
	CategoryWarnings     int     `json:"categoryWarnings"`
	BufferBreaches       int     `json:"bufferBreaches"`
	TrendPenalty         float64 `json:"trendPenalty"`
	RepeatedOverspending int     `json:"repeatedOverspending"`
}

// RiskReport is the 0-100 risk score with its signals and explanations.
type RiskReport struct {
	Score       int
	Signals     RiskSignals
	Explanation []string
}
