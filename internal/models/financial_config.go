package models

import "github.com/shopspring/decimal"

// FixedObligation is the stored form of a recurring monthly commitment.
type FixedObligation struct {
	Name          string          `json:"name"`
	Amount        decimal.Decimal `json:"amount"`
	DueDayOfMonth int             `json:"dueDate"`
}

// FinancialConfig is the stored per-user onboarding declaration.
// Postgres keeps FixedObligations as a JSONB column.
type FinancialConfig struct {
	UserID                 string            `json:"userId"`
	MonthlyIncome          decimal.Decimal   `json:"monthlyIncome"`
	FixedObligations       []FixedObligation `json:"fixedObligations"`
	EmergencyBufferPercent float64           `json:"emergencyBufferPercent"`
	AuditFields
}
