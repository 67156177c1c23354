package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultEmergencyBufferPercent is applied when onboarding does not specify a buffer.
const DefaultEmergencyBufferPercent = 15

// FixedObligation is a recurring monthly commitment such as rent or an EMI.
type FixedObligation struct {
	Name          string          `json:"name"`
	Amount        decimal.Decimal `json:"amount"`
	DueDayOfMonth int             `json:"dueDayOfMonth"`
}

// IsLoan reports whether the obligation looks like a loan repayment.
func (o FixedObligation) IsLoan() bool {
	return strings.Contains(o.Name, "Loan")
}

// FinancialConfig is the per-user declaration the engine runs against.
type FinancialConfig struct {
	UserID                 string            `json:"userID"`
	MonthlyIncome          decimal.Decimal   `json:"monthlyIncome"`
	FixedObligations       []FixedObligation `json:"fixedObligations"`
	EmergencyBufferPercent float64           `json:"emergencyBufferPercent"`
	AuditFields
}

// Validate checks the config invariants. It is called once at the boundary where configs
// enter the system (onboarding, store reads), never inside the engine.
func (c FinancialConfig) Validate() error {
	if c.UserID == "" {
		return fmt.Errorf("user ID is required")
	}
	if c.MonthlyIncome.IsNegative() {
		return fmt.Errorf("monthly income cannot be negative")
	}
	if c.EmergencyBufferPercent < 0 || c.EmergencyBufferPercent > 100 {
		return fmt.Errorf("emergency buffer percent must be within [0,100], got %v", c.EmergencyBufferPercent)
	}
	for i, ob := range c.FixedObligations {
		if strings.TrimSpace(ob.Name) == "" {
			return fmt.Errorf("obligation %d: name is required", i)
		}
		if !ob.Amount.IsPositive() {
			return fmt.Errorf("obligation %q: amount must be positive", ob.Name)
		}
		if ob.DueDayOfMonth < 1 || ob.DueDayOfMonth > 31 {
			return fmt.Errorf("obligation %q: due day must be within [1,31], got %d", ob.Name, ob.DueDayOfMonth)
		}
	}
	return nil
}
