package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Direction indicates whether money entered or left the user's wallet.
type Direction string

const (
	Income  Direction = "INCOME"
	Expense Direction = "EXPENSE"
)

// Valid reports whether d is one of the known directions.
func (d Direction) Valid() bool {
	return d == Income || d == Expense
}

// ParseDirection accepts the canonical names plus the lowercase "income"/"expense"
// and the CREDIT/DEBIT spelling used by bank imports.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "INCOME", "CREDIT":
		return Income, nil
	case "EXPENSE", "DEBIT":
		return Expense, nil
	}
	return "", fmt.Errorf("unknown transaction direction %q", s)
}

// Classification is the engine's view of a transaction: income, or an expense that is
// either essential or non-essential. Income never sits on the essential axis.
type Classification string

const (
	ClassIncome       Classification = "INCOME"
	ClassEssential    Classification = "ESSENTIAL"
	ClassNonEssential Classification = "NON_ESSENTIAL"
)

// Transaction is a single ledger entry. Amount is always the unsigned magnitude;
// the sign is carried by Direction.
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	UserID        string          `json:"userID"`
	Timestamp     time.Time       `json:"timestamp"`
	Amount        decimal.Decimal `json:"amount"`
	Direction     Direction       `json:"direction"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	AuditFields
}

// Signed returns +Amount for income and -Amount for expenses.
func (t Transaction) Signed() decimal.Decimal {
	if t.Direction == Income {
		return t.Amount
	}
	return t.Amount.Neg()
}

// Validate checks the ledger invariants for a transaction about to be stored.
func (t Transaction) Validate() error {
	if t.UserID == "" {
		return fmt.Errorf("user ID is required")
	}
	if !t.Direction.Valid() {
		return fmt.Errorf("invalid direction %q", t.Direction)
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("amount must be a positive magnitude, got %s", t.Amount.String())
	}
	if t.Timestamp.IsZero() {
		return fmt.Errorf("timestamp is required")
	}
	return nil
}

// LedgerFilter narrows a ledger read. Nil bounds are open; From is inclusive, To is inclusive.
type LedgerFilter struct {
	From      *time.Time
	To        *time.Time
	Direction *Direction
}

// Matches reports whether t satisfies the filter.
func (f LedgerFilter) Matches(t Transaction) bool {
	if f.From != nil && t.Timestamp.Before(*f.From) {
		return false
	}
	if f.To != nil && t.Timestamp.After(*f.To) {
		return false
	}
	if f.Direction != nil && t.Direction != *f.Direction {
		return false
	}
	return true
}
