package dto

import (
	"time"

	"github.com/SscSPs/money_coach_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a transaction.
// Direction accepts INCOME/EXPENSE (any case) and the CREDIT/DEBIT spelling of bank imports.
type CreateTransactionRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Direction   string          `json:"direction" binding:"required"`
	Category    string          `json:"category" binding:"max=64"`
	Description string          `json:"description" binding:"max=512"`
	Timestamp   *time.Time      `json:"timestamp"` // Optional, defaults to now
}

// UpdateTransactionRequest defines the corrections allowed on a stored transaction.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateTransactionRequest struct {
	Amount      *decimal.Decimal `json:"amount"`
	Direction   *string          `json:"direction"`
	Category    *string          `json:"category" binding:"omitempty,max=64"`
	Description *string          `json:"description" binding:"omitempty,max=512"`
	Timestamp   *time.Time       `json:"timestamp"`
}

// TransactionResponse defines the data returned for a ledger entry.
type TransactionResponse struct {
	TransactionID string           `json:"transactionID"`
	Timestamp     time.Time        `json:"timestamp"`
	Amount        decimal.Decimal  `json:"amount"`
	Direction     domain.Direction `json:"direction"`
	Category      string           `json:"category"`
	Description   string           `json:"description"`
	CreatedAt     time.Time        `json:"createdAt"`
	CreatedBy     string           `json:"createdBy"`
	LastUpdatedAt time.Time        `json:"lastUpdatedAt"`
}

// RecordTransactionResponse is returned after a transaction has been recorded or corrected.
// KillSwitch is set when the kill-switch warned about the allowed spending.
type RecordTransactionResponse struct {
	Transaction TransactionResponse         `json:"transaction"`
	KillSwitch  *KillSwitchDecisionResponse `json:"killSwitch,omitempty"`
}

// ListTransactionsParams defines the query parameters for listing transactions.
type ListTransactionsParams struct {
	Limit     int     `form:"limit" binding:"omitempty,min=1,max=200"`
	NextToken *string `form:"nextToken"`
}

// ListTransactionsResponse is one page of the ledger, newest first.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		Timestamp:     t.Timestamp,
		Amount:        t.Amount,
		Direction:     t.Direction,
		Category:      t.Category,
		Description:   t.Description,
		CreatedAt:     t.CreatedAt,
		CreatedBy:     t.CreatedBy,
		LastUpdatedAt: t.LastUpdatedAt,
	}
}

// ToListTransactionsResponse converts a page of transactions to its DTO.
func ToListTransactionsResponse(txns []domain.Transaction, nextToken *string) ListTransactionsResponse {
	out := ListTransactionsResponse{Transactions: make([]TransactionResponse, len(txns)), NextToken: nextToken}
	for i := range txns {
		out.Transactions[i] = ToTransactionResponse(&txns[i])
	}
	return out
}
