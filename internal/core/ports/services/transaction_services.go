package services

import (
	"context"

	"github.com/SscSPs/money_coach_app/internal/core/domain"
	"github.com/SscSPs/money_coach_app/internal/dto"
)

// TransactionReaderSvc defines read operations for ledger entries.
type TransactionReaderSvc interface {
	ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
}

// TransactionWriterSvc defines write operations for ledger entries.
type TransactionWriterSvc interface {
	// RecordTransaction validates an expense against the kill-switch and appends it.
	// A blocked expense fails with apperrors.ErrTransactionBlocked and returns the decision.
	// The returned decision is nil when no check ran.
	RecordTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, *domain.KillSwitchDecision, error)

	// UpdateTransaction corrects a stored entry. When the change adds spending, only the
	// added amount goes through the kill-switch, with the same outcomes as RecordTransaction.
	UpdateTransaction(ctx context.Context, userID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, *domain.KillSwitchDecision, error)

	// DeleteTransaction removes one of the user's entries. Deleting never needs a kill-switch check.
	DeleteTransaction(ctx context.Context, userID, transactionID string) error
}

// TransactionSvcFacade combines all transaction-related service interfaces.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
