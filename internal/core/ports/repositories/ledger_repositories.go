package repositories

import (
	"context"

	"github.com/SscSPs/money_coach_app/internal/core/domain"
)

// LedgerReader defines read operations over a user's transactions.
type LedgerReader interface {
	// FindTransactions returns every transaction of the user matching filter, oldest first.
	// A store failure is reported as apperrors.ErrDataUnavailable.
	FindTransactions(ctx context.Context, userID string, filter domain.LedgerFilter) ([]domain.Transaction, error)

	// ListTransactions returns a page of the user's transactions, newest first, using token-based pagination.
	// It returns the transactions, a token for the next page, and an error.
	ListTransactions(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)

	// FindTransactionByID returns one of the user's transactions, or apperrors.ErrNotFound.
	FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error)
}

// LedgerWriter defines write operations over the ledger.
// Update and delete only touch entries owned by the given user and report
// apperrors.ErrNotFound otherwise.
type LedgerWriter interface {
	AppendTransaction(ctx context.Context, txn domain.Transaction) error
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error
	DeleteTransaction(ctx context.Context, userID, transactionID string) error
}

// LedgerRepositoryFacade combines all ledger-related repository interfaces.
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}
