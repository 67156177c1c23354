// Package memory keeps the ledger and configs in process memory.
// It backs the offline coachctl runner and tests; nothing survives a restart.
package memory

import (
	"context"
	"net/http"
	"sort"
	"sync"

	"github.com/SscSPs/money_coach_app/internal/apperrors"
	"github.com/SscSPs/money_coach_app/internal/core/domain"
	portsrepo "github.com/SscSPs/money_coach_app/internal/core/ports/repositories"
	"github.com/SscSPs/money_coach_app/internal/utils/pagination"
)

// LedgerRepository stores transactions per user in timestamp order.
type LedgerRepository struct {
	mu     sync.RWMutex
	byUser map[string][]domain.Transaction
	ids    map[string]struct{}
}

// NewLedgerRepository creates an empty ledger.
func NewLedgerRepository() *LedgerRepository {
	return &LedgerRepository{
		byUser: make(map[string][]domain.Transaction),
		ids:    make(map[string]struct{}),
	}
}

var _ portsrepo.LedgerRepositoryFacade = (*LedgerRepository)(nil)

// AppendTransaction adds a transaction. IDs are unique across users.
func (r *LedgerRepository) AppendTransaction(_ context.Context, txn domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, dup := r.ids[txn.TransactionID]; dup {
		return apperrors.NewAppError(http.StatusConflict, "transaction "+txn.TransactionID+" already exists", apperrors.ErrDuplicate)
	}
	r.ids[txn.TransactionID] = struct{}{}

	txns := append(r.byUser[txn.UserID], txn)
	sort.SliceStable(txns, func(i, j int) bool { return ascending(txns[i], txns[j]) })
	r.byUser[txn.UserID] = txns
	return nil
}

// UpdateTransaction replaces a stored entry of txn.UserID, keeping the ledger ordered.
func (r *LedgerRepository) UpdateTransaction(_ context.Context, txn domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	txns := r.byUser[txn.UserID]
	i := indexOf(txns, txn.TransactionID)
	if i < 0 {
		return apperrors.NewNotFoundError("transaction " + txn.TransactionID + " not found for update")
	}
	txns[i] = txn
	sort.SliceStable(txns, func(i, j int) bool { return ascending(txns[i], txns[j]) })
	return nil
}

// DeleteTransaction removes one of the user's entries.
func (r *LedgerRepository) DeleteTransaction(_ context.Context, userID, transactionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	txns := r.byUser[userID]
	i := indexOf(txns, transactionID)
	if i < 0 {
		return apperrors.NewNotFoundError("transaction " + transactionID + " not found")
	}
	r.byUser[userID] = append(txns[:i], txns[i+1:]...)
	delete(r.ids, transactionID)
	return nil
}

// FindTransactionByID returns a copy of one of the user's entries.
func (r *LedgerRepository) FindTransactionByID(_ context.Context, userID, transactionID string) (*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	txns := r.byUser[userID]
	i := indexOf(txns, transactionID)
	if i < 0 {
		return nil, apperrors.NewNotFoundError("transaction " + transactionID + " not found")
	}
	t := txns[i]
	return &t, nil
}

// FindTransactions returns the user's transactions matching filter, oldest first.
func (r *LedgerRepository) FindTransactions(_ context.Context, userID string, filter domain.LedgerFilter) ([]domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []domain.Transaction{}
	for _, t := range r.byUser[userID] {
		if filter.Matches(t) {
			out = append(out, t)
		}
	}
	return out, nil
}

// ListTransactions pages through the user's transactions newest first with the same cursor
// format as the database backends.
func (r *LedgerRepository) ListTransactions(_ context.Context, userID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	limit = pagination.ClampLimit(limit)

	r.mu.RLock()
	newestFirst := append([]domain.Transaction(nil), r.byUser[userID]...)
	r.mu.RUnlock()
	sort.SliceStable(newestFirst, func(i, j int) bool { return descendingByCursor(newestFirst[i], newestFirst[j]) })

	start := 0
	if nextToken != nil && *nextToken != "" {
		lastDate, lastID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(http.StatusBadRequest, "invalid nextToken", apperrors.ErrValidation)
		}
		start = len(newestFirst)
		for i, t := range newestFirst {
			if t.Timestamp.Before(lastDate) || (t.Timestamp.Equal(lastDate) && t.TransactionID < lastID) {
				start = i
				break
			}
		}
	}

	page := newestFirst[start:]
	var next *string
	if len(page) > limit {
		page = page[:limit]
		last := page[limit-1]
		token := pagination.EncodeToken(last.Timestamp, last.TransactionID)
		next = &token
	}
	return page, next, nil
}

func indexOf(txns []domain.Transaction, transactionID string) int {
	for i := range txns {
		if txns[i].TransactionID == transactionID {
			return i
		}
	}
	return -1
}

func ascending(a, b domain.Transaction) bool {
	if !a.Timestamp.Equal(b.Timestamp) {
		return a.Timestamp.Before(b.Timestamp)
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.TransactionID < b.TransactionID
}

func descendingByCursor(a, b domain.Transaction) bool {
	if !a.Timestamp.Equal(b.Timestamp) {
		return a.Timestamp.After(b.Timestamp)
	}
	return a.TransactionID > b.TransactionID
}
