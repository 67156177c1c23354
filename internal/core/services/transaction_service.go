package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/money_coach_app/internal/apperrors"
	"github.com/SscSPs/money_coach_app/internal/core/domain"
	portsrepo "github.com/SscSPs/money_coach_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_coach_app/internal/core/ports/services"
	"github.com/SscSPs/money_coach_app/internal/dto"
	"github.com/SscSPs/money_coach_app/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type transactionService struct {
	BaseService
	ledgerRepo portsrepo.LedgerRepositoryFacade
	engineSvc  portssvc.SafetyEngineSvc
	clock      func() time.Time
	locks      *keyedMutex
}

// TransactionServiceOption is a function that configures a transactionService
type TransactionServiceOption func(*transactionService)

// WithClock sets the source of "now" used for default timestamps and kill-switch checks.
func WithClock(clock func() time.Time) TransactionServiceOption {
	return func(s *transactionService) {
		s.clock = clock
	}
}

// NewTransactionService creates a new transaction service that enforces the kill-switch on writes.
func NewTransactionService(ledgerRepo portsrepo.LedgerRepositoryFacade, engineSvc portssvc.SafetyEngineSvc, opts ...TransactionServiceOption) portssvc.TransactionSvcFacade {
	svc := &transactionService{
		ledgerRepo: ledgerRepo,
		engineSvc:  engineSvc,
		clock:      time.Now,
		locks:      newKeyedMutex(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

func (s *transactionService) RecordTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, *domain.KillSwitchDecision, error) {
	direction, err := domain.ParseDirection(req.Direction)
	if err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusBadRequest, err.Error(), apperrors.ErrValidation)
	}

	now := s.clock()
	ts := now
	if req.Timestamp != nil {
		ts = *req.Timestamp
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		Timestamp:     ts,
		Amount:        req.Amount,
		Direction:     direction,
		Category:      strings.TrimSpace(req.Category),
		Description:   strings.TrimSpace(req.Description),
		AuditFields:   domain.NewAuditFields(userID, now),
	}
	if err := txn.Validate(); err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusBadRequest, err.Error(), apperrors.ErrValidation)
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	var decision *domain.KillSwitchDecision
	if direction == domain.Expense {
		decision, err = s.checkSpending(ctx, txn, txn.Amount, now)
		if err != nil {
			return nil, decision, err
		}
	}

	if err := s.ledgerRepo.AppendTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to append transaction", slog.String("user_id", userID))
		return nil, nil, fmt.Errorf("failed to record transaction: %w", storeError("failed to append transaction", err))
	}

	s.LogInfo(ctx, "Transaction recorded",
		slog.String("user_id", userID),
		slog.String("transaction_id", txn.TransactionID),
		slog.String("direction", string(txn.Direction)))
	return &txn, decision, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, userID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, *domain.KillSwitchDecision, error) {
	unlock := s.locks.Lock(userID)
	defer unlock()

	existing, err := s.ledgerRepo.FindTransactionByID(ctx, userID, transactionID)
	if err != nil {
		return nil, nil, ledgerLookupError("failed to load transaction", err)
	}

	updated := *existing
	if req.Amount != nil {
		updated.Amount = *req.Amount
	}
	if req.Direction != nil {
		if updated.Direction, err = domain.ParseDirection(*req.Direction); err != nil {
			return nil, nil, apperrors.NewAppError(http.StatusBadRequest, err.Error(), apperrors.ErrValidation)
		}
	}
	if req.Category != nil {
		updated.Category = strings.TrimSpace(*req.Category)
	}
	if req.Description != nil {
		updated.Description = strings.TrimSpace(*req.Description)
	}
	if req.Timestamp != nil {
		updated.Timestamp = *req.Timestamp
	}
	now := s.clock()
	updated.Touch(userID, now)
	if err := updated.Validate(); err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusBadRequest, err.Error(), apperrors.ErrValidation)
	}

	var decision *domain.KillSwitchDecision
	if added := addedSpending(*existing, updated); added.IsPositive() {
		decision, err = s.checkSpending(ctx, updated, added, now)
		if err != nil {
			return nil, decision, err
		}
	}

	if err := s.ledgerRepo.UpdateTransaction(ctx, updated); err != nil {
		return nil, nil, ledgerLookupError("failed to update transaction", err)
	}

	s.LogInfo(ctx, "Transaction updated",
		slog.String("user_id", userID),
		slog.String("transaction_id", transactionID))
	return &updated, decision, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	unlock := s.locks.Lock(userID)
	defer unlock()

	if err := s.ledgerRepo.DeleteTransaction(ctx, userID, transactionID); err != nil {
		return ledgerLookupError("failed to delete transaction", err)
	}
	s.LogInfo(ctx, "Transaction deleted",
		slog.String("user_id", userID),
		slog.String("transaction_id", transactionID))
	return nil
}

// checkSpending runs amount of txn's spending through the kill-switch at now.
// A blocked expense returns the decision with ErrTransactionBlocked. Engine failures are
// logged and the write goes ahead unchecked with a nil decision.
func (s *transactionService) checkSpending(ctx context.Context, txn domain.Transaction, amount decimal.Decimal, now time.Time) (*domain.KillSwitchDecision, error) {
	decision, err := s.engineSvc.EvaluateTransaction(ctx, txn.UserID, domain.CandidateTransaction{
		Amount:      amount,
		Category:    txn.Category,
		Direction:   domain.Expense,
		Description: txn.Description,
	}, now)
	switch {
	case errors.Is(err, apperrors.ErrConfigMissing):
		s.LogInfo(ctx, "Writing expense without kill-switch check, user has not onboarded",
			slog.String("user_id", txn.UserID))
		return nil, nil
	case err != nil:
		s.LogError(ctx, err, "Kill-switch check failed, writing expense unchecked",
			slog.String("user_id", txn.UserID),
			slog.String("transaction_id", txn.TransactionID))
		return nil, nil
	case !decision.Allowed:
		return decision, apperrors.NewAppError(http.StatusForbidden, decision.Reason, apperrors.ErrTransactionBlocked)
	}
	return decision, nil
}

// addedSpending is how much more the corrected entry spends than the stored one.
// An income turned into an expense adds its whole amount.
func addedSpending(before, after domain.Transaction) decimal.Decimal {
	if after.Direction != domain.Expense {
		return decimal.Zero
	}
	spent := decimal.Zero
	if before.Direction == domain.Expense {
		spent = before.Amount
	}
	return after.Amount.Sub(spent)
}

// ledgerLookupError keeps not-found and validation outcomes and reports everything else as
// the store being unavailable.
func ledgerLookupError(msg string, err error) error {
	if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrValidation) {
		return err
	}
	return fmt.Errorf("%s: %w", msg, storeError(msg, err))
}

func (s *transactionService) ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	if params.NextToken != nil && *params.NextToken != "" {
		if _, _, err := pagination.DecodeToken(*params.NextToken); err != nil {
			return nil, apperrors.NewAppError(http.StatusBadRequest, "invalid nextToken", apperrors.ErrValidation)
		}
	} else {
		params.NextToken = nil
	}

	txns, next, err := s.ledgerRepo.ListTransactions(ctx, userID, pagination.ClampLimit(params.Limit), params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", storeError("failed to list transactions", err))
	}
	resp := dto.ToListTransactionsResponse(txns, next)
	return &resp, nil
}
