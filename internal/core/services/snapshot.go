package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/SscSPs/money_coach_app/internal/apperrors"
	"github.com/SscSPs/money_coach_app/internal/core/domain"
	"github.com/SscSPs/money_coach_app/internal/core/engine"
	portsrepo "github.com/SscSPs/money_coach_app/internal/core/ports/repositories"
)

// snapshotLoader reads the config and ledger the engine runs against.
type snapshotLoader struct {
	ledgerRepo portsrepo.LedgerReader
	configRepo portsrepo.FinancialConfigReader
	policy     domain.CategoryPolicy
}

func (l snapshotLoader) loadConfig(ctx context.Context, userID string) (domain.FinancialConfig, error) {
	cfg, err := l.configRepo.FindConfigByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.FinancialConfig{}, apperrors.NewAppError(http.StatusNotFound, "complete onboarding first", apperrors.ErrConfigMissing)
		}
		return domain.FinancialConfig{}, storeError("failed to read financial config", err)
	}
	if err := cfg.Validate(); err != nil {
		return domain.FinancialConfig{}, apperrors.NewUnavailableError("stored financial config is invalid", err)
	}
	return *cfg, nil
}

// loadLedger fetches every transaction up to asOf inclusive.
func (l snapshotLoader) loadLedger(ctx context.Context, userID string, asOf time.Time) (*engine.Ledger, error) {
	txns, err := l.ledgerRepo.FindTransactions(ctx, userID, domain.LedgerFilter{To: &asOf})
	if err != nil {
		return nil, storeError("failed to read ledger", err)
	}
	return engine.NewLedger(txns, l.policy), nil
}

func storeError(msg string, err error) error {
	if errors.Is(err, apperrors.ErrDataUnavailable) {
		return err
	}
	return apperrors.NewUnavailableError(msg, err)
}
