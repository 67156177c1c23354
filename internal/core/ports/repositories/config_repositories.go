package repositories

import (
	"context"

	"github.com/SscSPs/money_coach_app/internal/core/domain"
)

// FinancialConfigReader defines read operations for per-user financial configs.
type FinancialConfigReader interface {
	// FindConfigByUserID returns apperrors.ErrNotFound when the user has not onboarded.
	FindConfigByUserID(ctx context.Context, userID string) (*domain.FinancialConfig, error)

	// ListConfiguredUserIDs returns every user with a stored config.
	ListConfiguredUserIDs(ctx context.Context) ([]string, error)
}

// FinancialConfigWriter defines write operations for per-user financial configs.
type FinancialConfigWriter interface {
	// SaveConfig inserts or replaces the user's config.
	SaveConfig(ctx context.Context, cfg domain.FinancialConfig) error
}

// FinancialConfigRepositoryFacade combines the config reader and writer.
type FinancialConfigRepositoryFacade interface {
	FinancialConfigReader
	FinancialConfigWriter
}
