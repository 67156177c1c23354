package services

import (
	"context"

	"github.com/SscSPs/money_coach_app/internal/core/domain"
	"github.com/SscSPs/money_coach_app/internal/dto"
)

// FinancialConfigReaderSvc defines read operations for onboarding data.
type FinancialConfigReaderSvc interface {
	// GetConfig fails with apperrors.ErrConfigMissing when the user has not onboarded.
	GetConfig(ctx context.Context, userID string) (*domain.FinancialConfig, error)

	// ListConfiguredUsers returns every onboarded user ID.
	ListConfiguredUsers(ctx context.Context) ([]string, error)
}

// FinancialConfigWriterSvc defines write operations for onboarding data.
type FinancialConfigWriterSvc interface {
	SaveConfig(ctx context.Context, userID string, req dto.FinancialConfigRequest) (*domain.FinancialConfig, error)
}

// FinancialConfigSvcFacade combines the config reader and writer.
type FinancialConfigSvcFacade interface {
	FinancialConfigReaderSvc
	FinancialConfigWriterSvc
}
