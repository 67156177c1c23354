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
	"github.com/go-playground/validator/v10"
)

type financialConfigService struct {
	BaseService
	configRepo portsrepo.FinancialConfigRepositoryFacade
	validate   *validator.Validate
	clock      func() time.Time
}

// NewFinancialConfigService creates a new onboarding service.
func NewFinancialConfigService(configRepo portsrepo.FinancialConfigRepositoryFacade) portssvc.FinancialConfigSvcFacade {
	v := validator.New()
	// Same tag gin binds with, so requests built outside HTTP get identical checks.
	v.SetTagName("binding")
	return &financialConfigService{
		configRepo: configRepo,
		validate:   v,
		clock:      time.Now,
	}
}

func (s *financialConfigService) GetConfig(ctx context.Context, userID string) (*domain.FinancialConfig, error) {
	cfg, err := s.configRepo.FindConfigByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewAppError(http.StatusNotFound, "complete onboarding first", apperrors.ErrConfigMissing)
		}
		return nil, storeError("failed to read financial config", err)
	}
	return cfg, nil
}

func (s *financialConfigService) ListConfiguredUsers(ctx context.Context) ([]string, error) {
	ids, err := s.configRepo.ListConfiguredUserIDs(ctx)
	if err != nil {
		return nil, storeError("failed to list configured users", err)
	}
	if ids == nil {
		return []string{}, nil
	}
	return ids, nil
}

func (s *financialConfigService) SaveConfig(ctx context.Context, userID string, req dto.FinancialConfigRequest) (*domain.FinancialConfig, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.NewAppError(http.StatusBadRequest, err.Error(), apperrors.ErrValidation)
	}

	now := s.clock()
	cfg := domain.FinancialConfig{
		UserID:                 userID,
		MonthlyIncome:          req.MonthlyIncome,
		FixedObligations:       make([]domain.FixedObligation, 0, len(req.FixedObligations)),
		EmergencyBufferPercent: domain.DefaultEmergencyBufferPercent,
		AuditFields:            domain.NewAuditFields(userID, now),
	}
	if req.EmergencyBufferPercent != nil {
		cfg.EmergencyBufferPercent = *req.EmergencyBufferPercent
	}
	for _, ob := range req.FixedObligations {
		cfg.FixedObligations = append(cfg.FixedObligations, domain.FixedObligation{
			Name:          strings.TrimSpace(ob.Name),
			Amount:        ob.Amount,
			DueDayOfMonth: ob.DueDayOfMonth,
		})
	}
	if err := cfg.Validate(); err != nil {
		return nil, apperrors.NewAppError(http.StatusBadRequest, err.Error(), apperrors.ErrValidation)
	}

	if err := s.configRepo.SaveConfig(ctx, cfg); err != nil {
		s.LogError(ctx, err, "Failed to save financial config", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to save financial config: %w", storeError("failed to save financial config", err))
	}
	s.LogInfo(ctx, "Financial config saved",
		slog.String("user_id", userID),
		slog.Int("obligations", len(cfg.FixedObligations)))
	return &cfg, nil
}
