package services

import (
	"context"
	"time"

	"github.com/SscSPs/money_coach_app/internal/core/domain"
	"github.com/SscSPs/money_coach_app/internal/core/engine"
	portsrepo "github.com/SscSPs/money_coach_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_coach_app/internal/core/ports/services"
)

type insightsService struct {
	BaseService
	snapshotLoader
	settings engine.Settings
}

// InsightsServiceOption is a function that configures an insightsService
type InsightsServiceOption func(*insightsService)

// WithInsightsSettings overrides the default engine tunables.
func WithInsightsSettings(s engine.Settings) InsightsServiceOption {
	return func(svc *insightsService) {
		svc.settings = s.Normalize()
	}
}

// WithInsightsCategoryPolicy sets the category policy.
func WithInsightsCategoryPolicy(p domain.CategoryPolicy) InsightsServiceOption {
	return func(svc *insightsService) {
		svc.policy = p
	}
}

// NewInsightsService creates the reporting service.
func NewInsightsService(ledgerRepo portsrepo.LedgerReader, configRepo portsrepo.FinancialConfigReader, opts ...InsightsServiceOption) portssvc.InsightsSvc {
	svc := &insightsService{
		snapshotLoader: snapshotLoader{
			ledgerRepo: ledgerRepo,
			configRepo: configRepo,
			policy:     domain.DefaultCategoryPolicy(),
		},
		settings: engine.DefaultSettings(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

func (s *insightsService) Trends(ctx context.Context, userID string, asOf time.Time) (*domain.TrendsReport, error) {
	l, err := s.loadLedger(ctx, userID, asOf)
	if err != nil {
		return nil, err
	}
	rep := engine.Trends(l, asOf)
	return &rep, nil
}

func (s *insightsService) IncomeExpense(ctx context.Context, userID string, timeframe domain.AnalyticsTimeframe, asOf time.Time) (*domain.IncomeExpenseReport, error) {
	l, err := s.loadLedger(ctx, userID, asOf)
	if err != nil {
		return nil, err
	}
	rep := engine.Analytics(l, asOf, timeframe)
	return &rep, nil
}

func (s *insightsService) HealthSummary(ctx context.Context, userID string, asOf time.Time) (*domain.HealthSummary, error) {
	cfg, err := s.loadConfig(ctx, userID)
	if err != nil {
		return nil, err
	}
	l, err := s.loadLedger(ctx, userID, asOf)
	if err != nil {
		return nil, err
	}
	res := engine.Compute(cfg, l, asOf, s.settings)
	risk := engine.ScoreRisk(l, res, s.settings)
	h := engine.Health(cfg, l, res, risk, s.settings)
	return &h, nil
}
