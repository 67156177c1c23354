package services

import (
	"time"

	portsrepo "github.com/SscSPs/money_coach_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_coach_app/internal/core/ports/services"
	"github.com/SscSPs/money_coach_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	policy := cfg.CategoryPolicy()
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}

	container := &portssvc.ServiceContainer{}

	container.Engine = NewEngineService(
		repos.LedgerRepo,
		repos.ConfigRepo,
		WithEngineSettings(cfg.Engine),
		WithCategoryPolicy(policy),
	)
	container.Transaction = NewTransactionService(
		repos.LedgerRepo,
		container.Engine,
		WithClock(func() time.Time { return time.Now().In(loc) }),
	)
	container.Config = NewFinancialConfigService(repos.ConfigRepo)
	container.Insights = NewInsightsService(
		repos.LedgerRepo,
		repos.ConfigRepo,
		WithInsightsSettings(cfg.Engine),
		WithInsightsCategoryPolicy(policy),
	)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.SafetyEngineSvc          = (*engineService)(nil)
	_ portssvc.TransactionSvcFacade     = (*transactionService)(nil)
	_ portssvc.FinancialConfigSvcFacade = (*financialConfigService)(nil)
	_ portssvc.InsightsSvc              = (*insightsService)(nil)
)
