package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/money_coach_app/internal/core/domain"
	portssvc "github.com/SscSPs/money_coach_app/internal/core/ports/services"
	"github.com/SscSPs/money_coach_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock SafetyEngineSvc ---
type MockEngineService struct {
	mock.Mock
}

func (m *MockEngineService) ComputeSafeToSpend(ctx context.Context, userID string, asOf time.Time) (*domain.EngineResult, error) {
	args := m.Called(ctx, userID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EngineResult), args.Error(1)
}

func (m *MockEngineService) ComputeRiskScore(ctx context.Context, userID string, result *domain.EngineResult) (*domain.RiskReport, error) {
	args := m.Called(ctx, userID, result)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RiskReport), args.Error(1)
}

func (m *MockEngineService) GetKillSwitchLevel(riskScore int) domain.KillSwitchLevel {
	args := m.Called(riskScore)
	return args.Get(0).(domain.KillSwitchLevel)
}

func (m *MockEngineService) ValidateTransaction(ctx context.Context, userID string, candidate domain.CandidateTransaction, result *domain.EngineResult, riskScore int) (*domain.KillSwitchDecision, error) {
	args := m.Called(ctx, userID, candidate, result, riskScore)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.KillSwitchDecision), args.Error(1)
}

func (m *MockEngineService) EvaluateTransaction(ctx context.Context, userID string, candidate domain.CandidateTransaction, asOf time.Time) (*domain.KillSwitchDecision, error) {
	args := m.Called(ctx, userID, candidate, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.KillSwitchDecision), args.Error(1)
}

func (m *MockEngineService) KillSwitchStatus(ctx context.Context, userID string, asOf time.Time) (*domain.KillSwitchStatus, *domain.RiskReport, error) {
	args := m.Called(ctx, userID, asOf)
	var st *domain.KillSwitchStatus
	if args.Get(0) != nil {
		st = args.Get(0).(*domain.KillSwitchStatus)
	}
	var risk *domain.RiskReport
	if args.Get(1) != nil {
		risk = args.Get(1).(*domain.RiskReport)
	}
	return st, risk, args.Error(2)
}

func (m *MockEngineService) SimulateRecovery(ctx context.Context, userID string, asOf time.Time) (*domain.RecoveryPlan, *domain.RiskReport, error) {
	args := m.Called(ctx, userID, asOf)
	var plan *domain.RecoveryPlan
	if args.Get(0) != nil {
		plan = args.Get(0).(*domain.RecoveryPlan)
	}
	var risk *domain.RiskReport
	if args.Get(1) != nil {
		risk = args.Get(1).(*domain.RiskReport)
	}
	return plan, risk, args.Error(2)
}

// Ensure mock implements the interface
var _ portssvc.SafetyEngineSvc = (*MockEngineService)(nil)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListTransactionsResponse), args.Error(1)
}

func (m *MockTransactionService) RecordTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, *domain.KillSwitchDecision, error) {
	args := m.Called(ctx, userID, req)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	var decision *domain.KillSwitchDecision
	if args.Get(1) != nil {
		decision = args.Get(1).(*domain.KillSwitchDecision)
	}
	return txn, decision, args.Error(2)
}

func (m *MockTransactionService) UpdateTransaction(ctx context.Context, userID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, *domain.KillSwitchDecision, error) {
	args := m.Called(ctx, userID, transactionID, req)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	var decision *domain.KillSwitchDecision
	if args.Get(1) != nil {
		decision = args.Get(1).(*domain.KillSwitchDecision)
	}
	return txn, decision, args.Error(2)
}

func (m *MockTransactionService) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	args := m.Called(ctx, userID, transactionID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Mock FinancialConfigService ---
type MockConfigService struct {
	mock.Mock
}

func (m *MockConfigService) GetConfig(ctx context.Context, userID string) (*domain.FinancialConfig, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialConfig), args.Error(1)
}

func (m *MockConfigService) ListConfiguredUsers(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockConfigService) SaveConfig(ctx context.Context, userID string, req dto.FinancialConfigRequest) (*domain.FinancialConfig, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialConfig), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.FinancialConfigSvcFacade = (*MockConfigService)(nil)

// --- Mock InsightsService ---
type MockInsightsService struct {
	mock.Mock
}

func (m *MockInsightsService) Trends(ctx context.Context, userID string, asOf time.Time) (*domain.TrendsReport, error) {
	args := m.Called(ctx, userID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrendsReport), args.Error(1)
}

func (m *MockInsightsService) IncomeExpense(ctx context.Context, userID string, timeframe domain.AnalyticsTimeframe, asOf time.Time) (*domain.IncomeExpenseReport, error) {
	args := m.Called(ctx, userID, timeframe, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IncomeExpenseReport), args.Error(1)
}

func (m *MockInsightsService) HealthSummary(ctx context.Context, userID string, asOf time.Time) (*domain.HealthSummary, error) {
	args := m.Called(ctx, userID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HealthSummary), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.InsightsSvc = (*MockInsightsService)(nil)
