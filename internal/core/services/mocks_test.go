package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/money_coach_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) FindTransactions(ctx context.Context, userID string, filter domain.LedgerFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockLedgerRepository) ListTransactions(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, userID, limit, nextToken)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return txns, next, args.Error(2)
}

func (m *MockLedgerRepository) FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockLedgerRepository) AppendTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockLedgerRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockLedgerRepository) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	args := m.Called(ctx, userID, transactionID)
	return args.Error(0)
}

// --- Mock FinancialConfigRepository ---
type MockConfigRepository struct {
	mock.Mock
}

func (m *MockConfigRepository) FindConfigByUserID(ctx context.Context, userID string) (*domain.FinancialConfig, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialConfig), args.Error(1)
}

func (m *MockConfigRepository) ListConfiguredUserIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockConfigRepository) SaveConfig(ctx context.Context, cfg domain.FinancialConfig) error {
	args := m.Called(ctx, cfg)
	return args.Error(0)
}

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

// --- Fixtures ---

const testUserID = "user-1"

var testAsOf = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func txnAt(month time.Month, day int, amount int64, dir domain.Direction, category string) domain.Transaction {
	return domain.Transaction{
		TransactionID: category + time.Date(2024, month, day, 0, 0, 0, 0, time.UTC).Format("0102"),
		UserID:        testUserID,
		Timestamp:     time.Date(2024, month, day, 10, 0, 0, 0, time.UTC),
		Amount:        dec(amount),
		Direction:     dir,
		Category:      category,
	}
}

func steadyConfig() *domain.FinancialConfig {
	return &domain.FinancialConfig{
		UserID:        testUserID,
		MonthlyIncome: dec(50000),
		FixedObligations: []domain.FixedObligation{
			{Name: "Rent", Amount: dec(15000), DueDayOfMonth: 1},
			{Name: "EMI", Amount: dec(5000), DueDayOfMonth: 20},
		},
		EmergencyBufferPercent: 10,
	}
}

func steadyTransactions() []domain.Transaction {
	return []domain.Transaction{
		txnAt(time.January, 1, 50000, domain.Income, "Salary"),
		txnAt(time.January, 2, 15000, domain.Expense, "Rent"),
		txnAt(time.February, 1, 50000, domain.Income, "Salary"),
		txnAt(time.February, 2, 15000, domain.Expense, "Rent"),
		txnAt(time.March, 1, 50000, domain.Income, "Salary"),
		txnAt(time.March, 2, 15000, domain.Expense, "Rent"),
	}
}
