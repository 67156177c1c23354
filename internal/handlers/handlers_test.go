package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/money_coach_app/internal/apperrors"
	"github.com/SscSPs/money_coach_app/internal/core/domain"
	portssvc "github.com/SscSPs/money_coach_app/internal/core/ports/services"
	"github.com/SscSPs/money_coach_app/internal/dto"
	"github.com/SscSPs/money_coach_app/internal/handlers"
	"github.com/SscSPs/money_coach_app/internal/middleware"
	"github.com/SscSPs/money_coach_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testUserID = "user-1"

// --- Test Suite ---
type HandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockEngineService   *MockEngineService
	mockTxnService      *MockTransactionService
	mockConfigService   *MockConfigService
	mockInsightsService *MockInsightsService
	cfg                 *config.Config
	jwtSecret           string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *HandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "coach-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.cfg = &config.Config{JWTSecret: suite.jwtSecret, IsProduction: true, Location: time.UTC}

	suite.mockEngineService = new(MockEngineService)
	suite.mockTxnService = new(MockTransactionService)
	suite.mockConfigService = new(MockConfigService)
	suite.mockInsightsService = new(MockInsightsService)

	handlers.RegisterRoutes(suite.router, suite.cfg, suite.services(), nil)
}

func (suite *HandlerTestSuite) services() *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Engine:      suite.mockEngineService,
		Transaction: suite.mockTxnService,
		Config:      suite.mockConfigService,
		Insights:    suite.mockInsightsService,
	}
}

func (suite *HandlerTestSuite) TearDownTest() {
	suite.mockEngineService.AssertExpectations(suite.T())
	suite.mockTxnService.AssertExpectations(suite.T())
	suite.mockConfigService.AssertExpectations(suite.T())
	suite.mockInsightsService.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(testUserID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) decode(w *httptest.ResponseRecorder, out any) {
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}

func decimalEq(v int64) func(decimal.Decimal) bool {
	return func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(v)) }
}

func sampleResult() *domain.EngineResult {
	return &domain.EngineResult{
		UserID:         testUserID,
		CurrentBalance: decimal.NewFromInt(40000),
		Coverage:       domain.IncomeCoverage{Unbounded: true, Severity: domain.SeveritySafe},
		Exhaustion:     domain.ExhaustionForecast{Unbounded: true},
		SafeToSpend:    domain.SafeToSpend{DailyAllowance: decimal.NewFromInt(500), RemainingDays: 17},
	}
}

// --- Test Cases ---

func (suite *HandlerTestSuite) TestHealth() {
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlerTestSuite) TestSafeToSpend_RequiresToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/safe-to-spend", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlerTestSuite) TestSafeToSpend_Success() {
	suite.mockEngineService.On("ComputeSafeToSpend", mock.Anything, testUserID, mock.AnythingOfType("time.Time")).
		Return(sampleResult(), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/safe-to-spend", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.SafeToSpendResponse
	suite.decode(w, &resp)
	suite.True(resp.DailyAllowance.Equal(decimal.NewFromInt(500)))
	suite.Equal(17, resp.RemainingDays)
	suite.Nil(resp.IncomeCoverageRatio)
	suite.Nil(resp.DaysUntilExhaustion)
	suite.Empty(resp.Alerts)
}

func (suite *HandlerTestSuite) TestSafeToSpend_DateAsOfMeansEndOfDay() {
	want := time.Date(2024, time.March, 15, 23, 59, 59, 999999999, time.UTC)
	suite.mockEngineService.On("ComputeSafeToSpend", mock.Anything, testUserID,
		mock.MatchedBy(func(t time.Time) bool { return t.Equal(want) })).
		Return(sampleResult(), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/safe-to-spend?asOf=2024-03-15", nil)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestSafeToSpend_InvalidAsOf() {
	w := suite.do(http.MethodGet, "/api/v1/safe-to-spend?asOf=yesterday", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockEngineService.AssertNotCalled(suite.T(), "ComputeSafeToSpend", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestSafeToSpend_ConfigMissing() {
	suite.mockEngineService.On("ComputeSafeToSpend", mock.Anything, testUserID, mock.Anything).
		Return(nil, apperrors.NewAppError(http.StatusNotFound, "complete onboarding first", apperrors.ErrConfigMissing)).Once()

	w := suite.do(http.MethodGet, "/api/v1/safe-to-spend", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Contains(w.Body.String(), "onboarding")
}

func (suite *HandlerTestSuite) TestSafeToSpend_DataUnavailable() {
	suite.mockEngineService.On("ComputeSafeToSpend", mock.Anything, testUserID, mock.Anything).
		Return(nil, apperrors.NewUnavailableError("ledger read failed", errors.New("connection refused"))).Once()

	w := suite.do(http.MethodGet, "/api/v1/safe-to-spend", nil)

	suite.Equal(http.StatusServiceUnavailable, w.Code)
	suite.NotContains(w.Body.String(), "connection refused")
}

func (suite *HandlerTestSuite) TestSafeToSpend_UnexpectedError() {
	suite.mockEngineService.On("ComputeSafeToSpend", mock.Anything, testUserID, mock.Anything).
		Return(nil, errors.New("boom")).Once()

	w := suite.do(http.MethodGet, "/api/v1/safe-to-spend", nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Contains(w.Body.String(), "Failed to compute safe-to-spend")
}

func (suite *HandlerTestSuite) TestRisk_Success() {
	result := sampleResult()
	risk := &domain.RiskReport{Score: 65, Signals: domain.RiskSignals{VelocityBreaches: 2}, Explanation: []string{"Spending is running hot"}}
	suite.mockEngineService.On("ComputeSafeToSpend", mock.Anything, testUserID, mock.Anything).Return(result, nil).Once()
	suite.mockEngineService.On("ComputeRiskScore", mock.Anything, testUserID, result).Return(risk, nil).Once()
	suite.mockEngineService.On("GetKillSwitchLevel", 65).Return(domain.LevelOrange).Once()

	w := suite.do(http.MethodGet, "/api/v1/risk", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.RiskResponse
	suite.decode(w, &resp)
	suite.Equal(65, resp.RiskScore)
	suite.Equal(domain.LevelOrange, resp.Level)
	suite.Equal(2, resp.Signals.VelocityBreaches)
}

func (suite *HandlerTestSuite) TestKillSwitchStatus() {
	st := &domain.KillSwitchStatus{Level: domain.LevelRed, Active: true, BlockedCategories: []string{"Shopping"}}
	suite.mockEngineService.On("KillSwitchStatus", mock.Anything, testUserID, mock.Anything).
		Return(st, &domain.RiskReport{Score: 80}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/kill-switch/status", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.KillSwitchStatusResponse
	suite.decode(w, &resp)
	suite.True(resp.Active)
	suite.Equal(80, resp.RiskScore)
	suite.Equal([]string{"Shopping"}, resp.BlockedCategories)
	suite.Equal([]string{}, resp.Explanation)
}

func (suite *HandlerTestSuite) TestValidateTransaction_Blocked() {
	decision := &domain.KillSwitchDecision{
		Allowed: false, Status: domain.StatusBlocked, Level: domain.LevelRed,
		Reason: "Non-essential spending is frozen",
	}
	suite.mockEngineService.On("EvaluateTransaction", mock.Anything, testUserID,
		mock.MatchedBy(func(c domain.CandidateTransaction) bool {
			return c.Direction == domain.Expense && c.Category == "Shopping" && c.Amount.Equal(decimal.NewFromInt(500))
		}), mock.AnythingOfType("time.Time")).
		Return(decision, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/kill-switch/validate", map[string]any{
		"amount": "500", "category": "Shopping", "direction": "debit",
	})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.KillSwitchDecisionResponse
	suite.decode(w, &resp)
	suite.False(resp.Allowed)
	suite.Equal(domain.StatusBlocked, resp.Status)
}

func (suite *HandlerTestSuite) TestValidateTransaction_BadDirection() {
	w := suite.do(http.MethodPost, "/api/v1/kill-switch/validate", map[string]any{
		"amount": "500", "direction": "transfer",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestValidateTransaction_MissingDirection() {
	w := suite.do(http.MethodPost, "/api/v1/kill-switch/validate", map[string]any{"amount": "500"})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestSimulateRecovery() {
	target := decimal.NewFromInt(300)
	plan := &domain.RecoveryPlan{
		Scenarios: []domain.RecoveryScenario{
			{Action: domain.ActionReduceSpending, DaysRequired: 5, TargetDailySpend: &target},
		},
		Recommendation: domain.RecoveryScenario{Action: domain.ActionReduceSpending, DaysRequired: 5, TargetDailySpend: &target},
	}
	suite.mockEngineService.On("SimulateRecovery", mock.Anything, testUserID, mock.Anything).
		Return(plan, &domain.RiskReport{Score: 72}, nil).Once()
	suite.mockEngineService.On("GetKillSwitchLevel", 72).Return(domain.LevelRed).Once()

	w := suite.do(http.MethodPost, "/api/v1/kill-switch/simulate-recovery", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.SimulateRecoveryResponse
	suite.decode(w, &resp)
	suite.Equal(domain.LevelRed, resp.Level)
	suite.Len(resp.Recovery.Scenarios, 1)
	suite.Equal(domain.ActionReduceSpending, resp.Recovery.Recommendation.Action)
}

func (suite *HandlerTestSuite) TestRecordTransaction_Created() {
	txn := &domain.Transaction{
		TransactionID: "txn-1", UserID: testUserID, Amount: decimal.NewFromInt(250),
		Direction: domain.Expense, Category: "Dining", Timestamp: time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC),
	}
	suite.mockTxnService.On("RecordTransaction", mock.Anything, testUserID,
		mock.MatchedBy(func(r dto.CreateTransactionRequest) bool {
			return r.Direction == "EXPENSE" && r.Category == "Dining" && decimalEq(250)(r.Amount)
		})).
		Return(txn, &domain.KillSwitchDecision{Allowed: true, Status: domain.StatusAllowed, Level: domain.LevelGreen}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/transactions", map[string]any{
		"amount": "250", "direction": "EXPENSE", "category": "Dining",
	})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.RecordTransactionResponse
	suite.decode(w, &resp)
	suite.Equal("txn-1", resp.Transaction.TransactionID)
	suite.Nil(resp.KillSwitch, "allowed decisions are not echoed")
}

func (suite *HandlerTestSuite) TestRecordTransaction_WarningIsReturned() {
	txn := &domain.Transaction{TransactionID: "txn-2", Direction: domain.Expense, Amount: decimal.NewFromInt(900)}
	warning := &domain.KillSwitchDecision{Allowed: true, Status: domain.StatusWarning, Level: domain.LevelYellow, Reason: "Spending is elevated"}
	suite.mockTxnService.On("RecordTransaction", mock.Anything, testUserID, mock.Anything).Return(txn, warning, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/transactions", map[string]any{"amount": "900", "direction": "expense"})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.RecordTransactionResponse
	suite.decode(w, &resp)
	suite.Require().NotNil(resp.KillSwitch)
	suite.Equal(domain.StatusWarning, resp.KillSwitch.Status)
}

func (suite *HandlerTestSuite) TestRecordTransaction_Blocked() {
	blocked := &domain.KillSwitchDecision{Allowed: false, Status: domain.StatusBlocked, Level: domain.LevelRed, Reason: "Non-essential spending is frozen"}
	suite.mockTxnService.On("RecordTransaction", mock.Anything, testUserID, mock.Anything).
		Return(nil, blocked, apperrors.NewAppError(http.StatusForbidden, blocked.Reason, apperrors.ErrTransactionBlocked)).Once()

	w := suite.do(http.MethodPost, "/api/v1/transactions", map[string]any{"amount": "900", "direction": "expense", "category": "Shopping"})

	suite.Equal(http.StatusForbidden, w.Code)
	var body struct {
		Error      string                         `json:"error"`
		KillSwitch dto.KillSwitchDecisionResponse `json:"killSwitch"`
	}
	suite.decode(w, &body)
	suite.Equal("Non-essential spending is frozen", body.Error)
	suite.False(body.KillSwitch.Allowed)
}

func (suite *HandlerTestSuite) TestRecordTransaction_ValidationError() {
	suite.mockTxnService.On("RecordTransaction", mock.Anything, testUserID, mock.Anything).
		Return(nil, nil, apperrors.NewAppError(http.StatusBadRequest, "amount must be positive", apperrors.ErrValidation)).Once()

	w := suite.do(http.MethodPost, "/api/v1/transactions", map[string]any{"amount": "-5", "direction": "expense"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "amount must be positive")
}

func (suite *HandlerTestSuite) TestUpdateTransaction_WarningIsReturned() {
	txn := &domain.Transaction{TransactionID: "txn-1", Direction: domain.Expense, Amount: decimal.NewFromInt(500), Category: "Dining"}
	warning := &domain.KillSwitchDecision{Allowed: true, Status: domain.StatusWarning, Level: domain.LevelOrange, Reason: "Close to today's limit"}
	suite.mockTxnService.On("UpdateTransaction", mock.Anything, testUserID, "txn-1",
		mock.MatchedBy(func(r dto.UpdateTransactionRequest) bool {
			return r.Amount != nil && decimalEq(500)(*r.Amount) && r.Category == nil
		})).
		Return(txn, warning, nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/transactions/txn-1", map[string]any{"amount": "500"})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.RecordTransactionResponse
	suite.decode(w, &resp)
	suite.Equal("txn-1", resp.Transaction.TransactionID)
	suite.Require().NotNil(resp.KillSwitch)
	suite.Equal(domain.StatusWarning, resp.KillSwitch.Status)
}

func (suite *HandlerTestSuite) TestUpdateTransaction_Blocked() {
	blocked := &domain.KillSwitchDecision{Allowed: false, Status: domain.StatusBlocked, Level: domain.LevelRed, Reason: "Non-essential spending is frozen"}
	suite.mockTxnService.On("UpdateTransaction", mock.Anything, testUserID, "txn-1", mock.Anything).
		Return(nil, blocked, apperrors.NewAppError(http.StatusForbidden, blocked.Reason, apperrors.ErrTransactionBlocked)).Once()

	w := suite.do(http.MethodPut, "/api/v1/transactions/txn-1", map[string]any{"amount": "5000"})

	suite.Equal(http.StatusForbidden, w.Code)
	suite.Contains(w.Body.String(), `"killSwitch"`)
}

func (suite *HandlerTestSuite) TestUpdateTransaction_NotFound() {
	suite.mockTxnService.On("UpdateTransaction", mock.Anything, testUserID, "missing", mock.Anything).
		Return(nil, nil, apperrors.NewNotFoundError("transaction missing not found")).Once()

	w := suite.do(http.MethodPut, "/api/v1/transactions/missing", map[string]any{"description": "fixed"})

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Contains(w.Body.String(), "transaction missing not found")
}

func (suite *HandlerTestSuite) TestDeleteTransaction() {
	suite.mockTxnService.On("DeleteTransaction", mock.Anything, testUserID, "txn-1").Return(nil).Once()
	suite.mockTxnService.On("DeleteTransaction", mock.Anything, testUserID, "missing").
		Return(apperrors.NewNotFoundError("transaction missing not found")).Once()

	w := suite.do(http.MethodDelete, "/api/v1/transactions/txn-1", nil)
	suite.Equal(http.StatusNoContent, w.Code)
	suite.Empty(w.Body.String())

	w = suite.do(http.MethodDelete, "/api/v1/transactions/missing", nil)
	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockTxnService.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestListTransactions() {
	next := "token-2"
	page := &dto.ListTransactionsResponse{Transactions: []dto.TransactionResponse{{TransactionID: "txn-1"}}, NextToken: &next}
	suite.mockTxnService.On("ListTransactions", mock.Anything, testUserID,
		mock.MatchedBy(func(p dto.ListTransactionsParams) bool {
			return p.Limit == 10 && p.NextToken != nil && *p.NextToken == "token-1"
		})).
		Return(page, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/transactions?limit=10&nextToken=token-1", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListTransactionsResponse
	suite.decode(w, &resp)
	suite.Len(resp.Transactions, 1)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal("token-2", *resp.NextToken)
}

func (suite *HandlerTestSuite) TestListTransactions_LimitTooLarge() {
	w := suite.do(http.MethodGet, "/api/v1/transactions?limit=500", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestGetConfig() {
	cfg := &domain.FinancialConfig{
		UserID: testUserID, MonthlyIncome: decimal.NewFromInt(50000), EmergencyBufferPercent: 15,
		FixedObligations: []domain.FixedObligation{{Name: "Rent", Amount: decimal.NewFromInt(15000), DueDayOfMonth: 1}},
	}
	suite.mockConfigService.On("GetConfig", mock.Anything, testUserID).Return(cfg, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/config", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.FinancialConfigResponse
	suite.decode(w, &resp)
	suite.True(resp.TotalObligations.Equal(decimal.NewFromInt(15000)))
}

func (suite *HandlerTestSuite) TestGetConfig_Missing() {
	suite.mockConfigService.On("GetConfig", mock.Anything, testUserID).
		Return(nil, apperrors.NewAppError(http.StatusNotFound, "complete onboarding first", apperrors.ErrConfigMissing)).Once()

	w := suite.do(http.MethodGet, "/api/v1/config", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestSaveConfig() {
	saved := &domain.FinancialConfig{UserID: testUserID, MonthlyIncome: decimal.NewFromInt(60000), EmergencyBufferPercent: 15}
	suite.mockConfigService.On("SaveConfig", mock.Anything, testUserID,
		mock.MatchedBy(func(r dto.FinancialConfigRequest) bool {
			return decimalEq(60000)(r.MonthlyIncome) && len(r.FixedObligations) == 1
		})).
		Return(saved, nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/config", map[string]any{
		"monthlyIncome":    "60000",
		"fixedObligations": []map[string]any{{"name": "Rent", "amount": "15000", "dueDayOfMonth": 1}},
	})

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestSaveConfig_BadDueDay() {
	w := suite.do(http.MethodPut, "/api/v1/config", map[string]any{
		"monthlyIncome":    "60000",
		"fixedObligations": []map[string]any{{"name": "Rent", "amount": "15000", "dueDayOfMonth": 40}},
	})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestTrends() {
	rep := &domain.TrendsReport{
		TotalTransactions: 3,
		From:              time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC),
		To:                time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
	}
	suite.mockInsightsService.On("Trends", mock.Anything, testUserID, mock.Anything).Return(rep, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/trends/heatmap", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TrendsResponse
	suite.decode(w, &resp)
	suite.Equal("2023-12-01", resp.From)
	suite.Equal(3, resp.TotalTransactions)
}

func (suite *HandlerTestSuite) TestIncomeExpense() {
	rep := &domain.IncomeExpenseReport{Timeframe: domain.TimeframeYear, TotalIncome: decimal.NewFromInt(1000)}
	suite.mockInsightsService.On("IncomeExpense", mock.Anything, testUserID, domain.TimeframeYear, mock.Anything).Return(rep, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/analytics/income-expense?timeframe=year", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.IncomeExpenseResponse
	suite.decode(w, &resp)
	suite.Equal(domain.TimeframeYear, resp.Timeframe)
}

func (suite *HandlerTestSuite) TestIncomeExpense_BadTimeframe() {
	w := suite.do(http.MethodGet, "/api/v1/analytics/income-expense?timeframe=decade", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestHealthSummary() {
	summary := &domain.HealthSummary{UserID: testUserID, Score: 46, SpendingPressure: "Medium", Level: domain.LevelOrange}
	suite.mockInsightsService.On("HealthSummary", mock.Anything, testUserID, mock.Anything).Return(summary, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/summary", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.HealthSummaryResponse
	suite.decode(w, &resp)
	suite.Equal(46, resp.Score)
	suite.Equal("Medium", resp.SpendingPressure)
}

func (suite *HandlerTestSuite) TestWriteRoutesAreRateLimited() {
	lim, err := middleware.NewRateLimiter("1-M")
	suite.Require().NoError(err)
	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, suite.cfg, suite.services(), lim)

	decision := &domain.KillSwitchDecision{Allowed: true, Status: domain.StatusAllowed, Level: domain.LevelGreen}
	suite.mockEngineService.On("EvaluateTransaction", mock.Anything, testUserID, mock.Anything, mock.Anything).Return(decision, nil).Once()
	body := map[string]any{"amount": "100", "direction": "expense"}

	first := suite.do(http.MethodPost, "/api/v1/kill-switch/validate", body)
	second := suite.do(http.MethodPost, "/api/v1/kill-switch/validate", body)

	suite.Equal(http.StatusOK, first.Code)
	suite.Equal(http.StatusTooManyRequests, second.Code)
}

// --- Run Test Suite ---
func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
