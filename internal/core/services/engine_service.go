package services

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/money_coach_app/internal/apperrors"
	"github.com/SscSPs/money_coach_app/internal/core/domain"
	"github.com/SscSPs/money_coach_app/internal/core/engine"
	portsrepo "github.com/SscSPs/money_coach_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_coach_app/internal/core/ports/services"
)

// engineService runs the pure engine over data read through the repositories.
type engineService struct {
	BaseService
	snapshotLoader
	settings engine.Settings
}

// EngineServiceOption is a function that configures an engineService
type EngineServiceOption func(*engineService)

// WithEngineSettings overrides the default engine tunables.
func WithEngineSettings(s engine.Settings) EngineServiceOption {
	return func(svc *engineService) {
		svc.settings = s.Normalize()
	}
}

// WithCategoryPolicy sets the category policy shared by every engine component.
func WithCategoryPolicy(p domain.CategoryPolicy) EngineServiceOption {
	return func(svc *engineService) {
		svc.policy = p
	}
}

// NewEngineService creates a new safety engine service.
func NewEngineService(ledgerRepo portsrepo.LedgerReader, configRepo portsrepo.FinancialConfigReader, opts ...EngineServiceOption) portssvc.SafetyEngineSvc {
	svc := &engineService{
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

// evaluation is one consistent view of a user's finances.
type evaluation struct {
	ledger *engine.Ledger
	result domain.EngineResult
	risk   domain.RiskReport
}

func (s *engineService) evaluate(ctx context.Context, userID string, asOf time.Time) (*evaluation, error) {
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
	s.LogDebug(ctx, "Computed engine result",
		slog.String("user_id", userID),
		slog.Int("transactions", l.Len()),
		slog.String("daily_allowance", res.SafeToSpend.DailyAllowance.String()),
		slog.Int("risk_score", risk.Score))
	return &evaluation{ledger: l, result: res, risk: risk}, nil
}

func (s *engineService) ComputeSafeToSpend(ctx context.Context, userID string, asOf time.Time) (*domain.EngineResult, error) {
	cfg, err := s.loadConfig(ctx, userID)
	if err != nil {
		return nil, err
	}
	l, err := s.loadLedger(ctx, userID, asOf)
	if err != nil {
		return nil, err
	}
	res := engine.Compute(cfg, l, asOf, s.settings)
	return &res, nil
}

func (s *engineService) ComputeRiskScore(ctx context.Context, userID string, result *domain.EngineResult) (*domain.RiskReport, error) {
	if result == nil {
		return nil, apperrors.NewAppError(http.StatusBadRequest, "engine result is required", apperrors.ErrValidation)
	}
	l, err := s.loadLedger(ctx, userID, result.AsOf)
	if err != nil {
		return nil, err
	}
	risk := engine.ScoreRisk(l, *result, s.settings)
	return &risk, nil
}

func (s *engineService) GetKillSwitchLevel(riskScore int) domain.KillSwitchLevel {
	return engine.KillSwitchLevelFor(riskScore)
}

func (s *engineService) ValidateTransaction(ctx context.Context, userID string, candidate domain.CandidateTransaction, result *domain.EngineResult, riskScore int) (*domain.KillSwitchDecision, error) {
	if result == nil {
		return nil, apperrors.NewAppError(http.StatusBadRequest, "engine result is required", apperrors.ErrValidation)
	}
	if err := validateCandidate(candidate); err != nil {
		return nil, err
	}

	in := engine.DecisionInput{
		Candidate: candidate,
		Result:    *result,
		RiskScore: riskScore,
		Policy:    s.policy,
	}
	if s.needsTodaySpending(candidate, riskScore) {
		// Same point-in-time view as EvaluateTransaction: today's spending up to the result's instant.
		soFar := engine.Window{Start: engine.Today(result.AsOf).Start, End: result.AsOf}
		expense := domain.Expense
		txns, err := s.ledgerRepo.FindTransactions(ctx, userID, domain.LedgerFilter{From: &soFar.Start, To: &soFar.End, Direction: &expense})
		if err != nil {
			return nil, storeError("failed to read today's spending", err)
		}
		in.TodaySpending = engine.NewLedger(txns, s.policy).Expenses(soFar)
	}

	decision := engine.Decide(in)
	return &decision, nil
}

func (s *engineService) EvaluateTransaction(ctx context.Context, userID string, candidate domain.CandidateTransaction, asOf time.Time) (*domain.KillSwitchDecision, error) {
	if err := validateCandidate(candidate); err != nil {
		return nil, err
	}
	ev, err := s.evaluate(ctx, userID, asOf)
	if err != nil {
		return nil, err
	}

	decision := engine.Decide(engine.DecisionInput{
		Candidate:     candidate,
		Result:        ev.result,
		RiskScore:     ev.risk.Score,
		TodaySpending: ev.ledger.Expenses(engine.Today(asOf)),
		Policy:        s.policy,
	})
	if !decision.Allowed {
		s.LogInfo(ctx, "Kill-switch blocked transaction",
			slog.String("user_id", userID),
			slog.String("level", string(decision.Level)),
			slog.String("category", candidate.Category),
			slog.String("amount", candidate.Amount.String()))
	}
	return &decision, nil
}

func (s *engineService) KillSwitchStatus(ctx context.Context, userID string, asOf time.Time) (*domain.KillSwitchStatus, *domain.RiskReport, error) {
	ev, err := s.evaluate(ctx, userID, asOf)
	if err != nil {
		return nil, nil, err
	}
	st := engine.Status(engine.KillSwitchLevelFor(ev.risk.Score), s.policy)
	return &st, &ev.risk, nil
}

func (s *engineService) SimulateRecovery(ctx context.Context, userID string, asOf time.Time) (*domain.RecoveryPlan, *domain.RiskReport, error) {
	ev, err := s.evaluate(ctx, userID, asOf)
	if err != nil {
		return nil, nil, err
	}
	plan := engine.SimulateRecovery(ev.result, ev.risk.Score)
	return &plan, &ev.risk, nil
}

// needsTodaySpending reports whether Decide will reach the ORANGE daily limit check.
func (s *engineService) needsTodaySpending(c domain.CandidateTransaction, riskScore int) bool {
	return c.Direction == domain.Expense &&
		!s.policy.IsEssential(c.Category) &&
		engine.KillSwitchLevelFor(riskScore) == domain.LevelOrange
}

func validateCandidate(c domain.CandidateTransaction) error {
	if !c.Direction.Valid() {
		return apperrors.NewAppError(http.StatusBadRequest, "direction must be INCOME or EXPENSE", apperrors.ErrValidation)
	}
	if !c.Amount.IsPositive() {
		return apperrors.NewAppError(http.StatusBadRequest, "amount must be positive", apperrors.ErrValidation)
	}
	return nil
}
