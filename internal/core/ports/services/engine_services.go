package services

import (
	"context"
	"time"

	"github.com/SscSPs/money_coach_app/internal/core/domain"
)

// SafetyEngineSvc exposes the financial-safety engine over a user's stored data.
// Every operation works on a ledger snapshot fetched once per call.
type SafetyEngineSvc interface {
	// ComputeSafeToSpend runs the full safe-to-spend pipeline at asOf.
	// It fails with apperrors.ErrConfigMissing before onboarding.
	ComputeSafeToSpend(ctx context.Context, userID string, asOf time.Time) (*domain.EngineResult, error)

	// ComputeRiskScore scores risk on top of an already computed result.
	ComputeRiskScore(ctx context.Context, userID string, result *domain.EngineResult) (*domain.RiskReport, error)

	// GetKillSwitchLevel maps a risk score onto its level.
	GetKillSwitchLevel(riskScore int) domain.KillSwitchLevel

	// ValidateTransaction judges a candidate transaction against a prior result and risk score.
	ValidateTransaction(ctx context.Context, userID string, candidate domain.CandidateTransaction, result *domain.EngineResult, riskScore int) (*domain.KillSwitchDecision, error)

	// EvaluateTransaction computes the result and the risk score, then validates the candidate.
	EvaluateTransaction(ctx context.Context, userID string, candidate domain.CandidateTransaction, asOf time.Time) (*domain.KillSwitchDecision, error)

	// KillSwitchStatus reports the current level and the blocked categories.
	KillSwitchStatus(ctx context.Context, userID string, asOf time.Time) (*domain.KillSwitchStatus, *domain.RiskReport, error)

	// SimulateRecovery lists the recovery scenarios for the user's current risk.
	SimulateRecovery(ctx context.Context, userID string, asOf time.Time) (*domain.RecoveryPlan, *domain.RiskReport, error)
}
