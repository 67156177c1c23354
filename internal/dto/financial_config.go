package dto

import (
	"time"

	"github.com/SscSPs/money_coach_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FixedObligationRequest is one recurring monthly commitment.
type FixedObligationRequest struct {
	Name          string          `json:"name" binding:"required,max=100"`
	Amount        decimal.Decimal `json:"amount"`
	DueDayOfMonth int             `json:"dueDayOfMonth" binding:"required,min=1,max=31"`
}

// FinancialConfigRequest defines the onboarding data for a user.
type FinancialConfigRequest struct {
	MonthlyIncome          decimal.Decimal          `json:"monthlyIncome"`
	FixedObligations       []FixedObligationRequest `json:"fixedObligations" binding:"dive"`
	EmergencyBufferPercent *float64                 `json:"emergencyBufferPercent" binding:"omitempty,min=0,max=100"` // Optional, defaults to 15
}

// FixedObligationResponse mirrors domain.FixedObligation.
type FixedObligationResponse struct {
	Name          string          `json:"name"`
	Amount        decimal.Decimal `json:"amount"`
	DueDayOfMonth int             `json:"dueDayOfMonth"`
}

// FinancialConfigResponse mirrors domain.FinancialConfig.
type FinancialConfigResponse struct {
	UserID                 string                    `json:"userID"`
	MonthlyIncome          decimal.Decimal           `json:"monthlyIncome"`
	FixedObligations       []FixedObligationResponse `json:"fixedObligations"`
	EmergencyBufferPercent float64                   `json:"emergencyBufferPercent"`
	TotalObligations       decimal.Decimal           `json:"totalObligations"`
	LastUpdatedAt          time.Time                 `json:"lastUpdatedAt"`
}

// ToFinancialConfigResponse converts a domain.FinancialConfig to its DTO.
func ToFinancialConfigResponse(cfg *domain.FinancialConfig) FinancialConfigResponse {
	out := FinancialConfigResponse{
		UserID:                 cfg.UserID,
		MonthlyIncome:          cfg.MonthlyIncome,
		FixedObligations:       make([]FixedObligationResponse, len(cfg.FixedObligations)),
		EmergencyBufferPercent: cfg.EmergencyBufferPercent,
		TotalObligations:       decimal.Zero,
		LastUpdatedAt:          cfg.LastUpdatedAt,
	}
	for i, ob := range cfg.FixedObligations {
		out.FixedObligations[i] = FixedObligationResponse{Name: ob.Name, Amount: ob.Amount, DueDayOfMonth: ob.DueDayOfMonth}
		out.TotalObligations = out.TotalObligations.Add(ob.Amount)
	}
	return out
}
