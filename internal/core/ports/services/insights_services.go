package services

import (
	"context"
	"time"

	"github.com/SscSPs/money_coach_app/internal/core/domain"
)

// InsightsSvc serves the reporting views built on the engine.
type InsightsSvc interface {
	Trends(ctx context.Context, userID string, asOf time.Time) (*domain.TrendsReport, error)
	IncomeExpense(ctx context.Context, userID string, timeframe domain.AnalyticsTimeframe, asOf time.Time) (*domain.IncomeExpenseReport, error)
	HealthSummary(ctx context.Context, userID string, asOf time.Time) (*domain.HealthSummary, error)
}
