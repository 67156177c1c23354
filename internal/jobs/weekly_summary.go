// Package jobs holds the background work the backend runs on a schedule.
package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/money_coach_app/internal/apperrors"
	portssvc "github.com/SscSPs/money_coach_app/internal/core/ports/services"
	"github.com/robfig/cron/v3"
)

// RunStats summarises one pass of the weekly summary job.
type RunStats struct {
	Users      int
	Summarised int
	Skipped    int
	Failed     int
}

// WeeklySummaryJob computes the health summary of every onboarded user and logs it.
type WeeklySummaryJob struct {
	configService   portssvc.FinancialConfigSvcFacade
	insightsService portssvc.InsightsSvc
	logger          *slog.Logger
	now             func() time.Time
}

// WeeklySummaryOption configures a WeeklySummaryJob.
type WeeklySummaryOption func(*WeeklySummaryJob)

// WithJobClock overrides the clock that decides the evaluation time of a run.
func WithJobClock(now func() time.Time) WeeklySummaryOption {
	return func(j *WeeklySummaryJob) {
		j.now = now
	}
}

// NewWeeklySummaryJob creates the job.
func NewWeeklySummaryJob(configService portssvc.FinancialConfigSvcFacade, insightsService portssvc.InsightsSvc, logger *slog.Logger, opts ...WeeklySummaryOption) *WeeklySummaryJob {
	j := &WeeklySummaryJob{
		configService:   configService,
		insightsService: insightsService,
		logger:          logger.With(slog.String("job", "weekly_summary")),
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Run summarises every configured user once. A failure for one user does not stop the others.
func (j *WeeklySummaryJob) Run(ctx context.Context) (RunStats, error) {
	var stats RunStats
	users, err := j.configService.ListConfiguredUsers(ctx)
	if err != nil {
		return stats, fmt.Errorf("listing configured users: %w", err)
	}
	stats.Users = len(users)
	asOf := j.now()

	for _, userID := range users {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		summary, err := j.insightsService.HealthSummary(ctx, userID, asOf)
		if err != nil {
			if errors.Is(err, apperrors.ErrConfigMissing) {
				stats.Skipped++
				j.logger.Debug("Skipping user without config", slog.String("user_id", userID))
				continue
			}
			stats.Failed++
			j.logger.Error("Failed to build weekly summary", slog.String("user_id", userID), slog.String("error", err.Error()))
			continue
		}
		stats.Summarised++
		j.logger.Info("Weekly summary",
			slog.String("user_id", userID),
			slog.Int("health_score", summary.Score),
			slog.Int("risk_score", summary.RiskScore),
			slog.String("level", string(summary.Level)),
			slog.String("spending_pressure", summary.SpendingPressure),
			slog.Bool("low_balance_risk", summary.LowBalanceRisk),
		)
	}

	j.logger.Info("Weekly summary run finished",
		slog.Int("users", stats.Users),
		slog.Int("summarised", stats.Summarised),
		slog.Int("skipped", stats.Skipped),
		slog.Int("failed", stats.Failed),
	)
	return stats, nil
}

// NewScheduler returns a cron scheduler that evaluates specs in loc and logs through logger.
// Panicking jobs are recovered and overlapping runs are skipped.
func NewScheduler(loc *time.Location, logger *slog.Logger) *cron.Cron {
	cronLogger := cron.PrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelInfo))
	return cron.New(
		cron.WithLocation(loc),
		cron.WithLogger(cronLogger),
		cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
	)
}

// Schedule registers the job on c using a standard five field cron spec.
// Each run gets its own context bounded by timeout.
func (j *WeeklySummaryJob) Schedule(c *cron.Cron, spec string, timeout time.Duration) (cron.EntryID, error) {
	id, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if _, err := j.Run(ctx); err != nil {
			j.logger.Error("Weekly summary run failed", slog.String("error", err.Error()))
		}
	})
	if err != nil {
		return 0, fmt.Errorf("invalid weekly summary schedule %q: %w", spec, err)
	}
	return id, nil
}
