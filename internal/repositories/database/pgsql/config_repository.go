package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/money_coach_app/internal/apperrors"
	"github.com/SscSPs/money_coach_app/internal/core/domain"
	portsrepo "github.com/SscSPs/money_coach_app/internal/core/ports/repositories"
	"github.com/SscSPs/money_coach_app/internal/models"
	"github.com/SscSPs/money_coach_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxFinancialConfigRepository struct {
	BaseRepository
}

// newPgxFinancialConfigRepository creates a new repository for onboarding data.
func newPgxFinancialConfigRepository(pool *pgxpool.Pool) portsrepo.FinancialConfigRepositoryFacade {
	return &PgxFinancialConfigRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.FinancialConfigRepositoryFacade = (*PgxFinancialConfigRepository)(nil)

// SaveConfig inserts or replaces the user's config. The original creation audit is kept.
func (r *PgxFinancialConfigRepository) SaveConfig(ctx context.Context, cfg domain.FinancialConfig) error {
	m := mapping.ToModelFinancialConfig(cfg)
	query := `
		INSERT INTO financial_configs (user_id, monthly_income, fixed_obligations, emergency_buffer_percent,
		                               created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id) DO UPDATE SET
			monthly_income = EXCLUDED.monthly_income,
			fixed_obligations = EXCLUDED.fixed_obligations,
			emergency_buffer_percent = EXCLUDED.emergency_buffer_percent,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.UserID,
		m.MonthlyIncome,
		m.FixedObligations,
		m.EmergencyBufferPercent,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return r.unavailable("failed to save financial config for user "+m.UserID, err)
	}
	return nil
}

// FindConfigByUserID retrieves the user's config.
func (r *PgxFinancialConfigRepository) FindConfigByUserID(ctx context.Context, userID string) (*domain.FinancialConfig, error) {
	query := `
		SELECT user_id, monthly_income, fixed_obligations, emergency_buffer_percent,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM financial_configs
		WHERE user_id = $1;
	`
	var m models.FinancialConfig
	err := r.Pool.QueryRow(ctx, query, userID).Scan(
		&m.UserID,
		&m.MonthlyIncome,
		&m.FixedObligations,
		&m.EmergencyBufferPercent,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, r.unavailable("failed to find financial config for user "+userID, err)
	}
	cfg := mapping.ToDomainFinancialConfig(m)
	return &cfg, nil
}

// ListConfiguredUserIDs returns every user with a stored config.
func (r *PgxFinancialConfigRepository) ListConfiguredUserIDs(ctx context.Context) ([]string, error) {
	rows, err := r.Pool.Query(ctx, `SELECT user_id FROM financial_configs ORDER BY user_id;`)
	if err != nil {
		return nil, r.unavailable("failed to list configured users", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, r.unavailable("failed to read configured users", err)
	}
	return ids, nil
}
