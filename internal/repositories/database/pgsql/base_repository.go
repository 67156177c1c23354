package pgsql

import (
	"github.com/SscSPs/money_coach_app/internal/apperrors"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// unavailable reports a failed database call so that services can tell it apart from bad input.
func (r *BaseRepository) unavailable(msg string, err error) error {
	return apperrors.NewUnavailableError(msg, err)
}
