package pgsql

import (
	portsrepo "github.com/SscSPs/money_coach_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		LedgerRepo: newPgxLedgerRepository(dbPool),
		ConfigRepo: newPgxFinancialConfigRepository(dbPool),
	}
}
