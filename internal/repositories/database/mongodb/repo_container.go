package mongodb

import (
	"context"
	"fmt"

	portsrepo "github.com/SscSPs/money_coach_app/internal/core/ports/repositories"
	"go.mongodb.org/mongo-driver/mongo"
)

// NewRepositoryProvider wires the Mongo-backed repositories and makes sure the ledger index exists.
func NewRepositoryProvider(ctx context.Context, db *mongo.Database) (portsrepo.RepositoryProvider, error) {
	ledger := newMongoLedgerRepository(db)
	if err := ledger.ensureIndexes(ctx); err != nil {
		return portsrepo.RepositoryProvider{}, fmt.Errorf("failed to create ledger indexes: %w", err)
	}
	return portsrepo.RepositoryProvider{
		LedgerRepo: ledger,
		ConfigRepo: newMongoFinancialConfigRepository(db),
	}, nil
}
