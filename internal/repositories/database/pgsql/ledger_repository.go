package pgsql

import (
	"context"
	"strconv"
	"strings"

	"github.com/SscSPs/money_coach_app/internal/apperrors"
	"github.com/SscSPs/money_coach_app/internal/core/domain"
	portsrepo "github.com/SscSPs/money_coach_app/internal/core/ports/repositories"
	"github.com/SscSPs/money_coach_app/internal/models"
	"github.com/SscSPs/money_coach_app/internal/utils/mapping"
	"github.com/SscSPs/money_coach_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = `transaction_id, user_id, transaction_date, amount, transaction_type, category, description,
		       created_at, created_by, last_updated_at, last_updated_by`

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for ledger entries.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

// AppendTransaction inserts a ledger entry.
func (r *PgxLedgerRepository) AppendTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO ledger_transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.UserID,
		m.Date,
		m.Amount,
		m.Type,
		m.Category,
		m.Description,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return r.unavailable("failed to insert transaction "+m.TransactionID, err)
	}
	return nil
}

// UpdateTransaction rewrites the mutable columns of one of txn.UserID's entries.
func (r *PgxLedgerRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		UPDATE ledger_transactions
		SET transaction_date = $3, amount = $4, transaction_type = $5, category = $6, description = $7,
		    last_updated_at = $8, last_updated_by = $9
		WHERE transaction_id = $1 AND user_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.UserID,
		m.Date,
		m.Amount,
		m.Type,
		m.Category,
		m.Description,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return r.unavailable("failed to update transaction "+m.TransactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("transaction " + m.TransactionID + " not found for update")
	}
	return nil
}

// DeleteTransaction removes one of the user's entries.
func (r *PgxLedgerRepository) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	cmdTag, err := r.Pool.Exec(ctx,
		`DELETE FROM ledger_transactions WHERE transaction_id = $1 AND user_id = $2;`,
		transactionID, userID)
	if err != nil {
		return r.unavailable("failed to delete transaction "+transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("transaction " + transactionID + " not found")
	}
	return nil
}

// FindTransactionByID returns one of the user's entries.
func (r *PgxLedgerRepository) FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM ledger_transactions WHERE transaction_id = $1 AND user_id = $2;`
	rows, err := r.Pool.Query(ctx, query, transactionID, userID)
	if err != nil {
		return nil, r.unavailable("failed to find transaction "+transactionID, err)
	}
	defer rows.Close()

	results, err := scanTransactions(rows)
	if err != nil {
		return nil, r.unavailable("failed to read transaction "+transactionID, err)
	}
	if len(results) == 0 {
		return nil, apperrors.NewNotFoundError("transaction " + transactionID + " not found")
	}
	txn := mapping.ToDomainTransaction(results[0])
	return &txn, nil
}

// FindTransactions returns the user's transactions matching filter, oldest first.
func (r *PgxLedgerRepository) FindTransactions(ctx context.Context, userID string, filter domain.LedgerFilter) ([]domain.Transaction, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + transactionColumns + ` FROM ledger_transactions WHERE user_id = $1`)
	args := []any{userID}

	if filter.From != nil {
		args = append(args, *filter.From)
		sb.WriteString(" AND transaction_date >= $" + strconv.Itoa(len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		sb.WriteString(" AND transaction_date <= $" + strconv.Itoa(len(args)))
	}
	if filter.Direction != nil {
		args = append(args, string(*filter.Direction))
		sb.WriteString(" AND transaction_type = $" + strconv.Itoa(len(args)))
	}
	sb.WriteString(" ORDER BY transaction_date ASC, created_at ASC, transaction_id ASC;")

	rows, err := r.Pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, r.unavailable("failed to query ledger for user "+userID, err)
	}
	defer rows.Close()

	results, err := scanTransactions(rows)
	if err != nil {
		return nil, r.unavailable("failed to read ledger for user "+userID, err)
	}
	return mapping.ToDomainTransactions(results), nil
}

// ListTransactions retrieves a page of the user's transactions, newest first, using token-based pagination.
func (r *PgxLedgerRepository) ListTransactions(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	limit = pagination.ClampLimit(limit)
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + transactionColumns + ` FROM ledger_transactions WHERE user_id = $1`
	orderByClause := `ORDER BY transaction_date DESC, transaction_id DESC`
	args := []any{userID}

	query := baseQuery
	if nextToken != nil && *nextToken != "" {
		lastDate, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", apperrors.ErrValidation)
		}
		// Tuple comparison is concise and efficient in Postgres
		query += ` AND (transaction_date, transaction_id) < ($2, $3)`
		args = append(args, lastDate, lastID)
	}
	args = append(args, fetchLimit)
	query += " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)) + ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, r.unavailable("failed to list transactions for user "+userID, err)
	}
	defer rows.Close()

	results, err := scanTransactions(rows)
	if err != nil {
		return nil, nil, r.unavailable("failed to read transactions for user "+userID, err)
	}

	var nextTokenVal *string
	if len(results) > limit {
		results = results[:limit]
		last := results[limit-1]
		token := pagination.EncodeToken(last.Date, last.TransactionID)
		nextTokenVal = &token
	}
	return mapping.ToDomainTransactions(results), nextTokenVal, nil
}

func scanTransactions(rows pgx.Rows) ([]models.Transaction, error) {
	var out []models.Transaction
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(
			&t.TransactionID,
			&t.UserID,
			&t.Date,
			&t.Amount,
			&t.Type,
			&t.Category,
			&t.Description,
			&t.CreatedAt,
			&t.CreatedBy,
			&t.LastUpdatedAt,
			&t.LastUpdatedBy,
		); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
