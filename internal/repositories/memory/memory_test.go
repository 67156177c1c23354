package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/money_coach_app/internal/apperrors"
	"github.com/SscSPs/money_coach_app/internal/core/domain"
	"github.com/SscSPs/money_coach_app/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func txn(id string, day int, dir domain.Direction) domain.Transaction {
	return domain.Transaction{
		TransactionID: id,
		UserID:        "user-1",
		Timestamp:     time.Date(2024, time.March, day, 10, 0, 0, 0, time.UTC),
		Amount:        decimal.NewFromInt(100),
		Direction:     dir,
	}
}

func seeded(t *testing.T) *memory.LedgerRepository {
	t.Helper()
	repo := memory.NewLedgerRepository()
	ctx := context.Background()
	for _, tx := range []domain.Transaction{
		txn("c", 3, domain.Expense),
		txn("a", 1, domain.Income),
		txn("b", 2, domain.Expense),
		txn("d", 3, domain.Expense),
	} {
		require.NoError(t, repo.AppendTransaction(ctx, tx))
	}
	return repo
}

func ids(txns []domain.Transaction) []string {
	out := make([]string, len(txns))
	for i, t := range txns {
		out[i] = t.TransactionID
	}
	return out
}

func TestLedgerRepository_FindTransactions(t *testing.T) {
	repo := seeded(t)
	ctx := context.Background()

	all, err := repo.FindTransactions(ctx, "user-1", domain.LedgerFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(all))

	from := time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC)
	expense := domain.Expense
	filtered, err := repo.FindTransactions(ctx, "user-1", domain.LedgerFilter{From: &from, Direction: &expense})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c", "d"}, ids(filtered))

	none, err := repo.FindTransactions(ctx, "someone-else", domain.LedgerFilter{})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestLedgerRepository_RejectsDuplicateIDs(t *testing.T) {
	repo := seeded(t)

	err := repo.AppendTransaction(context.Background(), txn("a", 5, domain.Expense))

	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestLedgerRepository_ListTransactionsPages(t *testing.T) {
	repo := seeded(t)
	ctx := context.Background()

	page1, next, err := repo.ListTransactions(ctx, "user-1", 3, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "c", "b"}, ids(page1))
	require.NotNil(t, next)

	page2, next, err := repo.ListTransactions(ctx, "user-1", 3, next)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, ids(page2))
	assert.Nil(t, next)

	bad := "not-a-token"
	_, _, err = repo.ListTransactions(ctx, "user-1", 3, &bad)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestLedgerRepository_UpdateTransaction(t *testing.T) {
	repo := seeded(t)
	ctx := context.Background()

	moved := txn("a", 4, domain.Expense)
	moved.Amount = decimal.NewFromInt(250)
	require.NoError(t, repo.UpdateTransaction(ctx, moved))

	got, err := repo.FindTransactionByID(ctx, "user-1", "a")
	require.NoError(t, err)
	assert.Equal(t, domain.Expense, got.Direction)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(250)))

	all, err := repo.FindTransactions(ctx, "user-1", domain.LedgerFilter{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "a", all[3].TransactionID, "ledger stays in timestamp order")

	other := txn("a", 4, domain.Expense)
	other.UserID = "user-2"
	assert.ErrorIs(t, repo.UpdateTransaction(ctx, other), apperrors.ErrNotFound)
}

func TestLedgerRepository_DeleteTransaction(t *testing.T) {
	repo := seeded(t)
	ctx := context.Background()

	assert.ErrorIs(t, repo.DeleteTransaction(ctx, "user-2", "b"), apperrors.ErrNotFound)
	require.NoError(t, repo.DeleteTransaction(ctx, "user-1", "b"))
	assert.ErrorIs(t, repo.DeleteTransaction(ctx, "user-1", "b"), apperrors.ErrNotFound)

	_, err := repo.FindTransactionByID(ctx, "user-1", "b")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	all, err := repo.FindTransactions(ctx, "user-1", domain.LedgerFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	require.NoError(t, repo.AppendTransaction(ctx, txn("b", 5, domain.Income)), "a deleted ID can be reused")
}

func TestConfigRepository(t *testing.T) {
	repo := memory.NewConfigRepository()
	ctx := context.Background()

	_, err := repo.FindConfigByUserID(ctx, "user-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	created := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	cfg := domain.FinancialConfig{UserID: "user-1", MonthlyIncome: decimal.NewFromInt(50000), EmergencyBufferPercent: 15}
	cfg.CreatedAt, cfg.CreatedBy = created, "user-1"
	require.NoError(t, repo.SaveConfig(ctx, cfg))

	update := domain.FinancialConfig{UserID: "user-1", MonthlyIncome: decimal.NewFromInt(60000), EmergencyBufferPercent: 10}
	update.CreatedAt = time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.SaveConfig(ctx, update))

	got, err := repo.FindConfigByUserID(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, got.MonthlyIncome.Equal(decimal.NewFromInt(60000)))
	assert.True(t, created.Equal(got.CreatedAt), "creation audit survives an update")

	require.NoError(t, repo.SaveConfig(ctx, domain.FinancialConfig{UserID: "user-0"}))
	users, err := repo.ListConfiguredUserIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"user-0", "user-1"}, users)
}
