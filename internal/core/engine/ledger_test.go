package engine_test

import (
	"testing"
	"time"

	"github.com/SscSPs/money_coach_app/internal/core/domain"
	"github.com/SscSPs/money_coach_app/internal/core/engine"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// asOf is a Friday in a leap-year March.
var asOf = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

func at(month time.Month, day int) time.Time {
	return time.Date(2024, month, day, 10, 0, 0, 0, time.UTC)
}

func income(ts time.Time, amount int64) domain.Transaction {
	return txn(ts, amount, domain.Income, "Salary")
}

func expense(ts time.Time, amount int64, category string) domain.Transaction {
	return txn(ts, amount, domain.Expense, category)
}

func txn(ts time.Time, amount int64, dir domain.Direction, category string) domain.Transaction {
	return domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        "user-1",
		Timestamp:     ts,
		Amount:        decimal.NewFromInt(amount),
		Direction:     dir,
		Category:      category,
	}
}

func newLedger(txns ...domain.Transaction) *engine.Ledger {
	return engine.NewLedger(txns, domain.DefaultCategoryPolicy())
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func assertDecimal(t *testing.T, want int64, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), append([]interface{}{"want %d, got %s", want, got.String()}, msgAndArgs...)...)
}

func TestLedger_PartitionTreatsUnknownCategoryAsNonEssential(t *testing.T) {
	l := newLedger(
		income(at(time.March, 1), 1000),
		expense(at(time.March, 2), 100, "Rent"),
		expense(at(time.March, 3), 50, ""),
		expense(at(time.March, 4), 70, "Something new"),
	)

	p := l.Partition()

	assert.Len(t, p.Income, 1)
	assert.Len(t, p.Essential, 1)
	assert.Len(t, p.NonEssential, 2)
}

func TestLedger_SumAndWindow(t *testing.T) {
	l := newLedger(
		expense(at(time.March, 14), 300, "Shopping"),
		expense(at(time.March, 1), 200, "Groceries"),
		income(at(time.February, 1), 5000),
		expense(at(time.January, 5), 999, "Dining"),
	)
	w := engine.Window{Start: at(time.February, 1), End: asOf}

	assertDecimal(t, 500, l.Expenses(w))
	assertDecimal(t, 5000, l.Income(w))
	assertDecimal(t, 200, l.Sum(w, domain.ClassEssential))
	assertDecimal(t, 5500, l.Sum(w))
	assert.Equal(t, 3, l.Window(w).Len())

	txns := l.Transactions()
	require.Len(t, txns, 4)
	assert.True(t, txns[0].Timestamp.Before(txns[3].Timestamp), "snapshot is time ordered")
}

func TestLedger_DailyAverage(t *testing.T) {
	l := newLedger(
		expense(at(time.March, 2), 1500, "Rent"),
		expense(at(time.March, 10), 1500, "Shopping"),
		income(at(time.March, 1), 10000),
	)

	avg := l.DailyAverage(engine.TrailingDays(asOf, 30))

	assertDecimal(t, 100, avg)
}

func TestLedger_GroupByMonth(t *testing.T) {
	l := newLedger(
		expense(at(time.March, 2), 100, "Rent"),
		expense(at(time.March, 3), 40, "Dining"),
		expense(at(time.March, 4), 60, ""),
		income(at(time.February, 1), 1000),
		expense(at(time.February, 5), 25, "Shopping"),
	)

	months := l.GroupByMonth(engine.TrailingMonths(asOf, 3))

	require.Len(t, months, 2)
	assert.Equal(t, "2024-02", months[0].Month)
	assert.Equal(t, "2024-03", months[1].Month)

	feb, mar := months[0], months[1]
	assertDecimal(t, 1000, feb.Income)
	assertDecimal(t, 25, feb.NonEssential)
	assertDecimal(t, 200, mar.TotalExpense)
	assertDecimal(t, 100, mar.Essential)
	assertDecimal(t, 100, mar.NonEssential)
	assertDecimal(t, 60, mar.ByCategory["Uncategorized"])
}

func TestCurrentBalance_IndependentOfOrder(t *testing.T) {
	txns := []domain.Transaction{
		income(at(time.January, 1), 50000),
		expense(at(time.January, 2), 15000, "Rent"),
		expense(at(time.February, 20), 2500, "Dining"),
		income(at(time.March, 1), 1200),
		expense(at(time.March, 5), 40000, "Travel"),
	}
	reversed := make([]domain.Transaction, len(txns))
	for i, tx := range txns {
		reversed[len(txns)-1-i] = tx
	}

	want := dec(50000 + 1200 - 15000 - 2500 - 40000)
	assert.True(t, want.Equal(engine.CurrentBalance(newLedger(txns...))))
	assert.True(t, want.Equal(engine.CurrentBalance(newLedger(reversed...))))
}

func TestCurrentBalance_CanBeNegative(t *testing.T) {
	l := newLedger(expense(at(time.March, 1), 500, "Shopping"))

	assertDecimal(t, -500, engine.CurrentBalance(l))
}
