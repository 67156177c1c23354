package engine

import (
	"sort"
	"strings"

	"github.com/SscSPs/money_coach_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

const uncategorized = "Uncategorized"

// Ledger is an immutable, time-ordered snapshot of one user's transactions
// together with the category policy used to classify them.
type Ledger struct {
	txns   []domain.Transaction
	policy domain.CategoryPolicy
}

// Partition splits a ledger along the engine's classification axis.
type Partition struct {
	Income       []domain.Transaction
	Essential    []domain.Transaction
	NonEssential []domain.Transaction
}

// NewLedger copies txns and sorts them by timestamp.
func NewLedger(txns []domain.Transaction, policy domain.CategoryPolicy) *Ledger {
	cp := append([]domain.Transaction(nil), txns...)
	sort.SliceStable(cp, func(i, j int) bool {
		return cp[i].Timestamp.Before(cp[j].Timestamp)
	})
	return &Ledger{txns: cp, policy: policy}
}

// Transactions returns the ordered snapshot. Callers must not modify it.
func (l *Ledger) Transactions() []domain.Transaction { return l.txns }

func (l *Ledger) Len() int { return len(l.txns) }

func (l *Ledger) Policy() domain.CategoryPolicy { return l.policy }

// Classify delegates to the ledger's category policy.
func (l *Ledger) Classify(t domain.Transaction) domain.Classification {
	return l.policy.Classify(t)
}

// Window returns the sub-ledger whose timestamps fall inside w.
func (l *Ledger) Window(w Window) *Ledger {
	out := make([]domain.Transaction, 0, len(l.txns))
	for _, t := range l.txns {
		if w.Contains(t.Timestamp) {
			out = append(out, t)
		}
	}
	return &Ledger{txns: out, policy: l.policy}
}

// Partition groups the ledger by classification, preserving order.
func (l *Ledger) Partition() Partition {
	var p Partition
	for _, t := range l.txns {
		switch l.policy.Classify(t) {
		case domain.ClassIncome:
			p.Income = append(p.Income, t)
		case domain.ClassEssential:
			p.Essential = append(p.Essential, t)
		default:
			p.NonEssential = append(p.NonEssential, t)
		}
	}
	return p
}

// Sum adds up the amounts in w whose classification is one of classes.
// With no classes every transaction counts, unsigned.
func (l *Ledger) Sum(w Window, classes ...domain.Classification) decimal.Decimal {
	total := decimal.Zero
	for _, t := range l.txns {
		if !w.Contains(t.Timestamp) {
			continue
		}
		if len(classes) > 0 && !hasClass(classes, l.policy.Classify(t)) {
			continue
		}
		total = total.Add(t.Amount)
	}
	return total
}

// Expenses sums essential and non-essential spending in w.
func (l *Ledger) Expenses(w Window) decimal.Decimal {
	return l.Sum(w, domain.ClassEssential, domain.ClassNonEssential)
}

// Income sums income in w.
func (l *Ledger) Income(w Window) decimal.Decimal {
	return l.Sum(w, domain.ClassIncome)
}

// DailyAverage is the expense total in w divided by the window length in days.
func (l *Ledger) DailyAverage(w Window) decimal.Decimal {
	return l.Expenses(w).Div(decimal.NewFromInt(int64(w.Days())))
}

// GroupByMonth aggregates w into calendar months of w.Start's location,
// oldest first. Months without transactions are omitted.
func (l *Ledger) GroupByMonth(w Window) []domain.MonthlyBreakdown {
	loc := w.Start.Location()
	idx := map[string]int{}
	var months []domain.MonthlyBreakdown

	for _, t := range l.txns {
		if !w.Contains(t.Timestamp) {
			continue
		}
		key := monthKey(t.Timestamp.In(loc))
		i, ok := idx[key]
		if !ok {
			months = append(months, domain.MonthlyBreakdown{
				Month:        key,
				Income:       decimal.Zero,
				TotalExpense: decimal.Zero,
				Essential:    decimal.Zero,
				NonEssential: decimal.Zero,
				ByCategory:   map[string]decimal.Decimal{},
			})
			i = len(months) - 1
			idx[key] = i
		}
		m := &months[i]
		switch l.policy.Classify(t) {
		case domain.ClassIncome:
			m.Income = m.Income.Add(t.Amount)
			continue
		case domain.ClassEssential:
			m.Essential = m.Essential.Add(t.Amount)
		default:
			m.NonEssential = m.NonEssential.Add(t.Amount)
		}
		m.TotalExpense = m.TotalExpense.Add(t.Amount)
		cat := categoryLabel(t.Category)
		m.ByCategory[cat] = m.ByCategory[cat].Add(t.Amount)
	}

	sort.Slice(months, func(i, j int) bool { return months[i].Month < months[j].Month })
	return months
}

// expensesByDay totals expenses in w per calendar day of w.Start's location.
func (l *Ledger) expensesByDay(w Window) map[string]decimal.Decimal {
	loc := w.Start.Location()
	out := map[string]decimal.Decimal{}
	for _, t := range l.txns {
		if t.Direction != domain.Expense || !w.Contains(t.Timestamp) {
			continue
		}
		k := dayKey(t.Timestamp.In(loc))
		out[k] = out[k].Add(t.Amount)
	}
	return out
}

// expensesByCategory totals expenses in w per category label.
func (l *Ledger) expensesByCategory(w Window) map[string]decimal.Decimal {
	out := map[string]decimal.Decimal{}
	for _, t := range l.txns {
		if t.Direction != domain.Expense || !w.Contains(t.Timestamp) {
			continue
		}
		c := categoryLabel(t.Category)
		out[c] = out[c].Add(t.Amount)
	}
	return out
}

func categoryLabel(c string) string {
	c = strings.TrimSpace(c)
	if c == "" {
		return uncategorized
	}
	return c
}

func hasClass(classes []domain.Classification, c domain.Classification) bool {
	for _, x := range classes {
		if x == c {
			return true
		}
	}
	return false
}
