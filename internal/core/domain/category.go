package domain

import "strings"

// DefaultEssentialCategories are the expense categories that the kill-switch never blocks
// and that count as essential spending everywhere in the engine.
var DefaultEssentialCategories = []string{"Rent", "Utilities", "Insurance", "EMI", "Groceries", "Healthcare"}

// DefaultDiscretionaryCategories are reported as blocked while the kill-switch is ORANGE or RED.
var DefaultDiscretionaryCategories = []string{"Entertainment", "Shopping", "Dining", "Travel"}

// CategoryPolicy is the single category taxonomy shared by every engine component.
// Build it once at startup and pass it down; do not compare category strings elsewhere.
type CategoryPolicy struct {
	essential     map[string]struct{}
	discretionary []string
}

// NewCategoryPolicy builds a policy. Category matching is exact after trimming spaces,
// mirroring how categories are stored.
func NewCategoryPolicy(essential, discretionary []string) CategoryPolicy {
	p := CategoryPolicy{
		essential:     make(map[string]struct{}, len(essential)),
		discretionary: append([]string(nil), discretionary...),
	}
	for _, c := range essential {
		c = strings.TrimSpace(c)
		if c != "" {
			p.essential[c] = struct{}{}
		}
	}
	return p
}

// DefaultCategoryPolicy returns the policy built from the default category lists.
func DefaultCategoryPolicy() CategoryPolicy {
	return NewCategoryPolicy(DefaultEssentialCategories, DefaultDiscretionaryCategories)
}

// IsEssential reports whether category is in the essential set.
// Empty or unknown categories are non-essential.
func (p CategoryPolicy) IsEssential(category string) bool {
	_, ok := p.essential[strings.TrimSpace(category)]
	return ok
}

// Classify maps a transaction onto the income / essential / non-essential axis.
func (p CategoryPolicy) Classify(t Transaction) Classification {
	if t.Direction == Income {
		return ClassIncome
	}
	if p.IsEssential(t.Category) {
		return ClassEssential
	}
	return ClassNonEssential
}

// DiscretionaryCategories returns the categories reported as blocked at high kill-switch levels.
func (p CategoryPolicy) DiscretionaryCategories() []string {
	return append([]string(nil), p.discretionary...)
}
