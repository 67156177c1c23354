package memory

import portsrepo "github.com/SscSPs/money_coach_app/internal/core/ports/repositories"

// NewRepositoryProvider returns a provider over fresh in-memory stores.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		LedgerRepo: NewLedgerRepository(),
		ConfigRepo: NewConfigRepository(),
	}
}
