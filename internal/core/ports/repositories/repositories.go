package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// Both the Postgres and the Mongo backends fill it.
type RepositoryProvider struct {
	LedgerRepo LedgerRepositoryFacade
	ConfigRepo FinancialConfigRepositoryFacade
}
