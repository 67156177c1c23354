package services

// ServiceContainer holds instances of all the application services.
// Handlers and the weekly job reach the engine only through it.
type ServiceContainer struct {
	Engine      SafetyEngineSvc
	Transaction TransactionSvcFacade
	Config      FinancialConfigSvcFacade
	Insights    InsightsSvc
}
