package repositories

// RepositoryProvider holds all repository interfaces needed by services.
type RepositoryProvider struct {
	LedgerRepo   LedgerRepositoryFacade
	QuoteRepo    QuoteRepositoryFacade
	ContractRepo ContractRepositoryFacade
	TaskRepo     TaskRepositoryFacade
	UserRepo     UserRepositoryFacade
}
