package repositories

// RepositoryProvider holds the stores needed by services.
// LedgerRepo is nil when the ledger runs without durable storage.
type RepositoryProvider struct {
	Ledger     LedgerFacade
	LedgerRepo LedgerRepositoryFacade
}
