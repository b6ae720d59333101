package pgsql

import (
	"database/sql"

	portsrepo "github.com/SscSPs/garage_books/internal/core/ports/repositories"
)

// NewLedgerRepository returns the Postgres-backed ledger store.
func NewLedgerRepository(db *sql.DB) portsrepo.LedgerRepositoryFacade {
	return newLedgerRepository(db)
}
