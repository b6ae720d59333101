package repositories

import (
	"context"
	"iter"
	"time"

	"github.com/SscSPs/garage_books/internal/core/domain"
	"github.com/SscSPs/garage_books/internal/core/ledger"
)

// AccountLedger defines chart-of-accounts operations backed by the ledger.
type AccountLedger interface {
	CreateAccount(spec domain.NewAccount) (domain.Account, error)
	Deactivate(accountID string) (domain.Account, error)
	Reactivate(accountID string) (domain.Account, error)
	GetAccount(accountID string) (domain.Account, error)
	GetAccountByCode(code string) (domain.Account, error)
	ListAccounts(filter domain.AccountFilter) []domain.Account
	GetBalance(accountID string, asOf time.Time) (domain.Money, error)
}

// JournalLedger defines posting and journal read operations.
type JournalLedger interface {
	Post(draft domain.JournalEntryDraft) (domain.JournalEntry, error)
	Reverse(entryID string, opts domain.ReverseOptions) (domain.JournalEntry, error)
	GetEntry(entryID string) (domain.JournalEntry, error)
	ReversedBy(entryID string) (string, bool)
	ListEntries(filter domain.EntryFilter) iter.Seq[domain.JournalEntry]
}

// LedgerSnapshotter provides point-in-time views for reporting.
type LedgerSnapshotter interface {
	Snapshot() ledger.Snapshot
}

// LedgerFacade combines account, journal and snapshot operations.
type LedgerFacade interface {
	AccountLedger
	JournalLedger
	LedgerSnapshotter
}

// LedgerWriter persists ledger changes durably.
type LedgerWriter interface {
	// SaveAccount inserts or updates an account row.
	SaveAccount(ctx context.Context, acc domain.Account) error
	// SaveEntry inserts a journal entry and its lines atomically.
	SaveEntry(ctx context.Context, entry domain.JournalEntry) error
}

// LedgerReader loads durable ledger state.
type LedgerReader interface {
	// LoadLedger returns all accounts in creation order and all entries in sequence order.
	LoadLedger(ctx context.Context) ([]domain.Account, []domain.JournalEntry, error)
}

// LedgerRepositoryFacade combines durable read and write operations.
type LedgerRepositoryFacade interface {
	LedgerWriter
	LedgerReader
}
