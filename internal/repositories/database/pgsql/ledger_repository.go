package pgsql

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"github.com/SscSPs/garage_books/internal/apperrors"
	"github.com/SscSPs/garage_books/internal/core/domain"
	portsrepo "github.com/SscSPs/garage_books/internal/core/ports/repositories"
)

// LedgerRepository stores the chart of accounts and the journal in Postgres.
// Running balances are not stored; they are rebuilt by replaying entries.
type LedgerRepository struct {
	BaseRepository
}

var _ portsrepo.LedgerRepositoryFacade = (*LedgerRepository)(nil)

func newLedgerRepository(db *sql.DB) *LedgerRepository {
	return &LedgerRepository{BaseRepository: BaseRepository{DB: db}}
}

const upsertAccountQuery = `
	INSERT INTO accounts (
		account_id, code, name, account_type, category, currency_code,
		description, opening_balance, is_active, created_at, last_updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	ON CONFLICT (account_id) DO UPDATE SET
		name = EXCLUDED.name,
		description = EXCLUDED.description,
		is_active = EXCLUDED.is_active,
		last_updated_at = EXCLUDED.last_updated_at;
`

// SaveAccount inserts an account or updates its mutable fields.
func (r *LedgerRepository) SaveAccount(ctx context.Context, acc domain.Account) error {
	_, err := r.DB.ExecContext(ctx, upsertAccountQuery,
		acc.AccountID,
		acc.Code,
		acc.Name,
		string(acc.AccountType),
		acc.Category,
		acc.CurrencyCode,
		acc.Description,
		acc.OpeningBalance.Amount,
		acc.IsActive,
		acc.CreatedAt,
		acc.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return &apperrors.DuplicateCodeError{Code: acc.Code}
		}
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to save account "+acc.AccountID, err)
	}
	return nil
}

const (
	insertEntryQuery = `
		INSERT INTO journal_entries (entry_id, sequence, entry_date, posted_at, description, source_ref, reversal_of)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	insertLineQuery = `
		INSERT INTO journal_lines (entry_id, line_no, account_id, debit, credit, currency_code)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
)

// SaveEntry writes an entry and its lines in one transaction.
func (r *LedgerRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(tx) // no-op after commit

	var reversalOf sql.NullString
	if entry.ReversalOf != "" {
		reversalOf = sql.NullString{String: entry.ReversalOf, Valid: true}
	}
	_, err = tx.ExecContext(ctx, insertEntryQuery,
		entry.EntryID,
		int64(entry.Sequence),
		entry.Date,
		entry.PostedAt,
		entry.Description,
		string(entry.SourceRef),
		reversalOf,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: journal entry %s or its sequence is already stored", apperrors.ErrConflict, entry.EntryID)
		}
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to insert journal entry "+entry.EntryID, err)
	}

	for i, line := range entry.Lines {
		_, err = tx.ExecContext(ctx, insertLineQuery,
			entry.EntryID,
			i+1,
			line.AccountID,
			line.Debit.Amount,
			line.Credit.Amount,
			line.Currency(),
		)
		if err != nil {
			return apperrors.NewAppError(http.StatusInternalServerError,
				fmt.Sprintf("failed to insert line %d of journal entry %s", i+1, entry.EntryID), err)
		}
	}

	return r.Commit(tx)
}

const (
	selectAccountsQuery = `
		SELECT account_id, code, name, account_type, category, currency_code,
		       description, opening_balance, is_active, created_at, last_updated_at
		FROM accounts
		ORDER BY created_at, code;
	`
	selectEntriesQuery = `
		SELECT entry_id, sequence, entry_date, posted_at, description, source_ref, reversal_of
		FROM journal_entries
		ORDER BY sequence;
	`
	selectLinesQuery = `
		SELECT entry_id, account_id, debit, credit, currency_code
		FROM journal_lines
		ORDER BY entry_id, line_no;
	`
)

// LoadLedger reads every account and entry. Account balances are left at
// the opening balance; the ledger recomputes them on restore.
func (r *LedgerRepository) LoadLedger(ctx context.Context) ([]domain.Account, []domain.JournalEntry, error) {
	accounts, err := r.loadAccounts(ctx)
	if err != nil {
		return nil, nil, err
	}
	entries, err := r.loadEntries(ctx)
	if err != nil {
		return nil, nil, err
	}
	return accounts, entries, nil
}

func (r *LedgerRepository) loadAccounts(ctx context.Context) ([]domain.Account, error) {
	rows, err := r.DB.QueryContext(ctx, selectAccountsQuery)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query accounts", err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var (
			acc         domain.Account
			accountType string
			opening     int64
		)
		if err := rows.Scan(
			&acc.AccountID,
			&acc.Code,
			&acc.Name,
			&accountType,
			&acc.Category,
			&acc.CurrencyCode,
			&acc.Description,
			&opening,
			&acc.IsActive,
			&acc.CreatedAt,
			&acc.LastUpdatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan account row", err)
		}
		acc.AccountType = domain.AccountType(accountType)
		acc.OpeningBalance = domain.NewMoney(opening, acc.CurrencyCode)
		acc.Balance = acc.OpeningBalance
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "error iterating account rows", err)
	}
	return accounts, nil
}

func (r *LedgerRepository) loadEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	rows, err := r.DB.QueryContext(ctx, selectEntriesQuery)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query journal entries", err)
	}
	defer rows.Close()

	var entries []domain.JournalEntry
	index := make(map[string]int)
	for rows.Next() {
		var (
			e          domain.JournalEntry
			seq        int64
			sourceRef  string
			reversalOf sql.NullString
		)
		if err := rows.Scan(&e.EntryID, &seq, &e.Date, &e.PostedAt, &e.Description, &sourceRef, &reversalOf); err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan journal entry row", err)
		}
		e.Sequence = uint64(seq)
		e.Date = domain.DateOnly(e.Date)
		e.PostedAt = e.PostedAt.UTC()
		e.SourceRef = domain.SourceRef(sourceRef)
		e.ReversalOf = reversalOf.String
		index[e.EntryID] = len(entries)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "error iterating journal entry rows", err)
	}
	rows.Close()

	lineRows, err := r.DB.QueryContext(ctx, selectLinesQuery)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query journal lines", err)
	}
	defer lineRows.Close()

	for lineRows.Next() {
		var (
			entryID, accountID, currency string
			debit, credit                int64
		)
		if err := lineRows.Scan(&entryID, &accountID, &debit, &credit, &currency); err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan journal line row", err)
		}
		i, ok := index[entryID]
		if !ok {
			return nil, fmt.Errorf("%w: line references missing journal entry %s", apperrors.ErrInternal, entryID)
		}
		entries[i].Lines = append(entries[i].Lines, domain.JournalLine{
			AccountID: accountID,
			Debit:     domain.NewMoney(debit, currency),
			Credit:    domain.NewMoney(credit, currency),
		})
	}
	if err := lineRows.Err(); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "error iterating journal line rows", err)
	}
	return entries, nil
}
