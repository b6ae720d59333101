// Package ledger holds the in-memory double-entry ledger. Post is the only
// path that changes balances; every other operation reads.
package ledger

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/garage_books/internal/apperrors"
	"github.com/SscSPs/garage_books/internal/core/domain"
	"github.com/SscSPs/garage_books/internal/ids"
)

// Recorder persists ledger changes before they become visible.
// A failing Recorder rejects the change.
type Recorder interface {
	RecordAccount(acc domain.Account) error
	RecordEntry(entry domain.JournalEntry) error
}

// Ledger owns the chart of accounts and the append-only journal.
// Writers are serialized; readers work on snapshots.
type Ledger struct {
	mu       sync.RWMutex
	now      func() time.Time
	ids      ids.Generator
	recorder Recorder

	accounts   map[string]*domain.Account
	byCode     map[string]string
	order      []string
	entries    []domain.JournalEntry
	byEntryID  map[string]int
	reversedBy map[string]string
	seq        uint64
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// WithRecorder installs a durable recorder consulted before every change.
func WithRecorder(r Recorder) Option {
	return func(l *Ledger) { l.recorder = r }
}

// WithIDs overrides the identifier generator.
func WithIDs(g ids.Generator) Option {
	return func(l *Ledger) { l.ids = g }
}

// New creates an empty ledger.
func New(opts ...Option) *Ledger {
	l := &Ledger{
		now:        time.Now,
		ids:        ids.NewGenerator(),
		accounts:   make(map[string]*domain.Account),
		byCode:     make(map[string]string),
		byEntryID:  make(map[string]int),
		reversedBy: make(map[string]string),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// CreateAccount opens a new account whose balance starts at its opening balance.
func (l *Ledger) CreateAccount(spec domain.NewAccount) (domain.Account, error) {
	spec.Code = strings.TrimSpace(spec.Code)
	spec.Name = strings.TrimSpace(spec.Name)
	spec.CurrencyCode = strings.ToUpper(strings.TrimSpace(spec.CurrencyCode))

	if spec.Code == "" {
		return domain.Account{}, fmt.Errorf("%w: account code is required", apperrors.ErrValidation)
	}
	if spec.Name == "" {
		return domain.Account{}, fmt.Errorf("%w: account name is required", apperrors.ErrValidation)
	}
	if !spec.AccountType.Valid() {
		return domain.Account{}, fmt.Errorf("%w: invalid account type %q", apperrors.ErrValidation, spec.AccountType)
	}
	if !domain.IsKnownCategory(spec.Category) {
		return domain.Account{}, fmt.Errorf("%w: unknown account category %q", apperrors.ErrValidation, spec.Category)
	}
	if len(spec.CurrencyCode) != 3 {
		return domain.Account{}, fmt.Errorf("%w: currency must be a 3-letter code, got %q", apperrors.ErrValidation, spec.CurrencyCode)
	}
	opening := spec.OpeningBalance
	if opening.Currency == "" {
		opening = domain.NewMoney(opening.Amount, spec.CurrencyCode)
	}
	if !strings.EqualFold(opening.Currency, spec.CurrencyCode) {
		return domain.Account{}, fmt.Errorf("%w: opening balance currency %s does not match account currency %s",
			apperrors.ErrValidation, opening.Currency, spec.CurrencyCode)
	}
	if opening.IsNegative() {
		return domain.Account{}, fmt.Errorf("%w: opening balance must be >= 0", apperrors.ErrValidation)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.byCode[spec.Code]; exists {
		return domain.Account{}, &apperrors.DuplicateCodeError{Code: spec.Code}
	}

	now := l.now().UTC()
	acc := domain.Account{
		AccountID:      l.ids.AccountID(),
		Code:           spec.Code,
		Name:           spec.Name,
		AccountType:    spec.AccountType,
		Category:       spec.Category,
		CurrencyCode:   spec.CurrencyCode,
		Description:    spec.Description,
		OpeningBalance: opening,
		Balance:        opening,
		IsActive:       true,
		AuditFields:    domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	if err := l.record(func(r Recorder) error { return r.RecordAccount(acc) }); err != nil {
		return domain.Account{}, err
	}

	l.accounts[acc.AccountID] = &acc
	l.byCode[acc.Code] = acc.AccountID
	l.order = append(l.order, acc.AccountID)
	return acc, nil
}

// Deactivate marks an account inactive. A nonzero balance does not block it.
func (l *Ledger) Deactivate(accountID string) (domain.Account, error) {
	return l.setActive(accountID, false)
}

// Reactivate marks an inactive account active again.
func (l *Ledger) Reactivate(accountID string) (domain.Account, error) {
	return l.setActive(accountID, true)
}

func (l *Ledger) setActive(accountID string, active bool) (domain.Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	acc, ok := l.accounts[accountID]
	if !ok {
		return domain.Account{}, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}
	if acc.IsActive == active {
		return *acc, nil
	}
	updated := *acc
	updated.IsActive = active
	updated.LastUpdatedAt = l.now().UTC()
	if err := l.record(func(r Recorder) error { return r.RecordAccount(updated) }); err != nil {
		return domain.Account{}, err
	}
	*acc = updated
	return updated, nil
}

// GetAccount returns a copy of the account.
func (l *Ledger) GetAccount(accountID string) (domain.Account, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	acc, ok := l.accounts[accountID]
	if !ok {
		return domain.Account{}, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}
	return *acc, nil
}

// GetAccountByCode returns a copy of the account with the given code.
func (l *Ledger) GetAccountByCode(code string) (domain.Account, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	id, ok := l.byCode[strings.TrimSpace(code)]
	if !ok {
		return domain.Account{}, fmt.Errorf("%w: account code %s", apperrors.ErrNotFound, code)
	}
	return *l.accounts[id], nil
}

// ListAccounts returns matching accounts in creation order.
func (l *Ledger) ListAccounts(filter domain.AccountFilter) []domain.Account {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]domain.Account, 0, len(l.order))
	for _, id := range l.order {
		if acc := l.accounts[id]; filter.Matches(*acc) {
			out = append(out, *acc)
		}
	}
	return out
}

// GetBalance returns the balance of an account. A zero asOf returns the
// running balance; otherwise postings dated on or before asOf are replayed.
func (l *Ledger) GetBalance(accountID string, asOf time.Time) (domain.Money, error) {
	if asOf.IsZero() {
		acc, err := l.GetAccount(accountID)
		if err != nil {
			return domain.Money{}, err
		}
		return acc.Balance, nil
	}

	snap := l.Snapshot()
	if _, ok := snap.Account(accountID); !ok {
		return domain.Money{}, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}
	balances, err := snap.BalancesAsOf(asOf)
	if err != nil {
		return domain.Money{}, err
	}
	return balances[accountID], nil
}

// Counts returns the number of accounts and posted entries.
func (l *Ledger) Counts() (accounts, entries int) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.accounts), len(l.entries)
}

// record must be called with the write lock held.
func (l *Ledger) record(fn func(Recorder) error) error {
	if l.recorder == nil {
		return nil
	}
	if err := fn(l.recorder); err != nil {
		return fmt.Errorf("recording ledger change: %w", err)
	}
	return nil
}
