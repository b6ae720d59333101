package ledger

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/SscSPs/garage_books/internal/apperrors"
	"github.com/SscSPs/garage_books/internal/core/domain"
	"github.com/SscSPs/garage_books/internal/utils/accounting"
)

// Snapshot is a read-only view of the ledger at one instant.
type Snapshot struct {
	Accounts []domain.Account // creation order
	Entries  []domain.JournalEntry
	byID     map[string]int
}

// Snapshot captures accounts and entries without holding the lock afterwards.
// Entries share backing storage with the ledger; callers must not modify them.
func (l *Ledger) Snapshot() Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()

	snap := Snapshot{
		Accounts: make([]domain.Account, 0, len(l.order)),
		Entries:  l.entries[:len(l.entries):len(l.entries)],
		byID:     make(map[string]int, len(l.order)),
	}
	for i, id := range l.order {
		snap.Accounts = append(snap.Accounts, *l.accounts[id])
		snap.byID[id] = i
	}
	return snap
}

// Account returns the snapshot's copy of an account.
func (s Snapshot) Account(id string) (domain.Account, bool) {
	i, ok := s.byID[id]
	if !ok {
		return domain.Account{}, false
	}
	return s.Accounts[i], true
}

// BalancesAsOf replays the journal from opening balances, including entries
// dated on or before asOf. A zero asOf replays everything.
func (s Snapshot) BalancesAsOf(asOf time.Time) (map[string]domain.Money, error) {
	cutoff := time.Time{}
	if !asOf.IsZero() {
		cutoff = domain.DateOnly(asOf)
	}
	amounts := make(map[string]int64, len(s.Accounts))
	for _, acc := range s.Accounts {
		amounts[acc.AccountID] = acc.OpeningBalance.Amount
	}
	for _, e := range s.Entries {
		if !cutoff.IsZero() && e.Date.After(cutoff) {
			continue
		}
		for _, line := range e.Lines {
			acc, ok := s.Account(line.AccountID)
			if !ok {
				return nil, fmt.Errorf("%w: entry %s references account %s", apperrors.ErrInternal, e.EntryID, line.AccountID)
			}
			signed, err := accounting.SignedAmount(line, acc.AccountType)
			if err != nil {
				return nil, err
			}
			if amounts[acc.AccountID], err = domain.AddMinor(amounts[acc.AccountID], signed); err != nil {
				return nil, fmt.Errorf("entry %s: %w", e.EntryID, err)
			}
		}
	}

	out := make(map[string]domain.Money, len(amounts))
	for _, acc := range s.Accounts {
		out[acc.AccountID] = domain.NewMoney(amounts[acc.AccountID], acc.CurrencyCode)
	}
	return out, nil
}

// Verify replays the journal and reports every running balance that differs
// from the replayed one, plus any stored entry that does not balance.
func (l *Ledger) Verify() error {
	snap := l.Snapshot()
	var errs []error

	var prevSeq uint64
	for _, e := range snap.Entries {
		if e.Sequence <= prevSeq {
			errs = append(errs, fmt.Errorf("entry %s: sequence %d not after %d", e.EntryID, e.Sequence, prevSeq))
		}
		prevSeq = e.Sequence
		if err := domain.CheckBalance(e.Lines); err != nil {
			errs = append(errs, fmt.Errorf("entry %s: %w", e.EntryID, err))
		}
	}

	replayed, err := snap.BalancesAsOf(time.Time{})
	if err != nil {
		return errors.Join(append(errs, err)...)
	}
	for _, acc := range snap.Accounts {
		if got := replayed[acc.AccountID]; got.Amount != acc.Balance.Amount {
			errs = append(errs, fmt.Errorf("account %s: running balance %s, replayed %s", acc.Code, acc.Balance, got))
		}
	}
	return errors.Join(errs...)
}

// Restore loads previously recorded state into an empty ledger. Entries are
// re-validated and applied in sequence order; the recorder is not called.
// On error the ledger stays empty.
func (l *Ledger) Restore(accounts []domain.Account, entries []domain.JournalEntry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.accounts) != 0 || len(l.entries) != 0 {
		return fmt.Errorf("%w: restore requires an empty ledger", apperrors.ErrConflict)
	}

	active := make(map[string]bool, len(accounts))
	for _, acc := range accounts {
		if _, dup := l.byCode[acc.Code]; dup {
			l.resetLocked()
			return &apperrors.DuplicateCodeError{Code: acc.Code}
		}
		restored := acc
		restored.Balance = restored.OpeningBalance
		restored.IsActive = true
		active[acc.AccountID] = acc.IsActive
		l.accounts[acc.AccountID] = &restored
		l.byCode[acc.Code] = acc.AccountID
		l.order = append(l.order, acc.AccountID)
	}

	sorted := slices.Clone(entries)
	slices.SortFunc(sorted, func(a, b domain.JournalEntry) int {
		switch {
		case a.Sequence < b.Sequence:
			return -1
		case a.Sequence > b.Sequence:
			return 1
		}
		return 0
	})
	for _, e := range sorted {
		if e.Sequence <= l.seq {
			l.resetLocked()
			return fmt.Errorf("%w: entry %s has sequence %d, expected > %d", apperrors.ErrValidation, e.EntryID, e.Sequence, l.seq)
		}
		if err := domain.CheckBalance(e.Lines); err != nil {
			l.resetLocked()
			return fmt.Errorf("restoring entry %s: %w", e.EntryID, err)
		}
		deltas := make(map[string]int64, len(e.Lines))
		for _, line := range e.Lines {
			acc, ok := l.accounts[line.AccountID]
			if !ok {
				l.resetLocked()
				return &apperrors.UnknownAccountError{Ref: line.AccountID}
			}
			signed, err := accounting.SignedAmount(line, acc.AccountType)
			if err != nil {
				l.resetLocked()
				return err
			}
			if deltas[acc.AccountID], err = domain.AddMinor(deltas[acc.AccountID], signed); err != nil {
				l.resetLocked()
				return fmt.Errorf("restoring entry %s: %w", e.EntryID, err)
			}
		}
		balances, err := l.nextBalances(deltas)
		if err != nil {
			l.resetLocked()
			return fmt.Errorf("restoring entry %s: %w", e.EntryID, err)
		}
		l.appendLocked(e.Clone(), balances)
	}

	for id, isActive := range active {
		acc := l.accounts[id]
		acc.IsActive = isActive
	}
	// appendLocked bumps LastUpdatedAt; keep the recorded audit fields.
	for _, acc := range accounts {
		l.accounts[acc.AccountID].AuditFields = acc.AuditFields
	}
	return nil
}

func (l *Ledger) resetLocked() {
	l.accounts = make(map[string]*domain.Account)
	l.byCode = make(map[string]string)
	l.order = nil
	l.entries = nil
	l.byEntryID = make(map[string]int)
	l.reversedBy = make(map[string]string)
	l.seq = 0
}
