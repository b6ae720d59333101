package ledger

import (
	"fmt"
	"iter"
	"strings"

	"github.com/SscSPs/garage_books/internal/apperrors"
	"github.com/SscSPs/garage_books/internal/core/domain"
	"github.com/SscSPs/garage_books/internal/utils/accounting"
)

// Post validates a draft and appends it to the journal, updating the
// balances of every account it touches. Either the whole entry is applied
// or nothing is.
func (l *Ledger) Post(draft domain.JournalEntryDraft) (domain.JournalEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.postLocked(draft, "")
}

// Reverse posts a new entry that swaps the debits and credits of entryID.
// The original entry is left untouched.
func (l *Ledger) Reverse(entryID string, opts domain.ReverseOptions) (domain.JournalEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx, ok := l.byEntryID[entryID]
	if !ok {
		return domain.JournalEntry{}, fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, entryID)
	}
	orig := l.entries[idx]
	if orig.ReversalOf != "" {
		return domain.JournalEntry{}, fmt.Errorf("%w: entry %s is itself a reversal of %s",
			apperrors.ErrConflict, entryID, orig.ReversalOf)
	}
	if by, done := l.reversedBy[entryID]; done {
		return domain.JournalEntry{}, fmt.Errorf("%w: entry %s was already reversed by %s",
			apperrors.ErrConflict, entryID, by)
	}

	desc := strings.TrimSpace(opts.Description)
	if desc == "" {
		desc = "Reversal of " + entryID
		if orig.Description != "" {
			desc += ": " + orig.Description
		}
	}
	draft := domain.JournalEntryDraft{
		Date:        opts.Date,
		Description: desc,
		SourceRef:   domain.NewSourceRef(domain.SourceReversal, entryID, orig.SourceRef.Vendor()),
		Lines:       make([]domain.JournalLineDraft, 0, len(orig.Lines)),
	}
	for _, line := range orig.Lines {
		swapped := line.Swapped()
		draft.Lines = append(draft.Lines, domain.JournalLineDraft{
			AccountID: swapped.AccountID,
			Debit:     swapped.Debit,
			Credit:    swapped.Credit,
		})
	}
	return l.postLocked(draft, entryID)
}

func (l *Ledger) postLocked(draft domain.JournalEntryDraft, reversalOf string) (domain.JournalEntry, error) {
	if len(draft.Lines) < 2 {
		return domain.JournalEntry{}, fmt.Errorf("%w: a journal entry needs at least two lines, got %d",
			apperrors.ErrValidation, len(draft.Lines))
	}

	lines := make([]domain.JournalLine, 0, len(draft.Lines))
	deltas := make(map[string]int64, len(draft.Lines))
	for i, d := range draft.Lines {
		ref := strings.TrimSpace(d.Ref())
		if ref == "" {
			return domain.JournalEntry{}, fmt.Errorf("%w: line %d has no account reference", apperrors.ErrValidation, i+1)
		}
		acc := l.resolve(ref)
		if acc == nil {
			return domain.JournalEntry{}, &apperrors.UnknownAccountError{Ref: ref}
		}

		line := normalizeLine(domain.JournalLine{AccountID: acc.AccountID, Debit: d.Debit, Credit: d.Credit})
		if err := line.Validate(); err != nil {
			return domain.JournalEntry{}, fmt.Errorf("line %d: %w", i+1, err)
		}
		if !acc.IsActive {
			return domain.JournalEntry{}, fmt.Errorf("%w: account %s (%s) is inactive", apperrors.ErrValidation, acc.Code, acc.AccountID)
		}
		if !strings.EqualFold(line.Currency(), acc.CurrencyCode) {
			return domain.JournalEntry{}, fmt.Errorf("%w: line %d is in %s but account %s is in %s",
				apperrors.ErrValidation, i+1, line.Currency(), acc.Code, acc.CurrencyCode)
		}

		signed, err := accounting.SignedAmount(line, acc.AccountType)
		if err != nil {
			return domain.JournalEntry{}, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		if deltas[acc.AccountID], err = domain.AddMinor(deltas[acc.AccountID], signed); err != nil {
			return domain.JournalEntry{}, fmt.Errorf("line %d: %w", i+1, err)
		}
		lines = append(lines, line)
	}

	if err := domain.CheckBalance(lines); err != nil {
		return domain.JournalEntry{}, err
	}
	balances, err := l.nextBalances(deltas)
	if err != nil {
		return domain.JournalEntry{}, err
	}

	now := l.now()
	date := draft.Date
	if date.IsZero() {
		date = now
	}
	entry := domain.JournalEntry{
		EntryID:     l.ids.EntryID(),
		Sequence:    l.seq + 1,
		Date:        domain.DateOnly(date),
		PostedAt:    now.UTC(),
		Description: strings.TrimSpace(draft.Description),
		SourceRef:   domain.SourceRef(strings.TrimSpace(string(draft.SourceRef))),
		ReversalOf:  reversalOf,
		Lines:       lines,
	}
	if err := l.record(func(r Recorder) error { return r.RecordEntry(entry) }); err != nil {
		return domain.JournalEntry{}, err
	}

	l.appendLocked(entry, balances)
	return entry.Clone(), nil
}

// nextBalances returns the running balances after applying deltas, failing
// with ErrValidation when one would leave the int64 range.
func (l *Ledger) nextBalances(deltas map[string]int64) (map[string]int64, error) {
	balances := make(map[string]int64, len(deltas))
	for id, delta := range deltas {
		acc := l.accounts[id]
		next, err := domain.AddMinor(acc.Balance.Amount, delta)
		if err != nil {
			return nil, fmt.Errorf("balance of account %s: %w", acc.Code, err)
		}
		balances[id] = next
	}
	return balances, nil
}

// appendLocked applies an already validated entry and its new balances.
func (l *Ledger) appendLocked(entry domain.JournalEntry, balances map[string]int64) {
	l.seq = entry.Sequence
	l.byEntryID[entry.EntryID] = len(l.entries)
	l.entries = append(l.entries, entry)
	if entry.ReversalOf != "" {
		l.reversedBy[entry.ReversalOf] = entry.EntryID
	}
	for id, balance := range balances {
		acc := l.accounts[id]
		acc.Balance = domain.NewMoney(balance, acc.CurrencyCode)
		acc.LastUpdatedAt = entry.PostedAt
	}
}

// resolve looks an account up by ID first, then by code.
func (l *Ledger) resolve(ref string) *domain.Account {
	if acc, ok := l.accounts[ref]; ok {
		return acc
	}
	if id, ok := l.byCode[ref]; ok {
		return l.accounts[id]
	}
	return nil
}

// normalizeLine tags an empty zero side with the other side's currency.
func normalizeLine(line domain.JournalLine) domain.JournalLine {
	if line.Debit.Currency == "" && line.Debit.IsZero() {
		line.Debit = domain.Zero(line.Credit.Currency)
	}
	if line.Credit.Currency == "" && line.Credit.IsZero() {
		line.Credit = domain.Zero(line.Debit.Currency)
	}
	line.Debit.Currency = strings.ToUpper(line.Debit.Currency)
	line.Credit.Currency = strings.ToUpper(line.Credit.Currency)
	return line
}

// GetEntry returns a posted entry by ID.
func (l *Ledger) GetEntry(entryID string) (domain.JournalEntry, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	idx, ok := l.byEntryID[entryID]
	if !ok {
		return domain.JournalEntry{}, fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, entryID)
	}
	return l.entries[idx].Clone(), nil
}

// ReversedBy returns the ID of the entry reversing entryID, if any.
func (l *Ledger) ReversedBy(entryID string) (string, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	id, ok := l.reversedBy[entryID]
	return id, ok
}

// ListEntries returns the entries matching filter in posting order.
// The journal is captured when ListEntries is called; ranging over the
// result again replays the same entries.
func (l *Ledger) ListEntries(filter domain.EntryFilter) iter.Seq[domain.JournalEntry] {
	l.mu.RLock()
	entries := l.entries[:len(l.entries):len(l.entries)]
	l.mu.RUnlock()

	return func(yield func(domain.JournalEntry) bool) {
		for _, e := range entries {
			if !filter.Matches(e) {
				continue
			}
			if !yield(e.Clone()) {
				return
			}
		}
	}
}
