package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/garage_books/internal/apperrors"
)

// Source kinds used as the first segment of a SourceRef.
const (
	SourceManual        = "Manual"
	SourceExpense       = "Expense"
	SourcePurchaseOrder = "PurchaseOrder"
	SourcePayment       = "Payment"
	SourceReversal      = "Reversal"
)

// SourceRef tags the document a journal entry originated from.
// The conventional shape is "Kind:Document[@Vendor]", e.g. "Expense:EXP-001@Shell".
type SourceRef string

// NewSourceRef builds a SourceRef from its parts. vendor may be empty.
func NewSourceRef(kind, document, vendor string) SourceRef {
	ref := kind + ":" + document
	if vendor != "" {
		ref += "@" + vendor
	}
	return SourceRef(ref)
}

// ValidateSourceRefParts rejects document and vendor values that would not
// read back unchanged from a SourceRef.
func ValidateSourceRefParts(document, vendor string) error {
	if strings.Contains(document, "@") {
		return fmt.Errorf("%w: document reference %q must not contain '@'", apperrors.ErrValidation, document)
	}
	if strings.Contains(vendor, "@") {
		return fmt.Errorf("%w: vendor %q must not contain '@'", apperrors.ErrValidation, vendor)
	}
	return nil
}

// Kind returns the segment before the first colon, or "" when there is none.
func (r SourceRef) Kind() string {
	kind, _, found := strings.Cut(string(r), ":")
	if !found {
		return ""
	}
	return kind
}

// Document returns the document identifier between the kind and the vendor tag.
func (r SourceRef) Document() string {
	_, rest, found := strings.Cut(string(r), ":")
	if !found {
		rest = string(r)
	}
	doc, _, _ := strings.Cut(rest, "@")
	return doc
}

// Vendor returns the vendor tag after the last '@', or "".
func (r SourceRef) Vendor() string {
	i := strings.LastIndex(string(r), "@")
	if i < 0 {
		return ""
	}
	return string(r)[i+1:]
}

// HasVendor reports whether the vendor tag equals vendor, ignoring case.
func (r SourceRef) HasVendor(vendor string) bool {
	v := r.Vendor()
	return v != "" && strings.EqualFold(v, strings.TrimSpace(vendor))
}

// JournalLine is a single debit or credit against one account.
// Exactly one of Debit and Credit is nonzero; both are non-negative.
type JournalLine struct {
	AccountID string `json:"accountID"`
	Debit     Money  `json:"debit"`
	Credit    Money  `json:"credit"`
}

// DebitLine returns a line debiting accountID by amount.
func DebitLine(accountID string, amount Money) JournalLine {
	return JournalLine{AccountID: accountID, Debit: amount, Credit: Zero(amount.Currency)}
}

// CreditLine returns a line crediting accountID by amount.
func CreditLine(accountID string, amount Money) JournalLine {
	return JournalLine{AccountID: accountID, Debit: Zero(amount.Currency), Credit: amount}
}

// IsDebit reports whether the line is on the debit side.
func (l JournalLine) IsDebit() bool {
	return !l.Debit.IsZero()
}

// Amount returns the nonzero side of the line.
func (l JournalLine) Amount() Money {
	if l.IsDebit() {
		return l.Debit
	}
	return l.Credit
}

// Currency returns the line's currency.
func (l JournalLine) Currency() string {
	if l.Debit.Currency != "" {
		return l.Debit.Currency
	}
	return l.Credit.Currency
}

// Swapped returns the line with debit and credit exchanged.
func (l JournalLine) Swapped() JournalLine {
	return JournalLine{AccountID: l.AccountID, Debit: l.Credit, Credit: l.Debit}
}

// Validate checks the shape of a single line.
func (l JournalLine) Validate() error {
	if l.Debit.IsNegative() || l.Credit.IsNegative() {
		return fmt.Errorf("%w: line for account %s has a negative amount", apperrors.ErrValidation, l.AccountID)
	}
	if l.Debit.IsZero() == l.Credit.IsZero() {
		return fmt.Errorf("%w: line for account %s must have exactly one of debit or credit", apperrors.ErrValidation, l.AccountID)
	}
	if l.Debit.Currency != "" && l.Credit.Currency != "" && !l.Debit.SameCurrency(l.Credit) {
		return fmt.Errorf("%w: line for account %s mixes currencies %s and %s",
			apperrors.ErrValidation, l.AccountID, l.Debit.Currency, l.Credit.Currency)
	}
	if l.Amount().Currency == "" {
		return fmt.Errorf("%w: line for account %s has no currency", apperrors.ErrValidation, l.AccountID)
	}
	return nil
}

// SideTotals holds the debit and credit sums of one currency, in minor units.
type SideTotals struct {
	Debits  int64
	Credits int64
}

// TotalsByCurrency sums debits and credits per currency. A sum that leaves
// the int64 range fails with ErrValidation.
func TotalsByCurrency(lines []JournalLine) (map[string]SideTotals, error) {
	totals := make(map[string]SideTotals)
	for _, l := range lines {
		cur := l.Currency()
		t := totals[cur]
		var err error
		if t.Debits, err = AddMinor(t.Debits, l.Debit.Amount); err != nil {
			return nil, fmt.Errorf("%s debits: %w", cur, err)
		}
		if t.Credits, err = AddMinor(t.Credits, l.Credit.Amount); err != nil {
			return nil, fmt.Errorf("%s credits: %w", cur, err)
		}
		totals[cur] = t
	}
	return totals, nil
}

// CheckBalance returns an *apperrors.UnbalancedEntryError for the first
// currency (alphabetically) whose debits and credits differ.
func CheckBalance(lines []JournalLine) error {
	totals, err := TotalsByCurrency(lines)
	if err != nil {
		return err
	}
	currencies := make([]string, 0, len(totals))
	for cur := range totals {
		currencies = append(currencies, cur)
	}
	sort.Strings(currencies)
	for _, cur := range currencies {
		t := totals[cur]
		if t.Debits != t.Credits {
			return &apperrors.UnbalancedEntryError{
				Currency:  cur,
				Debits:    t.Debits,
				Credits:   t.Credits,
				Imbalance: t.Debits - t.Credits,
			}
		}
	}
	return nil
}

// JournalLineDraft is a line as submitted by a caller. The account may be
// referenced by ID or, when AccountID is empty, by code.
type JournalLineDraft struct {
	AccountID   string
	AccountCode string
	Debit       Money
	Credit      Money
}

// Ref returns the reference used to resolve the account.
func (d JournalLineDraft) Ref() string {
	if d.AccountID != "" {
		return d.AccountID
	}
	return d.AccountCode
}

// JournalEntryDraft is an entry awaiting validation and posting.
type JournalEntryDraft struct {
	Date        time.Time
	Description string
	SourceRef   SourceRef
	Lines       []JournalLineDraft
}

// JournalEntry is a posted, balanced and immutable transaction.
type JournalEntry struct {
	EntryID     string        `json:"entryID"`
	Sequence    uint64        `json:"sequence"` // posting order, starting at 1
	Date        time.Time     `json:"date"`     // business date, UTC midnight
	PostedAt    time.Time     `json:"postedAt"`
	Description string        `json:"description"`
	SourceRef   SourceRef     `json:"sourceRef"`
	ReversalOf  string        `json:"reversalOf,omitempty"`
	Lines       []JournalLine `json:"lines"`
}

// Touches reports whether any line of the entry hits accountID.
func (e JournalEntry) Touches(accountID string) bool {
	for _, l := range e.Lines {
		if l.AccountID == accountID {
			return true
		}
	}
	return false
}

// Clone returns a copy whose Lines slice is not shared.
func (e JournalEntry) Clone() JournalEntry {
	lines := make([]JournalLine, len(e.Lines))
	copy(lines, e.Lines)
	e.Lines = lines
	return e
}

// ReverseOptions customises a reversal entry. Zero values fall back to
// today's date and a generated description.
type ReverseOptions struct {
	Date        time.Time
	Description string
}

// EntryFilter selects entries by inclusive business-date bounds and account.
// Zero values disable the corresponding bound.
type EntryFilter struct {
	DateFrom  time.Time
	DateTo    time.Time
	AccountID string
}

// Matches reports whether e passes the filter.
func (f EntryFilter) Matches(e JournalEntry) bool {
	if !f.DateFrom.IsZero() && e.Date.Before(DateOnly(f.DateFrom)) {
		return false
	}
	if !f.DateTo.IsZero() && e.Date.After(DateOnly(f.DateTo)) {
		return false
	}
	if f.AccountID != "" && !e.Touches(f.AccountID) {
		return false
	}
	return true
}

// DateOnly returns midnight UTC of the calendar day t falls on in its own location.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
