package domain

import (
	"math"
	"testing"
	"time"

	"github.com/SscSPs/garage_books/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceRef(t *testing.T) {
	ref := NewSourceRef(SourceExpense, "EXP-001", "Shell")
	assert.Equal(t, SourceRef("Expense:EXP-001@Shell"), ref)
	assert.Equal(t, SourceExpense, ref.Kind())
	assert.Equal(t, "EXP-001", ref.Document())
	assert.Equal(t, "Shell", ref.Vendor())
	assert.True(t, ref.HasVendor(" shell "))
	assert.False(t, ref.HasVendor("Shel"))

	plain := SourceRef("Expense:EXP-002")
	assert.Empty(t, plain.Vendor())
	assert.False(t, plain.HasVendor(""))

	assert.Empty(t, SourceRef("free text").Kind())
	assert.Equal(t, "free text", SourceRef("free text").Document())
}

func TestValidateSourceRefParts(t *testing.T) {
	assert.NoError(t, ValidateSourceRefParts("EXP-001", "Apex Motors"))
	assert.ErrorIs(t, ValidateSourceRefParts("EXP-001", "parts@acme.in"), apperrors.ErrValidation)
	assert.ErrorIs(t, ValidateSourceRefParts("EXP@001", "Shell"), apperrors.ErrValidation)
}

func TestJournalLine_Validate(t *testing.T) {
	assert.NoError(t, DebitLine("a", NewMoney(10, "INR")).Validate())
	assert.NoError(t, CreditLine("a", NewMoney(10, "INR")).Validate())

	bad := []JournalLine{
		{AccountID: "a", Debit: NewMoney(10, "INR"), Credit: NewMoney(10, "INR")},
		{AccountID: "a", Debit: Zero("INR"), Credit: Zero("INR")},
		{AccountID: "a", Debit: NewMoney(-10, "INR"), Credit: Zero("INR")},
		{AccountID: "a", Debit: NewMoney(10, "INR"), Credit: Zero("USD")},
		{AccountID: "a", Debit: NewMoney(10, "")},
	}
	for i, l := range bad {
		assert.ErrorIs(t, l.Validate(), apperrors.ErrValidation, "case %d", i)
	}
}

func TestCheckBalance(t *testing.T) {
	lines := []JournalLine{
		DebitLine("fuel", NewMoney(45000, "INR")),
		DebitLine("vat", NewMoney(8100, "INR")),
		CreditLine("cash", NewMoney(53100, "INR")),
		DebitLine("usd-exp", NewMoney(10, "USD")),
		CreditLine("usd-cash", NewMoney(10, "USD")),
	}
	require.NoError(t, CheckBalance(lines))

	lines[2] = CreditLine("cash", NewMoney(53000, "INR"))
	err := CheckBalance(lines)
	var unbalanced *apperrors.UnbalancedEntryError
	require.ErrorAs(t, err, &unbalanced)
	assert.Equal(t, "INR", unbalanced.Currency)
	assert.Equal(t, int64(100), unbalanced.Imbalance)
}

func TestCheckBalance_RejectsOverflowingTotals(t *testing.T) {
	// The debits wrap around to 1 in int64 and would match the credit.
	lines := []JournalLine{
		DebitLine("a", NewMoney(math.MaxInt64, "INR")),
		DebitLine("b", NewMoney(math.MaxInt64, "INR")),
		DebitLine("c", NewMoney(3, "INR")),
		CreditLine("d", NewMoney(1, "INR")),
	}
	err := CheckBalance(lines)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = TotalsByCurrency(lines)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestEntryFilter_InclusiveDates(t *testing.T) {
	e := JournalEntry{
		Date:  time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
		Lines: []JournalLine{DebitLine("a", NewMoney(1, "INR")), CreditLine("b", NewMoney(1, "INR"))},
	}
	assert.True(t, EntryFilter{}.Matches(e))
	assert.True(t, EntryFilter{DateFrom: e.Date, DateTo: e.Date.Add(10 * time.Hour)}.Matches(e))
	assert.False(t, EntryFilter{DateFrom: e.Date.AddDate(0, 0, 1)}.Matches(e))
	assert.False(t, EntryFilter{DateTo: e.Date.AddDate(0, 0, -1)}.Matches(e))
	assert.True(t, EntryFilter{AccountID: "b"}.Matches(e))
	assert.False(t, EntryFilter{AccountID: "c"}.Matches(e))
}

func TestDateRange_HalfOpen(t *testing.T) {
	r := DateRange{From: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), To: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)}
	assert.True(t, r.Contains(r.From))
	assert.True(t, r.Contains(time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)))
	assert.False(t, r.Contains(r.To))
	assert.True(t, DateRange{}.Contains(r.To))
}

func TestDateOnly_UsesCallerLocation(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	late := time.Date(2025, 3, 14, 23, 30, 0, 0, ist)
	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), DateOnly(late))
}
