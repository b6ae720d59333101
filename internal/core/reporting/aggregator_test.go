package reporting_test

import (
	"testing"
	"time"

	"github.com/SscSPs/garage_books/internal/apperrors"
	"github.com/SscSPs/garage_books/internal/core/domain"
	"github.com/SscSPs/garage_books/internal/core/ledger"
	"github.com/SscSPs/garage_books/internal/core/reporting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func day(m time.Month, d int) time.Time {
	return time.Date(2025, m, d, 0, 0, 0, 0, time.UTC)
}

func inr(minor int64) domain.Money { return domain.NewMoney(minor, "INR") }

type AggregatorTestSuite struct {
	suite.Suite
	ledger *ledger.Ledger
	agg    *reporting.Aggregator
	ids    map[string]string // code -> account ID
}

func TestAggregatorTestSuite(t *testing.T) {
	suite.Run(t, new(AggregatorTestSuite))
}

func (s *AggregatorTestSuite) SetupTest() {
	s.ledger = ledger.New(ledger.WithClock(func() time.Time { return day(time.April, 30) }))
	s.agg = reporting.NewAggregator(s.ledger)
	s.ids = make(map[string]string)

	s.open("1010", domain.Asset, domain.CategoryPettyCash, "INR", 100000)
	s.open("1020", domain.Asset, domain.CategoryBank, "USD", 5000)
	s.open("1200", domain.Asset, domain.CategoryInventory, "INR", 0)
	s.open("1300", domain.Asset, domain.CategoryInputVAT, "INR", 0)
	s.open("2010", domain.Liability, domain.CategoryAccountsPayable, "INR", 0)
	s.open("2200", domain.Liability, domain.CategoryOutputVAT, "INR", 0)
	s.open("3000", domain.Equity, domain.CategoryOwnersEquity, "INR", 100000)
	s.open("3010", domain.Equity, domain.CategoryOwnersEquity, "USD", 5000)
	s.open("4010", domain.Income, domain.CategoryServiceRevenue, "INR", 0)
	s.open("6010", domain.Expense, domain.CategoryFuel, "INR", 0)

	s.post(day(time.March, 1), domain.NewSourceRef(domain.SourceExpense, "EXP-001", "Shell"),
		debit("6010", 45000), debit("1300", 8100), credit("1010", 53100))
	s.post(day(time.March, 5), domain.NewSourceRef(domain.SourcePurchaseOrder, "PO-7", "Bosch"),
		debit("1200", 10000), debit("1300", 1800), credit("2010", 11800))
	s.post(day(time.March, 20), domain.NewSourceRef(domain.SourcePayment, "PAY-1", "Bosch"),
		debit("2010", 11800), credit("1010", 11800))
	s.post(day(time.April, 2), domain.NewSourceRef(domain.SourceManual, "INV-1", ""),
		debit("1010", 11800), credit("4010", 10000), credit("2200", 1800))
	second := s.post(day(time.April, 3), domain.NewSourceRef(domain.SourceExpense, "EXP-002", "Shell"),
		debit("6010", 1000), credit("1010", 1000))
	_, err := s.ledger.Reverse(second.EntryID, domain.ReverseOptions{Date: day(time.April, 4)})
	s.Require().NoError(err)
}

func (s *AggregatorTestSuite) open(code string, t domain.AccountType, category, currency string, opening int64) {
	acc, err := s.ledger.CreateAccount(domain.NewAccount{
		Code: code, Name: category + " " + code, AccountType: t, Category: category,
		CurrencyCode: currency, OpeningBalance: domain.NewMoney(opening, currency),
	})
	s.Require().NoError(err)
	s.ids[code] = acc.AccountID
}

func debit(code string, amount int64) domain.JournalLineDraft {
	return domain.JournalLineDraft{AccountCode: code, Debit: inr(amount)}
}

func credit(code string, amount int64) domain.JournalLineDraft {
	return domain.JournalLineDraft{AccountCode: code, Credit: inr(amount)}
}

func (s *AggregatorTestSuite) post(date time.Time, ref domain.SourceRef, lines ...domain.JournalLineDraft) domain.JournalEntry {
	e, err := s.ledger.Post(domain.JournalEntryDraft{Date: date, SourceRef: ref, Lines: lines})
	s.Require().NoError(err)
	return e
}

func (s *AggregatorTestSuite) TestAccountTypeTotals_PerCurrency() {
	report, err := s.agg.AccountTypeTotals(nil, time.Time{})
	s.Require().NoError(err)
	s.Require().Len(report.Currencies, 2)

	in := report.Currencies[0]
	s.Equal("INR", in.Currency)
	s.Equal(int64(66800), in.Totals[domain.Asset].Amount)
	s.Equal(int64(1800), in.Totals[domain.Liability].Amount)
	s.Equal(int64(100000), in.Totals[domain.Equity].Amount)
	s.Equal(int64(10000), in.Totals[domain.Income].Amount)
	s.Equal(int64(45000), in.Totals[domain.Expense].Amount)
	s.Equal(int64(65000), in.NetEquity.Amount)

	usd := report.Currencies[1]
	s.Equal("USD", usd.Currency)
	s.Equal(int64(5000), usd.Totals[domain.Asset].Amount)
	s.Equal(int64(5000), usd.NetEquity.Amount)
}

func (s *AggregatorTestSuite) TestAccountTypeTotals_AsOfAndTypeSubset() {
	report, err := s.agg.AccountTypeTotals([]domain.AccountType{domain.Asset, domain.Liability}, day(time.March, 31))
	s.Require().NoError(err)
	in := report.Currencies[0]
	s.Len(in.Totals, 2)
	s.Equal(int64(55000), in.Totals[domain.Asset].Amount)
	s.Zero(in.Totals[domain.Liability].Amount)
	s.Equal(int64(55000), in.NetEquity.Amount)

	_, err = s.agg.AccountTypeTotals([]domain.AccountType{"CASH"}, time.Time{})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *AggregatorTestSuite) TestAccountTypeTotals_IncludesInactiveAccounts() {
	_, err := s.ledger.Deactivate(s.ids["1300"])
	s.Require().NoError(err)
	report, err := s.agg.AccountTypeTotals([]domain.AccountType{domain.Asset}, time.Time{})
	s.Require().NoError(err)
	s.Equal(int64(66800), report.Currencies[0].Totals[domain.Asset].Amount)
}

func (s *AggregatorTestSuite) TestVendorActivity() {
	shell, err := s.agg.VendorActivity("Shell", domain.DateRange{From: day(time.March, 1), To: day(time.May, 1)})
	s.Require().NoError(err)
	s.Require().Len(shell.Currencies, 1)
	s.Equal(int64(53100), shell.Currencies[0].ExpenseTotal.Amount)
	s.Equal(3, shell.Currencies[0].EntryCount)

	// The reversal on April 4 falls outside [March 1, April 4).
	shell, err = s.agg.VendorActivity("Shell", domain.DateRange{From: day(time.March, 1), To: day(time.April, 4)})
	s.Require().NoError(err)
	s.Equal(int64(54100), shell.Currencies[0].ExpenseTotal.Amount)
	s.Equal(2, shell.Currencies[0].EntryCount)

	empty, err := s.agg.VendorActivity("Shell", domain.DateRange{From: day(time.March, 2), To: day(time.April, 3)})
	s.Require().NoError(err)
	s.Empty(empty.Currencies)

	bosch, err := s.agg.VendorActivity("bosch", domain.DateRange{From: day(time.March, 1), To: day(time.April, 1)})
	s.Require().NoError(err)
	s.Require().Len(bosch.Currencies, 1)
	s.Equal(int64(11800), bosch.Currencies[0].PurchaseTotal.Amount)
	s.Equal(int64(11800), bosch.Currencies[0].PaymentTotal.Amount)
	s.Zero(bosch.Currencies[0].ExpenseTotal.Amount)

	_, err = s.agg.VendorActivity(" ", domain.DateRange{})
	s.ErrorIs(err, apperrors.ErrValidation)
	_, err = s.agg.VendorActivity("Shell", domain.DateRange{From: day(time.May, 1), To: day(time.March, 1)})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *AggregatorTestSuite) TestTrialBalance_BalancesPerCurrency() {
	rows, err := s.agg.TrialBalance(time.Time{})
	s.Require().NoError(err)

	var codes []string
	debits, credits := map[string]int64{}, map[string]int64{}
	for _, r := range rows {
		codes = append(codes, r.Code)
		debits[r.Debit.Currency] += r.Debit.Amount
		credits[r.Credit.Currency] += r.Credit.Amount
	}
	s.Equal([]string{"1010", "1020", "1200", "1300", "2200", "3000", "3010", "4010", "6010"}, codes)
	s.Equal(int64(111800), debits["INR"])
	s.Equal(debits["INR"], credits["INR"])
	s.Equal(debits["USD"], credits["USD"])
}

func (s *AggregatorTestSuite) TestProfitAndLoss() {
	reports, err := s.agg.ProfitAndLoss(domain.DateRange{From: day(time.March, 1), To: day(time.May, 1)})
	s.Require().NoError(err)
	s.Require().Len(reports, 1)
	s.Equal(int64(10000), reports[0].TotalRevenue.Amount)
	s.Equal(int64(45000), reports[0].TotalExpenses.Amount)
	s.Equal(int64(-35000), reports[0].NetProfit.Amount)

	april, err := s.agg.ProfitAndLoss(domain.DateRange{From: day(time.April, 1), To: day(time.May, 1)})
	s.Require().NoError(err)
	s.Require().Len(april, 1)
	s.Empty(april[0].Expenses)
	s.Equal(int64(10000), april[0].NetProfit.Amount)
}

func (s *AggregatorTestSuite) TestPeriodTotals() {
	rows, err := s.agg.PeriodTotals(domain.DateRange{})
	s.Require().NoError(err)
	s.Require().Len(rows, 7)

	first := rows[0]
	s.Equal("2025-03", first.Period)
	s.Equal(domain.Asset, first.AccountType)
	s.Equal(int64(19900), first.Debit.Amount)
	s.Equal(int64(64900), first.Credit.Amount)
	s.Equal(int64(-45000), first.Net.Amount)

	last := rows[len(rows)-1]
	s.Equal("2025-04", last.Period)
	s.Equal(domain.Expense, last.AccountType)
	s.Zero(last.Net.Amount)
}

func (s *AggregatorTestSuite) TestTaxSummary() {
	sums, err := s.agg.TaxSummary(domain.DateRange{From: day(time.March, 1), To: day(time.May, 1)})
	s.Require().NoError(err)
	s.Require().Len(sums, 1)
	s.Equal(int64(9900), sums[0].InputVAT.Amount)
	s.Equal(int64(1800), sums[0].OutputVAT.Amount)
	s.Equal(int64(-8100), sums[0].NetPayable.Amount)
}

func TestAggregator_EmptyLedger(t *testing.T) {
	agg := reporting.NewAggregator(ledger.New())
	report, err := agg.AccountTypeTotals(nil, time.Time{})
	require.NoError(t, err)
	assert.Empty(t, report.Currencies)

	rows, err := agg.TrialBalance(time.Time{})
	require.NoError(t, err)
	assert.Empty(t, rows)
}
