package domain

import "time"

// DateRange is a half-open business-date interval [From, To).
// A zero bound is unbounded on that side.
type DateRange struct {
	From time.Time
	To   time.Time
}

// Contains reports whether d falls within the range.
func (r DateRange) Contains(d time.Time) bool {
	if !r.From.IsZero() && d.Before(DateOnly(r.From)) {
		return false
	}
	if !r.To.IsZero() && !d.Before(DateOnly(r.To)) {
		return false
	}
	return true
}

// TypeTotals holds per-type balances for one currency.
// NetEquity is total assets minus total liabilities; income, expense and
// equity balances do not enter it.
type TypeTotals struct {
	Currency  string                `json:"currency"`
	Totals    map[AccountType]Money `json:"totals"`
	NetEquity Money                 `json:"netEquity"`
}

// AccountTypeTotalsReport groups type totals by currency. Amounts in
// different currencies are never added together.
type AccountTypeTotalsReport struct {
	AsOf       time.Time    `json:"asOf"`
	Currencies []TypeTotals `json:"currencies"`
}

// VendorTotals is vendor activity in one currency.
type VendorTotals struct {
	Currency      string `json:"currency"`
	ExpenseTotal  Money  `json:"expenseTotal"`
	PurchaseTotal Money  `json:"purchaseTotal"`
	PaymentTotal  Money  `json:"paymentTotal"`
	EntryCount    int    `json:"entryCount"`
}

// VendorActivityReport summarises entries tagged with a vendor.
type VendorActivityReport struct {
	Vendor     string         `json:"vendor"`
	Range      DateRange      `json:"range"`
	Currencies []VendorTotals `json:"currencies"`
}

// TrialBalanceRow represents a single row in a trial balance report.
type TrialBalanceRow struct {
	AccountID   string      `json:"accountID"`
	Code        string      `json:"code"`
	AccountName string      `json:"accountName"`
	AccountType AccountType `json:"accountType"`
	Debit       Money       `json:"debit"`
	Credit      Money       `json:"credit"`
}

// AccountAmount represents an account with its net amount for financial reports.
type AccountAmount struct {
	AccountID string `json:"accountID"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	NetAmount Money  `json:"netAmount"`
}

// PAndLReport represents a profit and loss report for one currency.
type PAndLReport struct {
	Currency      string          `json:"currency"`
	Revenue       []AccountAmount `json:"revenue"`
	Expenses      []AccountAmount `json:"expenses"`
	TotalRevenue  Money           `json:"totalRevenue"`
	TotalExpenses Money           `json:"totalExpenses"`
	NetProfit     Money           `json:"netProfit"`
}

// PeriodTotalsRow is one month of activity for an account type in one currency.
type PeriodTotalsRow struct {
	Period      string      `json:"period"` // YYYY-MM
	Currency    string      `json:"currency"`
	AccountType AccountType `json:"accountType"`
	Debit       Money       `json:"debit"`
	Credit      Money       `json:"credit"`
	Net         Money       `json:"net"` // signed by the type's normal side
}

// TaxSummary nets input VAT against output VAT in one currency.
type TaxSummary struct {
	Currency   string `json:"currency"`
	InputVAT   Money  `json:"inputVAT"`
	OutputVAT  Money  `json:"outputVAT"`
	NetPayable Money  `json:"netPayable"` // OutputVAT - InputVAT
}
