package domain

import "time"

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Income    AccountType = "INCOME"
	Expense   AccountType = "EXPENSE"
)

// AccountTypes lists every account type in chart-of-accounts order.
var AccountTypes = []AccountType{Asset, Liability, Equity, Income, Expense}

// Valid reports whether t is one of the five account types.
func (t AccountType) Valid() bool {
	switch t {
	case Asset, Liability, Equity, Income, Expense:
		return true
	}
	return false
}

// DebitNormal reports whether the account type increases on debit.
// Asset and Expense are debit-normal; Liability, Income and Equity are credit-normal.
func (t AccountType) DebitNormal() bool {
	return t == Asset || t == Expense
}

// Account categories offered by the chart-of-accounts form.
const (
	CategoryPettyCash          = "Petty Cash"
	CategoryBank               = "Bank"
	CategoryAccountsReceivable = "Accounts Receivable"
	CategoryInventory          = "Inventory"
	CategoryInputVAT           = "Input VAT"
	CategoryFixedAssets        = "Fixed Assets"
	CategoryAccountsPayable    = "Accounts Payable"
	CategoryOutputVAT          = "Output VAT"
	CategoryLoans              = "Loans"
	CategoryOwnersEquity       = "Owner's Equity"
	CategoryRetainedEarnings   = "Retained Earnings"
	CategorySales              = "Sales"
	CategoryServiceRevenue     = "Service Revenue"
	CategoryOtherIncome        = "Other Income"
	CategoryCostOfGoodsSold    = "Cost of Goods Sold"
	CategoryFuel               = "Fuel"
	CategoryParts              = "Parts"
	CategoryRent               = "Rent"
	CategorySalaries           = "Salaries"
	CategoryUtilities          = "Utilities"
	CategoryOtherExpense       = "Other Expense"
)

// AccountCategories is the fixed list an account's category must come from.
var AccountCategories = []string{
	CategoryPettyCash, CategoryBank, CategoryAccountsReceivable, CategoryInventory,
	CategoryInputVAT, CategoryFixedAssets, CategoryAccountsPayable, CategoryOutputVAT,
	CategoryLoans, CategoryOwnersEquity, CategoryRetainedEarnings, CategorySales,
	CategoryServiceRevenue, CategoryOtherIncome, CategoryCostOfGoodsSold, CategoryFuel,
	CategoryParts, CategoryRent, CategorySalaries, CategoryUtilities, CategoryOtherExpense,
}

// IsKnownCategory reports whether c is in AccountCategories.
func IsKnownCategory(c string) bool {
	for _, known := range AccountCategories {
		if known == c {
			return true
		}
	}
	return false
}

// Account represents a chart-of-accounts entry.
// Balance is derived from OpeningBalance and posted journal lines; it is never set directly.
type Account struct {
	AccountID      string      `json:"accountID"`
	Code           string      `json:"code"`
	Name           string      `json:"name"`
	AccountType    AccountType `json:"accountType"`
	Category       string      `json:"category"`
	CurrencyCode   string      `json:"currencyCode"`
	Description    string      `json:"description"`
	OpeningBalance Money       `json:"openingBalance"`
	Balance        Money       `json:"balance"`
	IsActive       bool        `json:"isActive"`
	AuditFields
}

// NewAccount carries the fields needed to open an account.
type NewAccount struct {
	Code           string
	Name           string
	AccountType    AccountType
	Category       string
	CurrencyCode   string
	Description    string
	OpeningBalance Money
}

// AccountFilter narrows ListAccounts results. Zero values match everything
// except inactive accounts, which need IncludeInactive.
type AccountFilter struct {
	Types           []AccountType
	Category        string
	IncludeInactive bool
}

// Matches reports whether acc passes the filter.
func (f AccountFilter) Matches(acc Account) bool {
	if !acc.IsActive && !f.IncludeInactive {
		return false
	}
	if f.Category != "" && f.Category != acc.Category {
		return false
	}
	if len(f.Types) == 0 {
		return true
	}
	for _, t := range f.Types {
		if t == acc.AccountType {
			return true
		}
	}
	return false
}

// AuditFields holds standard audit timestamps for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}
