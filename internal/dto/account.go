package dto

import (
	"time"

	"github.com/SscSPs/garage_books/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Code           string          `json:"code" binding:"required"`
	Name           string          `json:"name" binding:"required"`
	AccountType    string          `json:"accountType" binding:"required,accounttype"`
	Category       string          `json:"category" binding:"required"`
	CurrencyCode   string          `json:"currencyCode" binding:"required,currency"`
	Description    string          `json:"description"`
	OpeningBalance decimal.Decimal `json:"openingBalance"` // Optional, major units
}

// ToNewAccount converts the request into the ledger's account spec.
func (r CreateAccountRequest) ToNewAccount() (domain.NewAccount, error) {
	opening, err := domain.MoneyFromDecimalExact(r.OpeningBalance, r.CurrencyCode)
	if err != nil {
		return domain.NewAccount{}, err
	}
	return domain.NewAccount{
		Code:           r.Code,
		Name:           r.Name,
		AccountType:    domain.AccountType(r.AccountType),
		Category:       r.Category,
		CurrencyCode:   r.CurrencyCode,
		Description:    r.Description,
		OpeningBalance: opening,
	}, nil
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID      string             `json:"accountID"`
	Code           string             `json:"code"`
	Name           string             `json:"name"`
	AccountType    domain.AccountType `json:"accountType"`
	Category       string             `json:"category"`
	CurrencyCode   string             `json:"currencyCode"`
	Description    string             `json:"description"`
	OpeningBalance domain.Money       `json:"openingBalance"`
	Balance        domain.Money       `json:"balance"`
	IsActive       bool               `json:"isActive"`
	CreatedAt      time.Time          `json:"createdAt"`
	LastUpdatedAt  time.Time          `json:"lastUpdatedAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:      acc.AccountID,
		Code:           acc.Code,
		Name:           acc.Name,
		AccountType:    acc.AccountType,
		Category:       acc.Category,
		CurrencyCode:   acc.CurrencyCode,
		Description:    acc.Description,
		OpeningBalance: acc.OpeningBalance,
		Balance:        acc.Balance,
		IsActive:       acc.IsActive,
		CreatedAt:      acc.CreatedAt,
		LastUpdatedAt:  acc.LastUpdatedAt,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}

// AccountBalanceResponse defines the data returned for an account balance query.
type AccountBalanceResponse struct {
	AccountID string       `json:"accountID"`
	AsOf      *Date        `json:"asOf,omitempty"` // nil means the running balance
	Balance   domain.Money `json:"balance"`
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Types           []string `form:"type"`
	Category        string   `form:"category"`
	IncludeInactive bool     `form:"includeInactive"`
}

// ToFilter converts the query parameters into a ledger filter.
func (p ListAccountsParams) ToFilter() domain.AccountFilter {
	f := domain.AccountFilter{Category: p.Category, IncludeInactive: p.IncludeInactive}
	for _, t := range p.Types {
		f.Types = append(f.Types, domain.AccountType(t))
	}
	return f
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}
