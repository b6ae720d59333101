package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/garage_books/internal/apperrors"
	"github.com/SscSPs/garage_books/internal/core/domain"
	portsrepo "github.com/SscSPs/garage_books/internal/core/ports/repositories"
	"github.com/SscSPs/garage_books/internal/middleware"
)

type chartAccount struct {
	code, name  string
	accountType domain.AccountType
	category    string
}

var garageChart = []chartAccount{
	{"1010", "Petty Cash", domain.Asset, domain.CategoryPettyCash},
	{"1020", "Bank Account", domain.Asset, domain.CategoryBank},
	{"1100", "Customer Receivables", domain.Asset, domain.CategoryAccountsReceivable},
	{"1200", "Parts Inventory", domain.Asset, domain.CategoryInventory},
	{"1300", "Input VAT", domain.Asset, domain.CategoryInputVAT},
	{"1500", "Workshop Equipment", domain.Asset, domain.CategoryFixedAssets},
	{"2010", "Vendor Payables", domain.Liability, domain.CategoryAccountsPayable},
	{"2200", "Output VAT", domain.Liability, domain.CategoryOutputVAT},
	{"2300", "Equipment Loan", domain.Liability, domain.CategoryLoans},
	{"3000", "Owner's Capital", domain.Equity, domain.CategoryOwnersEquity},
	{"3100", "Retained Earnings", domain.Equity, domain.CategoryRetainedEarnings},
	{"4010", "Service Labour", domain.Income, domain.CategoryServiceRevenue},
	{"4020", "Parts Sales", domain.Income, domain.CategorySales},
	{"4900", "Other Income", domain.Income, domain.CategoryOtherIncome},
	{"5010", "Parts Cost of Sales", domain.Expense, domain.CategoryCostOfGoodsSold},
	{"6010", "Fuel", domain.Expense, domain.CategoryFuel},
	{"6020", "Workshop Consumables", domain.Expense, domain.CategoryParts},
	{"6030", "Rent", domain.Expense, domain.CategoryRent},
	{"6040", "Salaries", domain.Expense, domain.CategorySalaries},
	{"6050", "Utilities", domain.Expense, domain.CategoryUtilities},
	{"6090", "Sundry Expenses", domain.Expense, domain.CategoryOtherExpense},
}

// DefaultChart returns the garage chart of accounts in currency, all with a
// zero opening balance.
func DefaultChart(currency string) []domain.NewAccount {
	out := make([]domain.NewAccount, 0, len(garageChart))
	for _, a := range garageChart {
		out = append(out, domain.NewAccount{
			Code:           a.code,
			Name:           a.name,
			AccountType:    a.accountType,
			Category:       a.category,
			CurrencyCode:   currency,
			OpeningBalance: domain.Zero(currency),
		})
	}
	return out
}

// SeedDefaultChart opens every account of the default chart whose code is
// not taken yet and returns how many were created.
func SeedDefaultChart(ctx context.Context, accounts portsrepo.AccountLedger, currency string) (int, error) {
	logger := middleware.GetLoggerFromCtx(ctx).With(slog.String("currency", currency))
	created := 0
	for _, spec := range DefaultChart(currency) {
		_, err := accounts.CreateAccount(spec)
		var dup *apperrors.DuplicateCodeError
		switch {
		case errors.As(err, &dup):
			continue
		case err != nil:
			return created, err
		}
		created++
	}
	logger.InfoContext(ctx, "Default chart of accounts seeded", slog.Int("created", created))
	return created, nil
}
