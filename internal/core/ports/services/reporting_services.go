package services

import (
	"context"
	"time"

	"github.com/SscSPs/garage_books/internal/core/domain"
)

// ReportingService defines the interface for financial reporting operations
type ReportingService interface {
	// AccountTypeTotals sums balances per account type and currency.
	AccountTypeTotals(ctx context.Context, types []domain.AccountType, asOf time.Time) (*domain.AccountTypeTotalsReport, error)

	// VendorActivity sums expense, purchase and payment activity for a vendor.
	VendorActivity(ctx context.Context, vendor string, r domain.DateRange) (*domain.VendorActivityReport, error)

	// TrialBalance generates a trial balance report as of a specific date
	TrialBalance(ctx context.Context, asOf time.Time) ([]domain.TrialBalanceRow, error)

	// ProfitAndLoss generates a profit and loss report for a date range
	ProfitAndLoss(ctx context.Context, r domain.DateRange) ([]domain.PAndLReport, error)

	// PeriodTotals groups activity by month, currency and account type.
	PeriodTotals(ctx context.Context, r domain.DateRange) ([]domain.PeriodTotalsRow, error)

	// TaxSummary nets output VAT against input VAT.
	TaxSummary(ctx context.Context, r domain.DateRange) ([]domain.TaxSummary, error)
}
