package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/garage_books/internal/core/domain"
	portsrepo "github.com/SscSPs/garage_books/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/garage_books/internal/core/ports/services"
	"github.com/SscSPs/garage_books/internal/core/reporting"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	aggregator *reporting.Aggregator
}

// NewReportingService creates a reporting service reading snapshots of source.
func NewReportingService(source portsrepo.LedgerSnapshotter, options ...ServiceOption) portssvc.ReportingService {
	return &reportingService{
		BaseService: newBaseService(options),
		aggregator:  reporting.NewAggregator(source),
	}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

func (s *reportingService) AccountTypeTotals(ctx context.Context, types []domain.AccountType, asOf time.Time) (*domain.AccountTypeTotalsReport, error) {
	report, err := s.aggregator.AccountTypeTotals(types, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute account type totals")
		return nil, err
	}
	s.LogDebug(ctx, "Account type totals computed", slog.Int("currencies", len(report.Currencies)))
	return &report, nil
}

func (s *reportingService) VendorActivity(ctx context.Context, vendor string, r domain.DateRange) (*domain.VendorActivityReport, error) {
	report, err := s.aggregator.VendorActivity(vendor, r)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute vendor activity", slog.String("vendor", vendor))
		return nil, err
	}
	return &report, nil
}

// TrialBalance generates a trial balance report as of a specific date
func (s *reportingService) TrialBalance(ctx context.Context, asOf time.Time) ([]domain.TrialBalanceRow, error) {
	rows, err := s.aggregator.TrialBalance(asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute trial balance")
		return nil, err
	}
	s.LogInfo(ctx, "Trial balance report generated",
		slog.String("asOf", asOf.Format(time.DateOnly)),
		slog.Int("row_count", len(rows)))
	return rows, nil
}

// ProfitAndLoss generates a profit and loss report for a date range
func (s *reportingService) ProfitAndLoss(ctx context.Context, r domain.DateRange) ([]domain.PAndLReport, error) {
	reports, err := s.aggregator.ProfitAndLoss(r)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute profit and loss")
		return nil, err
	}
	return reports, nil
}

func (s *reportingService) PeriodTotals(ctx context.Context, r domain.DateRange) ([]domain.PeriodTotalsRow, error) {
	rows, err := s.aggregator.PeriodTotals(r)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute period totals")
		return nil, err
	}
	return rows, nil
}

func (s *reportingService) TaxSummary(ctx context.Context, r domain.DateRange) ([]domain.TaxSummary, error) {
	sums, err := s.aggregator.TaxSummary(r)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute tax summary")
		return nil, err
	}
	return sums, nil
}
