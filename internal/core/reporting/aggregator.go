// Package reporting derives report rows from a ledger snapshot. It never
// mutates ledger state, and amounts in different currencies are never summed.
package reporting

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/SscSPs/garage_books/internal/apperrors"
	"github.com/SscSPs/garage_books/internal/core/domain"
	"github.com/SscSPs/garage_books/internal/core/ledger"
	"github.com/SscSPs/garage_books/internal/utils/accounting"
)

// SnapshotSource provides consistent views of the ledger.
type SnapshotSource interface {
	Snapshot() ledger.Snapshot
}

// Aggregator computes reports over snapshots taken at call time.
type Aggregator struct {
	source SnapshotSource
}

// NewAggregator creates an Aggregator reading from source.
func NewAggregator(source SnapshotSource) *Aggregator {
	return &Aggregator{source: source}
}

// AccountTypeTotals sums balances by account type for each currency present.
// An empty types set means all types. Inactive accounts are included since
// they may still carry balances. A zero asOf uses running balances.
func (a *Aggregator) AccountTypeTotals(types []domain.AccountType, asOf time.Time) (domain.AccountTypeTotalsReport, error) {
	for _, t := range types {
		if !t.Valid() {
			return domain.AccountTypeTotalsReport{}, fmt.Errorf("%w: invalid account type %q", apperrors.ErrValidation, t)
		}
	}
	if len(types) == 0 {
		types = domain.AccountTypes
	}

	snap := a.source.Snapshot()
	balances, err := balancesAt(snap, asOf)
	if err != nil {
		return domain.AccountTypeTotalsReport{}, err
	}

	byCurrency := make(map[string]*domain.TypeTotals)
	for _, acc := range snap.Accounts {
		if !slices.Contains(types, acc.AccountType) {
			continue
		}
		tt, ok := byCurrency[acc.CurrencyCode]
		if !ok {
			tt = &domain.TypeTotals{Currency: acc.CurrencyCode, Totals: make(map[domain.AccountType]domain.Money, len(types))}
			for _, t := range types {
				tt.Totals[t] = domain.Zero(acc.CurrencyCode)
			}
			byCurrency[acc.CurrencyCode] = tt
		}
		cur := tt.Totals[acc.AccountType]
		tt.Totals[acc.AccountType] = domain.NewMoney(cur.Amount+balances[acc.AccountID].Amount, acc.CurrencyCode)
	}

	report := domain.AccountTypeTotalsReport{AsOf: asOf, Currencies: make([]domain.TypeTotals, 0, len(byCurrency))}
	for _, cur := range sortedKeys(byCurrency) {
		tt := byCurrency[cur]
		tt.NetEquity = domain.NewMoney(tt.Totals[domain.Asset].Amount-tt.Totals[domain.Liability].Amount, cur)
		report.Currencies = append(report.Currencies, *tt)
	}
	return report, nil
}

// VendorActivity sums entries tagged with vendor whose date falls in the
// half-open range. Each entry counts its total debits, classified by the
// source kind; a reversal subtracts from the kind of the entry it reverses.
func (a *Aggregator) VendorActivity(vendor string, r domain.DateRange) (domain.VendorActivityReport, error) {
	vendor = strings.TrimSpace(vendor)
	if vendor == "" {
		return domain.VendorActivityReport{}, fmt.Errorf("%w: vendor is required", apperrors.ErrValidation)
	}
	if !r.From.IsZero() && !r.To.IsZero() && r.To.Before(r.From) {
		return domain.VendorActivityReport{}, fmt.Errorf("%w: range end before start", apperrors.ErrValidation)
	}

	snap := a.source.Snapshot()
	kindOf := make(map[string]string, len(snap.Entries))
	for _, e := range snap.Entries {
		kindOf[e.EntryID] = e.SourceRef.Kind()
	}

	byCurrency := make(map[string]*domain.VendorTotals)
	for _, e := range snap.Entries {
		if !e.SourceRef.HasVendor(vendor) || !r.Contains(e.Date) {
			continue
		}
		kind, sign := e.SourceRef.Kind(), int64(1)
		if e.ReversalOf != "" {
			kind, sign = kindOf[e.ReversalOf], -1
		}
		totals, err := domain.TotalsByCurrency(e.Lines)
		if err != nil {
			return domain.VendorActivityReport{}, fmt.Errorf("entry %s: %w", e.EntryID, err)
		}
		for cur, side := range totals {
			vt, ok := byCurrency[cur]
			if !ok {
				vt = &domain.VendorTotals{
					Currency:      cur,
					ExpenseTotal:  domain.Zero(cur),
					PurchaseTotal: domain.Zero(cur),
					PaymentTotal:  domain.Zero(cur),
				}
				byCurrency[cur] = vt
			}
			amount := domain.NewMoney(sign*side.Debits, cur)
			var total *domain.Money
			switch kind {
			case domain.SourceExpense:
				total = &vt.ExpenseTotal
			case domain.SourcePurchaseOrder:
				total = &vt.PurchaseTotal
			case domain.SourcePayment:
				total = &vt.PaymentTotal
			}
			if total != nil {
				if *total, err = total.Add(amount); err != nil {
					return domain.VendorActivityReport{}, fmt.Errorf("vendor %s: %w", vendor, err)
				}
			}
			vt.EntryCount++
		}
	}

	report := domain.VendorActivityReport{Vendor: vendor, Range: r, Currencies: make([]domain.VendorTotals, 0, len(byCurrency))}
	for _, cur := range sortedKeys(byCurrency) {
		report.Currencies = append(report.Currencies, *byCurrency[cur])
	}
	return report, nil
}

// TrialBalance lists every account with a nonzero balance on its debit or
// credit column. Debit and credit totals match per currency.
func (a *Aggregator) TrialBalance(asOf time.Time) ([]domain.TrialBalanceRow, error) {
	snap := a.source.Snapshot()
	balances, err := balancesAt(snap, asOf)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.TrialBalanceRow, 0, len(snap.Accounts))
	for _, acc := range snap.Accounts {
		bal := balances[acc.AccountID]
		if bal.IsZero() {
			continue
		}
		debit, credit := accounting.NormalBalanceSides(bal.Amount, acc.AccountType)
		rows = append(rows, domain.TrialBalanceRow{
			AccountID:   acc.AccountID,
			Code:        acc.Code,
			AccountName: acc.Name,
			AccountType: acc.AccountType,
			Debit:       domain.NewMoney(debit, acc.CurrencyCode),
			Credit:      domain.NewMoney(credit, acc.CurrencyCode),
		})
	}
	slices.SortStableFunc(rows, func(x, y domain.TrialBalanceRow) int {
		return strings.Compare(x.Code, y.Code)
	})
	return rows, nil
}

// ProfitAndLoss reports income and expense activity within the half-open range,
// one report per currency.
func (a *Aggregator) ProfitAndLoss(r domain.DateRange) ([]domain.PAndLReport, error) {
	snap := a.source.Snapshot()
	activity, err := activityIn(snap, r)
	if err != nil {
		return nil, err
	}

	byCurrency := make(map[string]*domain.PAndLReport)
	for _, acc := range snap.Accounts {
		if acc.AccountType != domain.Income && acc.AccountType != domain.Expense {
			continue
		}
		net, ok := activity[acc.AccountID]
		if !ok || net == 0 {
			continue
		}
		cur := acc.CurrencyCode
		rep, ok := byCurrency[cur]
		if !ok {
			rep = &domain.PAndLReport{
				Currency:      cur,
				Revenue:       []domain.AccountAmount{},
				Expenses:      []domain.AccountAmount{},
				TotalRevenue:  domain.Zero(cur),
				TotalExpenses: domain.Zero(cur),
			}
			byCurrency[cur] = rep
		}
		row := domain.AccountAmount{AccountID: acc.AccountID, Code: acc.Code, Name: acc.Name, NetAmount: domain.NewMoney(net, cur)}
		if acc.AccountType == domain.Income {
			rep.Revenue = append(rep.Revenue, row)
			rep.TotalRevenue = domain.NewMoney(rep.TotalRevenue.Amount+net, cur)
		} else {
			rep.Expenses = append(rep.Expenses, row)
			rep.TotalExpenses = domain.NewMoney(rep.TotalExpenses.Amount+net, cur)
		}
	}

	out := make([]domain.PAndLReport, 0, len(byCurrency))
	for _, cur := range sortedKeys(byCurrency) {
		rep := byCurrency[cur]
		rep.NetProfit = domain.NewMoney(rep.TotalRevenue.Amount-rep.TotalExpenses.Amount, cur)
		out = append(out, *rep)
	}
	return out, nil
}

// PeriodTotals groups debits and credits by calendar month, currency and
// account type for entries in the half-open range.
func (a *Aggregator) PeriodTotals(r domain.DateRange) ([]domain.PeriodTotalsRow, error) {
	snap := a.source.Snapshot()

	type key struct {
		period   string
		currency string
		typ      domain.AccountType
	}
	rows := make(map[key]*domain.PeriodTotalsRow)
	for _, e := range snap.Entries {
		if !r.Contains(e.Date) {
			continue
		}
		period := e.Date.Format("2006-01")
		for _, line := range e.Lines {
			acc, ok := snap.Account(line.AccountID)
			if !ok {
				return nil, fmt.Errorf("%w: entry %s references account %s", apperrors.ErrInternal, e.EntryID, line.AccountID)
			}
			signed, err := accounting.SignedAmount(line, acc.AccountType)
			if err != nil {
				return nil, err
			}
			cur := line.Currency()
			k := key{period, cur, acc.AccountType}
			row, ok := rows[k]
			if !ok {
				row = &domain.PeriodTotalsRow{
					Period: period, Currency: cur, AccountType: acc.AccountType,
					Debit: domain.Zero(cur), Credit: domain.Zero(cur), Net: domain.Zero(cur),
				}
				rows[k] = row
			}
			row.Debit = domain.NewMoney(row.Debit.Amount+line.Debit.Amount, cur)
			row.Credit = domain.NewMoney(row.Credit.Amount+line.Credit.Amount, cur)
			row.Net = domain.NewMoney(row.Net.Amount+signed, cur)
		}
	}

	out := make([]domain.PeriodTotalsRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row)
	}
	slices.SortFunc(out, func(x, y domain.PeriodTotalsRow) int {
		if c := strings.Compare(x.Period, y.Period); c != 0 {
			return c
		}
		if c := strings.Compare(x.Currency, y.Currency); c != 0 {
			return c
		}
		return slices.Index(domain.AccountTypes, x.AccountType) - slices.Index(domain.AccountTypes, y.AccountType)
	})
	return out, nil
}

// TaxSummary nets VAT collected (Output VAT accounts) against VAT paid
// (Input VAT accounts) for activity in the half-open range.
func (a *Aggregator) TaxSummary(r domain.DateRange) ([]domain.TaxSummary, error) {
	snap := a.source.Snapshot()
	activity, err := activityIn(snap, r)
	if err != nil {
		return nil, err
	}

	byCurrency := make(map[string]*domain.TaxSummary)
	get := func(cur string) *domain.TaxSummary {
		ts, ok := byCurrency[cur]
		if !ok {
			ts = &domain.TaxSummary{Currency: cur, InputVAT: domain.Zero(cur), OutputVAT: domain.Zero(cur)}
			byCurrency[cur] = ts
		}
		return ts
	}
	for _, acc := range snap.Accounts {
		net := activity[acc.AccountID]
		switch acc.Category {
		case domain.CategoryInputVAT:
			ts := get(acc.CurrencyCode)
			ts.InputVAT = domain.NewMoney(ts.InputVAT.Amount+accountSideAmount(net, acc.AccountType, true), acc.CurrencyCode)
		case domain.CategoryOutputVAT:
			ts := get(acc.CurrencyCode)
			ts.OutputVAT = domain.NewMoney(ts.OutputVAT.Amount+accountSideAmount(net, acc.AccountType, false), acc.CurrencyCode)
		}
	}

	out := make([]domain.TaxSummary, 0, len(byCurrency))
	for _, cur := range sortedKeys(byCurrency) {
		ts := byCurrency[cur]
		ts.NetPayable = domain.NewMoney(ts.OutputVAT.Amount-ts.InputVAT.Amount, cur)
		out = append(out, *ts)
	}
	return out, nil
}

// accountSideAmount expresses a signed activity amount as a debit-side
// (wantDebit) or credit-side figure regardless of the account's normal side.
func accountSideAmount(signed int64, t domain.AccountType, wantDebit bool) int64 {
	if t.DebitNormal() == wantDebit {
		return signed
	}
	return -signed
}

func balancesAt(snap ledger.Snapshot, asOf time.Time) (map[string]domain.Money, error) {
	if asOf.IsZero() {
		out := make(map[string]domain.Money, len(snap.Accounts))
		for _, acc := range snap.Accounts {
			out[acc.AccountID] = acc.Balance
		}
		return out, nil
	}
	return snap.BalancesAsOf(asOf)
}

// activityIn sums the signed effect of postings per account for entries in r.
func activityIn(snap ledger.Snapshot, r domain.DateRange) (map[string]int64, error) {
	out := make(map[string]int64)
	for _, e := range snap.Entries {
		if !r.Contains(e.Date) {
			continue
		}
		for _, line := range e.Lines {
			acc, ok := snap.Account(line.AccountID)
			if !ok {
				return nil, fmt.Errorf("%w: entry %s references account %s", apperrors.ErrInternal, e.EntryID, line.AccountID)
			}
			signed, err := accounting.SignedAmount(line, acc.AccountType)
			if err != nil {
				return nil, err
			}
			out[acc.AccountID] += signed
		}
	}
	return out, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
