package dto

import (
	"github.com/SscSPs/garage_books/internal/core/domain"
)

// AccountTypeTotalsParams defines query parameters for the account-type totals report.
type AccountTypeTotalsParams struct {
	Types []string `form:"type"`
	AsOf  string   `form:"asOf"` // Optional, YYYY-MM-DD; empty means running balances
}

// DateRangeParams defines a half-open report range [from, to).
type DateRangeParams struct {
	From string `form:"from"`
	To   string `form:"to"`
}

// ToRange parses the parameters into a domain.DateRange.
func (p DateRangeParams) ToRange() (domain.DateRange, error) {
	from, err := ParseDate(p.From)
	if err != nil {
		return domain.DateRange{}, err
	}
	to, err := ParseDate(p.To)
	if err != nil {
		return domain.DateRange{}, err
	}
	return domain.DateRange{From: from, To: to}, nil
}

// CurrencyTotals holds column totals for one currency.
type CurrencyTotals struct {
	Currency string       `json:"currency"`
	Debit    domain.Money `json:"debit"`
	Credit   domain.Money `json:"credit"`
}

// TrialBalanceResponse represents the trial balance report response
type TrialBalanceResponse struct {
	AsOf   string                   `json:"asOf,omitempty"`
	Rows   []domain.TrialBalanceRow `json:"rows"`
	Totals []CurrencyTotals         `json:"totals"`
}

// NewTrialBalanceResponse builds the response and its per-currency totals.
func NewTrialBalanceResponse(asOf string, rows []domain.TrialBalanceRow) TrialBalanceResponse {
	idx := make(map[string]int)
	var totals []CurrencyTotals
	for _, r := range rows {
		cur := r.Debit.Currency
		i, ok := idx[cur]
		if !ok {
			i = len(totals)
			idx[cur] = i
			totals = append(totals, CurrencyTotals{Currency: cur, Debit: domain.Zero(cur), Credit: domain.Zero(cur)})
		}
		totals[i].Debit.Amount += r.Debit.Amount
		totals[i].Credit.Amount += r.Credit.Amount
	}
	if rows == nil {
		rows = []domain.TrialBalanceRow{}
	}
	return TrialBalanceResponse{AsOf: asOf, Rows: rows, Totals: totals}
}

// ProfitAndLossResponse represents the profit and loss report response
type ProfitAndLossResponse struct {
	From    string               `json:"from,omitempty"`
	To      string               `json:"to,omitempty"`
	Reports []domain.PAndLReport `json:"reports"`
}

// PeriodTotalsResponse represents monthly activity rows.
type PeriodTotalsResponse struct {
	Rows []domain.PeriodTotalsRow `json:"rows"`
}

// TaxSummaryResponse represents the VAT summary per currency.
type TaxSummaryResponse struct {
	Summaries []domain.TaxSummary `json:"summaries"`
}
