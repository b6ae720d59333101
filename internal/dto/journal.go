package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/garage_books/internal/apperrors"
	"github.com/SscSPs/garage_books/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalLineRequest is one debit or credit line. The account is referenced by
// accountID or, when that is empty, by accountCode.
type JournalLineRequest struct {
	AccountID    string          `json:"accountID"`
	AccountCode  string          `json:"accountCode"`
	Debit        decimal.Decimal `json:"debit"`
	Credit       decimal.Decimal `json:"credit"`
	CurrencyCode string          `json:"currencyCode,omitempty"` // Optional, defaults to the entry currency
}

// CreateJournalRequest defines the data needed to post a manual journal entry.
type CreateJournalRequest struct {
	Date         *Date                `json:"date"` // Optional, defaults to today
	Description  string               `json:"description"`
	SourceRef    string               `json:"sourceRef"`
	CurrencyCode string               `json:"currencyCode" binding:"required,currency"`
	Lines        []JournalLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// ToDraft converts the request into a ledger draft. Amount shape (one side,
// non-negative) is left to the ledger.
func (r CreateJournalRequest) ToDraft() (domain.JournalEntryDraft, error) {
	draft := domain.JournalEntryDraft{
		Date:        r.Date.TimeOrZero(),
		Description: r.Description,
		SourceRef:   domain.SourceRef(r.SourceRef),
		Lines:       make([]domain.JournalLineDraft, 0, len(r.Lines)),
	}
	if draft.SourceRef == "" {
		draft.SourceRef = domain.SourceRef(domain.SourceManual)
	}
	for i, l := range r.Lines {
		cur := strings.TrimSpace(l.CurrencyCode)
		if cur == "" {
			cur = r.CurrencyCode
		}
		debit, err := domain.MoneyFromDecimalExact(l.Debit, cur)
		if err != nil {
			return domain.JournalEntryDraft{}, fmt.Errorf("line %d debit: %w", i+1, err)
		}
		credit, err := domain.MoneyFromDecimalExact(l.Credit, cur)
		if err != nil {
			return domain.JournalEntryDraft{}, fmt.Errorf("line %d credit: %w", i+1, err)
		}
		if l.AccountID == "" && l.AccountCode == "" {
			return domain.JournalEntryDraft{}, fmt.Errorf("%w: line %d needs accountID or accountCode", apperrors.ErrValidation, i+1)
		}
		draft.Lines = append(draft.Lines, domain.JournalLineDraft{
			AccountID:   l.AccountID,
			AccountCode: l.AccountCode,
			Debit:       debit,
			Credit:      credit,
		})
	}
	return draft, nil
}

// ReverseJournalRequest defines optional overrides for a reversal.
type ReverseJournalRequest struct {
	Date        *Date  `json:"date"`
	Description string `json:"description"`
}

// ToOptions converts the request into ledger reversal options.
func (r ReverseJournalRequest) ToOptions() domain.ReverseOptions {
	return domain.ReverseOptions{Date: r.Date.TimeOrZero(), Description: r.Description}
}

// ListJournalsParams defines query parameters for listing journal entries.
// dateFrom and dateTo are inclusive.
type ListJournalsParams struct {
	DateFrom  string  `form:"dateFrom"`
	DateTo    string  `form:"dateTo"`
	AccountID string  `form:"accountID"`
	Limit     int     `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// JournalLineResponse defines the data returned for one journal line.
type JournalLineResponse struct {
	AccountID string       `json:"accountID"`
	Debit     domain.Money `json:"debit"`
	Credit    domain.Money `json:"credit"`
}

// JournalResponse defines the data returned for a journal entry.
type JournalResponse struct {
	JournalID   string                `json:"journalID"`
	Sequence    uint64                `json:"sequence"`
	Date        Date                  `json:"date"`
	PostedAt    time.Time             `json:"postedAt"`
	Description string                `json:"description"`
	SourceRef   string                `json:"sourceRef"`
	ReversalOf  string                `json:"reversalOf,omitempty"`
	ReversedBy  string                `json:"reversedBy,omitempty"`
	Lines       []JournalLineResponse `json:"lines"`
}

// ToJournalResponse converts a domain.JournalEntry to JournalResponse DTO.
func ToJournalResponse(e *domain.JournalEntry) JournalResponse {
	lines := make([]JournalLineResponse, len(e.Lines))
	for i, l := range e.Lines {
		lines[i] = JournalLineResponse{AccountID: l.AccountID, Debit: l.Debit, Credit: l.Credit}
	}
	return JournalResponse{
		JournalID:   e.EntryID,
		Sequence:    e.Sequence,
		Date:        Date{e.Date},
		PostedAt:    e.PostedAt,
		Description: e.Description,
		SourceRef:   string(e.SourceRef),
		ReversalOf:  e.ReversalOf,
		Lines:       lines,
	}
}

// ListJournalsResponse wraps a page of journal entries.
type ListJournalsResponse struct {
	Journals  []JournalResponse `json:"journals"`
	NextToken *string           `json:"nextToken,omitempty"`
}
