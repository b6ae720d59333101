package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/garage_books/internal/apperrors"
	"github.com/SscSPs/garage_books/internal/core/domain"
	portsrepo "github.com/SscSPs/garage_books/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/garage_books/internal/core/ports/services"
	"github.com/SscSPs/garage_books/internal/dto"
	"github.com/SscSPs/garage_books/internal/utils/pagination"
)

const defaultJournalPageSize = 20

// journalService posts manual entries and serves journal reads.
type journalService struct {
	BaseService
	ledger portsrepo.JournalLedger
}

// NewJournalService creates a new JournalService.
func NewJournalService(ledger portsrepo.JournalLedger, options ...ServiceOption) portssvc.JournalSvcFacade {
	return &journalService{
		BaseService: newBaseService(options),
		ledger:      ledger,
	}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

func (s *journalService) PostJournal(ctx context.Context, req dto.CreateJournalRequest) (*domain.JournalEntry, error) {
	draft, err := req.ToDraft()
	if err != nil {
		s.postRejected(ctx, err)
		return nil, err
	}

	entry, err := s.ledger.Post(draft)
	if err != nil {
		s.postRejected(ctx, err, slog.String("source_ref", string(draft.SourceRef)), slog.Int("lines", len(draft.Lines)))
		return nil, err
	}
	s.entryPosted(ctx, entry)
	return &entry, nil
}

func (s *journalService) ReverseJournal(ctx context.Context, journalID string, req dto.ReverseJournalRequest) (*domain.JournalEntry, error) {
	entry, err := s.ledger.Reverse(journalID, req.ToOptions())
	if err != nil {
		s.postRejected(ctx, err, slog.String("reversal_of", journalID))
		return nil, err
	}
	s.entryPosted(ctx, entry)
	return &entry, nil
}

func (s *journalService) GetJournalByID(ctx context.Context, journalID string) (*domain.JournalEntry, error) {
	entry, err := s.ledger.GetEntry(journalID)
	if err != nil {
		s.LogDebug(ctx, "Journal lookup failed", slog.String("journal_id", journalID), slog.String("error", err.Error()))
		return nil, err
	}
	return &entry, nil
}

func (s *journalService) ReversedBy(ctx context.Context, journalID string) (string, bool) {
	return s.ledger.ReversedBy(journalID)
}

// ListJournals pages through the journal in posting order. The token is a
// cursor on the posting sequence, so pages stay stable while entries are
// appended.
func (s *journalService) ListJournals(ctx context.Context, params dto.ListJournalsParams) (*dto.ListJournalsResponse, error) {
	from, err := dto.ParseDate(params.DateFrom)
	if err != nil {
		return nil, err
	}
	to, err := dto.ParseDate(params.DateTo)
	if err != nil {
		return nil, err
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return nil, fmt.Errorf("%w: dateTo %s is before dateFrom %s", apperrors.ErrValidation, params.DateTo, params.DateFrom)
	}

	var after uint64
	if params.NextToken != nil && *params.NextToken != "" {
		after, err = pagination.DecodeSequenceToken(*params.NextToken)
		if err != nil {
			s.LogDebug(ctx, "Invalid journal page token", slog.String("error", err.Error()))
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
	}
	limit := params.Limit
	if limit <= 0 {
		limit = defaultJournalPageSize
	}

	resp := &dto.ListJournalsResponse{Journals: make([]dto.JournalResponse, 0, limit)}
	filter := domain.EntryFilter{DateFrom: from, DateTo: to, AccountID: params.AccountID}
	var last uint64
	for entry := range s.ledger.ListEntries(filter) {
		if entry.Sequence <= after {
			continue
		}
		if len(resp.Journals) == limit {
			token := pagination.EncodeSequenceToken(last)
			resp.NextToken = &token
			break
		}
		jr := dto.ToJournalResponse(&entry)
		jr.ReversedBy, _ = s.ledger.ReversedBy(entry.EntryID)
		resp.Journals = append(resp.Journals, jr)
		last = entry.Sequence
	}
	return resp, nil
}
