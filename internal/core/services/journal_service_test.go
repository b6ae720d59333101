package services_test

import (
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/garage_books/internal/apperrors"
	"github.com/SscSPs/garage_books/internal/dto"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type JournalServiceTestSuite struct {
	ServiceTestSuite
}

func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}

func (s *JournalServiceTestSuite) TestPostJournal_Success() {
	entry := s.fund("1000")

	s.NotEmpty(entry.EntryID)
	s.Equal(uint64(1), entry.Sequence)
	s.Equal("Manual", entry.SourceRef.Kind())
	s.Equal(time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC), entry.Date)
	s.Equal(int64(100000), s.balance("1010"))
	s.Equal(int64(100000), s.balance("3000"))

	s.Equal(1.0, testutil.ToFloat64(s.metrics.EntriesPosted.WithLabelValues("Manual")))
	s.publisher.AssertNumberOfCalls(s.T(), "PublishEntryPosted", 1)
}

func (s *JournalServiceTestSuite) TestPostJournal_Unbalanced() {
	_, err := s.svc.Journal.PostJournal(s.ctx, dto.CreateJournalRequest{
		CurrencyCode: "INR",
		Lines: []dto.JournalLineRequest{
			{AccountCode: "6010", Debit: dec("530")},
			{AccountCode: "1010", Credit: dec("531")},
		},
	})
	var unbalanced *apperrors.UnbalancedEntryError
	s.Require().ErrorAs(err, &unbalanced)
	s.Equal(int64(-100), unbalanced.Imbalance)

	s.Zero(s.entryCount())
	s.Zero(s.balance("6010"))
	s.Equal(1.0, testutil.ToFloat64(s.metrics.PostsRejected.WithLabelValues("unbalanced")))
	s.publisher.AssertNotCalled(s.T(), "PublishEntryPosted", mock.Anything, mock.Anything)
}

func (s *JournalServiceTestSuite) TestPostJournal_LineErrors() {
	_, err := s.svc.Journal.PostJournal(s.ctx, dto.CreateJournalRequest{
		CurrencyCode: "INR",
		Lines: []dto.JournalLineRequest{
			{AccountCode: "9999", Debit: dec("10")},
			{AccountCode: "1010", Credit: dec("10")},
		},
	})
	s.ErrorIs(err, apperrors.ErrUnknownAccount)

	_, err = s.svc.Journal.PostJournal(s.ctx, dto.CreateJournalRequest{
		CurrencyCode: "INR",
		Lines: []dto.JournalLineRequest{
			{AccountCode: "6010", Debit: dec("10"), Credit: dec("10")},
			{AccountCode: "1010", Credit: dec("10")},
		},
	})
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.svc.Journal.PostJournal(s.ctx, dto.CreateJournalRequest{
		CurrencyCode: "INR",
		Lines: []dto.JournalLineRequest{
			{Debit: dec("10")},
			{AccountCode: "1010", Credit: dec("10")},
		},
	})
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.PostsRejected.WithLabelValues("unknown_account")))
	s.Equal(2.0, testutil.ToFloat64(s.metrics.PostsRejected.WithLabelValues("validation")))
}

func (s *JournalServiceTestSuite) TestReverseJournal() {
	original := s.fund("250")

	reversal, err := s.svc.Journal.ReverseJournal(s.ctx, original.EntryID, dto.ReverseJournalRequest{})
	s.Require().NoError(err)
	s.Equal(original.EntryID, reversal.ReversalOf)
	s.Equal("Reversal", reversal.SourceRef.Kind())
	s.Zero(s.balance("1010"))

	by, ok := s.svc.Journal.ReversedBy(s.ctx, original.EntryID)
	s.True(ok)
	s.Equal(reversal.EntryID, by)

	_, err = s.svc.Journal.ReverseJournal(s.ctx, original.EntryID, dto.ReverseJournalRequest{})
	s.ErrorIs(err, apperrors.ErrConflict)
	_, err = s.svc.Journal.ReverseJournal(s.ctx, reversal.EntryID, dto.ReverseJournalRequest{})
	s.ErrorIs(err, apperrors.ErrConflict)
	_, err = s.svc.Journal.ReverseJournal(s.ctx, "missing", dto.ReverseJournalRequest{})
	s.ErrorIs(err, apperrors.ErrNotFound)

	s.Equal(1.0, testutil.ToFloat64(s.metrics.EntriesPosted.WithLabelValues("Reversal")))
}

func (s *JournalServiceTestSuite) TestGetJournalByID() {
	posted := s.fund("10")
	got, err := s.svc.Journal.GetJournalByID(s.ctx, posted.EntryID)
	s.Require().NoError(err)
	s.Equal(posted.EntryID, got.EntryID)

	_, err = s.svc.Journal.GetJournalByID(s.ctx, "missing")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *JournalServiceTestSuite) TestListJournals_Pagination() {
	first := s.fund("1")
	for range 4 {
		s.fund("1")
	}
	_, err := s.svc.Journal.ReverseJournal(s.ctx, first.EntryID, dto.ReverseJournalRequest{})
	s.Require().NoError(err)

	var (
		seen  []uint64
		token *string
		pages int
	)
	for {
		page, err := s.svc.Journal.ListJournals(s.ctx, dto.ListJournalsParams{Limit: 4, NextToken: token})
		s.Require().NoError(err)
		pages++
		for _, j := range page.Journals {
			seen = append(seen, j.Sequence)
		}
		if pages == 1 {
			s.Equal(first.EntryID, page.Journals[0].JournalID)
			s.NotEmpty(page.Journals[0].ReversedBy)
		}
		if page.NextToken == nil {
			break
		}
		token = page.NextToken
	}
	s.Equal(2, pages)
	s.Equal([]uint64{1, 2, 3, 4, 5, 6}, seen)
}

func (s *JournalServiceTestSuite) TestListJournals_Filters() {
	_, err := s.svc.Journal.PostJournal(s.ctx, dto.CreateJournalRequest{
		Date:         date(2025, time.February, 1),
		CurrencyCode: "INR",
		Lines: []dto.JournalLineRequest{
			{AccountCode: "1020", Debit: dec("5")},
			{AccountCode: "3000", Credit: dec("5")},
		},
	})
	s.Require().NoError(err)
	s.fund("7")

	march, err := s.svc.Journal.ListJournals(s.ctx, dto.ListJournalsParams{DateFrom: "2025-03-01", DateTo: "2025-03-14"})
	s.Require().NoError(err)
	s.Len(march.Journals, 1)
	s.Nil(march.NextToken)

	bank, err := s.svc.Account.GetAccountByCode(s.ctx, "1020")
	s.Require().NoError(err)
	byAccount, err := s.svc.Journal.ListJournals(s.ctx, dto.ListJournalsParams{AccountID: bank.AccountID})
	s.Require().NoError(err)
	s.Len(byAccount.Journals, 1)

	_, err = s.svc.Journal.ListJournals(s.ctx, dto.ListJournalsParams{DateFrom: "2025-03-14", DateTo: "2025-03-01"})
	s.ErrorIs(err, apperrors.ErrValidation)
	_, err = s.svc.Journal.ListJournals(s.ctx, dto.ListJournalsParams{DateFrom: "14/03/2025"})
	s.ErrorIs(err, apperrors.ErrValidation)
	bad := "not-a-token"
	_, err = s.svc.Journal.ListJournals(s.ctx, dto.ListJournalsParams{NextToken: &bad})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *JournalServiceTestSuite) TestPublishFailureKeepsEntry() {
	failing := new(MockEventPublisher)
	failing.On("PublishEntryPosted", mock.Anything, mock.Anything).Return(errors.New("broker down"))
	s.svc = s.container(failing)

	entry := s.fund("20")
	s.NotNil(entry)
	s.Equal(1, s.entryCount())
	s.Equal(1.0, testutil.ToFloat64(s.metrics.EventsFailed))
	failing.AssertExpectations(s.T())
}
