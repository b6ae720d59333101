package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/garage_books/internal/core/domain"
	"github.com/SscSPs/garage_books/internal/core/ledger"
	portsrepo "github.com/SscSPs/garage_books/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/garage_books/internal/core/ports/services"
	"github.com/SscSPs/garage_books/internal/core/services"
	"github.com/SscSPs/garage_books/internal/dto"
	"github.com/SscSPs/garage_books/internal/platform/metrics"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var today = time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)

// MockEventPublisher is a mock type for the EntryEventPublisher interface
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishEntryPosted(ctx context.Context, entry domain.JournalEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// ServiceTestSuite wires every service to one in-memory ledger seeded with
// the default chart in INR.
type ServiceTestSuite struct {
	suite.Suite
	ctx       context.Context
	ledger    *ledger.Ledger
	metrics   *metrics.Metrics
	publisher *MockEventPublisher
	svc       *portssvc.ServiceContainer
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ledger = ledger.New(ledger.WithClock(func() time.Time { return today }))
	_, err := services.SeedDefaultChart(s.ctx, s.ledger, "INR")
	s.Require().NoError(err)

	s.metrics = metrics.New()
	s.publisher = new(MockEventPublisher)
	s.publisher.On("PublishEntryPosted", mock.Anything, mock.AnythingOfType("domain.JournalEntry")).Return(nil)
	s.svc = s.container(s.publisher)
}

func (s *ServiceTestSuite) container(p portssvc.EntryEventPublisher) *portssvc.ServiceContainer {
	return services.NewServiceContainer(
		portsrepo.RepositoryProvider{Ledger: s.ledger},
		services.WithMetrics(s.metrics),
		services.WithEventPublisher(p),
	)
}

// fund moves owner's capital into petty cash.
func (s *ServiceTestSuite) fund(amount string) *domain.JournalEntry {
	entry, err := s.svc.Journal.PostJournal(s.ctx, dto.CreateJournalRequest{
		Description:  "Owner funding",
		CurrencyCode: "INR",
		Lines: []dto.JournalLineRequest{
			{AccountCode: "1010", Debit: dec(amount)},
			{AccountCode: "3000", Credit: dec(amount)},
		},
	})
	s.Require().NoError(err)
	return entry
}

func (s *ServiceTestSuite) balance(code string) int64 {
	acc, err := s.svc.Account.GetAccountByCode(s.ctx, code)
	s.Require().NoError(err)
	return acc.Balance.Amount
}

func (s *ServiceTestSuite) entryCount() int {
	_, entries := s.ledger.Counts()
	return entries
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(y int, m time.Month, d int) *dto.Date {
	return &dto.Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}
