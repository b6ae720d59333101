package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/garage_books/internal/apperrors"
	"github.com/SscSPs/garage_books/internal/core/domain"
	portsrepo "github.com/SscSPs/garage_books/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/garage_books/internal/core/ports/services"
	"github.com/SscSPs/garage_books/internal/dto"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	ledger portsrepo.AccountLedger
}

// NewAccountService creates a new account service backed by the ledger.
func NewAccountService(ledger portsrepo.AccountLedger, options ...ServiceOption) portssvc.AccountSvcFacade {
	return &accountService{
		BaseService: newBaseService(options),
		ledger:      ledger,
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	spec, err := req.ToNewAccount()
	if err != nil {
		s.LogError(ctx, err, "Invalid opening balance",
			slog.String("code", req.Code),
			slog.String("opening_balance", req.OpeningBalance.String()))
		return nil, err
	}

	acc, err := s.ledger.CreateAccount(spec)
	if err != nil {
		s.LogError(ctx, err, "Failed to create account", slog.String("code", req.Code))
		return nil, err
	}

	s.Metrics.AccountCreated()
	s.LogInfo(ctx, "Account created",
		slog.String("account_id", acc.AccountID),
		slog.String("code", acc.Code),
		slog.String("account_type", string(acc.AccountType)))
	return &acc, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	acc, err := s.ledger.GetAccount(accountID)
	if err != nil {
		s.LogDebug(ctx, "Account lookup failed", slog.String("account_id", accountID), slog.String("error", err.Error()))
		return nil, err
	}
	return &acc, nil
}

func (s *accountService) GetAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	acc, err := s.ledger.GetAccountByCode(code)
	if err != nil {
		s.LogDebug(ctx, "Account lookup failed", slog.String("code", code), slog.String("error", err.Error()))
		return nil, err
	}
	return &acc, nil
}

func (s *accountService) ListAccounts(ctx context.Context, params dto.ListAccountsParams) ([]domain.Account, error) {
	filter := params.ToFilter()
	for _, t := range filter.Types {
		if !t.Valid() {
			return nil, fmt.Errorf("%w: invalid account type %q", apperrors.ErrValidation, t)
		}
	}
	return s.ledger.ListAccounts(filter), nil
}

func (s *accountService) DeactivateAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	acc, err := s.ledger.Deactivate(accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to deactivate account", slog.String("account_id", accountID))
		return nil, err
	}
	s.LogInfo(ctx, "Account deactivated",
		slog.String("account_id", acc.AccountID),
		slog.String("balance", acc.Balance.String()))
	return &acc, nil
}

func (s *accountService) ReactivateAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	acc, err := s.ledger.Reactivate(accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to reactivate account", slog.String("account_id", accountID))
		return nil, err
	}
	s.LogInfo(ctx, "Account reactivated", slog.String("account_id", acc.AccountID))
	return &acc, nil
}

func (s *accountService) GetAccountBalance(ctx context.Context, accountID string, asOf time.Time) (domain.Money, error) {
	bal, err := s.ledger.GetBalance(accountID, asOf)
	if err != nil {
		s.LogDebug(ctx, "Balance lookup failed", slog.String("account_id", accountID), slog.String("error", err.Error()))
		return domain.Money{}, err
	}
	return bal, nil
}
