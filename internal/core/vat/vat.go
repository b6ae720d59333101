// Package vat splits VAT-inclusive amounts and adds VAT to net amounts.
// It never posts; callers turn a Split into journal lines.
package vat

import (
	"fmt"
	"strings"

	"github.com/SscSPs/garage_books/internal/apperrors"
	"github.com/SscSPs/garage_books/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Split is a gross amount broken into its net and tax parts.
// Net + Tax == Gross always holds exactly.
type Split struct {
	Gross domain.Money    `json:"gross"`
	Net   domain.Money    `json:"net"`
	Tax   domain.Money    `json:"tax"`
	Rate  decimal.Decimal `json:"rate"`
}

// SplitGross derives net = gross / (1 + rate), rounded half away from zero to
// the currency's minor unit, and tax = gross - net.
func SplitGross(gross domain.Money, rate decimal.Decimal) (Split, error) {
	if rate.IsNegative() {
		return Split{}, &apperrors.InvalidRateError{Rate: rate.String()}
	}
	net, err := domain.MoneyFromDecimal(gross.Decimal().Div(decimal.NewFromInt(1).Add(rate)), gross.Currency)
	if err != nil {
		return Split{}, err
	}
	return Split{
		Gross: gross,
		Net:   net,
		Tax:   domain.NewMoney(gross.Amount-net.Amount, gross.Currency),
		Rate:  rate,
	}, nil
}

// AddTax derives tax = net * rate, rounded once, and gross = net + tax.
func AddTax(net domain.Money, rate decimal.Decimal) (Split, error) {
	if rate.IsNegative() {
		return Split{}, &apperrors.InvalidRateError{Rate: rate.String()}
	}
	tax, err := domain.MoneyFromDecimal(net.Decimal().Mul(rate), net.Currency)
	if err != nil {
		return Split{}, err
	}
	gross, err := net.Add(tax)
	if err != nil {
		return Split{}, err
	}
	return Split{
		Gross: gross,
		Net:   net,
		Tax:   tax,
		Rate:  rate,
	}, nil
}

// ParseRate accepts a fraction ("0.18") or a percentage ("18%").
func ParseRate(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	percent := strings.HasSuffix(s, "%")
	s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	rate, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", apperrors.ErrValidation, s)
	}
	if percent {
		rate = rate.Div(decimal.NewFromInt(100))
	}
	if rate.IsNegative() {
		return decimal.Zero, &apperrors.InvalidRateError{Rate: rate.String()}
	}
	return rate, nil
}
