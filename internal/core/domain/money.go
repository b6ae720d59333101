package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/SscSPs/garage_books/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Money is an exact amount in the minor units of its currency (e.g. paise, cents).
// In JSON the amount is written in major units as a decimal string.
type Money struct {
	Amount   int64  // minor units
	Currency string // ISO 4217 code
}

type moneyJSON struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// minorUnitExponents lists currencies whose minor unit is not 1/100.
var minorUnitExponents = map[string]int32{
	"JPY": 0,
	"KRW": 0,
	"VND": 0,
	"BHD": 3,
	"JOD": 3,
	"KWD": 3,
	"OMR": 3,
	"TND": 3,
}

// MinorUnitExponent returns the number of decimal places of a currency's minor unit.
func MinorUnitExponent(currency string) int32 {
	if exp, ok := minorUnitExponents[strings.ToUpper(currency)]; ok {
		return exp
	}
	return 2
}

// NewMoney builds a Money value from minor units.
func NewMoney(amount int64, currency string) Money {
	return Money{Amount: amount, Currency: strings.ToUpper(currency)}
}

// Zero returns a zero amount in the given currency.
func Zero(currency string) Money {
	return NewMoney(0, currency)
}

var (
	maxMinor = decimal.NewFromInt(math.MaxInt64)
	minMinor = decimal.NewFromInt(math.MinInt64)
)

// MoneyFromDecimal converts a major-unit decimal to Money, rounding half away
// from zero to the currency's minor unit. Amounts that do not fit in int64
// minor units are rejected.
func MoneyFromDecimal(d decimal.Decimal, currency string) (Money, error) {
	exp := MinorUnitExponent(currency)
	minor := d.Round(exp).Shift(exp)
	if minor.GreaterThan(maxMinor) || minor.LessThan(minMinor) {
		return Money{}, fmt.Errorf("%w: amount %s is out of range for %s",
			apperrors.ErrValidation, d.String(), strings.ToUpper(currency))
	}
	return NewMoney(minor.IntPart(), currency), nil
}

// MoneyFromDecimalExact converts a major-unit decimal to Money and fails if the
// value carries more precision than the currency's minor unit.
func MoneyFromDecimalExact(d decimal.Decimal, currency string) (Money, error) {
	exp := MinorUnitExponent(currency)
	if !d.Round(exp).Equal(d) {
		return Money{}, fmt.Errorf("%w: amount %s has more than %d decimal places for %s",
			apperrors.ErrValidation, d.String(), exp, strings.ToUpper(currency))
	}
	return MoneyFromDecimal(d, currency)
}

// ParseMoney parses a major-unit string such as "531.00".
func ParseMoney(s, currency string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Money{}, fmt.Errorf("%w: invalid amount %q", apperrors.ErrValidation, s)
	}
	return MoneyFromDecimalExact(d, currency)
}

// Decimal returns the amount in major units.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.Amount, -MinorUnitExponent(m.Currency))
}

// String formats the amount in major units followed by the currency code.
func (m Money) String() string {
	return m.Decimal().StringFixed(MinorUnitExponent(m.Currency)) + " " + m.Currency
}

func (m Money) IsZero() bool     { return m.Amount == 0 }
func (m Money) IsNegative() bool { return m.Amount < 0 }
func (m Money) IsPositive() bool { return m.Amount > 0 }

// SameCurrency reports whether both values are tagged with the same currency.
func (m Money) SameCurrency(o Money) bool {
	return strings.EqualFold(m.Currency, o.Currency)
}

// AddMinor returns a + b in minor units, or ErrValidation if the sum overflows.
func AddMinor(a, b int64) (int64, error) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, fmt.Errorf("%w: %d + %d overflows the amount range", apperrors.ErrValidation, a, b)
	}
	return sum, nil
}

// SubMinor returns a - b in minor units, or ErrValidation if the difference overflows.
func SubMinor(a, b int64) (int64, error) {
	diff := a - b
	if (b > 0 && diff > a) || (b < 0 && diff < a) {
		return 0, fmt.Errorf("%w: %d - %d overflows the amount range", apperrors.ErrValidation, a, b)
	}
	return diff, nil
}

// Add returns m + o. Both values must share a currency.
func (m Money) Add(o Money) (Money, error) {
	if !m.SameCurrency(o) {
		return Money{}, currencyMismatch(m, o)
	}
	sum, err := AddMinor(m.Amount, o.Amount)
	if err != nil {
		return Money{}, err
	}
	return NewMoney(sum, m.Currency), nil
}

// Sub returns m - o. Both values must share a currency.
func (m Money) Sub(o Money) (Money, error) {
	if !m.SameCurrency(o) {
		return Money{}, currencyMismatch(m, o)
	}
	diff, err := SubMinor(m.Amount, o.Amount)
	if err != nil {
		return Money{}, err
	}
	return NewMoney(diff, m.Currency), nil
}

// Neg returns the negated amount.
func (m Money) Neg() Money {
	return NewMoney(-m.Amount, m.Currency)
}

// Abs returns the absolute amount.
func (m Money) Abs() Money {
	if m.Amount < 0 {
		return m.Neg()
	}
	return m
}

func currencyMismatch(a, b Money) error {
	return fmt.Errorf("%w: currency mismatch %s vs %s", apperrors.ErrValidation, a.Currency, b.Currency)
}

// MarshalJSON writes {"amount":"531.00","currency":"INR"}.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Amount   string `json:"amount"`
		Currency string `json:"currency"`
	}{m.Decimal().StringFixed(MinorUnitExponent(m.Currency)), m.Currency})
}

// MarshalYAML writes the same shape as MarshalJSON.
func (m Money) MarshalYAML() (any, error) {
	return map[string]string{
		"amount":   m.Decimal().StringFixed(MinorUnitExponent(m.Currency)),
		"currency": m.Currency,
	}, nil
}

// UnmarshalJSON accepts the amount as a JSON string or number in major units.
func (m *Money) UnmarshalJSON(data []byte) error {
	var raw moneyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := MoneyFromDecimalExact(raw.Amount, raw.Currency)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
