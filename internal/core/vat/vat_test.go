package vat

import (
	"testing"

	"github.com/SscSPs/garage_books/internal/apperrors"
	"github.com/SscSPs/garage_books/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitGross(t *testing.T) {
	rate18 := decimal.RequireFromString("0.18")
	tests := []struct {
		name    string
		gross   domain.Money
		rate    decimal.Decimal
		wantNet int64
		wantTax int64
	}{
		{"receipt 531.00 at 18%", domain.NewMoney(53100, "INR"), rate18, 45000, 8100},
		{"large receipt 53100.00 at 18%", domain.NewMoney(5310000, "INR"), rate18, 4500000, 810000},
		{"rounds net half up", domain.NewMoney(10000, "INR"), rate18, 8475, 1525},
		{"zero gross", domain.Zero("INR"), rate18, 0, 0},
		{"zero rate", domain.NewMoney(999, "INR"), decimal.Zero, 999, 0},
		{"yen has no minor unit", domain.NewMoney(1180, "JPY"), rate18, 1000, 180},
		{"negative gross refund", domain.NewMoney(-10000, "INR"), rate18, -8475, -1525},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SplitGross(tt.gross, tt.rate)
			require.NoError(t, err)
			assert.Equal(t, tt.wantNet, got.Net.Amount)
			assert.Equal(t, tt.wantTax, got.Tax.Amount)
			assert.Equal(t, tt.gross.Amount, got.Net.Amount+got.Tax.Amount)
			assert.Equal(t, tt.gross.Currency, got.Net.Currency)
			assert.Equal(t, tt.gross.Currency, got.Tax.Currency)
		})
	}
}

func TestSplitGross_NetPlusTaxAlwaysEqualsGross(t *testing.T) {
	rates := []string{"0", "0.05", "0.12", "0.18", "0.28", "0.075", "1.5"}
	for _, r := range rates {
		rate := decimal.RequireFromString(r)
		for gross := int64(0); gross < 5000; gross += 7 {
			got, err := SplitGross(domain.NewMoney(gross, "INR"), rate)
			require.NoError(t, err)
			assert.Equal(t, gross, got.Net.Amount+got.Tax.Amount, "gross %d rate %s", gross, r)
		}
	}
}

func TestSplitGross_NegativeRate(t *testing.T) {
	_, err := SplitGross(domain.NewMoney(100, "INR"), decimal.RequireFromString("-0.01"))
	var rateErr *apperrors.InvalidRateError
	require.ErrorAs(t, err, &rateErr)
	assert.Equal(t, "-0.01", rateErr.Rate)
	assert.ErrorIs(t, err, apperrors.ErrInvalidRate)
}

func TestAddTax(t *testing.T) {
	got, err := AddTax(domain.NewMoney(45000, "INR"), decimal.RequireFromString("0.18"))
	require.NoError(t, err)
	assert.Equal(t, int64(8100), got.Tax.Amount)
	assert.Equal(t, int64(53100), got.Gross.Amount)

	got, err = AddTax(domain.NewMoney(333, "INR"), decimal.RequireFromString("0.05"))
	require.NoError(t, err)
	assert.Equal(t, int64(17), got.Tax.Amount) // 16.65 rounds up
	assert.Equal(t, int64(350), got.Gross.Amount)

	_, err = AddTax(domain.NewMoney(1, "INR"), decimal.RequireFromString("-1"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidRate)
}

func TestParseRate(t *testing.T) {
	r, err := ParseRate("18%")
	require.NoError(t, err)
	assert.True(t, r.Equal(decimal.RequireFromString("0.18")))

	r, err = ParseRate(" 0.05 ")
	require.NoError(t, err)
	assert.True(t, r.Equal(decimal.RequireFromString("0.05")))

	_, err = ParseRate("abc")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = ParseRate("-5%")
	assert.ErrorIs(t, err, apperrors.ErrInvalidRate)
}
