package accounting

import (
	"fmt"

	"github.com/SscSPs/garage_books/internal/core/domain"
)

// SignedAmount applies the correct sign to a line amount based on account type.
// The result is in minor units of the line's currency.
func SignedAmount(line domain.JournalLine, accountType domain.AccountType) (int64, error) {
	signedAmount := line.Debit.Amount - line.Credit.Amount

	// Determine sign based on accounting convention
	// DEBIT to ASSET/EXPENSE -> Positive (+)
	// CREDIT to ASSET/EXPENSE -> Negative (-)
	// DEBIT to LIABILITY/EQUITY/INCOME -> Negative (-)
	// CREDIT to LIABILITY/EQUITY/INCOME -> Positive (+)
	switch accountType {
	case domain.Asset, domain.Expense:
		return signedAmount, nil
	case domain.Liability, domain.Equity, domain.Income:
		return -signedAmount, nil
	default:
		return 0, fmt.Errorf("unknown account type '%s' encountered for account ID %s", accountType, line.AccountID)
	}
}

// NormalBalanceSides splits a signed balance into trial-balance debit and
// credit columns, both non-negative.
func NormalBalanceSides(balance int64, accountType domain.AccountType) (debit, credit int64) {
	if accountType.DebitNormal() {
		if balance >= 0 {
			return balance, 0
		}
		return 0, -balance
	}
	if balance >= 0 {
		return 0, balance
	}
	return -balance, 0
}
