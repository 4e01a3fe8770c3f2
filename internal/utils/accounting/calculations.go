package accounting

import (
	"fmt"

	"github.com/finbooks-app/finbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedAmount applies the polarity rule to a single posting: for a
// debit-normal account a debit adds and a credit subtracts; for a
// credit-normal account the directions invert. The stored polarity is
// honored as-is so contra accounts stay correct.
func SignedAmount(normal domain.NormalBalance, entryType domain.EntryType, amount decimal.Decimal) decimal.Decimal {
	if (normal == domain.DebitNormal) == (entryType == domain.Debit) {
		return amount
	}
	return amount.Neg()
}

// ApplyEntry folds one posting into a running balance.
func ApplyEntry(balance decimal.Decimal, normal domain.NormalBalance, entryType domain.EntryType, amount decimal.Decimal) decimal.Decimal {
	return balance.Add(SignedAmount(normal, entryType, amount))
}

// NetMovement folds aggregated debit/credit totals in one step. The fold is
// linear, so summed totals and an entry-by-entry replay give the same result.
func NetMovement(normal domain.NormalBalance, totals domain.EntryTotals) decimal.Decimal {
	if normal == domain.DebitNormal {
		return totals.Debit.Sub(totals.Credit)
	}
	return totals.Credit.Sub(totals.Debit)
}

// SplitNet converts a signed, polarity-oriented balance into the
// non-negative netDebit/netCredit pair the report layer exposes. A
// non-negative value lands in the account's normal column; a sign flip (an
// account gone "negative", e.g. a customer credit balance on an asset
// account) lands the absolute value in the opposite column.
func SplitNet(normal domain.NormalBalance, signed decimal.Decimal) (netDebit, netCredit decimal.Decimal) {
	if normal == domain.DebitNormal {
		if signed.Sign() >= 0 {
			return signed, decimal.Zero
		}
		return decimal.Zero, signed.Abs()
	}
	if signed.Sign() >= 0 {
		return decimal.Zero, signed
	}
	return signed.Abs(), decimal.Zero
}

// ValidateVoucherBalance checks that a batch of postings forming one voucher
// has equal raw debit and credit totals and only positive amounts.
func ValidateVoucherBalance(entries []domain.LedgerEntry) error {
	if len(entries) < 2 {
		return fmt.Errorf("voucher must have at least two ledger entries")
	}

	debitTotal := decimal.Zero
	creditTotal := decimal.Zero
	for _, e := range entries {
		if e.Amount.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("entry amount must be positive for account %s", e.AccountID)
		}
		switch e.EntryType {
		case domain.Debit:
			debitTotal = debitTotal.Add(e.Amount)
		case domain.Credit:
			creditTotal = creditTotal.Add(e.Amount)
		default:
			return fmt.Errorf("unknown entry type %q for account %s", e.EntryType, e.AccountID)
		}
	}

	if !debitTotal.Equal(creditTotal) {
		return fmt.Errorf("voucher entries do not balance: debit %s, credit %s", debitTotal, creditTotal)
	}
	return nil
}
