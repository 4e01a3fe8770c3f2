package accounting_test

import (
	"testing"

	"github.com/finbooks-app/finbooks_backend/internal/core/domain"
	"github.com/finbooks-app/finbooks_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSignedAmount(t *testing.T) {
	tests := []struct {
		name      string
		normal    domain.NormalBalance
		entryType domain.EntryType
		amount    string
		want      string
	}{
		{"debit normal, debit adds", domain.DebitNormal, domain.Debit, "100", "100"},
		{"debit normal, credit subtracts", domain.DebitNormal, domain.Credit, "100", "-100"},
		{"credit normal, credit adds", domain.CreditNormal, domain.Credit, "100", "100"},
		{"credit normal, debit subtracts", domain.CreditNormal, domain.Debit, "100", "-100"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := accounting.SignedAmount(tt.normal, tt.entryType, dec(tt.amount))
			assert.True(t, got.Equal(dec(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

// Folding aggregated totals must agree with an entry-by-entry replay.
func TestNetMovementMatchesReplay(t *testing.T) {
	entries := []struct {
		entryType domain.EntryType
		amount    string
	}{
		{domain.Debit, "500"},
		{domain.Credit, "200"},
		{domain.Debit, "12.34"},
		{domain.Credit, "0.01"},
	}

	for _, normal := range []domain.NormalBalance{domain.DebitNormal, domain.CreditNormal} {
		replayed := decimal.Zero
		totals := domain.EntryTotals{Debit: decimal.Zero, Credit: decimal.Zero}
		for _, e := range entries {
			replayed = accounting.ApplyEntry(replayed, normal, e.entryType, dec(e.amount))
			if e.entryType == domain.Debit {
				totals.Debit = totals.Debit.Add(dec(e.amount))
			} else {
				totals.Credit = totals.Credit.Add(dec(e.amount))
			}
		}
		assert.True(t, accounting.NetMovement(normal, totals).Equal(replayed), "normal=%s", normal)
	}
}

func TestSplitNet(t *testing.T) {
	tests := []struct {
		name       string
		normal     domain.NormalBalance
		signed     string
		wantDebit  string
		wantCredit string
	}{
		{"debit normal positive", domain.DebitNormal, "150", "150", "0"},
		{"debit normal negative flips column", domain.DebitNormal, "-150", "0", "150"},
		{"credit normal positive", domain.CreditNormal, "300", "0", "300"},
		{"credit normal negative flips column", domain.CreditNormal, "-300", "300", "0"},
		{"zero stays in normal column", domain.DebitNormal, "0", "0", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			netDebit, netCredit := accounting.SplitNet(tt.normal, dec(tt.signed))
			assert.True(t, netDebit.Equal(dec(tt.wantDebit)))
			assert.True(t, netCredit.Equal(dec(tt.wantCredit)))
		})
	}
}

func TestValidateVoucherBalance(t *testing.T) {
	entry := func(entryType domain.EntryType, amount string) domain.LedgerEntry {
		return domain.LedgerEntry{AccountID: "acc", EntryType: entryType, Amount: dec(amount)}
	}

	t.Run("balanced voucher", func(t *testing.T) {
		err := accounting.ValidateVoucherBalance([]domain.LedgerEntry{
			entry(domain.Debit, "250"),
			entry(domain.Credit, "100"),
			entry(domain.Credit, "150"),
		})
		require.NoError(t, err)
	})

	t.Run("unbalanced voucher", func(t *testing.T) {
		err := accounting.ValidateVoucherBalance([]domain.LedgerEntry{
			entry(domain.Debit, "250"),
			entry(domain.Credit, "200"),
		})
		require.Error(t, err)
	})

	t.Run("single entry", func(t *testing.T) {
		err := accounting.ValidateVoucherBalance([]domain.LedgerEntry{entry(domain.Debit, "100")})
		require.Error(t, err)
	})

	t.Run("non-positive amount", func(t *testing.T) {
		err := accounting.ValidateVoucherBalance([]domain.LedgerEntry{
			entry(domain.Debit, "0"),
			entry(domain.Credit, "0"),
		})
		require.Error(t, err)
	})
}
