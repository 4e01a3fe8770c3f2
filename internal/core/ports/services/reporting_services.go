package services

import (
	"context"

	"github.com/finbooks-app/finbooks_backend/internal/core/domain"
)

// BalanceCalculatorSvc computes the signed, normal-balance-oriented balance
// of one account over a bounded window.
type BalanceCalculatorSvc interface {
	// ComputeAccountBalance replays the account's active entries against its
	// stored polarity. Fails with ErrNotFound when the account does not
	// belong to the organization and ErrInvalidRange when the query's
	// startDate is after asOf.
	ComputeAccountBalance(ctx context.Context, organizationID string, accountID string, q domain.BalanceQuery) (*domain.AccountBalance, error)
}

// ReportingService generates the org-wide financial reports.
type ReportingService interface {
	// GenerateTrialBalance runs the balance calculator over every leaf
	// account in the period and partitions into net-debit/net-credit columns.
	GenerateTrialBalance(ctx context.Context, organizationID string, q domain.TrialBalanceQuery) (*domain.TrialBalance, error)

	// GenerateBalanceSheet produces the statement of financial position as of
	// a single instant, with retained earnings computed from revenue and
	// expense accounts.
	GenerateBalanceSheet(ctx context.Context, organizationID string, q domain.BalanceSheetQuery) (*domain.BalanceSheet, error)
}

// StatementService produces per-account running ledgers.
type StatementService interface {
	// GenerateAccountLedger returns the ordered, running-balance-annotated
	// transcript of one account over a date range.
	GenerateAccountLedger(ctx context.Context, organizationID string, accountID string, q domain.StatementQuery) (*domain.AccountStatement, error)
}
