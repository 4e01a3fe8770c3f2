package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/finbooks-app/finbooks_backend/internal/apperrors"
	"github.com/finbooks-app/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks-app/finbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks-app/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks-app/finbooks_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// statementService implements the StatementService interface. The opening
// balance comes from the balance calculator; the rows are an entry-by-entry
// replay with the same polarity fold, so for an active-only statement the
// closing agrees with the calculator's. When the caller opts void entries
// in, the fold and the totals cover them too.
type statementService struct {
	BaseService
	accountRepo portsrepo.AccountReader
	ledgerRepo  portsrepo.LedgerEntryReader
	balanceSvc  portssvc.BalanceCalculatorSvc
}

// StatementServiceOption is a functional option for configuring the statement service
type StatementServiceOption func(*statementService)

// WithStatementOrganizationGuard sets the organization guard for the statement service.
func WithStatementOrganizationGuard(guard portssvc.OrganizationGuardSvc) StatementServiceOption {
	return func(s *statementService) {
		s.OrganizationGuard = guard
	}
}

// NewStatementService creates a new statement service with the provided options
func NewStatementService(accountRepo portsrepo.AccountReader, ledgerRepo portsrepo.LedgerEntryReader, balanceSvc portssvc.BalanceCalculatorSvc, options ...StatementServiceOption) portssvc.StatementService {
	svc := &statementService{
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
		balanceSvc:  balanceSvc,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure statementService implements the StatementService interface
var _ portssvc.StatementService = (*statementService)(nil)

// GenerateAccountLedger returns the account's entries in the window ordered
// by (entryDate, createdAt), each annotated with the running balance after it.
func (s *statementService) GenerateAccountLedger(ctx context.Context, organizationID string, accountID string, q domain.StatementQuery) (*domain.AccountStatement, error) {
	if err := s.EnsureOrganization(ctx, organizationID); err != nil {
		s.LogError(ctx, err, "Organization check failed for account ledger",
			slog.String("organization_id", organizationID))
		return nil, err
	}

	end := time.Now()
	if q.EndDate != nil {
		end = *q.EndDate
	}
	if q.StartDate != nil && q.StartDate.After(end) {
		return nil, fmt.Errorf("%w: startDate %s is after endDate %s",
			apperrors.ErrInvalidRange, q.StartDate.Format("2006-01-02"), end.Format("2006-01-02"))
	}

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.OrganizationID != organizationID || account.IsDeleted() {
		return nil, fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
	}

	balance, err := s.balanceSvc.ComputeAccountBalance(ctx, organizationID, accountID, domain.BalanceQuery{
		AsOf:      end,
		StartDate: q.StartDate,
	})
	if err != nil {
		return nil, err
	}

	entries, err := s.ledgerRepo.ListEntries(ctx, organizationID, accountID, domain.EntryFilter{
		FromDate:    q.StartDate,
		ToDate:      &end,
		IncludeVoid: q.IncludeVoid,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list entries for account ledger",
			slog.String("organization_id", organizationID),
			slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}

	// Void entries are filtered out upstream unless the caller opted in.
	// Every fetched row moves the balance, so opting in makes a voided
	// posting read exactly as it did before the void.
	rows := make([]domain.StatementRow, 0, len(entries))
	running := balance.Opening
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, entry := range entries {
		running = accounting.ApplyEntry(running, account.NormalBalance, entry.EntryType, entry.Amount)
		if entry.EntryType == domain.Debit {
			totalDebit = totalDebit.Add(entry.Amount)
		} else {
			totalCredit = totalCredit.Add(entry.Amount)
		}
		rows = append(rows, domain.StatementRow{
			Entry:          entry,
			RunningBalance: running,
		})
	}

	statement := &domain.AccountStatement{
		Account:        *account,
		OpeningBalance: balance.Opening,
		ClosingBalance: running,
		TotalDebit:     totalDebit,
		TotalCredit:    totalCredit,
		Rows:           rows,
	}

	s.LogDebug(ctx, "Account ledger generated",
		slog.String("organization_id", organizationID),
		slog.String("account_id", accountID),
		slog.Int("row_count", len(rows)))
	return statement, nil
}
