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

// balanceService implements the BalanceCalculatorSvc interface. It is a pure
// read-side fold: account seed balance plus active entries replayed against
// the account's stored polarity.
type balanceService struct {
	BaseService
	accountRepo portsrepo.AccountReader
	ledgerRepo  portsrepo.LedgerEntryReader
}

// BalanceServiceOption is a functional option for configuring the balance service
type BalanceServiceOption func(*balanceService)

// WithBalanceOrganizationGuard sets the organization guard for the balance service.
func WithBalanceOrganizationGuard(guard portssvc.OrganizationGuardSvc) BalanceServiceOption {
	return func(s *balanceService) {
		s.OrganizationGuard = guard
	}
}

// NewBalanceService creates a new balance calculator with the provided options
func NewBalanceService(accountRepo portsrepo.AccountReader, ledgerRepo portsrepo.LedgerEntryReader, options ...BalanceServiceOption) portssvc.BalanceCalculatorSvc {
	svc := &balanceService{
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure balanceService implements the BalanceCalculatorSvc interface
var _ portssvc.BalanceCalculatorSvc = (*balanceService)(nil)

// ComputeAccountBalance computes the signed balance of one account as of
// q.AsOf. With q.StartDate set, all active entries before that date are
// folded into the opening balance first, so the result reflects period
// activity on top of the opening-as-of-startDate.
func (s *balanceService) ComputeAccountBalance(ctx context.Context, organizationID string, accountID string, q domain.BalanceQuery) (*domain.AccountBalance, error) {
	account, err := s.resolveAccount(ctx, organizationID, accountID)
	if err != nil {
		return nil, err
	}
	if q.StartDate != nil && q.StartDate.After(q.AsOf) {
		return nil, fmt.Errorf("%w: startDate %s is after asOf %s",
			apperrors.ErrInvalidRange, q.StartDate.Format("2006-01-02"), q.AsOf.Format("2006-01-02"))
	}
	return s.computeForAccount(ctx, account, q)
}

// resolveAccount fetches the account and hides its existence from other
// organizations by answering ErrNotFound on a tenant mismatch.
func (s *balanceService) resolveAccount(ctx context.Context, organizationID string, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.OrganizationID != organizationID || account.IsDeleted() {
		s.LogDebug(ctx, "Account not visible to organization",
			slog.String("account_id", accountID),
			slog.String("organization_id", organizationID))
		return nil, apperrors.ErrNotFound
	}
	return account, nil
}

// computeForAccount is the shared fold used by the single-account endpoint
// and by the report generators (which resolve and validate accounts in bulk).
func (s *balanceService) computeForAccount(ctx context.Context, account *domain.Account, q domain.BalanceQuery) (*domain.AccountBalance, error) {
	opening := account.OpeningBalance

	// Opening balance as of startDate: every active entry strictly before
	// the window start, folded with the same polarity rule as the window
	// itself. There is no separate pre-period code path that can diverge
	// from the full fold.
	if q.StartDate != nil {
		preTotals, err := s.ledgerRepo.AggregateEntries(ctx, account.OrganizationID, account.AccountID, domain.EntryFilter{
			Before: q.StartDate,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to aggregate pre-period entries for account %s: %w", account.AccountID, err)
		}
		opening = opening.Add(accounting.NetMovement(account.NormalBalance, preTotals))
	}

	filter := domain.EntryFilter{
		FromDate:     q.StartDate,
		ToDate:       &q.AsOf,
		FiscalYear:   q.FiscalYear,
		FiscalPeriod: q.FiscalPeriod,
	}
	totals, err := s.ledgerRepo.AggregateEntries(ctx, account.OrganizationID, account.AccountID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate entries for account %s: %w", account.AccountID, err)
	}

	closing := opening.Add(accounting.NetMovement(account.NormalBalance, totals))
	netDebit, netCredit := accounting.SplitNet(account.NormalBalance, closing)

	return &domain.AccountBalance{
		AccountID:     account.AccountID,
		Code:          account.Code,
		Name:          account.Name,
		AccountType:   account.AccountType,
		NormalBalance: account.NormalBalance,
		Opening:       opening,
		PeriodDebit:   totals.Debit,
		PeriodCredit:  totals.Credit,
		Closing:       closing,
		NetDebit:      netDebit,
		NetCredit:     netCredit,
	}, nil
}

// pointInTimeQuery builds the cumulative-since-inception query the balance
// sheet uses: no start date, optional fiscal scoping left empty.
func pointInTimeQuery(asOf time.Time) domain.BalanceQuery {
	return domain.BalanceQuery{AsOf: asOf}
}

// balanceTolerance absorbs presentation rounding, never logic errors: any
// difference at or above it indicates an unbalanced posting and is surfaced.
var balanceTolerance = decimal.NewFromFloat(0.01)
