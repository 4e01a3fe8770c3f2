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
	"golang.org/x/sync/errgroup"
)

const defaultReportWorkerLimit = 8

// reportingService implements the ReportingService interface. Both reports
// fan out to the balance calculator once per leaf account; the fan-out is
// bounded so an organization with thousands of accounts cannot exhaust the
// datastore's connection budget.
type reportingService struct {
	BaseService
	accountRepo portsrepo.AccountReader
	balanceSvc  portssvc.BalanceCalculatorSvc
	rules       accounting.ClassificationRules
	workerLimit int
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithReportingOrganizationGuard sets the organization guard for the reporting service.
func WithReportingOrganizationGuard(guard portssvc.OrganizationGuardSvc) ReportingServiceOption {
	return func(s *reportingService) {
		s.OrganizationGuard = guard
	}
}

// WithClassificationRules overrides the balance-sheet bucketing tables.
func WithClassificationRules(rules accounting.ClassificationRules) ReportingServiceOption {
	return func(s *reportingService) {
		s.rules = rules
	}
}

// WithReportWorkerLimit bounds the per-account fan-out. Size it near the
// database pool limit.
func WithReportWorkerLimit(limit int) ReportingServiceOption {
	return func(s *reportingService) {
		if limit > 0 {
			s.workerLimit = limit
		}
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(accountRepo portsrepo.AccountReader, balanceSvc portssvc.BalanceCalculatorSvc, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		accountRepo: accountRepo,
		balanceSvc:  balanceSvc,
		rules:       accounting.DefaultClassificationRules(),
		workerLimit: defaultReportWorkerLimit,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// computeBalances runs the balance calculator over the given accounts with a
// bounded worker pool. Results keep the accounts' order (ordered by code).
func (s *reportingService) computeBalances(ctx context.Context, organizationID string, accounts []domain.Account, q domain.BalanceQuery) ([]*domain.AccountBalance, error) {
	results := make([]*domain.AccountBalance, len(accounts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workerLimit)
	for i := range accounts {
		g.Go(func() error {
			balance, err := s.balanceSvc.ComputeAccountBalance(gctx, organizationID, accounts[i].AccountID, q)
			if err != nil {
				return fmt.Errorf("balance for account %s: %w", accounts[i].Code, err)
			}
			results[i] = balance
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// GenerateTrialBalance lists every leaf account's net debit/credit over the
// period and checks that the grand totals agree.
func (s *reportingService) GenerateTrialBalance(ctx context.Context, organizationID string, q domain.TrialBalanceQuery) (*domain.TrialBalance, error) {
	if err := s.EnsureOrganization(ctx, organizationID); err != nil {
		s.LogError(ctx, err, "Organization check failed for trial balance",
			slog.String("organization_id", organizationID))
		return nil, err
	}

	asOf := time.Now()
	if q.EndDate != nil {
		asOf = *q.EndDate
	}
	if q.StartDate != nil && q.StartDate.After(asOf) {
		return nil, fmt.Errorf("%w: startDate %s is after endDate %s",
			apperrors.ErrInvalidRange, q.StartDate.Format("2006-01-02"), asOf.Format("2006-01-02"))
	}

	accounts, err := s.accountRepo.ListLeafAccounts(ctx, organizationID, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to list leaf accounts for trial balance",
			slog.String("organization_id", organizationID))
		return nil, fmt.Errorf("failed to list leaf accounts: %w", err)
	}

	balances, err := s.computeBalances(ctx, organizationID, accounts, domain.BalanceQuery{
		AsOf:         asOf,
		StartDate:    q.StartDate,
		FiscalYear:   q.FiscalYear,
		FiscalPeriod: q.FiscalPeriod,
	})
	if err != nil {
		s.LogError(ctx, err, "Trial balance fan-out failed",
			slog.String("organization_id", organizationID))
		return nil, err
	}

	tb := &domain.TrialBalance{
		Rows:          make([]domain.TrialBalanceRow, 0, len(balances)),
		GroupedByType: make(map[domain.AccountType][]domain.TrialBalanceRow),
		TotalDebit:    decimal.Zero,
		TotalCredit:   decimal.Zero,
	}
	for _, b := range balances {
		// Zero-activity, zero-opening accounts are omitted.
		if b.PeriodDebit.IsZero() && b.PeriodCredit.IsZero() && b.Opening.IsZero() {
			continue
		}
		row := domain.TrialBalanceRow{
			AccountID:      b.AccountID,
			Code:           b.Code,
			Name:           b.Name,
			AccountType:    b.AccountType,
			OpeningBalance: b.Opening,
			Debit:          b.PeriodDebit,
			Credit:         b.PeriodCredit,
			NetDebit:       b.NetDebit,
			NetCredit:      b.NetCredit,
		}
		tb.Rows = append(tb.Rows, row)
		tb.GroupedByType[b.AccountType] = append(tb.GroupedByType[b.AccountType], row)
		tb.TotalDebit = tb.TotalDebit.Add(b.NetDebit)
		tb.TotalCredit = tb.TotalCredit.Add(b.NetCredit)
	}

	tb.Difference = tb.TotalDebit.Sub(tb.TotalCredit)
	// The tolerance absorbs rounding only. A real difference is surfaced as
	// data, never corrected.
	tb.IsBalanced = tb.Difference.Abs().LessThan(balanceTolerance)

	s.LogInfo(ctx, "Trial balance generated",
		slog.String("organization_id", organizationID),
		slog.Int("row_count", len(tb.Rows)),
		slog.Bool("is_balanced", tb.IsBalanced))
	return tb, nil
}

// GenerateBalanceSheet produces the statement of financial position as of a
// single instant. Balances are cumulative since account inception; retained
// earnings is all-time net income, rolled into equity.
func (s *reportingService) GenerateBalanceSheet(ctx context.Context, organizationID string, q domain.BalanceSheetQuery) (*domain.BalanceSheet, error) {
	if err := s.EnsureOrganization(ctx, organizationID); err != nil {
		s.LogError(ctx, err, "Organization check failed for balance sheet",
			slog.String("organization_id", organizationID))
		return nil, err
	}

	positionAccounts, err := s.accountRepo.ListLeafAccounts(ctx, organizationID,
		[]domain.AccountType{domain.Asset, domain.Liability, domain.Equity})
	if err != nil {
		s.LogError(ctx, err, "Failed to list position accounts for balance sheet",
			slog.String("organization_id", organizationID))
		return nil, fmt.Errorf("failed to list position accounts: %w", err)
	}

	positionBalances, err := s.computeBalances(ctx, organizationID, positionAccounts, pointInTimeQuery(q.AsOf))
	if err != nil {
		s.LogError(ctx, err, "Balance sheet fan-out failed",
			slog.String("organization_id", organizationID))
		return nil, err
	}

	bs := &domain.BalanceSheet{AsOf: q.AsOf}
	for i, b := range positionBalances {
		// Balances within presentation tolerance of zero are dropped.
		if b.Closing.Abs().LessThan(balanceTolerance) {
			continue
		}
		line := domain.BalanceSheetAccount{
			AccountID: b.AccountID,
			Code:      b.Code,
			Name:      b.Name,
			Balance:   b.Closing,
		}
		switch b.AccountType {
		case domain.Asset:
			if s.rules.ClassifyAsset(positionAccounts[i]) == accounting.BucketCurrentAsset {
				bs.Assets.Current = append(bs.Assets.Current, line)
			} else {
				bs.Assets.Fixed = append(bs.Assets.Fixed, line)
			}
		case domain.Liability:
			if s.rules.ClassifyLiability(positionAccounts[i]) == accounting.BucketCurrentLiability {
				bs.Liabilities.Current = append(bs.Liabilities.Current, line)
			} else {
				bs.Liabilities.LongTerm = append(bs.Liabilities.LongTerm, line)
			}
		case domain.Equity:
			bs.Equity.Accounts = append(bs.Equity.Accounts, line)
		}
	}

	// Sub-totals are re-derived from the bucketed lists so line items and
	// section totals can never disagree.
	bs.Assets.CurrentTotal = sumBalances(bs.Assets.Current)
	bs.Assets.FixedTotal = sumBalances(bs.Assets.Fixed)
	bs.Assets.Total = bs.Assets.CurrentTotal.Add(bs.Assets.FixedTotal)
	bs.Liabilities.CurrentTotal = sumBalances(bs.Liabilities.Current)
	bs.Liabilities.LongTermTotal = sumBalances(bs.Liabilities.LongTerm)
	bs.Liabilities.Total = bs.Liabilities.CurrentTotal.Add(bs.Liabilities.LongTermTotal)

	retained, summary, err := s.computeRetainedEarnings(ctx, organizationID, q)
	if err != nil {
		return nil, err
	}
	bs.Equity.RetainedEarnings = retained
	bs.Equity.Total = sumBalances(bs.Equity.Accounts).Add(retained)
	bs.RevenueExpenseSummary = summary

	bs.TotalAssets = bs.Assets.Total
	bs.TotalLiabilitiesAndEquity = bs.Liabilities.Total.Add(bs.Equity.Total)
	bs.Difference = bs.TotalAssets.Sub(bs.TotalLiabilitiesAndEquity)
	// An unbalanced sheet is data for the operator, not an error: it points
	// at a posting defect upstream and must never be hidden.
	bs.IsBalanced = bs.Difference.Abs().LessThan(balanceTolerance)

	s.LogInfo(ctx, "Balance sheet generated",
		slog.String("organization_id", organizationID),
		slog.String("as_of", q.AsOf.Format("2006-01-02")),
		slog.Bool("is_balanced", bs.IsBalanced))
	return bs, nil
}

// computeRetainedEarnings folds all revenue and expense leaves up to asOf.
// Retained earnings is cumulative since inception by accounting convention.
// The returned summary is fiscal-year-scoped when the query names a year,
// and is reported as a separate figure so the two are never conflated.
func (s *reportingService) computeRetainedEarnings(ctx context.Context, organizationID string, q domain.BalanceSheetQuery) (decimal.Decimal, domain.RevenueExpenseSummary, error) {
	incomeAccounts, err := s.accountRepo.ListLeafAccounts(ctx, organizationID,
		[]domain.AccountType{domain.Revenue, domain.Expense})
	if err != nil {
		return decimal.Zero, domain.RevenueExpenseSummary{}, fmt.Errorf("failed to list revenue/expense accounts: %w", err)
	}

	balances, err := s.computeBalances(ctx, organizationID, incomeAccounts, pointInTimeQuery(q.AsOf))
	if err != nil {
		return decimal.Zero, domain.RevenueExpenseSummary{}, err
	}

	totalRevenue := decimal.Zero
	totalExpense := decimal.Zero
	for _, b := range balances {
		switch b.AccountType {
		case domain.Revenue:
			totalRevenue = totalRevenue.Add(b.Closing)
		case domain.Expense:
			totalExpense = totalExpense.Add(b.Closing)
		}
	}
	retained := totalRevenue.Sub(totalExpense)

	summary := domain.RevenueExpenseSummary{
		TotalRevenue: totalRevenue,
		TotalExpense: totalExpense,
		NetIncome:    retained,
	}
	if q.FiscalYear != "" {
		fyBalances, err := s.computeBalances(ctx, organizationID, incomeAccounts, domain.BalanceQuery{
			AsOf:       q.AsOf,
			FiscalYear: q.FiscalYear,
		})
		if err != nil {
			return decimal.Zero, domain.RevenueExpenseSummary{}, err
		}
		fyRevenue := decimal.Zero
		fyExpense := decimal.Zero
		for _, b := range fyBalances {
			// Movement within the fiscal year, without the seed balance.
			movement := b.Closing.Sub(b.Opening)
			switch b.AccountType {
			case domain.Revenue:
				fyRevenue = fyRevenue.Add(movement)
			case domain.Expense:
				fyExpense = fyExpense.Add(movement)
			}
		}
		summary = domain.RevenueExpenseSummary{
			TotalRevenue: fyRevenue,
			TotalExpense: fyExpense,
			NetIncome:    fyRevenue.Sub(fyExpense),
		}
	}
	return retained, summary, nil
}

func sumBalances(accounts []domain.BalanceSheetAccount) decimal.Decimal {
	total := decimal.Zero
	for _, acc := range accounts {
		total = total.Add(acc.Balance)
	}
	return total
}
