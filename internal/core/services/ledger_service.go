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
	"github.com/finbooks-app/finbooks_backend/internal/dto"
	"github.com/finbooks-app/finbooks_backend/internal/utils/accounting"
	"github.com/google/uuid"
)

// ledgerService implements the LedgerSvcFacade interface
type ledgerService struct {
	BaseService
	accountRepo      portsrepo.AccountReader
	ledgerRepo       portsrepo.LedgerRepositoryFacade
	fiscalStartMonth time.Month
}

// LedgerServiceOption is a functional option for configuring the ledger service
type LedgerServiceOption func(*ledgerService)

// WithLedgerOrganizationGuard sets the organization guard for the ledger service.
func WithLedgerOrganizationGuard(guard portssvc.OrganizationGuardSvc) LedgerServiceOption {
	return func(s *ledgerService) {
		s.OrganizationGuard = guard
	}
}

// WithFiscalStartMonth sets the month the fiscal year starts in. Fiscal
// labels on entries are derived from it at posting time.
func WithFiscalStartMonth(month time.Month) LedgerServiceOption {
	return func(s *ledgerService) {
		if month >= time.January && month <= time.December {
			s.fiscalStartMonth = month
		}
	}
}

// NewLedgerService creates a new ledger service with the provided options
func NewLedgerService(accountRepo portsrepo.AccountReader, ledgerRepo portsrepo.LedgerRepositoryFacade, options ...LedgerServiceOption) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		accountRepo:      accountRepo,
		ledgerRepo:       ledgerRepo,
		fiscalStartMonth: time.April,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure ledgerService implements the LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// PostVoucherEntries validates and persists one voucher's postings
// atomically. Every line must hit an active, non-group account of the
// organization, and the batch must balance to the cent before anything is
// written.
func (s *ledgerService) PostVoucherEntries(ctx context.Context, organizationID string, req dto.PostVoucherRequest, userID string) ([]domain.LedgerEntry, error) {
	if err := s.EnsureOrganization(ctx, organizationID); err != nil {
		return nil, err
	}

	entryDate, err := time.Parse("2006-01-02", req.EntryDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid entryDate %q, expected YYYY-MM-DD", apperrors.ErrValidation, req.EntryDate)
	}

	accountIDs := make([]string, 0, len(req.Entries))
	for _, line := range req.Entries {
		accountIDs = append(accountIDs, line.AccountID)
	}
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve voucher accounts: %w", err)
	}
	for _, line := range req.Entries {
		account, ok := accounts[line.AccountID]
		if !ok || account.OrganizationID != organizationID || account.IsDeleted() {
			return nil, fmt.Errorf("account %s: %w", line.AccountID, apperrors.ErrNotFound)
		}
		if account.IsGroup {
			return nil, fmt.Errorf("%w: account %s is a group account and cannot hold entries", apperrors.ErrValidation, account.Code)
		}
		if !account.IsActive {
			return nil, fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, account.Code)
		}
	}

	voucherID := req.VoucherID
	if voucherID == "" {
		voucherID = uuid.NewString()
	}
	fiscalYear, fiscalPeriod := accounting.FiscalLabel(entryDate, s.fiscalStartMonth)

	now := time.Now()
	entries := make([]domain.LedgerEntry, 0, len(req.Entries))
	for _, line := range req.Entries {
		entries = append(entries, domain.LedgerEntry{
			EntryID:        uuid.NewString(),
			OrganizationID: organizationID,
			AccountID:      line.AccountID,
			VoucherID:      voucherID,
			EntryType:      line.EntryType,
			Amount:         line.Amount,
			EntryDate:      entryDate,
			Status:         domain.EntryActive,
			FiscalYear:     fiscalYear,
			FiscalPeriod:   fiscalPeriod,
			Description:    line.Description,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		})
	}

	if err := accounting.ValidateVoucherBalance(entries); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	if err := s.ledgerRepo.SaveEntries(ctx, entries); err != nil {
		s.LogError(ctx, err, "Failed to save voucher entries",
			slog.String("organization_id", organizationID),
			slog.String("voucher_id", voucherID))
		return nil, fmt.Errorf("failed to save voucher entries: %w", err)
	}

	s.LogInfo(ctx, "Voucher posted",
		slog.String("organization_id", organizationID),
		slog.String("voucher_id", voucherID),
		slog.Int("entry_count", len(entries)))
	return entries, nil
}

// GetEntry retrieves a single entry scoped to the organization.
func (s *ledgerService) GetEntry(ctx context.Context, organizationID string, entryID string) (*domain.LedgerEntry, error) {
	if err := s.EnsureOrganization(ctx, organizationID); err != nil {
		return nil, err
	}
	entry, err := s.ledgerRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.OrganizationID != organizationID {
		return nil, fmt.Errorf("ledger entry %s: %w", entryID, apperrors.ErrNotFound)
	}
	return entry, nil
}

// ListVoucherEntries retrieves every entry posted under one voucher.
func (s *ledgerService) ListVoucherEntries(ctx context.Context, organizationID string, voucherID string) ([]domain.LedgerEntry, error) {
	if err := s.EnsureOrganization(ctx, organizationID); err != nil {
		return nil, err
	}
	entries, err := s.ledgerRepo.FindEntriesByVoucherID(ctx, organizationID, voucherID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("voucher %s: %w", voucherID, apperrors.ErrNotFound)
	}
	return entries, nil
}

// VoidEntry flips an active entry to VOID. Voiding is idempotent in effect
// but a second void is rejected so callers learn about the race.
func (s *ledgerService) VoidEntry(ctx context.Context, organizationID string, entryID string, userID string) (*domain.LedgerEntry, error) {
	entry, err := s.GetEntry(ctx, organizationID, entryID)
	if err != nil {
		return nil, err
	}
	if entry.Status == domain.EntryVoid {
		return nil, fmt.Errorf("%w: ledger entry %s is already void", apperrors.ErrValidation, entryID)
	}

	now := time.Now()
	if err := s.ledgerRepo.UpdateEntryStatus(ctx, entryID, domain.EntryVoid, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to void ledger entry",
			slog.String("organization_id", organizationID),
			slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to void ledger entry: %w", err)
	}

	entry.Status = domain.EntryVoid
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = userID

	s.LogInfo(ctx, "Ledger entry voided",
		slog.String("organization_id", organizationID),
		slog.String("entry_id", entryID),
		slog.String("voucher_id", entry.VoucherID))
	return entry, nil
}
