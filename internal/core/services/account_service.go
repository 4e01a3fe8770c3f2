package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/finbooks-app/finbooks_backend/internal/apperrors"
	"github.com/finbooks-app/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks-app/finbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks-app/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks-app/finbooks_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// maxHierarchyDepth caps parent-chain walks so a cyclic parent reference in
// the data can never hang a request.
const maxHierarchyDepth = 32

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	ledgerRepo  portsrepo.LedgerEntryReader
}

// AccountServiceOption is a functional option for configuring the account service
type AccountServiceOption func(*accountService)

// WithAccountOrganizationGuard sets the organization guard for the account service.
func WithAccountOrganizationGuard(guard portssvc.OrganizationGuardSvc) AccountServiceOption {
	return func(s *accountService) {
		s.OrganizationGuard = guard
	}
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, ledgerRepo portsrepo.LedgerEntryReader, options ...AccountServiceOption) portssvc.AccountSvcFacade {
	svc := &accountService{
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// getOwnedAccount resolves an account and verifies organization ownership.
// Accounts of another organization and soft-deleted accounts both surface as
// ErrNotFound so existence is never leaked across tenants.
func (s *accountService) getOwnedAccount(ctx context.Context, organizationID string, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.OrganizationID != organizationID || account.IsDeleted() {
		return nil, fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
	}
	return account, nil
}

// GetAccountByID retrieves a specific account by its unique identifier.
func (s *accountService) GetAccountByID(ctx context.Context, organizationID string, accountID string) (*domain.Account, error) {
	if err := s.EnsureOrganization(ctx, organizationID); err != nil {
		return nil, err
	}
	return s.getOwnedAccount(ctx, organizationID, accountID)
}

// GetAccountByCode retrieves an account by its org-scoped code. The lookup is
// case-insensitive because codes are normalized to uppercase on write.
func (s *accountService) GetAccountByCode(ctx context.Context, organizationID string, code string) (*domain.Account, error) {
	if err := s.EnsureOrganization(ctx, organizationID); err != nil {
		return nil, err
	}
	account, err := s.accountRepo.FindAccountByCode(ctx, organizationID, normalizeCode(code))
	if err != nil {
		return nil, err
	}
	if account.IsDeleted() {
		return nil, fmt.Errorf("account code %s: %w", code, apperrors.ErrNotFound)
	}
	return account, nil
}

// ListAccounts retrieves a paginated list of accounts for an organization.
func (s *accountService) ListAccounts(ctx context.Context, organizationID string, limit int, offset int) ([]domain.Account, error) {
	if err := s.EnsureOrganization(ctx, organizationID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.accountRepo.ListAccounts(ctx, organizationID, limit, offset)
}

// ResolveChildren returns the direct children of an account.
func (s *accountService) ResolveChildren(ctx context.Context, organizationID string, accountID string) ([]domain.Account, error) {
	if err := s.EnsureOrganization(ctx, organizationID); err != nil {
		return nil, err
	}
	if _, err := s.getOwnedAccount(ctx, organizationID, accountID); err != nil {
		return nil, err
	}
	return s.accountRepo.ListChildAccounts(ctx, accountID)
}

// ResolveHierarchyPath walks parent links up from the account and returns the
// path ordered root first.
func (s *accountService) ResolveHierarchyPath(ctx context.Context, organizationID string, accountID string) ([]domain.Account, error) {
	if err := s.EnsureOrganization(ctx, organizationID); err != nil {
		return nil, err
	}
	account, err := s.getOwnedAccount(ctx, organizationID, accountID)
	if err != nil {
		return nil, err
	}

	path := []domain.Account{*account}
	for depth := 0; account.ParentAccountID != ""; depth++ {
		if depth >= maxHierarchyDepth {
			return nil, fmt.Errorf("account hierarchy deeper than %d levels for account %s", maxHierarchyDepth, accountID)
		}
		account, err = s.getOwnedAccount(ctx, organizationID, account.ParentAccountID)
		if err != nil {
			return nil, fmt.Errorf("broken parent chain: %w", err)
		}
		path = append([]domain.Account{*account}, path...)
	}
	return path, nil
}

// CreateAccount persists a new account after validating its code, parent and
// polarity. The normal balance defaults from the account type; an explicit
// value is stored as given so contra accounts can be created.
func (s *accountService) CreateAccount(ctx context.Context, organizationID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	if err := s.EnsureOrganization(ctx, organizationID); err != nil {
		return nil, err
	}

	code := normalizeCode(req.Code)
	if _, err := s.accountRepo.FindAccountByCode(ctx, organizationID, code); err == nil {
		return nil, fmt.Errorf("account code %s already exists: %w", code, apperrors.ErrDuplicate)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check account code: %w", err)
	}

	if req.ParentAccountID != nil && *req.ParentAccountID != "" {
		parent, err := s.getOwnedAccount(ctx, organizationID, *req.ParentAccountID)
		if err != nil {
			return nil, fmt.Errorf("parent account: %w", err)
		}
		if !parent.IsGroup {
			return nil, fmt.Errorf("%w: parent account %s is not a group account", apperrors.ErrValidation, parent.Code)
		}
		if parent.AccountType != req.AccountType {
			return nil, fmt.Errorf("%w: parent account type %s does not match %s", apperrors.ErrValidation, parent.AccountType, req.AccountType)
		}
	}

	normal := domain.DefaultNormalBalance(req.AccountType)
	if req.NormalBalance != nil {
		normal = domain.NormalBalance(*req.NormalBalance)
	}

	opening := decimal.Zero
	if req.OpeningBalance != nil {
		opening = *req.OpeningBalance
	}
	if req.IsGroup && !opening.IsZero() {
		return nil, fmt.Errorf("%w: group accounts cannot carry an opening balance", apperrors.ErrValidation)
	}

	now := time.Now()
	account := domain.Account{
		AccountID:      uuid.NewString(),
		OrganizationID: organizationID,
		Code:           code,
		Name:           strings.TrimSpace(req.Name),
		AccountType:    req.AccountType,
		NormalBalance:  normal,
		Category:       domain.AccountCategory(req.Category),
		IsGroup:        req.IsGroup,
		OpeningBalance: opening,
		Description:    req.Description,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if req.ParentAccountID != nil {
		account.ParentAccountID = *req.ParentAccountID
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account",
			slog.String("organization_id", organizationID),
			slog.String("code", code))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	s.LogInfo(ctx, "Account created",
		slog.String("organization_id", organizationID),
		slog.String("account_id", account.AccountID),
		slog.String("code", code))
	return &account, nil
}

// UpdateAccount updates an account's mutable details. The account type,
// normal balance and opening balance are fixed at creation; system accounts
// additionally refuse code changes.
func (s *accountService) UpdateAccount(ctx context.Context, organizationID string, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	if err := s.EnsureOrganization(ctx, organizationID); err != nil {
		return nil, err
	}
	account, err := s.getOwnedAccount(ctx, organizationID, accountID)
	if err != nil {
		return nil, err
	}

	if req.Code != nil {
		if account.IsSystemAccount {
			return nil, fmt.Errorf("%w: cannot change the code of system account %s", apperrors.ErrForbidden, account.Code)
		}
		code := normalizeCode(*req.Code)
		if code != account.Code {
			if _, err := s.accountRepo.FindAccountByCode(ctx, organizationID, code); err == nil {
				return nil, fmt.Errorf("account code %s already exists: %w", code, apperrors.ErrDuplicate)
			} else if !errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("failed to check account code: %w", err)
			}
			account.Code = code
		}
	}
	if req.Name != nil {
		account.Name = strings.TrimSpace(*req.Name)
	}
	if req.Category != nil {
		account.Category = domain.AccountCategory(*req.Category)
	}
	if req.Description != nil {
		account.Description = *req.Description
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}
	account.LastUpdatedAt = time.Now()
	account.LastUpdatedBy = userID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account",
			slog.String("organization_id", organizationID),
			slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to update account: %w", err)
	}
	return account, nil
}

// CanDelete reports whether the account may be soft-deleted: no ledger
// history (active or void), no children, and not a system account unless
// overridden.
func (s *accountService) CanDelete(ctx context.Context, account domain.Account, overrideSystem bool) (bool, string, error) {
	if account.IsSystemAccount && !overrideSystem {
		return false, "system accounts cannot be deleted", nil
	}

	hasChildren, err := s.accountRepo.HasChildAccounts(ctx, account.AccountID)
	if err != nil {
		return false, "", fmt.Errorf("failed to check child accounts: %w", err)
	}
	if hasChildren {
		return false, "account has child accounts", nil
	}

	hasEntries, err := s.ledgerRepo.HasEntries(ctx, account.AccountID)
	if err != nil {
		return false, "", fmt.Errorf("failed to check ledger entries: %w", err)
	}
	if hasEntries {
		return false, "account has ledger entries", nil
	}
	return true, "", nil
}

// DeleteAccount soft-deletes an account once the delete guard passes.
func (s *accountService) DeleteAccount(ctx context.Context, organizationID string, accountID string, userID string, overrideSystem bool) error {
	if err := s.EnsureOrganization(ctx, organizationID); err != nil {
		return err
	}
	account, err := s.getOwnedAccount(ctx, organizationID, accountID)
	if err != nil {
		return err
	}

	ok, reason, err := s.CanDelete(ctx, *account, overrideSystem)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, reason)
	}

	if err := s.accountRepo.SoftDeleteAccount(ctx, accountID, userID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to soft-delete account",
			slog.String("organization_id", organizationID),
			slog.String("account_id", accountID))
		return fmt.Errorf("failed to delete account: %w", err)
	}

	s.LogInfo(ctx, "Account deleted",
		slog.String("organization_id", organizationID),
		slog.String("account_id", accountID),
		slog.String("code", account.Code))
	return nil
}

// SeedDefaultChart bulk-inserts the standard chart of accounts for a fresh
// organization. Seeding a non-empty organization fails with ErrAlreadySeeded.
func (s *accountService) SeedDefaultChart(ctx context.Context, organizationID string, userID string) (int, error) {
	if err := s.EnsureOrganization(ctx, organizationID); err != nil {
		return 0, err
	}

	count, err := s.accountRepo.CountAccounts(ctx, organizationID)
	if err != nil {
		return 0, fmt.Errorf("failed to count accounts: %w", err)
	}
	if count > 0 {
		return 0, fmt.Errorf("organization %s already has %d accounts: %w", organizationID, count, apperrors.ErrAlreadySeeded)
	}

	accounts := buildDefaultChart(organizationID, userID, time.Now())
	if err := s.accountRepo.SaveAccounts(ctx, accounts); err != nil {
		s.LogError(ctx, err, "Failed to seed default chart",
			slog.String("organization_id", organizationID))
		return 0, fmt.Errorf("failed to seed default chart: %w", err)
	}

	s.LogInfo(ctx, "Default chart seeded",
		slog.String("organization_id", organizationID),
		slog.Int("account_count", len(accounts)))
	return len(accounts), nil
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
