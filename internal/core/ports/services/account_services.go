package services

import (
	"context"

	"github.com/finbooks-app/finbooks_backend/internal/core/domain"
	"github.com/finbooks-app/finbooks_backend/internal/dto"
)

// AccountReaderSvc defines read operations for chart-of-accounts data
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its unique identifier.
	GetAccountByID(ctx context.Context, organizationID string, accountID string) (*domain.Account, error)

	// GetAccountByCode retrieves an account by its org-scoped code.
	GetAccountByCode(ctx context.Context, organizationID string, code string) (*domain.Account, error)

	// ListAccounts retrieves a paginated list of accounts for an organization.
	ListAccounts(ctx context.Context, organizationID string, limit int, offset int) ([]domain.Account, error)

	// ResolveChildren returns the direct children of an account.
	ResolveChildren(ctx context.Context, organizationID string, accountID string) ([]domain.Account, error)

	// ResolveHierarchyPath returns the root-to-node path of an account.
	ResolveHierarchyPath(ctx context.Context, organizationID string, accountID string) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for chart-of-accounts data
type AccountWriterSvc interface {
	// CreateAccount persists a new account.
	CreateAccount(ctx context.Context, organizationID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error)

	// UpdateAccount updates an existing account's details.
	UpdateAccount(ctx context.Context, organizationID string, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error)

	// DeleteAccount soft-deletes a leaf account with no ledger history.
	DeleteAccount(ctx context.Context, organizationID string, accountID string, userID string, overrideSystem bool) error

	// SeedDefaultChart bulk-inserts the standard chart of accounts. Fails
	// with ErrAlreadySeeded when any non-deleted account exists.
	SeedDefaultChart(ctx context.Context, organizationID string, userID string) (int, error)
}

// AccountGuardSvc exposes the delete precondition check.
type AccountGuardSvc interface {
	// CanDelete reports whether the account may be soft-deleted, with a
	// human-readable reason when it may not.
	CanDelete(ctx context.Context, account domain.Account, overrideSystem bool) (bool, string, error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
	AccountGuardSvc
}
