package repositories

import (
	"context"
	"time"

	"github.com/finbooks-app/finbooks_backend/internal/core/domain"
)

// AccountReader defines read operations for chart-of-accounts data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountByCode retrieves an account by its org-scoped code.
	FindAccountByCode(ctx context.Context, organizationID string, code string) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts by their IDs.
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts retrieves a paginated list of accounts for an organization.
	ListAccounts(ctx context.Context, organizationID string, limit int, offset int) ([]domain.Account, error)

	// ListLeafAccounts retrieves every active, non-deleted leaf account
	// (isGroup=false) for the organization, ordered by code. An empty types
	// slice means all account types.
	ListLeafAccounts(ctx context.Context, organizationID string, types []domain.AccountType) ([]domain.Account, error)

	// ListChildAccounts retrieves the direct children of an account.
	ListChildAccounts(ctx context.Context, accountID string) ([]domain.Account, error)

	// HasChildAccounts reports whether any non-deleted account points at
	// accountID as its parent.
	HasChildAccounts(ctx context.Context, accountID string) (bool, error)

	// CountAccounts returns the number of non-deleted accounts in the
	// organization. Used as the seed-chart idempotency guard.
	CountAccounts(ctx context.Context, organizationID string) (int, error)
}

// AccountWriter defines write operations for chart-of-accounts data
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// SaveAccounts persists a batch of accounts atomically. Used by the
	// default chart seeder.
	SaveAccounts(ctx context.Context, accounts []domain.Account) error

	// UpdateAccount updates an existing account's details.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// SoftDeleteAccount stamps deleted_at and clears is_active.
	SoftDeleteAccount(ctx context.Context, accountID string, userID string, now time.Time) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
