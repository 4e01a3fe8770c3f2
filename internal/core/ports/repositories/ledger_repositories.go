package repositories

import (
	"context"
	"time"

	"github.com/finbooks-app/finbooks_backend/internal/core/domain"
)

// LedgerEntryReader defines read operations over the ledger entry store.
// The balance engine consumes entries strictly read-only.
type LedgerEntryReader interface {
	// FindEntryByID retrieves a single entry.
	FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error)

	// ListEntries retrieves the entries of one account matching the filter,
	// ordered by (entry_date asc, created_at asc) so same-day postings have a
	// deterministic order. Void entries are included only when the filter
	// asks for them.
	ListEntries(ctx context.Context, organizationID string, accountID string, filter domain.EntryFilter) ([]domain.LedgerEntry, error)

	// FindEntriesByVoucherID retrieves every entry posted under one voucher,
	// void lines included, in posting order.
	FindEntriesByVoucherID(ctx context.Context, organizationID string, voucherID string) ([]domain.LedgerEntry, error)

	// AggregateEntries sums the raw debit and credit amounts of the ACTIVE
	// entries matching the filter. Balances never count void entries, so the
	// filter's IncludeVoid flag is ignored here.
	AggregateEntries(ctx context.Context, organizationID string, accountID string, filter domain.EntryFilter) (domain.EntryTotals, error)

	// HasEntries reports whether the account has any ledger history at all,
	// active or void. Used by the delete guard.
	HasEntries(ctx context.Context, accountID string) (bool, error)
}

// LedgerEntryWriter defines the posting surface. Entries are immutable once
// created; the only permitted mutation is the status flip to VOID.
type LedgerEntryWriter interface {
	// SaveEntries persists a balanced batch of entries atomically.
	SaveEntries(ctx context.Context, entries []domain.LedgerEntry) error

	// UpdateEntryStatus flips an entry's status and stamps the audit fields.
	UpdateEntryStatus(ctx context.Context, entryID string, status domain.EntryStatus, userID string, now time.Time) error
}

// LedgerRepositoryFacade combines all ledger-entry repository interfaces
type LedgerRepositoryFacade interface {
	LedgerEntryReader
	LedgerEntryWriter
}
