package services

import (
	"context"

	"github.com/finbooks-app/finbooks_backend/internal/core/domain"
	"github.com/finbooks-app/finbooks_backend/internal/dto"
)

// LedgerSvcFacade is the posting surface of the ledger entry store. The
// balance engine itself only ever reads; this is how entries get in.
type LedgerSvcFacade interface {
	// PostVoucherEntries validates and persists a balanced batch of entries
	// bound to one voucher. Entries are immutable once posted.
	PostVoucherEntries(ctx context.Context, organizationID string, req dto.PostVoucherRequest, userID string) ([]domain.LedgerEntry, error)

	// VoidEntry flips an active entry to VOID so it stops counting towards
	// balances. The entry remains retrievable for audit views.
	VoidEntry(ctx context.Context, organizationID string, entryID string, userID string) (*domain.LedgerEntry, error)

	// GetEntry retrieves a single entry.
	GetEntry(ctx context.Context, organizationID string, entryID string) (*domain.LedgerEntry, error)

	// ListVoucherEntries retrieves every entry posted under one voucher,
	// void lines included.
	ListVoucherEntries(ctx context.Context, organizationID string, voucherID string) ([]domain.LedgerEntry, error)
}
