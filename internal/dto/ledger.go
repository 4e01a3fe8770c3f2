package dto

import (
	"time"

	"github.com/finbooks-app/finbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// VoucherEntryRequest is one posting line inside a voucher.
type VoucherEntryRequest struct {
	AccountID   string           `json:"accountID" binding:"required"`
	EntryType   domain.EntryType `json:"entryType" binding:"required,oneof=DEBIT CREDIT"`
	Amount      decimal.Decimal  `json:"amount" binding:"required"`
	Description string           `json:"description"`
}

// PostVoucherRequest defines a balanced batch of ledger entries bound to one
// voucher. Total debits must equal total credits.
type PostVoucherRequest struct {
	VoucherID string                `json:"voucherID"` // Optional; generated when absent
	EntryDate string                `json:"entryDate" binding:"required"` // YYYY-MM-DD accounting date
	Entries   []VoucherEntryRequest `json:"entries" binding:"required,min=2,dive"`
}

// LedgerEntryResponse defines the data returned for a ledger entry.
type LedgerEntryResponse struct {
	EntryID        string          `json:"entryID"`
	OrganizationID string          `json:"organizationID"`
	AccountID      string          `json:"accountID"`
	VoucherID      string          `json:"voucherID"`
	EntryType      string          `json:"entryType"`
	Amount         decimal.Decimal `json:"amount"`
	EntryDate      string          `json:"entryDate"`
	Status         string          `json:"status"`
	FiscalYear     string          `json:"fiscalYear"`
	FiscalPeriod   int             `json:"fiscalPeriod"`
	Description    string          `json:"description,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ToLedgerEntryResponse converts a domain.LedgerEntry to its response DTO
func ToLedgerEntryResponse(e *domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		EntryID:        e.EntryID,
		OrganizationID: e.OrganizationID,
		AccountID:      e.AccountID,
		VoucherID:      e.VoucherID,
		EntryType:      string(e.EntryType),
		Amount:         e.Amount.Round(2),
		EntryDate:      e.EntryDate.Format("2006-01-02"),
		Status:         string(e.Status),
		FiscalYear:     e.FiscalYear,
		FiscalPeriod:   e.FiscalPeriod,
		Description:    e.Description,
		CreatedAt:      e.CreatedAt,
	}
}

// ToLedgerEntriesResponse converts a slice of entries to response DTOs
func ToLedgerEntriesResponse(entries []domain.LedgerEntry) []LedgerEntryResponse {
	res := make([]LedgerEntryResponse, len(entries))
	for i := range entries {
		res[i] = ToLedgerEntryResponse(&entries[i])
	}
	return res
}
