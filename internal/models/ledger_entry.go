package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType mirrors domain.EntryType for DB storage.
type EntryType string

// EntryStatus mirrors domain.EntryStatus for DB storage.
type EntryStatus string

// LedgerEntry is the persistence representation of a posting.
type LedgerEntry struct {
	EntryID        string          `db:"entry_id"`
	OrganizationID string          `db:"organization_id"`
	AccountID      string          `db:"account_id"`
	VoucherID      string          `db:"voucher_id"`
	EntryType      EntryType       `db:"entry_type"`
	Amount         decimal.Decimal `db:"amount"`
	EntryDate      time.Time       `db:"entry_date"`
	Status         EntryStatus     `db:"status"`
	FiscalYear     string          `db:"fiscal_year"`
	FiscalPeriod   int             `db:"fiscal_period"`
	Description    string          `db:"description"`
	AuditFields
}
