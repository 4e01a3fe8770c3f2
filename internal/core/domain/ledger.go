package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType indicates the raw posting direction of a ledger entry,
// independent of the account's polarity.
type EntryType string

const (
	Debit  EntryType = "DEBIT"
	Credit EntryType = "CREDIT"
)

// EntryStatus indicates whether an entry counts towards balances.
type EntryStatus string

const (
	EntryActive EntryStatus = "ACTIVE"
	EntryVoid   EntryStatus = "VOID"
)

// LedgerEntry represents a single debit or credit posting against one
// account. Entries are immutable once created; correction is a new
// offsetting entry or a status flip to VOID, never an amount edit.
type LedgerEntry struct {
	EntryID        string          `json:"entryID"`        // Primary Key (UUID)
	OrganizationID string          `json:"organizationID"` // Owning organization
	AccountID      string          `json:"accountID"`      // FK -> accounts.account_id (Not Null)
	VoucherID      string          `json:"voucherID"`      // Originating transaction, display only
	EntryType      EntryType       `json:"entryType"`      // DEBIT or CREDIT
	Amount         decimal.Decimal `json:"amount"`         // Non-negative magnitude
	EntryDate      time.Time       `json:"entryDate"`      // Accounting date, used for all temporal filtering
	Status         EntryStatus     `json:"status"`
	FiscalYear     string          `json:"fiscalYear"`   // Derived label, e.g. "2025-2026"
	FiscalPeriod   int             `json:"fiscalPeriod"` // 1..12 within the fiscal year
	Description    string          `json:"description"`
	AuditFields
}

// EntryFilter narrows ledger entry queries. Date bounds are inclusive;
// Before is an exclusive upper bound used for opening-balance folds.
type EntryFilter struct {
	FromDate     *time.Time
	ToDate       *time.Time
	Before       *time.Time
	FiscalYear   string
	FiscalPeriod int
	IncludeVoid  bool
}

// EntryTotals holds raw debit and credit sums over a set of active entries.
type EntryTotals struct {
	Debit  decimal.Decimal
	Credit decimal.Decimal
}

// IsZero reports whether both sums are zero.
func (t EntryTotals) IsZero() bool {
	return t.Debit.IsZero() && t.Credit.IsZero()
}
