package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// NormalBalance is the side on which an account's balance is expressed as a
// non-negative number.
type NormalBalance string

const (
	DebitNormal  NormalBalance = "DEBIT"
	CreditNormal NormalBalance = "CREDIT"
)

// AccountCategory is a finer classification used only for balance-sheet
// bucketing. Empty means "fall back to the code-prefix heuristic".
type AccountCategory string

const (
	CategoryCurrentAsset      AccountCategory = "current_asset"
	CategoryFixedAsset        AccountCategory = "fixed_asset"
	CategoryCurrentLiability  AccountCategory = "current_liability"
	CategoryLongTermLiability AccountCategory = "long_term_liability"
)

// Account represents a node in an organization's chart of accounts.
// This is the primary representation used by services.
type Account struct {
	AccountID       string          `json:"accountID"`       // Primary Key (UUID)
	OrganizationID  string          `json:"organizationID"`  // FK -> organizations.organization_id (NON-NULL)
	Code            string          `json:"code"`            // Org-scoped unique, normalized uppercase
	Name            string          `json:"name"`            // User-defined name
	AccountType     AccountType     `json:"accountType"`     // ASSET, LIABILITY, etc. Fixed at creation.
	NormalBalance   NormalBalance   `json:"normalBalance"`   // Stored polarity; honored as-is so contra accounts stay correct
	Category        AccountCategory `json:"category"`        // Balance-sheet bucketing hint, may be empty
	IsGroup         bool            `json:"isGroup"`         // Group nodes are display-only; only leaves hold entries
	ParentAccountID string          `json:"parentAccountID"` // Nullable FK -> accounts.account_id (self-referencing)
	OpeningBalance  decimal.Decimal `json:"openingBalance"`  // Signed seed in the account's own polarity, counted before any entry
	IsSystemAccount bool            `json:"isSystemAccount"` // Shipped with the default chart; restricted mutability
	Description     string          `json:"description"`     // Nullable user description
	IsActive        bool            `json:"isActive"`
	DeletedAt       *time.Time      `json:"deletedAt,omitempty"` // Soft-delete stamp
	AuditFields
}

// IsDeleted reports whether the account has been soft-deleted.
func (a Account) IsDeleted() bool {
	return a.DeletedAt != nil
}

// DefaultNormalBalance returns the conventional polarity for an account type:
// asset and expense accounts are debit-normal, the rest credit-normal.
func DefaultNormalBalance(t AccountType) NormalBalance {
	switch t {
	case Asset, Expense:
		return DebitNormal
	default:
		return CreditNormal
	}
}
