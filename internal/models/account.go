package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType mirrors domain.AccountType for DB storage.
type AccountType string

// NormalBalance mirrors domain.NormalBalance for DB storage.
type NormalBalance string

// Account is the persistence representation of a chart-of-accounts node.
type Account struct {
	AccountID       string          `db:"account_id"`
	OrganizationID  string          `db:"organization_id"`
	Code            string          `db:"code"`
	Name            string          `db:"name"`
	AccountType     AccountType     `db:"account_type"`
	NormalBalance   NormalBalance   `db:"normal_balance"`
	Category        string          `db:"category"`
	IsGroup         bool            `db:"is_group"`
	ParentAccountID string          `db:"parent_account_id"`
	OpeningBalance  decimal.Decimal `db:"opening_balance"`
	IsSystemAccount bool            `db:"is_system_account"`
	Description     string          `db:"description"`
	IsActive        bool            `db:"is_active"`
	DeletedAt       *time.Time      `db:"deleted_at"`
	AuditFields
}
