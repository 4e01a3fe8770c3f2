package dto

import (
	"time"

	"github.com/finbooks-app/finbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Code            string             `json:"code" binding:"required,accountcode"`
	Name            string             `json:"name" binding:"required"`
	AccountType     domain.AccountType `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	NormalBalance   *string            `json:"normalBalance" binding:"omitempty,oneof=DEBIT CREDIT"` // defaults from the account type; set explicitly for contra accounts
	Category        string             `json:"category" binding:"omitempty,oneof=current_asset fixed_asset current_liability long_term_liability"`
	IsGroup         bool               `json:"isGroup"`
	ParentAccountID *string            `json:"parentAccountID"` // Optional, use pointer for nullability
	OpeningBalance  *decimal.Decimal   `json:"openingBalance"`  // Signed, in the account's own polarity
	Description     string             `json:"description"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateAccountRequest struct {
	Code        *string `json:"code" binding:"omitempty,accountcode"`
	Name        *string `json:"name"`
	Category    *string `json:"category" binding:"omitempty,oneof=current_asset fixed_asset current_liability long_term_liability"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

// AccountResponse defines the data returned for an account.
// Mirrors domain.Account.
type AccountResponse struct {
	AccountID       string             `json:"accountID"`
	OrganizationID  string             `json:"organizationID"`
	Code            string             `json:"code"`
	Name            string             `json:"name"`
	AccountType     domain.AccountType `json:"accountType"`
	NormalBalance   string             `json:"normalBalance"`
	Category        string             `json:"category,omitempty"`
	IsGroup         bool               `json:"isGroup"`
	ParentAccountID string             `json:"parentAccountID"` // Empty string if null in DB
	OpeningBalance  decimal.Decimal    `json:"openingBalance"`
	IsSystemAccount bool               `json:"isSystemAccount"`
	Description     string             `json:"description"`
	IsActive        bool               `json:"isActive"`
	CreatedAt       time.Time          `json:"createdAt"`
	LastUpdatedAt   time.Time          `json:"lastUpdatedAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:       acc.AccountID,
		OrganizationID:  acc.OrganizationID,
		Code:            acc.Code,
		Name:            acc.Name,
		AccountType:     acc.AccountType,
		NormalBalance:   string(acc.NormalBalance),
		Category:        string(acc.Category),
		IsGroup:         acc.IsGroup,
		ParentAccountID: acc.ParentAccountID,
		OpeningBalance:  acc.OpeningBalance.Round(2),
		IsSystemAccount: acc.IsSystemAccount,
		Description:     acc.Description,
		IsActive:        acc.IsActive,
		CreatedAt:       acc.CreatedAt,
		LastUpdatedAt:   acc.LastUpdatedAt,
	}
}

// ToListAccountResponse converts a slice of domain.Account to response DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// SeedChartResponse reports how many accounts the default chart created.
type SeedChartResponse struct {
	SeededAccounts int `json:"seededAccounts"`
}
