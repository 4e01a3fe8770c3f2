package services

import (
	"time"

	"github.com/finbooks-app/finbooks_backend/internal/core/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// chartSeed is one row of the default chart template. Parent links are by
// code and resolved at build time.
type chartSeed struct {
	code        string
	name        string
	accountType domain.AccountType
	category    domain.AccountCategory
	isGroup     bool
	parentCode  string
	normal      domain.NormalBalance // empty means the type's default
}

// defaultChartSeeds is the standard chart shipped to every new organization.
// Numbering: 1xxx assets, 2xxx liabilities, 3xxx equity, 4xxx revenue,
// 5xxx expenses. The 10/11/12 and 20/21 prefixes line up with the default
// balance-sheet classification rules.
var defaultChartSeeds = []chartSeed{
	{code: "1000", name: "Assets", accountType: domain.Asset, isGroup: true},
	{code: "1010", name: "Cash", accountType: domain.Asset, category: domain.CategoryCurrentAsset, parentCode: "1000"},
	{code: "1020", name: "Bank", accountType: domain.Asset, category: domain.CategoryCurrentAsset, parentCode: "1000"},
	{code: "1100", name: "Accounts Receivable", accountType: domain.Asset, category: domain.CategoryCurrentAsset, parentCode: "1000"},
	{code: "1200", name: "Inventory", accountType: domain.Asset, category: domain.CategoryCurrentAsset, parentCode: "1000"},
	{code: "1500", name: "Fixed Assets", accountType: domain.Asset, category: domain.CategoryFixedAsset, isGroup: true, parentCode: "1000"},
	{code: "1510", name: "Equipment", accountType: domain.Asset, category: domain.CategoryFixedAsset, parentCode: "1500"},
	{code: "1590", name: "Accumulated Depreciation", accountType: domain.Asset, category: domain.CategoryFixedAsset, parentCode: "1500", normal: domain.CreditNormal},

	{code: "2000", name: "Liabilities", accountType: domain.Liability, isGroup: true},
	{code: "2010", name: "Accounts Payable", accountType: domain.Liability, category: domain.CategoryCurrentLiability, parentCode: "2000"},
	{code: "2100", name: "Taxes Payable", accountType: domain.Liability, category: domain.CategoryCurrentLiability, parentCode: "2000"},
	{code: "2500", name: "Long-Term Loans", accountType: domain.Liability, category: domain.CategoryLongTermLiability, parentCode: "2000"},

	{code: "3000", name: "Equity", accountType: domain.Equity, isGroup: true},
	{code: "3010", name: "Owner's Capital", accountType: domain.Equity, parentCode: "3000"},
	{code: "3020", name: "Owner's Drawings", accountType: domain.Equity, parentCode: "3000", normal: domain.DebitNormal},

	{code: "4000", name: "Revenue", accountType: domain.Revenue, isGroup: true},
	{code: "4010", name: "Sales Revenue", accountType: domain.Revenue, parentCode: "4000"},
	{code: "4020", name: "Service Revenue", accountType: domain.Revenue, parentCode: "4000"},
	{code: "4900", name: "Other Income", accountType: domain.Revenue, parentCode: "4000"},

	{code: "5000", name: "Expenses", accountType: domain.Expense, isGroup: true},
	{code: "5010", name: "Cost of Goods Sold", accountType: domain.Expense, parentCode: "5000"},
	{code: "5100", name: "Salaries Expense", accountType: domain.Expense, parentCode: "5000"},
	{code: "5200", name: "Rent Expense", accountType: domain.Expense, parentCode: "5000"},
	{code: "5300", name: "Utilities Expense", accountType: domain.Expense, parentCode: "5000"},
	{code: "5900", name: "Miscellaneous Expense", accountType: domain.Expense, parentCode: "5000"},
}

// buildDefaultChart materializes the seed template for one organization.
// All seeded accounts are system accounts with a zero opening balance.
func buildDefaultChart(organizationID string, userID string, now time.Time) []domain.Account {
	idsByCode := make(map[string]string, len(defaultChartSeeds))
	for _, seed := range defaultChartSeeds {
		idsByCode[seed.code] = uuid.NewString()
	}

	accounts := make([]domain.Account, 0, len(defaultChartSeeds))
	for _, seed := range defaultChartSeeds {
		normal := seed.normal
		if normal == "" {
			normal = domain.DefaultNormalBalance(seed.accountType)
		}
		accounts = append(accounts, domain.Account{
			AccountID:       idsByCode[seed.code],
			OrganizationID:  organizationID,
			Code:            seed.code,
			Name:            seed.name,
			AccountType:     seed.accountType,
			NormalBalance:   normal,
			Category:        seed.category,
			IsGroup:         seed.isGroup,
			ParentAccountID: idsByCode[seed.parentCode],
			OpeningBalance:  decimal.Zero,
			IsSystemAccount: true,
			IsActive:        true,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		})
	}
	return accounts
}
