package dto

import (
	"github.com/finbooks-app/finbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountBalanceResponse is the output of a single-account balance query.
// All monetary values are rounded to 2 decimal places at this boundary;
// internal computation keeps full decimal precision.
type AccountBalanceResponse struct {
	AccountID     string          `json:"accountID"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	AccountType   string          `json:"accountType"`
	NormalBalance string          `json:"normalBalance"`
	Opening       decimal.Decimal `json:"opening"`
	PeriodDebit   decimal.Decimal `json:"periodDebit"`
	PeriodCredit  decimal.Decimal `json:"periodCredit"`
	Closing       decimal.Decimal `json:"closing"`
	NetDebit      decimal.Decimal `json:"netDebit"`
	NetCredit     decimal.Decimal `json:"netCredit"`
}

// ToAccountBalanceResponse converts a domain.AccountBalance to its DTO
func ToAccountBalanceResponse(b *domain.AccountBalance) AccountBalanceResponse {
	return AccountBalanceResponse{
		AccountID:     b.AccountID,
		Code:          b.Code,
		Name:          b.Name,
		AccountType:   string(b.AccountType),
		NormalBalance: string(b.NormalBalance),
		Opening:       b.Opening.Round(2),
		PeriodDebit:   b.PeriodDebit.Round(2),
		PeriodCredit:  b.PeriodCredit.Round(2),
		Closing:       b.Closing.Round(2),
		NetDebit:      b.NetDebit.Round(2),
		NetCredit:     b.NetCredit.Round(2),
	}
}

// TrialBalanceRowResponse represents a row in the trial balance report response
type TrialBalanceRowResponse struct {
	AccountID      string          `json:"accountID"`
	Code           string          `json:"code"`
	Name           string          `json:"name"`
	AccountType    string          `json:"accountType"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	NetDebit       decimal.Decimal `json:"netDebit"`
	NetCredit      decimal.Decimal `json:"netCredit"`
}

// TrialBalanceResponse represents the trial balance report response
type TrialBalanceResponse struct {
	StartDate     string                               `json:"startDate,omitempty"`
	EndDate       string                               `json:"endDate,omitempty"`
	Rows          []TrialBalanceRowResponse            `json:"rows"`
	GroupedByType map[string][]TrialBalanceRowResponse `json:"groupedByType"`
	Totals        struct {
		Debit      decimal.Decimal `json:"debit"`
		Credit     decimal.Decimal `json:"credit"`
		Difference decimal.Decimal `json:"difference"`
	} `json:"totals"`
	IsBalanced bool `json:"isBalanced"`
}

func toTrialBalanceRowResponse(row domain.TrialBalanceRow) TrialBalanceRowResponse {
	return TrialBalanceRowResponse{
		AccountID:      row.AccountID,
		Code:           row.Code,
		Name:           row.Name,
		AccountType:    string(row.AccountType),
		OpeningBalance: row.OpeningBalance.Round(2),
		Debit:          row.Debit.Round(2),
		Credit:         row.Credit.Round(2),
		NetDebit:       row.NetDebit.Round(2),
		NetCredit:      row.NetCredit.Round(2),
	}
}

// ToTrialBalanceResponse converts a domain trial balance to a DTO response
func ToTrialBalanceResponse(tb *domain.TrialBalance, q domain.TrialBalanceQuery) TrialBalanceResponse {
	response := TrialBalanceResponse{
		Rows:          make([]TrialBalanceRowResponse, len(tb.Rows)),
		GroupedByType: make(map[string][]TrialBalanceRowResponse, len(tb.GroupedByType)),
		IsBalanced:    tb.IsBalanced,
	}
	if q.StartDate != nil {
		response.StartDate = q.StartDate.Format("2006-01-02")
	}
	if q.EndDate != nil {
		response.EndDate = q.EndDate.Format("2006-01-02")
	}
	for i, row := range tb.Rows {
		response.Rows[i] = toTrialBalanceRowResponse(row)
	}
	for accountType, rows := range tb.GroupedByType {
		grouped := make([]TrialBalanceRowResponse, len(rows))
		for i, row := range rows {
			grouped[i] = toTrialBalanceRowResponse(row)
		}
		response.GroupedByType[string(accountType)] = grouped
	}
	response.Totals.Debit = tb.TotalDebit.Round(2)
	response.Totals.Credit = tb.TotalCredit.Round(2)
	response.Totals.Difference = tb.Difference.Round(2)
	return response
}

// BalanceSheetAccountResponse is a single line in a balance sheet section
type BalanceSheetAccountResponse struct {
	AccountID string          `json:"accountID"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"`
}

// BalanceSheetResponse represents the balance sheet report response
type BalanceSheetResponse struct {
	AsOf   string `json:"asOf"`
	Assets struct {
		Current      []BalanceSheetAccountResponse `json:"current"`
		Fixed        []BalanceSheetAccountResponse `json:"fixed"`
		CurrentTotal decimal.Decimal               `json:"currentTotal"`
		FixedTotal   decimal.Decimal               `json:"fixedTotal"`
		Total        decimal.Decimal               `json:"total"`
	} `json:"assets"`
	Liabilities struct {
		Current       []BalanceSheetAccountResponse `json:"current"`
		LongTerm      []BalanceSheetAccountResponse `json:"longTerm"`
		CurrentTotal  decimal.Decimal               `json:"currentTotal"`
		LongTermTotal decimal.Decimal               `json:"longTermTotal"`
		Total         decimal.Decimal               `json:"total"`
	} `json:"liabilities"`
	Equity struct {
		Accounts         []BalanceSheetAccountResponse `json:"accounts"`
		RetainedEarnings decimal.Decimal               `json:"retainedEarnings"`
		Total            decimal.Decimal               `json:"total"`
	} `json:"equity"`
	Totals struct {
		Assets               decimal.Decimal `json:"assets"`
		LiabilitiesAndEquity decimal.Decimal `json:"liabilitiesAndEquity"`
		Difference           decimal.Decimal `json:"difference"`
	} `json:"totals"`
	IsBalanced            bool `json:"isBalanced"`
	RevenueExpenseSummary struct {
		TotalRevenue decimal.Decimal `json:"totalRevenue"`
		TotalExpense decimal.Decimal `json:"totalExpense"`
		NetIncome    decimal.Decimal `json:"netIncome"`
	} `json:"revenueExpenseSummary"`
}

func toBalanceSheetAccounts(accounts []domain.BalanceSheetAccount) []BalanceSheetAccountResponse {
	res := make([]BalanceSheetAccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = BalanceSheetAccountResponse{
			AccountID: acc.AccountID,
			Code:      acc.Code,
			Name:      acc.Name,
			Balance:   acc.Balance.Round(2),
		}
	}
	return res
}

// ToBalanceSheetResponse converts a domain balance sheet to a DTO response
func ToBalanceSheetResponse(bs *domain.BalanceSheet) BalanceSheetResponse {
	var response BalanceSheetResponse
	response.AsOf = bs.AsOf.Format("2006-01-02")

	response.Assets.Current = toBalanceSheetAccounts(bs.Assets.Current)
	response.Assets.Fixed = toBalanceSheetAccounts(bs.Assets.Fixed)
	response.Assets.CurrentTotal = bs.Assets.CurrentTotal.Round(2)
	response.Assets.FixedTotal = bs.Assets.FixedTotal.Round(2)
	response.Assets.Total = bs.Assets.Total.Round(2)

	response.Liabilities.Current = toBalanceSheetAccounts(bs.Liabilities.Current)
	response.Liabilities.LongTerm = toBalanceSheetAccounts(bs.Liabilities.LongTerm)
	response.Liabilities.CurrentTotal = bs.Liabilities.CurrentTotal.Round(2)
	response.Liabilities.LongTermTotal = bs.Liabilities.LongTermTotal.Round(2)
	response.Liabilities.Total = bs.Liabilities.Total.Round(2)

	response.Equity.Accounts = toBalanceSheetAccounts(bs.Equity.Accounts)
	response.Equity.RetainedEarnings = bs.Equity.RetainedEarnings.Round(2)
	response.Equity.Total = bs.Equity.Total.Round(2)

	response.Totals.Assets = bs.TotalAssets.Round(2)
	response.Totals.LiabilitiesAndEquity = bs.TotalLiabilitiesAndEquity.Round(2)
	response.Totals.Difference = bs.Difference.Round(2)
	response.IsBalanced = bs.IsBalanced

	response.RevenueExpenseSummary.TotalRevenue = bs.RevenueExpenseSummary.TotalRevenue.Round(2)
	response.RevenueExpenseSummary.TotalExpense = bs.RevenueExpenseSummary.TotalExpense.Round(2)
	response.RevenueExpenseSummary.NetIncome = bs.RevenueExpenseSummary.NetIncome.Round(2)
	return response
}
