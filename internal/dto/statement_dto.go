package dto

import (
	"github.com/finbooks-app/finbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StatementRowResponse is one running-ledger line.
type StatementRowResponse struct {
	Entry          LedgerEntryResponse `json:"entry"`
	RunningBalance decimal.Decimal     `json:"runningBalance"`
}

// AccountStatementResponse represents the account ledger report response.
type AccountStatementResponse struct {
	Account        AccountResponse        `json:"account"`
	StartDate      string                 `json:"startDate,omitempty"`
	EndDate        string                 `json:"endDate,omitempty"`
	OpeningBalance decimal.Decimal        `json:"openingBalance"`
	ClosingBalance decimal.Decimal        `json:"closingBalance"`
	TotalDebit     decimal.Decimal        `json:"totalDebit"`
	TotalCredit    decimal.Decimal        `json:"totalCredit"`
	Entries        []StatementRowResponse `json:"entries"`
}

// ToAccountStatementResponse converts a domain statement to a DTO response
func ToAccountStatementResponse(st *domain.AccountStatement, q domain.StatementQuery) AccountStatementResponse {
	response := AccountStatementResponse{
		Account:        ToAccountResponse(&st.Account),
		OpeningBalance: st.OpeningBalance.Round(2),
		ClosingBalance: st.ClosingBalance.Round(2),
		TotalDebit:     st.TotalDebit.Round(2),
		TotalCredit:    st.TotalCredit.Round(2),
		Entries:        make([]StatementRowResponse, len(st.Rows)),
	}
	if q.StartDate != nil {
		response.StartDate = q.StartDate.Format("2006-01-02")
	}
	if q.EndDate != nil {
		response.EndDate = q.EndDate.Format("2006-01-02")
	}
	for i, row := range st.Rows {
		response.Entries[i] = StatementRowResponse{
			Entry:          ToLedgerEntryResponse(&row.Entry),
			RunningBalance: row.RunningBalance.Round(2),
		}
	}
	return response
}
