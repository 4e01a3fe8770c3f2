package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceQuery bounds a single-account balance computation. AsOf is the
// inclusive upper bound; StartDate, when set, makes the result a period sum
// with the pre-period activity folded into the opening balance.
type BalanceQuery struct {
	AsOf         time.Time
	StartDate    *time.Time
	FiscalYear   string
	FiscalPeriod int
}

// AccountBalance is the result of replaying an account's entries against its
// normal-balance polarity. Closing is signed in the account's own polarity;
// NetDebit/NetCredit is the non-negative split of that signed value.
type AccountBalance struct {
	AccountID     string          `json:"accountID"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	AccountType   AccountType     `json:"accountType"`
	NormalBalance NormalBalance   `json:"normalBalance"`
	Opening       decimal.Decimal `json:"opening"`      // opening as of StartDate (or the account's seed)
	PeriodDebit   decimal.Decimal `json:"periodDebit"`  // raw debit activity in range
	PeriodCredit  decimal.Decimal `json:"periodCredit"` // raw credit activity in range
	Closing       decimal.Decimal `json:"closing"`
	NetDebit      decimal.Decimal `json:"netDebit"`
	NetCredit     decimal.Decimal `json:"netCredit"`
}

// TrialBalanceQuery bounds a trial balance run. A nil EndDate means "up to
// now"; fiscal filters narrow the folded entries.
type TrialBalanceQuery struct {
	StartDate    *time.Time
	EndDate      *time.Time
	FiscalYear   string
	FiscalPeriod int
}

// TrialBalanceRow is one leaf account's line in the trial balance.
type TrialBalanceRow struct {
	AccountID      string          `json:"accountID"`
	Code           string          `json:"code"`
	Name           string          `json:"name"`
	AccountType    AccountType     `json:"accountType"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Debit          decimal.Decimal `json:"debit"`  // period debit activity
	Credit         decimal.Decimal `json:"credit"` // period credit activity
	NetDebit       decimal.Decimal `json:"netDebit"`
	NetCredit      decimal.Decimal `json:"netCredit"`
}

// TrialBalance lists every leaf account with activity or an opening balance,
// with grand totals that must agree when postings are consistent. An
// unbalanced result is reported as data, never silently corrected.
type TrialBalance struct {
	Rows          []TrialBalanceRow                 `json:"rows"`
	GroupedByType map[AccountType][]TrialBalanceRow `json:"groupedByType"`
	TotalDebit    decimal.Decimal                   `json:"totalDebit"`
	TotalCredit   decimal.Decimal                   `json:"totalCredit"`
	Difference    decimal.Decimal                   `json:"difference"`
	IsBalanced    bool                              `json:"isBalanced"`
}

// BalanceSheetQuery bounds a balance sheet run. Balances are cumulative
// since account inception up to AsOf; FiscalYear only scopes the separately
// reported revenue/expense summary when set.
type BalanceSheetQuery struct {
	AsOf       time.Time
	FiscalYear string
}

// BalanceSheetAccount is a single account line in a balance sheet section.
type BalanceSheetAccount struct {
	AccountID string          `json:"accountID"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"`
}

// AssetSection buckets asset accounts into current and fixed. Totals are
// derived by summing the bucketed lists, never computed independently.
type AssetSection struct {
	Current      []BalanceSheetAccount `json:"current"`
	Fixed        []BalanceSheetAccount `json:"fixed"`
	CurrentTotal decimal.Decimal       `json:"currentTotal"`
	FixedTotal   decimal.Decimal       `json:"fixedTotal"`
	Total        decimal.Decimal       `json:"total"`
}

// LiabilitySection buckets liability accounts into current and long-term.
type LiabilitySection struct {
	Current       []BalanceSheetAccount `json:"current"`
	LongTerm      []BalanceSheetAccount `json:"longTerm"`
	CurrentTotal  decimal.Decimal       `json:"currentTotal"`
	LongTermTotal decimal.Decimal       `json:"longTermTotal"`
	Total         decimal.Decimal       `json:"total"`
}

// EquitySection lists equity accounts plus cumulative retained earnings.
type EquitySection struct {
	Accounts         []BalanceSheetAccount `json:"accounts"`
	RetainedEarnings decimal.Decimal       `json:"retainedEarnings"` // all-time net income up to asOf
	Total            decimal.Decimal       `json:"total"`
}

// RevenueExpenseSummary is the income-statement figure shown alongside the
// balance sheet. It is the same cumulative horizon as retained earnings and
// is labeled separately so the two are never conflated.
type RevenueExpenseSummary struct {
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	NetIncome    decimal.Decimal `json:"netIncome"`
}

// BalanceSheet is the statement of financial position as of a single
// instant. IsBalanced=false with a non-zero Difference indicates a posting
// defect upstream; it is reported, not raised.
type BalanceSheet struct {
	AsOf                      time.Time             `json:"asOf"`
	Assets                    AssetSection          `json:"assets"`
	Liabilities               LiabilitySection      `json:"liabilities"`
	Equity                    EquitySection         `json:"equity"`
	TotalAssets               decimal.Decimal       `json:"totalAssets"`
	TotalLiabilitiesAndEquity decimal.Decimal       `json:"totalLiabilitiesAndEquity"`
	Difference                decimal.Decimal       `json:"difference"`
	IsBalanced                bool                  `json:"isBalanced"`
	RevenueExpenseSummary     RevenueExpenseSummary `json:"revenueExpenseSummary"`
}

// StatementQuery bounds an account ledger (statement) run.
type StatementQuery struct {
	StartDate   *time.Time
	EndDate     *time.Time
	IncludeVoid bool
}

// StatementRow is one entry in the running ledger, annotated with the
// balance immediately after it. Void rows carry the unchanged prior balance.
type StatementRow struct {
	Entry          LedgerEntry     `json:"entry"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// AccountStatement is the ordered, running-balance-annotated transcript of
// one account over a date range. TotalDebit/TotalCredit are raw sums of
// active entry amounts by entry type and are always non-negative.
type AccountStatement struct {
	Account        Account         `json:"account"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
	TotalDebit     decimal.Decimal `json:"totalDebit"`
	TotalCredit    decimal.Decimal `json:"totalCredit"`
	Rows           []StatementRow  `json:"rows"`
}
