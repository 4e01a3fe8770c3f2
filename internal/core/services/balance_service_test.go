package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/finbooks-app/finbooks_backend/internal/apperrors"
	"github.com/finbooks-app/finbooks_backend/internal/core/domain"
	portssvc "github.com/finbooks-app/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks-app/finbooks_backend/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type BalanceServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockLedgerRepo  *MockLedgerRepository
	service         portssvc.BalanceCalculatorSvc
	orgID           string
}

func (suite *BalanceServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.service = services.NewBalanceService(suite.mockAccountRepo, suite.mockLedgerRepo)
	suite.orgID = uuid.NewString()
}

func (suite *BalanceServiceTestSuite) newAccount(accountType domain.AccountType, normal domain.NormalBalance, opening string) *domain.Account {
	return &domain.Account{
		AccountID:      uuid.NewString(),
		OrganizationID: suite.orgID,
		Code:           "1010",
		Name:           "Cash",
		AccountType:    accountType,
		NormalBalance:  normal,
		OpeningBalance: decimal.RequireFromString(opening),
		IsActive:       true,
	}
}

func (suite *BalanceServiceTestSuite) TestComputeAccountBalance_DebitNormal() {
	ctx := context.Background()
	account := suite.newAccount(domain.Asset, domain.DebitNormal, "1000")
	asOf := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	suite.mockAccountRepo.On("FindAccountByID", ctx, account.AccountID).Return(account, nil).Once()
	suite.mockLedgerRepo.On("AggregateEntries", ctx, suite.orgID, account.AccountID, domain.EntryFilter{ToDate: &asOf}).
		Return(domain.EntryTotals{Debit: decimal.RequireFromString("500"), Credit: decimal.RequireFromString("200")}, nil).Once()

	balance, err := suite.service.ComputeAccountBalance(ctx, suite.orgID, account.AccountID, domain.BalanceQuery{AsOf: asOf})

	suite.Require().NoError(err)
	suite.True(balance.Closing.Equal(decimal.RequireFromString("1300")))
	suite.True(balance.NetDebit.Equal(decimal.RequireFromString("1300")))
	suite.True(balance.NetCredit.IsZero())
	suite.True(balance.PeriodDebit.Equal(decimal.RequireFromString("500")))
	suite.True(balance.PeriodCredit.Equal(decimal.RequireFromString("200")))
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *BalanceServiceTestSuite) TestComputeAccountBalance_CreditNormal() {
	ctx := context.Background()
	account := suite.newAccount(domain.Revenue, domain.CreditNormal, "0")
	asOf := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	suite.mockAccountRepo.On("FindAccountByID", ctx, account.AccountID).Return(account, nil).Once()
	suite.mockLedgerRepo.On("AggregateEntries", ctx, suite.orgID, account.AccountID, domain.EntryFilter{ToDate: &asOf}).
		Return(domain.EntryTotals{Debit: decimal.RequireFromString("50"), Credit: decimal.RequireFromString("350")}, nil).Once()

	balance, err := suite.service.ComputeAccountBalance(ctx, suite.orgID, account.AccountID, domain.BalanceQuery{AsOf: asOf})

	suite.Require().NoError(err)
	suite.True(balance.Closing.Equal(decimal.RequireFromString("300")))
	suite.True(balance.NetCredit.Equal(decimal.RequireFromString("300")))
	suite.True(balance.NetDebit.IsZero())
}

// A contra account stores the opposite polarity of its type's default; the
// stored polarity must be honored, not re-derived from the account type.
func (suite *BalanceServiceTestSuite) TestComputeAccountBalance_ContraAccount() {
	ctx := context.Background()
	account := suite.newAccount(domain.Asset, domain.CreditNormal, "0")
	asOf := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	suite.mockAccountRepo.On("FindAccountByID", ctx, account.AccountID).Return(account, nil).Once()
	suite.mockLedgerRepo.On("AggregateEntries", ctx, suite.orgID, account.AccountID, domain.EntryFilter{ToDate: &asOf}).
		Return(domain.EntryTotals{Debit: decimal.Zero, Credit: decimal.RequireFromString("80")}, nil).Once()

	balance, err := suite.service.ComputeAccountBalance(ctx, suite.orgID, account.AccountID, domain.BalanceQuery{AsOf: asOf})

	suite.Require().NoError(err)
	suite.True(balance.Closing.Equal(decimal.RequireFromString("80")))
	suite.True(balance.NetCredit.Equal(decimal.RequireFromString("80")))
}

// A debit-normal account whose credits exceed debits goes "negative" and
// lands in the opposite column.
func (suite *BalanceServiceTestSuite) TestComputeAccountBalance_SignFlip() {
	ctx := context.Background()
	account := suite.newAccount(domain.Asset, domain.DebitNormal, "0")
	asOf := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	suite.mockAccountRepo.On("FindAccountByID", ctx, account.AccountID).Return(account, nil).Once()
	suite.mockLedgerRepo.On("AggregateEntries", ctx, suite.orgID, account.AccountID, domain.EntryFilter{ToDate: &asOf}).
		Return(domain.EntryTotals{Debit: decimal.RequireFromString("100"), Credit: decimal.RequireFromString("250")}, nil).Once()

	balance, err := suite.service.ComputeAccountBalance(ctx, suite.orgID, account.AccountID, domain.BalanceQuery{AsOf: asOf})

	suite.Require().NoError(err)
	suite.True(balance.Closing.Equal(decimal.RequireFromString("-150")))
	suite.True(balance.NetDebit.IsZero())
	suite.True(balance.NetCredit.Equal(decimal.RequireFromString("150")))
}

func (suite *BalanceServiceTestSuite) TestComputeAccountBalance_PeriodWithOpeningFold() {
	ctx := context.Background()
	account := suite.newAccount(domain.Asset, domain.DebitNormal, "1000")
	startDate := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	asOf := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	suite.mockAccountRepo.On("FindAccountByID", ctx, account.AccountID).Return(account, nil).Once()
	// Pre-period activity folds into the opening balance.
	suite.mockLedgerRepo.On("AggregateEntries", ctx, suite.orgID, account.AccountID, domain.EntryFilter{Before: &startDate}).
		Return(domain.EntryTotals{Debit: decimal.RequireFromString("300"), Credit: decimal.RequireFromString("100")}, nil).Once()
	suite.mockLedgerRepo.On("AggregateEntries", ctx, suite.orgID, account.AccountID, domain.EntryFilter{FromDate: &startDate, ToDate: &asOf}).
		Return(domain.EntryTotals{Debit: decimal.RequireFromString("50"), Credit: decimal.RequireFromString("20")}, nil).Once()

	balance, err := suite.service.ComputeAccountBalance(ctx, suite.orgID, account.AccountID, domain.BalanceQuery{AsOf: asOf, StartDate: &startDate})

	suite.Require().NoError(err)
	suite.True(balance.Opening.Equal(decimal.RequireFromString("1200")))
	suite.True(balance.Closing.Equal(decimal.RequireFromString("1230")))
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *BalanceServiceTestSuite) TestComputeAccountBalance_InvalidRange() {
	ctx := context.Background()
	account := suite.newAccount(domain.Asset, domain.DebitNormal, "0")
	asOf := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	startDate := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	suite.mockAccountRepo.On("FindAccountByID", ctx, account.AccountID).Return(account, nil).Once()

	_, err := suite.service.ComputeAccountBalance(ctx, suite.orgID, account.AccountID, domain.BalanceQuery{AsOf: asOf, StartDate: &startDate})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidRange)
}

func (suite *BalanceServiceTestSuite) TestComputeAccountBalance_OtherOrganization() {
	ctx := context.Background()
	account := suite.newAccount(domain.Asset, domain.DebitNormal, "0")
	account.OrganizationID = uuid.NewString()

	suite.mockAccountRepo.On("FindAccountByID", ctx, account.AccountID).Return(account, nil).Once()

	_, err := suite.service.ComputeAccountBalance(ctx, suite.orgID, account.AccountID, domain.BalanceQuery{AsOf: time.Now()})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *BalanceServiceTestSuite) TestComputeAccountBalance_DeletedAccount() {
	ctx := context.Background()
	account := suite.newAccount(domain.Asset, domain.DebitNormal, "0")
	deletedAt := time.Now()
	account.DeletedAt = &deletedAt

	suite.mockAccountRepo.On("FindAccountByID", ctx, account.AccountID).Return(account, nil).Once()

	_, err := suite.service.ComputeAccountBalance(ctx, suite.orgID, account.AccountID, domain.BalanceQuery{AsOf: time.Now()})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestBalanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BalanceServiceTestSuite))
}
