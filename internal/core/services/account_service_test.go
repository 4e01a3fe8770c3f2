package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/finbooks-app/finbooks_backend/internal/apperrors"
	"github.com/finbooks-app/finbooks_backend/internal/core/domain"
	portssvc "github.com/finbooks-app/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks-app/finbooks_backend/internal/core/services"
	"github.com/finbooks-app/finbooks_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockLedgerRepo  *MockLedgerRepository
	service         portssvc.AccountSvcFacade
	orgID           string
	userID          string
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.service = services.NewAccountService(suite.mockAccountRepo, suite.mockLedgerRepo)
	suite.orgID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Code:        "cash-01",
		Name:        "Petty Cash",
		AccountType: domain.Asset,
	}

	suite.mockAccountRepo.On("FindAccountByCode", ctx, suite.orgID, "CASH-01").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, suite.orgID, req, suite.userID)

	suite.Require().NoError(err)
	suite.NotEmpty(account.AccountID)
	// Codes are normalized to uppercase on write.
	suite.Equal("CASH-01", account.Code)
	// Asset accounts default to debit-normal.
	suite.Equal(domain.DebitNormal, account.NormalBalance)
	suite.True(account.IsActive)
	suite.Equal(suite.userID, account.CreatedBy)
	suite.WithinDuration(time.Now(), account.CreatedAt, time.Second)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_ExplicitContraPolarity() {
	ctx := context.Background()
	creditNormal := string(domain.CreditNormal)
	req := dto.CreateAccountRequest{
		Code:          "1590",
		Name:          "Accumulated Depreciation",
		AccountType:   domain.Asset,
		NormalBalance: &creditNormal,
	}

	suite.mockAccountRepo.On("FindAccountByCode", ctx, suite.orgID, "1590").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, suite.orgID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.CreditNormal, account.NormalBalance)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicateCode() {
	ctx := context.Background()
	existing := &domain.Account{AccountID: uuid.NewString(), OrganizationID: suite.orgID, Code: "1010"}
	req := dto.CreateAccountRequest{Code: "1010", Name: "Cash", AccountType: domain.Asset}

	suite.mockAccountRepo.On("FindAccountByCode", ctx, suite.orgID, "1010").Return(existing, nil).Once()

	_, err := suite.service.CreateAccount(ctx, suite.orgID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_GroupWithOpeningBalance() {
	ctx := context.Background()
	opening := decimal.RequireFromString("100")
	req := dto.CreateAccountRequest{
		Code:           "1000",
		Name:           "Assets",
		AccountType:    domain.Asset,
		IsGroup:        true,
		OpeningBalance: &opening,
	}

	suite.mockAccountRepo.On("FindAccountByCode", ctx, suite.orgID, "1000").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateAccount(ctx, suite.orgID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_SystemAccountCodeChange() {
	ctx := context.Background()
	account := &domain.Account{
		AccountID:       uuid.NewString(),
		OrganizationID:  suite.orgID,
		Code:            "1010",
		IsSystemAccount: true,
	}
	newCode := "9999"

	suite.mockAccountRepo.On("FindAccountByID", ctx, account.AccountID).Return(account, nil).Once()

	_, err := suite.service.UpdateAccount(ctx, suite.orgID, account.AccountID, dto.UpdateAccountRequest{Code: &newCode}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_WithLedgerHistory() {
	ctx := context.Background()
	account := &domain.Account{AccountID: uuid.NewString(), OrganizationID: suite.orgID, Code: "1010"}

	suite.mockAccountRepo.On("FindAccountByID", ctx, account.AccountID).Return(account, nil).Once()
	suite.mockAccountRepo.On("HasChildAccounts", ctx, account.AccountID).Return(false, nil).Once()
	suite.mockLedgerRepo.On("HasEntries", ctx, account.AccountID).Return(true, nil).Once()

	err := suite.service.DeleteAccount(ctx, suite.orgID, account.AccountID, suite.userID, false)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SoftDeleteAccount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_Success() {
	ctx := context.Background()
	account := &domain.Account{AccountID: uuid.NewString(), OrganizationID: suite.orgID, Code: "1010"}

	suite.mockAccountRepo.On("FindAccountByID", ctx, account.AccountID).Return(account, nil).Once()
	suite.mockAccountRepo.On("HasChildAccounts", ctx, account.AccountID).Return(false, nil).Once()
	suite.mockLedgerRepo.On("HasEntries", ctx, account.AccountID).Return(false, nil).Once()
	suite.mockAccountRepo.On("SoftDeleteAccount", ctx, account.AccountID, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeleteAccount(ctx, suite.orgID, account.AccountID, suite.userID, false)

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestSeedDefaultChart_Success() {
	ctx := context.Background()

	suite.mockAccountRepo.On("CountAccounts", ctx, suite.orgID).Return(0, nil).Once()
	suite.mockAccountRepo.On("SaveAccounts", ctx, mock.AnythingOfType("[]domain.Account")).
		Run(func(args mock.Arguments) {
			accounts := args.Get(1).([]domain.Account)
			suite.NotEmpty(accounts)
			for _, acc := range accounts {
				suite.Equal(suite.orgID, acc.OrganizationID)
				suite.True(acc.IsSystemAccount)
				suite.True(acc.OpeningBalance.IsZero())
			}
		}).Return(nil).Once()

	seeded, err := suite.service.SeedDefaultChart(ctx, suite.orgID, suite.userID)

	suite.Require().NoError(err)
	suite.Greater(seeded, 0)
}

func (suite *AccountServiceTestSuite) TestSeedDefaultChart_AlreadySeeded() {
	ctx := context.Background()

	suite.mockAccountRepo.On("CountAccounts", ctx, suite.orgID).Return(12, nil).Once()

	_, err := suite.service.SeedDefaultChart(ctx, suite.orgID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrAlreadySeeded)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccounts", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestResolveHierarchyPath() {
	ctx := context.Background()
	root := &domain.Account{AccountID: uuid.NewString(), OrganizationID: suite.orgID, Code: "1000", IsGroup: true}
	leaf := &domain.Account{AccountID: uuid.NewString(), OrganizationID: suite.orgID, Code: "1010", ParentAccountID: root.AccountID}

	suite.mockAccountRepo.On("FindAccountByID", ctx, leaf.AccountID).Return(leaf, nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, root.AccountID).Return(root, nil).Once()

	path, err := suite.service.ResolveHierarchyPath(ctx, suite.orgID, leaf.AccountID)

	suite.Require().NoError(err)
	suite.Require().Len(path, 2)
	suite.Equal(root.AccountID, path[0].AccountID)
	suite.Equal(leaf.AccountID, path[1].AccountID)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
