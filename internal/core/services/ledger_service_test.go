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

type LedgerServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockLedgerRepo  *MockLedgerRepository
	service         portssvc.LedgerSvcFacade
	orgID           string
	userID          string
	cashID          string
	salesID         string
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.service = services.NewLedgerService(suite.mockAccountRepo, suite.mockLedgerRepo,
		services.WithFiscalStartMonth(time.April))
	suite.orgID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.cashID = uuid.NewString()
	suite.salesID = uuid.NewString()
}

func (suite *LedgerServiceTestSuite) leafAccounts() map[string]domain.Account {
	return map[string]domain.Account{
		suite.cashID: {
			AccountID:      suite.cashID,
			OrganizationID: suite.orgID,
			Code:           "1010",
			AccountType:    domain.Asset,
			NormalBalance:  domain.DebitNormal,
			IsActive:       true,
		},
		suite.salesID: {
			AccountID:      suite.salesID,
			OrganizationID: suite.orgID,
			Code:           "4010",
			AccountType:    domain.Revenue,
			NormalBalance:  domain.CreditNormal,
			IsActive:       true,
		},
	}
}

func (suite *LedgerServiceTestSuite) balancedRequest() dto.PostVoucherRequest {
	return dto.PostVoucherRequest{
		EntryDate: "2025-06-15",
		Entries: []dto.VoucherEntryRequest{
			{AccountID: suite.cashID, EntryType: domain.Debit, Amount: decimal.RequireFromString("250")},
			{AccountID: suite.salesID, EntryType: domain.Credit, Amount: decimal.RequireFromString("250")},
		},
	}
}

func (suite *LedgerServiceTestSuite) TestPostVoucherEntries_Success() {
	ctx := context.Background()

	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, []string{suite.cashID, suite.salesID}).
		Return(suite.leafAccounts(), nil).Once()
	suite.mockLedgerRepo.On("SaveEntries", ctx, mock.AnythingOfType("[]domain.LedgerEntry")).Return(nil).Once()

	entries, err := suite.service.PostVoucherEntries(ctx, suite.orgID, suite.balancedRequest(), suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(entries, 2)
	// One voucher binds the whole batch.
	suite.Equal(entries[0].VoucherID, entries[1].VoucherID)
	suite.Equal(domain.EntryActive, entries[0].Status)
	// June with an April fiscal start is period 3 of 2025-2026.
	suite.Equal("2025-2026", entries[0].FiscalYear)
	suite.Equal(3, entries[0].FiscalPeriod)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestPostVoucherEntries_Unbalanced() {
	ctx := context.Background()
	req := suite.balancedRequest()
	req.Entries[1].Amount = decimal.RequireFromString("200")

	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, []string{suite.cashID, suite.salesID}).
		Return(suite.leafAccounts(), nil).Once()

	_, err := suite.service.PostVoucherEntries(ctx, suite.orgID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "SaveEntries", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestPostVoucherEntries_GroupAccountRejected() {
	ctx := context.Background()
	accounts := suite.leafAccounts()
	cash := accounts[suite.cashID]
	cash.IsGroup = true
	accounts[suite.cashID] = cash

	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, []string{suite.cashID, suite.salesID}).
		Return(accounts, nil).Once()

	_, err := suite.service.PostVoucherEntries(ctx, suite.orgID, suite.balancedRequest(), suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestPostVoucherEntries_ForeignAccountRejected() {
	ctx := context.Background()
	accounts := suite.leafAccounts()
	cash := accounts[suite.cashID]
	cash.OrganizationID = uuid.NewString()
	accounts[suite.cashID] = cash

	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, []string{suite.cashID, suite.salesID}).
		Return(accounts, nil).Once()

	_, err := suite.service.PostVoucherEntries(ctx, suite.orgID, suite.balancedRequest(), suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerServiceTestSuite) TestPostVoucherEntries_InvalidDate() {
	ctx := context.Background()
	req := suite.balancedRequest()
	req.EntryDate = "15-06-2025"

	_, err := suite.service.PostVoucherEntries(ctx, suite.orgID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestVoidEntry_Success() {
	ctx := context.Background()
	entry := &domain.LedgerEntry{
		EntryID:        uuid.NewString(),
		OrganizationID: suite.orgID,
		AccountID:      suite.cashID,
		Status:         domain.EntryActive,
	}

	suite.mockLedgerRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()
	suite.mockLedgerRepo.On("UpdateEntryStatus", ctx, entry.EntryID, domain.EntryVoid, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	voided, err := suite.service.VoidEntry(ctx, suite.orgID, entry.EntryID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.EntryVoid, voided.Status)
	suite.Equal(suite.userID, voided.LastUpdatedBy)
}

func (suite *LedgerServiceTestSuite) TestVoidEntry_AlreadyVoid() {
	ctx := context.Background()
	entry := &domain.LedgerEntry{
		EntryID:        uuid.NewString(),
		OrganizationID: suite.orgID,
		Status:         domain.EntryVoid,
	}

	suite.mockLedgerRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()

	_, err := suite.service.VoidEntry(ctx, suite.orgID, entry.EntryID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "UpdateEntryStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestListVoucherEntries_Success() {
	ctx := context.Background()
	voucherID := uuid.NewString()
	entries := []domain.LedgerEntry{
		{EntryID: uuid.NewString(), OrganizationID: suite.orgID, AccountID: suite.cashID, VoucherID: voucherID},
		{EntryID: uuid.NewString(), OrganizationID: suite.orgID, AccountID: suite.salesID, VoucherID: voucherID},
	}

	suite.mockLedgerRepo.On("FindEntriesByVoucherID", ctx, suite.orgID, voucherID).Return(entries, nil).Once()

	got, err := suite.service.ListVoucherEntries(ctx, suite.orgID, voucherID)

	suite.Require().NoError(err)
	suite.Len(got, 2)
	suite.Equal(voucherID, got[0].VoucherID)
}

func (suite *LedgerServiceTestSuite) TestListVoucherEntries_UnknownVoucher() {
	ctx := context.Background()
	voucherID := uuid.NewString()

	suite.mockLedgerRepo.On("FindEntriesByVoucherID", ctx, suite.orgID, voucherID).Return([]domain.LedgerEntry{}, nil).Once()

	_, err := suite.service.ListVoucherEntries(ctx, suite.orgID, voucherID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerServiceTestSuite) TestGetEntry_OtherOrganization() {
	ctx := context.Background()
	entry := &domain.LedgerEntry{
		EntryID:        uuid.NewString(),
		OrganizationID: uuid.NewString(),
	}

	suite.mockLedgerRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()

	_, err := suite.service.GetEntry(ctx, suite.orgID, entry.EntryID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
