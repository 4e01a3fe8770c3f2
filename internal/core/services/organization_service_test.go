package services_test

import (
	"context"
	"testing"

	"github.com/finbooks-app/finbooks_backend/internal/apperrors"
	"github.com/finbooks-app/finbooks_backend/internal/core/domain"
	portssvc "github.com/finbooks-app/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks-app/finbooks_backend/internal/core/services"
	"github.com/finbooks-app/finbooks_backend/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type OrganizationServiceTestSuite struct {
	suite.Suite
	orgRepo *MockOrganizationRepository
	service portssvc.OrganizationSvcFacade
	ctx     context.Context
}

func (suite *OrganizationServiceTestSuite) SetupTest() {
	suite.orgRepo = new(MockOrganizationRepository)
	suite.service = services.NewOrganizationService(suite.orgRepo)
	suite.ctx = context.Background()
}

func (suite *OrganizationServiceTestSuite) TestEnsureOrganization_Active() {
	suite.orgRepo.On("FindOrganizationByID", suite.ctx, "org-1").
		Return(&domain.Organization{OrganizationID: "org-1", IsActive: true}, nil)

	suite.NoError(suite.service.EnsureOrganization(suite.ctx, "org-1"))
}

func (suite *OrganizationServiceTestSuite) TestEnsureOrganization_Inactive() {
	suite.orgRepo.On("FindOrganizationByID", suite.ctx, "org-1").
		Return(&domain.Organization{OrganizationID: "org-1", IsActive: false}, nil)

	err := suite.service.EnsureOrganization(suite.ctx, "org-1")
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *OrganizationServiceTestSuite) TestEnsureOrganization_EmptyID() {
	err := suite.service.EnsureOrganization(suite.ctx, "")
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.orgRepo.AssertNotCalled(suite.T(), "FindOrganizationByID", mock.Anything, mock.Anything)
}

func (suite *OrganizationServiceTestSuite) TestCreateOrganization_Success() {
	suite.orgRepo.On("SaveOrganization", suite.ctx, mock.AnythingOfType("domain.Organization")).
		Run(func(args mock.Arguments) {
			org := args.Get(1).(domain.Organization)
			suite.Equal("Acme Books", org.Name)
			suite.True(org.IsActive)
			suite.NotEmpty(org.OrganizationID)
			suite.Equal("user-1", org.CreatedBy)
		}).
		Return(nil)

	org, err := suite.service.CreateOrganization(suite.ctx,
		dto.CreateOrganizationRequest{Name: "  Acme Books  "}, "user-1")
	suite.NoError(err)
	suite.Equal("Acme Books", org.Name)
}

func (suite *OrganizationServiceTestSuite) TestCreateOrganization_BlankName() {
	_, err := suite.service.CreateOrganization(suite.ctx,
		dto.CreateOrganizationRequest{Name: "   "}, "user-1")
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.orgRepo.AssertNotCalled(suite.T(), "SaveOrganization", mock.Anything, mock.Anything)
}

func TestOrganizationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationServiceTestSuite))
}
