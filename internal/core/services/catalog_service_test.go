package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/sales_crm_app/internal/apperrors"
	"github.com/SscSPs/sales_crm_app/internal/core/domain"
	portssvc "github.com/SscSPs/sales_crm_app/internal/core/ports/services"
	"github.com/SscSPs/sales_crm_app/internal/core/services"
	"github.com/SscSPs/sales_crm_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CatalogServiceTestSuite struct {
	suite.Suite
	catalogRepo *MockCatalogRepository
	authorizer  *MockAuthorizer
	service     portssvc.CatalogSvc
	ctx         context.Context
	orgID       string
}

func (suite *CatalogServiceTestSuite) SetupTest() {
	suite.catalogRepo = new(MockCatalogRepository)
	suite.authorizer = new(MockAuthorizer)
	suite.ctx = context.Background()
	suite.orgID = "org-1"
	suite.service = services.NewCatalogService(suite.catalogRepo, suite.authorizer)
}

func (suite *CatalogServiceTestSuite) TestCreateSourceType_BlankName() {
	allowAs(suite.authorizer, suite.orgID, "u-admin", domain.RoleAdmin)

	_, err := suite.service.CreateSourceType(suite.ctx, suite.orgID, "u-admin", dto.CreateCatalogEntryRequest{Name: "   "})

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CatalogServiceTestSuite) TestUpdateSourceType_Renames() {
	allowAs(suite.authorizer, suite.orgID, "u-admin", domain.RoleAdmin)
	suite.catalogRepo.On("FindSourceTypeByID", suite.ctx, suite.orgID, "st-1").
		Return(&domain.SourceType{SourceTypeID: "st-1", OrganizationID: suite.orgID, Name: "Ads"}, nil).Once()
	suite.catalogRepo.On("UpdateSourceType", suite.ctx, mock.MatchedBy(func(st domain.SourceType) bool {
		return st.SourceTypeID == "st-1" && st.Name == "Paid Ads" && st.Description == "Search and social"
	})).Return(nil).Once()

	sourceType, err := suite.service.UpdateSourceType(suite.ctx, suite.orgID, "u-admin", "st-1",
		dto.CreateCatalogEntryRequest{Name: " Paid Ads ", Description: "Search and social"})

	suite.Require().NoError(err)
	suite.Equal("Paid Ads", sourceType.Name)
	suite.catalogRepo.AssertExpectations(suite.T())
}

func (suite *CatalogServiceTestSuite) TestUpdateSourceType_NotFound() {
	allowAs(suite.authorizer, suite.orgID, "u-admin", domain.RoleAdmin)
	suite.catalogRepo.On("FindSourceTypeByID", suite.ctx, suite.orgID, "st-404").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateSourceType(suite.ctx, suite.orgID, "u-admin", "st-404", dto.CreateCatalogEntryRequest{Name: "Ads"})

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CatalogServiceTestSuite) TestDeleteSourceType_InUse() {
	allowAs(suite.authorizer, suite.orgID, "u-admin", domain.RoleAdmin)
	suite.catalogRepo.On("DeleteSourceType", suite.ctx, suite.orgID, "st-1").Return(apperrors.ErrConflict).Once()

	err := suite.service.DeleteSourceType(suite.ctx, suite.orgID, "u-admin", "st-1")

	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *CatalogServiceTestSuite) TestDeleteSourceType_RequiresAdmin() {
	suite.authorizer.On("AuthorizeUserAction", mock.Anything, suite.orgID, "u-sales", mock.Anything).Return(nil, apperrors.ErrForbidden).Once()

	err := suite.service.DeleteSourceType(suite.ctx, suite.orgID, "u-sales", "st-1")

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.catalogRepo.AssertNotCalled(suite.T(), "DeleteSourceType", mock.Anything, mock.Anything, mock.Anything)
}

func TestCatalogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogServiceTestSuite))
}
