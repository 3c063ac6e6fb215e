package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/sales_crm_app/internal/apperrors"
	"github.com/SscSPs/sales_crm_app/internal/core/domain"
	portssvc "github.com/SscSPs/sales_crm_app/internal/core/ports/services"
	"github.com/SscSPs/sales_crm_app/internal/core/services"
	"github.com/SscSPs/sales_crm_app/internal/dto"
	"github.com/SscSPs/sales_crm_app/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	userRepo *MockUserRepository
	teamRepo *MockTeamRepository
	service  portssvc.UserSvcFacade
	ctx      context.Context
	orgID    string
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.userRepo = new(MockUserRepository)
	suite.teamRepo = new(MockTeamRepository)
	suite.service = services.NewUserService(suite.userRepo, suite.teamRepo)
	suite.ctx = context.Background()
	suite.orgID = "org-1"
}

func (suite *UserServiceTestSuite) givenUser(userID string, role domain.UserRole) {
	suite.userRepo.On("FindUserByID", suite.ctx, suite.orgID, userID).Return(&domain.User{UserID: userID, OrganizationID: suite.orgID, Role: role}, nil)
}

func (suite *UserServiceTestSuite) TestAuthorizeUserAction() {
	suite.givenUser("u-verifier", domain.RoleVerifier)
	suite.userRepo.On("FindUserByID", suite.ctx, suite.orgID, "u-ghost").Return(nil, apperrors.ErrNotFound)

	user, err := suite.service.AuthorizeUserAction(suite.ctx, suite.orgID, "u-verifier")
	suite.Require().NoError(err)
	suite.Equal(domain.RoleVerifier, user.Role)

	_, err = suite.service.AuthorizeUserAction(suite.ctx, suite.orgID, "u-verifier", domain.RoleAdmin, domain.RoleVerifier)
	suite.NoError(err)

	_, err = suite.service.AuthorizeUserAction(suite.ctx, suite.orgID, "u-verifier", domain.RoleAdmin)
	suite.ErrorIs(err, apperrors.ErrForbidden)

	_, err = suite.service.AuthorizeUserAction(suite.ctx, suite.orgID, "u-ghost")
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestAuthorizeUserAction_RepositoryError() {
	dbErr := errors.New("db down")
	suite.userRepo.On("FindUserByID", suite.ctx, suite.orgID, "u-1").Return(nil, dbErr).Once()

	_, err := suite.service.AuthorizeUserAction(suite.ctx, suite.orgID, "u-1")

	suite.ErrorIs(err, dbErr)
	suite.NotErrorIs(err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestCreateUser_GeneratesPassword() {
	suite.givenUser("u-admin", domain.RoleAdmin)
	var saved domain.User
	suite.userRepo.On("SaveUser", suite.ctx, mock.AnythingOfType("domain.User")).Run(func(args mock.Arguments) {
		saved = args.Get(1).(domain.User)
	}).Return(nil).Once()

	user, password, err := suite.service.CreateUser(suite.ctx, suite.orgID, "u-admin", dto.CreateUserRequest{
		FullName: "Asha Rai", Email: " Asha@Example.com ", Role: domain.RoleSales,
	})

	suite.Require().NoError(err)
	suite.NotEmpty(password)
	suite.Equal("asha@example.com", user.Email)
	suite.Equal(suite.orgID, user.OrganizationID)
	suite.True(utils.CheckPasswordHash(password, saved.PasswordHash))
}

func (suite *UserServiceTestSuite) TestCreateUser_KeepsGivenPassword() {
	suite.givenUser("u-admin", domain.RoleAdmin)
	suite.userRepo.On("SaveUser", suite.ctx, mock.AnythingOfType("domain.User")).Return(nil).Once()

	_, password, err := suite.service.CreateUser(suite.ctx, suite.orgID, "u-admin", dto.CreateUserRequest{
		FullName: "Bikash", Email: "b@example.com", Password: "s3cret-pass", Role: domain.RoleVerifier,
	})

	suite.Require().NoError(err)
	suite.Empty(password)
}

func (suite *UserServiceTestSuite) TestCreateUser_RequiresAdmin() {
	suite.givenUser("u-sales", domain.RoleSales)

	_, _, err := suite.service.CreateUser(suite.ctx, suite.orgID, "u-sales", dto.CreateUserRequest{
		FullName: "X", Email: "x@example.com", Role: domain.RoleSales,
	})

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.userRepo.AssertNotCalled(suite.T(), "SaveUser")
}

func (suite *UserServiceTestSuite) TestCreateUser_UnknownTeam() {
	suite.givenUser("u-admin", domain.RoleAdmin)
	teamID := "team-x"
	suite.teamRepo.On("FindTeamByID", suite.ctx, suite.orgID, teamID).Return(nil, apperrors.ErrNotFound).Once()

	_, _, err := suite.service.CreateUser(suite.ctx, suite.orgID, "u-admin", dto.CreateUserRequest{
		FullName: "X", Email: "x@example.com", Role: domain.RoleSales, TeamID: &teamID,
	})

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *UserServiceTestSuite) TestCreateUser_MissingScope() {
	_, _, err := suite.service.CreateUser(suite.ctx, suite.orgID, "", dto.CreateUserRequest{})

	suite.ErrorIs(err, apperrors.ErrPrecondition)
}

func (suite *UserServiceTestSuite) TestUpdateUser_ChangesRole() {
	suite.givenUser("u-admin", domain.RoleAdmin)
	suite.givenUser("u-1", domain.RoleSales)
	suite.userRepo.On("UpdateUser", suite.ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.UserID == "u-1" && u.Role == domain.RoleVerifier && u.LastUpdatedBy == "u-admin"
	})).Return(nil).Once()

	role := domain.RoleVerifier
	user, err := suite.service.UpdateUser(suite.ctx, suite.orgID, "u-admin", "u-1", dto.UpdateUserRequest{Role: &role})

	suite.Require().NoError(err)
	suite.Equal(domain.RoleVerifier, user.Role)
	suite.userRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpdateUser_CannotChangeOwnRole() {
	suite.givenUser("u-admin", domain.RoleAdmin)

	role := domain.RoleSales
	_, err := suite.service.UpdateUser(suite.ctx, suite.orgID, "u-admin", "u-admin", dto.UpdateUserRequest{Role: &role})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.userRepo.AssertNotCalled(suite.T(), "UpdateUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestDeleteUser_Self() {
	suite.givenUser("u-admin", domain.RoleAdmin)

	err := suite.service.DeleteUser(suite.ctx, suite.orgID, "u-admin", "u-admin")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.userRepo.AssertNotCalled(suite.T(), "DeleteUser", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestDeleteUser_OwnerOfDealsIsConflict() {
	suite.givenUser("u-admin", domain.RoleAdmin)
	suite.userRepo.On("DeleteUser", suite.ctx, suite.orgID, "u-1").Return(apperrors.ErrConflict).Once()

	err := suite.service.DeleteUser(suite.ctx, suite.orgID, "u-admin", "u-1")

	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *UserServiceTestSuite) TestDeleteUser_RequiresAdmin() {
	suite.givenUser("u-sales", domain.RoleSales)

	err := suite.service.DeleteUser(suite.ctx, suite.orgID, "u-sales", "u-1")

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
