package services

import (
	"context"

	"github.com/SscSPs/sales_crm_app/internal/core/domain"
	"github.com/SscSPs/sales_crm_app/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	GetUserByID(ctx context.Context, organizationID, userID string) (*domain.User, error)
	ListUsers(ctx context.Context, organizationID string, limit, offset int) ([]domain.User, error)
	ListTeamUsers(ctx context.Context, organizationID, teamID string) ([]domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// CreateUser adds an employee. The returned string is the generated password when the
	// request carried none, empty otherwise.
	CreateUser(ctx context.Context, organizationID, requestingUserID string, req dto.CreateUserRequest) (*domain.User, string, error)

	// UpdateUser changes a user's name or role.
	UpdateUser(ctx context.Context, organizationID, requestingUserID, userID string, req dto.UpdateUserRequest) (*domain.User, error)

	// DeleteUser removes a user without clients or deals. Admins cannot delete themselves.
	DeleteUser(ctx context.Context, organizationID, requestingUserID, userID string) error
}

// OrganizationAuthorizerSvc defines operations for organization authorization
type OrganizationAuthorizerSvc interface {
	// AuthorizeUserAction checks that the user belongs to the organization and, when roles are
	// given, holds one of them. It returns the user on success and apperrors.ErrForbidden otherwise.
	AuthorizeUserAction(ctx context.Context, organizationID, userID string, roles ...domain.UserRole) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	OrganizationAuthorizerSvc
}
