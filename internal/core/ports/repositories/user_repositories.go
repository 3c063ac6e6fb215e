package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/sales_crm_app/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a user of the organization.
	FindUserByID(ctx context.Context, organizationID, userID string) (*domain.User, error)

	// FindUsers retrieves a paginated list of the organization's users.
	FindUsers(ctx context.Context, organizationID string, limit, offset int) ([]domain.User, error)

	// FindAllUsers retrieves every user of the organization ordered by name.
	FindAllUsers(ctx context.Context, organizationID string) ([]domain.User, error)

	// FindUsersByTeam retrieves every user assigned to the team.
	FindUsersByTeam(ctx context.Context, organizationID, teamID string) ([]domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user. A taken email yields apperrors.ErrDuplicate.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUserTeam moves a user to teamID, or out of any team when teamID is nil.
	UpdateUserTeam(ctx context.Context, organizationID, userID string, teamID *string, updatedAt time.Time, updatedBy string) error

	// UpdateUser rewrites the user's name and role.
	UpdateUser(ctx context.Context, user domain.User) error

	// DeleteUser removes a user. One that still owns clients or deals yields apperrors.ErrConflict.
	DeleteUser(ctx context.Context, organizationID, userID string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
