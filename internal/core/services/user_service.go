package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/SscSPs/sales_crm_app/internal/apperrors"
	"github.com/SscSPs/sales_crm_app/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_crm_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sales_crm_app/internal/core/ports/services"
	"github.com/SscSPs/sales_crm_app/internal/dto"
	"github.com/SscSPs/sales_crm_app/internal/utils"
	"github.com/google/uuid"
)

// userService implements the UserSvcFacade interface. It is also the organization authorizer.
type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	teamRepo portsrepo.TeamReader
}

// NewUserService creates a new user service with the provided dependencies
func NewUserService(userRepo portsrepo.UserRepositoryFacade, teamRepo portsrepo.TeamReader) portssvc.UserSvcFacade {
	s := &userService{
		userRepo: userRepo,
		teamRepo: teamRepo,
	}
	s.Authorizer = s
	return s
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// GetUserByID retrieves a user of the organization
func (s *userService) GetUserByID(ctx context.Context, organizationID, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, organizationID, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user by ID", slog.String("user_id", userID))
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, organizationID string, limit, offset int) ([]domain.User, error) {
	users, err := s.userRepo.FindUsers(ctx, organizationID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users", slog.String("organization_id", organizationID))
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *userService) ListTeamUsers(ctx context.Context, organizationID, teamID string) ([]domain.User, error) {
	if _, err := s.teamRepo.FindTeamByID(ctx, organizationID, teamID); err != nil {
		return nil, err
	}
	users, err := s.userRepo.FindUsersByTeam(ctx, organizationID, teamID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list team users", slog.String("team_id", teamID))
		return nil, fmt.Errorf("failed to list team users: %w", err)
	}
	return users, nil
}

// CreateUser adds an employee to the organization. Only admins may do so.
// When no password is given a temporary one is generated and returned.
func (s *userService) CreateUser(ctx context.Context, organizationID, requestingUserID string, req dto.CreateUserRequest) (*domain.User, string, error) {
	if _, err := s.AuthorizeUser(ctx, organizationID, requestingUserID, domain.RoleAdmin); err != nil {
		return nil, "", err
	}
	if !req.Role.Valid() {
		return nil, "", fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, req.Role)
	}

	if req.TeamID != nil {
		if _, err := s.teamRepo.FindTeamByID(ctx, organizationID, *req.TeamID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, "", fmt.Errorf("%w: team %s does not exist", apperrors.ErrValidation, *req.TeamID)
			}
			return nil, "", err
		}
	}

	creds, err := utils.NewCredentials(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to prepare credentials")
		return nil, "", err
	}
	var generated string
	if creds.Generated {
		generated = creds.Password
	}

	user := domain.User{
		UserID:         uuid.NewString(),
		OrganizationID: organizationID,
		TeamID:         req.TeamID,
		FullName:       strings.TrimSpace(req.FullName),
		Email:          strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash:   creds.Hash,
		Role:           req.Role,
		AuditFields:    domain.NewAuditFields(requestingUserID, s.Now()),
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save user", slog.String("email", user.Email))
		}
		return nil, "", err
	}

	s.LogInfo(ctx, "User created successfully",
		slog.String("user_id", user.UserID),
		slog.String("role", string(user.Role)),
		slog.String("creator_id", requestingUserID))
	return &user, generated, nil
}

func (s *userService) UpdateUser(ctx context.Context, organizationID, requestingUserID, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	if _, err := s.AuthorizeUser(ctx, organizationID, requestingUserID, domain.RoleAdmin); err != nil {
		return nil, err
	}
	user, err := s.GetUserByID(ctx, organizationID, userID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		name := strings.TrimSpace(*req.FullName)
		if name == "" {
			return nil, fmt.Errorf("%w: full name cannot be empty", apperrors.ErrValidation)
		}
		user.FullName = name
	}
	if req.Role != nil {
		if !req.Role.Valid() {
			return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, *req.Role)
		}
		if userID == requestingUserID && *req.Role != user.Role {
			return nil, fmt.Errorf("%w: admins cannot change their own role", apperrors.ErrValidation)
		}
		user.Role = *req.Role
	}
	user.Touch(requestingUserID, s.Now())

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update user", slog.String("user_id", userID))
		}
		return nil, err
	}
	s.LogInfo(ctx, "User updated",
		slog.String("user_id", userID),
		slog.String("role", string(user.Role)))
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, organizationID, requestingUserID, userID string) error {
	if _, err := s.AuthorizeUser(ctx, organizationID, requestingUserID, domain.RoleAdmin); err != nil {
		return err
	}
	if userID == requestingUserID {
		return fmt.Errorf("%w: admins cannot delete themselves", apperrors.ErrValidation)
	}
	if err := s.userRepo.DeleteUser(ctx, organizationID, userID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to delete user", slog.String("user_id", userID))
		}
		return err
	}
	s.LogInfo(ctx, "User deleted",
		slog.String("user_id", userID),
		slog.String("deleted_by", requestingUserID))
	return nil
}

// AuthorizeUserAction checks that the user belongs to the organization and holds one of roles
func (s *userService) AuthorizeUserAction(ctx context.Context, organizationID, userID string, roles ...domain.UserRole) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, organizationID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "User not a member of organization",
				slog.String("user_id", userID),
				slog.String("organization_id", organizationID))
			return nil, apperrors.ErrForbidden
		}
		s.LogError(ctx, err, "Failed to find user for authorization",
			slog.String("user_id", userID),
			slog.String("organization_id", organizationID))
		return nil, err
	}

	if len(roles) > 0 && !slices.Contains(roles, user.Role) {
		s.LogDebug(ctx, "User does not have required role",
			slog.String("user_id", userID),
			slog.String("user_role", string(user.Role)))
		return nil, apperrors.ErrForbidden
	}
	return user, nil
}
