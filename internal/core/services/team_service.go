package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/sales_crm_app/internal/apperrors"
	"github.com/SscSPs/sales_crm_app/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_crm_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sales_crm_app/internal/core/ports/services"
	"github.com/SscSPs/sales_crm_app/internal/dto"
	"github.com/google/uuid"
)

type teamService struct {
	BaseService
	teamRepo  portsrepo.TeamRepositoryFacade
	userRepo  portsrepo.UserRepositoryFacade
	allocator portssvc.IDAllocatorSvc
}

// NewTeamService creates a new team service with the provided dependencies
func NewTeamService(
	teamRepo portsrepo.TeamRepositoryFacade,
	userRepo portsrepo.UserRepositoryFacade,
	allocator portssvc.IDAllocatorSvc,
	authorizer portssvc.OrganizationAuthorizerSvc,
) portssvc.TeamSvcFacade {
	return &teamService{
		BaseService: BaseService{Authorizer: authorizer},
		teamRepo:    teamRepo,
		userRepo:    userRepo,
		allocator:   allocator,
	}
}

var _ portssvc.TeamSvcFacade = (*teamService)(nil)

func (s *teamService) GetTeam(ctx context.Context, organizationID, teamID string) (*domain.Team, error) {
	team, err := s.teamRepo.FindTeamByID(ctx, organizationID, teamID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find team", slog.String("team_id", teamID))
		}
		return nil, err
	}
	return team, nil
}

func (s *teamService) ListTeams(ctx context.Context, organizationID string) ([]domain.Team, error) {
	teams, err := s.teamRepo.FindTeams(ctx, organizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list teams", slog.String("organization_id", organizationID))
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

func (s *teamService) LatestTeamCode(ctx context.Context, organizationID string) (string, string, error) {
	return s.allocator.LatestIdentifier(ctx, organizationID, domain.EntityKindTeam)
}

// CreateTeam stores a team under the proposed code, or the next free one when it is taken.
// Team names are unique per organization.
func (s *teamService) CreateTeam(ctx context.Context, organizationID, requestingUserID string, req dto.CreateTeamRequest) (*domain.Team, error) {
	if _, err := s.AuthorizeUser(ctx, organizationID, requestingUserID, domain.RoleAdmin); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.TeamName)
	if name == "" {
		return nil, fmt.Errorf("%w: team name is required", apperrors.ErrValidation)
	}
	if err := s.ensureNameFree(ctx, organizationID, name, ""); err != nil {
		return nil, err
	}

	team := domain.Team{
		TeamID:         uuid.NewString(),
		OrganizationID: organizationID,
		TeamName:       name,
		AuditFields:    domain.NewAuditFields(requestingUserID, s.Now()),
	}

	code, err := s.allocator.Allocate(ctx, organizationID, domain.EntityKindTeam, req.TeamCode, func(ctx context.Context, identifier string) error {
		team.TeamCode = identifier
		return s.teamRepo.SaveTeam(ctx, team)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create team",
			slog.String("team_name", name),
			slog.String("proposed_code", req.TeamCode))
		return nil, err
	}
	team.TeamCode = code

	s.LogInfo(ctx, "Team created successfully",
		slog.String("team_id", team.TeamID),
		slog.String("team_code", team.TeamCode))
	return &team, nil
}

func (s *teamService) RenameTeam(ctx context.Context, organizationID, requestingUserID, teamID string, req dto.RenameTeamRequest) (*domain.Team, error) {
	if _, err := s.AuthorizeUser(ctx, organizationID, requestingUserID, domain.RoleAdmin); err != nil {
		return nil, err
	}

	team, err := s.teamRepo.FindTeamByID(ctx, organizationID, teamID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.TeamName)
	if name == "" {
		return nil, fmt.Errorf("%w: team name is required", apperrors.ErrValidation)
	}
	if name == team.TeamName {
		return team, nil
	}
	if err := s.ensureNameFree(ctx, organizationID, name, teamID); err != nil {
		return nil, err
	}

	team.TeamName = name
	team.Touch(requestingUserID, s.Now())
	if err := s.teamRepo.UpdateTeam(ctx, *team); err != nil {
		s.LogError(ctx, err, "Failed to rename team", slog.String("team_id", teamID))
		return nil, err
	}

	s.LogInfo(ctx, "Team renamed", slog.String("team_id", teamID), slog.String("team_name", name))
	return team, nil
}

// DeleteTeam removes a team. Its members become unassigned.
func (s *teamService) DeleteTeam(ctx context.Context, organizationID, requestingUserID, teamID string) error {
	if _, err := s.AuthorizeUser(ctx, organizationID, requestingUserID, domain.RoleAdmin); err != nil {
		return err
	}
	if err := s.teamRepo.DeleteTeam(ctx, organizationID, teamID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete team", slog.String("team_id", teamID))
		}
		return err
	}
	s.LogInfo(ctx, "Team deleted", slog.String("team_id", teamID))
	return nil
}

func (s *teamService) SwitchUserTeam(ctx context.Context, organizationID, requestingUserID, userID string, req dto.SwitchUserTeamRequest) (*domain.User, error) {
	if _, err := s.AuthorizeUser(ctx, organizationID, requestingUserID, domain.RoleAdmin); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindUserByID(ctx, organizationID, userID)
	if err != nil {
		return nil, err
	}
	if req.TeamID != nil {
		if _, err := s.teamRepo.FindTeamByID(ctx, organizationID, *req.TeamID); err != nil {
			return nil, err
		}
	}

	now := s.Now()
	if err := s.userRepo.UpdateUserTeam(ctx, organizationID, userID, req.TeamID, now, requestingUserID); err != nil {
		s.LogError(ctx, err, "Failed to switch user team", slog.String("user_id", userID))
		return nil, err
	}

	user.TeamID = req.TeamID
	user.Touch(requestingUserID, now)
	s.LogInfo(ctx, "User switched team", slog.String("user_id", userID))
	return user, nil
}

// ensureNameFree fails with apperrors.ErrDuplicate when another team already uses name.
func (s *teamService) ensureNameFree(ctx context.Context, organizationID, name, exceptTeamID string) error {
	existing, err := s.teamRepo.FindTeamByName(ctx, organizationID, name)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return nil
	case err != nil:
		return err
	case existing.TeamID != exceptTeamID:
		return fmt.Errorf("%w: team name %q is already in use", apperrors.ErrDuplicate, name)
	}
	return nil
}
