package repositories

import (
	"context"

	"github.com/SscSPs/sales_crm_app/internal/core/domain"
)

// TeamReader defines read operations for teams
type TeamReader interface {
	FindTeamByID(ctx context.Context, organizationID, teamID string) (*domain.Team, error)
	FindTeamByName(ctx context.Context, organizationID, teamName string) (*domain.Team, error)
	// FindTeams lists the organization's teams with their member counts.
	FindTeams(ctx context.Context, organizationID string) ([]domain.Team, error)
}

// TeamWriter defines write operations for teams
type TeamWriter interface {
	// SaveTeam inserts a team. A taken team code yields apperrors.ErrDuplicate,
	// a taken team name apperrors.ErrConflict.
	SaveTeam(ctx context.Context, team domain.Team) error
	UpdateTeam(ctx context.Context, team domain.Team) error
	DeleteTeam(ctx context.Context, organizationID, teamID string) error
}

// TeamRepositoryFacade combines all team-related repository interfaces
type TeamRepositoryFacade interface {
	TeamReader
	TeamWriter
}
