package services

import (
	"context"

	"github.com/SscSPs/sales_crm_app/internal/core/domain"
	"github.com/SscSPs/sales_crm_app/internal/dto"
)

type TeamReaderSvc interface {
	GetTeam(ctx context.Context, organizationID, teamID string) (*domain.Team, error)
	ListTeams(ctx context.Context, organizationID string) ([]domain.Team, error)
	LatestTeamCode(ctx context.Context, organizationID string) (latest, next string, err error)
}

type TeamWriterSvc interface {
	CreateTeam(ctx context.Context, organizationID, requestingUserID string, req dto.CreateTeamRequest) (*domain.Team, error)
	RenameTeam(ctx context.Context, organizationID, requestingUserID, teamID string, req dto.RenameTeamRequest) (*domain.Team, error)
	DeleteTeam(ctx context.Context, organizationID, requestingUserID, teamID string) error
	// SwitchUserTeam moves userID into the team named by req, or out of any team.
	SwitchUserTeam(ctx context.Context, organizationID, requestingUserID, userID string, req dto.SwitchUserTeamRequest) (*domain.User, error)
}

// TeamSvcFacade combines all team-related service interfaces
type TeamSvcFacade interface {
	TeamReaderSvc
	TeamWriterSvc
}
