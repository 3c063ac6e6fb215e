package dto

import (
	"time"

	"github.com/SscSPs/sales_crm_app/internal/core/domain"
)

// CreateTeamRequest proposes a team code; the stored code may be the next free one.
type CreateTeamRequest struct {
	TeamCode string `json:"teamCode" binding:"required"`
	TeamName string `json:"teamName" binding:"required,max=255"`
}

// RenameTeamRequest changes a team's name.
type RenameTeamRequest struct {
	TeamName string `json:"teamName" binding:"required,max=255"`
}

type TeamResponse struct {
	TeamID      string    `json:"teamID"`
	TeamCode    string    `json:"teamCode"`
	TeamName    string    `json:"teamName"`
	MemberCount int       `json:"memberCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ListTeamsResponse struct {
	Teams []TeamResponse `json:"teams"`
}

func ToTeamResponse(t domain.Team) TeamResponse {
	return TeamResponse{
		TeamID:      t.TeamID,
		TeamCode:    t.TeamCode,
		TeamName:    t.TeamName,
		MemberCount: t.MemberCount,
		CreatedAt:   t.CreatedAt,
	}
}

func ToListTeamsResponse(teams []domain.Team) ListTeamsResponse {
	resp := ListTeamsResponse{Teams: make([]TeamResponse, len(teams))}
	for i, t := range teams {
		resp.Teams[i] = ToTeamResponse(t)
	}
	return resp
}
