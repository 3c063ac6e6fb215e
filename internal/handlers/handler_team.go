package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/sales_crm_app/internal/core/ports/services"
	"github.com/SscSPs/sales_crm_app/internal/dto"
	"github.com/SscSPs/sales_crm_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type teamHandler struct {
	teamService portssvc.TeamSvcFacade
	userService portssvc.UserReaderSvc
}

func registerTeamRoutes(rg *gin.RouterGroup, teamService portssvc.TeamSvcFacade, userService portssvc.UserReaderSvc) {
	h := &teamHandler{teamService: teamService, userService: userService}

	teams := rg.Group("/teams")
	{
		teams.GET("", h.listTeams)
		teams.POST("", h.createTeam)
		teams.GET("/latest-code", h.latestTeamCode)
		teams.GET("/:id", h.getTeam)
		teams.PUT("/:id", h.renameTeam)
		teams.DELETE("/:id", h.deleteTeam)
		teams.GET("/:id/users", h.listTeamUsers)
	}
	rg.PUT("/users/:id/team", h.switchUserTeam)
}

// createTeam godoc
// @Summary Create a team
// @Description Creates a team under the proposed code, or the next free code when it is taken.
// @Tags teams
// @Accept  json
// @Produce  json
// @Param   team body dto.CreateTeamRequest true "Team details"
// @Success 201 {object} dto.TeamResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Caller is not an admin"
// @Failure 409 {object} map[string]string "Name taken or code collision persisted"
// @Failure 500 {object} map[string]string "Failed to create team"
// @Security BearerAuth
// @Router /teams [post]
func (h *teamHandler) createTeam(c *gin.Context) {
	var req dto.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err, "request format")
		return
	}
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	team, err := h.teamService.CreateTeam(c.Request.Context(), organizationID, userID, req)
	if err != nil {
		respondWithError(c, err, "Failed to create team")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Team created", slog.String("team_code", team.TeamCode))
	c.JSON(http.StatusCreated, dto.ToTeamResponse(*team))
}

// listTeams godoc
// @Summary List teams with member counts
// @Tags teams
// @Produce  json
// @Success 200 {object} dto.ListTeamsResponse
// @Failure 500 {object} map[string]string "Failed to list teams"
// @Security BearerAuth
// @Router /teams [get]
func (h *teamHandler) listTeams(c *gin.Context) {
	organizationID, _, ok := requestScope(c)
	if !ok {
		return
	}
	teams, err := h.teamService.ListTeams(c.Request.Context(), organizationID)
	if err != nil {
		respondWithError(c, err, "Failed to list teams")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTeamsResponse(teams))
}

// latestTeamCode godoc
// @Summary Latest team code and its successor
// @Tags teams
// @Produce  json
// @Success 200 {object} dto.LatestCodeResponse
// @Failure 404 {object} map[string]string "No team yet"
// @Security BearerAuth
// @Router /teams/latest-code [get]
func (h *teamHandler) latestTeamCode(c *gin.Context) {
	organizationID, _, ok := requestScope(c)
	if !ok {
		return
	}
	latest, next, err := h.teamService.LatestTeamCode(c.Request.Context(), organizationID)
	if err != nil {
		respondWithError(c, err, "Failed to read latest team code")
		return
	}
	c.JSON(http.StatusOK, dto.LatestCodeResponse{LatestCode: latest, NextCode: next})
}

// getTeam godoc
// @Summary Get a team
// @Tags teams
// @Produce  json
// @Param   id path string true "Team ID"
// @Success 200 {object} dto.TeamResponse
// @Failure 404 {object} map[string]string "Team not found"
// @Security BearerAuth
// @Router /teams/{id} [get]
func (h *teamHandler) getTeam(c *gin.Context) {
	organizationID, _, ok := requestScope(c)
	if !ok {
		return
	}
	team, err := h.teamService.GetTeam(c.Request.Context(), organizationID, c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve team")
		return
	}
	c.JSON(http.StatusOK, dto.ToTeamResponse(*team))
}

// renameTeam godoc
// @Summary Rename a team
// @Tags teams
// @Accept  json
// @Produce  json
// @Param   id path string true "Team ID"
// @Param   team body dto.RenameTeamRequest true "New name"
// @Success 200 {object} dto.TeamResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Team not found"
// @Failure 409 {object} map[string]string "Name taken"
// @Security BearerAuth
// @Router /teams/{id} [put]
func (h *teamHandler) renameTeam(c *gin.Context) {
	var req dto.RenameTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err, "request format")
		return
	}
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	team, err := h.teamService.RenameTeam(c.Request.Context(), organizationID, userID, c.Param("id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to rename team")
		return
	}
	c.JSON(http.StatusOK, dto.ToTeamResponse(*team))
}

// deleteTeam godoc
// @Summary Delete a team
// @Description Members are left without a team.
// @Tags teams
// @Param   id path string true "Team ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string "Caller is not an admin"
// @Failure 404 {object} map[string]string "Team not found"
// @Security BearerAuth
// @Router /teams/{id} [delete]
func (h *teamHandler) deleteTeam(c *gin.Context) {
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	if err := h.teamService.DeleteTeam(c.Request.Context(), organizationID, userID, c.Param("id")); err != nil {
		respondWithError(c, err, "Failed to delete team")
		return
	}
	c.Status(http.StatusNoContent)
}

// listTeamUsers godoc
// @Summary List the members of a team
// @Tags teams
// @Produce  json
// @Param   id path string true "Team ID"
// @Success 200 {object} dto.ListUsersResponse
// @Failure 404 {object} map[string]string "Team not found"
// @Security BearerAuth
// @Router /teams/{id}/users [get]
func (h *teamHandler) listTeamUsers(c *gin.Context) {
	organizationID, _, ok := requestScope(c)
	if !ok {
		return
	}
	users, err := h.userService.ListTeamUsers(c.Request.Context(), organizationID, c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Failed to list team members")
		return
	}
	c.JSON(http.StatusOK, dto.ToListUsersResponse(users))
}

// switchUserTeam godoc
// @Summary Move a user to another team
// @Description A null teamID removes the user from any team.
// @Tags teams
// @Accept  json
// @Produce  json
// @Param   id path string true "User ID"
// @Param   team body dto.SwitchUserTeamRequest true "Target team"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} map[string]string "User or team not found"
// @Security BearerAuth
// @Router /users/{id}/team [put]
func (h *teamHandler) switchUserTeam(c *gin.Context) {
	var req dto.SwitchUserTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err, "request format")
		return
	}
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	user, err := h.teamService.SwitchUserTeam(c.Request.Context(), organizationID, userID, c.Param("id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to switch team")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(*user))
}
