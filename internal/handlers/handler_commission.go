package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/sales_crm_app/internal/core/domain"
	portssvc "github.com/SscSPs/sales_crm_app/internal/core/ports/services"
	"github.com/SscSPs/sales_crm_app/internal/dto"
	"github.com/SscSPs/sales_crm_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type commissionHandler struct {
	commissionService portssvc.CommissionSvc
	location          *time.Location
}

func registerCommissionRoutes(rg *gin.RouterGroup, commissionService portssvc.CommissionSvc, location *time.Location) {
	h := &commissionHandler{commissionService: commissionService, location: location}

	commissions := rg.Group("/commissions")
	{
		commissions.GET("", h.listCommissions)
		commissions.POST("", h.saveCommissions) // Admin only
	}
}

// saveCommissions godoc
// @Summary Save a commission sheet
// @Description Stores one row per employee. Commission totals and converted amounts are computed server side.
// @Tags commissions
// @Accept  json
// @Produce  json
// @Param   sheet body dto.SaveCommissionsRequest true "Commission sheet"
// @Success 201 {object} dto.ListCommissionsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Caller is not an admin"
// @Security BearerAuth
// @Router /commissions [post]
func (h *commissionHandler) saveCommissions(c *gin.Context) {
	var req dto.SaveCommissionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err, "request format")
		return
	}
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	commissions, err := h.commissionService.SaveCommissions(c.Request.Context(), organizationID, userID, req)
	if err != nil {
		respondWithError(c, err, "Failed to save commissions")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Commission sheet saved",
		slog.String("commission_date", req.CommissionDate), slog.Int("rows", len(commissions)))
	c.JSON(http.StatusCreated, dto.ToListCommissionsResponse(commissions))
}

// listCommissions godoc
// @Summary List commissions of a month
// @Tags commissions
// @Produce  json
// @Param   date query string false "Any day in the month (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.ListCommissionsResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Security BearerAuth
// @Router /commissions [get]
func (h *commissionHandler) listCommissions(c *gin.Context) {
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	var params dto.ListCommissionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindFailed(c, err, "query parameters")
		return
	}
	date := time.Now().In(h.location)
	if params.Date != "" {
		parsed, err := time.ParseInLocation(domain.DateLayout, params.Date, h.location)
		if err != nil {
			bindFailed(c, err, "date")
			return
		}
		date = parsed
	}

	commissions, err := h.commissionService.ListCommissionsForMonth(c.Request.Context(), organizationID, userID, date)
	if err != nil {
		respondWithError(c, err, "Failed to list commissions")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCommissionsResponse(commissions))
}
