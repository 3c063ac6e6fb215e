package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/SscSPs/sales_crm_app/internal/core/ports/services"
	"github.com/SscSPs/sales_crm_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// salesHandler serves the aggregated sales reports.
type salesHandler struct {
	salesService portssvc.SalesSvc
	location     *time.Location
}

func registerSalesRoutes(rg *gin.RouterGroup, salesService portssvc.SalesSvc, location *time.Location) {
	h := &salesHandler{salesService: salesService, location: location}

	sales := rg.Group("/sales")
	{
		sales.GET("/summary", h.salesSummary)
		sales.GET("/teams/:id", h.teamSales)
		sales.GET("/teams/:id/employees", h.employeeSales)
		sales.GET("/source-types/compare", h.compareSourceTypes)
		sales.GET("/users", h.userSalesMetrics)
	}
}

// bindPeriod binds the shared report query. It writes the error response itself and returns ok=false on failure.
func (h *salesHandler) bindPeriod(c *gin.Context) (dto.SalesQueryParams, bool) {
	var params dto.SalesQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindFailed(c, err, "query parameters")
		return params, false
	}
	return params, true
}

// salesSummary godoc
// @Summary Sales summary for a period
// @Description Totals, daily and weekly breakdowns, peak day, and an optional grouping. Sales users only see their own deals.
// @Tags sales
// @Produce  json
// @Param   period query string false "Named period, e.g. thisWeek, lastMonth, thisMonth"
// @Param   startDate query string false "Custom window start (YYYY-MM-DD)"
// @Param   endDate query string false "Custom window end (YYYY-MM-DD)"
// @Param   groupBy query string false "workType, sourceType, employee or team"
// @Param   userID query string false "Restrict to one user"
// @Param   teamID query string false "Restrict to one team"
// @Success 200 {object} dto.SalesReportResponse
// @Failure 400 {object} map[string]string "Invalid period or grouping"
// @Failure 500 {object} map[string]string "Failed to build sales summary"
// @Security BearerAuth
// @Router /sales/summary [get]
func (h *salesHandler) salesSummary(c *gin.Context) {
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	params, ok := h.bindPeriod(c)
	if !ok {
		return
	}
	query, err := params.ToSalesQuery(h.location)
	if err != nil {
		respondWithError(c, err, "Invalid sales query")
		return
	}

	report, err := h.salesService.SalesSummary(c.Request.Context(), organizationID, userID, query)
	if err != nil {
		respondWithError(c, err, "Failed to build sales summary")
		return
	}
	c.JSON(http.StatusOK, dto.ToSalesReportResponse(*report))
}

// teamSales godoc
// @Summary Sales of one team for a period
// @Description A team without members yields an empty report with a message.
// @Tags sales
// @Produce  json
// @Param   id path string true "Team ID"
// @Param   period query string false "Named period"
// @Param   startDate query string false "Custom window start (YYYY-MM-DD)"
// @Param   endDate query string false "Custom window end (YYYY-MM-DD)"
// @Success 200 {object} dto.TeamSalesResponse
// @Failure 404 {object} map[string]string "Team not found"
// @Security BearerAuth
// @Router /sales/teams/{id} [get]
func (h *salesHandler) teamSales(c *gin.Context) {
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	params, ok := h.bindPeriod(c)
	if !ok {
		return
	}
	period, err := params.ToPeriodSpec(h.location)
	if err != nil {
		respondWithError(c, err, "Invalid period")
		return
	}

	report, err := h.salesService.TeamSales(c.Request.Context(), organizationID, userID, c.Param("id"), period)
	if err != nil {
		respondWithError(c, err, "Failed to build team sales")
		return
	}
	c.JSON(http.StatusOK, dto.ToTeamSalesResponse(*report))
}

// employeeSales godoc
// @Summary Per-employee sales within a team
// @Tags sales
// @Produce  json
// @Param   id path string true "Team ID"
// @Param   period query string false "Named period"
// @Param   startDate query string false "Custom window start (YYYY-MM-DD)"
// @Param   endDate query string false "Custom window end (YYYY-MM-DD)"
// @Success 200 {object} dto.TeamSalesResponse
// @Failure 404 {object} map[string]string "Team not found or has no members"
// @Security BearerAuth
// @Router /sales/teams/{id}/employees [get]
func (h *salesHandler) employeeSales(c *gin.Context) {
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	params, ok := h.bindPeriod(c)
	if !ok {
		return
	}
	period, err := params.ToPeriodSpec(h.location)
	if err != nil {
		respondWithError(c, err, "Invalid period")
		return
	}

	report, err := h.salesService.EmployeeSalesByTeam(c.Request.Context(), organizationID, userID, c.Param("id"), period)
	if err != nil {
		respondWithError(c, err, "Failed to build employee sales")
		return
	}
	c.JSON(http.StatusOK, dto.ToTeamSalesResponse(*report))
}

// compareSourceTypes godoc
// @Summary Deal value per source type against the previous window
// @Description Deals count in the window their deal date falls in. Sales users only compare their own deals.
// @Tags sales
// @Produce  json
// @Param   window query string false "week, month or year" default(month)
// @Param   userID query string false "Restrict to one user"
// @Param   teamID query string false "Restrict to one team"
// @Success 200 {object} dto.SourceTypeComparisonResponse
// @Failure 400 {object} map[string]string "Invalid window"
// @Security BearerAuth
// @Router /sales/source-types/compare [get]
func (h *salesHandler) compareSourceTypes(c *gin.Context) {
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	var params dto.SourceTypeComparisonParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindFailed(c, err, "query parameters")
		return
	}

	comparison, err := h.salesService.CompareSourceTypes(c.Request.Context(), organizationID, userID, params.ToComparisonQuery())
	if err != nil {
		respondWithError(c, err, "Failed to compare source types")
		return
	}
	c.JSON(http.StatusOK, dto.ToSourceTypeComparisonResponse(*comparison))
}

// userSalesMetrics godoc
// @Summary Deals booked per user in a month
// @Tags sales
// @Produce  json
// @Param   date query string false "Any day in the month (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.UserSalesMetricsResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Security BearerAuth
// @Router /sales/users [get]
func (h *salesHandler) userSalesMetrics(c *gin.Context) {
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	var params dto.UserSalesMetricsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindFailed(c, err, "query parameters")
		return
	}
	date, err := params.ToDate(time.Now(), h.location)
	if err != nil {
		respondWithError(c, err, "Invalid date")
		return
	}

	report, err := h.salesService.UserSalesMetrics(c.Request.Context(), organizationID, userID, date)
	if err != nil {
		respondWithError(c, err, "Failed to build user sales metrics")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserSalesMetricsResponse(*report))
}
