package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/sales_crm_app/internal/core/ports/services"
	"github.com/SscSPs/sales_crm_app/internal/dto"
	"github.com/SscSPs/sales_crm_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// dealHandler handles HTTP requests related to deals.
type dealHandler struct {
	dealService portssvc.DealSvcFacade
}

func registerDealRoutes(rg *gin.RouterGroup, dealService portssvc.DealSvcFacade) {
	h := &dealHandler{dealService: dealService}

	deals := rg.Group("/deals")
	{
		deals.GET("", h.listDeals)
		deals.POST("", h.createDeal)
		deals.GET("/latest-code", h.latestDealCode)
		deals.GET("/:id", h.getDeal)
		deals.PUT("/:id", h.updateDeal)
	}
}

// createDeal godoc
// @Summary Record a deal
// @Description Records a deal, and optionally its first payment, in one transaction.
// @Tags deals
// @Accept  json
// @Produce  json
// @Param   deal body dto.CreateDealRequest true "Deal details"
// @Success 201 {object} dto.DealResponse
// @Failure 400 {object} map[string]string "Invalid input or unknown client/work type/source type"
// @Failure 409 {object} map[string]string "Code collision persisted after retry"
// @Failure 500 {object} map[string]string "Failed to create deal"
// @Security BearerAuth
// @Router /deals [post]
func (h *dealHandler) createDeal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err, "request format")
		return
	}
	if missing := req.MissingFields(); len(missing) > 0 {
		logger.Warn("Deal request is missing fields", slog.Any("fields", missing))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields", "fields": missing})
		return
	}
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	deal, err := h.dealService.CreateDeal(c.Request.Context(), organizationID, userID, req)
	if err != nil {
		respondWithError(c, err, "Failed to create deal")
		return
	}
	logger.Info("Deal created", slog.String("deal_code", deal.DealCode), slog.Int("payments", len(deal.Payments)))
	c.JSON(http.StatusCreated, dto.ToDealResponse(*deal))
}

// listDeals godoc
// @Summary List deals
// @Description Newest first. Pass the returned nextToken to fetch the following page.
// @Tags deals
// @Produce  json
// @Param   clientID query string false "Only deals of this client"
// @Param   userID query string false "Only deals of this user"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Continuation token"
// @Success 200 {object} dto.ListDealsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters or token"
// @Security BearerAuth
// @Router /deals [get]
func (h *dealHandler) listDeals(c *gin.Context) {
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	var params dto.ListDealsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindFailed(c, err, "query parameters")
		return
	}

	deals, next, err := h.dealService.ListDeals(c.Request.Context(), organizationID, userID, params)
	if err != nil {
		respondWithError(c, err, "Failed to list deals")
		return
	}
	c.JSON(http.StatusOK, dto.ToListDealsResponse(deals, next))
}

// latestDealCode godoc
// @Summary Latest deal code and its successor
// @Tags deals
// @Produce  json
// @Success 200 {object} dto.LatestCodeResponse
// @Failure 404 {object} map[string]string "No deal yet"
// @Security BearerAuth
// @Router /deals/latest-code [get]
func (h *dealHandler) latestDealCode(c *gin.Context) {
	organizationID, _, ok := requestScope(c)
	if !ok {
		return
	}
	latest, next, err := h.dealService.LatestDealCode(c.Request.Context(), organizationID)
	if err != nil {
		respondWithError(c, err, "Failed to read latest deal code")
		return
	}
	c.JSON(http.StatusOK, dto.LatestCodeResponse{LatestCode: latest, NextCode: next})
}

// getDeal godoc
// @Summary Get a deal with its payments
// @Tags deals
// @Produce  json
// @Param   id path string true "Deal ID"
// @Success 200 {object} dto.DealResponse
// @Failure 404 {object} map[string]string "Deal not found"
// @Security BearerAuth
// @Router /deals/{id} [get]
func (h *dealHandler) getDeal(c *gin.Context) {
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	deal, err := h.dealService.GetDeal(c.Request.Context(), organizationID, userID, c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve deal")
		return
	}
	c.JSON(http.StatusOK, dto.ToDealResponse(*deal))
}

// updateDeal godoc
// @Summary Update a deal
// @Tags deals
// @Accept  json
// @Produce  json
// @Param   id path string true "Deal ID"
// @Param   deal body dto.UpdateDealRequest true "Fields to change"
// @Success 200 {object} dto.DealResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Caller neither owns the deal nor is an admin"
// @Failure 404 {object} map[string]string "Deal not found"
// @Security BearerAuth
// @Router /deals/{id} [put]
func (h *dealHandler) updateDeal(c *gin.Context) {
	var req dto.UpdateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err, "request format")
		return
	}
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	deal, err := h.dealService.UpdateDeal(c.Request.Context(), organizationID, userID, c.Param("id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to update deal")
		return
	}
	c.JSON(http.StatusOK, dto.ToDealResponse(*deal))
}
