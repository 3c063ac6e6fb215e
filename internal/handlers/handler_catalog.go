package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/sales_crm_app/internal/core/ports/services"
	"github.com/SscSPs/sales_crm_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type catalogHandler struct {
	catalogService portssvc.CatalogSvc
}

func registerCatalogRoutes(rg *gin.RouterGroup, catalogService portssvc.CatalogSvc) {
	h := &catalogHandler{catalogService: catalogService}

	rg.GET("/work-types", h.listWorkTypes)
	rg.POST("/work-types", h.createWorkType) // Admin only
	rg.GET("/source-types", h.listSourceTypes)
	rg.POST("/source-types", h.createSourceType)       // Admin only
	rg.PUT("/source-types/:id", h.updateSourceType)    // Admin only
	rg.DELETE("/source-types/:id", h.deleteSourceType) // Admin only
}

// createWorkType godoc
// @Summary Add a work type
// @Tags catalog
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateCatalogEntryRequest true "Work type"
// @Success 201 {object} dto.CatalogEntryResponse
// @Failure 403 {object} map[string]string "Caller is not an admin"
// @Failure 409 {object} map[string]string "Name already exists"
// @Security BearerAuth
// @Router /work-types [post]
func (h *catalogHandler) createWorkType(c *gin.Context) {
	var req dto.CreateCatalogEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err, "request format")
		return
	}
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	workType, err := h.catalogService.CreateWorkType(c.Request.Context(), organizationID, userID, req)
	if err != nil {
		respondWithError(c, err, "Failed to create work type")
		return
	}
	c.JSON(http.StatusCreated, dto.ToWorkTypeResponse(*workType))
}

// listWorkTypes godoc
// @Summary List work types
// @Tags catalog
// @Produce  json
// @Success 200 {object} dto.ListCatalogEntriesResponse
// @Security BearerAuth
// @Router /work-types [get]
func (h *catalogHandler) listWorkTypes(c *gin.Context) {
	organizationID, _, ok := requestScope(c)
	if !ok {
		return
	}
	workTypes, err := h.catalogService.ListWorkTypes(c.Request.Context(), organizationID)
	if err != nil {
		respondWithError(c, err, "Failed to list work types")
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkTypesResponse(workTypes))
}

// createSourceType godoc
// @Summary Add a source type
// @Tags catalog
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateCatalogEntryRequest true "Source type"
// @Success 201 {object} dto.CatalogEntryResponse
// @Failure 403 {object} map[string]string "Caller is not an admin"
// @Failure 409 {object} map[string]string "Name already exists"
// @Security BearerAuth
// @Router /source-types [post]
func (h *catalogHandler) createSourceType(c *gin.Context) {
	var req dto.CreateCatalogEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err, "request format")
		return
	}
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	sourceType, err := h.catalogService.CreateSourceType(c.Request.Context(), organizationID, userID, req)
	if err != nil {
		respondWithError(c, err, "Failed to create source type")
		return
	}
	c.JSON(http.StatusCreated, dto.ToSourceTypeResponse(*sourceType))
}

// listSourceTypes godoc
// @Summary List source types
// @Tags catalog
// @Produce  json
// @Success 200 {object} dto.ListCatalogEntriesResponse
// @Security BearerAuth
// @Router /source-types [get]
func (h *catalogHandler) listSourceTypes(c *gin.Context) {
	organizationID, _, ok := requestScope(c)
	if !ok {
		return
	}
	sourceTypes, err := h.catalogService.ListSourceTypes(c.Request.Context(), organizationID)
	if err != nil {
		respondWithError(c, err, "Failed to list source types")
		return
	}
	c.JSON(http.StatusOK, dto.ToSourceTypesResponse(sourceTypes))
}

// updateSourceType godoc
// @Summary Rename a source type
// @Tags catalog
// @Accept  json
// @Produce  json
// @Param   id path string true "Source type ID"
// @Param   entry body dto.CreateCatalogEntryRequest true "Source type"
// @Success 200 {object} dto.CatalogEntryResponse
// @Failure 404 {object} map[string]string "Source type not found"
// @Failure 409 {object} map[string]string "Name already exists"
// @Security BearerAuth
// @Router /source-types/{id} [put]
func (h *catalogHandler) updateSourceType(c *gin.Context) {
	var req dto.CreateCatalogEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err, "request format")
		return
	}
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	sourceType, err := h.catalogService.UpdateSourceType(c.Request.Context(), organizationID, userID, c.Param("id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to update source type")
		return
	}
	c.JSON(http.StatusOK, dto.ToSourceTypeResponse(*sourceType))
}

// deleteSourceType godoc
// @Summary Delete an unused source type
// @Tags catalog
// @Param   id path string true "Source type ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Source type not found"
// @Failure 409 {object} map[string]string "Source type is used by deals"
// @Security BearerAuth
// @Router /source-types/{id} [delete]
func (h *catalogHandler) deleteSourceType(c *gin.Context) {
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	if err := h.catalogService.DeleteSourceType(c.Request.Context(), organizationID, userID, c.Param("id")); err != nil {
		respondWithError(c, err, "Failed to delete source type")
		return
	}
	c.Status(http.StatusNoContent)
}
