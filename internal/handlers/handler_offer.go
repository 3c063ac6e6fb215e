package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/sales_crm_app/internal/core/ports/services"
	"github.com/SscSPs/sales_crm_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type offerHandler struct {
	offerService portssvc.OfferSvcFacade
}

func registerOfferRoutes(rg *gin.RouterGroup, offerService portssvc.OfferSvcFacade) {
	h := &offerHandler{offerService: offerService}

	offers := rg.Group("/offers")
	{
		offers.GET("", h.listOffers)
		offers.POST("", h.createOffer) // Admin only
		offers.GET("/:id", h.getOffer)
		offers.PUT("/:id", h.updateOffer)    // Admin only
		offers.DELETE("/:id", h.deleteOffer) // Admin only
		offers.PUT("/:id/team", h.assignOffer)
		offers.GET("/:id/target", h.offerTarget)
	}
}

// createOffer godoc
// @Summary Create an offer
// @Tags offers
// @Accept  json
// @Produce  json
// @Param   offer body dto.CreateOfferRequest true "Offer"
// @Success 201 {object} dto.OfferResponse
// @Failure 400 {object} map[string]string "Invalid input or missing offer date"
// @Failure 403 {object} map[string]string "Caller is not an admin"
// @Security BearerAuth
// @Router /offers [post]
func (h *offerHandler) createOffer(c *gin.Context) {
	var req dto.CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err, "request format")
		return
	}
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	offer, err := h.offerService.CreateOffer(c.Request.Context(), organizationID, userID, req)
	if err != nil {
		respondWithError(c, err, "Failed to create offer")
		return
	}
	c.JSON(http.StatusCreated, dto.ToOfferResponse(*offer))
}

// listOffers godoc
// @Summary List offers
// @Tags offers
// @Produce  json
// @Success 200 {object} dto.ListOffersResponse
// @Security BearerAuth
// @Router /offers [get]
func (h *offerHandler) listOffers(c *gin.Context) {
	organizationID, _, ok := requestScope(c)
	if !ok {
		return
	}
	offers, err := h.offerService.ListOffers(c.Request.Context(), organizationID)
	if err != nil {
		respondWithError(c, err, "Failed to list offers")
		return
	}
	c.JSON(http.StatusOK, dto.ToListOffersResponse(offers))
}

// getOffer godoc
// @Summary Get an offer
// @Tags offers
// @Produce  json
// @Param   id path string true "Offer ID"
// @Success 200 {object} dto.OfferResponse
// @Failure 404 {object} map[string]string "Offer not found"
// @Security BearerAuth
// @Router /offers/{id} [get]
func (h *offerHandler) getOffer(c *gin.Context) {
	organizationID, _, ok := requestScope(c)
	if !ok {
		return
	}
	offer, err := h.offerService.GetOffer(c.Request.Context(), organizationID, c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve offer")
		return
	}
	c.JSON(http.StatusOK, dto.ToOfferResponse(*offer))
}

// updateOffer godoc
// @Summary Change an offer's terms
// @Tags offers
// @Accept  json
// @Produce  json
// @Param   id path string true "Offer ID"
// @Param   offer body dto.UpdateOfferRequest true "Fields to change"
// @Success 200 {object} dto.OfferResponse
// @Failure 404 {object} map[string]string "Offer not found"
// @Security BearerAuth
// @Router /offers/{id} [put]
func (h *offerHandler) updateOffer(c *gin.Context) {
	var req dto.UpdateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err, "request format")
		return
	}
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	offer, err := h.offerService.UpdateOffer(c.Request.Context(), organizationID, userID, c.Param("id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to update offer")
		return
	}
	c.JSON(http.StatusOK, dto.ToOfferResponse(*offer))
}

// deleteOffer godoc
// @Summary Delete an offer
// @Tags offers
// @Param   id path string true "Offer ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Offer not found"
// @Security BearerAuth
// @Router /offers/{id} [delete]
func (h *offerHandler) deleteOffer(c *gin.Context) {
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	if err := h.offerService.DeleteOffer(c.Request.Context(), organizationID, userID, c.Param("id")); err != nil {
		respondWithError(c, err, "Failed to delete offer")
		return
	}
	c.Status(http.StatusNoContent)
}

// assignOffer godoc
// @Summary Assign an offer to a team
// @Description Replaces any earlier assignment.
// @Tags offers
// @Accept  json
// @Produce  json
// @Param   id path string true "Offer ID"
// @Param   assignment body dto.AssignOfferRequest true "Team"
// @Success 200 {object} dto.OfferResponse
// @Failure 400 {object} map[string]string "Unknown team"
// @Failure 404 {object} map[string]string "Offer not found"
// @Security BearerAuth
// @Router /offers/{id}/team [put]
func (h *offerHandler) assignOffer(c *gin.Context) {
	var req dto.AssignOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err, "request format")
		return
	}
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	offer, err := h.offerService.AssignOfferToTeam(c.Request.Context(), organizationID, userID, c.Param("id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to assign offer")
		return
	}
	c.JSON(http.StatusOK, dto.ToOfferResponse(*offer))
}

// offerTarget godoc
// @Summary Progress towards an offer's target
// @Description Deal value booked in the offer's month by the assigned team, or the whole organization.
// @Tags offers
// @Produce  json
// @Param   id path string true "Offer ID"
// @Success 200 {object} dto.OfferTargetResponse
// @Failure 404 {object} map[string]string "Offer not found"
// @Security BearerAuth
// @Router /offers/{id}/target [get]
func (h *offerHandler) offerTarget(c *gin.Context) {
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	progress, err := h.offerService.OfferTargetProgress(c.Request.Context(), organizationID, userID, c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Failed to compute offer target")
		return
	}
	c.JSON(http.StatusOK, dto.ToOfferTargetResponse(*progress))
}
