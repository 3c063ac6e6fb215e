package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/sales_crm_app/internal/core/ports/services"
	"github.com/SscSPs/sales_crm_app/internal/dto"
	"github.com/SscSPs/sales_crm_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// clientHandler handles HTTP requests related to clients.
type clientHandler struct {
	clientService portssvc.ClientSvcFacade
}

func registerClientRoutes(rg *gin.RouterGroup, clientService portssvc.ClientSvcFacade) {
	h := &clientHandler{clientService: clientService}

	clients := rg.Group("/clients")
	{
		clients.GET("", h.listClients)
		clients.POST("", h.createClient)
		clients.GET("/latest-code", h.latestClientCode)
		clients.GET("/:id", h.getClient)
		clients.PUT("/:id", h.updateClient)
	}
}

// createClient godoc
// @Summary Register a client
// @Description Registers a client owned by the caller under the proposed code, or the next free code when it is taken.
// @Tags clients
// @Accept  json
// @Produce  json
// @Param   client body dto.CreateClientRequest true "Client details"
// @Success 201 {object} dto.ClientResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Code collision persisted after retry"
// @Failure 500 {object} map[string]string "Failed to create client"
// @Security BearerAuth
// @Router /clients [post]
func (h *clientHandler) createClient(c *gin.Context) {
	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err, "request format")
		return
	}
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	client, err := h.clientService.CreateClient(c.Request.Context(), organizationID, userID, req)
	if err != nil {
		respondWithError(c, err, "Failed to create client")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Client created", slog.String("client_code", client.ClientCode))
	c.JSON(http.StatusCreated, dto.ToClientResponse(*client))
}

// listClients godoc
// @Summary List clients
// @Tags clients
// @Produce  json
// @Param   limit query int false "Limit number of results" default(20)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListClientsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Security BearerAuth
// @Router /clients [get]
func (h *clientHandler) listClients(c *gin.Context) {
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	var params dto.ListClientsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindFailed(c, err, "query parameters")
		return
	}

	clients, err := h.clientService.ListClients(c.Request.Context(), organizationID, userID, params.Limit, params.Offset)
	if err != nil {
		respondWithError(c, err, "Failed to list clients")
		return
	}
	c.JSON(http.StatusOK, dto.ToListClientsResponse(clients))
}

// latestClientCode godoc
// @Summary Latest client code and its successor
// @Tags clients
// @Produce  json
// @Success 200 {object} dto.LatestCodeResponse
// @Failure 404 {object} map[string]string "No client yet"
// @Security BearerAuth
// @Router /clients/latest-code [get]
func (h *clientHandler) latestClientCode(c *gin.Context) {
	organizationID, _, ok := requestScope(c)
	if !ok {
		return
	}
	latest, next, err := h.clientService.LatestClientCode(c.Request.Context(), organizationID)
	if err != nil {
		respondWithError(c, err, "Failed to read latest client code")
		return
	}
	c.JSON(http.StatusOK, dto.LatestCodeResponse{LatestCode: latest, NextCode: next})
}

// getClient godoc
// @Summary Get a client
// @Description Deals are included for the owning user and admins only.
// @Tags clients
// @Produce  json
// @Param   id path string true "Client ID"
// @Success 200 {object} dto.ClientResponse
// @Failure 404 {object} map[string]string "Client not found"
// @Security BearerAuth
// @Router /clients/{id} [get]
func (h *clientHandler) getClient(c *gin.Context) {
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	client, err := h.clientService.GetClient(c.Request.Context(), organizationID, userID, c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve client")
		return
	}
	c.JSON(http.StatusOK, dto.ToClientResponse(*client))
}

// updateClient godoc
// @Summary Update a client
// @Tags clients
// @Accept  json
// @Produce  json
// @Param   id path string true "Client ID"
// @Param   client body dto.UpdateClientRequest true "Fields to change"
// @Success 200 {object} dto.ClientResponse
// @Failure 403 {object} map[string]string "Caller neither owns the client nor is an admin"
// @Failure 404 {object} map[string]string "Client not found"
// @Security BearerAuth
// @Router /clients/{id} [put]
func (h *clientHandler) updateClient(c *gin.Context) {
	var req dto.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err, "request format")
		return
	}
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	client, err := h.clientService.UpdateClient(c.Request.Context(), organizationID, userID, c.Param("id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to update client")
		return
	}
	c.JSON(http.StatusOK, dto.ToClientResponse(*client))
}
