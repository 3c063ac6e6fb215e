package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/sales_crm_app/internal/core/ports/services"
	"github.com/SscSPs/sales_crm_app/internal/dto"
	"github.com/SscSPs/sales_crm_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
	location       *time.Location
}

func registerPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade, location *time.Location) {
	h := &paymentHandler{paymentService: paymentService, location: location}

	payments := rg.Group("/payments")
	{
		payments.GET("", h.listPayments)
		payments.POST("", h.addPayment)
		payments.GET("/dashboard", h.verificationDashboard)
		payments.PUT("/:id", h.editPayment)
		payments.POST("/:id/verify", h.verifyPayment)
		payments.DELETE("/:id", h.deletePayment)
	}
}

// addPayment godoc
// @Summary Record a payment against a deal
// @Description New payments start PENDING.
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   payment body dto.AddPaymentRequest true "Payment details"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} map[string]string "Invalid input or unknown deal"
// @Failure 500 {object} map[string]string "Failed to add payment"
// @Security BearerAuth
// @Router /payments [post]
func (h *paymentHandler) addPayment(c *gin.Context) {
	var req dto.AddPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err, "request format")
		return
	}
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	payment, err := h.paymentService.AddPayment(c.Request.Context(), organizationID, userID, req)
	if err != nil {
		respondWithError(c, err, "Failed to add payment")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Payment added",
		slog.String("payment_id", payment.PaymentID), slog.String("deal_id", payment.DealID))
	c.JSON(http.StatusCreated, dto.ToPaymentResponse(*payment))
}

// listPayments godoc
// @Summary List payments in a verification status
// @Tags payments
// @Produce  json
// @Param   status query string false "PENDING, VERIFIED or DENIED" default(PENDING)
// @Param   limit query int false "Limit number of results" default(20)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 403 {object} map[string]string "Caller is not a verifier or admin"
// @Security BearerAuth
// @Router /payments [get]
func (h *paymentHandler) listPayments(c *gin.Context) {
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	var params dto.ListPaymentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindFailed(c, err, "query parameters")
		return
	}

	payments, err := h.paymentService.ListPaymentsByStatus(c.Request.Context(), organizationID, userID, params)
	if err != nil {
		respondWithError(c, err, "Failed to list payments")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPaymentsResponse(payments))
}

// verificationDashboard godoc
// @Summary Payment counts and totals per verification status
// @Tags payments
// @Produce  json
// @Param   period query string false "Named period, e.g. thisMonth"
// @Param   startDate query string false "Custom window start (YYYY-MM-DD)"
// @Param   endDate query string false "Custom window end (YYYY-MM-DD)"
// @Success 200 {object} dto.VerificationDashboardResponse
// @Failure 400 {object} map[string]string "Invalid period"
// @Failure 403 {object} map[string]string "Caller is not a verifier or admin"
// @Security BearerAuth
// @Router /payments/dashboard [get]
func (h *paymentHandler) verificationDashboard(c *gin.Context) {
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	var params dto.SalesQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindFailed(c, err, "query parameters")
		return
	}
	period, err := params.ToPeriodSpec(h.location)
	if err != nil {
		respondWithError(c, err, "Invalid period")
		return
	}

	dashboard, err := h.paymentService.VerificationDashboard(c.Request.Context(), organizationID, userID, period)
	if err != nil {
		respondWithError(c, err, "Failed to build verification dashboard")
		return
	}
	c.JSON(http.StatusOK, dto.ToVerificationDashboardResponse(*dashboard))
}

// editPayment godoc
// @Summary Edit a payment
// @Description The payment is flagged as edited. Its verification status is left unchanged.
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   id path string true "Payment ID"
// @Param   payment body dto.EditPaymentRequest true "Fields to change"
// @Success 200 {object} dto.PaymentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Payment not found"
// @Security BearerAuth
// @Router /payments/{id} [put]
func (h *paymentHandler) editPayment(c *gin.Context) {
	var req dto.EditPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err, "request format")
		return
	}
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	payment, err := h.paymentService.EditPayment(c.Request.Context(), organizationID, userID, c.Param("id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to edit payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentResponse(*payment))
}

// verifyPayment godoc
// @Summary Verify or deny a pending payment
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   id path string true "Payment ID"
// @Param   decision body dto.VerifyPaymentRequest true "Verification decision"
// @Success 200 {object} dto.PaymentResponse
// @Failure 400 {object} map[string]string "Invalid decision or missing denial remarks"
// @Failure 403 {object} map[string]string "Caller is not a verifier or admin"
// @Failure 404 {object} map[string]string "Payment not found"
// @Failure 409 {object} map[string]string "Payment already settled"
// @Security BearerAuth
// @Router /payments/{id}/verify [post]
func (h *paymentHandler) verifyPayment(c *gin.Context) {
	var req dto.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err, "request format")
		return
	}
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	payment, err := h.paymentService.VerifyPayment(c.Request.Context(), organizationID, userID, c.Param("id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to verify payment")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Payment settled",
		slog.String("payment_id", payment.PaymentID), slog.String("status", string(payment.PaymentStatus)))
	c.JSON(http.StatusOK, dto.ToPaymentResponse(*payment))
}

// deletePayment godoc
// @Summary Delete a payment
// @Description Verified payments cannot be deleted.
// @Tags payments
// @Param   id path string true "Payment ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Payment not found"
// @Failure 409 {object} map[string]string "Payment is verified"
// @Security BearerAuth
// @Router /payments/{id} [delete]
func (h *paymentHandler) deletePayment(c *gin.Context) {
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	if err := h.paymentService.DeletePayment(c.Request.Context(), organizationID, userID, c.Param("id")); err != nil {
		respondWithError(c, err, "Failed to delete payment")
		return
	}
	c.Status(http.StatusNoContent)
}
