package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/sales_crm_app/internal/apperrors"
	"github.com/SscSPs/sales_crm_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// statusForError maps the application's sentinel errors onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrPrecondition):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// respondWithError writes err as a JSON error body. Client errors carry the service's message,
// server errors only the generic failure text.
func respondWithError(c *gin.Context, err error, failure string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		logger.Error(failure, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": failure})
		return
	}
	logger.Warn(failure, slog.String("error", err.Error()), slog.Int("status", status))
	c.JSON(status, gin.H{"error": err.Error()})
}

// requestScope reads the organization and user the auth middleware resolved.
// It answers 401 and returns ok=false when either is missing.
func requestScope(c *gin.Context) (organizationID, userID string, ok bool) {
	organizationID, orgOK := middleware.GetOrganizationIDFromContext(c)
	userID, userOK := middleware.GetUserIDFromContext(c)
	if !orgOK || !userOK {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Request scope not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", "", false
	}
	return organizationID, userID, true
}

func bindFailed(c *gin.Context, err error, what string) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind "+what, slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + what + ": " + err.Error()})
}
