package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey         = contextKey("userID")
	organizationIDKey = contextKey("organizationID")
)

// WithScope returns a copy of ctx carrying the authenticated user and organization.
func WithScope(ctx context.Context, userID, organizationID string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, organizationIDKey, organizationID)
}

// GetUserIDFromContext retrieves the authenticated user ID from the request context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	return userID, ok && userID != ""
}

// GetOrganizationIDFromContext retrieves the organization of the authenticated user.
func GetOrganizationIDFromContext(c *gin.Context) (string, bool) {
	organizationID, ok := c.Request.Context().Value(organizationIDKey).(string)
	return organizationID, ok && organizationID != ""
}
