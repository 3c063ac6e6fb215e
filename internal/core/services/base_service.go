package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/sales_crm_app/internal/apperrors"
	"github.com/SscSPs/sales_crm_app/internal/core/domain"
	portssvc "github.com/SscSPs/sales_crm_app/internal/core/ports/services"
	"github.com/SscSPs/sales_crm_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Authorizer portssvc.OrganizationAuthorizerSvc
	Clock      func() time.Time
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// Now returns the current time from the injected clock, if any.
func (s *BaseService) Now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

// AuthorizeUser checks that the user belongs to the organization and, when roles are
// given, holds one of them. A nil user with a nil error means no authorizer is wired.
func (s *BaseService) AuthorizeUser(ctx context.Context, organizationID, userID string, roles ...domain.UserRole) (*domain.User, error) {
	if err := requireScope(organizationID, userID); err != nil {
		return nil, err
	}
	if s.Authorizer != nil {
		return s.Authorizer.AuthorizeUserAction(ctx, organizationID, userID, roles...)
	}
	s.LogDebug(ctx, "No organization authorizer provided, access granted by default",
		slog.String("user_id", userID),
		slog.String("organization_id", organizationID))
	return nil, nil
}

// requireScope rejects calls made without an authenticated organization and user.
func requireScope(organizationID, userID string) error {
	if organizationID == "" || userID == "" {
		return fmt.Errorf("%w: organization and user are required", apperrors.ErrPrecondition)
	}
	return nil
}

// isAdmin reports whether an authorized user holds the admin role.
func isAdmin(user *domain.User) bool {
	return user != nil && user.Role == domain.RoleAdmin
}
