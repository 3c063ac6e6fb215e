package services

import (
	"context"
	"time"

	"github.com/SscSPs/sales_crm_app/internal/core/domain"
	"github.com/SscSPs/sales_crm_app/internal/dto"
)

// CommissionSvc stores and reads monthly commission sheets.
type CommissionSvc interface {
	SaveCommissions(ctx context.Context, organizationID, requestingUserID string, req dto.SaveCommissionsRequest) ([]domain.Commission, error)
	// ListCommissionsForMonth returns the sheet rows of the calendar month containing date, newest first.
	ListCommissionsForMonth(ctx context.Context, organizationID, requestingUserID string, date time.Time) ([]domain.Commission, error)
}
