package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/sales_crm_app/internal/core/domain"
)

// CommissionRepository stores commission sheets.
type CommissionRepository interface {
	// SaveCommissions inserts all rows in one transaction.
	SaveCommissions(ctx context.Context, commissions []domain.Commission) error
	// FindCommissionsBetween returns rows with commission_date in [from, to], newest first.
	FindCommissionsBetween(ctx context.Context, organizationID string, from, to time.Time) ([]domain.Commission, error)
}
