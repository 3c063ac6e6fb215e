package services

import (
	"context"
	"time"

	"github.com/SscSPs/sales_crm_app/internal/core/domain"
)

// SalesSvc produces the sales reports.
type SalesSvc interface {
	// SalesSummary aggregates the deals active in the period, grouped by query.Dimension.
	SalesSummary(ctx context.Context, organizationID, requestingUserID string, query domain.SalesQuery) (*domain.SalesReport, error)

	// TeamSales breaks a team down by employee. A team without employees yields an empty
	// report whose Message explains why.
	TeamSales(ctx context.Context, organizationID, requestingUserID, teamID string, period domain.PeriodSpec) (*domain.TeamSalesReport, error)

	// EmployeeSalesByTeam is TeamSales for callers that need a hard failure:
	// a team without employees yields apperrors.ErrNotFound.
	EmployeeSalesByTeam(ctx context.Context, organizationID, requestingUserID, teamID string, period domain.PeriodSpec) (*domain.TeamSalesReport, error)

	// CompareSourceTypes totals the deal value booked per source type in the current window and the one before.
	CompareSourceTypes(ctx context.Context, organizationID, requestingUserID string, query domain.ComparisonQuery) (*domain.SourceTypeComparison, error)

	// UserSalesMetrics reports each user's deals booked in the calendar month containing date.
	UserSalesMetrics(ctx context.Context, organizationID, requestingUserID string, date time.Time) (*domain.UserSalesMetricsReport, error)
}
