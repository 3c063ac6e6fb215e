package repositories

import (
	"context"

	"github.com/SscSPs/sales_crm_app/internal/core/domain"
)

// CatalogRepository stores the work type and source type classifications.
type CatalogRepository interface {
	SaveWorkType(ctx context.Context, workType domain.WorkType) error
	FindWorkTypeByID(ctx context.Context, organizationID, workTypeID string) (*domain.WorkType, error)
	FindWorkTypes(ctx context.Context, organizationID string) ([]domain.WorkType, error)

	SaveSourceType(ctx context.Context, sourceType domain.SourceType) error
	FindSourceTypeByID(ctx context.Context, organizationID, sourceTypeID string) (*domain.SourceType, error)
	FindSourceTypes(ctx context.Context, organizationID string) ([]domain.SourceType, error)
	UpdateSourceType(ctx context.Context, sourceType domain.SourceType) error
	// DeleteSourceType removes an unused source type. One still referenced by deals yields apperrors.ErrConflict.
	DeleteSourceType(ctx context.Context, organizationID, sourceTypeID string) error
}
