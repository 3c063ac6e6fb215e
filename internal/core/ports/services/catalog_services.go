package services

import (
	"context"

	"github.com/SscSPs/sales_crm_app/internal/core/domain"
	"github.com/SscSPs/sales_crm_app/internal/dto"
)

// CatalogSvc manages work types and source types.
type CatalogSvc interface {
	CreateWorkType(ctx context.Context, organizationID, requestingUserID string, req dto.CreateCatalogEntryRequest) (*domain.WorkType, error)
	ListWorkTypes(ctx context.Context, organizationID string) ([]domain.WorkType, error)
	CreateSourceType(ctx context.Context, organizationID, requestingUserID string, req dto.CreateCatalogEntryRequest) (*domain.SourceType, error)
	ListSourceTypes(ctx context.Context, organizationID string) ([]domain.SourceType, error)
	UpdateSourceType(ctx context.Context, organizationID, requestingUserID, sourceTypeID string, req dto.CreateCatalogEntryRequest) (*domain.SourceType, error)
	// DeleteSourceType fails with apperrors.ErrConflict while deals still use the source type.
	DeleteSourceType(ctx context.Context, organizationID, requestingUserID, sourceTypeID string) error
}
