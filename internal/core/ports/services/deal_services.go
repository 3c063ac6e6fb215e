package services

import (
	"context"

	"github.com/SscSPs/sales_crm_app/internal/core/domain"
	"github.com/SscSPs/sales_crm_app/internal/dto"
)

type DealReaderSvc interface {
	GetDeal(ctx context.Context, organizationID, requestingUserID, dealID string) (*domain.Deal, error)
	// ListDeals returns a page of deals and the token of the next page, empty on the last page.
	ListDeals(ctx context.Context, organizationID, requestingUserID string, params dto.ListDealsParams) ([]domain.Deal, string, error)
	LatestDealCode(ctx context.Context, organizationID string) (latest, next string, err error)
}

type DealWriterSvc interface {
	CreateDeal(ctx context.Context, organizationID, requestingUserID string, req dto.CreateDealRequest) (*domain.Deal, error)
	UpdateDeal(ctx context.Context, organizationID, requestingUserID, dealID string, req dto.UpdateDealRequest) (*domain.Deal, error)
}

// DealSvcFacade combines all deal-related service interfaces
type DealSvcFacade interface {
	DealReaderSvc
	DealWriterSvc
}
