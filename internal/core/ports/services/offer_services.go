package services

import (
	"context"

	"github.com/SscSPs/sales_crm_app/internal/core/domain"
	"github.com/SscSPs/sales_crm_app/internal/dto"
)

type OfferReaderSvc interface {
	GetOffer(ctx context.Context, organizationID, offerID string) (*domain.Offer, error)
	ListOffers(ctx context.Context, organizationID string) ([]domain.Offer, error)
	// OfferTargetProgress totals the deal value booked in the offer's month by its team,
	// or by the whole organization while the offer is unassigned.
	OfferTargetProgress(ctx context.Context, organizationID, requestingUserID, offerID string) (*domain.OfferTargetProgress, error)
}

type OfferWriterSvc interface {
	CreateOffer(ctx context.Context, organizationID, requestingUserID string, req dto.CreateOfferRequest) (*domain.Offer, error)
	UpdateOffer(ctx context.Context, organizationID, requestingUserID, offerID string, req dto.UpdateOfferRequest) (*domain.Offer, error)
	DeleteOffer(ctx context.Context, organizationID, requestingUserID, offerID string) error
	// AssignOfferToTeam replaces any earlier assignment.
	AssignOfferToTeam(ctx context.Context, organizationID, requestingUserID, offerID string, req dto.AssignOfferRequest) (*domain.Offer, error)
}

// OfferSvcFacade combines all offer-related service interfaces
type OfferSvcFacade interface {
	OfferReaderSvc
	OfferWriterSvc
}
