package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/sales_crm_app/internal/core/domain"
)

// OfferReader defines read operations for offers
type OfferReader interface {
	// FindOfferByID returns the offer with its assigned team name, if any.
	FindOfferByID(ctx context.Context, organizationID, offerID string) (*domain.Offer, error)
	// FindOffers lists the organization's offers, newest offer date first.
	FindOffers(ctx context.Context, organizationID string) ([]domain.Offer, error)
}

// OfferWriter defines write operations for offers
type OfferWriter interface {
	SaveOffer(ctx context.Context, offer domain.Offer) error
	UpdateOffer(ctx context.Context, offer domain.Offer) error
	DeleteOffer(ctx context.Context, organizationID, offerID string) error
	// AssignOfferTeam replaces the offer's team assignment.
	AssignOfferTeam(ctx context.Context, organizationID, offerID, teamID string, updatedAt time.Time, updatedBy string) error
}

// OfferRepositoryFacade combines all offer-related repository interfaces
type OfferRepositoryFacade interface {
	OfferReader
	OfferWriter
}
