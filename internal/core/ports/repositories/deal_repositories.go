package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/sales_crm_app/internal/core/domain"
)

// DealListFilter pages through an organization's deals, newest deal date first.
type DealListFilter struct {
	ClientID string
	UserID   string
	Limit    int
	// Keyset cursor: rows strictly after (AfterDealDate, AfterCreatedAt) in list order.
	AfterDealDate  *time.Time
	AfterCreatedAt *time.Time
}

// DealReader defines read operations for deals
type DealReader interface {
	// FindDealByID returns the deal with its payments.
	FindDealByID(ctx context.Context, organizationID, dealID string) (*domain.Deal, error)
	FindDeals(ctx context.Context, organizationID string, filter DealListFilter) ([]domain.Deal, error)
}

// DealWriter defines write operations for deals
type DealWriter interface {
	// SaveDeal inserts a deal and, when given, its initial payment in one transaction.
	// A taken deal code yields apperrors.ErrDuplicate and nothing is written.
	SaveDeal(ctx context.Context, deal domain.Deal, initialPayment *domain.Payment) error
	UpdateDeal(ctx context.Context, deal domain.Deal) error
}

// DealRepositoryFacade combines all deal-related repository interfaces
type DealRepositoryFacade interface {
	DealReader
	DealWriter
}
