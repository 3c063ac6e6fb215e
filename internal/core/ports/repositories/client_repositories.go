package repositories

import (
	"context"

	"github.com/SscSPs/sales_crm_app/internal/core/domain"
)

// ClientReader defines read operations for clients
type ClientReader interface {
	FindClientByID(ctx context.Context, organizationID, clientID string) (*domain.Client, error)
	FindClients(ctx context.Context, organizationID string, limit, offset int) ([]domain.Client, error)
}

// ClientWriter defines write operations for clients
type ClientWriter interface {
	// SaveClient inserts a client. A taken client code yields apperrors.ErrDuplicate.
	SaveClient(ctx context.Context, client domain.Client) error
	UpdateClient(ctx context.Context, client domain.Client) error
}

// ClientRepositoryFacade combines all client-related repository interfaces
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
}
