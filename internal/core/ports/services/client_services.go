package services

import (
	"context"

	"github.com/SscSPs/sales_crm_app/internal/core/domain"
	"github.com/SscSPs/sales_crm_app/internal/dto"
)

type ClientReaderSvc interface {
	// GetClient returns the client. Its deals are included only for the owning user or an admin.
	GetClient(ctx context.Context, organizationID, requestingUserID, clientID string) (*domain.Client, error)
	ListClients(ctx context.Context, organizationID, requestingUserID string, limit, offset int) ([]domain.Client, error)
	LatestClientCode(ctx context.Context, organizationID string) (latest, next string, err error)
}

type ClientWriterSvc interface {
	CreateClient(ctx context.Context, organizationID, requestingUserID string, req dto.CreateClientRequest) (*domain.Client, error)
	UpdateClient(ctx context.Context, organizationID, requestingUserID, clientID string, req dto.UpdateClientRequest) (*domain.Client, error)
}

// ClientSvcFacade combines all client-related service interfaces
type ClientSvcFacade interface {
	ClientReaderSvc
	ClientWriterSvc
}
