package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/sales_crm_app/internal/apperrors"
	"github.com/SscSPs/sales_crm_app/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_crm_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sales_crm_app/internal/core/ports/services"
	"github.com/SscSPs/sales_crm_app/internal/dto"
	"github.com/google/uuid"
)

type clientService struct {
	BaseService
	clientRepo portsrepo.ClientRepositoryFacade
	allocator  portssvc.IDAllocatorSvc
}

// NewClientService creates a new client service with the provided dependencies
func NewClientService(
	clientRepo portsrepo.ClientRepositoryFacade,
	allocator portssvc.IDAllocatorSvc,
	authorizer portssvc.OrganizationAuthorizerSvc,
) portssvc.ClientSvcFacade {
	return &clientService{
		BaseService: BaseService{Authorizer: authorizer},
		clientRepo:  clientRepo,
		allocator:   allocator,
	}
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

// GetClient returns the client; its deals are only visible to the owner and admins.
func (s *clientService) GetClient(ctx context.Context, organizationID, requestingUserID, clientID string) (*domain.Client, error) {
	requester, err := s.AuthorizeUser(ctx, organizationID, requestingUserID)
	if err != nil {
		return nil, err
	}

	client, err := s.clientRepo.FindClientByID(ctx, organizationID, clientID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find client", slog.String("client_id", clientID))
		}
		return nil, err
	}

	if client.UserID != requestingUserID && !isAdmin(requester) {
		client.Deals = nil
	}
	return client, nil
}

func (s *clientService) ListClients(ctx context.Context, organizationID, requestingUserID string, limit, offset int) ([]domain.Client, error) {
	if _, err := s.AuthorizeUser(ctx, organizationID, requestingUserID); err != nil {
		return nil, err
	}
	clients, err := s.clientRepo.FindClients(ctx, organizationID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list clients", slog.String("organization_id", organizationID))
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

func (s *clientService) LatestClientCode(ctx context.Context, organizationID string) (string, string, error) {
	return s.allocator.LatestIdentifier(ctx, organizationID, domain.EntityKindClient)
}

// CreateClient registers a client owned by the requesting user under the proposed code,
// or the next free one when it is taken.
func (s *clientService) CreateClient(ctx context.Context, organizationID, requestingUserID string, req dto.CreateClientRequest) (*domain.Client, error) {
	if _, err := s.AuthorizeUser(ctx, organizationID, requestingUserID); err != nil {
		return nil, err
	}

	client := domain.Client{
		ClientID:       uuid.NewString(),
		OrganizationID: organizationID,
		FullName:       strings.TrimSpace(req.FullName),
		Email:          strings.TrimSpace(req.Email),
		Nationality:    req.Nationality,
		Contact:        req.Contact,
		UserID:         requestingUserID,
		AuditFields:    domain.NewAuditFields(requestingUserID, s.Now()),
	}
	if client.FullName == "" {
		return nil, fmt.Errorf("%w: client name is required", apperrors.ErrValidation)
	}

	code, err := s.allocator.Allocate(ctx, organizationID, domain.EntityKindClient, req.ClientCode, func(ctx context.Context, identifier string) error {
		client.ClientCode = identifier
		return s.clientRepo.SaveClient(ctx, client)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create client", slog.String("proposed_code", req.ClientCode))
		return nil, err
	}
	client.ClientCode = code

	s.LogInfo(ctx, "Client created successfully",
		slog.String("client_id", client.ClientID),
		slog.String("client_code", client.ClientCode))
	return &client, nil
}

// UpdateClient changes the client's contact details. Only the owner or an admin may do so.
func (s *clientService) UpdateClient(ctx context.Context, organizationID, requestingUserID, clientID string, req dto.UpdateClientRequest) (*domain.Client, error) {
	requester, err := s.AuthorizeUser(ctx, organizationID, requestingUserID)
	if err != nil {
		return nil, err
	}

	client, err := s.clientRepo.FindClientByID(ctx, organizationID, clientID)
	if err != nil {
		return nil, err
	}
	if client.UserID != requestingUserID && !isAdmin(requester) {
		return nil, apperrors.ErrForbidden
	}

	if req.FullName != nil {
		name := strings.TrimSpace(*req.FullName)
		if name == "" {
			return nil, fmt.Errorf("%w: client name cannot be empty", apperrors.ErrValidation)
		}
		client.FullName = name
	}
	if req.Email != nil {
		client.Email = strings.TrimSpace(*req.Email)
	}
	if req.Nationality != nil {
		client.Nationality = *req.Nationality
	}
	if req.Contact != nil {
		client.Contact = *req.Contact
	}
	client.Touch(requestingUserID, s.Now())

	if err := s.clientRepo.UpdateClient(ctx, *client); err != nil {
		s.LogError(ctx, err, "Failed to update client", slog.String("client_id", clientID))
		return nil, err
	}
	client.Deals = nil
	return client, nil
}
