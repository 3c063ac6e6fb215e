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

type catalogService struct {
	BaseService
	catalogRepo portsrepo.CatalogRepository
}

// NewCatalogService creates the work type and source type service.
func NewCatalogService(catalogRepo portsrepo.CatalogRepository, authorizer portssvc.OrganizationAuthorizerSvc) portssvc.CatalogSvc {
	return &catalogService{
		BaseService: BaseService{Authorizer: authorizer},
		catalogRepo: catalogRepo,
	}
}

var _ portssvc.CatalogSvc = (*catalogService)(nil)

func (s *catalogService) CreateWorkType(ctx context.Context, organizationID, requestingUserID string, req dto.CreateCatalogEntryRequest) (*domain.WorkType, error) {
	if _, err := s.AuthorizeUser(ctx, organizationID, requestingUserID, domain.RoleAdmin); err != nil {
		return nil, err
	}
	name, err := catalogName(req)
	if err != nil {
		return nil, err
	}

	workType := domain.WorkType{
		WorkTypeID:     uuid.NewString(),
		OrganizationID: organizationID,
		Name:           name,
		Description:    req.Description,
		CreatedAt:      s.Now(),
		CreatedBy:      requestingUserID,
	}
	if err := s.catalogRepo.SaveWorkType(ctx, workType); err != nil {
		s.LogError(ctx, err, "Failed to save work type", slog.String("name", name))
		return nil, err
	}
	s.LogInfo(ctx, "Work type created", slog.String("work_type_id", workType.WorkTypeID))
	return &workType, nil
}

func (s *catalogService) ListWorkTypes(ctx context.Context, organizationID string) ([]domain.WorkType, error) {
	workTypes, err := s.catalogRepo.FindWorkTypes(ctx, organizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list work types")
		return nil, fmt.Errorf("failed to list work types: %w", err)
	}
	return workTypes, nil
}

func (s *catalogService) CreateSourceType(ctx context.Context, organizationID, requestingUserID string, req dto.CreateCatalogEntryRequest) (*domain.SourceType, error) {
	if _, err := s.AuthorizeUser(ctx, organizationID, requestingUserID, domain.RoleAdmin); err != nil {
		return nil, err
	}
	name, err := catalogName(req)
	if err != nil {
		return nil, err
	}

	sourceType := domain.SourceType{
		SourceTypeID:   uuid.NewString(),
		OrganizationID: organizationID,
		Name:           name,
		Description:    req.Description,
		CreatedAt:      s.Now(),
		CreatedBy:      requestingUserID,
	}
	if err := s.catalogRepo.SaveSourceType(ctx, sourceType); err != nil {
		s.LogError(ctx, err, "Failed to save source type", slog.String("name", name))
		return nil, err
	}
	s.LogInfo(ctx, "Source type created", slog.String("source_type_id", sourceType.SourceTypeID))
	return &sourceType, nil
}

func (s *catalogService) ListSourceTypes(ctx context.Context, organizationID string) ([]domain.SourceType, error) {
	sourceTypes, err := s.catalogRepo.FindSourceTypes(ctx, organizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list source types")
		return nil, fmt.Errorf("failed to list source types: %w", err)
	}
	return sourceTypes, nil
}

func (s *catalogService) UpdateSourceType(ctx context.Context, organizationID, requestingUserID, sourceTypeID string, req dto.CreateCatalogEntryRequest) (*domain.SourceType, error) {
	if _, err := s.AuthorizeUser(ctx, organizationID, requestingUserID, domain.RoleAdmin); err != nil {
		return nil, err
	}
	name, err := catalogName(req)
	if err != nil {
		return nil, err
	}

	sourceType, err := s.catalogRepo.FindSourceTypeByID(ctx, organizationID, sourceTypeID)
	if err != nil {
		return nil, err
	}
	sourceType.Name = name
	sourceType.Description = req.Description

	if err := s.catalogRepo.UpdateSourceType(ctx, *sourceType); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update source type", slog.String("source_type_id", sourceTypeID))
		}
		return nil, err
	}
	return sourceType, nil
}

func (s *catalogService) DeleteSourceType(ctx context.Context, organizationID, requestingUserID, sourceTypeID string) error {
	if _, err := s.AuthorizeUser(ctx, organizationID, requestingUserID, domain.RoleAdmin); err != nil {
		return err
	}
	if err := s.catalogRepo.DeleteSourceType(ctx, organizationID, sourceTypeID); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			s.LogInfo(ctx, "Source type still used by deals", slog.String("source_type_id", sourceTypeID))
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete source type", slog.String("source_type_id", sourceTypeID))
		}
		return err
	}
	s.LogInfo(ctx, "Source type deleted", slog.String("source_type_id", sourceTypeID))
	return nil
}

func catalogName(req dto.CreateCatalogEntryRequest) (string, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return "", fmt.Errorf("%w: name is required", apperrors.ErrValidation)
	}
	return name, nil
}
