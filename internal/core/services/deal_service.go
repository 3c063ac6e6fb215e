package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/sales_crm_app/internal/apperrors"
	"github.com/SscSPs/sales_crm_app/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_crm_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sales_crm_app/internal/core/ports/services"
	"github.com/SscSPs/sales_crm_app/internal/dto"
	"github.com/SscSPs/sales_crm_app/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type dealService struct {
	BaseService
	dealRepo    portsrepo.DealRepositoryFacade
	clientRepo  portsrepo.ClientReader
	catalogRepo portsrepo.CatalogRepository
	allocator   portssvc.IDAllocatorSvc
	location    *time.Location
}

// NewDealService creates a new deal service. Request dates are calendar days in loc.
func NewDealService(
	dealRepo portsrepo.DealRepositoryFacade,
	clientRepo portsrepo.ClientReader,
	catalogRepo portsrepo.CatalogRepository,
	allocator portssvc.IDAllocatorSvc,
	authorizer portssvc.OrganizationAuthorizerSvc,
	loc *time.Location,
) portssvc.DealSvcFacade {
	if loc == nil {
		loc = time.UTC
	}
	return &dealService{
		BaseService: BaseService{Authorizer: authorizer},
		dealRepo:    dealRepo,
		clientRepo:  clientRepo,
		catalogRepo: catalogRepo,
		allocator:   allocator,
		location:    loc,
	}
}

var _ portssvc.DealSvcFacade = (*dealService)(nil)

// GetDeal returns a deal with its payments. Sales users may only read their own deals.
func (s *dealService) GetDeal(ctx context.Context, organizationID, requestingUserID, dealID string) (*domain.Deal, error) {
	requester, err := s.AuthorizeUser(ctx, organizationID, requestingUserID)
	if err != nil {
		return nil, err
	}

	deal, err := s.dealRepo.FindDealByID(ctx, organizationID, dealID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find deal", slog.String("deal_id", dealID))
		}
		return nil, err
	}
	if requester != nil && requester.Role == domain.RoleSales && deal.UserID != requester.UserID {
		return nil, apperrors.ErrForbidden
	}
	return deal, nil
}

// ListDeals pages through deals newest first. Sales users only see their own deals.
func (s *dealService) ListDeals(ctx context.Context, organizationID, requestingUserID string, params dto.ListDealsParams) ([]domain.Deal, string, error) {
	requester, err := s.AuthorizeUser(ctx, organizationID, requestingUserID)
	if err != nil {
		return nil, "", err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	filter := portsrepo.DealListFilter{
		ClientID: params.ClientID,
		UserID:   params.UserID,
		Limit:    limit + 1,
	}
	if requester != nil && requester.Role == domain.RoleSales {
		filter.UserID = requester.UserID
	}
	if params.NextToken != "" {
		cursor, err := pagination.DecodeToken(params.NextToken)
		if err != nil {
			return nil, "", err
		}
		filter.AfterDealDate = &cursor.SortDate
		filter.AfterCreatedAt = &cursor.CreatedAt
	}

	deals, err := s.dealRepo.FindDeals(ctx, organizationID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list deals", slog.String("organization_id", organizationID))
		return nil, "", fmt.Errorf("failed to list deals: %w", err)
	}

	nextToken := ""
	if len(deals) > limit {
		deals = deals[:limit]
		last := deals[len(deals)-1]
		nextToken = pagination.EncodeToken(last.DealDate, last.CreatedAt)
	}
	return deals, nextToken, nil
}

func (s *dealService) LatestDealCode(ctx context.Context, organizationID string) (string, string, error) {
	return s.allocator.LatestIdentifier(ctx, organizationID, domain.EntityKindDeal)
}

// CreateDeal records a deal owned by the requesting user, optionally with a first PENDING payment.
// The deal is stored under the proposed code, or the next free one when it is taken.
func (s *dealService) CreateDeal(ctx context.Context, organizationID, requestingUserID string, req dto.CreateDealRequest) (*domain.Deal, error) {
	if _, err := s.AuthorizeUser(ctx, organizationID, requestingUserID); err != nil {
		return nil, err
	}

	if missing := req.MissingFields(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing required fields: %s", apperrors.ErrValidation, strings.Join(missing, ", "))
	}
	if !req.DealValue.IsPositive() {
		return nil, fmt.Errorf("%w: deal value must be greater than zero", apperrors.ErrValidation)
	}

	dealDate, err := s.parseDate("dealDate", req.DealDate)
	if err != nil {
		return nil, err
	}
	dueDate, err := s.parseDate("dueDate", req.DueDate)
	if err != nil {
		return nil, err
	}
	if dueDate.Before(dealDate) {
		return nil, fmt.Errorf("%w: due date cannot be before deal date", apperrors.ErrValidation)
	}

	client, err := s.clientRepo.FindClientByID(ctx, organizationID, req.ClientID)
	if err != nil {
		return nil, referenceError("client", req.ClientID, err)
	}
	if err := s.checkCatalog(ctx, organizationID, req.WorkTypeID, req.SourceTypeID); err != nil {
		return nil, err
	}

	now := s.Now()
	deal := domain.Deal{
		DealID:         uuid.NewString(),
		OrganizationID: organizationID,
		ClientID:       req.ClientID,
		ClientName:     client.FullName,
		DealName:       strings.TrimSpace(req.DealName),
		WorkTypeID:     req.WorkTypeID,
		SourceTypeID:   req.SourceTypeID,
		UserID:         requestingUserID,
		DealValue:      *req.DealValue,
		DealDate:       dealDate,
		DueDate:        dueDate,
		Remarks:        req.Remarks,
		AuditFields:    domain.NewAuditFields(requestingUserID, now),
		Payments:       []domain.Payment{},
	}

	var initial *domain.Payment
	if req.InitialPayment != nil {
		initial, err = s.newPayment(organizationID, deal.DealID, requestingUserID, req.InitialPayment.ReceivedAmount,
			req.InitialPayment.PaymentDate, req.InitialPayment.Remarks, req.InitialPayment.ReceiptURL, now)
		if err != nil {
			return nil, err
		}
	}

	code, err := s.allocator.Allocate(ctx, organizationID, domain.EntityKindDeal, req.DealCode, func(ctx context.Context, identifier string) error {
		deal.DealCode = identifier
		return s.dealRepo.SaveDeal(ctx, deal, initial)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create deal", slog.String("proposed_code", req.DealCode))
		return nil, err
	}
	deal.DealCode = code
	if initial != nil {
		deal.Payments = append(deal.Payments, *initial)
	}

	s.LogInfo(ctx, "Deal created successfully",
		slog.String("deal_id", deal.DealID),
		slog.String("deal_code", deal.DealCode),
		slog.Bool("with_payment", initial != nil))
	return &deal, nil
}

// UpdateDeal changes a deal's details. Only the owner or an admin may do so.
func (s *dealService) UpdateDeal(ctx context.Context, organizationID, requestingUserID, dealID string, req dto.UpdateDealRequest) (*domain.Deal, error) {
	requester, err := s.AuthorizeUser(ctx, organizationID, requestingUserID)
	if err != nil {
		return nil, err
	}

	deal, err := s.dealRepo.FindDealByID(ctx, organizationID, dealID)
	if err != nil {
		return nil, err
	}
	if deal.UserID != requestingUserID && !isAdmin(requester) {
		return nil, apperrors.ErrForbidden
	}

	if req.DealName != nil {
		name := strings.TrimSpace(*req.DealName)
		if name == "" {
			return nil, fmt.Errorf("%w: deal name cannot be empty", apperrors.ErrValidation)
		}
		deal.DealName = name
	}
	if req.DealValue != nil {
		if !req.DealValue.IsPositive() {
			return nil, fmt.Errorf("%w: deal value must be greater than zero", apperrors.ErrValidation)
		}
		deal.DealValue = *req.DealValue
	}
	if req.DealDate != nil {
		if deal.DealDate, err = s.parseDate("dealDate", *req.DealDate); err != nil {
			return nil, err
		}
	}
	if req.DueDate != nil {
		if deal.DueDate, err = s.parseDate("dueDate", *req.DueDate); err != nil {
			return nil, err
		}
	}
	if deal.DueDate.Before(deal.DealDate) {
		return nil, fmt.Errorf("%w: due date cannot be before deal date", apperrors.ErrValidation)
	}
	if req.WorkTypeID != nil || req.SourceTypeID != nil {
		workTypeID, sourceTypeID := deal.WorkTypeID, deal.SourceTypeID
		if req.WorkTypeID != nil {
			workTypeID = *req.WorkTypeID
		}
		if req.SourceTypeID != nil {
			sourceTypeID = *req.SourceTypeID
		}
		if err := s.checkCatalog(ctx, organizationID, workTypeID, sourceTypeID); err != nil {
			return nil, err
		}
		deal.WorkTypeID, deal.SourceTypeID = workTypeID, sourceTypeID
	}
	if req.Remarks != nil {
		deal.Remarks = *req.Remarks
	}
	deal.Touch(requestingUserID, s.Now())

	if err := s.dealRepo.UpdateDeal(ctx, *deal); err != nil {
		s.LogError(ctx, err, "Failed to update deal", slog.String("deal_id", dealID))
		return nil, err
	}
	return deal, nil
}

func (s *dealService) checkCatalog(ctx context.Context, organizationID, workTypeID, sourceTypeID string) error {
	if _, err := s.catalogRepo.FindWorkTypeByID(ctx, organizationID, workTypeID); err != nil {
		return referenceError("work type", workTypeID, err)
	}
	if _, err := s.catalogRepo.FindSourceTypeByID(ctx, organizationID, sourceTypeID); err != nil {
		return referenceError("source type", sourceTypeID, err)
	}
	return nil
}

func (s *dealService) parseDate(field, value string) (time.Time, error) {
	t, err := time.ParseInLocation(domain.DateLayout, value, s.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid %s %q, use YYYY-MM-DD", apperrors.ErrValidation, field, value)
	}
	return t, nil
}

func (s *dealService) newPayment(organizationID, dealID, actorID string, amount decimal.Decimal, date, remarks, receiptURL string, now time.Time) (*domain.Payment, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: received amount must be greater than zero", apperrors.ErrValidation)
	}
	paymentDate, err := s.parseDate("paymentDate", date)
	if err != nil {
		return nil, err
	}
	return &domain.Payment{
		PaymentID:      uuid.NewString(),
		OrganizationID: organizationID,
		DealID:         dealID,
		ReceivedAmount: amount,
		PaymentDate:    paymentDate,
		PaymentStatus:  domain.PaymentPending,
		Remarks:        remarks,
		ReceiptURL:     receiptURL,
		AuditFields:    domain.NewAuditFields(actorID, now),
	}, nil
}

// referenceError turns a missing referenced entity into a validation failure of the request.
func referenceError(kind, id string, err error) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("%w: %s %s does not exist", apperrors.ErrValidation, kind, id)
	}
	return err
}
