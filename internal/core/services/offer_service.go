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
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type offerService struct {
	BaseService
	offerRepo portsrepo.OfferRepositoryFacade
	teamRepo  portsrepo.TeamReader
	salesRepo portsrepo.SalesRepository
	location  *time.Location
}

// NewOfferService creates the offer service. Offer dates are calendar days in loc.
func NewOfferService(
	offerRepo portsrepo.OfferRepositoryFacade,
	teamRepo portsrepo.TeamReader,
	salesRepo portsrepo.SalesRepository,
	authorizer portssvc.OrganizationAuthorizerSvc,
	loc *time.Location,
) portssvc.OfferSvcFacade {
	if loc == nil {
		loc = time.UTC
	}
	return &offerService{
		BaseService: BaseService{Authorizer: authorizer},
		offerRepo:   offerRepo,
		teamRepo:    teamRepo,
		salesRepo:   salesRepo,
		location:    loc,
	}
}

var _ portssvc.OfferSvcFacade = (*offerService)(nil)

func (s *offerService) GetOffer(ctx context.Context, organizationID, offerID string) (*domain.Offer, error) {
	offer, err := s.offerRepo.FindOfferByID(ctx, organizationID, offerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find offer", slog.String("offer_id", offerID))
		}
		return nil, err
	}
	return offer, nil
}

func (s *offerService) ListOffers(ctx context.Context, organizationID string) ([]domain.Offer, error) {
	offers, err := s.offerRepo.FindOffers(ctx, organizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list offers")
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}
	return offers, nil
}

// CreateOffer adds an unassigned offer. Only admins may do so.
func (s *offerService) CreateOffer(ctx context.Context, organizationID, requestingUserID string, req dto.CreateOfferRequest) (*domain.Offer, error) {
	if _, err := s.AuthorizeUser(ctx, organizationID, requestingUserID, domain.RoleAdmin); err != nil {
		return nil, err
	}
	if req.OfferDate == "" {
		return nil, fmt.Errorf("%w: offer date is required", apperrors.ErrValidation)
	}
	offerDate, err := time.ParseInLocation(domain.DateLayout, req.OfferDate, s.location)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid offerDate %q, use YYYY-MM-DD", apperrors.ErrValidation, req.OfferDate)
	}
	if err := checkOfferAmounts(req.OfferAmount, req.Target); err != nil {
		return nil, err
	}

	offer := domain.Offer{
		OfferID:        uuid.NewString(),
		OrganizationID: organizationID,
		OfferAmount:    req.OfferAmount,
		Bonus:          strings.TrimSpace(req.Bonus),
		Target:         req.Target,
		Remarks:        req.Remarks,
		OfferDate:      offerDate,
		AuditFields:    domain.NewAuditFields(requestingUserID, s.Now()),
	}
	if err := s.offerRepo.SaveOffer(ctx, offer); err != nil {
		s.LogError(ctx, err, "Failed to save offer")
		return nil, err
	}
	s.LogInfo(ctx, "Offer created", slog.String("offer_id", offer.OfferID))
	return &offer, nil
}

func (s *offerService) UpdateOffer(ctx context.Context, organizationID, requestingUserID, offerID string, req dto.UpdateOfferRequest) (*domain.Offer, error) {
	if _, err := s.AuthorizeUser(ctx, organizationID, requestingUserID, domain.RoleAdmin); err != nil {
		return nil, err
	}
	offer, err := s.GetOffer(ctx, organizationID, offerID)
	if err != nil {
		return nil, err
	}

	if req.OfferAmount != nil {
		offer.OfferAmount = *req.OfferAmount
	}
	if req.Bonus != nil {
		offer.Bonus = strings.TrimSpace(*req.Bonus)
	}
	if req.Target != nil {
		offer.Target = *req.Target
	}
	if req.Remarks != nil {
		offer.Remarks = *req.Remarks
	}
	if err := checkOfferAmounts(offer.OfferAmount, offer.Target); err != nil {
		return nil, err
	}
	offer.Touch(requestingUserID, s.Now())

	if err := s.offerRepo.UpdateOffer(ctx, *offer); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update offer", slog.String("offer_id", offerID))
		}
		return nil, err
	}
	return offer, nil
}

func (s *offerService) DeleteOffer(ctx context.Context, organizationID, requestingUserID, offerID string) error {
	if _, err := s.AuthorizeUser(ctx, organizationID, requestingUserID, domain.RoleAdmin); err != nil {
		return err
	}
	if err := s.offerRepo.DeleteOffer(ctx, organizationID, offerID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete offer", slog.String("offer_id", offerID))
		}
		return err
	}
	s.LogInfo(ctx, "Offer deleted", slog.String("offer_id", offerID))
	return nil
}

func (s *offerService) AssignOfferToTeam(ctx context.Context, organizationID, requestingUserID, offerID string, req dto.AssignOfferRequest) (*domain.Offer, error) {
	if _, err := s.AuthorizeUser(ctx, organizationID, requestingUserID, domain.RoleAdmin); err != nil {
		return nil, err
	}
	if req.TeamID == "" {
		return nil, fmt.Errorf("%w: team is required", apperrors.ErrValidation)
	}
	team, err := s.teamRepo.FindTeamByID(ctx, organizationID, req.TeamID)
	if err != nil {
		return nil, referenceError("team", req.TeamID, err)
	}

	if err := s.offerRepo.AssignOfferTeam(ctx, organizationID, offerID, team.TeamID, s.Now(), requestingUserID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to assign offer", slog.String("offer_id", offerID))
		}
		return nil, err
	}
	s.LogInfo(ctx, "Offer assigned to team",
		slog.String("offer_id", offerID),
		slog.String("team_id", team.TeamID))
	return s.GetOffer(ctx, organizationID, offerID)
}

func (s *offerService) OfferTargetProgress(ctx context.Context, organizationID, requestingUserID, offerID string) (*domain.OfferTargetProgress, error) {
	if _, err := s.AuthorizeUser(ctx, organizationID, requestingUserID); err != nil {
		return nil, err
	}
	offer, err := s.GetOffer(ctx, organizationID, offerID)
	if err != nil {
		return nil, err
	}

	period := offer.TargetPeriod(s.location)
	scope := domain.SalesScope{OrganizationID: organizationID}
	if offer.TeamID != nil {
		scope.TeamID = *offer.TeamID
	}
	deals, err := s.salesRepo.FindDealsInWindow(ctx, scope, period.StartDate, period.EndDate)
	if err != nil {
		s.LogError(ctx, err, "Failed to load deals for offer target", slog.String("offer_id", offerID))
		return nil, fmt.Errorf("failed to load deals: %w", err)
	}

	progress := BuildOfferProgress(*offer, deals, period)
	return &progress, nil
}

func checkOfferAmounts(amount, target decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: offer amount cannot be negative", apperrors.ErrValidation)
	}
	if target.IsNegative() {
		return fmt.Errorf("%w: target cannot be negative", apperrors.ErrValidation)
	}
	return nil
}
