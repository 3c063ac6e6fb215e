package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/sales_crm_app/internal/apperrors"
	"github.com/SscSPs/sales_crm_app/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_crm_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sales_crm_app/internal/core/ports/services"
	"github.com/SscSPs/sales_crm_app/internal/dto"
	"github.com/google/uuid"
)

type commissionService struct {
	BaseService
	commissionRepo portsrepo.CommissionRepository
	location       *time.Location
}

// NewCommissionService creates the commission sheet service.
func NewCommissionService(commissionRepo portsrepo.CommissionRepository, authorizer portssvc.OrganizationAuthorizerSvc, loc *time.Location) portssvc.CommissionSvc {
	if loc == nil {
		loc = time.UTC
	}
	return &commissionService{
		BaseService:    BaseService{Authorizer: authorizer},
		commissionRepo: commissionRepo,
		location:       loc,
	}
}

var _ portssvc.CommissionSvc = (*commissionService)(nil)

// SaveCommissions computes and stores every row of a monthly sheet. Only admins may do so.
func (s *commissionService) SaveCommissions(ctx context.Context, organizationID, requestingUserID string, req dto.SaveCommissionsRequest) ([]domain.Commission, error) {
	if _, err := s.AuthorizeUser(ctx, organizationID, requestingUserID, domain.RoleAdmin); err != nil {
		return nil, err
	}
	if len(req.Entries) == 0 {
		return nil, fmt.Errorf("%w: at least one commission entry is required", apperrors.ErrValidation)
	}
	commissionDate, err := time.ParseInLocation(domain.DateLayout, req.CommissionDate, s.location)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid commissionDate %q, use YYYY-MM-DD", apperrors.ErrValidation, req.CommissionDate)
	}

	now := s.Now()
	commissions := make([]domain.Commission, 0, len(req.Entries))
	for i, entry := range req.Entries {
		if entry.TotalSales.IsNegative() || entry.CommissionPercent.IsNegative() || entry.Bonus.IsNegative() || entry.TotalReceivedAmount.IsNegative() {
			return nil, fmt.Errorf("%w: entry %d has a negative amount", apperrors.ErrValidation, i+1)
		}
		if !entry.Rate.IsPositive() {
			return nil, fmt.Errorf("%w: entry %d needs a positive exchange rate", apperrors.ErrValidation, i+1)
		}

		c := domain.Commission{
			CommissionID:        uuid.NewString(),
			OrganizationID:      organizationID,
			Name:                entry.Name,
			TotalSales:          entry.TotalSales,
			Currency:            entry.Currency,
			CommissionPercent:   entry.CommissionPercent,
			Rate:                entry.Rate,
			Bonus:               entry.Bonus,
			TotalReceivedAmount: entry.TotalReceivedAmount,
			BaseCurrency:        req.BaseCurrency,
			CommissionDate:      commissionDate,
			CreatedAt:           now,
			CreatedBy:           requestingUserID,
		}
		c.Calculate()
		commissions = append(commissions, c)
	}

	if err := s.commissionRepo.SaveCommissions(ctx, commissions); err != nil {
		s.LogError(ctx, err, "Failed to save commissions", slog.Int("rows", len(commissions)))
		return nil, err
	}
	s.LogInfo(ctx, "Commission sheet saved",
		slog.Int("rows", len(commissions)),
		slog.String("commission_date", req.CommissionDate))
	return commissions, nil
}

// ListCommissionsForMonth returns the rows dated in the calendar month containing date.
func (s *commissionService) ListCommissionsForMonth(ctx context.Context, organizationID, requestingUserID string, date time.Time) ([]domain.Commission, error) {
	if _, err := s.AuthorizeUser(ctx, organizationID, requestingUserID, domain.RoleAdmin); err != nil {
		return nil, err
	}
	if date.IsZero() {
		date = s.Now()
	}
	local := date.In(s.location)
	first := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, s.location)
	last := domain.EndOfDay(first.AddDate(0, 1, -1))

	commissions, err := s.commissionRepo.FindCommissionsBetween(ctx, organizationID, first, last)
	if err != nil {
		s.LogError(ctx, err, "Failed to list commissions", slog.Time("month", first))
		return nil, fmt.Errorf("failed to list commissions: %w", err)
	}
	return commissions, nil
}
