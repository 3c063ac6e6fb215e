package services

import (
	"context"
	"errors"
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

type paymentService struct {
	BaseService
	paymentRepo portsrepo.PaymentRepositoryFacade
	dealRepo    portsrepo.DealReader
	location    *time.Location
}

// PaymentServiceOption is a function that configures a paymentService
type PaymentServiceOption func(*paymentService)

// WithPaymentAuthorizer sets the organization authorizer.
func WithPaymentAuthorizer(authorizer portssvc.OrganizationAuthorizerSvc) PaymentServiceOption {
	return func(s *paymentService) {
		s.Authorizer = authorizer
	}
}

// WithPaymentClock replaces time.Now for verification timestamps and relative periods.
func WithPaymentClock(clock func() time.Time) PaymentServiceOption {
	return func(s *paymentService) {
		s.Clock = clock
	}
}

// WithPaymentLocation sets the time zone payment dates and periods are read in.
func WithPaymentLocation(loc *time.Location) PaymentServiceOption {
	return func(s *paymentService) {
		if loc != nil {
			s.location = loc
		}
	}
}

// NewPaymentService creates a new payment service with the provided dependencies
func NewPaymentService(paymentRepo portsrepo.PaymentRepositoryFacade, dealRepo portsrepo.DealReader, options ...PaymentServiceOption) portssvc.PaymentSvcFacade {
	s := &paymentService{
		paymentRepo: paymentRepo,
		dealRepo:    dealRepo,
		location:    time.UTC,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

func (s *paymentService) ListPaymentsByStatus(ctx context.Context, organizationID, requestingUserID string, params dto.ListPaymentsParams) ([]domain.Payment, error) {
	if _, err := s.AuthorizeUser(ctx, organizationID, requestingUserID); err != nil {
		return nil, err
	}
	status := params.Status
	if status == "" {
		status = domain.PaymentPending
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown payment status %q", apperrors.ErrValidation, status)
	}

	payments, err := s.paymentRepo.FindPaymentsByStatus(ctx, organizationID, status, params.Limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments", slog.String("status", string(status)))
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}

// VerificationDashboard summarises the period's payments per status for verifiers.
func (s *paymentService) VerificationDashboard(ctx context.Context, organizationID, requestingUserID string, spec domain.PeriodSpec) (*domain.VerificationDashboard, error) {
	if _, err := s.AuthorizeUser(ctx, organizationID, requestingUserID, domain.RoleAdmin, domain.RoleVerifier); err != nil {
		return nil, err
	}

	period, err := domain.ResolvePeriod(spec, s.Now(), s.location)
	if err != nil {
		return nil, err
	}

	summaries, err := s.paymentRepo.SummarizePaymentsByStatus(ctx, organizationID, period.StartDate, period.EndDate)
	if err != nil {
		s.LogError(ctx, err, "Failed to summarise payments", slog.String("period", period.Label))
		return nil, fmt.Errorf("failed to summarise payments: %w", err)
	}

	return &domain.VerificationDashboard{Period: period, Statuses: completeStatuses(summaries)}, nil
}

// completeStatuses lists every status in lifecycle order, zero-filled when absent.
func completeStatuses(summaries []domain.PaymentStatusSummary) []domain.PaymentStatusSummary {
	byStatus := make(map[domain.PaymentStatus]domain.PaymentStatusSummary, len(summaries))
	for _, summary := range summaries {
		byStatus[summary.Status] = summary
	}
	statuses := []domain.PaymentStatus{domain.PaymentPending, domain.PaymentVerified, domain.PaymentDenied}
	out := make([]domain.PaymentStatusSummary, 0, len(statuses))
	for _, status := range statuses {
		summary, ok := byStatus[status]
		if !ok {
			summary = domain.PaymentStatusSummary{Status: status}
		}
		out = append(out, summary)
	}
	return out
}

// AddPayment records a PENDING payment against an existing deal.
func (s *paymentService) AddPayment(ctx context.Context, organizationID, requestingUserID string, req dto.AddPaymentRequest) (*domain.Payment, error) {
	if _, err := s.AuthorizeUser(ctx, organizationID, requestingUserID); err != nil {
		return nil, err
	}
	if !req.ReceivedAmount.IsPositive() {
		return nil, fmt.Errorf("%w: received amount must be greater than zero", apperrors.ErrValidation)
	}
	paymentDate, err := s.parseDate(req.PaymentDate)
	if err != nil {
		return nil, err
	}

	if _, err := s.dealRepo.FindDealByID(ctx, organizationID, req.DealID); err != nil {
		return nil, referenceError("deal", req.DealID, err)
	}

	payment := domain.Payment{
		PaymentID:      uuid.NewString(),
		OrganizationID: organizationID,
		DealID:         req.DealID,
		ReceivedAmount: req.ReceivedAmount,
		PaymentDate:    paymentDate,
		PaymentStatus:  domain.PaymentPending,
		Remarks:        req.Remarks,
		ReceiptURL:     req.ReceiptURL,
		AuditFields:    domain.NewAuditFields(requestingUserID, s.Now()),
	}
	if err := s.paymentRepo.SavePayment(ctx, payment); err != nil {
		s.LogError(ctx, err, "Failed to save payment", slog.String("deal_id", req.DealID))
		return nil, err
	}

	s.LogInfo(ctx, "Payment recorded",
		slog.String("payment_id", payment.PaymentID),
		slog.String("deal_id", payment.DealID))
	return &payment, nil
}

// EditPayment changes a payment's amount, date, remarks or receipt and flags it as edited.
// Verified and denied payments stay editable and keep their status.
func (s *paymentService) EditPayment(ctx context.Context, organizationID, requestingUserID, paymentID string, req dto.EditPaymentRequest) (*domain.Payment, error) {
	if _, err := s.AuthorizeUser(ctx, organizationID, requestingUserID); err != nil {
		return nil, err
	}

	payment, err := s.paymentRepo.FindPaymentByID(ctx, organizationID, paymentID)
	if err != nil {
		return nil, err
	}

	// Settled payments stay editable; the edit flag records that they changed afterwards.
	if req.ReceivedAmount != nil {
		if !req.ReceivedAmount.IsPositive() {
			return nil, fmt.Errorf("%w: received amount must be greater than zero", apperrors.ErrValidation)
		}
		payment.ReceivedAmount = *req.ReceivedAmount
	}
	if req.PaymentDate != nil {
		if payment.PaymentDate, err = s.parseDate(*req.PaymentDate); err != nil {
			return nil, err
		}
	}
	if req.Remarks != nil {
		payment.Remarks = *req.Remarks
	}
	if req.ReceiptURL != nil {
		payment.ReceiptURL = *req.ReceiptURL
	}
	payment.MarkEdited(requestingUserID, s.Now())

	if err := s.paymentRepo.UpdatePayment(ctx, *payment); err != nil {
		s.LogError(ctx, err, "Failed to update payment", slog.String("payment_id", paymentID))
		return nil, err
	}
	return payment, nil
}

func (s *paymentService) VerifyPayment(ctx context.Context, organizationID, requestingUserID, paymentID string, req dto.VerifyPaymentRequest) (*domain.Payment, error) {
	if _, err := s.AuthorizeUser(ctx, organizationID, requestingUserID, domain.RoleAdmin, domain.RoleVerifier); err != nil {
		return nil, err
	}

	payment, err := s.paymentRepo.FindPaymentByID(ctx, organizationID, paymentID)
	if err != nil {
		return nil, err
	}
	if err := payment.Verify(requestingUserID, req.Status, req.DenialRemarks, s.Now()); err != nil {
		return nil, err
	}

	if err := s.paymentRepo.UpdatePayment(ctx, *payment); err != nil {
		s.LogError(ctx, err, "Failed to store payment verification", slog.String("payment_id", paymentID))
		return nil, err
	}

	s.LogInfo(ctx, "Payment verified",
		slog.String("payment_id", paymentID),
		slog.String("status", string(payment.PaymentStatus)),
		slog.String("verifier_id", requestingUserID))
	return payment, nil
}

func (s *paymentService) DeletePayment(ctx context.Context, organizationID, requestingUserID, paymentID string) error {
	if _, err := s.AuthorizeUser(ctx, organizationID, requestingUserID); err != nil {
		return err
	}
	payment, err := s.paymentRepo.FindPaymentByID(ctx, organizationID, paymentID)
	if err != nil {
		return err
	}
	if payment.PaymentStatus == domain.PaymentVerified {
		return fmt.Errorf("%w: verified payments cannot be deleted", apperrors.ErrConflict)
	}
	if err := s.paymentRepo.DeletePayment(ctx, organizationID, paymentID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete payment", slog.String("payment_id", paymentID))
		}
		return err
	}
	s.LogInfo(ctx, "Payment deleted", slog.String("payment_id", paymentID))
	return nil
}

func (s *paymentService) parseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(domain.DateLayout, value, s.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid paymentDate %q, use YYYY-MM-DD", apperrors.ErrValidation, value)
	}
	return t, nil
}
