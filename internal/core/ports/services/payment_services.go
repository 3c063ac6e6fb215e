package services

import (
	"context"

	"github.com/SscSPs/sales_crm_app/internal/core/domain"
	"github.com/SscSPs/sales_crm_app/internal/dto"
)

type PaymentReaderSvc interface {
	ListPaymentsByStatus(ctx context.Context, organizationID, requestingUserID string, params dto.ListPaymentsParams) ([]domain.Payment, error)
	// VerificationDashboard counts and totals the period's payments per status.
	VerificationDashboard(ctx context.Context, organizationID, requestingUserID string, period domain.PeriodSpec) (*domain.VerificationDashboard, error)
}

type PaymentWriterSvc interface {
	AddPayment(ctx context.Context, organizationID, requestingUserID string, req dto.AddPaymentRequest) (*domain.Payment, error)
	EditPayment(ctx context.Context, organizationID, requestingUserID, paymentID string, req dto.EditPaymentRequest) (*domain.Payment, error)
	// VerifyPayment moves a PENDING payment to VERIFIED or DENIED. Only admins and verifiers may call it.
	VerifyPayment(ctx context.Context, organizationID, requestingUserID, paymentID string, req dto.VerifyPaymentRequest) (*domain.Payment, error)
	DeletePayment(ctx context.Context, organizationID, requestingUserID, paymentID string) error
}

// PaymentSvcFacade combines all payment-related service interfaces
type PaymentSvcFacade interface {
	PaymentReaderSvc
	PaymentWriterSvc
}
