package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/sales_crm_app/internal/core/domain"
)

// PaymentReader defines read operations for payments
type PaymentReader interface {
	FindPaymentByID(ctx context.Context, organizationID, paymentID string) (*domain.Payment, error)
	FindPaymentsByStatus(ctx context.Context, organizationID string, status domain.PaymentStatus, limit, offset int) ([]domain.Payment, error)
	// SummarizePaymentsByStatus counts and totals payments dated in [from, to] per status.
	SummarizePaymentsByStatus(ctx context.Context, organizationID string, from, to time.Time) ([]domain.PaymentStatusSummary, error)
}

// PaymentWriter defines write operations for payments
type PaymentWriter interface {
	SavePayment(ctx context.Context, payment domain.Payment) error
	UpdatePayment(ctx context.Context, payment domain.Payment) error
	DeletePayment(ctx context.Context, organizationID, paymentID string) error
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
