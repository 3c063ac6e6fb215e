package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/sales_crm_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// PaymentStatus is the verification state of a payment.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentVerified PaymentStatus = "VERIFIED"
	PaymentDenied   PaymentStatus = "DENIED"
)

// Valid reports whether s is a known status.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentVerified, PaymentDenied:
		return true
	}
	return false
}

// Payment is money received against a deal.
type Payment struct {
	PaymentID      string          `json:"paymentID"`
	OrganizationID string          `json:"organizationID"`
	DealID         string          `json:"dealID"`
	ReceivedAmount decimal.Decimal `json:"receivedAmount"`
	PaymentDate    time.Time       `json:"paymentDate"`
	PaymentStatus  PaymentStatus   `json:"paymentStatus"`
	Remarks        string          `json:"remarks"`
	ReceiptURL     string          `json:"receiptURL,omitempty"`
	VerifierID     *string         `json:"verifierID,omitempty"`
	DenialRemarks  string          `json:"denialRemarks,omitempty"`
	VerifiedAt     *time.Time      `json:"verifiedAt,omitempty"`
	IsEdited       bool            `json:"isEdited"`
	EditedAt       *time.Time      `json:"editedAt,omitempty"`
	AuditFields
}

// CountsWithin reports whether the payment contributes to collected totals for p:
// it must be VERIFIED and dated inside p.
func (p Payment) CountsWithin(period Period) bool {
	return p.PaymentStatus == PaymentVerified && period.Contains(p.PaymentDate)
}

// Verify moves a PENDING payment to VERIFIED or DENIED. A payment is verified at most once.
func (p *Payment) Verify(verifierID string, status PaymentStatus, denialRemarks string, now time.Time) error {
	if status != PaymentVerified && status != PaymentDenied {
		return fmt.Errorf("%w: payment can only be marked %s or %s", apperrors.ErrValidation, PaymentVerified, PaymentDenied)
	}
	if p.PaymentStatus != PaymentPending {
		return fmt.Errorf("%w: payment %s is already %s", apperrors.ErrConflict, p.PaymentID, p.PaymentStatus)
	}
	if status == PaymentDenied && denialRemarks == "" {
		return fmt.Errorf("%w: denial remarks are required when denying a payment", apperrors.ErrValidation)
	}

	p.PaymentStatus = status
	p.VerifierID = &verifierID
	p.VerifiedAt = &now
	if status == PaymentDenied {
		p.DenialRemarks = denialRemarks
	}
	p.Touch(verifierID, now)
	return nil
}

// MarkEdited flags the payment as changed after creation.
func (p *Payment) MarkEdited(editorID string, now time.Time) {
	p.IsEdited = true
	p.EditedAt = &now
	p.Touch(editorID, now)
}
