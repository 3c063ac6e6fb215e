package dto

import (
	"time"

	"github.com/SscSPs/sales_crm_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AddPaymentRequest records a new PENDING payment against a deal.
type AddPaymentRequest struct {
	DealID         string          `json:"dealID" binding:"required"`
	ReceivedAmount decimal.Decimal `json:"receivedAmount"`
	PaymentDate    string          `json:"paymentDate" binding:"required,datetime=2006-01-02"`
	Remarks        string          `json:"remarks"`
	ReceiptURL     string          `json:"receiptURL" binding:"omitempty,url"`
}

// EditPaymentRequest uses pointers to differentiate between omitted fields and zero-value fields.
type EditPaymentRequest struct {
	ReceivedAmount *decimal.Decimal `json:"receivedAmount"`
	PaymentDate    *string          `json:"paymentDate" binding:"omitempty,datetime=2006-01-02"`
	Remarks        *string          `json:"remarks"`
	ReceiptURL     *string          `json:"receiptURL" binding:"omitempty,url"`
}

// VerifyPaymentRequest settles a PENDING payment.
type VerifyPaymentRequest struct {
	Status        domain.PaymentStatus `json:"status" binding:"required,paymentstatus,ne=PENDING"`
	DenialRemarks string               `json:"denialRemarks" binding:"required_if=Status DENIED"`
}

// ListPaymentsParams defines query parameters for listing payments by status.
type ListPaymentsParams struct {
	Status domain.PaymentStatus `form:"status,default=PENDING" binding:"paymentstatus"`
	Limit  int                  `form:"limit,default=20" binding:"min=1,max=100"`
	Offset int                  `form:"offset,default=0" binding:"min=0"`
}

type PaymentResponse struct {
	PaymentID      string               `json:"paymentID"`
	DealID         string               `json:"dealID"`
	ReceivedAmount decimal.Decimal      `json:"receivedAmount"`
	PaymentDate    string               `json:"paymentDate"`
	PaymentStatus  domain.PaymentStatus `json:"paymentStatus"`
	Remarks        string               `json:"remarks"`
	ReceiptURL     string               `json:"receiptURL,omitempty"`
	VerifierID     *string              `json:"verifierID,omitempty"`
	DenialRemarks  string               `json:"denialRemarks,omitempty"`
	VerifiedAt     *time.Time           `json:"verifiedAt,omitempty"`
	IsEdited       bool                 `json:"isEdited"`
	EditedAt       *time.Time           `json:"editedAt,omitempty"`
	CreatedAt      time.Time            `json:"createdAt"`
}

type ListPaymentsResponse struct {
	Payments []PaymentResponse `json:"payments"`
}

type PaymentStatusSummaryResponse struct {
	Status      domain.PaymentStatus `json:"status"`
	Count       int                  `json:"count"`
	TotalAmount decimal.Decimal      `json:"totalAmount"`
}

type VerificationDashboardResponse struct {
	Period   PeriodResponse                 `json:"period"`
	Statuses []PaymentStatusSummaryResponse `json:"statuses"`
}

func ToPaymentResponse(p domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:      p.PaymentID,
		DealID:         p.DealID,
		ReceivedAmount: p.ReceivedAmount,
		PaymentDate:    p.PaymentDate.Format(domain.DateLayout),
		PaymentStatus:  p.PaymentStatus,
		Remarks:        p.Remarks,
		ReceiptURL:     p.ReceiptURL,
		VerifierID:     p.VerifierID,
		DenialRemarks:  p.DenialRemarks,
		VerifiedAt:     p.VerifiedAt,
		IsEdited:       p.IsEdited,
		EditedAt:       p.EditedAt,
		CreatedAt:      p.CreatedAt,
	}
}

func ToListPaymentsResponse(payments []domain.Payment) ListPaymentsResponse {
	resp := ListPaymentsResponse{Payments: make([]PaymentResponse, len(payments))}
	for i, p := range payments {
		resp.Payments[i] = ToPaymentResponse(p)
	}
	return resp
}

func ToVerificationDashboardResponse(d domain.VerificationDashboard) VerificationDashboardResponse {
	resp := VerificationDashboardResponse{
		Period:   ToPeriodResponse(d.Period),
		Statuses: make([]PaymentStatusSummaryResponse, len(d.Statuses)),
	}
	for i, s := range d.Statuses {
		resp.Statuses[i] = PaymentStatusSummaryResponse{Status: s.Status, Count: s.Count, TotalAmount: s.TotalAmount}
	}
	return resp
}
