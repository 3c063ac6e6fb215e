package mapping

import (
	"github.com/SscSPs/sales_crm_app/internal/core/domain"
	"github.com/SscSPs/sales_crm_app/internal/models"
)

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:      d.PaymentID,
		OrganizationID: d.OrganizationID,
		DealID:         d.DealID,
		ReceivedAmount: d.ReceivedAmount,
		PaymentDate:    d.PaymentDate,
		PaymentStatus:  string(d.PaymentStatus),
		Remarks:        d.Remarks,
		ReceiptURL:     d.ReceiptURL,
		VerifierID:     d.VerifierID,
		DenialRemarks:  d.DenialRemarks,
		VerifiedAt:     d.VerifiedAt,
		IsEdited:       d.IsEdited,
		EditedAt:       d.EditedAt,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:      m.PaymentID,
		OrganizationID: m.OrganizationID,
		DealID:         m.DealID,
		ReceivedAmount: m.ReceivedAmount,
		PaymentDate:    m.PaymentDate,
		PaymentStatus:  domain.PaymentStatus(m.PaymentStatus),
		Remarks:        m.Remarks,
		ReceiptURL:     m.ReceiptURL,
		VerifierID:     m.VerifierID,
		DenialRemarks:  m.DenialRemarks,
		VerifiedAt:     m.VerifiedAt,
		IsEdited:       m.IsEdited,
		EditedAt:       m.EditedAt,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPaymentSlice converts a slice of model Payments to a slice of domain Payments
func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	ds := make([]domain.Payment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}

// GroupPaymentsByDeal indexes payments by their deal, keeping row order within each deal.
func GroupPaymentsByDeal(ms []models.Payment) map[string][]domain.Payment {
	byDeal := make(map[string][]domain.Payment)
	for _, m := range ms {
		byDeal[m.DealID] = append(byDeal[m.DealID], ToDomainPayment(m))
	}
	return byDeal
}
