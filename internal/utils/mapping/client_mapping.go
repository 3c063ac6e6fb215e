package mapping

import (
	"github.com/SscSPs/sales_crm_app/internal/core/domain"
	"github.com/SscSPs/sales_crm_app/internal/models"
)

// ToModelClient converts a domain Client to a model Client. Deals are not part of the row.
func ToModelClient(d domain.Client) models.Client {
	return models.Client{
		ClientID:       d.ClientID,
		OrganizationID: d.OrganizationID,
		ClientCode:     d.ClientCode,
		FullName:       d.FullName,
		Email:          d.Email,
		Nationality:    d.Nationality,
		Contact:        d.Contact,
		UserID:         d.UserID,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainClient converts a model Client to a domain Client
func ToDomainClient(m models.Client) domain.Client {
	return domain.Client{
		ClientID:       m.ClientID,
		OrganizationID: m.OrganizationID,
		ClientCode:     m.ClientCode,
		FullName:       m.FullName,
		Email:          m.Email,
		Nationality:    m.Nationality,
		Contact:        m.Contact,
		UserID:         m.UserID,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainClientSlice converts a slice of model Clients to a slice of domain Clients
func ToDomainClientSlice(ms []models.Client) []domain.Client {
	ds := make([]domain.Client, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainClient(m)
	}
	return ds
}
