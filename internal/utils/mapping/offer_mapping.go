package mapping

import (
	"github.com/SscSPs/sales_crm_app/internal/core/domain"
	"github.com/SscSPs/sales_crm_app/internal/models"
)

func ToModelOffer(d domain.Offer) models.Offer {
	return models.Offer{
		OfferID:        d.OfferID,
		OrganizationID: d.OrganizationID,
		OfferAmount:    d.OfferAmount,
		Bonus:          d.Bonus,
		Target:         d.Target,
		Remarks:        d.Remarks,
		OfferDate:      d.OfferDate,
		TeamID:         d.TeamID,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainOffer(m models.Offer) domain.Offer {
	offer := domain.Offer{
		OfferID:        m.OfferID,
		OrganizationID: m.OrganizationID,
		OfferAmount:    m.OfferAmount,
		Bonus:          m.Bonus,
		Target:         m.Target,
		Remarks:        m.Remarks,
		OfferDate:      m.OfferDate,
		TeamID:         m.TeamID,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
	if m.TeamName != nil {
		offer.TeamName = *m.TeamName
	}
	return offer
}
