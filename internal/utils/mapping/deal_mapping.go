package mapping

import (
	"github.com/SscSPs/sales_crm_app/internal/core/domain"
	"github.com/SscSPs/sales_crm_app/internal/models"
)

// ToModelDeal converts a domain Deal to a model Deal
func ToModelDeal(d domain.Deal) models.Deal {
	return models.Deal{
		DealID:         d.DealID,
		OrganizationID: d.OrganizationID,
		DealCode:       d.DealCode,
		ClientID:       d.ClientID,
		DealName:       d.DealName,
		WorkTypeID:     d.WorkTypeID,
		SourceTypeID:   d.SourceTypeID,
		UserID:         d.UserID,
		DealValue:      d.DealValue,
		DealDate:       d.DealDate,
		DueDate:        d.DueDate,
		Remarks:        d.Remarks,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDeal converts a model Deal to a domain Deal with an empty payment list.
func ToDomainDeal(m models.Deal) domain.Deal {
	return domain.Deal{
		DealID:         m.DealID,
		OrganizationID: m.OrganizationID,
		DealCode:       m.DealCode,
		ClientID:       m.ClientID,
		DealName:       m.DealName,
		WorkTypeID:     m.WorkTypeID,
		SourceTypeID:   m.SourceTypeID,
		UserID:         m.UserID,
		DealValue:      m.DealValue,
		DealDate:       m.DealDate,
		DueDate:        m.DueDate,
		Remarks:        m.Remarks,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
		Payments:       []domain.Payment{},
	}
}

// ToDomainDealSlice converts a slice of model Deals to a slice of domain Deals
func ToDomainDealSlice(ms []models.Deal) []domain.Deal {
	ds := make([]domain.Deal, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDeal(m)
	}
	return ds
}

// ToDomainSalesDeal converts a joined reporting row, filling the denormalized names.
func ToDomainSalesDeal(m models.SalesDeal) domain.Deal {
	d := ToDomainDeal(m.Deal)
	d.ClientName = m.ClientName
	d.WorkTypeName = m.WorkTypeName
	d.SourceTypeName = m.SourceTypeName
	d.UserName = m.UserName
	d.TeamID = m.TeamID
	if m.TeamName != nil {
		d.TeamName = *m.TeamName
	}
	return d
}
