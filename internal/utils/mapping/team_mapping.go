package mapping

import (
	"github.com/SscSPs/sales_crm_app/internal/core/domain"
	"github.com/SscSPs/sales_crm_app/internal/models"
)

func ToModelTeam(d domain.Team) models.Team {
	return models.Team{
		TeamID:         d.TeamID,
		OrganizationID: d.OrganizationID,
		TeamCode:       d.TeamCode,
		TeamName:       d.TeamName,
		AuditFields:    ToModelAuditFields(d.AuditFields),
		MemberCount:    d.MemberCount,
	}
}

func ToDomainTeam(m models.Team) domain.Team {
	return domain.Team{
		TeamID:         m.TeamID,
		OrganizationID: m.OrganizationID,
		TeamCode:       m.TeamCode,
		TeamName:       m.TeamName,
		MemberCount:    m.MemberCount,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainTeamSlice(ms []models.Team) []domain.Team {
	ds := make([]domain.Team, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTeam(m)
	}
	return ds
}
