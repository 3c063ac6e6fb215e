package mapping

import (
	"github.com/SscSPs/sales_crm_app/internal/core/domain"
	"github.com/SscSPs/sales_crm_app/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:         d.UserID,
		OrganizationID: d.OrganizationID,
		TeamID:         d.TeamID,
		FullName:       d.FullName,
		Email:          d.Email,
		PasswordHash:   d.PasswordHash,
		Role:           string(d.Role),
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:         m.UserID,
		OrganizationID: m.OrganizationID,
		TeamID:         m.TeamID,
		FullName:       m.FullName,
		Email:          m.Email,
		PasswordHash:   m.PasswordHash,
		Role:           domain.UserRole(m.Role),
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainUserSlice converts a slice of model Users to a slice of domain Users
func ToDomainUserSlice(ms []models.User) []domain.User {
	ds := make([]domain.User, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainUser(m)
	}
	return ds
}
