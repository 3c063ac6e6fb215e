package mapping

import (
	"github.com/SscSPs/sales_crm_app/internal/core/domain"
	"github.com/SscSPs/sales_crm_app/internal/models"
)

func ToModelWorkType(d domain.WorkType) models.WorkType {
	return models.WorkType(d)
}

func ToDomainWorkType(m models.WorkType) domain.WorkType {
	return domain.WorkType(m)
}

func ToModelSourceType(d domain.SourceType) models.SourceType {
	return models.SourceType(d)
}

func ToDomainSourceType(m models.SourceType) domain.SourceType {
	return domain.SourceType(m)
}
