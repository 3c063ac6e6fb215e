package mapping

import (
	"github.com/SscSPs/sales_crm_app/internal/core/domain"
	"github.com/SscSPs/sales_crm_app/internal/models"
)

// ToModelCommission converts a domain Commission to a model Commission
func ToModelCommission(d domain.Commission) models.Commission {
	return models.Commission(d)
}

// ToDomainCommission converts a model Commission to a domain Commission
func ToDomainCommission(m models.Commission) domain.Commission {
	return domain.Commission(m)
}
