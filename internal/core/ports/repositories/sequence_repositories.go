package repositories

import (
	"context"

	"github.com/SscSPs/sales_crm_app/internal/core/domain"
)

// SequenceRepository reads the tail of a per-organization identifier sequence.
type SequenceRepository interface {
	// FindLatestIdentifier returns the identifier of the most recently created entity of kind
	// in the organization, or apperrors.ErrNotFound when there is none.
	FindLatestIdentifier(ctx context.Context, kind domain.EntityKind, organizationID string) (string, error)
}
