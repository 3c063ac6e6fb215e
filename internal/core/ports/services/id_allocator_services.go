package services

import (
	"context"

	"github.com/SscSPs/sales_crm_app/internal/core/domain"
)

// InsertFunc persists an entity under identifier. It must report a collision on the
// identifier's unique constraint as apperrors.ErrDuplicate and leave nothing written.
type InsertFunc func(ctx context.Context, identifier string) error

// IDAllocatorSvc assigns human-readable sequential identifiers on insert.
type IDAllocatorSvc interface {
	// Allocate inserts with candidate and, on a collision, retries exactly once with the
	// successor of the newest identifier of kind in the organization. It returns the
	// identifier that was stored.
	Allocate(ctx context.Context, organizationID string, kind domain.EntityKind, candidate string, insert InsertFunc) (string, error)

	// LatestIdentifier returns the newest identifier of kind and its successor.
	LatestIdentifier(ctx context.Context, organizationID string, kind domain.EntityKind) (latest, next string, err error)
}
