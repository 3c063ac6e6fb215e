package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/sales_crm_app/internal/apperrors"
	"github.com/SscSPs/sales_crm_app/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_crm_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sales_crm_app/internal/core/ports/services"
)

// idAllocator implements the IDAllocatorSvc interface.
// It does not log; callers decide how a failed allocation is reported.
type idAllocator struct {
	sequenceRepo portsrepo.SequenceRepository
}

// NewIDAllocator creates an allocator reading sequence tails from sequenceRepo.
func NewIDAllocator(sequenceRepo portsrepo.SequenceRepository) portssvc.IDAllocatorSvc {
	return &idAllocator{sequenceRepo: sequenceRepo}
}

var _ portssvc.IDAllocatorSvc = (*idAllocator)(nil)

// Allocate stores the entity under candidate. When candidate is taken it derives the
// successor of the newest stored identifier and tries once more. A second collision
// is reported as apperrors.ErrConflict so the caller can refresh and resubmit.
func (a *idAllocator) Allocate(ctx context.Context, organizationID string, kind domain.EntityKind, candidate string, insert portssvc.InsertFunc) (string, error) {
	if organizationID == "" {
		return "", fmt.Errorf("%w: organization is required to allocate an identifier", apperrors.ErrPrecondition)
	}
	if !kind.Valid() {
		return "", fmt.Errorf("%w: unknown entity kind %q", apperrors.ErrValidation, kind)
	}
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return "", fmt.Errorf("%w: a proposed %s identifier is required", apperrors.ErrValidation, strings.ToLower(string(kind)))
	}

	err := insert(ctx, candidate)
	if err == nil {
		return candidate, nil
	}
	if !errors.Is(err, apperrors.ErrDuplicate) {
		return "", err
	}

	latest, err := a.sequenceRepo.FindLatestIdentifier(ctx, kind, organizationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", fmt.Errorf("%w: %s identifier %q is taken but no stored %s identifier was found", apperrors.ErrNotFound, strings.ToLower(string(kind)), candidate, strings.ToLower(string(kind)))
		}
		return "", fmt.Errorf("failed to read latest %s identifier: %w", strings.ToLower(string(kind)), err)
	}

	next, err := domain.NextIdentifier(latest)
	if err != nil {
		return "", err
	}

	err = insert(ctx, next)
	if err == nil {
		return next, nil
	}
	if errors.Is(err, apperrors.ErrDuplicate) {
		return "", fmt.Errorf("%w: %s identifier %q was taken concurrently, fetch the latest code and resubmit", apperrors.ErrConflict, strings.ToLower(string(kind)), next)
	}
	return "", err
}

// LatestIdentifier returns the newest identifier of kind and the one that would follow it.
func (a *idAllocator) LatestIdentifier(ctx context.Context, organizationID string, kind domain.EntityKind) (string, string, error) {
	if organizationID == "" {
		return "", "", fmt.Errorf("%w: organization is required", apperrors.ErrPrecondition)
	}
	if !kind.Valid() {
		return "", "", fmt.Errorf("%w: unknown entity kind %q", apperrors.ErrValidation, kind)
	}

	latest, err := a.sequenceRepo.FindLatestIdentifier(ctx, kind, organizationID)
	if err != nil {
		return "", "", err
	}
	next, err := domain.NextIdentifier(latest)
	if err != nil {
		return "", "", err
	}
	return latest, next, nil
}
