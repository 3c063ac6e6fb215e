package pgsql

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/SscSPs/sales_crm_app/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_crm_app/internal/core/ports/repositories"
	"github.com/SscSPs/sales_crm_app/internal/models"
	"github.com/SscSPs/sales_crm_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxOfferRepository struct {
	BaseRepository
}

func newPgxOfferRepository(pool *pgxpool.Pool) portsrepo.OfferRepositoryFacade {
	return &PgxOfferRepository{BaseRepository: newBaseRepository(pool)}
}

var _ portsrepo.OfferRepositoryFacade = (*PgxOfferRepository)(nil)

// offerQuery selects offers with the name of the team they are assigned to.
func offerQuery(builder sq.StatementBuilderType) sq.SelectBuilder {
	return builder.Select(
		"o.offer_id", "o.organization_id", "o.offer_amount", "o.bonus", "o.target", "o.remarks",
		"o.offer_date", "o.team_id",
		"o.created_at", "o.created_by", "o.last_updated_at", "o.last_updated_by",
		"t.team_name",
	).
		From("offers o").
		LeftJoin("teams t ON t.team_id = o.team_id")
}

func (r *PgxOfferRepository) FindOfferByID(ctx context.Context, organizationID, offerID string) (*domain.Offer, error) {
	stmt := offerQuery(r.Builder).Where(sq.Eq{"o.organization_id": organizationID, "o.offer_id": offerID})

	m, err := selectOne[models.Offer](ctx, r.Pool, stmt)
	if err != nil {
		return nil, fmt.Errorf("offer %s: %w", offerID, err)
	}
	offer := mapping.ToDomainOffer(*m)
	return &offer, nil
}

func (r *PgxOfferRepository) FindOffers(ctx context.Context, organizationID string) ([]domain.Offer, error) {
	stmt := offerQuery(r.Builder).
		Where(sq.Eq{"o.organization_id": organizationID}).
		OrderBy("o.offer_date DESC", "o.created_at DESC")

	rows, err := selectAll[models.Offer](ctx, r.Pool, stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}
	offers := make([]domain.Offer, len(rows))
	for i, row := range rows {
		offers[i] = mapping.ToDomainOffer(row)
	}
	return offers, nil
}

func (r *PgxOfferRepository) SaveOffer(ctx context.Context, offer domain.Offer) error {
	m := mapping.ToModelOffer(offer)
	stmt := r.Builder.Insert("offers").
		Columns("offer_id", "organization_id", "offer_amount", "bonus", "target", "remarks", "offer_date", "team_id",
			"created_at", "created_by", "last_updated_at", "last_updated_by").
		Values(m.OfferID, m.OrganizationID, m.OfferAmount, m.Bonus, m.Target, m.Remarks, m.OfferDate, m.TeamID,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)

	_, err := exec(ctx, r.Pool, stmt)
	return translateWriteError(err, "offer "+m.OfferID)
}

// UpdateOffer rewrites the offer's terms. The date and team assignment are left alone.
func (r *PgxOfferRepository) UpdateOffer(ctx context.Context, offer domain.Offer) error {
	m := mapping.ToModelOffer(offer)
	stmt := r.Builder.Update("offers").
		Set("offer_amount", m.OfferAmount).
		Set("bonus", m.Bonus).
		Set("target", m.Target).
		Set("remarks", m.Remarks).
		Set("last_updated_at", m.LastUpdatedAt).
		Set("last_updated_by", m.LastUpdatedBy).
		Where(sq.Eq{"organization_id": m.OrganizationID, "offer_id": m.OfferID})

	tag, err := exec(ctx, r.Pool, stmt)
	if err != nil {
		return translateWriteError(err, "offer "+m.OfferID)
	}
	return requireAffected(tag, "offer", m.OfferID)
}

func (r *PgxOfferRepository) DeleteOffer(ctx context.Context, organizationID, offerID string) error {
	stmt := r.Builder.Delete("offers").
		Where(sq.Eq{"organization_id": organizationID, "offer_id": offerID})

	tag, err := exec(ctx, r.Pool, stmt)
	if err != nil {
		return translateDeleteError(err, "offer "+offerID)
	}
	return requireAffected(tag, "offer", offerID)
}

func (r *PgxOfferRepository) AssignOfferTeam(ctx context.Context, organizationID, offerID, teamID string, updatedAt time.Time, updatedBy string) error {
	stmt := r.Builder.Update("offers").
		Set("team_id", teamID).
		Set("last_updated_at", updatedAt).
		Set("last_updated_by", updatedBy).
		Where(sq.Eq{"organization_id": organizationID, "offer_id": offerID})

	tag, err := exec(ctx, r.Pool, stmt)
	if err != nil {
		return translateWriteError(err, "offer "+offerID)
	}
	return requireAffected(tag, "offer", offerID)
}
