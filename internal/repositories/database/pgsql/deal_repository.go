package pgsql

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/SscSPs/sales_crm_app/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_crm_app/internal/core/ports/repositories"
	"github.com/SscSPs/sales_crm_app/internal/models"
	"github.com/SscSPs/sales_crm_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

var dealColumns = []string{
	"deal_id", "organization_id", "deal_code", "client_id", "deal_name", "work_type_id", "source_type_id",
	"user_id", "deal_value", "deal_date", "due_date", "remarks",
	"created_at", "created_by", "last_updated_at", "last_updated_by",
}

type PgxDealRepository struct {
	BaseRepository
}

func newPgxDealRepository(pool *pgxpool.Pool) portsrepo.DealRepositoryFacade {
	return &PgxDealRepository{BaseRepository: newBaseRepository(pool)}
}

var _ portsrepo.DealRepositoryFacade = (*PgxDealRepository)(nil)

func (r *PgxDealRepository) FindDealByID(ctx context.Context, organizationID, dealID string) (*domain.Deal, error) {
	stmt := r.Builder.Select(dealColumns...).
		From("deals").
		Where(sq.Eq{"organization_id": organizationID, "deal_id": dealID})

	m, err := selectOne[models.Deal](ctx, r.Pool, stmt)
	if err != nil {
		return nil, fmt.Errorf("deal %s: %w", dealID, err)
	}

	deals := []domain.Deal{mapping.ToDomainDeal(*m)}
	if err := attachPayments(ctx, r.Pool, r.Builder, deals); err != nil {
		return nil, err
	}
	return &deals[0], nil
}

// dealListQuery pages newest deal date first, using (deal_date, created_at) as the keyset.
func dealListQuery(builder sq.StatementBuilderType, organizationID string, filter portsrepo.DealListFilter) sq.SelectBuilder {
	stmt := builder.Select(dealColumns...).
		From("deals").
		Where(sq.Eq{"organization_id": organizationID})

	if filter.ClientID != "" {
		stmt = stmt.Where(sq.Eq{"client_id": filter.ClientID})
	}
	if filter.UserID != "" {
		stmt = stmt.Where(sq.Eq{"user_id": filter.UserID})
	}
	if filter.AfterDealDate != nil && filter.AfterCreatedAt != nil {
		stmt = stmt.Where(sq.Expr("(deal_date, created_at) < (?, ?)", *filter.AfterDealDate, *filter.AfterCreatedAt))
	}
	if filter.Limit > 0 {
		stmt = stmt.Limit(uint64(filter.Limit))
	}
	return stmt.OrderBy("deal_date DESC", "created_at DESC")
}

func (r *PgxDealRepository) FindDeals(ctx context.Context, organizationID string, filter portsrepo.DealListFilter) ([]domain.Deal, error) {
	rows, err := selectAll[models.Deal](ctx, r.Pool, dealListQuery(r.Builder, organizationID, filter))
	if err != nil {
		return nil, fmt.Errorf("failed to list deals: %w", err)
	}

	deals := mapping.ToDomainDealSlice(rows)
	if err := attachPayments(ctx, r.Pool, r.Builder, deals); err != nil {
		return nil, err
	}
	return deals, nil
}

// SaveDeal writes the deal and its optional first payment atomically.
func (r *PgxDealRepository) SaveDeal(ctx context.Context, deal domain.Deal, initialPayment *domain.Payment) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelDeal(deal)
	stmt := r.Builder.Insert("deals").
		Columns(dealColumns...).
		Values(m.DealID, m.OrganizationID, m.DealCode, m.ClientID, m.DealName, m.WorkTypeID, m.SourceTypeID,
			m.UserID, m.DealValue, m.DealDate, m.DueDate, m.Remarks,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	if _, err := exec(ctx, tx, stmt); err != nil {
		return translateWriteError(err, "deal "+m.DealCode)
	}

	if initialPayment != nil {
		if _, err := exec(ctx, tx, insertPayment(r.Builder, mapping.ToModelPayment(*initialPayment))); err != nil {
			return translateWriteError(err, "initial payment of deal "+m.DealCode)
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxDealRepository) UpdateDeal(ctx context.Context, deal domain.Deal) error {
	m := mapping.ToModelDeal(deal)
	stmt := r.Builder.Update("deals").
		SetMap(map[string]any{
			"client_id":       m.ClientID,
			"deal_name":       m.DealName,
			"work_type_id":    m.WorkTypeID,
			"source_type_id":  m.SourceTypeID,
			"deal_value":      m.DealValue,
			"deal_date":       m.DealDate,
			"due_date":        m.DueDate,
			"remarks":         m.Remarks,
			"last_updated_at": m.LastUpdatedAt,
			"last_updated_by": m.LastUpdatedBy,
		}).
		Where(sq.Eq{"organization_id": m.OrganizationID, "deal_id": m.DealID})

	tag, err := exec(ctx, r.Pool, stmt)
	if err != nil {
		return translateWriteError(err, "deal "+m.DealID)
	}
	return requireAffected(tag, "deal", m.DealID)
}
