package pgsql

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/SscSPs/sales_crm_app/internal/apperrors"
	"github.com/SscSPs/sales_crm_app/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_crm_app/internal/core/ports/repositories"
	"github.com/SscSPs/sales_crm_app/internal/models"
	"github.com/SscSPs/sales_crm_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var commissionColumns = []string{
	"commission_id", "organization_id", "name", "total_sales", "currency", "commission_percent", "rate",
	"bonus", "total_commission", "total_received_amount", "converted_amount", "base_currency",
	"commission_date", "created_at", "created_by",
}

type PgxCommissionRepository struct {
	BaseRepository
}

func newPgxCommissionRepository(pool *pgxpool.Pool) portsrepo.CommissionRepository {
	return &PgxCommissionRepository{BaseRepository: newBaseRepository(pool)}
}

var _ portsrepo.CommissionRepository = (*PgxCommissionRepository)(nil)

func (r *PgxCommissionRepository) SaveCommissions(ctx context.Context, commissions []domain.Commission) error {
	if len(commissions) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	batch := &pgx.Batch{}
	for _, c := range commissions {
		m := mapping.ToModelCommission(c)
		query, args, err := r.Builder.Insert("commissions").
			Columns(commissionColumns...).
			Values(m.CommissionID, m.OrganizationID, m.Name, m.TotalSales, m.Currency, m.CommissionPercent, m.Rate,
				m.Bonus, m.TotalCommission, m.TotalReceivedAmount, m.ConvertedAmount, m.BaseCurrency,
				m.CommissionDate, m.CreatedAt, m.CreatedBy).
			ToSql()
		if err != nil {
			return apperrors.NewAppError(500, "failed to build commission insert", err)
		}
		batch.Queue(query, args...)
	}

	// Closing the batch results surfaces the first failed insert.
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return translateWriteError(err, fmt.Sprintf("%d commission rows", len(commissions)))
	}

	return r.Commit(ctx, tx)
}

func (r *PgxCommissionRepository) FindCommissionsBetween(ctx context.Context, organizationID string, from, to time.Time) ([]domain.Commission, error) {
	stmt := r.Builder.Select(commissionColumns...).
		From("commissions").
		Where(sq.Eq{"organization_id": organizationID}).
		Where(sq.GtOrEq{"commission_date": from}).
		Where(sq.LtOrEq{"commission_date": to}).
		OrderBy("commission_date DESC", "created_at DESC")

	rows, err := selectAll[models.Commission](ctx, r.Pool, stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to list commissions: %w", err)
	}
	commissions := make([]domain.Commission, len(rows))
	for i, row := range rows {
		commissions[i] = mapping.ToDomainCommission(row)
	}
	return commissions, nil
}
