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

type PgxSalesRepository struct {
	BaseRepository
}

func newPgxSalesRepository(pool *pgxpool.Pool) portsrepo.SalesRepository {
	return &PgxSalesRepository{BaseRepository: newBaseRepository(pool)}
}

var _ portsrepo.SalesRepository = (*PgxSalesRepository)(nil)

// dealsInWindowQuery selects deals whose [deal_date, due_date] overlaps [from, to],
// joined with the names reports group by.
func dealsInWindowQuery(builder sq.StatementBuilderType, scope domain.SalesScope, from, to time.Time) sq.SelectBuilder {
	stmt := builder.Select(
		"d.deal_id", "d.organization_id", "d.deal_code", "d.client_id", "d.deal_name",
		"d.work_type_id", "d.source_type_id", "d.user_id", "d.deal_value", "d.deal_date", "d.due_date", "d.remarks",
		"d.created_at", "d.created_by", "d.last_updated_at", "d.last_updated_by",
		"c.full_name AS client_name",
		"w.name AS work_type_name",
		"s.name AS source_type_name",
		"u.full_name AS user_name",
		"u.team_id",
		"t.team_name",
	).
		From("deals d").
		Join("clients c ON c.client_id = d.client_id").
		Join("work_types w ON w.work_type_id = d.work_type_id").
		Join("source_types s ON s.source_type_id = d.source_type_id").
		Join("users u ON u.user_id = d.user_id").
		LeftJoin("teams t ON t.team_id = u.team_id").
		Where(sq.Eq{"d.organization_id": scope.OrganizationID}).
		Where(sq.LtOrEq{"d.deal_date": to}).
		Where(sq.GtOrEq{"d.due_date": from})

	if scope.UserID != "" {
		stmt = stmt.Where(sq.Eq{"d.user_id": scope.UserID})
	}
	if scope.TeamID != "" {
		stmt = stmt.Where(sq.Eq{"u.team_id": scope.TeamID})
	}
	return stmt.OrderBy("d.deal_date", "d.created_at")
}

func (r *PgxSalesRepository) FindDealsInWindow(ctx context.Context, scope domain.SalesScope, from, to time.Time) ([]domain.Deal, error) {
	rows, err := selectAll[models.SalesDeal](ctx, r.Pool, dealsInWindowQuery(r.Builder, scope, from, to))
	if err != nil {
		return nil, fmt.Errorf("failed to load deals for sales window: %w", err)
	}

	deals := make([]domain.Deal, len(rows))
	for i, row := range rows {
		deals[i] = mapping.ToDomainSalesDeal(row)
	}
	if err := attachPayments(ctx, r.Pool, r.Builder, deals); err != nil {
		return nil, err
	}
	return deals, nil
}
