package pgsql

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/SscSPs/sales_crm_app/internal/apperrors"
	"github.com/SscSPs/sales_crm_app/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_crm_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type sequenceSource struct {
	table  string
	column string
}

var sequenceSources = map[domain.EntityKind]sequenceSource{
	domain.EntityKindClient: {table: "clients", column: "client_code"},
	domain.EntityKindDeal:   {table: "deals", column: "deal_code"},
	domain.EntityKindTeam:   {table: "teams", column: "team_code"},
}

type PgxSequenceRepository struct {
	BaseRepository
}

func newPgxSequenceRepository(pool *pgxpool.Pool) portsrepo.SequenceRepository {
	return &PgxSequenceRepository{BaseRepository: newBaseRepository(pool)}
}

var _ portsrepo.SequenceRepository = (*PgxSequenceRepository)(nil)

// latestIdentifierQuery selects the identifier of the most recently created entity of kind.
func latestIdentifierQuery(builder sq.StatementBuilderType, kind domain.EntityKind, organizationID string) (sq.SelectBuilder, error) {
	source, ok := sequenceSources[kind]
	if !ok {
		return sq.SelectBuilder{}, fmt.Errorf("%w: unknown entity kind %q", apperrors.ErrValidation, kind)
	}
	return builder.
		Select(source.column + " AS identifier").
		From(source.table).
		Where(sq.Eq{"organization_id": organizationID}).
		OrderBy("created_at DESC", source.column+" DESC").
		Limit(1), nil
}

func (r *PgxSequenceRepository) FindLatestIdentifier(ctx context.Context, kind domain.EntityKind, organizationID string) (string, error) {
	stmt, err := latestIdentifierQuery(r.Builder, kind, organizationID)
	if err != nil {
		return "", err
	}

	row, err := selectOne[struct {
		Identifier string `db:"identifier"`
	}](ctx, r.Pool, stmt)
	if err != nil {
		return "", err
	}
	return row.Identifier, nil
}
