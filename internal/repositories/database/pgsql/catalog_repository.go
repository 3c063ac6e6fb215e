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

type PgxCatalogRepository struct {
	BaseRepository
}

func newPgxCatalogRepository(pool *pgxpool.Pool) portsrepo.CatalogRepository {
	return &PgxCatalogRepository{BaseRepository: newBaseRepository(pool)}
}

var _ portsrepo.CatalogRepository = (*PgxCatalogRepository)(nil)

func (r *PgxCatalogRepository) SaveWorkType(ctx context.Context, workType domain.WorkType) error {
	m := mapping.ToModelWorkType(workType)
	stmt := r.Builder.Insert("work_types").
		Columns("work_type_id", "organization_id", "name", "description", "created_at", "created_by").
		Values(m.WorkTypeID, m.OrganizationID, m.Name, m.Description, m.CreatedAt, m.CreatedBy)

	_, err := exec(ctx, r.Pool, stmt)
	return translateWriteError(err, "work type "+m.Name)
}

func (r *PgxCatalogRepository) FindWorkTypeByID(ctx context.Context, organizationID, workTypeID string) (*domain.WorkType, error) {
	stmt := r.Builder.Select("work_type_id", "organization_id", "name", "description", "created_at", "created_by").
		From("work_types").
		Where(sq.Eq{"organization_id": organizationID, "work_type_id": workTypeID})

	m, err := selectOne[models.WorkType](ctx, r.Pool, stmt)
	if err != nil {
		return nil, fmt.Errorf("work type %s: %w", workTypeID, err)
	}
	workType := mapping.ToDomainWorkType(*m)
	return &workType, nil
}

func (r *PgxCatalogRepository) FindWorkTypes(ctx context.Context, organizationID string) ([]domain.WorkType, error) {
	stmt := r.Builder.Select("work_type_id", "organization_id", "name", "description", "created_at", "created_by").
		From("work_types").
		Where(sq.Eq{"organization_id": organizationID}).
		OrderBy("name")

	rows, err := selectAll[models.WorkType](ctx, r.Pool, stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to list work types: %w", err)
	}
	workTypes := make([]domain.WorkType, len(rows))
	for i, row := range rows {
		workTypes[i] = mapping.ToDomainWorkType(row)
	}
	return workTypes, nil
}

func (r *PgxCatalogRepository) SaveSourceType(ctx context.Context, sourceType domain.SourceType) error {
	m := mapping.ToModelSourceType(sourceType)
	stmt := r.Builder.Insert("source_types").
		Columns("source_type_id", "organization_id", "name", "description", "created_at", "created_by").
		Values(m.SourceTypeID, m.OrganizationID, m.Name, m.Description, m.CreatedAt, m.CreatedBy)

	_, err := exec(ctx, r.Pool, stmt)
	return translateWriteError(err, "source type "+m.Name)
}

func (r *PgxCatalogRepository) FindSourceTypeByID(ctx context.Context, organizationID, sourceTypeID string) (*domain.SourceType, error) {
	stmt := r.Builder.Select("source_type_id", "organization_id", "name", "description", "created_at", "created_by").
		From("source_types").
		Where(sq.Eq{"organization_id": organizationID, "source_type_id": sourceTypeID})

	m, err := selectOne[models.SourceType](ctx, r.Pool, stmt)
	if err != nil {
		return nil, fmt.Errorf("source type %s: %w", sourceTypeID, err)
	}
	sourceType := mapping.ToDomainSourceType(*m)
	return &sourceType, nil
}

func (r *PgxCatalogRepository) FindSourceTypes(ctx context.Context, organizationID string) ([]domain.SourceType, error) {
	stmt := r.Builder.Select("source_type_id", "organization_id", "name", "description", "created_at", "created_by").
		From("source_types").
		Where(sq.Eq{"organization_id": organizationID}).
		OrderBy("name")

	rows, err := selectAll[models.SourceType](ctx, r.Pool, stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to list source types: %w", err)
	}
	sourceTypes := make([]domain.SourceType, len(rows))
	for i, row := range rows {
		sourceTypes[i] = mapping.ToDomainSourceType(row)
	}
	return sourceTypes, nil
}

func (r *PgxCatalogRepository) UpdateSourceType(ctx context.Context, sourceType domain.SourceType) error {
	m := mapping.ToModelSourceType(sourceType)
	stmt := r.Builder.Update("source_types").
		Set("name", m.Name).
		Set("description", m.Description).
		Where(sq.Eq{"organization_id": m.OrganizationID, "source_type_id": m.SourceTypeID})

	tag, err := exec(ctx, r.Pool, stmt)
	if err != nil {
		return translateWriteError(err, "source type "+m.Name)
	}
	return requireAffected(tag, "source type", m.SourceTypeID)
}

func (r *PgxCatalogRepository) DeleteSourceType(ctx context.Context, organizationID, sourceTypeID string) error {
	stmt := r.Builder.Delete("source_types").
		Where(sq.Eq{"organization_id": organizationID, "source_type_id": sourceTypeID})

	tag, err := exec(ctx, r.Pool, stmt)
	if err != nil {
		return translateDeleteError(err, "source type "+sourceTypeID)
	}
	return requireAffected(tag, "source type", sourceTypeID)
}
