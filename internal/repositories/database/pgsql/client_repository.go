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

var clientColumns = []string{
	"client_id", "organization_id", "client_code", "full_name", "email", "nationality", "contact", "user_id",
	"created_at", "created_by", "last_updated_at", "last_updated_by",
}

type PgxClientRepository struct {
	BaseRepository
}

func newPgxClientRepository(pool *pgxpool.Pool) portsrepo.ClientRepositoryFacade {
	return &PgxClientRepository{BaseRepository: newBaseRepository(pool)}
}

var _ portsrepo.ClientRepositoryFacade = (*PgxClientRepository)(nil)

// FindClientByID returns the client with its deals, newest first.
func (r *PgxClientRepository) FindClientByID(ctx context.Context, organizationID, clientID string) (*domain.Client, error) {
	stmt := r.Builder.Select(clientColumns...).
		From("clients").
		Where(sq.Eq{"organization_id": organizationID, "client_id": clientID})

	m, err := selectOne[models.Client](ctx, r.Pool, stmt)
	if err != nil {
		return nil, fmt.Errorf("client %s: %w", clientID, err)
	}
	client := mapping.ToDomainClient(*m)

	dealRows, err := selectAll[models.Deal](ctx, r.Pool, dealListQuery(r.Builder, organizationID, portsrepo.DealListFilter{ClientID: clientID}))
	if err != nil {
		return nil, fmt.Errorf("failed to load deals of client %s: %w", clientID, err)
	}
	client.Deals = mapping.ToDomainDealSlice(dealRows)
	if err := attachPayments(ctx, r.Pool, r.Builder, client.Deals); err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *PgxClientRepository) FindClients(ctx context.Context, organizationID string, limit, offset int) ([]domain.Client, error) {
	stmt := r.Builder.Select(clientColumns...).
		From("clients").
		Where(sq.Eq{"organization_id": organizationID}).
		OrderBy("created_at DESC", "client_id").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	rows, err := selectAll[models.Client](ctx, r.Pool, stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return mapping.ToDomainClientSlice(rows), nil
}

func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	m := mapping.ToModelClient(client)
	stmt := r.Builder.Insert("clients").
		Columns(clientColumns...).
		Values(m.ClientID, m.OrganizationID, m.ClientCode, m.FullName, m.Email, m.Nationality, m.Contact, m.UserID,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)

	_, err := exec(ctx, r.Pool, stmt)
	return translateWriteError(err, "client "+m.ClientCode)
}

func (r *PgxClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	m := mapping.ToModelClient(client)
	stmt := r.Builder.Update("clients").
		SetMap(map[string]any{
			"full_name":       m.FullName,
			"email":           m.Email,
			"nationality":     m.Nationality,
			"contact":         m.Contact,
			"last_updated_at": m.LastUpdatedAt,
			"last_updated_by": m.LastUpdatedBy,
		}).
		Where(sq.Eq{"organization_id": m.OrganizationID, "client_id": m.ClientID})

	tag, err := exec(ctx, r.Pool, stmt)
	if err != nil {
		return translateWriteError(err, "client "+m.ClientID)
	}
	return requireAffected(tag, "client", m.ClientID)
}
