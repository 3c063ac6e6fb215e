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

var userColumns = []string{
	"user_id", "organization_id", "team_id", "full_name", "email", "password_hash", "role",
	"created_at", "created_by", "last_updated_at", "last_updated_by",
}

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: newBaseRepository(pool)}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	stmt := r.Builder.Insert("users").
		Columns(userColumns...).
		Values(m.UserID, m.OrganizationID, m.TeamID, m.FullName, m.Email, m.PasswordHash, m.Role,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)

	_, err := exec(ctx, r.Pool, stmt)
	return translateWriteError(err, "user "+m.Email)
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, organizationID, userID string) (*domain.User, error) {
	stmt := r.Builder.Select(userColumns...).
		From("users").
		Where(sq.Eq{"organization_id": organizationID, "user_id": userID})

	m, err := selectOne[models.User](ctx, r.Pool, stmt)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", userID, err)
	}
	user := mapping.ToDomainUser(*m)
	return &user, nil
}

func (r *PgxUserRepository) FindUsers(ctx context.Context, organizationID string, limit, offset int) ([]domain.User, error) {
	stmt := r.Builder.Select(userColumns...).
		From("users").
		Where(sq.Eq{"organization_id": organizationID}).
		OrderBy("created_at DESC", "user_id").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	rows, err := selectAll[models.User](ctx, r.Pool, stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return mapping.ToDomainUserSlice(rows), nil
}

func (r *PgxUserRepository) FindAllUsers(ctx context.Context, organizationID string) ([]domain.User, error) {
	stmt := r.Builder.Select(userColumns...).
		From("users").
		Where(sq.Eq{"organization_id": organizationID}).
		OrderBy("full_name", "user_id")

	rows, err := selectAll[models.User](ctx, r.Pool, stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return mapping.ToDomainUserSlice(rows), nil
}

// FindUsersByTeam lists a team's members by name, the order team reports present employees in.
func (r *PgxUserRepository) FindUsersByTeam(ctx context.Context, organizationID, teamID string) ([]domain.User, error) {
	stmt := r.Builder.Select(userColumns...).
		From("users").
		Where(sq.Eq{"organization_id": organizationID, "team_id": teamID}).
		OrderBy("full_name", "user_id")

	rows, err := selectAll[models.User](ctx, r.Pool, stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to list users of team %s: %w", teamID, err)
	}
	return mapping.ToDomainUserSlice(rows), nil
}

func (r *PgxUserRepository) UpdateUserTeam(ctx context.Context, organizationID, userID string, teamID *string, updatedAt time.Time, updatedBy string) error {
	stmt := r.Builder.Update("users").
		Set("team_id", teamID).
		Set("last_updated_at", updatedAt).
		Set("last_updated_by", updatedBy).
		Where(sq.Eq{"organization_id": organizationID, "user_id": userID})

	tag, err := exec(ctx, r.Pool, stmt)
	if err != nil {
		return translateWriteError(err, "user "+userID)
	}
	return requireAffected(tag, "user", userID)
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	stmt := r.Builder.Update("users").
		Set("full_name", m.FullName).
		Set("role", m.Role).
		Set("last_updated_at", m.LastUpdatedAt).
		Set("last_updated_by", m.LastUpdatedBy).
		Where(sq.Eq{"organization_id": m.OrganizationID, "user_id": m.UserID})

	tag, err := exec(ctx, r.Pool, stmt)
	if err != nil {
		return translateWriteError(err, "user "+m.UserID)
	}
	return requireAffected(tag, "user", m.UserID)
}

func (r *PgxUserRepository) DeleteUser(ctx context.Context, organizationID, userID string) error {
	stmt := r.Builder.Delete("users").
		Where(sq.Eq{"organization_id": organizationID, "user_id": userID})

	tag, err := exec(ctx, r.Pool, stmt)
	if err != nil {
		return translateDeleteError(err, "user "+userID)
	}
	return requireAffected(tag, "user", userID)
}
