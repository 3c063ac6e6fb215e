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

type PgxTeamRepository struct {
	BaseRepository
}

func newPgxTeamRepository(pool *pgxpool.Pool) portsrepo.TeamRepositoryFacade {
	return &PgxTeamRepository{BaseRepository: newBaseRepository(pool)}
}

var _ portsrepo.TeamRepositoryFacade = (*PgxTeamRepository)(nil)

// selectTeams selects teams with their live member count.
func (r *PgxTeamRepository) selectTeams() sq.SelectBuilder {
	return r.Builder.Select(
		"t.team_id", "t.organization_id", "t.team_code", "t.team_name",
		"t.created_at", "t.created_by", "t.last_updated_at", "t.last_updated_by",
		"(SELECT COUNT(*) FROM users u WHERE u.team_id = t.team_id) AS member_count",
	).From("teams t")
}

func (r *PgxTeamRepository) findTeam(ctx context.Context, where sq.Eq) (*domain.Team, error) {
	m, err := selectOne[models.Team](ctx, r.Pool, r.selectTeams().Where(where))
	if err != nil {
		return nil, err
	}
	team := mapping.ToDomainTeam(*m)
	return &team, nil
}

func (r *PgxTeamRepository) FindTeamByID(ctx context.Context, organizationID, teamID string) (*domain.Team, error) {
	team, err := r.findTeam(ctx, sq.Eq{"t.organization_id": organizationID, "t.team_id": teamID})
	if err != nil {
		return nil, fmt.Errorf("team %s: %w", teamID, err)
	}
	return team, nil
}

func (r *PgxTeamRepository) FindTeamByName(ctx context.Context, organizationID, teamName string) (*domain.Team, error) {
	team, err := r.findTeam(ctx, sq.Eq{"t.organization_id": organizationID, "t.team_name": teamName})
	if err != nil {
		return nil, fmt.Errorf("team %q: %w", teamName, err)
	}
	return team, nil
}

func (r *PgxTeamRepository) FindTeams(ctx context.Context, organizationID string) ([]domain.Team, error) {
	stmt := r.selectTeams().
		Where(sq.Eq{"t.organization_id": organizationID}).
		OrderBy("t.team_name")

	rows, err := selectAll[models.Team](ctx, r.Pool, stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return mapping.ToDomainTeamSlice(rows), nil
}

func (r *PgxTeamRepository) SaveTeam(ctx context.Context, team domain.Team) error {
	m := mapping.ToModelTeam(team)
	stmt := r.Builder.Insert("teams").
		Columns("team_id", "organization_id", "team_code", "team_name",
			"created_at", "created_by", "last_updated_at", "last_updated_by").
		Values(m.TeamID, m.OrganizationID, m.TeamCode, m.TeamName,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)

	_, err := exec(ctx, r.Pool, stmt)
	return translateWriteError(err, "team "+m.TeamCode)
}

func (r *PgxTeamRepository) UpdateTeam(ctx context.Context, team domain.Team) error {
	m := mapping.ToModelTeam(team)
	stmt := r.Builder.Update("teams").
		Set("team_name", m.TeamName).
		Set("last_updated_at", m.LastUpdatedAt).
		Set("last_updated_by", m.LastUpdatedBy).
		Where(sq.Eq{"organization_id": m.OrganizationID, "team_id": m.TeamID})

	tag, err := exec(ctx, r.Pool, stmt)
	if err != nil {
		return translateWriteError(err, "team "+m.TeamID)
	}
	return requireAffected(tag, "team", m.TeamID)
}

// DeleteTeam unassigns the team's members and removes the team in one transaction.
func (r *PgxTeamRepository) DeleteTeam(ctx context.Context, organizationID, teamID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	unassign := r.Builder.Update("users").
		Set("team_id", nil).
		Where(sq.Eq{"organization_id": organizationID, "team_id": teamID})
	if _, err := exec(ctx, tx, unassign); err != nil {
		return translateWriteError(err, "members of team "+teamID)
	}

	remove := r.Builder.Delete("teams").
		Where(sq.Eq{"organization_id": organizationID, "team_id": teamID})
	tag, err := exec(ctx, tx, remove)
	if err != nil {
		return translateWriteError(err, "team "+teamID)
	}
	if err := requireAffected(tag, "team", teamID); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}
