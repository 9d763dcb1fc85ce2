package signing

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"signet/internal/domain"
	models "signet/internal/domain/models/signing"
	signingRepo "signet/internal/domain/repositories/signing"
	"signet/internal/repository/postgres"
)

// PostgresTeamRepository implements signingRepo.TeamRepository.
type PostgresTeamRepository struct {
	pool   *pgxpool.Pool
	tables *postgres.TableNames
}

// NewTeamRepository creates a new team repository.
func NewTeamRepository(config *postgres.RepositoryConfig) signingRepo.TeamRepository {
	return &PostgresTeamRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// GetByURL retrieves a team by slug together with the user's membership.
func (r *PostgresTeamRepository) GetByURL(ctx context.Context, url string, userID int64) (*models.Team, error) {
	query := fmt.Sprintf(`
		SELECT t.id, t.name, t.url, t.owner_user_id, t.branding_hide_powered_by, t.created_at,
		       m.id, m.user_id, m.role, m.created_at
		FROM %s t
		JOIN %s m ON m.team_id = t.id AND m.user_id = $2
		WHERE t.url = $1
	`, r.tables.Teams, r.tables.TeamMembers)

	var (
		team   models.Team
		member models.TeamMember
	)
	executor := postgres.GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, url, userID).Scan(
		&team.ID,
		&team.Name,
		&team.URL,
		&team.OwnerUserID,
		&team.HidePoweredBy,
		&team.CreatedAt,
		&member.ID,
		&member.UserID,
		&member.Role,
		&member.CreatedAt,
	)
	if err != nil {
		if postgres.IsPgNoRowsError(err) {
			return nil, fmt.Errorf("team %q: %w", url, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get team: %w", err)
	}

	member.TeamID = team.ID
	team.CurrentMember = &member
	return &team, nil
}

// GetByID retrieves a team without membership information.
func (r *PostgresTeamRepository) GetByID(ctx context.Context, id int64) (*models.Team, error) {
	query := fmt.Sprintf(`
		SELECT id, name, url, owner_user_id, branding_hide_powered_by, created_at
		FROM %s
		WHERE id = $1
	`, r.tables.Teams)

	var team models.Team
	executor := postgres.GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id).Scan(
		&team.ID,
		&team.Name,
		&team.URL,
		&team.OwnerUserID,
		&team.HidePoweredBy,
		&team.CreatedAt,
	)
	if err != nil {
		if postgres.IsPgNoRowsError(err) {
			return nil, fmt.Errorf("team %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get team: %w", err)
	}
	return &team, nil
}

// Create inserts a team.
func (r *PostgresTeamRepository) Create(ctx context.Context, team *models.Team) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, url, owner_user_id, branding_hide_powered_by)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, r.tables.Teams)

	executor := postgres.GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		team.Name,
		team.URL,
		team.OwnerUserID,
		team.HidePoweredBy,
	).Scan(&team.ID, &team.CreatedAt)
	if err != nil {
		if postgres.IsPgDuplicateError(err) {
			return fmt.Errorf("team url %q: %w", team.URL, domain.ErrConflict)
		}
		return fmt.Errorf("create team: %w", err)
	}
	return nil
}

// AddMember inserts a membership.
func (r *PostgresTeamRepository) AddMember(ctx context.Context, member *models.TeamMember) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (team_id, user_id, role)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, r.tables.TeamMembers)

	executor := postgres.GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, member.TeamID, member.UserID, member.Role).
		Scan(&member.ID, &member.CreatedAt)
	if err != nil {
		if postgres.IsPgDuplicateError(err) {
			return fmt.Errorf("user %d already in team %d: %w", member.UserID, member.TeamID, domain.ErrConflict)
		}
		return fmt.Errorf("add team member: %w", err)
	}
	return nil
}
