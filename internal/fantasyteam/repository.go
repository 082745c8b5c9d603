package fantasyteam

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/gridiron/internal/models"
	"github.com/mcdev12/gridiron/internal/sqlutil"
)

// ErrNotFound is returned when a team does not exist or is not owned by
// the caller. The two cases are indistinguishable on purpose.
var ErrNotFound = errors.New("fantasy team not found")

// Repository implements fantasy team data access operations
type Repository struct {
	db sqlutil.DBTX
}

// NewRepository creates a new fantasy team repository
func NewRepository(db sqlutil.DBTX) *Repository {
	return &Repository{db: db}
}

const teamColumns = `id, name, owner_id, league_id, wins, losses, ties,
	points_for, points_against, created_at, updated_at`

// GetTeamsByOwner returns every team owned by ownerID across leagues.
func (r *Repository) GetTeamsByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.FantasyTeam, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+teamColumns+` FROM fantasy_teams
		WHERE owner_id = $1 ORDER BY created_at`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get teams by owner: %w", err)
	}
	defer rows.Close()

	var teams []models.FantasyTeam
	for rows.Next() {
		team, err := scanTeam(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, *team)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to get teams by owner: %w", err)
	}
	return teams, nil
}

// GetTeamForOwner retrieves a team pre-scoped to its owner, so another
// user's team ID behaves exactly like a missing one.
func (r *Repository) GetTeamForOwner(ctx context.Context, teamID, ownerID uuid.UUID) (*models.FantasyTeam, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+teamColumns+` FROM fantasy_teams
		WHERE id = $1 AND owner_id = $2`, teamID, ownerID)
	team, err := scanTeam(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

// GetTeam retrieves a team by ID regardless of owner. Used internally
// for embedding teams in matchup responses.
func (r *Repository) GetTeam(ctx context.Context, teamID uuid.UUID) (*models.FantasyTeam, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+teamColumns+` FROM fantasy_teams WHERE id = $1`, teamID)
	team, err := scanTeam(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTeam(row rowScanner) (*models.FantasyTeam, error) {
	var t models.FantasyTeam
	err := row.Scan(
		&t.ID, &t.Name, &t.OwnerID, &t.LeagueID, &t.Wins, &t.Losses, &t.Ties,
		&t.PointsFor, &t.PointsAgainst, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
