package roster

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/gridiron/internal/models"
	"github.com/mcdev12/gridiron/internal/sqlutil"
)

// Repository implements roster data access operations
type Repository struct {
	db sqlutil.DBTX
}

// NewRepository creates a new roster repository
func NewRepository(db sqlutil.DBTX) *Repository {
	return &Repository{db: db}
}

// ListByTeam returns the team's roster with embedded player details.
func (r *Repository) ListByTeam(ctx context.Context, teamID uuid.UUID) ([]Entry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT ro.id, ro.fantasy_team_id, ro.player_id, ro.roster_position,
			ro.is_starter, ro.acquired_date,
			p.id, p.name, p.position, p.nfl_team, p.jersey_number, p.is_active,
			p.is_injured, p.injury_status, p.bye_week, p.points_total,
			p.average_points, p.created_at, p.updated_at
		FROM rosters ro
		JOIN nfl_players p ON p.id = ro.player_id
		WHERE ro.fantasy_team_id = $1
		ORDER BY ro.acquired_date`, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list roster: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var jerseyNumber, byeWeek sql.NullInt32
		var injuryStatus sql.NullString
		err := rows.Scan(
			&e.ID, &e.FantasyTeamID, &e.PlayerID, &e.RosterPosition,
			&e.IsStarter, &e.AcquiredAt,
			&e.Player.ID, &e.Player.Name, &e.Player.Position, &e.Player.NFLTeam,
			&jerseyNumber, &e.Player.IsActive, &e.Player.IsInjured,
			&injuryStatus, &byeWeek, &e.Player.PointsTotal,
			&e.Player.AveragePoints, &e.Player.CreatedAt, &e.Player.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan roster entry: %w", err)
		}
		e.Player.JerseyNumber = sqlutil.FromSqlInt32(jerseyNumber)
		e.Player.ByeWeek = sqlutil.FromSqlInt32(byeWeek)
		e.Player.InjuryStatus = sqlutil.FromSqlString(injuryStatus)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list roster: %w", err)
	}
	return entries, nil
}

// AddPlayer inserts a roster row. The unique constraint on
// (fantasy_team_id, player_id) rejects duplicates.
func (r *Repository) AddPlayer(ctx context.Context, teamID uuid.UUID, req AddPlayerRequest) (*models.Roster, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO rosters (id, fantasy_team_id, player_id, roster_position, is_starter)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, fantasy_team_id, player_id, roster_position, is_starter, acquired_date`,
		uuid.New(), teamID, req.PlayerID, req.RosterPosition, req.IsStarter)

	var entry models.Roster
	err := row.Scan(
		&entry.ID, &entry.FantasyTeamID, &entry.PlayerID,
		&entry.RosterPosition, &entry.IsStarter, &entry.AcquiredAt,
	)
	if err != nil {
		if sqlutil.IsUniqueViolation(err, "rosters_fantasy_team_id_player_id_key") {
			return nil, ErrPlayerAlreadyRostered
		}
		return nil, fmt.Errorf("failed to add player to roster: %w", err)
	}
	return &entry, nil
}

// DropPlayer removes a player from the team's roster.
func (r *Repository) DropPlayer(ctx context.Context, teamID, playerID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM rosters WHERE fantasy_team_id = $1 AND player_id = $2`,
		teamID, playerID)
	if err != nil {
		return fmt.Errorf("failed to drop player: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to drop player: %w", err)
	}
	if affected == 0 {
		return ErrNotOnRoster
	}
	return nil
}

// UpdateSlot moves a rostered player to a different slot and sets the
// starter flag.
func (r *Repository) UpdateSlot(ctx context.Context, teamID, playerID uuid.UUID, req UpdateSlotRequest) (*models.Roster, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE rosters SET roster_position = $3, is_starter = $4
		WHERE fantasy_team_id = $1 AND player_id = $2
		RETURNING id, fantasy_team_id, player_id, roster_position, is_starter, acquired_date`,
		teamID, playerID, req.RosterPosition, req.IsStarter)

	var entry models.Roster
	err := row.Scan(
		&entry.ID, &entry.FantasyTeamID, &entry.PlayerID,
		&entry.RosterPosition, &entry.IsStarter, &entry.AcquiredAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotOnRoster
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update roster slot: %w", err)
	}
	return &entry, nil
}
