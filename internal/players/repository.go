package players

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/gridiron/internal/models"
	"github.com/mcdev12/gridiron/internal/sqlutil"
)

// ErrNotFound is returned when a player does not exist or is inactive
var ErrNotFound = errors.New("player not found")

// ListPlayersFilter narrows the catalog listing. Only active players
// are ever returned.
type ListPlayersFilter struct {
	Position *models.Position
	NFLTeam  *string
}

// Repository implements NFL player catalog data access
type Repository struct {
	db sqlutil.DBTX
}

// NewRepository creates a new players repository
func NewRepository(db sqlutil.DBTX) *Repository {
	return &Repository{db: db}
}

const playerColumns = `id, name, position, nfl_team, jersey_number, is_active,
	is_injured, injury_status, bye_week, points_total, average_points,
	created_at, updated_at`

// ListPlayers returns active players matching the filter, ordered by
// position then name.
func (r *Repository) ListPlayers(ctx context.Context, filter ListPlayersFilter) ([]models.NFLPlayer, error) {
	query := `SELECT ` + playerColumns + ` FROM nfl_players WHERE is_active = true`
	var args []any

	if filter.Position != nil {
		args = append(args, *filter.Position)
		query += fmt.Sprintf(" AND position = $%d", len(args))
	}
	if filter.NFLTeam != nil {
		args = append(args, *filter.NFLTeam)
		query += fmt.Sprintf(" AND nfl_team = $%d", len(args))
	}
	query += " ORDER BY position, name"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	defer rows.Close()

	var players []models.NFLPlayer
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		players = append(players, *player)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return players, nil
}

// GetPlayer retrieves an active player by ID
func (r *Repository) GetPlayer(ctx context.Context, id uuid.UUID) (*models.NFLPlayer, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+playerColumns+` FROM nfl_players WHERE id = $1 AND is_active = true`, id)
	player, err := scanPlayer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return player, nil
}

// UpsertPlayer inserts or refreshes a catalog row. Used by the external
// data-ingestion job, not exposed over HTTP.
func (r *Repository) UpsertPlayer(ctx context.Context, player models.NFLPlayer) (*models.NFLPlayer, error) {
	if player.ID == uuid.Nil {
		player.ID = uuid.New()
	}
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO nfl_players (id, name, position, nfl_team, jersey_number,
			is_active, is_injured, injury_status, bye_week, points_total, average_points)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			position = EXCLUDED.position,
			nfl_team = EXCLUDED.nfl_team,
			jersey_number = EXCLUDED.jersey_number,
			is_active = EXCLUDED.is_active,
			is_injured = EXCLUDED.is_injured,
			injury_status = EXCLUDED.injury_status,
			bye_week = EXCLUDED.bye_week,
			points_total = EXCLUDED.points_total,
			average_points = EXCLUDED.average_points,
			updated_at = now()
		RETURNING `+playerColumns,
		player.ID, player.Name, player.Position, player.NFLTeam,
		sqlutil.ToSqlInt32(player.JerseyNumber), player.IsActive, player.IsInjured,
		sqlutil.ToSqlString(player.InjuryStatus), sqlutil.ToSqlInt32(player.ByeWeek),
		player.PointsTotal, player.AveragePoints,
	)
	upserted, err := scanPlayer(row)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert player: %w", err)
	}
	return upserted, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlayer(row rowScanner) (*models.NFLPlayer, error) {
	var p models.NFLPlayer
	var jerseyNumber, byeWeek sql.NullInt32
	var injuryStatus sql.NullString
	err := row.Scan(
		&p.ID, &p.Name, &p.Position, &p.NFLTeam, &jerseyNumber, &p.IsActive,
		&p.IsInjured, &injuryStatus, &byeWeek, &p.PointsTotal, &p.AveragePoints,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.JerseyNumber = sqlutil.FromSqlInt32(jerseyNumber)
	p.ByeWeek = sqlutil.FromSqlInt32(byeWeek)
	p.InjuryStatus = sqlutil.FromSqlString(injuryStatus)
	return &p, nil
}
