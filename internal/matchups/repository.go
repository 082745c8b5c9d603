package matchups

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/gridiron/internal/models"
	"github.com/mcdev12/gridiron/internal/sqlutil"
)

// Repository implements matchup data access operations
type Repository struct {
	db sqlutil.DBTX
}

// NewRepository creates a new matchups repository
func NewRepository(db sqlutil.DBTX) *Repository {
	return &Repository{db: db}
}

const matchupSelect = `
	SELECT m.id, m.league_id, m.week, m.home_team_id, m.away_team_id,
		m.home_score, m.away_score, m.is_complete, m.created_at, m.updated_at,
		h.id, h.name, h.owner_id, h.league_id, h.wins, h.losses, h.ties,
		h.points_for, h.points_against, h.created_at, h.updated_at,
		a.id, a.name, a.owner_id, a.league_id, a.wins, a.losses, a.ties,
		a.points_for, a.points_against, a.created_at, a.updated_at
	FROM matchups m
	JOIN fantasy_teams h ON h.id = m.home_team_id
	JOIN fantasy_teams a ON a.id = m.away_team_id`

// ListMatchups returns matchups matching the filter, both teams embedded.
func (r *Repository) ListMatchups(ctx context.Context, filter ListMatchupsFilter) ([]MatchupDetail, error) {
	query := matchupSelect + " WHERE 1=1"
	var args []any

	if filter.LeagueID != nil {
		args = append(args, *filter.LeagueID)
		query += fmt.Sprintf(" AND m.league_id = $%d", len(args))
	}
	if filter.Week != nil {
		args = append(args, *filter.Week)
		query += fmt.Sprintf(" AND m.week = $%d", len(args))
	}
	query += " ORDER BY m.week, m.created_at"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list matchups: %w", err)
	}
	defer rows.Close()

	var matchups []MatchupDetail
	for rows.Next() {
		detail, err := scanMatchupDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan matchup: %w", err)
		}
		matchups = append(matchups, *detail)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list matchups: %w", err)
	}
	return matchups, nil
}

// GetMatchup retrieves a matchup by ID with both teams embedded.
func (r *Repository) GetMatchup(ctx context.Context, id uuid.UUID) (*MatchupDetail, error) {
	row := r.db.QueryRowContext(ctx, matchupSelect+" WHERE m.id = $1", id)
	detail, err := scanMatchupDetail(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get matchup: %w", err)
	}
	return detail, nil
}

// CreateMatchup inserts a scheduled pairing. The unique constraint on
// (league_id, week, home_team_id, away_team_id) rejects exact
// duplicates; the reverse orientation is left to the app layer.
func (r *Repository) CreateMatchup(ctx context.Context, req CreateMatchupRequest) (*models.Matchup, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO matchups (id, league_id, week, home_team_id, away_team_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, league_id, week, home_team_id, away_team_id,
			home_score, away_score, is_complete, created_at, updated_at`,
		uuid.New(), req.LeagueID, req.Week, req.HomeTeamID, req.AwayTeamID)

	matchup, err := scanMatchup(row)
	if err != nil {
		if sqlutil.IsUniqueViolation(err, "matchups_league_id_week_home_team_id_away_team_id_key") {
			return nil, ErrDuplicatePairing
		}
		return nil, fmt.Errorf("failed to create matchup: %w", err)
	}
	return matchup, nil
}

// HasTeamInWeek reports whether the team already appears in any matchup
// for the league and week, in either slot.
func (r *Repository) HasTeamInWeek(ctx context.Context, leagueID uuid.UUID, week int, teamID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM matchups
			WHERE league_id = $1 AND week = $2
			AND (home_team_id = $3 OR away_team_id = $3)
		)`, leagueID, week, teamID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check weekly schedule: %w", err)
	}
	return exists, nil
}

// HasPairing reports whether the two teams already meet that week in
// either orientation.
func (r *Repository) HasPairing(ctx context.Context, leagueID uuid.UUID, week int, teamA, teamB uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM matchups
			WHERE league_id = $1 AND week = $2
			AND ((home_team_id = $3 AND away_team_id = $4)
			  OR (home_team_id = $4 AND away_team_id = $3))
		)`, leagueID, week, teamA, teamB).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check pairing: %w", err)
	}
	return exists, nil
}

// RecordScores finalizes a scheduled matchup.
func (r *Repository) RecordScores(ctx context.Context, id uuid.UUID, req RecordScoresRequest) (*models.Matchup, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE matchups SET home_score = $2, away_score = $3, is_complete = true,
			updated_at = now()
		WHERE id = $1 AND is_complete = false
		RETURNING id, league_id, week, home_team_id, away_team_id,
			home_score, away_score, is_complete, created_at, updated_at`,
		id, req.HomeScore, req.AwayScore)

	matchup, err := scanMatchup(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAlreadyComplete
	}
	if err != nil {
		return nil, fmt.Errorf("failed to record scores: %w", err)
	}
	return matchup, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMatchup(row rowScanner) (*models.Matchup, error) {
	var m models.Matchup
	err := row.Scan(
		&m.ID, &m.LeagueID, &m.Week, &m.HomeTeamID, &m.AwayTeamID,
		&m.HomeScore, &m.AwayScore, &m.IsComplete, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func scanMatchupDetail(row rowScanner) (*MatchupDetail, error) {
	var d MatchupDetail
	err := row.Scan(
		&d.ID, &d.LeagueID, &d.Week, &d.HomeTeamID, &d.AwayTeamID,
		&d.HomeScore, &d.AwayScore, &d.IsComplete, &d.CreatedAt, &d.UpdatedAt,
		&d.HomeTeam.ID, &d.HomeTeam.Name, &d.HomeTeam.OwnerID, &d.HomeTeam.LeagueID,
		&d.HomeTeam.Wins, &d.HomeTeam.Losses, &d.HomeTeam.Ties,
		&d.HomeTeam.PointsFor, &d.HomeTeam.PointsAgainst,
		&d.HomeTeam.CreatedAt, &d.HomeTeam.UpdatedAt,
		&d.AwayTeam.ID, &d.AwayTeam.Name, &d.AwayTeam.OwnerID, &d.AwayTeam.LeagueID,
		&d.AwayTeam.Wins, &d.AwayTeam.Losses, &d.AwayTeam.Ties,
		&d.AwayTeam.PointsFor, &d.AwayTeam.PointsAgainst,
		&d.AwayTeam.CreatedAt, &d.AwayTeam.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
