package leagues

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/gridiron/internal/models"
	"github.com/mcdev12/gridiron/internal/sqlutil"
)

// Repository implements league data access operations. It holds the
// *sql.DB directly because the join path opens its own transaction.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new leagues repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const leagueColumns = `l.id, l.name, l.commissioner_id, l.league_type, l.scoring_type,
	l.max_teams, l.is_public, l.entry_fee, l.prize_pool, l.draft_date,
	l.season_year, l.is_active, l.created_at, l.updated_at`

const leagueColumnsNoAlias = `id, name, commissioner_id, league_type, scoring_type,
	max_teams, is_public, entry_fee, prize_pool, draft_date,
	season_year, is_active, created_at, updated_at`

const teamCountExpr = `(SELECT COUNT(*) FROM fantasy_teams t WHERE t.league_id = l.id)`

// ListLeagues returns active leagues matching the filter. The has_spots
// predicate is evaluated in SQL against the live team count.
func (r *Repository) ListLeagues(ctx context.Context, filter ListLeaguesFilter) ([]LeagueDetail, error) {
	query := `SELECT ` + leagueColumns + `, ` + teamCountExpr + ` AS team_count
		FROM leagues l WHERE l.is_active = true`
	var args []any

	if filter.IsPublic != nil {
		args = append(args, *filter.IsPublic)
		query += fmt.Sprintf(" AND l.is_public = $%d", len(args))
	}
	if filter.LeagueType != nil {
		args = append(args, *filter.LeagueType)
		query += fmt.Sprintf(" AND l.league_type = $%d", len(args))
	}
	if filter.HasSpots {
		query += " AND " + teamCountExpr + " < l.max_teams"
	}
	query += " ORDER BY l.created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leagues: %w", err)
	}
	defer rows.Close()

	var leagues []LeagueDetail
	for rows.Next() {
		detail, err := scanLeagueDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan league: %w", err)
		}
		leagues = append(leagues, *detail)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list leagues: %w", err)
	}
	return leagues, nil
}

// GetLeague retrieves an active league with its team count.
func (r *Repository) GetLeague(ctx context.Context, id uuid.UUID) (*LeagueDetail, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+leagueColumns+`, `+teamCountExpr+` AS team_count
		FROM leagues l WHERE l.id = $1 AND l.is_active = true`, id)
	detail, err := scanLeagueDetail(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get league: %w", err)
	}
	return detail, nil
}

// CreateLeague inserts a new league owned by the commissioner.
func (r *Repository) CreateLeague(ctx context.Context, commissionerID uuid.UUID, req CreateLeagueRequest) (*LeagueDetail, error) {
	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	row := r.db.QueryRowContext(ctx, `
		INSERT INTO leagues (id, name, commissioner_id, league_type, scoring_type,
			max_teams, is_public, entry_fee, prize_pool, draft_date, season_year)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING `+leagueColumnsNoAlias+`, 0 AS team_count`,
		uuid.New(), req.Name, commissionerID, req.LeagueType, req.ScoringType,
		req.MaxTeams, isPublic, req.EntryFee, req.PrizePool,
		sqlutil.ToSqlTime(req.DraftDate), req.SeasonYear,
	)
	detail, err := scanLeagueDetail(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create league: %w", err)
	}
	return detail, nil
}

// UpdateLeague applies a partial update of the settable fields.
func (r *Repository) UpdateLeague(ctx context.Context, id uuid.UUID, req UpdateLeagueRequest) (*LeagueDetail, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE leagues SET
			name         = COALESCE($2, name),
			league_type  = COALESCE($3, league_type),
			scoring_type = COALESCE($4, scoring_type),
			max_teams    = COALESCE($5, max_teams),
			is_public    = COALESCE($6, is_public),
			entry_fee    = COALESCE($7, entry_fee),
			prize_pool   = COALESCE($8, prize_pool),
			draft_date   = COALESCE($9, draft_date),
			season_year  = COALESCE($10, season_year),
			updated_at   = now()
		WHERE id = $1 AND is_active = true
		RETURNING `+leagueColumnsNoAlias+`,
			(SELECT COUNT(*) FROM fantasy_teams t WHERE t.league_id = leagues.id) AS team_count`,
		id,
		sqlutil.ToSqlString((*string)(req.Name)),
		toSqlLeagueType(req.LeagueType),
		toSqlScoringType(req.ScoringType),
		sqlutil.ToSqlInt32(req.MaxTeams),
		toSqlBool(req.IsPublic),
		toSqlFloat(req.EntryFee),
		toSqlFloat(req.PrizePool),
		sqlutil.ToSqlTime(req.DraftDate),
		sqlutil.ToSqlInt32(req.SeasonYear),
	)
	detail, err := scanLeagueDetail(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update league: %w", err)
	}
	return detail, nil
}

// DeleteLeague removes a league and, by cascade, its teams and matchups.
func (r *Repository) DeleteLeague(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM leagues WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete league: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete league: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// JoinLeague creates a fantasy team for ownerID inside a SERIALIZABLE
// transaction: the league row is locked, membership and capacity are
// re-checked against that snapshot, and only then is the team inserted.
// Two concurrent joins for the last spot cannot both pass the check.
func (r *Repository) JoinLeague(ctx context.Context, leagueID, ownerID uuid.UUID, teamName string) (*models.FantasyTeam, error) {
	var team *models.FantasyTeam
	err := sqlutil.RunSerializable(ctx, r.db, func(tx *sql.Tx) error {
		var maxTeams int
		err := tx.QueryRowContext(ctx, `
			SELECT max_teams FROM leagues
			WHERE id = $1 AND is_active = true
			FOR UPDATE`, leagueID).Scan(&maxTeams)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to lock league: %w", err)
		}

		var exists bool
		err = tx.QueryRowContext(ctx, `
			SELECT EXISTS(
				SELECT 1 FROM fantasy_teams WHERE league_id = $1 AND owner_id = $2
			)`, leagueID, ownerID).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check membership: %w", err)
		}
		if exists {
			return ErrAlreadyMember
		}

		var count int
		err = tx.QueryRowContext(ctx, `
			SELECT COUNT(*) FROM fantasy_teams WHERE league_id = $1`, leagueID).Scan(&count)
		if err != nil {
			return fmt.Errorf("failed to count teams: %w", err)
		}
		if count >= maxTeams {
			return ErrLeagueFull
		}

		row := tx.QueryRowContext(ctx, `
			INSERT INTO fantasy_teams (id, name, owner_id, league_id)
			VALUES ($1, $2, $3, $4)
			RETURNING id, name, owner_id, league_id, wins, losses, ties,
				points_for, points_against, created_at, updated_at`,
			uuid.New(), teamName, ownerID, leagueID)
		team, err = scanFantasyTeam(row)
		if err != nil {
			return fmt.Errorf("failed to create fantasy team: %w", err)
		}
		return nil
	})
	if err != nil {
		if sqlutil.IsUniqueViolation(err, "fantasy_teams_owner_id_league_id_key") {
			return nil, ErrAlreadyMember
		}
		return nil, err
	}
	return team, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLeagueDetail(row rowScanner) (*LeagueDetail, error) {
	var d LeagueDetail
	var draftDate sql.NullTime
	err := row.Scan(
		&d.ID, &d.Name, &d.CommissionerID, &d.LeagueType, &d.ScoringType,
		&d.MaxTeams, &d.IsPublic, &d.EntryFee, &d.PrizePool, &draftDate,
		&d.SeasonYear, &d.IsActive, &d.CreatedAt, &d.UpdatedAt,
		&d.CurrentTeamCount,
	)
	if err != nil {
		return nil, err
	}
	d.DraftDate = sqlutil.FromSqlTime(draftDate)
	d.SpotsAvailable = d.MaxTeams - d.CurrentTeamCount
	return &d, nil
}

func scanFantasyTeam(row rowScanner) (*models.FantasyTeam, error) {
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

func toSqlBool(val *bool) sql.NullBool {
	if val == nil {
		return sql.NullBool{Valid: false}
	}
	return sql.NullBool{Bool: *val, Valid: true}
}

func toSqlFloat(val *float64) sql.NullFloat64 {
	if val == nil {
		return sql.NullFloat64{Valid: false}
	}
	return sql.NullFloat64{Float64: *val, Valid: true}
}

func toSqlLeagueType(val *models.LeagueType) sql.NullString {
	if val == nil {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: string(*val), Valid: true}
}

func toSqlScoringType(val *models.ScoringType) sql.NullString {
	if val == nil {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: string(*val), Valid: true}
}

