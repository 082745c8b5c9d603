package matchups

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/gridiron/internal/models"
)

// MatchupsRepository defines what the app layer needs from the repository
type MatchupsRepository interface {
	ListMatchups(ctx context.Context, filter ListMatchupsFilter) ([]MatchupDetail, error)
	GetMatchup(ctx context.Context, id uuid.UUID) (*MatchupDetail, error)
	CreateMatchup(ctx context.Context, req CreateMatchupRequest) (*models.Matchup, error)
	HasTeamInWeek(ctx context.Context, leagueID uuid.UUID, week int, teamID uuid.UUID) (bool, error)
	HasPairing(ctx context.Context, leagueID uuid.UUID, week int, teamA, teamB uuid.UUID) (bool, error)
	RecordScores(ctx context.Context, id uuid.UUID, req RecordScoresRequest) (*models.Matchup, error)
}

// App handles matchup business logic. The HTTP surface is read-only;
// creation and scoring are driven by the external scheduling/scoring
// collaborator.
//
// The stored uniqueness rule only covers the exact (league, week, home,
// away) orientation. Whether the reverse orientation or a second weekly
// matchup for one team should be rejected is deliberately configurable
// via strictPairings rather than silently fixed.
type App struct {
	repo           MatchupsRepository
	strictPairings bool
}

// NewApp creates a new matchups App
func NewApp(repo MatchupsRepository, strictPairings bool) *App {
	return &App{repo: repo, strictPairings: strictPairings}
}

// ListMatchups returns matchups matching the filter.
func (a *App) ListMatchups(ctx context.Context, filter ListMatchupsFilter) ([]MatchupDetail, error) {
	return a.repo.ListMatchups(ctx, filter)
}

// GetMatchup retrieves a matchup by ID
func (a *App) GetMatchup(ctx context.Context, id uuid.UUID) (*MatchupDetail, error) {
	return a.repo.GetMatchup(ctx, id)
}

// CreateMatchup schedules a weekly pairing.
func (a *App) CreateMatchup(ctx context.Context, req CreateMatchupRequest) (*models.Matchup, error) {
	if err := a.validateCreateMatchupRequest(req); err != nil {
		return nil, err
	}

	if a.strictPairings {
		if err := a.checkStrictPairings(ctx, req); err != nil {
			return nil, err
		}
	}

	matchup, err := a.repo.CreateMatchup(ctx, req)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("league_id", req.LeagueID.String()).
		Int("week", req.Week).
		Msg("scheduled matchup")
	return matchup, nil
}

// RecordScores finalizes a matchup: scheduled -> final.
func (a *App) RecordScores(ctx context.Context, id uuid.UUID, req RecordScoresRequest) (*models.Matchup, error) {
	if req.HomeScore < 0 || req.AwayScore < 0 {
		return nil, fmt.Errorf("%w: scores cannot be negative", ErrValidation)
	}

	if _, err := a.repo.GetMatchup(ctx, id); err != nil {
		return nil, err
	}

	matchup, err := a.repo.RecordScores(ctx, id, req)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("matchup_id", id.String()).
		Float64("home_score", req.HomeScore).
		Float64("away_score", req.AwayScore).
		Msg("recorded matchup scores")
	return matchup, nil
}

func (a *App) validateCreateMatchupRequest(req CreateMatchupRequest) error {
	if req.LeagueID == uuid.Nil {
		return fmt.Errorf("%w: league_id is required", ErrValidation)
	}
	if req.Week < 1 {
		return fmt.Errorf("%w: week must be positive", ErrValidation)
	}
	if req.HomeTeamID == uuid.Nil || req.AwayTeamID == uuid.Nil {
		return fmt.Errorf("%w: home_team_id and away_team_id are required", ErrValidation)
	}
	if req.HomeTeamID == req.AwayTeamID {
		return fmt.Errorf("%w: a team cannot play itself", ErrValidation)
	}
	return nil
}

func (a *App) checkStrictPairings(ctx context.Context, req CreateMatchupRequest) error {
	paired, err := a.repo.HasPairing(ctx, req.LeagueID, req.Week, req.HomeTeamID, req.AwayTeamID)
	if err != nil {
		return err
	}
	if paired {
		return ErrDuplicatePairing
	}

	for _, teamID := range []uuid.UUID{req.HomeTeamID, req.AwayTeamID} {
		scheduled, err := a.repo.HasTeamInWeek(ctx, req.LeagueID, req.Week, teamID)
		if err != nil {
			return err
		}
		if scheduled {
			return ErrTeamAlreadyScheduled
		}
	}
	return nil
}
