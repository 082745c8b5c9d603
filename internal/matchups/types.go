package matchups

import (
	"errors"

	"github.com/google/uuid"
	"github.com/mcdev12/gridiron/internal/models"
)

var (
	// ErrNotFound is returned when a matchup does not exist
	ErrNotFound = errors.New("matchup not found")
	// ErrValidation wraps malformed or missing request fields
	ErrValidation = errors.New("validation failed")
	// ErrDuplicatePairing is returned when the same pairing already
	// exists for the week, in either orientation (strict mode only for
	// the reverse orientation)
	ErrDuplicatePairing = errors.New("pairing already scheduled for this week")
	// ErrTeamAlreadyScheduled is returned in strict mode when a team is
	// already in another matchup that week
	ErrTeamAlreadyScheduled = errors.New("team already has a matchup this week")
	// ErrAlreadyComplete is returned when scoring a finished matchup
	ErrAlreadyComplete = errors.New("matchup is already complete")
)

// ListMatchupsFilter narrows the matchup listing.
type ListMatchupsFilter struct {
	LeagueID *uuid.UUID
	Week     *int
}

// CreateMatchupRequest schedules a weekly pairing. Used by the external
// scheduling collaborator; not exposed over HTTP.
type CreateMatchupRequest struct {
	LeagueID   uuid.UUID `json:"league_id"`
	Week       int       `json:"week"`
	HomeTeamID uuid.UUID `json:"home_team_id"`
	AwayTeamID uuid.UUID `json:"away_team_id"`
}

// RecordScoresRequest finalizes a matchup with its scores.
type RecordScoresRequest struct {
	HomeScore float64 `json:"home_score"`
	AwayScore float64 `json:"away_score"`
}

// MatchupDetail is a matchup with both teams embedded.
type MatchupDetail struct {
	models.Matchup
	HomeTeam models.FantasyTeam `json:"home_team"`
	AwayTeam models.FantasyTeam `json:"away_team"`
}
