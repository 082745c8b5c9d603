package leagues

import (
	"time"

	"github.com/mcdev12/gridiron/internal/models"
)

// CreateLeagueRequest carries the commissioner-settable fields. The
// commissioner itself, is_active and timestamps are server-assigned.
type CreateLeagueRequest struct {
	Name        string             `json:"name"`
	LeagueType  models.LeagueType  `json:"league_type"`
	ScoringType models.ScoringType `json:"scoring_type"`
	MaxTeams    int                `json:"max_teams"`
	IsPublic    *bool              `json:"is_public"`
	EntryFee    float64            `json:"entry_fee"`
	PrizePool   float64            `json:"prize_pool"`
	DraftDate   *time.Time         `json:"draft_date"`
	SeasonYear  int                `json:"season_year"`
}

// UpdateLeagueRequest is a partial update over the same settable field
// set; nil fields are left untouched.
type UpdateLeagueRequest struct {
	Name        *string             `json:"name"`
	LeagueType  *models.LeagueType  `json:"league_type"`
	ScoringType *models.ScoringType `json:"scoring_type"`
	MaxTeams    *int                `json:"max_teams"`
	IsPublic    *bool               `json:"is_public"`
	EntryFee    *float64            `json:"entry_fee"`
	PrizePool   *float64            `json:"prize_pool"`
	DraftDate   *time.Time          `json:"draft_date"`
	SeasonYear  *int                `json:"season_year"`
}

// JoinLeagueRequest optionally names the new team.
type JoinLeagueRequest struct {
	TeamName string `json:"team_name"`
}

// ListLeaguesFilter narrows the league listing. Only active leagues are
// ever returned.
type ListLeaguesFilter struct {
	IsPublic   *bool
	LeagueType *models.LeagueType
	HasSpots   bool
}

// LeagueDetail is a league together with its derived membership counts.
type LeagueDetail struct {
	models.League
	CurrentTeamCount int `json:"current_team_count"`
	SpotsAvailable   int `json:"spots_available"`
}
