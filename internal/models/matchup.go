package models

import (
	"time"

	"github.com/google/uuid"
)

// Matchup represents a weekly head-to-head pairing between two fantasy
// teams in the same league. Scores stay 0.00 until an external scoring
// process marks the matchup complete.
type Matchup struct {
	ID         uuid.UUID `json:"id"`
	LeagueID   uuid.UUID `json:"league_id"`
	Week       int       `json:"week"`
	HomeTeamID uuid.UUID `json:"home_team_id"`
	AwayTeamID uuid.UUID `json:"away_team_id"`
	HomeScore  float64   `json:"home_score"`
	AwayScore  float64   `json:"away_score"`
	IsComplete bool      `json:"is_complete"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
