package models

import (
	"time"

	"github.com/google/uuid"
)

// FantasyTeam represents a user's team within a league.
// A given owner has at most one team per league.
type FantasyTeam struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	OwnerID       uuid.UUID `json:"owner_id"`
	LeagueID      uuid.UUID `json:"league_id"`
	Wins          int       `json:"wins"`
	Losses        int       `json:"losses"`
	Ties          int       `json:"ties"`
	PointsFor     float64   `json:"points_for"`
	PointsAgainst float64   `json:"points_against"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
