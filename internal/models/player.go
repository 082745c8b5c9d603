package models

import (
	"time"

	"github.com/google/uuid"
)

// Position represents an NFL player's field position
type Position string

const (
	PositionQB  Position = "QB"
	PositionRB  Position = "RB"
	PositionWR  Position = "WR"
	PositionTE  Position = "TE"
	PositionK   Position = "K"
	PositionDEF Position = "DEF"
)

// ValidPositions lists every accepted player position
var ValidPositions = []Position{
	PositionQB, PositionRB, PositionWR, PositionTE, PositionK, PositionDEF,
}

// NFLTeams maps the 32 franchise codes to display names
var NFLTeams = map[string]string{
	"ARI": "Arizona Cardinals",
	"ATL": "Atlanta Falcons",
	"BAL": "Baltimore Ravens",
	"BUF": "Buffalo Bills",
	"CAR": "Carolina Panthers",
	"CHI": "Chicago Bears",
	"CIN": "Cincinnati Bengals",
	"CLE": "Cleveland Browns",
	"DAL": "Dallas Cowboys",
	"DEN": "Denver Broncos",
	"DET": "Detroit Lions",
	"GB":  "Green Bay Packers",
	"HOU": "Houston Texans",
	"IND": "Indianapolis Colts",
	"JAX": "Jacksonville Jaguars",
	"KC":  "Kansas City Chiefs",
	"LAC": "Los Angeles Chargers",
	"LAR": "Los Angeles Rams",
	"LV":  "Las Vegas Raiders",
	"MIA": "Miami Dolphins",
	"MIN": "Minnesota Vikings",
	"NE":  "New England Patriots",
	"NO":  "New Orleans Saints",
	"NYG": "New York Giants",
	"NYJ": "New York Jets",
	"PHI": "Philadelphia Eagles",
	"PIT": "Pittsburgh Steelers",
	"SEA": "Seattle Seahawks",
	"SF":  "San Francisco 49ers",
	"TB":  "Tampa Bay Buccaneers",
	"TEN": "Tennessee Titans",
	"WAS": "Washington Commanders",
}

// NFLPlayer represents real NFL player reference data, seeded by an
// external ingestion job and never owned by any fantasy team.
type NFLPlayer struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Position     Position  `json:"position"`
	NFLTeam      string    `json:"nfl_team"`
	JerseyNumber *int      `json:"jersey_number"`
	IsActive     bool      `json:"is_active"`
	IsInjured    bool      `json:"is_injured"`
	InjuryStatus *string   `json:"injury_status"`
	ByeWeek      *int      `json:"bye_week"`

	// Season stats, updated weekly
	PointsTotal   float64 `json:"points_total"`
	AveragePoints float64 `json:"average_points"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
