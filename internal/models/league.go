package models

import (
	"time"

	"github.com/google/uuid"
)

// LeagueType represents the roster/scoring flavor of a league
type LeagueType string

const (
	LeagueTypeStandard LeagueType = "standard"
	LeagueTypePPR      LeagueType = "ppr"
	LeagueTypeHalfPPR  LeagueType = "half_ppr"
	LeagueTypeDynasty  LeagueType = "dynasty"
	LeagueTypeKeeper   LeagueType = "keeper"
)

// ScoringType represents how standings are decided
type ScoringType string

const (
	ScoringTypeHeadToHead ScoringType = "head_to_head"
	ScoringTypePoints     ScoringType = "points"
	ScoringTypeRoto       ScoringType = "roto"
)

// League represents a fantasy football league
type League struct {
	ID             uuid.UUID   `json:"id"`
	Name           string      `json:"name"`
	CommissionerID uuid.UUID   `json:"commissioner_id"`
	LeagueType     LeagueType  `json:"league_type"`
	ScoringType    ScoringType `json:"scoring_type"`
	MaxTeams       int         `json:"max_teams"`
	IsPublic       bool        `json:"is_public"`
	EntryFee       float64     `json:"entry_fee"`
	PrizePool      float64     `json:"prize_pool"`
	DraftDate      *time.Time  `json:"draft_date"`
	SeasonYear     int         `json:"season_year"`
	IsActive       bool        `json:"is_active"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}
