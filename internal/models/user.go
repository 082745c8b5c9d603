package models

import (
	"time"

	"github.com/google/uuid"
)

// RiskTolerance controls how aggressive the AI assistant's suggestions are.
type RiskTolerance string

const (
	RiskToleranceConservative RiskTolerance = "conservative"
	RiskToleranceBalanced     RiskTolerance = "balanced"
	RiskToleranceAggressive   RiskTolerance = "aggressive"
)

// User represents an account in the system
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`

	FavoriteTeam    *string `json:"favorite_team"`
	ThemePreference string  `json:"theme_preference"`
	DarkMode        bool    `json:"dark_mode"`

	AIRiskTolerance      RiskTolerance `json:"ai_risk_tolerance"`
	AIPrioritizeMatchups bool          `json:"ai_prioritize_matchups"`
	AIConsiderInjuries   bool          `json:"ai_consider_injuries"`

	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
