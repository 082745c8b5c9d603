package users

import (
	"github.com/mcdev12/gridiron/internal/models"
)

// RegisterRequest represents the data needed to create a new account
type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
}

// LoginRequest represents a credential check
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateProfileRequest represents a partial update of mutable preference
// fields. Nil fields are left untouched; identity fields are immutable.
type UpdateProfileRequest struct {
	FavoriteTeam         *string               `json:"favorite_team"`
	ThemePreference      *string               `json:"theme_preference"`
	DarkMode             *bool                 `json:"dark_mode"`
	AIRiskTolerance      *models.RiskTolerance `json:"ai_risk_tolerance"`
	AIPrioritizeMatchups *bool                 `json:"ai_prioritize_matchups"`
	AIConsiderInjuries   *bool                 `json:"ai_consider_injuries"`
}

// createUserParams is the repository-level shape for inserting a user.
type createUserParams struct {
	Username     string
	Email        string
	PasswordHash string
}
