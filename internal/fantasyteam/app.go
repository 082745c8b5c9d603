package fantasyteam

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/gridiron/internal/models"
)

// FantasyTeamRepository defines what the app layer needs from the repository
type FantasyTeamRepository interface {
	GetTeamsByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.FantasyTeam, error)
	GetTeamForOwner(ctx context.Context, teamID, ownerID uuid.UUID) (*models.FantasyTeam, error)
	GetTeam(ctx context.Context, teamID uuid.UUID) (*models.FantasyTeam, error)
}

// App handles fantasy team business logic. Teams are created only by
// the league join flow; here they are read, always scoped to the owner.
type App struct {
	repo FantasyTeamRepository
}

// NewApp creates a new fantasy team App
func NewApp(repo FantasyTeamRepository) *App {
	return &App{repo: repo}
}

// GetMyTeams returns the caller's teams and nothing else.
func (a *App) GetMyTeams(ctx context.Context, ownerID uuid.UUID) ([]models.FantasyTeam, error) {
	teams, err := a.repo.GetTeamsByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get teams: %w", err)
	}
	return teams, nil
}

// GetMyTeam returns the caller's team or ErrNotFound, including when
// the team exists but belongs to someone else.
func (a *App) GetMyTeam(ctx context.Context, teamID, ownerID uuid.UUID) (*models.FantasyTeam, error) {
	return a.repo.GetTeamForOwner(ctx, teamID, ownerID)
}

// GetTeam returns any team by ID for internal embedding.
func (a *App) GetTeam(ctx context.Context, teamID uuid.UUID) (*models.FantasyTeam, error) {
	return a.repo.GetTeam(ctx, teamID)
}
