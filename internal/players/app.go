package players

import (
	"context"

	"github.com/google/uuid"
	"github.com/mcdev12/gridiron/internal/models"
)

// PlayersRepository defines what the app layer needs from the repository
type PlayersRepository interface {
	ListPlayers(ctx context.Context, filter ListPlayersFilter) ([]models.NFLPlayer, error)
	GetPlayer(ctx context.Context, id uuid.UUID) (*models.NFLPlayer, error)
}

// App handles player catalog business logic. The catalog is read-only
// from the API; rows are maintained by an external ingestion job.
type App struct {
	repo PlayersRepository
}

// NewApp creates a new players App
func NewApp(repo PlayersRepository) *App {
	return &App{repo: repo}
}

// ListPlayers returns active players matching the filter. Filters are
// exact matches; an unknown position or team simply matches nothing.
func (a *App) ListPlayers(ctx context.Context, filter ListPlayersFilter) ([]models.NFLPlayer, error) {
	return a.repo.ListPlayers(ctx, filter)
}

// GetPlayer retrieves a player by ID
func (a *App) GetPlayer(ctx context.Context, id uuid.UUID) (*models.NFLPlayer, error) {
	return a.repo.GetPlayer(ctx, id)
}
