package roster

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/gridiron/internal/models"
)

// RosterRepository defines what the app layer needs from the repository
type RosterRepository interface {
	ListByTeam(ctx context.Context, teamID uuid.UUID) ([]Entry, error)
	AddPlayer(ctx context.Context, teamID uuid.UUID, req AddPlayerRequest) (*models.Roster, error)
	DropPlayer(ctx context.Context, teamID, playerID uuid.UUID) error
	UpdateSlot(ctx context.Context, teamID, playerID uuid.UUID, req UpdateSlotRequest) (*models.Roster, error)
}

// PlayersRepository is the cross-domain lookup used to confirm a player
// exists before rostering them.
type PlayersRepository interface {
	GetPlayer(ctx context.Context, id uuid.UUID) (*models.NFLPlayer, error)
}

// App handles roster business logic. Callers are responsible for team
// ownership checks; this layer guards the roster invariants.
type App struct {
	repo        RosterRepository
	playersRepo PlayersRepository
}

// NewApp creates a new roster App
func NewApp(repo RosterRepository, playersRepo PlayersRepository) *App {
	return &App{repo: repo, playersRepo: playersRepo}
}

// ListByTeam returns the team's roster with player details.
func (a *App) ListByTeam(ctx context.Context, teamID uuid.UUID) ([]Entry, error) {
	return a.repo.ListByTeam(ctx, teamID)
}

// AddPlayer rosters a catalog player. The slot must come from the fixed
// vocabulary and the player may appear at most once per team; nothing
// stops two players from sharing a nominal slot.
func (a *App) AddPlayer(ctx context.Context, teamID uuid.UUID, req AddPlayerRequest) (*models.Roster, error) {
	if req.PlayerID == uuid.Nil {
		return nil, fmt.Errorf("%w: player_id is required", ErrValidation)
	}
	if !models.ValidRosterSlots[req.RosterPosition] {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSlot, req.RosterPosition)
	}
	if _, err := a.playersRepo.GetPlayer(ctx, req.PlayerID); err != nil {
		return nil, fmt.Errorf("player not found: %w", err)
	}

	entry, err := a.repo.AddPlayer(ctx, teamID, req)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("team_id", teamID.String()).
		Str("player_id", req.PlayerID.String()).
		Str("slot", string(req.RosterPosition)).
		Msg("added player to roster")
	return entry, nil
}

// DropPlayer removes a player from the roster.
func (a *App) DropPlayer(ctx context.Context, teamID, playerID uuid.UUID) error {
	if err := a.repo.DropPlayer(ctx, teamID, playerID); err != nil {
		return err
	}

	log.Info().
		Str("team_id", teamID.String()).
		Str("player_id", playerID.String()).
		Msg("dropped player from roster")
	return nil
}

// UpdateSlot moves a rostered player to another slot.
func (a *App) UpdateSlot(ctx context.Context, teamID, playerID uuid.UUID, req UpdateSlotRequest) (*models.Roster, error) {
	if !models.ValidRosterSlots[req.RosterPosition] {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSlot, req.RosterPosition)
	}
	return a.repo.UpdateSlot(ctx, teamID, playerID, req)
}
