package roster

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcdev12/gridiron/internal/models"
	"github.com/mcdev12/gridiron/internal/players"
)

// fakeRosterRepo keeps roster rows in memory keyed by team.
type fakeRosterRepo struct {
	entries map[uuid.UUID][]models.Roster
}

func newFakeRosterRepo() *fakeRosterRepo {
	return &fakeRosterRepo{entries: make(map[uuid.UUID][]models.Roster)}
}

func (f *fakeRosterRepo) ListByTeam(ctx context.Context, teamID uuid.UUID) ([]Entry, error) {
	var out []Entry
	for _, row := range f.entries[teamID] {
		out = append(out, Entry{Roster: row})
	}
	return out, nil
}

func (f *fakeRosterRepo) AddPlayer(ctx context.Context, teamID uuid.UUID, req AddPlayerRequest) (*models.Roster, error) {
	for _, row := range f.entries[teamID] {
		if row.PlayerID == req.PlayerID {
			return nil, ErrPlayerAlreadyRostered
		}
	}
	row := models.Roster{
		ID:             uuid.New(),
		FantasyTeamID:  teamID,
		PlayerID:       req.PlayerID,
		RosterPosition: req.RosterPosition,
		IsStarter:      req.IsStarter,
		AcquiredAt:     time.Now(),
	}
	f.entries[teamID] = append(f.entries[teamID], row)
	return &row, nil
}

func (f *fakeRosterRepo) DropPlayer(ctx context.Context, teamID, playerID uuid.UUID) error {
	rows := f.entries[teamID]
	for i, row := range rows {
		if row.PlayerID == playerID {
			f.entries[teamID] = append(rows[:i], rows[i+1:]...)
			return nil
		}
	}
	return ErrNotOnRoster
}

func (f *fakeRosterRepo) UpdateSlot(ctx context.Context, teamID, playerID uuid.UUID, req UpdateSlotRequest) (*models.Roster, error) {
	rows := f.entries[teamID]
	for i := range rows {
		if rows[i].PlayerID == playerID {
			rows[i].RosterPosition = req.RosterPosition
			rows[i].IsStarter = req.IsStarter
			return &rows[i], nil
		}
	}
	return nil, ErrNotOnRoster
}

// fakePlayerCatalog resolves player IDs for existence checks.
type fakePlayerCatalog struct {
	players map[uuid.UUID]*models.NFLPlayer
}

func (f *fakePlayerCatalog) GetPlayer(ctx context.Context, id uuid.UUID) (*models.NFLPlayer, error) {
	player, ok := f.players[id]
	if !ok {
		return nil, players.ErrNotFound
	}
	return player, nil
}

func (f *fakePlayerCatalog) add(name string, position models.Position) uuid.UUID {
	player := &models.NFLPlayer{ID: uuid.New(), Name: name, Position: position, IsActive: true}
	f.players[player.ID] = player
	return player.ID
}

func newTestRosterApp() (*App, *fakePlayerCatalog) {
	catalog := &fakePlayerCatalog{players: make(map[uuid.UUID]*models.NFLPlayer)}
	return NewApp(newFakeRosterRepo(), catalog), catalog
}

func TestAddPlayer(t *testing.T) {
	app, catalog := newTestRosterApp()
	teamID := uuid.New()
	playerID := catalog.add("Patrick Mahomes", models.PositionQB)
	ctx := context.Background()

	entry, err := app.AddPlayer(ctx, teamID, AddPlayerRequest{
		PlayerID:       playerID,
		RosterPosition: models.RosterSlotQB,
		IsStarter:      true,
	})
	require.NoError(t, err)
	assert.Equal(t, playerID, entry.PlayerID)
	assert.Equal(t, models.RosterSlotQB, entry.RosterPosition)
	assert.True(t, entry.IsStarter)

	// Same player twice on one team is rejected.
	_, err = app.AddPlayer(ctx, teamID, AddPlayerRequest{
		PlayerID:       playerID,
		RosterPosition: models.RosterSlotBN1,
	})
	assert.ErrorIs(t, err, ErrPlayerAlreadyRostered)

	// The same player on a different team is fine.
	_, err = app.AddPlayer(ctx, uuid.New(), AddPlayerRequest{
		PlayerID:       playerID,
		RosterPosition: models.RosterSlotQB,
	})
	assert.NoError(t, err)
}

func TestAddPlayer_Validation(t *testing.T) {
	app, catalog := newTestRosterApp()
	teamID := uuid.New()
	playerID := catalog.add("Tyreek Hill", models.PositionWR)
	ctx := context.Background()

	_, err := app.AddPlayer(ctx, teamID, AddPlayerRequest{RosterPosition: models.RosterSlotWR1})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = app.AddPlayer(ctx, teamID, AddPlayerRequest{PlayerID: playerID, RosterPosition: "WR9"})
	assert.ErrorIs(t, err, ErrInvalidSlot)

	_, err = app.AddPlayer(ctx, teamID, AddPlayerRequest{PlayerID: uuid.New(), RosterPosition: models.RosterSlotWR1})
	assert.ErrorIs(t, err, players.ErrNotFound)
}

func TestDropPlayer(t *testing.T) {
	app, catalog := newTestRosterApp()
	teamID := uuid.New()
	playerID := catalog.add("Travis Kelce", models.PositionTE)
	ctx := context.Background()

	_, err := app.AddPlayer(ctx, teamID, AddPlayerRequest{PlayerID: playerID, RosterPosition: models.RosterSlotTE})
	require.NoError(t, err)

	require.NoError(t, app.DropPlayer(ctx, teamID, playerID))
	assert.ErrorIs(t, app.DropPlayer(ctx, teamID, playerID), ErrNotOnRoster)
}

func TestUpdateSlot(t *testing.T) {
	app, catalog := newTestRosterApp()
	teamID := uuid.New()
	playerID := catalog.add("Justin Jefferson", models.PositionWR)
	ctx := context.Background()

	_, err := app.AddPlayer(ctx, teamID, AddPlayerRequest{PlayerID: playerID, RosterPosition: models.RosterSlotWR1, IsStarter: true})
	require.NoError(t, err)

	entry, err := app.UpdateSlot(ctx, teamID, playerID, UpdateSlotRequest{RosterPosition: models.RosterSlotFlex})
	require.NoError(t, err)
	assert.Equal(t, models.RosterSlotFlex, entry.RosterPosition)
	assert.False(t, entry.IsStarter)

	_, err = app.UpdateSlot(ctx, teamID, playerID, UpdateSlotRequest{RosterPosition: "COACH"})
	assert.ErrorIs(t, err, ErrInvalidSlot)

	_, err = app.UpdateSlot(ctx, teamID, uuid.New(), UpdateSlotRequest{RosterPosition: models.RosterSlotBN2})
	assert.ErrorIs(t, err, ErrNotOnRoster)
}
