package roster

import (
	"github.com/google/uuid"
	"github.com/mcdev12/gridiron/internal/models"
)

// Entry is a roster row with the player details embedded, matching the
// shape served to clients.
type Entry struct {
	models.Roster
	Player models.NFLPlayer `json:"player"`
}

// AddPlayerRequest assigns a catalog player to a team slot.
type AddPlayerRequest struct {
	PlayerID       uuid.UUID         `json:"player_id"`
	RosterPosition models.RosterSlot `json:"roster_position"`
	IsStarter      bool              `json:"is_starter"`
}

// UpdateSlotRequest moves a rostered player to a different slot or
// toggles the starter flag.
type UpdateSlotRequest struct {
	RosterPosition models.RosterSlot `json:"roster_position"`
	IsStarter      bool              `json:"is_starter"`
}
