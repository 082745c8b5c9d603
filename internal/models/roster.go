package models

import (
	"time"

	"github.com/google/uuid"
)

// RosterSlot is a named lineup position a player occupies on a fantasy team
type RosterSlot string

const (
	RosterSlotQB   RosterSlot = "QB"
	RosterSlotRB1  RosterSlot = "RB1"
	RosterSlotRB2  RosterSlot = "RB2"
	RosterSlotWR1  RosterSlot = "WR1"
	RosterSlotWR2  RosterSlot = "WR2"
	RosterSlotTE   RosterSlot = "TE"
	RosterSlotFlex RosterSlot = "FLEX"
	RosterSlotK    RosterSlot = "K"
	RosterSlotDEF  RosterSlot = "DEF"
	RosterSlotBN1  RosterSlot = "BN1"
	RosterSlotBN2  RosterSlot = "BN2"
	RosterSlotBN3  RosterSlot = "BN3"
	RosterSlotBN4  RosterSlot = "BN4"
	RosterSlotBN5  RosterSlot = "BN5"
	RosterSlotIR   RosterSlot = "IR"
)

// ValidRosterSlots is the fixed slot vocabulary. Nothing prevents two
// players from occupying the same nominal slot on one team; only the
// slot name itself is validated.
var ValidRosterSlots = map[RosterSlot]bool{
	RosterSlotQB:   true,
	RosterSlotRB1:  true,
	RosterSlotRB2:  true,
	RosterSlotWR1:  true,
	RosterSlotWR2:  true,
	RosterSlotTE:   true,
	RosterSlotFlex: true,
	RosterSlotK:    true,
	RosterSlotDEF:  true,
	RosterSlotBN1:  true,
	RosterSlotBN2:  true,
	RosterSlotBN3:  true,
	RosterSlotBN4:  true,
	RosterSlotBN5:  true,
	RosterSlotIR:   true,
}

// Roster links one NFL player to one fantasy team.
// A player appears at most once per team.
type Roster struct {
	ID             uuid.UUID  `json:"id"`
	FantasyTeamID  uuid.UUID  `json:"fantasy_team_id"`
	PlayerID       uuid.UUID  `json:"player_id"`
	RosterPosition RosterSlot `json:"roster_position"`
	IsStarter      bool       `json:"is_starter"`
	AcquiredAt     time.Time  `json:"acquired_date"`
}
