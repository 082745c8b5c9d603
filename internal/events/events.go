package events

import (
	"time"

	"github.com/google/uuid"
)

// Event is a domain event emitted after a committed mutation.
type Event struct {
	ID        uuid.UUID `json:"event_id"`
	Type      string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload"`
}

// New builds an event with a fresh ID and the current time.
func New(eventType string, payload any) Event {
	return Event{
		ID:        uuid.New(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// Event types published by the league domain.
const (
	TypeLeagueCreated = "league.created"
	TypeTeamJoined    = "league.team_joined"
)

// TeamJoinedPayload describes a successful league join.
type TeamJoinedPayload struct {
	LeagueID uuid.UUID `json:"league_id"`
	TeamID   uuid.UUID `json:"team_id"`
	OwnerID  uuid.UUID `json:"owner_id"`
	TeamName string    `json:"team_name"`
}

// LeagueCreatedPayload describes a newly created league.
type LeagueCreatedPayload struct {
	LeagueID       uuid.UUID `json:"league_id"`
	CommissionerID uuid.UUID `json:"commissioner_id"`
	Name           string    `json:"name"`
}
