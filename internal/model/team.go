package model

import "time"

// Team is a named grouping of players assembled by one user. The owner is
// fixed at creation; teams are never updated or deleted.
type Team struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"usuario_id"`
	Type      string     `json:"tipo"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// TeamWithPlayers is a team together with its membership rows resolved to
// full player records, in insertion order.
type TeamWithPlayers struct {
	Team
	Players []Player `json:"jugadores"`
}
