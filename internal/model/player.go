package model

import "time"

// PlayerID uniquely identifies a player across the system
type PlayerID string

// Player represents a game participant. All players are anonymous guests.
type Player struct {
	ID          PlayerID
	DisplayName string
	IsBot       bool
	CreatedAt   time.Time
}
