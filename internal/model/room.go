package model

import "time"

// RoomCode is a human-readable identifier for joining rooms
type RoomCode string

// RoomState represents the current state of a room
type RoomState string

const (
	RoomStateWaiting RoomState = "waiting"  // Fewer than two seats taken
	RoomStateInMatch RoomState = "in_match" // Match currently active
)

// RoomSeats is the number of players a room holds
const RoomSeats = 2

// RoomSeat is a player's place in a room
type RoomSeat struct {
	Player   Player
	IsHost   bool
	JoinedAt time.Time
}

// Room pairs two players for a match
type Room struct {
	Code      RoomCode
	State     RoomState
	Seats     []RoomSeat
	MatchID   *MatchID // nil until both seats are filled
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GetSeat returns the seat for the given player, or nil if not seated
func (r *Room) GetSeat(playerID PlayerID) *RoomSeat {
	for i := range r.Seats {
		if r.Seats[i].Player.ID == playerID {
			return &r.Seats[i]
		}
	}
	return nil
}

// IsFull returns true when every seat is taken
func (r *Room) IsFull() bool {
	return len(r.Seats) >= RoomSeats
}

// WaitingTicket is a matchmaking queue entry
type WaitingTicket struct {
	Player     Player
	EnqueuedAt time.Time
	ExpiresAt  time.Time
	Found      *MatchFound `json:",omitempty"` // set once an opponent paired with this ticket
}

// Expired reports whether the ticket is past its expiry
func (t *WaitingTicket) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// MatchFound is returned from matchmaking once two players are paired
type MatchFound struct {
	RoomCode RoomCode
	MatchID  MatchID
	Opponent Player
}
