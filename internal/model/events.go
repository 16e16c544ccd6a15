package model

// EventType identifies the type of event relayed to match subscribers
type EventType string

const (
	EventTurnResult     EventType = "turn-result"
	EventTilePlaced     EventType = "tile-placed"
	EventTurnRecalled   EventType = "turn-recalled"
	EventSelectionOpen  EventType = "selection-open"
	EventMatchStarted   EventType = "match-started"
	EventMatchCompleted EventType = "match-completed"
)

// Event is a typed notification about a match
type Event struct {
	Type    EventType
	MatchID MatchID
	Payload any
}

// BoardChange is the payload of in-turn events (tile-placed, turn-recalled,
// selection-open)
type BoardChange struct {
	PlayerID PlayerID `json:"player_id"`
	Coord    *Coord   `json:"coord,omitempty"`
	Board    *Board   `json:"board"`
}
