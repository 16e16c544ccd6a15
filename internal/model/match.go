package model

import "time"

// MatchID uniquely identifies a match
type MatchID string

// MatchMode describes who plays the two sides
type MatchMode string

const (
	MatchModeLocal  MatchMode = "local"  // both sides driven through this server
	MatchModeBot    MatchMode = "bot"    // side 1 is the move generator
	MatchModeRemote MatchMode = "remote" // the opponent's results arrive as payloads
)

// StalemateLimit is the number of consecutive passes that ends or resets a match
const StalemateLimit = 6

// Side is one of the two participants
type Side struct {
	PlayerID    PlayerID
	DisplayName string
	IsBot       bool
	BotStrategy string `json:",omitempty"`
	Rack        Rack
	Score       int
}

// Placement is one entry of the pending turn history
type Placement struct {
	Coord    Coord
	Glyph    string
	Tile     *Tile // nil for free diacritics
	RackSlot int   // slot the tile occupied when placed; -1 for free diacritics
	Previous *Cell // nil if the cell was empty
}

// FromRack returns true if the placement consumed a rack tile
func (p Placement) FromRack() bool {
	return p.Tile != nil
}

// IsWildcard returns true if the placement used a blank tile
func (p Placement) IsWildcard() bool {
	return p.Tile != nil && p.Tile.Kind == TileWildcard
}

// PendingSelection records a wildcard or dual tile awaiting a glyph choice
type PendingSelection struct {
	Coord    Coord
	RackSlot int
	Tile     Tile
}

// Match is the full state of one game between two sides
type Match struct {
	ID          MatchID
	Mode        MatchMode
	RoomCode    RoomCode `json:",omitempty"`
	Sides       [2]Side
	Board       *Board
	Bag         []Tile
	CurrentSide int
	TurnCount   int // 0 gates the centre-star rule
	PassCount   int // consecutive passes and exchanges
	GameOver    bool
	Winner      PlayerID // empty on a tie or while playing
	History     []Placement
	Pending     *PendingSelection `json:",omitempty"`
	Epoch       int64             // bumps on every mutation; guards in-flight validation
	Sequence    int               // number of turn results emitted so far
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SideIndex returns the side index for a player, or -1
func (m *Match) SideIndex(playerID PlayerID) int {
	for i := range m.Sides {
		if m.Sides[i].PlayerID == playerID {
			return i
		}
	}
	return -1
}

// Current returns the side whose turn it is
func (m *Match) Current() *Side {
	return &m.Sides[m.CurrentSide]
}

// Opponent returns the side that is not on turn
func (m *Match) Opponent() *Side {
	return &m.Sides[1-m.CurrentSide]
}

// Overwrites returns how many history entries replaced an existing cell
func (m *Match) Overwrites() int {
	n := 0
	for _, p := range m.History {
		if p.Previous != nil {
			n++
		}
	}
	return n
}

// Touched returns the set of coordinates placed this turn
func (m *Match) Touched() CoordSet {
	s := make(CoordSet, len(m.History))
	for _, p := range m.History {
		s.Add(p.Coord)
	}
	return s
}

// Scores returns the cumulative scores keyed by player
func (m *Match) Scores() map[PlayerID]int {
	return map[PlayerID]int{
		m.Sides[0].PlayerID: m.Sides[0].Score,
		m.Sides[1].PlayerID: m.Sides[1].Score,
	}
}

// TileCount returns the number of rack-origin tiles accounted for across the
// bag, both racks and the board
func (m *Match) TileCount() int {
	n := len(m.Bag) + len(m.Sides[0].Rack) + len(m.Sides[1].Rack)
	for _, row := range m.Board.Cells {
		for _, cell := range row {
			if cell.Origin != nil {
				n++
			}
		}
	}
	// tiles displaced by a pending overwrite are off the board until commit or recall
	for _, p := range m.History {
		if p.Previous != nil && p.Previous.Origin != nil {
			n++
		}
	}
	return n
}
