package response

import (
	"time"

	"github.com/mcoot/kumkom/internal/model"
	"github.com/mcoot/kumkom/internal/services/auth"
	"github.com/mcoot/kumkom/internal/services/bot"
)

// WildcardMarker prefixes board glyphs that were played from a wildcard
const WildcardMarker = "?"

// Player represents a player in API responses
type Player struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	IsBot       bool   `json:"is_bot,omitempty"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:          string(p.ID),
		DisplayName: p.DisplayName,
		IsBot:       p.IsBot,
	}
}

// AuthResponse is the response for session endpoints
type AuthResponse struct {
	Player       Player    `json:"player"`
	SessionToken string    `json:"session_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		Player:       PlayerFromModel(&s.Player),
		SessionToken: s.Token,
		ExpiresAt:    s.ExpiresAt,
	}
}

// RoomSeat represents a seated player
type RoomSeat struct {
	PlayerID    string `json:"player_id"`
	DisplayName string `json:"display_name"`
	IsHost      bool   `json:"is_host"`
}

// Room represents a room in API responses
type Room struct {
	Code    string     `json:"code"`
	State   string     `json:"state"`
	Seats   []RoomSeat `json:"seats"`
	MatchID *string    `json:"match_id"`
}

// RoomFromModel converts model.Room
func RoomFromModel(r *model.Room) Room {
	seats := make([]RoomSeat, len(r.Seats))
	for i, s := range r.Seats {
		seats[i] = RoomSeat{
			PlayerID:    string(s.Player.ID),
			DisplayName: s.Player.DisplayName,
			IsHost:      s.IsHost,
		}
	}

	var matchID *string
	if r.MatchID != nil {
		id := string(*r.MatchID)
		matchID = &id
	}

	return Room{
		Code:    string(r.Code),
		State:   string(r.State),
		Seats:   seats,
		MatchID: matchID,
	}
}

// Matchmaking statuses
const (
	MatchmakingWaiting = "waiting"
	MatchmakingMatched = "matched"
)

// Matchmaking is the response to a matchmaking poll
type Matchmaking struct {
	Status   string  `json:"status"`
	RoomCode string  `json:"room_code,omitempty"`
	MatchID  string  `json:"match_id,omitempty"`
	Opponent *Player `json:"opponent,omitempty"`
}

// MatchmakingFromModel converts a pairing; nil means still waiting
func MatchmakingFromModel(found *model.MatchFound) Matchmaking {
	if found == nil {
		return Matchmaking{Status: MatchmakingWaiting}
	}
	opponent := PlayerFromModel(&found.Opponent)
	return Matchmaking{
		Status:   MatchmakingMatched,
		RoomCode: string(found.RoomCode),
		MatchID:  string(found.MatchID),
		Opponent: &opponent,
	}
}

// Coord is a grid position
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Board is the glyph grid. Row 0 is a diacritic row; odd rows hold letters.
type Board struct {
	Rows  int        `json:"rows"`
	Cols  int        `json:"cols"`
	Cells [][]string `json:"cells"`
}

// BoardFromModel converts model.Board to response Board. Empty cells are
// empty strings; letters played from a wildcard carry the "?" prefix.
func BoardFromModel(b *model.Board) Board {
	cells := make([][]string, b.Rows)
	for row := 0; row < b.Rows; row++ {
		cells[row] = make([]string, b.Cols)
		for col := 0; col < b.Cols; col++ {
			cell := b.Cells[row][col]
			if cell.Origin != nil && cell.Origin.Kind == model.TileWildcard {
				cells[row][col] = WildcardMarker + cell.Glyph
				continue
			}
			cells[row][col] = cell.Glyph
		}
	}
	return Board{Rows: b.Rows, Cols: b.Cols, Cells: cells}
}

// Side is one participant's public state
type Side struct {
	PlayerID    string `json:"player_id"`
	DisplayName string `json:"display_name"`
	IsBot       bool   `json:"is_bot,omitempty"`
	BotStrategy string `json:"bot_strategy,omitempty"`
	Score       int    `json:"score"`
	RackSize    int    `json:"rack_size"`
}

// Pending describes a wildcard or dual tile waiting for its glyph
type Pending struct {
	Coord   Coord    `json:"coord"`
	Tile    string   `json:"tile"`
	Options []string `json:"options,omitempty"`
}

// Match is a match as seen by one viewer: racks other than the viewer's are
// reduced to their size
type Match struct {
	ID            string   `json:"id"`
	Mode          string   `json:"mode"`
	RoomCode      string   `json:"room_code,omitempty"`
	Board         Board    `json:"board"`
	Sides         [2]Side  `json:"sides"`
	CurrentSide   int      `json:"current_side"`
	CurrentPlayer string   `json:"current_player"`
	TurnCount     int      `json:"turn_count"`
	PassCount     int      `json:"pass_count"`
	BagRemaining  int      `json:"bag_remaining"`
	Sequence      int      `json:"sequence"`
	GameOver      bool     `json:"game_over"`
	Winner        *string  `json:"winner,omitempty"`
	Rack          []string `json:"rack,omitempty"`
	Placed        []Coord  `json:"placed,omitempty"`
	Pending       *Pending `json:"pending,omitempty"`
}

// MatchFromModel converts model.Match for the given viewer
func MatchFromModel(m *model.Match, viewer model.PlayerID) Match {
	resp := Match{
		ID:            string(m.ID),
		Mode:          string(m.Mode),
		RoomCode:      string(m.RoomCode),
		Board:         BoardFromModel(m.Board),
		CurrentSide:   m.CurrentSide,
		CurrentPlayer: string(m.Current().PlayerID),
		TurnCount:     m.TurnCount,
		PassCount:     m.PassCount,
		BagRemaining:  len(m.Bag),
		Sequence:      m.Sequence,
		GameOver:      m.GameOver,
	}

	for i, s := range m.Sides {
		resp.Sides[i] = Side{
			PlayerID:    string(s.PlayerID),
			DisplayName: s.DisplayName,
			IsBot:       s.IsBot,
			BotStrategy: s.BotStrategy,
			Score:       s.Score,
			RackSize:    len(s.Rack),
		}
	}

	if m.GameOver && m.Winner != "" {
		w := string(m.Winner)
		resp.Winner = &w
	}

	if i := m.SideIndex(viewer); i >= 0 {
		resp.Rack = m.Sides[i].Rack.Strings()
		if i == m.CurrentSide {
			for _, p := range m.History {
				resp.Placed = append(resp.Placed, Coord{Row: p.Coord.Row, Col: p.Coord.Col})
			}
			if m.Pending != nil {
				resp.Pending = &Pending{
					Coord:   Coord{Row: m.Pending.Coord.Row, Col: m.Pending.Coord.Col},
					Tile:    m.Pending.Tile.String(),
					Options: m.Pending.Tile.Options,
				}
			}
		}
	}

	return resp
}

// Placement is one tile of a proposed move
type Placement struct {
	Row      int    `json:"row"`
	Col      int    `json:"col"`
	Glyph    string `json:"glyph"`
	RackSlot int    `json:"rack_slot"`
	Wildcard bool   `json:"wildcard,omitempty"`
}

// Move is a generated move
type Move struct {
	Placements []Placement        `json:"placements"`
	Words      []model.ScoredWord `json:"words"`
	Score      int                `json:"score"`
}

// MoveFromBot converts a bot.Move
func MoveFromBot(m *bot.Move) Move {
	placements := make([]Placement, len(m.Placements))
	for i, p := range m.Placements {
		placements[i] = Placement{
			Row:      p.Coord.Row,
			Col:      p.Coord.Col,
			Glyph:    p.Glyph,
			RackSlot: p.RackSlot,
			Wildcard: p.Wildcard,
		}
	}
	return Move{Placements: placements, Words: m.Words, Score: m.Score}
}

// Proposal is the response of the move generator; Move is nil when the bot
// would pass
type Proposal struct {
	Move *Move `json:"move"`
}

// BotAction is one turn played by a bot
type BotAction struct {
	Type     string            `json:"type"`
	PlayerID string            `json:"player_id,omitempty"`
	Move     *Move             `json:"move,omitempty"`
	Result   *model.TurnResult `json:"result,omitempty"`
}

// BotTurns lists the turns bots played in one request
type BotTurns struct {
	Actions []BotAction `json:"actions"`
}

// BotTurnsFromModel converts bot actions
func BotTurnsFromModel(actions []bot.BotAction) BotTurns {
	resp := BotTurns{Actions: make([]BotAction, len(actions))}
	for i, a := range actions {
		resp.Actions[i] = BotAction{
			Type:     string(a.Type),
			PlayerID: string(a.PlayerID),
			Result:   a.Result,
		}
		if a.Move != nil {
			move := MoveFromBot(a.Move)
			resp.Actions[i].Move = &move
		}
	}
	return resp
}

// WordCheck is the response of a dictionary lookup
type WordCheck struct {
	Word  string `json:"word"`
	Valid bool   `json:"valid"`
}

// WordSearch is the response of a prefix search
type WordSearch struct {
	Prefix string   `json:"prefix"`
	Words  []string `json:"words"`
}

// Health is the response of the health check
type Health struct {
	Status string `json:"status"`
	Words  int    `json:"words"`
}

// TurnOutcome is the response to a commit or skip. In bot matches it also
// carries the turns the bot played in reply.
type TurnOutcome struct {
	Result     *model.TurnResult `json:"result"`
	BotActions []BotAction       `json:"bot_actions,omitempty"`
}
