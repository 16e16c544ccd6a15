package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/kumkom/internal/api/response"
	"github.com/mcoot/kumkom/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.Player:
		o.printPlayer(v)
	case response.AuthResponse:
		o.printAuthResult(v)
	case response.Room:
		o.printRoom(v)
	case response.Matchmaking:
		o.printMatchmaking(v)
	case response.Match:
		o.printMatch(v)
	case response.TurnOutcome:
		o.printOutcome(v)
	case response.BotTurns:
		o.printBotActions(v.Actions)
	case response.Proposal:
		o.printProposal(v)
	case response.WordCheck:
		o.printWordCheck(v)
	case response.WordSearch:
		o.printWordSearch(v)
	case response.Health:
		o.printHealth(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printPlayer(p response.Player) {
	fmt.Fprintf(o.w, "Player: %s (%s)\n", p.DisplayName, p.ID)
}

func (o *Output) printAuthResult(a response.AuthResponse) {
	o.printPlayer(a.Player)
	fmt.Fprintf(o.w, "Token: %s\n", a.SessionToken)
	fmt.Fprintf(o.w, "Expires: %s\n", a.ExpiresAt.Format("2006-01-02 15:04:05"))
}

func (o *Output) printRoom(r response.Room) {
	fmt.Fprintf(o.w, "Room: %s\n", r.Code)
	fmt.Fprintf(o.w, "State: %s\n", r.State)
	if r.MatchID != nil {
		fmt.Fprintf(o.w, "Match: %s\n", *r.MatchID)
	}
	fmt.Fprintf(o.w, "Seats (%d/2):\n", len(r.Seats))
	for _, s := range r.Seats {
		hostStr := ""
		if s.IsHost {
			hostStr = " [host]"
		}
		fmt.Fprintf(o.w, "  - %s (%s)%s\n", s.DisplayName, s.PlayerID, hostStr)
	}
}

func (o *Output) printMatchmaking(m response.Matchmaking) {
	if m.Status != response.MatchmakingMatched {
		fmt.Fprintln(o.w, "Waiting for an opponent...")
		return
	}
	fmt.Fprintf(o.w, "Matched in room %s\n", m.RoomCode)
	fmt.Fprintf(o.w, "Match: %s\n", m.MatchID)
	if m.Opponent != nil {
		fmt.Fprintf(o.w, "Opponent: %s (%s)\n", m.Opponent.DisplayName, m.Opponent.ID)
	}
}

func (o *Output) printMatch(m response.Match) {
	fmt.Fprintf(o.w, "Match: %s (%s)\n", m.ID, m.Mode)
	fmt.Fprintf(o.w, "Turn: %d  Passes: %d  Bag: %d\n", m.TurnCount, m.PassCount, m.BagRemaining)
	for i, s := range m.Sides {
		marker := " "
		if i == m.CurrentSide && !m.GameOver {
			marker = "*"
		}
		fmt.Fprintf(o.w, " %s %s (%s): %d points, %d tiles\n", marker, s.DisplayName, s.PlayerID, s.Score, s.RackSize)
	}

	fmt.Fprintln(o.w)
	o.printBoard(m.Board)

	if len(m.Rack) > 0 {
		fmt.Fprintln(o.w)
		o.printRack(m.Rack)
	}
	if m.Pending != nil {
		fmt.Fprintf(o.w, "Choose a glyph for %s at (%d,%d): %s\n",
			m.Pending.Tile, m.Pending.Coord.Row, m.Pending.Coord.Col, strings.Join(m.Pending.Options, " "))
	}
	if m.GameOver {
		winner := "draw"
		if m.Winner != nil {
			winner = *m.Winner
		}
		fmt.Fprintf(o.w, "\nGame over. Winner: %s\n", winner)
	}
}

// printBoard prints every letter row and only the diacritic rows that hold
// something. Row numbers are grid rows.
func (o *Output) printBoard(b response.Board) {
	if len(b.Cells) == 0 {
		return
	}

	fmt.Fprint(o.w, "     ")
	for col := 0; col < b.Cols; col++ {
		fmt.Fprintf(o.w, "%3d", col)
	}
	fmt.Fprintln(o.w)

	for row := 0; row < b.Rows; row++ {
		letterRow := model.Coord{Row: row}.IsLetterRow()
		if !letterRow && isBlank(b.Cells[row]) {
			continue
		}
		fmt.Fprintf(o.w, " %3d ", row)
		for _, cell := range b.Cells[row] {
			switch {
			case cell != "":
				fmt.Fprintf(o.w, " %s ", cell)
			case letterRow:
				fmt.Fprint(o.w, "  .")
			default:
				fmt.Fprint(o.w, "   ")
			}
		}
		fmt.Fprintln(o.w)
	}
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if c != "" {
			return false
		}
	}
	return true
}

func (o *Output) printRack(rack []string) {
	slots := make([]string, len(rack))
	for i, t := range rack {
		slots[i] = fmt.Sprintf("%d:%s", i, t)
	}
	fmt.Fprintf(o.w, "Rack: %s\n", strings.Join(slots, "  "))
}

func (o *Output) printResult(r *model.TurnResult) {
	if r == nil {
		return
	}
	switch r.Kind {
	case model.TurnKindCommit:
		for _, w := range r.Words {
			fmt.Fprintf(o.w, "  %s (%d pts)\n", w.Word, w.Score)
		}
		if r.Bingo > 0 {
			fmt.Fprintf(o.w, "  bingo +%d\n", r.Bingo)
		}
		fmt.Fprintf(o.w, "Scored %d\n", r.ScoreDelta)
	default:
		fmt.Fprintf(o.w, "Turn: %s\n", r.Kind)
	}
	fmt.Fprintf(o.w, "Scores: %d - %d\n", r.Scores[0].Score, r.Scores[1].Score)
	if r.GameOver {
		winner := "draw"
		if r.Winner != "" {
			winner = string(r.Winner)
		}
		fmt.Fprintf(o.w, "Game over. Winner: %s\n", winner)
		return
	}
	fmt.Fprintf(o.w, "Next: %s\n", r.NextPlayer)
}

func (o *Output) printOutcome(out response.TurnOutcome) {
	o.printResult(out.Result)
	if len(out.BotActions) > 0 {
		fmt.Fprintln(o.w, "\nBot replied:")
		o.printBotActions(out.BotActions)
	}
}

func (o *Output) printBotActions(actions []response.BotAction) {
	if len(actions) == 0 {
		fmt.Fprintln(o.w, "No bot turns to play")
		return
	}
	for _, a := range actions {
		switch a.Type {
		case "commit":
			if a.Move == nil {
				fmt.Fprintf(o.w, "%s committed\n", a.PlayerID)
				continue
			}
			fmt.Fprintf(o.w, "%s committed %d tiles for %d points\n", a.PlayerID, len(a.Move.Placements), a.Move.Score)
		case "pass":
			fmt.Fprintf(o.w, "%s passed\n", a.PlayerID)
		default:
			fmt.Fprintln(o.w, "Game complete")
		}
	}
}

func (o *Output) printProposal(p response.Proposal) {
	if p.Move == nil {
		fmt.Fprintln(o.w, "No move found; the bot would pass")
		return
	}
	for _, pl := range p.Move.Placements {
		wild := ""
		if pl.Wildcard {
			wild = " (wildcard)"
		}
		fmt.Fprintf(o.w, "  slot %d -> (%d,%d) %s%s\n", pl.RackSlot, pl.Row, pl.Col, pl.Glyph, wild)
	}
	for _, w := range p.Move.Words {
		fmt.Fprintf(o.w, "  %s (%d pts)\n", w.Word, w.Score)
	}
	fmt.Fprintf(o.w, "Score: %d\n", p.Move.Score)
}

func (o *Output) printWordCheck(c response.WordCheck) {
	if c.Valid {
		fmt.Fprintf(o.w, "%s is a word\n", c.Word)
	} else {
		fmt.Fprintf(o.w, "%s is not a word\n", c.Word)
	}
}

func (o *Output) printWordSearch(s response.WordSearch) {
	fmt.Fprintf(o.w, "%d words starting with %s\n", len(s.Words), s.Prefix)
	for _, w := range s.Words {
		fmt.Fprintf(o.w, "  %s\n", w)
	}
}

func (o *Output) printHealth(h response.Health) {
	fmt.Fprintf(o.w, "Status: %s\n", h.Status)
	if h.Words >= 0 {
		fmt.Fprintf(o.w, "Words: %d\n", h.Words)
	}
}
