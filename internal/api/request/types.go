package request

import (
	"errors"
	"strings"

	"github.com/mcoot/kumkom/internal/model"
)

// CreateGuestRequest is the request body for creating a guest player
type CreateGuestRequest struct {
	DisplayName string `json:"display_name"`
}

// CreateBotMatchRequest is the request body for starting a match against a bot
type CreateBotMatchRequest struct {
	Strategy string `json:"strategy,omitempty"`
}

// PlaceTileRequest places a rack tile. Glyph is required for wildcard and
// dual tiles unless the caller wants the selection to stay open.
type PlaceTileRequest struct {
	RackSlot int    `json:"rack_slot"`
	Row      int    `json:"row"`
	Col      int    `json:"col"`
	Glyph    string `json:"glyph,omitempty"`
}

// PlaceDiacriticRequest places a free diacritic
type PlaceDiacriticRequest struct {
	Row   int    `json:"row"`
	Col   int    `json:"col"`
	Glyph string `json:"glyph"`
}

// ChooseGlyphRequest resolves a pending wildcard or dual tile
type ChooseGlyphRequest struct {
	Glyph string `json:"glyph"`
}

// SwapRackRequest swaps two rack slots
type SwapRackRequest struct {
	I int `json:"i"`
	J int `json:"j"`
}

// ProposeRequest asks the move generator for a move on a caller-held position
type ProposeRequest struct {
	Board     [][]string `json:"board"`
	Rack      []string   `json:"rack"`
	TurnCount int        `json:"turn_count"`
	Strategy  string     `json:"strategy,omitempty"`
}

// WildcardMarker prefixes a board glyph that was played from a wildcard
const WildcardMarker = "?"

var errBoardShape = errors.New("board must have an odd number of equal-length rows")

// ToModel converts the request into a board and rack. Board rows alternate
// diacritic and letter rows starting with a diacritic row; letter cells
// played from a wildcard carry the "?" prefix.
func (r ProposeRequest) ToModel() (*model.Board, model.Rack, error) {
	if len(r.Board) < 3 || len(r.Board)%2 == 0 || len(r.Board[0]) == 0 {
		return nil, nil, errBoardShape
	}
	cols := len(r.Board[0])
	b := model.NewBoard(len(r.Board)/2, cols)
	for row, cells := range r.Board {
		if len(cells) != cols {
			return nil, nil, errBoardShape
		}
		for col, glyph := range cells {
			if glyph == "" {
				continue
			}
			coord := model.Coord{Row: row, Col: col}
			cell := model.Cell{Glyph: glyph}
			if coord.IsLetterRow() {
				tile := model.NormalTile(glyph)
				if g, ok := strings.CutPrefix(glyph, WildcardMarker); ok {
					cell.Glyph = g
					tile = model.WildcardTile()
				}
				cell.Origin = &tile
			}
			if err := b.Set(coord, cell); err != nil {
				return nil, nil, err
			}
		}
	}

	rack := make(model.Rack, 0, len(r.Rack))
	for _, s := range r.Rack {
		tile, err := model.ParseTile(s)
		if err != nil {
			return nil, nil, err
		}
		rack = append(rack, tile)
	}
	return b, rack, nil
}
