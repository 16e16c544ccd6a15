package scoring

import (
	"github.com/mcoot/kumkom/internal/model"
)

// bingoBonuses is the flat bonus by number of tiles placed in one turn
var bingoBonuses = []struct {
	minTiles int
	bonus    int
}{
	{9, 90},
	{8, 70},
	{7, 50},
	{6, 40},
}

// TurnScore is the breakdown of a committed turn
type TurnScore struct {
	Words []model.ScoredWord
	Bingo int
	Total int
}

// Service scores words against the premium layout
type Service struct {
	layout *model.Layout
}

// New creates a new ScoringService
func New(layout *model.Layout) *Service {
	return &Service{
		layout: layout,
	}
}

// BingoBonus returns the flat bonus for placing n tiles in one turn
func BingoBonus(n int) int {
	for _, b := range bingoBonuses {
		if n >= b.minTiles {
			return b.bonus
		}
	}
	return 0
}

// CellValue returns the base value of a board cell. Wildcard-origin cells are
// always worth nothing, whatever glyph they show.
func CellValue(cell model.Cell) int {
	if cell.Origin != nil && cell.Origin.Kind == model.TileWildcard {
		return 0
	}
	return model.GlyphPoints(cell.Glyph)
}

// ScoreWord scores one word. Premiums only apply to cells in placed.
func (s *Service) ScoreWord(b *model.Board, word model.Word, placed model.CoordSet) model.ScoredWord {
	sum := 0
	wordMultiplier := 1

	for _, c := range word.Coords.Sorted() {
		value := CellValue(b.Get(c))
		if placed.Has(c) {
			premium := s.layout.At(c)
			value *= premium.LetterMultiplier()
			wordMultiplier *= premium.WordMultiplier()
		}
		sum += value
	}

	return model.ScoredWord{
		Word:       word.Text,
		Score:      sum * wordMultiplier,
		Multiplier: wordMultiplier,
	}
}

// ScoreTurn scores every word of a turn and adds the bingo bonus for
// tilesPlaced
func (s *Service) ScoreTurn(b *model.Board, words []model.Word, placed model.CoordSet, tilesPlaced int) TurnScore {
	result := TurnScore{
		Words: make([]model.ScoredWord, 0, len(words)),
	}
	for _, w := range words {
		sw := s.ScoreWord(b, w, placed)
		result.Words = append(result.Words, sw)
		result.Total += sw.Score
	}
	result.Bingo = BingoBonus(tilesPlaced)
	result.Total += result.Bingo
	return result
}

// RackValue returns the summed value of a rack
func (s *Service) RackValue(rack model.Rack) int {
	return rack.Value()
}

// DetermineWinner returns the winner's PlayerID, or empty string if tie
func (s *Service) DetermineWinner(sides [2]model.Side) model.PlayerID {
	switch {
	case sides[0].Score > sides[1].Score:
		return sides[0].PlayerID
	case sides[1].Score > sides[0].Score:
		return sides[1].PlayerID
	default:
		return ""
	}
}

// Interface for dependency injection
type ServiceInterface interface {
	ScoreWord(b *model.Board, word model.Word, placed model.CoordSet) model.ScoredWord
	ScoreTurn(b *model.Board, words []model.Word, placed model.CoordSet, tilesPlaced int) TurnScore
	RackValue(rack model.Rack) int
	DetermineWinner(sides [2]model.Side) model.PlayerID
}

var _ ServiceInterface = (*Service)(nil)
