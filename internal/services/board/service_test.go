package board

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/kumkom/internal/model"
	"github.com/mcoot/kumkom/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
	board   *model.Board
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = New(model.StandardLayout(), testutil.NopLogger())
	s.board = model.NewStandardBoard()
}

func placed(r, c int, glyph string) model.Placement {
	t := model.NormalTile(glyph)
	return model.Placement{Coord: model.Coord{Row: r, Col: c}, Glyph: glyph, Tile: &t}
}

// apply lays placements on the board and scans the words they form
func (s *ServiceSuite) apply(history ...model.Placement) ([]model.Word, []model.Placement) {
	coords := make([]model.Coord, len(history))
	for i, p := range history {
		s.Require().NoError(s.board.Set(p.Coord, model.Cell{Glyph: p.Glyph, Origin: p.Tile}))
		coords[i] = p.Coord
	}
	return s.service.ScanWords(s.board, coords), history
}

// ValidateTileCell tests

func (s *ServiceSuite) TestValidateTileCellRejectsDiacriticRow() {
	s.ErrorIs(s.service.ValidateTileCell(s.board, model.Coord{Row: 14, Col: 7}), model.ErrWrongRow)
}

func (s *ServiceSuite) TestValidateTileCellRejectsOutOfBounds() {
	s.ErrorIs(s.service.ValidateTileCell(s.board, model.Coord{Row: 31, Col: 0}), model.ErrInvalidPosition)
	s.ErrorIs(s.service.ValidateTileCell(s.board, model.Coord{Row: 1, Col: 15}), model.ErrInvalidPosition)
}

// ValidateDiacriticCell tests

func (s *ServiceSuite) TestValidateDiacriticNeedsNeighbouringLetter() {
	err := s.service.ValidateDiacriticCell(s.board, model.Coord{Row: 14, Col: 7}, "่")
	s.ErrorIs(err, model.ErrNoLetterBelow)

	s.Require().NoError(s.board.Set(model.Coord{Row: 15, Col: 7}, model.Cell{Glyph: "ก"}))
	s.NoError(s.service.ValidateDiacriticCell(s.board, model.Coord{Row: 14, Col: 7}, "่"))
	s.NoError(s.service.ValidateDiacriticCell(s.board, model.Coord{Row: 16, Col: 7}, "ุ"))
}

func (s *ServiceSuite) TestValidateDiacriticRejectsRackGlyph() {
	s.Require().NoError(s.board.Set(model.Coord{Row: 15, Col: 7}, model.Cell{Glyph: "ก"}))
	err := s.service.ValidateDiacriticCell(s.board, model.Coord{Row: 14, Col: 7}, "า")
	s.ErrorIs(err, model.ErrInvalidGlyph)
}

func (s *ServiceSuite) TestValidateDiacriticRejectsLetterRow() {
	err := s.service.ValidateDiacriticCell(s.board, model.Coord{Row: 15, Col: 7}, "่")
	s.ErrorIs(err, model.ErrWrongRow)
}

// CheckLegality tests

func (s *ServiceSuite) TestFirstTurnMustCoverStar() {
	history := []model.Placement{placed(15, 8, "ก"), placed(15, 9, "า")}
	s.ErrorIs(s.service.CheckLegality(s.board, history, nil, 0), model.ErrMustCoverCenter)

	history = append(history, placed(15, 7, "ม"))
	s.NoError(s.service.CheckLegality(s.board, history, nil, 0))
}

func (s *ServiceSuite) TestLaterTurnMustConnect() {
	s.Require().NoError(s.board.Set(model.Coord{Row: 15, Col: 7}, model.Cell{Glyph: "ก"}))

	far := []model.Placement{placed(3, 3, "ม")}
	s.ErrorIs(s.service.CheckLegality(s.board, far, nil, 1), model.ErrMustConnect)

	beside := []model.Placement{placed(15, 8, "า")}
	s.NoError(s.service.CheckLegality(s.board, beside, nil, 1))

	below := []model.Placement{placed(17, 7, "า")}
	s.NoError(s.service.CheckLegality(s.board, below, nil, 1))
}

func (s *ServiceSuite) TestConnectionToTouchedCellDoesNotCount() {
	history := []model.Placement{placed(3, 3, "ม"), placed(3, 4, "า")}
	for _, p := range history {
		s.Require().NoError(s.board.Set(p.Coord, model.Cell{Glyph: p.Glyph, Origin: p.Tile}))
	}
	s.ErrorIs(s.service.CheckLegality(s.board, history, nil, 2), model.ErrMustConnect)
}

func (s *ServiceSuite) TestOverwriteCountsAsConnected() {
	prev := model.Cell{Glyph: "่"}
	history := []model.Placement{{Coord: model.Coord{Row: 2, Col: 2}, Glyph: "้", RackSlot: -1, Previous: &prev}}
	s.NoError(s.service.CheckLegality(s.board, history, nil, 3))
}

func (s *ServiceSuite) TestFreeDiacriticDoesNotConnect() {
	s.Require().NoError(s.board.Set(model.Coord{Row: 15, Col: 7}, model.Cell{Glyph: "ก"}))
	s.Require().NoError(s.board.Set(model.Coord{Row: 15, Col: 8}, model.Cell{Glyph: "า"}))

	mark := model.Placement{Coord: model.Coord{Row: 14, Col: 7}, Glyph: "ิ", RackSlot: -1}
	words, history := s.apply(mark, placed(3, 3, "ม"), placed(3, 4, "า"))
	s.Require().Len(words, 1)
	s.Equal("มา", words[0].Text)

	s.ErrorIs(s.service.CheckLegality(s.board, history, words, 1), model.ErrMustConnect)
}

func (s *ServiceSuite) TestIslandBesideConnectedWordIsRejected() {
	s.Require().NoError(s.board.Set(model.Coord{Row: 15, Col: 7}, model.Cell{Glyph: "ก"}))

	words, history := s.apply(placed(15, 8, "า"), placed(3, 3, "ม"), placed(3, 4, "า"))
	s.Require().Len(words, 2)

	s.ErrorIs(s.service.CheckLegality(s.board, history, words, 1), model.ErrMustConnect)
}

func (s *ServiceSuite) TestWordExtendingBoardIsConnected() {
	s.Require().NoError(s.board.Set(model.Coord{Row: 15, Col: 7}, model.Cell{Glyph: "ก"}))

	words, history := s.apply(placed(17, 7, "า"), placed(17, 8, "ม"))
	s.Require().NotEmpty(words)

	s.NoError(s.service.CheckLegality(s.board, history, words, 1))
}

func (s *ServiceSuite) TestFirstTurnStarTileMustSurvive() {
	words, history := s.apply(placed(15, 7, "ก"), placed(3, 3, "ม"), placed(3, 4, "า"))
	s.Require().Len(words, 1)
	s.Equal("มา", words[0].Text)

	s.ErrorIs(s.service.CheckLegality(s.board, history, words, 0), model.ErrMustCoverCenter)
}

func (s *ServiceSuite) TestFirstTurnIslandIsRejected() {
	words, history := s.apply(placed(15, 7, "ก"), placed(15, 8, "า"), placed(3, 3, "ม"), placed(3, 4, "า"))
	s.Require().Len(words, 2)

	s.ErrorIs(s.service.CheckLegality(s.board, history, words, 0), model.ErrMustConnect)
}

func (s *ServiceSuite) TestEmptyHistoryIsRejected() {
	s.ErrorIs(s.service.CheckLegality(s.board, nil, nil, 0), model.ErrNothingPlaced)
}

// Restore and Cleanup tests

func (s *ServiceSuite) TestRestorePutsBackPreviousOccupants() {
	old := model.Cell{Glyph: "ก"}
	s.Require().NoError(s.board.Set(model.Coord{Row: 15, Col: 7}, old))
	before := s.board.Clone()

	over := placed(15, 7, "ข")
	over.Previous = &old
	fresh := placed(15, 8, "า")
	history := []model.Placement{over, fresh}
	for _, p := range history {
		s.Require().NoError(s.board.Set(p.Coord, model.Cell{Glyph: p.Glyph, Origin: p.Tile}))
	}

	s.service.Restore(s.board, history)

	s.Equal(before, s.board)
}

func (s *ServiceSuite) TestCleanupKeepsOnlyListedCells() {
	keepMe := placed(15, 7, "ก")
	dropMe := placed(3, 3, "ม")
	history := []model.Placement{keepMe, dropMe}
	for _, p := range history {
		s.Require().NoError(s.board.Set(p.Coord, model.Cell{Glyph: p.Glyph, Origin: p.Tile}))
	}

	removed := s.service.Cleanup(s.board, history, model.NewCoordSet(keepMe.Coord))

	s.Require().Len(removed, 1)
	s.Equal(dropMe.Coord, removed[0].Coord)
	s.True(s.board.Occupied(keepMe.Coord))
	s.False(s.board.Occupied(dropMe.Coord))
}

// LetterNeighbors tests

func (s *ServiceSuite) TestLetterNeighborsOfCornerCell() {
	n := LetterNeighbors(s.board, model.Coord{Row: 1, Col: 0})
	s.ElementsMatch([]model.Coord{{Row: 3, Col: 0}, {Row: 1, Col: 1}}, n)
}

func (s *ServiceSuite) TestLetterNeighborsSkipDiacriticRows() {
	n := LetterNeighbors(s.board, model.Coord{Row: 15, Col: 7})
	s.ElementsMatch([]model.Coord{{Row: 13, Col: 7}, {Row: 17, Col: 7}, {Row: 15, Col: 6}, {Row: 15, Col: 8}}, n)
}
