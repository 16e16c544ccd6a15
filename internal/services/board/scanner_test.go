package board

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/kumkom/internal/model"
)

type ScannerSuite struct {
	suite.Suite
	board *model.Board
}

func TestScannerSuite(t *testing.T) {
	suite.Run(t, new(ScannerSuite))
}

func (s *ScannerSuite) SetupTest() {
	s.board = model.NewStandardBoard()
}

func (s *ScannerSuite) put(r, c int, glyph string) model.Coord {
	coord := model.Coord{Row: r, Col: c}
	s.Require().NoError(s.board.Set(coord, model.Cell{Glyph: glyph}))
	return coord
}

// Horizontal tests

func (s *ScannerSuite) TestHorizontalTwoLetterWord() {
	a := s.put(15, 7, "ก")
	s.put(15, 8, "า")

	words := Scan(s.board, []model.Coord{a})

	s.Require().Len(words, 1)
	s.Equal("กา", words[0].Text)
	s.Equal(model.RunKey{Axis: model.AxisHorizontal, Row: 15, Col: 7}, words[0].Key)
	s.Equal([]model.Coord{{Row: 15, Col: 7}, {Row: 15, Col: 8}}, words[0].Letters)
}

func (s *ScannerSuite) TestHorizontalWalksLeftToRunStart() {
	s.put(15, 5, "ม")
	s.put(15, 6, "า")
	touched := s.put(15, 7, "ก")

	words := Scan(s.board, []model.Coord{touched})

	s.Require().Len(words, 1)
	s.Equal("มาก", words[0].Text)
	s.Equal(5, words[0].Key.Col)
}

func (s *ScannerSuite) TestSingleLetterIsNotAWord() {
	a := s.put(15, 7, "ก")

	s.Empty(Scan(s.board, []model.Coord{a}))
}

func (s *ScannerSuite) TestGapSplitsRuns() {
	a := s.put(15, 5, "ก")
	b := s.put(15, 7, "า")

	s.Empty(Scan(s.board, []model.Coord{a, b}))
}

func (s *ScannerSuite) TestTouchedTilesInSameRunDeduplicate() {
	a := s.put(15, 7, "ก")
	b := s.put(15, 8, "า")
	c := s.put(15, 9, "ร")

	words := Scan(s.board, []model.Coord{a, b, c})

	s.Require().Len(words, 1)
	s.Equal("การ", words[0].Text)
}

func (s *ScannerSuite) TestDiacriticsJoinTheirCluster() {
	a := s.put(15, 7, "ก")
	s.put(14, 7, "้")
	s.put(15, 8, "า")

	words := Scan(s.board, []model.Coord{a})

	s.Require().Len(words, 1)
	s.Equal("ก้า", words[0].Text)
	s.True(words[0].Coords.Has(model.Coord{Row: 14, Col: 7}))
	s.False(words[0].Coords.Has(model.Coord{Row: 16, Col: 7}), "empty diacritic cells are not recorded")
}

// Vertical tests

func (s *ScannerSuite) TestVerticalStepsOverDiacriticRows() {
	s.put(13, 7, "ม")
	touched := s.put(15, 7, "า")

	words := Scan(s.board, []model.Coord{touched})

	s.Require().Len(words, 1)
	s.Equal("มา", words[0].Text)
	s.Equal(model.RunKey{Axis: model.AxisVertical, Row: 13, Col: 7}, words[0].Key)
}

func (s *ScannerSuite) TestTouchedDiacriticScansItsColumn() {
	s.put(13, 7, "ก")
	mark := s.put(14, 7, "ิ")
	s.put(15, 7, "น")

	words := Scan(s.board, []model.Coord{mark})

	s.Require().Len(words, 1)
	s.Equal(model.AxisVertical, words[0].Key.Axis)
	s.Equal(13, words[0].Key.Row)
	s.True(words[0].Coords.Has(mark))
}

func (s *ScannerSuite) TestDiacriticDoesNotTriggerRowScan() {
	s.put(15, 7, "ก")
	s.put(15, 8, "า")
	mark := s.put(14, 7, "่")

	s.Empty(Scan(s.board, []model.Coord{mark}))
}

func (s *ScannerSuite) TestCrossingWordsAreBothReported() {
	s.put(13, 7, "ม")
	touched := s.put(15, 7, "า")
	s.put(15, 8, "ก")

	words := Scan(s.board, []model.Coord{touched})

	s.Require().Len(words, 2)
	s.Equal(model.AxisHorizontal, words[0].Key.Axis)
	s.Equal("าก", words[0].Text)
	s.Equal(model.AxisVertical, words[1].Key.Axis)
	s.Equal("มา", words[1].Text)
}

func (s *ScannerSuite) TestOutOfBoundsTouchedIsIgnored() {
	s.Empty(Scan(s.board, []model.Coord{{Row: -1, Col: 0}, {Row: 40, Col: 3}}))
}

// Purity tests

func (s *ScannerSuite) TestScanIsPure() {
	s.put(13, 7, "ม")
	a := s.put(15, 7, "า")
	b := s.put(15, 8, "ก")
	s.put(16, 8, "ุ")
	before := s.board.Clone()

	first := Scan(s.board, []model.Coord{a, b})
	second := Scan(s.board, []model.Coord{a, b})

	s.Equal(first, second)
	s.Equal(before, s.board)
}
