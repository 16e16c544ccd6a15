package board

import (
	"log/slog"

	"github.com/mcoot/kumkom/internal/model"
)

// Service provides placement legality checks and board bookkeeping on top of
// the word scanner
type Service struct {
	layout *model.Layout
	logger *slog.Logger
}

// New creates a new BoardService for the given premium layout
func New(layout *model.Layout, logger *slog.Logger) *Service {
	return &Service{
		layout: layout,
		logger: logger.With(slog.String("component", "board")),
	}
}

// Layout returns the premium layout the service was built with
func (s *Service) Layout() *model.Layout {
	return s.layout
}

// ScanWords runs the word scanner over the given touched coordinates
func (s *Service) ScanWords(b *model.Board, touched []model.Coord) []model.Word {
	return Scan(b, touched)
}

// ValidateTileCell checks that a rack tile may go at c
func (s *Service) ValidateTileCell(b *model.Board, c model.Coord) error {
	if !b.InBounds(c) {
		return model.ErrInvalidPosition
	}
	if !c.IsLetterRow() {
		return model.ErrWrongRow
	}
	return nil
}

// ValidateDiacriticCell checks that a free diacritic may go at c
func (s *Service) ValidateDiacriticCell(b *model.Board, c model.Coord, glyph string) error {
	if !b.InBounds(c) {
		return model.ErrInvalidPosition
	}
	if c.IsLetterRow() {
		return model.ErrWrongRow
	}
	if !model.IsFreeDiacritic(glyph) {
		return model.ErrInvalidGlyph
	}
	if !b.Occupied(c.Offset(-1, 0)) && !b.Occupied(c.Offset(1, 0)) {
		return model.ErrNoLetterBelow
	}
	return nil
}

// LetterNeighbors returns the letter cells orthogonally adjacent to c on the
// letter axis: the same column two grid rows away and the same row one
// column away. Diacritic cells never connect tiles.
func LetterNeighbors(b *model.Board, c model.Coord) []model.Coord {
	candidates := []model.Coord{
		c.Offset(-2, 0), c.Offset(2, 0),
		c.Offset(0, -1), c.Offset(0, 1),
	}
	out := candidates[:0]
	for _, n := range candidates {
		if b.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// CheckLegality applies the placement rules to a pending turn. Only cells
// that survive commit count: those inside a scanned word, or every touched
// cell when no word formed. On turn 0 the star must survive. Every surviving
// rack tile must reach an anchor along the letter axis, directly or through
// other surviving rack tiles. Anchors are the star on turn 0, a surviving
// overwrite, and a rack tile next to a letter that was on the board before
// the turn.
func (s *Service) CheckLegality(b *model.Board, history []model.Placement, words []model.Word, turnCount int) error {
	if len(history) == 0 {
		return model.ErrNothingPlaced
	}

	touched := make(model.CoordSet, len(history))
	for _, p := range history {
		touched.Add(p.Coord)
	}
	survivors := touched
	if len(words) > 0 {
		survivors = make(model.CoordSet)
		for _, w := range words {
			survivors.Union(w.Coords)
		}
	}

	star := s.layout.Star()
	if turnCount == 0 && (!touched.Has(star) || !survivors.Has(star)) {
		return model.ErrMustCoverCenter
	}

	tiles := make(model.CoordSet)
	attached := make(model.CoordSet)
	var queue []model.Coord
	for _, p := range history {
		if !survivors.Has(p.Coord) {
			continue
		}
		if p.FromRack() {
			tiles.Add(p.Coord)
		}
		anchor := p.Previous != nil ||
			(turnCount == 0 && p.Coord == star) ||
			(p.FromRack() && touchesBoard(b, p.Coord, touched))
		if anchor && !attached.Has(p.Coord) {
			attached.Add(p.Coord)
			queue = append(queue, p.Coord)
		}
	}

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, n := range LetterNeighbors(b, c) {
			if tiles.Has(n) && !attached.Has(n) {
				attached.Add(n)
				queue = append(queue, n)
			}
		}
	}

	for c := range tiles {
		if !attached.Has(c) {
			return model.ErrMustConnect
		}
	}
	return nil
}

// touchesBoard reports whether a letter-axis neighbour of c was occupied
// before the turn
func touchesBoard(b *model.Board, c model.Coord, touched model.CoordSet) bool {
	for _, n := range LetterNeighbors(b, c) {
		if b.Occupied(n) && !touched.Has(n) {
			return true
		}
	}
	return false
}

// Restore puts every history cell back to its previous occupant, newest first
func (s *Service) Restore(b *model.Board, history []model.Placement) {
	for i := len(history) - 1; i >= 0; i-- {
		p := history[i]
		if p.Previous != nil {
			_ = b.Set(p.Coord, *p.Previous)
		} else {
			b.Clear(p.Coord)
		}
	}
}

// Cleanup restores every history cell that is not in keep and returns the
// placements that were undone
func (s *Service) Cleanup(b *model.Board, history []model.Placement, keep model.CoordSet) []model.Placement {
	var removed []model.Placement
	for i := len(history) - 1; i >= 0; i-- {
		p := history[i]
		if keep.Has(p.Coord) {
			continue
		}
		if p.Previous != nil {
			_ = b.Set(p.Coord, *p.Previous)
		} else {
			b.Clear(p.Coord)
		}
		removed = append(removed, p)
	}
	if len(removed) > 0 {
		s.logger.Debug("cleared cells outside validated words",
			slog.Int("removed", len(removed)),
		)
	}
	return removed
}

// Interface for dependency injection
type ServiceInterface interface {
	Layout() *model.Layout
	ScanWords(b *model.Board, touched []model.Coord) []model.Word
	ValidateTileCell(b *model.Board, c model.Coord) error
	ValidateDiacriticCell(b *model.Board, c model.Coord, glyph string) error
	CheckLegality(b *model.Board, history []model.Placement, words []model.Word, turnCount int) error
	Restore(b *model.Board, history []model.Placement)
	Cleanup(b *model.Board, history []model.Placement, keep model.CoordSet) []model.Placement
}

var _ ServiceInterface = (*Service)(nil)
