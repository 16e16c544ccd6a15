package bot

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/mcoot/kumkom/internal/dependencies/random"
	"github.com/mcoot/kumkom/internal/model"
	"github.com/mcoot/kumkom/internal/services/board"
	"github.com/mcoot/kumkom/internal/services/scoring"
)

// WordChecker answers single-word lexicon lookups
type WordChecker interface {
	IsValidWord(ctx context.Context, word string) (bool, error)
}

// Config bounds the search
type Config struct {
	MaxAnchors    int // anchors sampled per proposal
	MaxCandidates int // candidates evaluated per proposal
	EarlyExit     int // greedy stops once a move scores this much
	LengthBias    int // rank bonus per tile placed
}

// DefaultConfig returns the search bounds used by the server
func DefaultConfig() Config {
	return Config{
		MaxAnchors:    12,
		MaxCandidates: 600,
		EarlyExit:     40,
		LengthBias:    2,
	}
}

// commonGlyphs are the letters a wildcard tries in the middle of a
// three-tile run, most frequent first
var commonGlyphs = []string{"า", "น", "ร", "ก", "อ", "ง", "ม", "ย"}

// Placement is one tile of a proposed move. RackSlot indexes the rack the
// move was generated from.
type Placement struct {
	Coord    model.Coord `json:"coord"`
	Glyph    string      `json:"glyph"`
	RackSlot int         `json:"rack_slot"`
	Wildcard bool        `json:"wildcard,omitempty"`
}

// Move is a validated, scored placement set
type Move struct {
	Placements []Placement        `json:"placements"`
	Words      []model.ScoredWord `json:"words"`
	Score      int                `json:"score"`
	Rank       int                `json:"rank"`
}

// Slots returns the rack slot to use for each placement when the tiles are
// placed one after another, each removal shifting later slots down
func (m *Move) Slots() []int {
	slots := make([]int, len(m.Placements))
	for i, p := range m.Placements {
		slot := p.RackSlot
		for _, earlier := range m.Placements[:i] {
			if earlier.RackSlot < p.RackSlot {
				slot--
			}
		}
		slots[i] = slot
	}
	return slots
}

// ProposeRequest is the input to a proposal
type ProposeRequest struct {
	Board     *model.Board
	Rack      model.Rack
	TurnCount int
	Strategy  string
}

// Generator searches for moves without touching the authoritative board
type Generator struct {
	boardService   *board.Service
	scoringService *scoring.Service
	checker        WordChecker
	strategies     map[string]Strategy
	random         random.Random
	config         Config
	logger         *slog.Logger
}

// NewGenerator creates a new move Generator
func NewGenerator(
	boardService *board.Service,
	scoringService *scoring.Service,
	checker WordChecker,
	strategies map[string]Strategy,
	rnd random.Random,
	config Config,
	logger *slog.Logger,
) *Generator {
	return &Generator{
		boardService:   boardService,
		scoringService: scoringService,
		checker:        checker,
		strategies:     strategies,
		random:         rnd,
		config:         config,
		logger:         logger.With(slog.String("component", "bot-generator")),
	}
}

// tileOption is one way of playing a rack tile
type tileOption struct {
	slot  int
	glyph string
	tile  model.Tile
}

// candidate is a tentative placement set
type candidate []tileOption

type search struct {
	req       ProposeRequest
	strategy  Strategy
	memo      map[string]bool
	seen      map[string]struct{}
	best      *Move
	evaluated int
}

// Propose returns the best move found within the search budget, or nil when
// no legal move was found
func (g *Generator) Propose(ctx context.Context, req ProposeRequest) (*Move, error) {
	if req.Board == nil {
		return nil, model.ErrInvalidPosition
	}
	strategy, err := g.strategyFor(req.Strategy)
	if err != nil {
		return nil, err
	}

	s := &search{
		req:      req,
		strategy: strategy,
		memo:     make(map[string]bool),
		seen:     make(map[string]struct{}),
	}

	options, wildcard := rackOptions(req.Rack)
	anchors := g.sampleAnchors(req.Board)

	for _, anchor := range anchors {
		stop, err := g.searchAnchor(ctx, s, anchor, options, wildcard)
		if err != nil {
			return nil, err
		}
		if stop {
			break
		}
	}

	g.logger.Debug("proposal finished",
		slog.Int("anchors", len(anchors)),
		slog.Int("evaluated", s.evaluated),
		slog.Bool("found", s.best != nil),
	)
	return s.best, nil
}

func (g *Generator) strategyFor(name string) (Strategy, error) {
	if name == "" {
		name = model.BotStrategyGreedy
	}
	strategy, ok := g.strategies[name]
	if !ok {
		return nil, model.ErrUnknownBotType
	}
	return strategy, nil
}

// Anchors returns the empty letter cells next to an occupied cell, or the
// star when the board is empty
func (g *Generator) Anchors(b *model.Board) []model.Coord {
	if b.IsEmpty() {
		return []model.Coord{g.boardService.Layout().Star()}
	}
	var anchors []model.Coord
	for r := 1; r < b.Rows; r += 2 {
		for c := 0; c < b.Cols; c++ {
			coord := model.Coord{Row: r, Col: c}
			if b.Occupied(coord) {
				continue
			}
			for _, n := range board.LetterNeighbors(b, coord) {
				if b.Occupied(n) {
					anchors = append(anchors, coord)
					break
				}
			}
		}
	}
	return anchors
}

func (g *Generator) sampleAnchors(b *model.Board) []model.Coord {
	anchors := g.Anchors(b)
	for i := len(anchors) - 1; i > 0; i-- {
		j := g.random.Intn(i + 1)
		anchors[i], anchors[j] = anchors[j], anchors[i]
	}
	if g.config.MaxAnchors > 0 && len(anchors) > g.config.MaxAnchors {
		anchors = anchors[:g.config.MaxAnchors]
	}
	return anchors
}

// rackOptions lists every playable (slot, glyph) pair except wildcards,
// which are kept for three-tile runs
func rackOptions(rack model.Rack) (options []tileOption, wildcard int) {
	wildcard = -1
	for slot, tile := range rack {
		switch tile.Kind {
		case model.TileWildcard:
			if wildcard < 0 {
				wildcard = slot
			}
		case model.TileDual:
			for _, o := range tile.Options {
				options = append(options, tileOption{slot: slot, glyph: o, tile: tile})
			}
		default:
			options = append(options, tileOption{slot: slot, glyph: tile.Glyph, tile: tile})
		}
	}
	return options, wildcard
}

// searchAnchor tries single tiles, two-tile runs in both axes and, with a
// wildcard in hand, three-tile runs around the anchor
func (g *Generator) searchAnchor(ctx context.Context, s *search, anchor model.Coord, options []tileOption, wildcard int) (bool, error) {
	try := func(coords []model.Coord, cand candidate) (bool, error) {
		if g.config.MaxCandidates > 0 && s.evaluated >= g.config.MaxCandidates {
			return true, nil
		}
		if err := g.evaluate(ctx, s, coords, cand); err != nil {
			return true, err
		}
		return s.strategy.Done(s.best), nil
	}

	for _, o := range options {
		if stop, err := try([]model.Coord{anchor}, candidate{o}); stop || err != nil {
			return stop, err
		}
	}

	pairs := [][]model.Coord{
		{anchor, anchor.Offset(0, 1)},
		{anchor.Offset(0, -1), anchor},
		{anchor, anchor.Offset(2, 0)},
		{anchor.Offset(-2, 0), anchor},
	}
	for _, coords := range pairs {
		if !g.free(s.req.Board, coords) {
			continue
		}
		for _, a := range options {
			for _, b := range options {
				if a.slot == b.slot {
					continue
				}
				if stop, err := try(coords, candidate{a, b}); stop || err != nil {
					return stop, err
				}
			}
		}
	}

	if wildcard < 0 {
		return false, nil
	}
	blank := s.req.Rack[wildcard]
	triples := [][]model.Coord{
		{anchor, anchor.Offset(0, 1), anchor.Offset(0, 2)},
		{anchor, anchor.Offset(2, 0), anchor.Offset(4, 0)},
	}
	for _, coords := range triples {
		if !g.free(s.req.Board, coords) {
			continue
		}
		for _, glyph := range commonGlyphs {
			middle := tileOption{slot: wildcard, glyph: glyph, tile: blank}
			for _, a := range options {
				for _, b := range options {
					if a.slot == b.slot {
						continue
					}
					if stop, err := try(coords, candidate{a, middle, b}); stop || err != nil {
						return stop, err
					}
				}
			}
		}
	}
	return false, nil
}

func (g *Generator) free(b *model.Board, coords []model.Coord) bool {
	for _, c := range coords {
		if !b.InBounds(c) || !c.IsLetterRow() || b.Occupied(c) {
			return false
		}
	}
	return true
}

// evaluate places the candidate on a scratch board and keeps it if every
// word it forms is valid and the strategy prefers it
func (g *Generator) evaluate(ctx context.Context, s *search, coords []model.Coord, cand candidate) error {
	if !g.free(s.req.Board, coords) {
		return nil
	}
	key := candidateKey(coords, cand)
	if _, ok := s.seen[key]; ok {
		return nil
	}
	s.seen[key] = struct{}{}
	s.evaluated++

	scratch := s.req.Board.Clone()
	history := make([]model.Placement, len(cand))
	placed := make(model.CoordSet, len(cand))
	for i, o := range cand {
		tile := o.tile
		_ = scratch.Set(coords[i], model.Cell{Glyph: o.glyph, Origin: &tile})
		history[i] = model.Placement{Coord: coords[i], Glyph: o.glyph, Tile: &tile, RackSlot: o.slot}
		placed.Add(coords[i])
	}
	words := g.boardService.ScanWords(scratch, coords)
	if len(words) == 0 {
		return nil
	}
	if err := g.boardService.CheckLegality(scratch, history, words, s.req.TurnCount); err != nil {
		return nil
	}
	// a tile outside every word would be cleared on commit
	covered := make(model.CoordSet)
	for _, w := range words {
		covered.Union(w.Coords)
	}
	for _, c := range coords {
		if !covered.Has(c) {
			return nil
		}
	}

	for _, w := range words {
		ok, err := g.check(ctx, s, w.Text)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}

	score := g.scoringService.ScoreTurn(scratch, words, placed, len(cand))
	move := &Move{
		Words: score.Words,
		Score: score.Total,
		Rank:  score.Total + g.config.LengthBias*len(cand),
	}
	for i, o := range cand {
		move.Placements = append(move.Placements, Placement{
			Coord:    coords[i],
			Glyph:    o.glyph,
			RackSlot: o.slot,
			Wildcard: o.tile.Kind == model.TileWildcard,
		})
	}
	if s.strategy.Better(move, s.best) {
		s.best = move
	}
	return nil
}

// check looks a word up once per proposal. Gateway failures count as
// invalid; only cancellation aborts the search.
func (g *Generator) check(ctx context.Context, s *search, word string) (bool, error) {
	if ok, cached := s.memo[word]; cached {
		return ok, nil
	}
	ok, err := g.checker.IsValidWord(ctx, word)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
			return false, err
		}
		g.logger.Warn("word lookup failed during search",
			slog.String("word", word),
			slog.String("error", err.Error()),
		)
		ok = false
	}
	s.memo[word] = ok
	return ok, nil
}

func candidateKey(coords []model.Coord, cand candidate) string {
	var sb strings.Builder
	for i, o := range cand {
		sb.WriteString(coords[i].String())
		sb.WriteString(o.glyph)
		sb.WriteByte('|')
	}
	return sb.String()
}
