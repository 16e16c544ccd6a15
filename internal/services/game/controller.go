package game

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mcoot/kumkom/internal/dependencies/clock"
	"github.com/mcoot/kumkom/internal/dependencies/random"
	"github.com/mcoot/kumkom/internal/model"
	"github.com/mcoot/kumkom/internal/services/board"
	"github.com/mcoot/kumkom/internal/services/scoring"
	"github.com/mcoot/kumkom/internal/services/tiles"
	"github.com/mcoot/kumkom/internal/storage"
)

// WordValidator checks every candidate word of a turn against the lexicon
type WordValidator interface {
	ValidateAll(ctx context.Context, words []string) error
}

// Controller manages the match state machine and turn flow
type Controller struct {
	storage        storage.Storage
	boardService   *board.Service
	scoringService *scoring.Service
	tilesService   *tiles.Service
	validator      WordValidator
	publisher      Publisher
	clock          clock.Clock
	random         random.Random
	logger         *slog.Logger
	locks          *matchLocks
}

// NewController creates a new GameController
func NewController(
	storage storage.Storage,
	boardService *board.Service,
	scoringService *scoring.Service,
	tilesService *tiles.Service,
	validator WordValidator,
	publisher Publisher,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	return &Controller{
		storage:        storage,
		boardService:   boardService,
		scoringService: scoringService,
		tilesService:   tilesService,
		validator:      validator,
		publisher:      publisher,
		clock:          clock,
		random:         random,
		logger:         logger.With(slog.String("component", "game")),
		locks:          newMatchLocks(),
	}
}

// CreateMatch deals a fresh bag and fills both racks
func (c *Controller) CreateMatch(ctx context.Context, roomCode model.RoomCode, players []model.Player, mode model.MatchMode) (*model.Match, error) {
	if len(players) != 2 {
		return nil, model.ErrNeedTwoPlayers
	}
	m := c.newMatch(roomCode, players, mode)
	if mode != model.MatchModeBot {
		m.CurrentSide = c.random.Intn(2)
	}
	return m, c.startMatch(ctx, m)
}

// CreateBotMatch pits a player against the move generator, which always
// takes the second side
func (c *Controller) CreateBotMatch(ctx context.Context, player model.Player, strategy string) (*model.Match, error) {
	if !model.IsValidBotStrategy(strategy) {
		return nil, model.ErrUnknownBotType
	}
	bot := model.Player{
		ID:          model.PlayerID("bot-" + uuid.NewString()),
		DisplayName: model.BotStrategyDisplayName(strategy) + " Bot",
		IsBot:       true,
		CreatedAt:   c.clock.Now(),
	}
	m := c.newMatch("", []model.Player{player, bot}, model.MatchModeBot)
	m.Sides[1].BotStrategy = strategy
	return m, c.startMatch(ctx, m)
}

func (c *Controller) newMatch(roomCode model.RoomCode, players []model.Player, mode model.MatchMode) *model.Match {
	now := c.clock.Now()
	layout := c.boardService.Layout()
	m := &model.Match{
		ID:        model.MatchID(uuid.NewString()),
		Mode:      mode,
		RoomCode:  roomCode,
		Board:     model.NewBoard(len(layout.Cells), len(layout.Cells[0])),
		CreatedAt: now,
		UpdatedAt: now,
	}
	bag := c.tilesService.NewBag()
	for i, p := range players {
		var rack model.Rack
		rack, bag = c.tilesService.Fill(nil, bag)
		m.Sides[i] = model.Side{
			PlayerID:    p.ID,
			DisplayName: p.DisplayName,
			IsBot:       p.IsBot,
			Rack:        rack,
		}
	}
	m.Bag = bag
	return m
}

func (c *Controller) startMatch(ctx context.Context, m *model.Match) error {
	if err := c.storage.SaveMatch(ctx, m); err != nil {
		c.logger.Error("failed to save match",
			slog.String("match_id", string(m.ID)),
			slog.String("error", err.Error()),
		)
		return err
	}

	c.logger.Info("match created",
		slog.String("match_id", string(m.ID)),
		slog.String("mode", string(m.Mode)),
		slog.String("first_player", string(m.Current().PlayerID)),
		slog.Int("bag", len(m.Bag)),
	)
	c.publish(model.EventMatchStarted, m.ID, c.buildResult(m, "", ""))
	return nil
}

// GetMatch retrieves a match by ID
func (c *Controller) GetMatch(ctx context.Context, id model.MatchID) (*model.Match, error) {
	return c.storage.GetMatch(ctx, id)
}

// Result returns the current state of a match as a TurnResult snapshot
func (c *Controller) Result(ctx context.Context, id model.MatchID) (*model.TurnResult, error) {
	m, err := c.storage.GetMatch(ctx, id)
	if err != nil {
		return nil, err
	}
	return c.buildResult(m, "", ""), nil
}

// PlaceTile moves a rack tile onto a letter cell. Wildcard and dual tiles
// placed without a choice open a pending selection instead.
func (c *Controller) PlaceTile(ctx context.Context, id model.MatchID, playerID model.PlayerID, rackSlot int, coord model.Coord, choice string) (*model.Match, error) {
	m, err := c.mutate(ctx, id, playerID, true, func(m *model.Match) error {
		if m.Pending != nil {
			return model.ErrSelectionPending
		}
		side := m.Current()
		if rackSlot < 0 || rackSlot >= len(side.Rack) {
			return model.ErrRackSlot
		}
		if err := c.boardService.ValidateTileCell(m.Board, coord); err != nil {
			return err
		}
		if err := checkTarget(m, coord); err != nil {
			return err
		}

		tile := side.Rack[rackSlot]
		if !tile.NeedsSelection() {
			if choice != "" && choice != tile.Glyph {
				return model.ErrInvalidGlyph
			}
			placeFromRack(m, coord, rackSlot, tile.Glyph)
			return nil
		}
		if choice == "" {
			m.Pending = &model.PendingSelection{Coord: coord, RackSlot: rackSlot, Tile: tile}
			return nil
		}
		if !tile.AllowsGlyph(choice) {
			return model.ErrInvalidGlyph
		}
		placeFromRack(m, coord, rackSlot, choice)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if m.Pending != nil {
		c.publishChange(model.EventSelectionOpen, m, playerID, &coord)
	} else {
		c.publishChange(model.EventTilePlaced, m, playerID, &coord)
	}
	return m, nil
}

// PlaceDiacritic puts a free mark on a diacritic row next to a letter
func (c *Controller) PlaceDiacritic(ctx context.Context, id model.MatchID, playerID model.PlayerID, coord model.Coord, glyph string) (*model.Match, error) {
	m, err := c.mutate(ctx, id, playerID, true, func(m *model.Match) error {
		if m.Pending != nil {
			return model.ErrSelectionPending
		}
		if err := c.boardService.ValidateDiacriticCell(m.Board, coord, glyph); err != nil {
			return err
		}
		if err := checkTarget(m, coord); err != nil {
			return err
		}
		m.History = append(m.History, model.Placement{
			Coord:    coord,
			Glyph:    glyph,
			RackSlot: -1,
			Previous: previousCell(m.Board, coord),
		})
		return m.Board.Set(coord, model.Cell{Glyph: glyph})
	})
	if err != nil {
		return nil, err
	}

	c.publishChange(model.EventTilePlaced, m, playerID, &coord)
	return m, nil
}

// ChooseSubstitute resolves the pending selection and places the tile
func (c *Controller) ChooseSubstitute(ctx context.Context, id model.MatchID, playerID model.PlayerID, glyph string) (*model.Match, error) {
	var coord model.Coord
	m, err := c.mutate(ctx, id, playerID, true, func(m *model.Match) error {
		if m.Pending == nil {
			return model.ErrNoSelectionPending
		}
		pending := *m.Pending
		if !pending.Tile.AllowsGlyph(glyph) {
			return model.ErrInvalidGlyph
		}
		if pending.RackSlot >= len(m.Current().Rack) {
			return model.ErrRackSlot
		}
		m.Pending = nil
		coord = pending.Coord
		placeFromRack(m, pending.Coord, pending.RackSlot, glyph)
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.publishChange(model.EventTilePlaced, m, playerID, &coord)
	return m, nil
}

// CancelSelection abandons the pending selection; the tile stays on the rack
func (c *Controller) CancelSelection(ctx context.Context, id model.MatchID, playerID model.PlayerID) (*model.Match, error) {
	return c.mutate(ctx, id, playerID, true, func(m *model.Match) error {
		if m.Pending == nil {
			return model.ErrNoSelectionPending
		}
		m.Pending = nil
		return nil
	})
}

// Recall undoes every placement of the pending turn. Rack tiles return to
// the slots they came from, in their pre-substitution form.
func (c *Controller) Recall(ctx context.Context, id model.MatchID, playerID model.PlayerID) (*model.Match, error) {
	m, err := c.mutate(ctx, id, playerID, true, func(m *model.Match) error {
		m.Pending = nil
		c.recall(m)
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.publishChange(model.EventTurnRecalled, m, playerID, nil)
	return m, nil
}

func (c *Controller) recall(m *model.Match) {
	c.boardService.Restore(m.Board, m.History)
	side := m.Current()
	for i := len(m.History) - 1; i >= 0; i-- {
		p := m.History[i]
		if p.FromRack() {
			side.Rack = side.Rack.Insert(p.RackSlot, *p.Tile)
		}
	}
	m.History = nil
}

// CommitTurn validates and commits the pending turn. Words are checked
// against the lexicon without holding the match lock; if the turn changes
// meanwhile the results are discarded with ErrStaleValidation. On any
// rejection the pending tiles stay where they are.
func (c *Controller) CommitTurn(ctx context.Context, id model.MatchID, playerID model.PlayerID) (*model.TurnResult, error) {
	unlock := c.locks.lock(id)
	m, err := c.storage.GetMatch(ctx, id)
	if err != nil {
		unlock()
		return nil, err
	}
	words, err := c.prepareCommit(m, playerID)
	unlock()
	if err != nil {
		return nil, err
	}
	epoch := m.Epoch

	texts := make([]string, len(words))
	for i, w := range words {
		texts[i] = w.Text
	}
	if err := c.validator.ValidateAll(ctx, texts); err != nil {
		c.logger.Info("turn rejected",
			slog.String("match_id", string(id)),
			slog.String("player_id", string(playerID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	var result *model.TurnResult
	m, err = c.mutate(ctx, id, playerID, true, func(m *model.Match) error {
		if m.Epoch != epoch {
			return model.ErrStaleValidation
		}
		// identical epoch means an identical board, so the rescan matches
		words := c.boardService.ScanWords(m.Board, touchedCoords(m.History))
		result = c.applyCommit(m, words)
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.logger.Info("turn committed",
		slog.String("match_id", string(id)),
		slog.String("player_id", string(playerID)),
		slog.Int("words", len(result.Words)),
		slog.Int("score", result.ScoreDelta),
		slog.Int("bingo", result.Bingo),
	)
	c.publishResult(m, result)
	return result, nil
}

func (c *Controller) prepareCommit(m *model.Match, playerID model.PlayerID) ([]model.Word, error) {
	if err := c.checkActor(m, playerID, true); err != nil {
		return nil, err
	}
	if m.Pending != nil {
		return nil, model.ErrSelectionPending
	}
	words := c.boardService.ScanWords(m.Board, touchedCoords(m.History))
	if err := c.boardService.CheckLegality(m.Board, m.History, words, m.TurnCount); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, model.ErrNoWordFormed
	}
	return words, nil
}

// applyCommit scores the validated words, clears touched cells that are
// not part of any word, refills the rack and passes the turn
func (c *Controller) applyCommit(m *model.Match, words []model.Word) *model.TurnResult {
	side := m.Current()
	actor := side.PlayerID
	placed := m.Touched()

	keep := make(model.CoordSet)
	for _, w := range words {
		keep.Union(w.Coords)
	}
	committed := 0
	var displaced []model.Tile
	for _, p := range m.History {
		if !keep.Has(p.Coord) {
			continue
		}
		if p.FromRack() {
			committed++
		}
		if p.Previous != nil && p.Previous.Origin != nil {
			displaced = append(displaced, *p.Previous.Origin)
		}
	}

	score := c.scoringService.ScoreTurn(m.Board, words, placed, committed)

	for _, p := range c.boardService.Cleanup(m.Board, m.History, keep) {
		if p.FromRack() {
			side.Rack = append(side.Rack, *p.Tile)
		}
	}
	if len(displaced) > 0 {
		m.Bag = c.tilesService.Return(m.Bag, displaced)
	}

	side.Score += score.Total
	side.Rack, m.Bag = c.tilesService.Refill(side.Rack, m.Bag, committed)
	m.History = nil
	m.TurnCount++
	m.PassCount = 0
	m.CurrentSide = 1 - m.CurrentSide

	kind := c.checkEndOfGame(m, model.TurnKindCommit)
	m.Sequence++
	result := c.buildResult(m, kind, actor)
	result.Words = score.Words
	result.ScoreDelta = score.Total
	result.Bingo = score.Bingo
	return result
}

// Skip ends the turn without scoring. Rack tiles placed this turn are
// exchanged for fresh ones from the bag; with nothing placed it is a pass.
// Both count towards the stalemate limit.
func (c *Controller) Skip(ctx context.Context, id model.MatchID, playerID model.PlayerID) (*model.TurnResult, error) {
	var result *model.TurnResult
	m, err := c.mutate(ctx, id, playerID, true, func(m *model.Match) error {
		side := m.Current()
		kind := model.TurnKindPass
		m.Pending = nil

		var returned []model.Tile
		for _, p := range m.History {
			if p.FromRack() {
				returned = append(returned, *p.Tile)
			}
		}
		if len(returned) > 0 {
			rack, bag, err := c.tilesService.Exchange(side.Rack, m.Bag, returned)
			if err != nil {
				return err
			}
			c.boardService.Restore(m.Board, m.History)
			side.Rack, m.Bag = rack, bag
			kind = model.TurnKindExchange
		} else {
			c.boardService.Restore(m.Board, m.History)
		}
		m.History = nil

		m.PassCount++
		m.CurrentSide = 1 - m.CurrentSide
		kind = c.checkEndOfGame(m, kind)
		m.Sequence++
		result = c.buildResult(m, kind, side.PlayerID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.logger.Info("turn skipped",
		slog.String("match_id", string(id)),
		slog.String("player_id", string(playerID)),
		slog.String("kind", string(result.Kind)),
		slog.Int("pass_count", m.PassCount),
	)
	c.publishResult(m, result)
	return result, nil
}

// SwapRack exchanges two rack positions. Allowed out of turn.
func (c *Controller) SwapRack(ctx context.Context, id model.MatchID, playerID model.PlayerID, i, j int) (*model.Match, error) {
	return c.reorderRack(ctx, id, playerID, func(m *model.Match) error {
		if m.Pending != nil {
			return model.ErrSelectionPending
		}
		side := &m.Sides[m.SideIndex(playerID)]
		rack, err := c.tilesService.Swap(side.Rack, i, j)
		if err != nil {
			return err
		}
		side.Rack = rack
		return nil
	})
}

// ShuffleRack randomises the order of the player's rack. Allowed out of turn.
func (c *Controller) ShuffleRack(ctx context.Context, id model.MatchID, playerID model.PlayerID) (*model.Match, error) {
	return c.reorderRack(ctx, id, playerID, func(m *model.Match) error {
		if m.Pending != nil {
			return model.ErrSelectionPending
		}
		side := &m.Sides[m.SideIndex(playerID)]
		side.Rack = c.tilesService.ShuffleRack(side.Rack)
		return nil
	})
}

// ApplyRemoteResult adopts the opponent's authoritative TurnResult in a
// remote match. Results are ordered by Sequence; anything not newer than
// the current state is rejected.
func (c *Controller) ApplyRemoteResult(ctx context.Context, id model.MatchID, playerID model.PlayerID, result *model.TurnResult) (*model.Match, error) {
	m, err := c.mutate(ctx, id, playerID, false, func(m *model.Match) error {
		if m.Mode != model.MatchModeRemote {
			return model.ErrNotRemoteMatch
		}
		if result.Sequence <= m.Sequence {
			return model.ErrStaleResult
		}
		from := m.SideIndex(result.PlayerID)
		if from < 0 {
			return model.ErrNotInMatch
		}
		if from != m.CurrentSide {
			return model.ErrNotYourTurn
		}
		if result.Board == nil || result.Board.Rows != m.Board.Rows || result.Board.Cols != m.Board.Cols {
			return model.ErrInvalidPosition
		}
		if err := result.Board.Validate(); err != nil {
			return err
		}
		if result.NextSide != 0 && result.NextSide != 1 {
			return model.ErrInvalidPosition
		}

		c.recall(m)
		m.Pending = nil
		m.Board = result.Board.Clone()
		for _, s := range result.Scores {
			if i := m.SideIndex(s.PlayerID); i >= 0 {
				m.Sides[i].Score = s.Score
			}
		}
		if result.Bag != nil {
			m.Bag = append([]model.Tile(nil), result.Bag...)
		}
		m.CurrentSide = result.NextSide
		m.TurnCount = result.TurnCount
		m.PassCount = result.PassCount
		m.GameOver = result.GameOver
		m.Winner = result.Winner
		m.Sequence = result.Sequence
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.logger.Info("remote result applied",
		slog.String("match_id", string(id)),
		slog.String("from", string(result.PlayerID)),
		slog.Int("sequence", result.Sequence),
	)
	c.publishResult(m, result)
	return m, nil
}

// checkEndOfGame applies the normal end and stalemate rules after a turn.
// It returns the turn kind, which becomes reset when a stalemate clears the
// board.
func (c *Controller) checkEndOfGame(m *model.Match, kind model.TurnKind) model.TurnKind {
	if len(m.Bag) == 0 && (len(m.Sides[0].Rack) == 0 || len(m.Sides[1].Rack) == 0) {
		for i := range m.Sides {
			if len(m.Sides[i].Rack) == 0 {
				m.Sides[i].Score += 2 * c.scoringService.RackValue(m.Sides[1-i].Rack)
			}
		}
		c.finish(m, "out of tiles")
		return kind
	}

	if m.PassCount < model.StalemateLimit {
		return kind
	}

	if len(m.Bag) > 0 {
		var cleared []model.Tile
		for _, coord := range m.Board.OccupiedCoords() {
			if origin := m.Board.Get(coord).Origin; origin != nil {
				cleared = append(cleared, *origin)
			}
		}
		m.Board.Reset()
		m.Bag = c.tilesService.Return(m.Bag, cleared)
		m.TurnCount = 0
		m.PassCount = 0
		c.logger.Info("stalemate reset",
			slog.String("match_id", string(m.ID)),
			slog.Int("returned", len(cleared)),
			slog.Int("bag", len(m.Bag)),
		)
		return model.TurnKindReset
	}

	for i := range m.Sides {
		m.Sides[i].Score -= c.scoringService.RackValue(m.Sides[i].Rack)
	}
	c.finish(m, "stalemate")
	return kind
}

func (c *Controller) finish(m *model.Match, reason string) {
	m.GameOver = true
	m.Winner = c.scoringService.DetermineWinner(m.Sides)
	c.logger.Info("match over",
		slog.String("match_id", string(m.ID)),
		slog.String("reason", reason),
		slog.String("winner", string(m.Winner)),
		slog.Int("score_0", m.Sides[0].Score),
		slog.Int("score_1", m.Sides[1].Score),
	)
}

// mutate loads the match under its lock, applies fn and saves the result.
// Nothing is saved when fn fails. The epoch moves on, which discards any
// validation in flight for the pending turn.
func (c *Controller) mutate(ctx context.Context, id model.MatchID, playerID model.PlayerID, requireTurn bool, fn func(m *model.Match) error) (*model.Match, error) {
	return c.update(ctx, id, playerID, requireTurn, true, fn)
}

// reorderRack is mutate for changes confined to the player's rack order,
// which leave the pending turn and its epoch alone
func (c *Controller) reorderRack(ctx context.Context, id model.MatchID, playerID model.PlayerID, fn func(m *model.Match) error) (*model.Match, error) {
	return c.update(ctx, id, playerID, false, false, fn)
}

func (c *Controller) update(ctx context.Context, id model.MatchID, playerID model.PlayerID, requireTurn, bumpEpoch bool, fn func(m *model.Match) error) (*model.Match, error) {
	unlock := c.locks.lock(id)
	defer unlock()

	m, err := c.storage.GetMatch(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := c.checkActor(m, playerID, requireTurn); err != nil {
		return nil, err
	}
	if err := fn(m); err != nil {
		return nil, err
	}

	if bumpEpoch {
		m.Epoch++
	}
	m.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveMatch(ctx, m); err != nil {
		c.logger.Error("failed to save match",
			slog.String("match_id", string(m.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}
	return m, nil
}

func (c *Controller) checkActor(m *model.Match, playerID model.PlayerID, requireTurn bool) error {
	if m.GameOver {
		c.logger.Error("mutation attempted after game over",
			slog.String("match_id", string(m.ID)),
			slog.String("player_id", string(playerID)),
		)
		return model.ErrGameOver
	}
	side := m.SideIndex(playerID)
	if side < 0 {
		return model.ErrNotInMatch
	}
	if requireTurn && side != m.CurrentSide {
		return model.ErrNotYourTurn
	}
	return nil
}

// checkTarget allows an empty cell, or one overwrite per turn of a cell
// that was occupied before the turn started
func checkTarget(m *model.Match, coord model.Coord) error {
	if !m.Board.Occupied(coord) {
		return nil
	}
	if m.Touched().Has(coord) {
		return model.ErrCellOccupied
	}
	if m.Overwrites() >= 1 {
		return model.ErrDoubleOverwrite
	}
	return nil
}

func placeFromRack(m *model.Match, coord model.Coord, slot int, glyph string) {
	side := m.Current()
	tile := side.Rack[slot]
	origin := tile
	m.History = append(m.History, model.Placement{
		Coord:    coord,
		Glyph:    glyph,
		Tile:     &tile,
		RackSlot: slot,
		Previous: previousCell(m.Board, coord),
	})
	_ = m.Board.Set(coord, model.Cell{Glyph: glyph, Origin: &origin})
	side.Rack = side.Rack.Remove(slot)
}

func previousCell(b *model.Board, coord model.Coord) *model.Cell {
	cell := b.Get(coord)
	if cell.IsEmpty() {
		return nil
	}
	return &cell
}

func touchedCoords(history []model.Placement) []model.Coord {
	coords := make([]model.Coord, len(history))
	for i, p := range history {
		coords[i] = p.Coord
	}
	return coords
}

func (c *Controller) buildResult(m *model.Match, kind model.TurnKind, actor model.PlayerID) *model.TurnResult {
	return &model.TurnResult{
		MatchID:  m.ID,
		Kind:     kind,
		Sequence: m.Sequence,
		PlayerID: actor,
		Board:    m.Board.Clone(),
		Scores: [2]model.SideScore{
			{PlayerID: m.Sides[0].PlayerID, Score: m.Sides[0].Score},
			{PlayerID: m.Sides[1].PlayerID, Score: m.Sides[1].Score},
		},
		NextSide:     m.CurrentSide,
		NextPlayer:   m.Current().PlayerID,
		BagRemaining: len(m.Bag),
		Bag:          append([]model.Tile(nil), m.Bag...),
		TurnCount:    m.TurnCount,
		PassCount:    m.PassCount,
		GameOver:     m.GameOver,
		Winner:       m.Winner,
	}
}

func (c *Controller) publish(t model.EventType, id model.MatchID, payload any) {
	c.publisher.Publish(model.Event{Type: t, MatchID: id, Payload: payload})
}

func (c *Controller) publishChange(t model.EventType, m *model.Match, playerID model.PlayerID, coord *model.Coord) {
	c.publish(t, m.ID, model.BoardChange{PlayerID: playerID, Coord: coord, Board: m.Board.Clone()})
}

func (c *Controller) publishResult(m *model.Match, result *model.TurnResult) {
	c.publish(model.EventTurnResult, m.ID, result)
	if m.GameOver {
		c.publish(model.EventMatchCompleted, m.ID, result)
	}
}
