package bot

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mcoot/kumkom/internal/model"
	"github.com/mcoot/kumkom/internal/services/game"
)

// MaxBotIterations is a safety limit for the PlayTurns loop
const MaxBotIterations = 100

// BotActionType represents the type of action a bot took
type BotActionType string

const (
	ActionCommit       BotActionType = "commit"
	ActionPass         BotActionType = "pass"
	ActionGameComplete BotActionType = "game_complete"
)

// BotAction represents a single turn taken by a bot during PlayTurns
type BotAction struct {
	Type     BotActionType
	PlayerID model.PlayerID
	Move     *Move
	Result   *model.TurnResult
}

// Service drives bot sides through the same controller path as players
type Service struct {
	gameController *game.Controller
	generator      *Generator
	logger         *slog.Logger
}

// NewService creates a new bot Service
func NewService(gameController *game.Controller, generator *Generator, logger *slog.Logger) *Service {
	return &Service{
		gameController: gameController,
		generator:      generator,
		logger:         logger.With(slog.String("component", "bot-service")),
	}
}

// Propose exposes the generator for callers holding their own board and rack
func (s *Service) Propose(ctx context.Context, req ProposeRequest) (*Move, error) {
	return s.generator.Propose(ctx, req)
}

// PlayTurn plays one turn for the bot side on turn: place the proposed
// tiles and commit, or pass when nothing is found or the commit is refused
func (s *Service) PlayTurn(ctx context.Context, matchID model.MatchID) (*BotAction, error) {
	m, err := s.gameController.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if m.GameOver {
		return nil, model.ErrGameOver
	}
	side := m.Current()
	if !side.IsBot {
		return nil, model.ErrNotYourTurn
	}
	botID := side.PlayerID

	// anything left over from an interrupted turn goes back to the rack
	if len(m.History) > 0 || m.Pending != nil {
		if m, err = s.gameController.Recall(ctx, matchID, botID); err != nil {
			return nil, err
		}
	}

	move, err := s.generator.Propose(ctx, ProposeRequest{
		Board:     m.Board,
		Rack:      m.Current().Rack,
		TurnCount: m.TurnCount,
		Strategy:  m.Current().BotStrategy,
	})
	if err != nil {
		return nil, err
	}
	if move == nil {
		return s.pass(ctx, matchID, botID, nil)
	}

	if err := s.place(ctx, matchID, botID, move); err != nil {
		s.logger.Warn("bot placement refused",
			slog.String("match_id", string(matchID)),
			slog.String("error", err.Error()),
		)
		return s.recallAndPass(ctx, matchID, botID, move)
	}

	result, err := s.gameController.CommitTurn(ctx, matchID, botID)
	if err != nil {
		if errors.Is(err, model.ErrGameOver) || errors.Is(err, model.ErrNotYourTurn) {
			return nil, err
		}
		s.logger.Warn("bot commit refused",
			slog.String("match_id", string(matchID)),
			slog.String("error", err.Error()),
		)
		return s.recallAndPass(ctx, matchID, botID, move)
	}

	s.logger.Info("bot committed",
		slog.String("match_id", string(matchID)),
		slog.String("bot_id", string(botID)),
		slog.Int("tiles", len(move.Placements)),
		slog.Int("score", result.ScoreDelta),
	)
	return &BotAction{Type: ActionCommit, PlayerID: botID, Move: move, Result: result}, nil
}

func (s *Service) place(ctx context.Context, matchID model.MatchID, botID model.PlayerID, move *Move) error {
	for i, slot := range move.Slots() {
		p := move.Placements[i]
		if _, err := s.gameController.PlaceTile(ctx, matchID, botID, slot, p.Coord, p.Glyph); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) recallAndPass(ctx context.Context, matchID model.MatchID, botID model.PlayerID, move *Move) (*BotAction, error) {
	if _, err := s.gameController.Recall(ctx, matchID, botID); err != nil {
		return nil, err
	}
	return s.pass(ctx, matchID, botID, move)
}

func (s *Service) pass(ctx context.Context, matchID model.MatchID, botID model.PlayerID, move *Move) (*BotAction, error) {
	result, err := s.gameController.Skip(ctx, matchID, botID)
	if err != nil {
		return nil, err
	}
	s.logger.Info("bot passed",
		slog.String("match_id", string(matchID)),
		slog.String("bot_id", string(botID)),
	)
	return &BotAction{Type: ActionPass, PlayerID: botID, Move: move, Result: result}, nil
}

// PlayTurns plays bot turns until a human is on turn or the match ends.
// It returns every action so handlers can broadcast them.
func (s *Service) PlayTurns(ctx context.Context, matchID model.MatchID) ([]BotAction, error) {
	var actions []BotAction

	for i := 0; i < MaxBotIterations; i++ {
		m, err := s.gameController.GetMatch(ctx, matchID)
		if err != nil {
			return actions, err
		}
		if m.GameOver {
			if len(actions) > 0 {
				actions = append(actions, BotAction{Type: ActionGameComplete})
			}
			break
		}
		if !m.Current().IsBot {
			break
		}

		action, err := s.PlayTurn(ctx, matchID)
		if err != nil {
			return actions, err
		}
		actions = append(actions, *action)
	}

	return actions, nil
}
