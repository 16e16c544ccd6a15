package bot_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/kumkom/internal/dependencies/mocks"
	"github.com/mcoot/kumkom/internal/model"
	"github.com/mcoot/kumkom/internal/services/board"
	"github.com/mcoot/kumkom/internal/services/bot"
	"github.com/mcoot/kumkom/internal/services/dictionary"
	"github.com/mcoot/kumkom/internal/services/game"
	"github.com/mcoot/kumkom/internal/services/scoring"
	"github.com/mcoot/kumkom/internal/services/tiles"
	"github.com/mcoot/kumkom/internal/storage/memory"
	"github.com/mcoot/kumkom/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	store      *memory.Storage
	mockClock  *mocks.MockClock
	mockRandom *mocks.MockRandom

	gameController *game.Controller
	botService     *bot.Service

	human model.Player
	ctx   context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.store = memory.New()
	s.mockClock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.mockRandom = mocks.NewMockRandom()
	logger := testutil.NopLogger()
	s.ctx = context.Background()

	layout := model.StandardLayout()
	boardService := board.New(layout, logger)
	scoringService := scoring.New(layout)
	dictService := dictionary.New(dictionary.NewStoreLexicon(s.store), logger)
	s.Require().NoError(dictService.LoadWords(s.ctx, []string{"กา"}))

	s.gameController = game.NewController(s.store, boardService, scoringService, tiles.New(s.mockRandom),
		dictService, nil, s.mockClock, s.mockRandom, logger)
	config := bot.DefaultConfig()
	generator := bot.NewGenerator(boardService, scoringService, dictService,
		bot.DefaultStrategies(config), s.mockRandom, config, logger)
	s.botService = bot.NewService(s.gameController, generator, logger)

	s.human = model.Player{ID: "human-1", DisplayName: "Alice"}
}

// botOnTurn creates a bot match, hands the bot the given rack and passes
// the human's first turn
func (s *ServiceSuite) botOnTurn(rack ...string) *model.Match {
	m, err := s.gameController.CreateBotMatch(s.ctx, s.human, model.BotStrategyGreedy)
	s.Require().NoError(err)

	stored, err := s.store.GetMatch(s.ctx, m.ID)
	s.Require().NoError(err)
	stored.Sides[1].Rack = rackOf(rack...)
	s.Require().NoError(s.store.SaveMatch(s.ctx, stored))

	_, err = s.gameController.Skip(s.ctx, m.ID, s.human.ID)
	s.Require().NoError(err)
	return stored
}

// PlayTurn tests

func (s *ServiceSuite) TestPlayTurnCommitsMove() {
	m := s.botOnTurn("ก", "า")

	action, err := s.botService.PlayTurn(s.ctx, m.ID)
	s.Require().NoError(err)

	s.Equal(bot.ActionCommit, action.Type)
	s.Equal(m.Sides[1].PlayerID, action.PlayerID)
	s.Require().NotNil(action.Result)
	s.Equal(4, action.Result.ScoreDelta)
	s.Equal(s.human.ID, action.Result.NextPlayer)

	updated, err := s.gameController.GetMatch(s.ctx, m.ID)
	s.Require().NoError(err)
	s.Equal(4, updated.Sides[1].Score)
	s.Equal("ก", updated.Board.Glyph(star))
	s.Equal(1, updated.TurnCount)
}

func (s *ServiceSuite) TestPlayTurnPassesWithoutMove() {
	m := s.botOnTurn("ข", "ค")

	action, err := s.botService.PlayTurn(s.ctx, m.ID)
	s.Require().NoError(err)

	s.Equal(bot.ActionPass, action.Type)
	s.Nil(action.Move)
	s.Equal(model.TurnKindPass, action.Result.Kind)
	s.Equal(2, action.Result.PassCount)
}

func (s *ServiceSuite) TestPlayTurnRequiresBotOnTurn() {
	m, err := s.gameController.CreateBotMatch(s.ctx, s.human, model.BotStrategyGreedy)
	s.Require().NoError(err)

	_, err = s.botService.PlayTurn(s.ctx, m.ID)
	s.ErrorIs(err, model.ErrNotYourTurn)
}

func (s *ServiceSuite) TestPlayTurnsStopsAtHuman() {
	m := s.botOnTurn("ก", "า")

	actions, err := s.botService.PlayTurns(s.ctx, m.ID)
	s.Require().NoError(err)
	s.Require().Len(actions, 1)
	s.Equal(bot.ActionCommit, actions[0].Type)

	updated, err := s.gameController.GetMatch(s.ctx, m.ID)
	s.Require().NoError(err)
	s.Equal(s.human.ID, updated.Current().PlayerID)
}

func (s *ServiceSuite) TestPlayTurnsNoopOnHumanTurn() {
	m, err := s.gameController.CreateBotMatch(s.ctx, s.human, model.BotStrategyGreedy)
	s.Require().NoError(err)

	actions, err := s.botService.PlayTurns(s.ctx, m.ID)
	s.Require().NoError(err)
	s.Empty(actions)
}
