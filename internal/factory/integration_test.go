package factory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/kumkom/internal/model"
	"github.com/mcoot/kumkom/internal/services/auth"
	"github.com/mcoot/kumkom/internal/services/bot"
)

var star = model.Coord{Row: 15, Col: 7}

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
	s.Require().NoError(s.app.LoadTestDictionary())
}

func (s *IntegrationSuite) TearDownTest() {
	s.app.Close()
}

func (s *IntegrationSuite) createPlayer(id, name string) model.Player {
	return model.Player{
		ID:          model.PlayerID(id),
		DisplayName: name,
		CreatedAt:   s.app.MockClock.Now(),
	}
}

func (s *IntegrationSuite) setRack(id model.MatchID, side int, glyphs ...string) {
	m, err := s.app.Storage.GetMatch(s.ctx, id)
	s.Require().NoError(err)
	rack := make(model.Rack, 0, len(glyphs))
	for _, g := range glyphs {
		tile, err := model.ParseTile(g)
		s.Require().NoError(err)
		rack = append(rack, tile)
	}
	// keep the tile total intact by trading with the bag
	s.Require().GreaterOrEqual(len(m.Bag), len(m.Sides[side].Rack))
	m.Bag = append(m.Bag, m.Sides[side].Rack...)
	m.Bag = m.Bag[len(rack):]
	m.Sides[side].Rack = rack
	s.Require().NoError(s.app.Storage.SaveMatch(s.ctx, m))
}

// Test: a room fills, the host opens on the star and the turn passes over
func (s *IntegrationSuite) TestRoomToFirstCommit() {
	s.app.MockRandom.QueueString("ROOM01")

	host := s.createPlayer("host", "Host Player")
	guest := s.createPlayer("guest", "Guest Player")

	room, err := s.app.LobbyController.CreateRoom(s.ctx, host)
	s.Require().NoError(err)
	s.Equal(model.RoomCode("ROOM01"), room.Code)

	room, err = s.app.LobbyController.JoinRoom(s.ctx, room.Code, guest)
	s.Require().NoError(err)
	s.Equal(model.RoomStateInMatch, room.State)
	s.Require().NotNil(room.MatchID)
	matchID := *room.MatchID

	m, err := s.app.GameController.GetMatch(s.ctx, matchID)
	s.Require().NoError(err)
	s.Equal(host.ID, m.Current().PlayerID)
	total := m.TileCount()

	s.setRack(matchID, 0, "ก", "า", "ม", "ต", "น", "ย", "ป")

	_, err = s.app.GameController.PlaceTile(s.ctx, matchID, host.ID, 0, star, "")
	s.Require().NoError(err)
	_, err = s.app.GameController.PlaceTile(s.ctx, matchID, host.ID, 0, model.Coord{Row: 15, Col: 8}, "")
	s.Require().NoError(err)

	result, err := s.app.GameController.CommitTurn(s.ctx, matchID, host.ID)
	s.Require().NoError(err)
	s.Require().Len(result.Words, 1)
	s.Equal("กา", result.Words[0].Word)
	s.Equal(guest.ID, result.NextPlayer)

	m, err = s.app.GameController.GetMatch(s.ctx, matchID)
	s.Require().NoError(err)
	s.Equal(total, m.TileCount())
	s.Len(m.Sides[0].Rack, model.RackCapacity)

	_, err = s.app.GameController.CommitTurn(s.ctx, matchID, host.ID)
	s.ErrorIs(err, model.ErrNotYourTurn)
}

// Test: two players queue and land in the same match
func (s *IntegrationSuite) TestMatchmakingPairsIntoMatch() {
	s.app.MockRandom.QueueString("PAIR01")

	first := s.createPlayer("first", "First")
	second := s.createPlayer("second", "Second")

	found, err := s.app.LobbyController.FindMatch(s.ctx, first)
	s.Require().NoError(err)
	s.Nil(found)

	found, err = s.app.LobbyController.FindMatch(s.ctx, second)
	s.Require().NoError(err)
	s.Require().NotNil(found)
	s.Equal(first.ID, found.Opponent.ID)

	collected, err := s.app.LobbyController.FindMatch(s.ctx, first)
	s.Require().NoError(err)
	s.Require().NotNil(collected)
	s.Equal(found.MatchID, collected.MatchID)
	s.Equal(second.ID, collected.Opponent.ID)

	m, err := s.app.GameController.GetMatch(s.ctx, found.MatchID)
	s.Require().NoError(err)
	s.GreaterOrEqual(m.SideIndex(first.ID), 0)
	s.GreaterOrEqual(m.SideIndex(second.ID), 0)
}

// Test: the bot answers a human pass through the controller
func (s *IntegrationSuite) TestBotMatchReplies() {
	human := s.createPlayer("human", "Human")

	m, err := s.app.GameController.CreateBotMatch(s.ctx, human, model.BotStrategyGreedy)
	s.Require().NoError(err)
	s.setRack(m.ID, 1, "ก", "า", "ม", "ต", "น", "ย", "ป")

	_, err = s.app.GameController.Skip(s.ctx, m.ID, human.ID)
	s.Require().NoError(err)

	actions, err := s.app.BotService.PlayTurns(s.ctx, m.ID)
	s.Require().NoError(err)
	s.Require().Len(actions, 1)
	s.Equal(bot.ActionCommit, actions[0].Type)
	s.Greater(actions[0].Result.ScoreDelta, 0)

	m, err = s.app.GameController.GetMatch(s.ctx, m.ID)
	s.Require().NoError(err)
	s.Equal(human.ID, m.Current().PlayerID)
	s.False(m.Board.IsEmpty())
}

func (s *IntegrationSuite) TestSweepDropsExpiredSessions() {
	_, err := s.app.AuthService.CreateGuestPlayer(s.ctx, "Sleepy")
	s.Require().NoError(err)
	s.app.HubManager.GetOrCreateHub("idle")

	s.app.MockClock.Advance(auth.DefaultConfig().SessionDuration + time.Second)

	sessions, hubs := s.app.Sweep()
	s.Equal(1, sessions)
	s.Equal(1, hubs)
}
