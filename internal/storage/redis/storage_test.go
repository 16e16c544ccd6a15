package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/kumkom/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.PlayerTTL = time.Hour
	cfg.RoomTTL = time.Hour
	cfg.MatchTTL = time.Hour
	cfg.TicketTTL = time.Minute

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// Player tests

func (s *StorageSuite) TestSaveAndGetPlayer() {
	player := &model.Player{ID: "player-1", DisplayName: "Alice", CreatedAt: time.Now()}

	s.Require().NoError(s.storage.SavePlayer(s.ctx, player))

	retrieved, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(player.DisplayName, retrieved.DisplayName)
}

func (s *StorageSuite) TestPlayerHasTTL() {
	s.Require().NoError(s.storage.SavePlayer(s.ctx, &model.Player{ID: "player-1"}))
	s.Equal(time.Hour, s.mini.TTL(playerKey("player-1")))
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// Room tests

func (s *StorageSuite) TestSaveGetDeleteRoom() {
	room := &model.Room{Code: "ABCD", State: model.RoomStateWaiting}
	s.Require().NoError(s.storage.SaveRoom(s.ctx, room))

	exists, err := s.storage.RoomExists(s.ctx, "ABCD")
	s.Require().NoError(err)
	s.True(exists)

	retrieved, err := s.storage.GetRoom(s.ctx, "ABCD")
	s.Require().NoError(err)
	s.Equal(model.RoomStateWaiting, retrieved.State)

	s.Require().NoError(s.storage.DeleteRoom(s.ctx, "ABCD"))
	_, err = s.storage.GetRoom(s.ctx, "ABCD")
	s.ErrorIs(err, model.ErrRoomNotFound)
}

// Match tests

func (s *StorageSuite) TestSaveAndGetMatchRoundTripsBoard() {
	blank := model.WildcardTile()
	match := &model.Match{
		ID:    "m1",
		Mode:  model.MatchModeBot,
		Board: model.NewStandardBoard(),
		Sides: [2]model.Side{
			{PlayerID: "a", Rack: model.Rack{model.NormalTile("ก"), model.DualTile("ฆ", "ซ")}},
			{PlayerID: "b", IsBot: true},
		},
		Bag:       []model.Tile{model.NormalTile("ข")},
		TurnCount: 3,
	}
	s.Require().NoError(match.Board.Set(model.Coord{Row: 15, Col: 7}, model.Cell{Glyph: "ต", Origin: &blank}))

	s.Require().NoError(s.storage.SaveMatch(s.ctx, match))

	retrieved, err := s.storage.GetMatch(s.ctx, "m1")
	s.Require().NoError(err)
	s.Equal(3, retrieved.TurnCount)
	s.Equal([]string{"ก", "ฆ/ซ"}, retrieved.Sides[0].Rack.Strings())
	cell := retrieved.Board.Get(model.Coord{Row: 15, Col: 7})
	s.Equal("ต", cell.Glyph)
	s.Require().NotNil(cell.Origin)
	s.Equal(model.TileWildcard, cell.Origin.Kind)
}

func (s *StorageSuite) TestGetMatchNotFound() {
	_, err := s.storage.GetMatch(s.ctx, "missing")
	s.ErrorIs(err, model.ErrMatchNotFound)
}

// Ticket tests

func (s *StorageSuite) TestTicketsExpireWithTTL() {
	s.Require().NoError(s.storage.SaveTicket(s.ctx, &model.WaitingTicket{Player: model.Player{ID: "p1"}}))
	s.Require().NoError(s.storage.SaveTicket(s.ctx, &model.WaitingTicket{Player: model.Player{ID: "p2"}}))

	tickets, err := s.storage.ListTickets(s.ctx)
	s.Require().NoError(err)
	s.Len(tickets, 2)

	s.mini.FastForward(2 * time.Minute)

	tickets, err = s.storage.ListTickets(s.ctx)
	s.Require().NoError(err)
	s.Empty(tickets)

	members, err := s.mini.Members(ticketIndexKey())
	s.Require().NoError(err)
	s.Empty(members, "expired entries are pruned from the index")
}

func (s *StorageSuite) TestDeleteTicket() {
	s.Require().NoError(s.storage.SaveTicket(s.ctx, &model.WaitingTicket{Player: model.Player{ID: "p1"}}))
	s.Require().NoError(s.storage.DeleteTicket(s.ctx, "p1"))

	_, err := s.storage.GetTicket(s.ctx, "p1")
	s.ErrorIs(err, model.ErrNotQueued)
}

// Dictionary tests

func (s *StorageSuite) TestDictionaryWords() {
	s.Require().NoError(s.storage.AddDictionaryWords(s.ctx, []string{"กา", "การ", "กาว", "มา"}))

	count, err := s.storage.DictionaryWordCount(s.ctx)
	s.Require().NoError(err)
	s.Equal(4, count)

	ok, err := s.storage.HasDictionaryWord(s.ctx, "การ")
	s.Require().NoError(err)
	s.True(ok)

	words, err := s.storage.SearchDictionaryWords(s.ctx, "กา", 50)
	s.Require().NoError(err)
	s.Equal([]string{"กา", "การ", "กาว"}, words)
}
