package bot_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/kumkom/internal/model"
	"github.com/mcoot/kumkom/internal/services/bot"
)

type StrategySuite struct {
	suite.Suite
}

func TestStrategySuite(t *testing.T) {
	suite.Run(t, new(StrategySuite))
}

func (s *StrategySuite) TestGreedyPrefersHigherRank() {
	greedy := bot.NewGreedyStrategy(40)
	low := &bot.Move{Score: 5, Rank: 7}
	high := &bot.Move{Score: 8, Rank: 10}

	s.True(greedy.Better(low, nil))
	s.True(greedy.Better(high, low))
	s.False(greedy.Better(low, high))
	s.False(greedy.Better(low, low))
}

func (s *StrategySuite) TestGreedyStopsAtEarlyExit() {
	greedy := bot.NewGreedyStrategy(40)
	s.False(greedy.Done(nil))
	s.False(greedy.Done(&bot.Move{Score: 39}))
	s.True(greedy.Done(&bot.Move{Score: 40}))

	unbounded := bot.NewGreedyStrategy(0)
	s.False(unbounded.Done(&bot.Move{Score: 1000}))
}

func (s *StrategySuite) TestFirstTakesFirstCandidate() {
	first := bot.NewFirstStrategy()
	move := &bot.Move{Score: 3}

	s.True(first.Better(move, nil))
	s.False(first.Better(&bot.Move{Score: 50}, move))
	s.False(first.Done(nil))
	s.True(first.Done(move))
}

func (s *StrategySuite) TestDefaultStrategiesCoverKnownNames() {
	strategies := bot.DefaultStrategies(bot.DefaultConfig())
	for _, name := range model.ValidBotStrategies() {
		s.Contains(strategies, name)
	}
}

func (s *StrategySuite) TestMoveSlotsShiftAfterRemovals() {
	move := &bot.Move{Placements: []bot.Placement{
		{RackSlot: 2}, {RackSlot: 0}, {RackSlot: 3},
	}}
	// slot 2 goes first; removing it and then slot 0 leaves the old slot 3 at 1
	s.Equal([]int{2, 0, 1}, move.Slots())
}
