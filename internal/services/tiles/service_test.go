package tiles

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/kumkom/internal/dependencies/mocks"
	"github.com/mcoot/kumkom/internal/model"
)

type ServiceSuite struct {
	suite.Suite
	random  *mocks.MockRandom
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.random = mocks.NewMockRandom()
	s.service = New(s.random)
}

func tilesOf(glyphs ...string) []model.Tile {
	out := make([]model.Tile, len(glyphs))
	for i, g := range glyphs {
		out[i] = model.NormalTile(g)
	}
	return out
}

// NewBag tests

func (s *ServiceSuite) TestNewBagHoldsFullDistribution() {
	bag := s.service.NewBag()
	s.Len(bag, model.TotalTiles())

	wildcards := 0
	for _, t := range bag {
		if t.Kind == model.TileWildcard {
			wildcards++
		}
	}
	s.Equal(4, wildcards)
}

// Shuffle tests

func (s *ServiceSuite) TestShuffleUsesRandomAndKeepsTiles() {
	in := tilesOf("ก", "ข", "ค")
	s.random.QueueIntn(0, 0) // i=2 swaps with 0, then i=1 swaps with 0

	out := s.service.Shuffle(in)

	s.Equal([]string{"ข", "ค", "ก"}, model.Rack(out).Strings())
	s.Equal([]string{"ก", "ข", "ค"}, model.Rack(in).Strings(), "input is untouched")
}

// Draw and Refill tests

func (s *ServiceSuite) TestDrawFromFront() {
	drawn, rest := s.service.Draw(tilesOf("ก", "ข", "ค"), 2)
	s.Equal([]string{"ก", "ข"}, model.Rack(drawn).Strings())
	s.Equal([]string{"ค"}, model.Rack(rest).Strings())
}

func (s *ServiceSuite) TestDrawCappedByBag() {
	drawn, rest := s.service.Draw(tilesOf("ก"), 5)
	s.Len(drawn, 1)
	s.Empty(rest)
}

func (s *ServiceSuite) TestRefillCappedByCapacity() {
	rack := model.Rack(tilesOf("ก", "ก", "ก", "ก", "ก", "ก", "ก", "ก"))
	out, bag := s.service.Refill(rack, tilesOf("ข", "ค", "ง"), 3)
	s.Len(out, model.RackCapacity)
	s.Len(bag, 2)
}

func (s *ServiceSuite) TestFillTopsUpToNine() {
	bag := tilesOf("ก", "ข", "ค", "ง", "จ", "ฉ", "ช", "ด", "ต", "ถ", "ท")
	rack, rest := s.service.Fill(nil, bag)
	s.Len(rack, 9)
	s.Len(rest, 2)
}

// Exchange tests

func (s *ServiceSuite) TestExchangeRequiresEnoughTiles() {
	_, _, err := s.service.Exchange(nil, tilesOf("ก"), tilesOf("ข", "ค"))
	s.ErrorIs(err, model.ErrBagInsufficient)
}

func (s *ServiceSuite) TestExchangeConservesTiles() {
	rack := model.Rack(tilesOf("ก"))
	bag := tilesOf("ข", "ค", "ง")

	out, newBag, err := s.service.Exchange(rack, bag, []model.Tile{model.WildcardTile(), model.NormalTile("จ")})
	s.Require().NoError(err)

	s.Equal([]string{"ก", "ข", "ค"}, out.Strings())
	s.Len(newBag, 3)
	s.ElementsMatch([]string{"ง", "?", "จ"}, model.Rack(newBag).Strings())
}

// Swap tests

func (s *ServiceSuite) TestSwap() {
	out, err := s.service.Swap(model.Rack(tilesOf("ก", "ข")), 0, 1)
	s.Require().NoError(err)
	s.Equal([]string{"ข", "ก"}, out.Strings())

	_, err = s.service.Swap(model.Rack(tilesOf("ก")), 0, 3)
	s.ErrorIs(err, model.ErrRackSlot)
}
