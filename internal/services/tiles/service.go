package tiles

import (
	"github.com/mcoot/kumkom/internal/dependencies/random"
	"github.com/mcoot/kumkom/internal/model"
)

// Service manages the bag and racks. All operations return new slices and
// never modify their inputs.
type Service struct {
	random random.Random
}

// New creates a new TilesService
func New(random random.Random) *Service {
	return &Service{
		random: random,
	}
}

// NewBag returns a freshly shuffled full bag
func (s *Service) NewBag() []model.Tile {
	bag := make([]model.Tile, 0, model.TotalTiles())
	for _, tc := range model.InitialDistribution {
		for i := 0; i < tc.Count; i++ {
			bag = append(bag, tc.Tile)
		}
	}
	return s.Shuffle(bag)
}

// Shuffle returns a shuffled copy of tiles
func (s *Service) Shuffle(tiles []model.Tile) []model.Tile {
	out := make([]model.Tile, len(tiles))
	copy(out, tiles)
	for i := len(out) - 1; i > 0; i-- {
		j := s.random.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Draw takes up to n tiles from the front of the bag
func (s *Service) Draw(bag []model.Tile, n int) (drawn, rest []model.Tile) {
	if n > len(bag) {
		n = len(bag)
	}
	if n < 0 {
		n = 0
	}
	drawn = make([]model.Tile, n)
	copy(drawn, bag[:n])
	rest = make([]model.Tile, len(bag)-n)
	copy(rest, bag[n:])
	return drawn, rest
}

// Refill draws up to n tiles into the rack, bounded by bag size and rack capacity
func (s *Service) Refill(rack model.Rack, bag []model.Tile, n int) (model.Rack, []model.Tile) {
	if room := model.RackCapacity - len(rack); n > room {
		n = room
	}
	drawn, rest := s.Draw(bag, n)
	out := make(model.Rack, 0, len(rack)+len(drawn))
	out = append(out, rack...)
	return append(out, drawn...), rest
}

// Fill tops the rack up to capacity
func (s *Service) Fill(rack model.Rack, bag []model.Tile) (model.Rack, []model.Tile) {
	return s.Refill(rack, bag, model.RackCapacity)
}

// Return puts tiles back into the bag and reshuffles it
func (s *Service) Return(bag []model.Tile, returned []model.Tile) []model.Tile {
	out := make([]model.Tile, 0, len(bag)+len(returned))
	out = append(out, bag...)
	out = append(out, returned...)
	return s.Shuffle(out)
}

// Exchange swaps n tiles: draws n new tiles into the rack, then returns the
// given tiles to the bag and reshuffles
func (s *Service) Exchange(rack model.Rack, bag []model.Tile, returned []model.Tile) (model.Rack, []model.Tile, error) {
	if len(bag) < len(returned) {
		return nil, nil, model.ErrBagInsufficient
	}
	drawn, rest := s.Draw(bag, len(returned))
	out := make(model.Rack, 0, len(rack)+len(drawn))
	out = append(out, rack...)
	out = append(out, drawn...)
	return out, s.Return(rest, returned), nil
}

// Swap exchanges two rack positions
func (s *Service) Swap(rack model.Rack, i, j int) (model.Rack, error) {
	if i < 0 || i >= len(rack) || j < 0 || j >= len(rack) {
		return nil, model.ErrRackSlot
	}
	out := make(model.Rack, len(rack))
	copy(out, rack)
	out[i], out[j] = out[j], out[i]
	return out, nil
}

// ShuffleRack returns the rack in a random order
func (s *Service) ShuffleRack(rack model.Rack) model.Rack {
	return model.Rack(s.Shuffle(rack))
}

// Interface for dependency injection
type ServiceInterface interface {
	NewBag() []model.Tile
	Shuffle(tiles []model.Tile) []model.Tile
	Draw(bag []model.Tile, n int) (drawn, rest []model.Tile)
	Refill(rack model.Rack, bag []model.Tile, n int) (model.Rack, []model.Tile)
	Fill(rack model.Rack, bag []model.Tile) (model.Rack, []model.Tile)
	Return(bag []model.Tile, returned []model.Tile) []model.Tile
	Exchange(rack model.Rack, bag []model.Tile, returned []model.Tile) (model.Rack, []model.Tile, error)
	Swap(rack model.Rack, i, j int) (model.Rack, error)
	ShuffleRack(rack model.Rack) model.Rack
}

var _ ServiceInterface = (*Service)(nil)
