package bot

import "github.com/mcoot/kumkom/internal/model"

// Strategy decides which evaluated candidate the generator keeps and when
// it may stop searching
type Strategy interface {
	// Better reports whether candidate should replace best (best may be nil)
	Better(candidate, best *Move) bool
	// Done reports whether the search can stop with best
	Done(best *Move) bool
}

// GreedyStrategy keeps the highest-ranked candidate and stops early once a
// move scores at least EarlyExit
type GreedyStrategy struct {
	EarlyExit int
}

// NewGreedyStrategy creates a new GreedyStrategy
func NewGreedyStrategy(earlyExit int) *GreedyStrategy {
	return &GreedyStrategy{EarlyExit: earlyExit}
}

func (s *GreedyStrategy) Better(candidate, best *Move) bool {
	return best == nil || candidate.Rank > best.Rank
}

func (s *GreedyStrategy) Done(best *Move) bool {
	return best != nil && s.EarlyExit > 0 && best.Score >= s.EarlyExit
}

// FirstStrategy plays the first legal candidate it finds
type FirstStrategy struct{}

// NewFirstStrategy creates a new FirstStrategy
func NewFirstStrategy() *FirstStrategy {
	return &FirstStrategy{}
}

func (s *FirstStrategy) Better(candidate, best *Move) bool {
	return best == nil
}

func (s *FirstStrategy) Done(best *Move) bool {
	return best != nil
}

// DefaultStrategies returns every known strategy keyed by name
func DefaultStrategies(config Config) map[string]Strategy {
	return map[string]Strategy{
		model.BotStrategyGreedy: NewGreedyStrategy(config.EarlyExit),
		model.BotStrategyFirst:  NewFirstStrategy(),
	}
}
