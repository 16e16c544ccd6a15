package model

// Bot strategy constants
const (
	BotStrategyGreedy = "greedy"
	BotStrategyFirst  = "first"
)

// BotStrategyDisplayName returns a human-readable label for a strategy
func BotStrategyDisplayName(strategy string) string {
	switch strategy {
	case BotStrategyGreedy:
		return "Greedy"
	case BotStrategyFirst:
		return "First Legal"
	default:
		return strategy
	}
}

// ValidBotStrategies returns all valid bot strategy names
func ValidBotStrategies() []string {
	return []string{BotStrategyGreedy, BotStrategyFirst}
}

// IsValidBotStrategy reports whether the strategy name is known
func IsValidBotStrategy(strategy string) bool {
	for _, s := range ValidBotStrategies() {
		if s == strategy {
			return true
		}
	}
	return false
}
