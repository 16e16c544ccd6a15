package redis

import (
	"fmt"

	"github.com/mcoot/kumkom/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "kumkom"

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// roomKey returns the Redis key for a Room
func roomKey(code model.RoomCode) string {
	return fmt.Sprintf("%s:room:%s", keyPrefix, code)
}

// matchKey returns the Redis key for a Match
func matchKey(id model.MatchID) string {
	return fmt.Sprintf("%s:match:%s", keyPrefix, id)
}

// ticketKey returns the Redis key for a matchmaking ticket
func ticketKey(playerID model.PlayerID) string {
	return fmt.Sprintf("%s:ticket:%s", keyPrefix, playerID)
}

// ticketIndexKey returns the Redis key for the SET of waiting ticket keys
func ticketIndexKey() string {
	return fmt.Sprintf("%s:idx:tickets", keyPrefix)
}

// dictionaryKey returns the Redis key for the dictionary word set
func dictionaryKey() string {
	return fmt.Sprintf("%s:dictionary", keyPrefix)
}
