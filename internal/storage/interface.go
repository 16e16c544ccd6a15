package storage

import (
	"context"

	"github.com/mcoot/kumkom/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Player operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	DeletePlayer(ctx context.Context, id model.PlayerID) error

	// Room operations
	SaveRoom(ctx context.Context, room *model.Room) error
	GetRoom(ctx context.Context, code model.RoomCode) (*model.Room, error)
	DeleteRoom(ctx context.Context, code model.RoomCode) error
	RoomExists(ctx context.Context, code model.RoomCode) (bool, error)

	// Match operations
	SaveMatch(ctx context.Context, match *model.Match) error
	GetMatch(ctx context.Context, id model.MatchID) (*model.Match, error)
	DeleteMatch(ctx context.Context, id model.MatchID) error

	// Matchmaking queue operations
	SaveTicket(ctx context.Context, ticket *model.WaitingTicket) error
	GetTicket(ctx context.Context, playerID model.PlayerID) (*model.WaitingTicket, error)
	DeleteTicket(ctx context.Context, playerID model.PlayerID) error
	ListTickets(ctx context.Context) ([]*model.WaitingTicket, error)

	// Dictionary operations
	AddDictionaryWords(ctx context.Context, words []string) error
	HasDictionaryWord(ctx context.Context, word string) (bool, error)
	SearchDictionaryWords(ctx context.Context, prefix string, limit int) ([]string, error)
	DictionaryWordCount(ctx context.Context) (int, error)
}
