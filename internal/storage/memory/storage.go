package memory

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"

	"github.com/mcoot/kumkom/internal/model"
	"github.com/mcoot/kumkom/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Matches and rooms are stored as copies so callers never share state.
type Storage struct {
	mu sync.RWMutex

	players    map[model.PlayerID]*model.Player
	rooms      map[model.RoomCode][]byte
	matches    map[model.MatchID][]byte
	tickets    map[model.PlayerID]*model.WaitingTicket
	dictionary map[string]struct{}
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players:    make(map[model.PlayerID]*model.Player),
		rooms:      make(map[model.RoomCode][]byte),
		matches:    make(map[model.MatchID][]byte),
		tickets:    make(map[model.PlayerID]*model.WaitingTicket),
		dictionary: make(map[string]struct{}),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := *player
	s.players[player.ID] = &p
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	p := *player
	return &p, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.players, id)
	return nil
}

// Room operations

func (s *Storage) SaveRoom(ctx context.Context, room *model.Room) error {
	data, err := json.Marshal(room)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms[room.Code] = data
	return nil
}

func (s *Storage) GetRoom(ctx context.Context, code model.RoomCode) (*model.Room, error) {
	s.mu.RLock()
	data, ok := s.rooms[code]
	s.mu.RUnlock()
	if !ok {
		return nil, model.ErrRoomNotFound
	}
	var room model.Room
	if err := json.Unmarshal(data, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

func (s *Storage) DeleteRoom(ctx context.Context, code model.RoomCode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rooms, code)
	return nil
}

func (s *Storage) RoomExists(ctx context.Context, code model.RoomCode) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.rooms[code]
	return ok, nil
}

// Match operations

func (s *Storage) SaveMatch(ctx context.Context, match *model.Match) error {
	data, err := json.Marshal(match)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches[match.ID] = data
	return nil
}

func (s *Storage) GetMatch(ctx context.Context, id model.MatchID) (*model.Match, error) {
	s.mu.RLock()
	data, ok := s.matches[id]
	s.mu.RUnlock()
	if !ok {
		return nil, model.ErrMatchNotFound
	}
	var match model.Match
	if err := json.Unmarshal(data, &match); err != nil {
		return nil, err
	}
	return &match, nil
}

func (s *Storage) DeleteMatch(ctx context.Context, id model.MatchID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.matches, id)
	return nil
}

// Matchmaking queue operations

func (s *Storage) SaveTicket(ctx context.Context, ticket *model.WaitingTicket) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := *ticket
	s.tickets[ticket.Player.ID] = &t
	return nil
}

func (s *Storage) GetTicket(ctx context.Context, playerID model.PlayerID) (*model.WaitingTicket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tickets[playerID]
	if !ok {
		return nil, model.ErrNotQueued
	}
	out := *t
	return &out, nil
}

func (s *Storage) DeleteTicket(ctx context.Context, playerID model.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tickets, playerID)
	return nil
}

func (s *Storage) ListTickets(ctx context.Context) ([]*model.WaitingTicket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.WaitingTicket, 0, len(s.tickets))
	for _, t := range s.tickets {
		c := *t
		out = append(out, &c)
	}
	return out, nil
}

// Dictionary operations

func (s *Storage) AddDictionaryWords(ctx context.Context, words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			s.dictionary[w] = struct{}{}
		}
	}
	return nil
}

func (s *Storage) HasDictionaryWord(ctx context.Context, word string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.dictionary[word]
	return ok, nil
}

func (s *Storage) SearchDictionaryWords(ctx context.Context, prefix string, limit int) ([]string, error) {
	if prefix == "" {
		return []string{}, nil
	}
	s.mu.RLock()
	var words []string
	for w := range s.dictionary {
		if strings.HasPrefix(w, prefix) {
			words = append(words, w)
		}
	}
	s.mu.RUnlock()

	sort.Strings(words)
	if len(words) > limit {
		words = words[:limit]
	}
	if words == nil {
		words = []string{}
	}
	return words, nil
}

func (s *Storage) DictionaryWordCount(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.dictionary), nil
}
