package redis

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/kumkom/internal/model"
	"github.com/mcoot/kumkom/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// getJSON loads key into out, mapping a missing key to notFound
func (s *Storage) getJSON(ctx context.Context, key string, out any, notFound error) error {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return notFound
		}
		return err
	}
	return json.Unmarshal(data, out)
}

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	data, err := json.Marshal(player)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, playerKey(player.ID), data, s.cfg.PlayerTTL).Err()
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	var player model.Player
	if err := s.getJSON(ctx, playerKey(id), &player, model.ErrPlayerNotFound); err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	return s.client.Del(ctx, playerKey(id)).Err()
}

// Room operations

func (s *Storage) SaveRoom(ctx context.Context, room *model.Room) error {
	data, err := json.Marshal(room)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, roomKey(room.Code), data, s.cfg.RoomTTL).Err()
}

func (s *Storage) GetRoom(ctx context.Context, code model.RoomCode) (*model.Room, error) {
	var room model.Room
	if err := s.getJSON(ctx, roomKey(code), &room, model.ErrRoomNotFound); err != nil {
		return nil, err
	}
	return &room, nil
}

func (s *Storage) DeleteRoom(ctx context.Context, code model.RoomCode) error {
	return s.client.Del(ctx, roomKey(code)).Err()
}

func (s *Storage) RoomExists(ctx context.Context, code model.RoomCode) (bool, error) {
	exists, err := s.client.Exists(ctx, roomKey(code)).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}

// Match operations

func (s *Storage) SaveMatch(ctx context.Context, match *model.Match) error {
	data, err := json.Marshal(match)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, matchKey(match.ID), data, s.cfg.MatchTTL).Err()
}

func (s *Storage) GetMatch(ctx context.Context, id model.MatchID) (*model.Match, error) {
	var match model.Match
	if err := s.getJSON(ctx, matchKey(id), &match, model.ErrMatchNotFound); err != nil {
		return nil, err
	}
	return &match, nil
}

func (s *Storage) DeleteMatch(ctx context.Context, id model.MatchID) error {
	return s.client.Del(ctx, matchKey(id)).Err()
}

// Matchmaking queue operations

func (s *Storage) SaveTicket(ctx context.Context, ticket *model.WaitingTicket) error {
	data, err := json.Marshal(ticket)
	if err != nil {
		return err
	}

	key := ticketKey(ticket.Player.ID)

	// Use pipeline for atomic save + index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, key, data, s.cfg.TicketTTL)
	pipe.SAdd(ctx, ticketIndexKey(), key)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetTicket(ctx context.Context, playerID model.PlayerID) (*model.WaitingTicket, error) {
	var ticket model.WaitingTicket
	if err := s.getJSON(ctx, ticketKey(playerID), &ticket, model.ErrNotQueued); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (s *Storage) DeleteTicket(ctx context.Context, playerID model.PlayerID) error {
	key := ticketKey(playerID)
	pipe := s.client.Pipeline()
	pipe.Del(ctx, key)
	pipe.SRem(ctx, ticketIndexKey(), key)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) ListTickets(ctx context.Context) ([]*model.WaitingTicket, error) {
	keys, err := s.client.SMembers(ctx, ticketIndexKey()).Result()
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return []*model.WaitingTicket{}, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	tickets := make([]*model.WaitingTicket, 0, len(values))
	var expired []any
	for i, val := range values {
		if val == nil {
			// Ticket TTL elapsed; drop the stale index entry
			expired = append(expired, keys[i])
			continue
		}
		var t model.WaitingTicket
		if err := json.Unmarshal([]byte(val.(string)), &t); err != nil {
			continue // Skip invalid data
		}
		tickets = append(tickets, &t)
	}

	if len(expired) > 0 {
		if err := s.client.SRem(ctx, ticketIndexKey(), expired...).Err(); err != nil {
			return nil, err
		}
	}
	return tickets, nil
}

// Dictionary operations

func (s *Storage) AddDictionaryWords(ctx context.Context, words []string) error {
	members := make([]any, 0, len(words))
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			members = append(members, w)
		}
	}
	if len(members) == 0 {
		return nil
	}

	// Chunk to keep individual commands reasonably sized
	const chunk = 1000
	pipe := s.client.Pipeline()
	for start := 0; start < len(members); start += chunk {
		end := min(start+chunk, len(members))
		pipe.SAdd(ctx, dictionaryKey(), members[start:end]...)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) HasDictionaryWord(ctx context.Context, word string) (bool, error) {
	return s.client.SIsMember(ctx, dictionaryKey(), word).Result()
}

func (s *Storage) SearchDictionaryWords(ctx context.Context, prefix string, limit int) ([]string, error) {
	if prefix == "" {
		return []string{}, nil
	}

	var words []string
	iter := s.client.SScan(ctx, dictionaryKey(), 0, escapeGlob(prefix)+"*", 500).Iterator()
	for iter.Next(ctx) {
		words = append(words, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}

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
	n, err := s.client.SCard(ctx, dictionaryKey()).Result()
	return int(n), err
}

// escapeGlob escapes Redis MATCH pattern metacharacters
func escapeGlob(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`, `]`, `\]`)
	return r.Replace(s)
}
