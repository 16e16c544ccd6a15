package lobby

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/mcoot/kumkom/internal/dependencies/clock"
	"github.com/mcoot/kumkom/internal/dependencies/random"
	"github.com/mcoot/kumkom/internal/model"
	"github.com/mcoot/kumkom/internal/services/game"
	"github.com/mcoot/kumkom/internal/storage"
)

const (
	// RoomCodeLength is the length of generated room codes
	RoomCodeLength = 6
	// RoomCodeAlphabet is the characters used in room codes (avoid confusing chars)
	RoomCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	// TicketTTL is how long a matchmaking ticket waits for an opponent
	TicketTTL = 2 * time.Minute
)

// Controller manages two-seat rooms and the matchmaking queue
type Controller struct {
	storage        storage.Storage
	gameController *game.Controller
	clock          clock.Clock
	random         random.Random
	logger         *slog.Logger

	// serialises seat changes and queue pairing
	mu sync.Mutex
}

// NewController creates a new lobby Controller
func NewController(
	storage storage.Storage,
	gameController *game.Controller,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:        storage,
		gameController: gameController,
		clock:          clock,
		random:         random,
		logger:         logger.With(slog.String("component", "lobby-controller")),
	}
}

// CreateRoom creates a new room with the given player in the first seat
func (c *Controller) CreateRoom(ctx context.Context, host model.Player) (*model.Room, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.createRoom(ctx, host)
}

func (c *Controller) createRoom(ctx context.Context, host model.Player) (*model.Room, error) {
	code, err := c.newCode(ctx)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	room := &model.Room{
		Code:  code,
		State: model.RoomStateWaiting,
		Seats: []model.RoomSeat{
			{Player: host, IsHost: true, JoinedAt: now},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return nil, err
	}

	c.logger.Info("room created",
		slog.String("room_code", string(code)),
		slog.String("host_id", string(host.ID)),
	)
	return room, nil
}

func (c *Controller) newCode(ctx context.Context) (model.RoomCode, error) {
	for {
		code := model.RoomCode(c.random.String(RoomCodeLength, RoomCodeAlphabet))
		if code == "" {
			return "", errors.New("room code generator returned an empty code")
		}
		exists, err := c.storage.RoomExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
}

// GetRoom retrieves a room by code
func (c *Controller) GetRoom(ctx context.Context, code model.RoomCode) (*model.Room, error) {
	return c.storage.GetRoom(ctx, code)
}

// JoinRoom takes the free seat in a room. Filling the second seat starts a
// match between the two seated players.
func (c *Controller) JoinRoom(ctx context.Context, code model.RoomCode, player model.Player) (*model.Room, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	room, err := c.storage.GetRoom(ctx, code)
	if err != nil {
		return nil, err
	}
	if room.GetSeat(player.ID) != nil {
		return nil, model.ErrAlreadyInRoom
	}
	if room.IsFull() {
		return nil, model.ErrRoomFull
	}

	room.Seats = append(room.Seats, model.RoomSeat{
		Player:   player,
		IsHost:   len(room.Seats) == 0,
		JoinedAt: c.clock.Now(),
	})
	room.UpdatedAt = c.clock.Now()

	if room.IsFull() {
		if err := c.startMatch(ctx, room); err != nil {
			return nil, err
		}
	}

	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (c *Controller) startMatch(ctx context.Context, room *model.Room) error {
	players := make([]model.Player, len(room.Seats))
	for i, seat := range room.Seats {
		players[i] = seat.Player
	}

	m, err := c.gameController.CreateMatch(ctx, room.Code, players, model.MatchModeLocal)
	if err != nil {
		return err
	}

	room.State = model.RoomStateInMatch
	room.MatchID = &m.ID
	return nil
}

// LeaveRoom frees a player's seat. An empty room is deleted; a room left
// mid-match drops the match and waits for a new opponent.
func (c *Controller) LeaveRoom(ctx context.Context, code model.RoomCode, playerID model.PlayerID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	room, err := c.storage.GetRoom(ctx, code)
	if err != nil {
		return err
	}

	seat := room.GetSeat(playerID)
	if seat == nil {
		return model.ErrNotInRoom
	}
	wasHost := seat.IsHost

	room.Seats = slices.DeleteFunc(room.Seats, func(s model.RoomSeat) bool {
		return s.Player.ID == playerID
	})

	if len(room.Seats) == 0 {
		c.logger.Info("room closed", slog.String("room_code", string(code)))
		return c.storage.DeleteRoom(ctx, code)
	}

	if wasHost {
		room.Seats[0].IsHost = true
	}
	if room.MatchID != nil {
		c.logger.Info("player left match",
			slog.String("room_code", string(code)),
			slog.String("match_id", string(*room.MatchID)),
			slog.String("player_id", string(playerID)),
		)
		room.MatchID = nil
	}
	room.State = model.RoomStateWaiting
	room.UpdatedAt = c.clock.Now()

	return c.storage.SaveRoom(ctx, room)
}

// FindMatch queues a player for a random opponent. It returns nil while the
// player is waiting; the player polls again to collect the pairing. When a
// waiting ticket exists, the caller is paired with the oldest one at once.
func (c *Controller) FindMatch(ctx context.Context, player model.Player) (*model.MatchFound, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()

	own, err := c.storage.GetTicket(ctx, player.ID)
	if err != nil && !errors.Is(err, model.ErrNotQueued) {
		return nil, err
	}
	if own != nil && !own.Expired(now) {
		if own.Found != nil {
			if err := c.storage.DeleteTicket(ctx, player.ID); err != nil {
				return nil, err
			}
			return own.Found, nil
		}
		own.ExpiresAt = now.Add(TicketTTL)
		return nil, c.storage.SaveTicket(ctx, own)
	}

	opponent, err := c.oldestWaiting(ctx, player.ID, now)
	if err != nil {
		return nil, err
	}
	if opponent == nil {
		ticket := &model.WaitingTicket{
			Player:     player,
			EnqueuedAt: now,
			ExpiresAt:  now.Add(TicketTTL),
		}
		if err := c.storage.SaveTicket(ctx, ticket); err != nil {
			return nil, err
		}
		c.logger.Info("player queued", slog.String("player_id", string(player.ID)))
		return nil, nil
	}

	room, err := c.createRoom(ctx, opponent.Player)
	if err != nil {
		return nil, err
	}
	room.Seats = append(room.Seats, model.RoomSeat{Player: player, JoinedAt: now})
	if err := c.startMatch(ctx, room); err != nil {
		return nil, err
	}
	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return nil, err
	}

	opponent.Found = &model.MatchFound{RoomCode: room.Code, MatchID: *room.MatchID, Opponent: player}
	opponent.ExpiresAt = now.Add(TicketTTL)
	if err := c.storage.SaveTicket(ctx, opponent); err != nil {
		return nil, err
	}

	c.logger.Info("players paired",
		slog.String("room_code", string(room.Code)),
		slog.String("match_id", string(*room.MatchID)),
	)
	return &model.MatchFound{RoomCode: room.Code, MatchID: *room.MatchID, Opponent: opponent.Player}, nil
}

// oldestWaiting returns the longest-waiting unpaired ticket other than the
// caller's, deleting expired tickets on the way
func (c *Controller) oldestWaiting(ctx context.Context, self model.PlayerID, now time.Time) (*model.WaitingTicket, error) {
	tickets, err := c.storage.ListTickets(ctx)
	if err != nil {
		return nil, err
	}

	var waiting []*model.WaitingTicket
	for _, t := range tickets {
		if t.Expired(now) {
			if err := c.storage.DeleteTicket(ctx, t.Player.ID); err != nil {
				return nil, err
			}
			continue
		}
		if t.Player.ID == self || t.Found != nil {
			continue
		}
		waiting = append(waiting, t)
	}
	if len(waiting) == 0 {
		return nil, nil
	}

	slices.SortFunc(waiting, func(a, b *model.WaitingTicket) int {
		return a.EnqueuedAt.Compare(b.EnqueuedAt)
	})
	return waiting[0], nil
}

// CancelFind removes a player's matchmaking ticket
func (c *Controller) CancelFind(ctx context.Context, playerID model.PlayerID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	ticket, err := c.storage.GetTicket(ctx, playerID)
	if err != nil {
		return err
	}
	if ticket.Found != nil {
		return model.ErrAlreadyPaired
	}
	return c.storage.DeleteTicket(ctx, playerID)
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateRoom(ctx context.Context, host model.Player) (*model.Room, error)
	GetRoom(ctx context.Context, code model.RoomCode) (*model.Room, error)
	JoinRoom(ctx context.Context, code model.RoomCode, player model.Player) (*model.Room, error)
	LeaveRoom(ctx context.Context, code model.RoomCode, playerID model.PlayerID) error
	FindMatch(ctx context.Context, player model.Player) (*model.MatchFound, error)
	CancelFind(ctx context.Context, playerID model.PlayerID) error
}

var _ ControllerInterface = (*Controller)(nil)
