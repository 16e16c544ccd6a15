package sse

import (
	"encoding/json"
	"log/slog"

	"github.com/mcoot/kumkom/internal/model"
	"github.com/mcoot/kumkom/internal/services/game"
)

// Broadcaster relays match events to the match's SSE hub as JSON
type Broadcaster struct {
	hubManager *HubManager
	logger     *slog.Logger
}

var _ game.Publisher = (*Broadcaster)(nil)

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hubManager *HubManager, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hubManager: hubManager,
		logger:     logger.With(slog.String("component", "sse-broadcaster")),
	}
}

// Publish sends the event to everyone watching the match. Matches nobody
// is watching are skipped.
func (b *Broadcaster) Publish(event model.Event) {
	hub := b.hubManager.GetHub(event.MatchID)
	if hub == nil {
		return
	}

	data, err := json.Marshal(event.Payload)
	if err != nil {
		b.logger.Error("sse failed to encode event",
			slog.String("match_id", string(event.MatchID)),
			slog.String("event", string(event.Type)),
			slog.Any("error", err))
		return
	}
	hub.BroadcastEvent(string(event.Type), string(data))
}
