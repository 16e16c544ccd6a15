package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/kumkom/internal/api/middleware"
	"github.com/mcoot/kumkom/internal/api/request"
	"github.com/mcoot/kumkom/internal/api/response"
	"github.com/mcoot/kumkom/internal/model"
	"github.com/mcoot/kumkom/internal/services/bot"
	"github.com/mcoot/kumkom/internal/services/game"
	"github.com/mcoot/kumkom/internal/sse"
)

// MatchHandler handles match endpoints
type MatchHandler struct {
	gameController *game.Controller
	botService     *bot.Service
	hubManager     *sse.HubManager
	logger         *slog.Logger
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(
	gameController *game.Controller,
	botService *bot.Service,
	hubManager *sse.HubManager,
	logger *slog.Logger,
) *MatchHandler {
	return &MatchHandler{
		gameController: gameController,
		botService:     botService,
		hubManager:     hubManager,
		logger:         logger.With(slog.String("component", "match-handler")),
	}
}

func matchID(r *http.Request) model.MatchID {
	return model.MatchID(mux.Vars(r)["id"])
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return NewInvalidRequestError("invalid request body")
	}
	return nil
}

// CreateBot handles POST /api/v1/matches/bot
func (h *MatchHandler) CreateBot(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	var req request.CreateBotMatchRequest
	if r.ContentLength != 0 {
		if err := decode(r, &req); err != nil {
			WriteError(w, err)
			return
		}
	}
	if req.Strategy == "" {
		req.Strategy = model.BotStrategyGreedy
	}

	m, err := h.gameController.CreateBotMatch(r.Context(), *player, req.Strategy)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.MatchFromModel(m, player.ID))
}

// Get handles GET /api/v1/matches/{id}
func (h *MatchHandler) Get(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	m, err := h.gameController.GetMatch(r.Context(), matchID(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MatchFromModel(m, player.ID))
}

// Result handles GET /api/v1/matches/{id}/result
func (h *MatchHandler) Result(w http.ResponseWriter, r *http.Request) {
	result, err := h.gameController.Result(r.Context(), matchID(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, result)
}

// PlaceTile handles POST /api/v1/matches/{id}/place
func (h *MatchHandler) PlaceTile(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	var req request.PlaceTileRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	coord := model.Coord{Row: req.Row, Col: req.Col}
	m, err := h.gameController.PlaceTile(r.Context(), matchID(r), player.ID, req.RackSlot, coord, req.Glyph)
	h.writeMatch(w, m, player.ID, err)
}

// PlaceDiacritic handles POST /api/v1/matches/{id}/diacritic
func (h *MatchHandler) PlaceDiacritic(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	var req request.PlaceDiacriticRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	coord := model.Coord{Row: req.Row, Col: req.Col}
	m, err := h.gameController.PlaceDiacritic(r.Context(), matchID(r), player.ID, coord, req.Glyph)
	h.writeMatch(w, m, player.ID, err)
}

// ChooseGlyph handles POST /api/v1/matches/{id}/selection
func (h *MatchHandler) ChooseGlyph(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	var req request.ChooseGlyphRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	m, err := h.gameController.ChooseSubstitute(r.Context(), matchID(r), player.ID, req.Glyph)
	h.writeMatch(w, m, player.ID, err)
}

// CancelSelection handles DELETE /api/v1/matches/{id}/selection
func (h *MatchHandler) CancelSelection(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	m, err := h.gameController.CancelSelection(r.Context(), matchID(r), player.ID)
	h.writeMatch(w, m, player.ID, err)
}

// Recall handles POST /api/v1/matches/{id}/recall
func (h *MatchHandler) Recall(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	m, err := h.gameController.Recall(r.Context(), matchID(r), player.ID)
	h.writeMatch(w, m, player.ID, err)
}

// SwapRack handles POST /api/v1/matches/{id}/rack/swap
func (h *MatchHandler) SwapRack(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	var req request.SwapRackRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	m, err := h.gameController.SwapRack(r.Context(), matchID(r), player.ID, req.I, req.J)
	h.writeMatch(w, m, player.ID, err)
}

// ShuffleRack handles POST /api/v1/matches/{id}/rack/shuffle
func (h *MatchHandler) ShuffleRack(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	m, err := h.gameController.ShuffleRack(r.Context(), matchID(r), player.ID)
	h.writeMatch(w, m, player.ID, err)
}

// Commit handles POST /api/v1/matches/{id}/commit
func (h *MatchHandler) Commit(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	id := matchID(r)

	result, err := h.gameController.CommitTurn(r.Context(), id, player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, h.outcome(r.Context(), id, result))
}

// Skip handles POST /api/v1/matches/{id}/skip
func (h *MatchHandler) Skip(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	id := matchID(r)

	result, err := h.gameController.Skip(r.Context(), id, player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, h.outcome(r.Context(), id, result))
}

// ApplyRemote handles POST /api/v1/matches/{id}/remote. The body is the
// opponent's turn result as another server produced it.
func (h *MatchHandler) ApplyRemote(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	var result model.TurnResult
	if err := decode(r, &result); err != nil {
		WriteError(w, err)
		return
	}

	m, err := h.gameController.ApplyRemoteResult(r.Context(), matchID(r), player.ID, &result)
	h.writeMatch(w, m, player.ID, err)
}

// BotTurn handles POST /api/v1/matches/{id}/bot-turn
func (h *MatchHandler) BotTurn(w http.ResponseWriter, r *http.Request) {
	actions, err := h.botService.PlayTurns(r.Context(), matchID(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.BotTurnsFromModel(actions))
}

// Events handles GET /api/v1/matches/{id}/events
func (h *MatchHandler) Events(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	id := matchID(r)

	m, err := h.gameController.GetMatch(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	if m.SideIndex(player.ID) < 0 {
		WriteError(w, model.ErrNotInMatch)
		return
	}

	hub := h.hubManager.GetOrCreateHub(id)
	sse.ServeSSE(w, r, hub, player.ID)
}

// outcome lets the bot answer a human turn in bot matches. A failing bot is
// logged; the human's turn has already been applied.
func (h *MatchHandler) outcome(ctx context.Context, id model.MatchID, result *model.TurnResult) response.TurnOutcome {
	out := response.TurnOutcome{Result: result}
	if result.GameOver {
		return out
	}

	m, err := h.gameController.GetMatch(ctx, id)
	if err != nil || m.Mode != model.MatchModeBot {
		return out
	}

	actions, err := h.botService.PlayTurns(ctx, id)
	if err != nil {
		h.logger.Error("bot turn failed",
			slog.String("match_id", string(id)),
			slog.String("error", err.Error()),
		)
	}
	out.BotActions = response.BotTurnsFromModel(actions).Actions
	return out
}

func (h *MatchHandler) writeMatch(w http.ResponseWriter, m *model.Match, viewer model.PlayerID, err error) {
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.MatchFromModel(m, viewer))
}
