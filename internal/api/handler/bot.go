package handler

import (
	"net/http"

	"github.com/mcoot/kumkom/internal/api/request"
	"github.com/mcoot/kumkom/internal/api/response"
	"github.com/mcoot/kumkom/internal/model"
	"github.com/mcoot/kumkom/internal/services/bot"
)

// BotHandler exposes the move generator
type BotHandler struct {
	botService *bot.Service
}

// NewBotHandler creates a new bot handler
func NewBotHandler(botService *bot.Service) *BotHandler {
	return &BotHandler{botService: botService}
}

// Propose handles POST /api/v1/bot/propose
func (h *BotHandler) Propose(w http.ResponseWriter, r *http.Request) {
	var req request.ProposeRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	board, rack, err := req.ToModel()
	if err != nil {
		WriteError(w, NewInvalidRequestError(err.Error()))
		return
	}

	strategy := req.Strategy
	if strategy == "" {
		strategy = model.BotStrategyGreedy
	}
	if !model.IsValidBotStrategy(strategy) {
		WriteError(w, model.ErrUnknownBotType)
		return
	}

	move, err := h.botService.Propose(r.Context(), bot.ProposeRequest{
		Board:     board,
		Rack:      rack,
		TurnCount: req.TurnCount,
		Strategy:  strategy,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	var resp response.Proposal
	if move != nil {
		m := response.MoveFromBot(move)
		resp.Move = &m
	}
	response.JSON(w, http.StatusOK, resp)
}
