package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/kumkom/internal/api/handler"
	"github.com/mcoot/kumkom/internal/api/middleware"
	"github.com/mcoot/kumkom/internal/services/auth"
	"github.com/mcoot/kumkom/internal/services/bot"
	"github.com/mcoot/kumkom/internal/services/dictionary"
	"github.com/mcoot/kumkom/internal/services/game"
	"github.com/mcoot/kumkom/internal/services/lobby"
	"github.com/mcoot/kumkom/internal/sse"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger            *slog.Logger
	AuthService       *auth.Service
	LobbyController   *lobby.Controller
	GameController    *game.Controller
	BotService        *bot.Service
	DictionaryService *dictionary.Service
	HubManager        *sse.HubManager
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.AuthService)
	roomHandler := handler.NewRoomHandler(cfg.LobbyController)
	matchHandler := handler.NewMatchHandler(cfg.GameController, cfg.BotService, cfg.HubManager, cfg.Logger)
	botHandler := handler.NewBotHandler(cfg.BotService)
	dictionaryHandler := handler.NewDictionaryHandler(cfg.DictionaryService)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AuthService)
	optionalAuthMiddleware := middleware.OptionalAuth(cfg.AuthService)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	// Player routes (no auth required for creating guests)
	api.HandleFunc("/players/guest", playerHandler.CreateGuest).Methods(http.MethodPost)

	playerProtected := api.PathPrefix("/players").Subrouter()
	playerProtected.Use(authMiddleware)
	playerProtected.HandleFunc("/me", playerHandler.GetMe).Methods(http.MethodGet)
	playerProtected.HandleFunc("/me/session", playerHandler.Logout).Methods(http.MethodDelete)

	// Room routes (all require auth)
	rooms := api.PathPrefix("/rooms").Subrouter()
	rooms.Use(authMiddleware)
	rooms.HandleFunc("", roomHandler.Create).Methods(http.MethodPost)
	rooms.HandleFunc("/{code}", roomHandler.Get).Methods(http.MethodGet)
	rooms.HandleFunc("/{code}/join", roomHandler.Join).Methods(http.MethodPost)
	rooms.HandleFunc("/{code}/leave", roomHandler.Leave).Methods(http.MethodPost)

	matchmaking := api.PathPrefix("/matchmaking").Subrouter()
	matchmaking.Use(authMiddleware)
	matchmaking.HandleFunc("", roomHandler.FindMatch).Methods(http.MethodPost)
	matchmaking.HandleFunc("", roomHandler.CancelFind).Methods(http.MethodDelete)

	// Match routes (all require auth)
	matches := api.PathPrefix("/matches").Subrouter()
	matches.Use(authMiddleware)
	matches.HandleFunc("/bot", matchHandler.CreateBot).Methods(http.MethodPost)
	matches.HandleFunc("/{id}", matchHandler.Get).Methods(http.MethodGet)
	matches.HandleFunc("/{id}/result", matchHandler.Result).Methods(http.MethodGet)
	matches.HandleFunc("/{id}/place", matchHandler.PlaceTile).Methods(http.MethodPost)
	matches.HandleFunc("/{id}/diacritic", matchHandler.PlaceDiacritic).Methods(http.MethodPost)
	matches.HandleFunc("/{id}/selection", matchHandler.ChooseGlyph).Methods(http.MethodPost)
	matches.HandleFunc("/{id}/selection", matchHandler.CancelSelection).Methods(http.MethodDelete)
	matches.HandleFunc("/{id}/recall", matchHandler.Recall).Methods(http.MethodPost)
	matches.HandleFunc("/{id}/rack/swap", matchHandler.SwapRack).Methods(http.MethodPost)
	matches.HandleFunc("/{id}/rack/shuffle", matchHandler.ShuffleRack).Methods(http.MethodPost)
	matches.HandleFunc("/{id}/commit", matchHandler.Commit).Methods(http.MethodPost)
	matches.HandleFunc("/{id}/skip", matchHandler.Skip).Methods(http.MethodPost)
	matches.HandleFunc("/{id}/remote", matchHandler.ApplyRemote).Methods(http.MethodPost)
	matches.HandleFunc("/{id}/bot-turn", matchHandler.BotTurn).Methods(http.MethodPost)
	matches.HandleFunc("/{id}/events", matchHandler.Events).Methods(http.MethodGet)

	// Open routes; a session is picked up when present
	open := api.NewRoute().Subrouter()
	open.Use(optionalAuthMiddleware)
	open.HandleFunc("/bot/propose", botHandler.Propose).Methods(http.MethodPost)
	open.HandleFunc("/dictionary/check", dictionaryHandler.Check).Methods(http.MethodGet)
	open.HandleFunc("/dictionary/search", dictionaryHandler.Search).Methods(http.MethodGet)
	open.HandleFunc("/health", dictionaryHandler.Health).Methods(http.MethodGet)

	return r
}
