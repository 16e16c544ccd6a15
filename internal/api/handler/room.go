package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/kumkom/internal/api/middleware"
	"github.com/mcoot/kumkom/internal/api/response"
	"github.com/mcoot/kumkom/internal/model"
	"github.com/mcoot/kumkom/internal/services/lobby"
)

// RoomHandler handles room and matchmaking endpoints
type RoomHandler struct {
	lobbyController *lobby.Controller
}

// NewRoomHandler creates a new room handler
func NewRoomHandler(lobbyController *lobby.Controller) *RoomHandler {
	return &RoomHandler{lobbyController: lobbyController}
}

// Create handles POST /api/v1/rooms
func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	room, err := h.lobbyController.CreateRoom(r.Context(), *player)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.RoomFromModel(room))
}

// Get handles GET /api/v1/rooms/{code}
func (h *RoomHandler) Get(w http.ResponseWriter, r *http.Request) {
	code := model.RoomCode(mux.Vars(r)["code"])

	room, err := h.lobbyController.GetRoom(r.Context(), code)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RoomFromModel(room))
}

// Join handles POST /api/v1/rooms/{code}/join
func (h *RoomHandler) Join(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	code := model.RoomCode(mux.Vars(r)["code"])

	room, err := h.lobbyController.JoinRoom(r.Context(), code, *player)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RoomFromModel(room))
}

// Leave handles POST /api/v1/rooms/{code}/leave
func (h *RoomHandler) Leave(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	code := model.RoomCode(mux.Vars(r)["code"])

	if err := h.lobbyController.LeaveRoom(r.Context(), code, player.ID); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// FindMatch handles POST /api/v1/matchmaking. Clients poll it until the
// status turns to matched.
func (h *RoomHandler) FindMatch(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	found, err := h.lobbyController.FindMatch(r.Context(), *player)
	if err != nil {
		WriteError(w, err)
		return
	}

	status := http.StatusAccepted
	if found != nil {
		status = http.StatusOK
	}
	response.JSON(w, status, response.MatchmakingFromModel(found))
}

// CancelFind handles DELETE /api/v1/matchmaking
func (h *RoomHandler) CancelFind(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	if err := h.lobbyController.CancelFind(r.Context(), player.ID); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
