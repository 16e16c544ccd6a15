package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/kumkom/internal/model"
	"github.com/mcoot/kumkom/internal/services/auth"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Word    string `json:"word,omitempty"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeInvalidDisplayName  = "INVALID_DISPLAY_NAME"
	CodePlayerNotFound      = "PLAYER_NOT_FOUND"
	CodeRoomNotFound        = "ROOM_NOT_FOUND"
	CodeRoomFull            = "ROOM_FULL"
	CodeAlreadyInRoom       = "ALREADY_IN_ROOM"
	CodeNotInRoom           = "NOT_IN_ROOM"
	CodeNotQueued           = "NOT_QUEUED"
	CodeAlreadyPaired       = "ALREADY_PAIRED"
	CodeUnknownBotType      = "UNKNOWN_BOT_TYPE"
	CodeMatchNotFound       = "MATCH_NOT_FOUND"
	CodeNotInMatch          = "NOT_IN_MATCH"
	CodeNotYourTurn         = "NOT_YOUR_TURN"
	CodeGameOver            = "GAME_OVER"
	CodeInvalidPosition     = "INVALID_POSITION"
	CodeInvalidGlyph        = "INVALID_GLYPH"
	CodeCellOccupied        = "CELL_OCCUPIED"
	CodeRackSlot            = "INVALID_RACK_SLOT"
	CodeWrongRow            = "WRONG_ROW"
	CodeNoLetterBelow       = "NO_LETTER_BELOW"
	CodeSelectionPending    = "SELECTION_PENDING"
	CodeNoSelectionPending  = "NO_SELECTION_PENDING"
	CodeNothingPlaced       = "NOTHING_PLACED"
	CodeNoWordFormed        = "NO_WORD_FORMED"
	CodeInvalidWord         = "INVALID_WORD"
	CodeValidationFailed    = "WORD_VALIDATION_FAILED"
	CodeStaleValidation     = "STALE_VALIDATION"
	CodeStaleResult         = "STALE_RESULT"
	CodeNotRemoteMatch      = "NOT_REMOTE_MATCH"
	CodeBagInsufficient     = "BAG_INSUFFICIENT"
	CodeDictionaryNotLoaded = "DICTIONARY_NOT_LOADED"
	CodeInternalError       = "INTERNAL_ERROR"
	CodeServiceUnavailable  = "SERVICE_UNAVAILABLE"
	CodeNeedTwoPlayers      = "NEED_TWO_PLAYERS"
	CodeDoubleOverwrite     = "DOUBLE_OVERWRITE"
	CodeMustCoverCenter     = "MUST_COVER_CENTER"
	CodeMustConnect         = "MUST_CONNECT"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// Status returns the HTTP status an error maps to
func Status(err error) int {
	return toHTTPError(err).status
}

// mappings are checked in order; the first sentinel the error wraps wins
var mappings = []struct {
	target error
	status int
	code   string
}{
	// Placement legality
	{model.ErrMustCoverCenter, http.StatusBadRequest, CodeMustCoverCenter},
	{model.ErrMustConnect, http.StatusBadRequest, CodeMustConnect},
	{model.ErrDoubleOverwrite, http.StatusBadRequest, CodeDoubleOverwrite},
	{model.ErrInvalidPosition, http.StatusBadRequest, CodeInvalidPosition},
	{model.ErrInvalidGlyph, http.StatusBadRequest, CodeInvalidGlyph},
	{model.ErrRackSlot, http.StatusBadRequest, CodeRackSlot},
	{model.ErrWrongRow, http.StatusBadRequest, CodeWrongRow},
	{model.ErrNoLetterBelow, http.StatusBadRequest, CodeNoLetterBelow},
	{model.ErrNothingPlaced, http.StatusBadRequest, CodeNothingPlaced},
	{model.ErrNeedTwoPlayers, http.StatusBadRequest, CodeNeedTwoPlayers},
	{model.ErrUnknownBotType, http.StatusBadRequest, CodeUnknownBotType},
	{auth.ErrInvalidDisplayName, http.StatusBadRequest, CodeInvalidDisplayName},

	// Validation
	{model.ErrNoWordFormed, http.StatusUnprocessableEntity, CodeNoWordFormed},
	{model.ErrInvalidWord, http.StatusUnprocessableEntity, CodeInvalidWord},
	{model.ErrWordValidationFailed, http.StatusBadGateway, CodeValidationFailed},

	// Turn and state conflicts
	{model.ErrGameOver, http.StatusConflict, CodeGameOver},
	{model.ErrBagInsufficient, http.StatusConflict, CodeBagInsufficient},
	{model.ErrCellOccupied, http.StatusConflict, CodeCellOccupied},
	{model.ErrSelectionPending, http.StatusConflict, CodeSelectionPending},
	{model.ErrNoSelectionPending, http.StatusConflict, CodeNoSelectionPending},
	{model.ErrStaleValidation, http.StatusConflict, CodeStaleValidation},
	{model.ErrStaleResult, http.StatusConflict, CodeStaleResult},
	{model.ErrNotRemoteMatch, http.StatusConflict, CodeNotRemoteMatch},
	{model.ErrRoomFull, http.StatusConflict, CodeRoomFull},
	{model.ErrAlreadyInRoom, http.StatusConflict, CodeAlreadyInRoom},
	{model.ErrAlreadyPaired, http.StatusConflict, CodeAlreadyPaired},
	{model.ErrNotYourTurn, http.StatusForbidden, CodeNotYourTurn},
	{model.ErrNotInMatch, http.StatusForbidden, CodeNotInMatch},

	// Lookups
	{model.ErrPlayerNotFound, http.StatusNotFound, CodePlayerNotFound},
	{model.ErrRoomNotFound, http.StatusNotFound, CodeRoomNotFound},
	{model.ErrMatchNotFound, http.StatusNotFound, CodeMatchNotFound},
	{model.ErrNotInRoom, http.StatusNotFound, CodeNotInRoom},
	{model.ErrNotQueued, http.StatusNotFound, CodeNotQueued},
	{model.ErrDictionaryNotLoaded, http.StatusServiceUnavailable, CodeDictionaryNotLoaded},

	// Auth
	{auth.ErrInvalidSession, http.StatusUnauthorized, CodeUnauthorized},
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	for _, m := range mappings {
		if errors.Is(err, m.target) {
			apiErr := APIError{Code: m.code, Message: err.Error()}
			var invalid *model.InvalidWordError
			if errors.As(err, &invalid) {
				apiErr.Word = invalid.Word
			}
			return &httpError{m.status, apiErr}
		}
	}

	return &httpError{http.StatusInternalServerError, APIError{Code: CodeInternalError, Message: "Internal server error"}}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{Code: CodeInvalidRequest, Message: message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{Code: CodeUnauthorized, Message: "Authentication required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{Code: CodeInternalError, Message: "Internal server error"}}
}

// NewServiceUnavailableError reports a feature the server was started without
func NewServiceUnavailableError(message string) error {
	return &httpError{http.StatusServiceUnavailable, APIError{Code: CodeServiceUnavailable, Message: message}}
}
