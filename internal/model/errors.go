package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// Room errors
	ErrRoomNotFound   = errors.New("room not found")
	ErrRoomFull       = errors.New("room is full")
	ErrAlreadyInRoom  = errors.New("player is already in room")
	ErrNotInRoom      = errors.New("player is not in room")
	ErrNotQueued      = errors.New("player is not waiting for a match")
	ErrAlreadyPaired  = errors.New("player has already been paired")
	ErrUnknownBotType = errors.New("unknown bot strategy")

	// Match errors
	ErrMatchNotFound      = errors.New("match not found")
	ErrNeedTwoPlayers     = errors.New("a match needs exactly two players")
	ErrNotInMatch         = errors.New("player is not in this match")
	ErrNotYourTurn        = errors.New("not this player's turn")
	ErrGameOver           = errors.New("match is already over")
	ErrInvalidPosition    = errors.New("invalid board position")
	ErrInvalidGlyph       = errors.New("invalid glyph")
	ErrCellOccupied       = errors.New("cell is already occupied")
	ErrRackSlot           = errors.New("no tile in that rack slot")
	ErrWrongRow           = errors.New("tile cannot be placed on this row")
	ErrNoLetterBelow      = errors.New("diacritic must sit next to a letter")
	ErrSelectionPending   = errors.New("a glyph must be chosen for the pending tile")
	ErrNoSelectionPending = errors.New("no tile is awaiting a glyph choice")
	ErrNothingPlaced      = errors.New("no tiles placed this turn")
	ErrStaleValidation    = errors.New("turn changed while words were being validated")
	ErrStaleResult        = errors.New("turn result is older than the current state")
	ErrNotRemoteMatch     = errors.New("match does not accept remote results")

	// Placement legality
	ErrMustCoverCenter = errors.New("first move must cover the centre star")
	ErrMustConnect     = errors.New("placement must connect to existing tiles")
	ErrDoubleOverwrite = errors.New("only one existing tile may be overwritten per turn")

	// Validation
	ErrNoWordFormed         = errors.New("placement forms no word")
	ErrInvalidWord          = errors.New("word not found in dictionary")
	ErrWordValidationFailed = errors.New("word validation failed")

	// Tiles
	ErrBagInsufficient = errors.New("bag has insufficient tiles")

	// Dictionary errors
	ErrDictionaryNotLoaded = errors.New("dictionary not loaded")
)

// InvalidWordError reports which word failed validation
type InvalidWordError struct {
	Word string
}

func (e *InvalidWordError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidWord.Error(), e.Word)
}

// Is makes errors.Is(err, ErrInvalidWord) match
func (e *InvalidWordError) Is(target error) bool {
	return target == ErrInvalidWord
}
