// internal/game/errors.go
package game

import "errors"

// Action errors returned by the engine. Validation happens before any
// mutation, so a returned error always leaves game state unchanged. None of
// these are fatal to the session; the caller may retry with corrected input.
var (
	ErrNotStarted       = errors.New("not started")
	ErrNotYourTurn      = errors.New("not your turn")
	ErrAlreadyJoined    = errors.New("already joined")
	ErrGameStarted      = errors.New("game has started")
	ErrNotEnoughPlayers = errors.New("not enough players")
	ErrOfferNotMade     = errors.New("offer not made")
	ErrCardNotValid     = errors.New("card not valid")

	// ErrInvalidSelection means a submitted card name was not in the eligible
	// set for the action (e.g. not among the drawn cards, not in hand).
	ErrInvalidSelection = errors.New("invalid selection")

	// ErrInvalidAction means the actor does not hold the card the action
	// requires.
	ErrInvalidAction = errors.New("invalid action")

	// ErrIllegalOperation means the action was attempted outside its legal
	// phase, or the game cannot currently honor it (e.g. deck exhausted).
	ErrIllegalOperation = errors.New("illegal operation")
)
