package game

import "errors"

var (
	// ErrInvalidAction is returned for actions outside 0-139 and for actions
	// the current state cannot accept.
	ErrInvalidAction = errors.New("invalid action")
	// ErrInvalidState is returned when a loaded state breaks a board invariant.
	ErrInvalidState = errors.New("invalid state")
)
