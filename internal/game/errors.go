package game

import "errors"

var (
	// ErrInvalidArgument reports a malformed preset, such as a flop
	// that is not exactly three cards.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidAction reports an action outside the current legal set.
	// The hand's state is left unchanged so the caller may retry.
	ErrInvalidAction = errors.New("action not allowed")

	// ErrIllegalState reports an action submitted when none can be
	// accepted: the hand is over, or it is paused waiting for manually
	// supplied cards.
	ErrIllegalState = errors.New("no actions accepted in this state")
)
