package models

import "errors"

// Domain error taxonomy. Handlers map these with errors.Is; anything else is
// logged and surfaced as a generic internal error.
var (
	ErrNotFound       = errors.New("not found")
	ErrAlreadyClaimed = errors.New("task already claimed")
	ErrAlreadyInTeam  = errors.New("already in a team for this event")
	ErrTeamFull       = errors.New("team is full")
	ErrInvalidCode    = errors.New("invalid team code")
	ErrInvalidInput   = errors.New("invalid input")
)
