// Package cricket - errors.go
// Centralized, comparable error values used across the manager logic.
package cricket

// gerr is a lightweight comparable error type.
// Using constants of this type allows errors.Is to work as expected.
type gerr string

func (e gerr) Error() string { return string(e) }

var (
	ErrMatchExists = gerr("a match is already in progress")
	ErrNoMatch     = gerr("no match in this chat")
	ErrWrongPhase  = gerr("wrong phase for that action")
	ErrTeamFull    = gerr("team is full")
	ErrAlreadyIn   = gerr("player already in a team")
	ErrNotHost     = gerr("only the host can do that")
	ErrNoBatsmen   = gerr("need at least one batsman to start")
	ErrNotYourTurn = gerr("not this player's turn")
	ErrBadPick     = gerr("pick must be an integer between 0 and 6")
)
