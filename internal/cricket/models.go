package cricket

import "time"

// State of a match inside its chat.
type State int

const (
	StateJoinTeams      State = iota // rosters still open
	StateWaitingBowler               // waiting the bowler pick (private)
	StateWaitingBatsman              // bowler picked, waiting the batsman
)

func (s State) String() string {
	switch s {
	case StateJoinTeams:
		return "JOIN_TEAMS"
	case StateWaitingBowler:
		return "WAITING_BOWLER"
	case StateWaitingBatsman:
		return "WAITING_BATSMAN"
	}
	return "UNKNOWN"
}

// Team selects one of the two rosters.
type Team int

const (
	TeamBatting Team = iota
	TeamBowling
)

const (
	// BotID is the synthetic bowler always present in the bowling roster.
	BotID = "BOT"

	// MaxTeamSize caps each roster.
	MaxTeamSize = 11

	// MaxPick is the top of the 0..6 pick range.
	MaxPick = 6
)

// Player is a participant in a match.
type Player struct {
	ID       string    // chat platform user ID (or BotID)
	Name     string    // display name, resolved lazy on first contact
	JoinedAt time.Time // when the player joined the roster
}

// Match is one hand-cricket game bound to a single chat.
type Match struct {
	ChatID string
	HostID string

	Batting []Player // ordered, capped at MaxTeamSize
	Bowling []Player // ordered, always contains BOT, capped at MaxTeamSize

	BatIndex  int // strict position, never wraps; >= len(Batting) means all out
	BowlIndex int // wraps modulo the human bowler count

	Score   int
	Wickets int

	State State

	// BowlerNum holds the current ball's bowling pick. It is -1 exactly
	// while State != StateWaitingBatsman.
	BowlerNum       int
	CurrentBowlerID string

	CreatedAt    time.Time
	LastActivity time.Time

	idle *time.Timer // single-shot watchdog, nil once the match is destroyed
}

// Snapshot is a copy of a match safe to read outside the manager lock.
type Snapshot struct {
	ChatID   string
	HostID   string
	State    State
	Score    int
	Wickets  int
	Batting  []Player
	Bowling  []Player
	BatIndex int
}
