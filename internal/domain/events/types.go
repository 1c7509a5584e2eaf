// Package events - types.go
package events

// MatchStarted is emitted when a hand-cricket match opens in a chat.
type MatchStarted struct {
	ChatID string
	HostID string
}

// PlayLocked is emitted when the host locks the rosters and play begins.
type PlayLocked struct {
	ChatID string
}

// MatchEnded is emitted when a match is destroyed through any path.
type MatchEnded struct {
	ChatID  string
	Score   int
	Wickets int
	Auto    bool // true when the inactivity watchdog fired
}
