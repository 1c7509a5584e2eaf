// Package cricket - helpers.go
// Small internal helpers kept separate to keep manager.go focused.
package cricket

// snapshot returns a deep copy of the given match, copying both rosters.
// It is intended to be called under the Manager mutex.
func snapshot(m *Match) Snapshot {
	return Snapshot{
		ChatID:   m.ChatID,
		HostID:   m.HostID,
		State:    m.State,
		Score:    m.Score,
		Wickets:  m.Wickets,
		Batting:  append([]Player(nil), m.Batting...),
		Bowling:  append([]Player(nil), m.Bowling...),
		BatIndex: m.BatIndex,
	}
}

// humanBowlers filters BOT out of the bowling roster.
func humanBowlers(m *Match) []Player {
	out := make([]Player, 0, len(m.Bowling))
	for _, p := range m.Bowling {
		if p.ID != BotID {
			out = append(out, p)
		}
	}
	return out
}

// inRoster reports whether id is in the given roster.
func inRoster(roster []Player, id string) bool {
	for _, p := range roster {
		if p.ID == id {
			return true
		}
	}
	return false
}

// CurrentBowler picks whose turn it is to bowl. Humans always take
// precedence: BOT bowls only when there are zero human bowlers, never
// as part of the rotation.
func CurrentBowler(m *Match) Player {
	hs := humanBowlers(m)
	if len(hs) == 0 {
		return Player{ID: BotID, Name: BotID}
	}
	return hs[m.BowlIndex%len(hs)]
}

// CurrentBatsman picks whose turn it is to bat. Only valid while
// BatIndex < len(Batting); the caller guards the all-out case.
func CurrentBatsman(m *Match) Player {
	return m.Batting[m.BatIndex%len(m.Batting)]
}

// ValidPick reports whether n is inside the 0..MaxPick domain.
func ValidPick(n int) bool {
	return n >= 0 && n <= MaxPick
}
