package ui

import (
	"fmt"
	"strings"

	"github.com/jose-valero/hand-cricket-bot/internal/cricket"
)

// fallback to falsy data
func safe(s string) string {
	t := strings.TrimSpace(s)
	if t == "" || t == "-" {
		return "—"
	}
	return t
}

func bulletList(team []cricket.Player, max int) string {
	if len(team) == 0 {
		return "—"
	}
	if max > 0 && len(team) > max {
		team = team[:max]
	}
	var b strings.Builder
	for _, p := range team {
		fmt.Fprintf(&b, "• %s\n", safe(p.Name))
	}
	return strings.TrimRight(b.String(), "\n")
}

func stateLabel(s cricket.State) string {
	switch s {
	case cricket.StateJoinTeams:
		return "🧩 assembling teams"
	case cricket.StateWaitingBowler:
		return "🎳 waiting for the bowler"
	case cricket.StateWaitingBatsman:
		return "🏏 waiting for the batsman"
	}
	return "—"
}
