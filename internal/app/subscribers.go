// internal/app/subscribers.go
package app

import (
	"fmt"
	"log"
	"sync"

	events "github.com/jose-valero/hand-cricket-bot/internal/domain/events"
)

var subsOnce sync.Once
var subsCancel func() = func() {}

// StartEventSubscribers wires the lifecycle listeners exactly once:
// logging plus the bot presence line ("Playing N matches").
func (b *Bot) StartEventSubscribers() func() {
	subsOnce.Do(func() {
		var cancels []func()

		cancels = append(cancels, events.Subscribe(func(ev events.MatchStarted) {
			log.Printf("[bus] MatchStarted in %s by %s", ev.ChatID, ev.HostID)
			b.refreshPresence()
		}))

		cancels = append(cancels, events.Subscribe(func(ev events.PlayLocked) {
			log.Printf("[bus] PlayLocked in %s", ev.ChatID)
		}))

		cancels = append(cancels, events.Subscribe(func(ev events.MatchEnded) {
			how := "manual"
			if ev.Auto {
				how = "idle-timeout"
			}
			log.Printf("[bus] MatchEnded in %s (%s) final %d/%d", ev.ChatID, how, ev.Score, ev.Wickets)
			b.refreshPresence()
		}))

		log.Printf("[bus] subscribers registered (once)")
		log.Printf("[bus] counts: MatchStarted=%d MatchEnded=%d",
			events.Count[events.MatchStarted](),
			events.Count[events.MatchEnded](),
		)

		subsCancel = func() {
			for _, c := range cancels {
				c()
			}
		}
	})

	return subsCancel
}

func (b *Bot) refreshPresence() {
	n := len(b.Eng.Active())
	status := "🏏 idle — try /startmatch"
	if n > 0 {
		status = fmt.Sprintf("🏏 %d live match(es)", n)
	}
	if err := b.Sess.UpdateGameStatus(0, status); err != nil {
		log.Printf("[bus] presence update failed: %v", err)
	}
}
