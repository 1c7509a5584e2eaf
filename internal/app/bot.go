package app

import (
	"github.com/bwmarrin/discordgo"

	disc "github.com/jose-valero/hand-cricket-bot/internal/adapters/discord"
	"github.com/jose-valero/hand-cricket-bot/internal/cricket"
	events "github.com/jose-valero/hand-cricket-bot/internal/domain/events"
	"github.com/jose-valero/hand-cricket-bot/internal/ui"
	"github.com/jose-valero/hand-cricket-bot/pkg/config"
)

type Bot struct {
	Sess      *discordgo.Session
	Cfg       *config.Config
	Eng       *cricket.Manager
	cancelBus func()
}

func NewBot(s *discordgo.Session, cfg *config.Config) *Bot {
	b := &Bot{Sess: s, Cfg: cfg}
	// the engine owns the chat -> match table; the watchdog callback is
	// its only way back into the transport
	b.Eng = cricket.NewManager(cfg.IdleTimeout, b.onMatchExpired)
	return b
}

func (b *Bot) RegisterHandlers() {
	// 1) prefix-command router over MessageCreate (guild + DM)
	b.Sess.AddHandler(b.HandleMessage)

	// 2) bus subscribers: presence + lifecycle logging
	b.cancelBus = b.StartEventSubscribers()
}

// onMatchExpired runs on the watchdog goroutine after the match was
// already removed from the registry.
func (b *Bot) onMatchExpired(s cricket.Summary) {
	_ = disc.Send(b.Sess, s.ChatID, ui.MatchExpired(s))
	events.Publish(events.MatchEnded{ChatID: s.ChatID, Score: s.Score, Wickets: s.Wickets, Auto: true})
}

// Stop cancels the bus subscriptions (callable from main for a clean exit).
func (b *Bot) Stop() {
	if b.cancelBus != nil {
		b.cancelBus()
	}
}
