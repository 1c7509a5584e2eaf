// internal/app/router.go
package app

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	d "github.com/jose-valero/hand-cricket-bot/internal/adapters/discord"
	"github.com/jose-valero/hand-cricket-bot/internal/cricket"
	events "github.com/jose-valero/hand-cricket-bot/internal/domain/events"
	"github.com/jose-valero/hand-cricket-bot/internal/ui"
)

// HandleMessage is the single entry point for every guild and DM message.
func (b *Bot) HandleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	private := d.IsPrivate(m)
	name, arg, ok := parseCommand(m.Content, b.Cfg.Prefix)
	if !ok || !known[name] {
		// plain text in DM is silently ignored; a busy group channel
		// pushes back with the fixed advisory
		if !private && b.matchLocked(m.ChannelID) {
			_ = d.Send(s, m.ChannelID, ui.Advisory(b.Cfg.Prefix))
		}
		return
	}

	// global guard: once play started only a small command set survives
	if !private && b.matchLocked(m.ChannelID) && !allowedDuringPlay[name] {
		_ = d.Send(s, m.ChannelID, ui.Advisory(b.Cfg.Prefix))
		return
	}

	log.Printf("[router] /%s from %s (private=%v chat=%s)", name, m.Author.ID, private, m.ChannelID)

	switch name {

	case "start":
		_ = d.Send(s, m.ChannelID, ui.Welcome(b.Cfg.Prefix))

	case "help":
		_ = d.Send(s, m.ChannelID, ui.Help(b.Cfg.Prefix))

	case "info":
		if snap, ok := b.Eng.Get(m.ChannelID); ok {
			_, _ = s.ChannelMessageSendEmbed(m.ChannelID, ui.RenderMatchEmbed(snap))
			return
		}
		_ = d.Send(s, m.ChannelID, ui.Welcome(b.Cfg.Prefix))

	case "startmatch":
		if private {
			_ = d.Send(s, m.ChannelID, "🏏 Matches live in server channels. Try it there!")
			return
		}
		host := playerOf(m)
		if err := b.Eng.CreateMatch(m.ChannelID, host); err != nil {
			_ = d.Send(s, m.ChannelID, rejection(err, b.Cfg.Prefix))
			return
		}
		_ = d.Send(s, m.ChannelID, ui.MatchOpened(host.Name, b.Cfg.Prefix))
		events.Publish(events.MatchStarted{ChatID: m.ChannelID, HostID: host.ID})

	case "bat", "bowl":
		if private {
			_ = d.Send(s, m.ChannelID, "🏏 Team joins happen in the match channel.")
			return
		}
		team := cricket.TeamBatting
		if name == "bowl" {
			team = cricket.TeamBowling
		}
		p := playerOf(m)
		if err := b.Eng.Join(m.ChannelID, team, p); err != nil {
			_ = d.Send(s, m.ChannelID, rejection(err, b.Cfg.Prefix))
			return
		}
		_ = d.Send(s, m.ChannelID, ui.Joined(p.Name, team))

	case "play":
		if private {
			return
		}
		pr, err := b.Eng.StartPlay(m.ChannelID, m.Author.ID)
		if err != nil {
			_ = d.Send(s, m.ChannelID, rejection(err, b.Cfg.Prefix))
			return
		}
		_ = d.Send(s, m.ChannelID, ui.PlayLocked(pr, b.Cfg.Prefix))
		if !pr.BotBowling {
			_ = d.SendDM(s, pr.Bowler.ID, ui.DMBowlPrompt(b.Cfg.Prefix))
		}
		events.Publish(events.PlayLocked{ChatID: m.ChannelID})

	case "bowling":
		if !private {
			_ = d.Send(s, m.ChannelID, "🤫 Bowling picks are secret — send them to me **in DM**.")
			return
		}
		n, perr := parsePick(arg)
		if perr != nil {
			_ = d.Send(s, m.ChannelID, rejection(perr, b.Cfg.Prefix))
			return
		}
		chatID, batsman, err := b.Eng.Bowl(m.Author.ID, n)
		if err != nil {
			_ = d.Send(s, m.ChannelID, rejection(err, b.Cfg.Prefix))
			return
		}
		_ = d.Send(s, m.ChannelID, ui.DMBowlAccepted(n))
		_ = d.Send(s, chatID, ui.BowlTaken(batsman.Name, b.Cfg.Prefix))

	case "batting":
		if private {
			_ = d.Send(s, m.ChannelID, "🏏 Batting happens in the match channel, out loud.")
			return
		}
		n, perr := parsePick(arg)
		if perr != nil {
			_ = d.Send(s, m.ChannelID, rejection(perr, b.Cfg.Prefix))
			return
		}
		res, err := b.Eng.Bat(m.ChannelID, m.Author.ID, n)
		if err != nil {
			_ = d.Send(s, m.ChannelID, rejection(err, b.Cfg.Prefix))
			return
		}
		_ = d.Send(s, m.ChannelID, ui.BallReport(res, b.Cfg.Prefix))
		if res.AllOut {
			events.Publish(events.MatchEnded{ChatID: m.ChannelID, Score: res.Score, Wickets: res.Wickets})
		}

	case "end":
		if private {
			return
		}
		sum, err := b.Eng.End(m.ChannelID, m.Author.ID, d.IsOwner(m.Author.ID))
		if err != nil {
			_ = d.Send(s, m.ChannelID, rejection(err, b.Cfg.Prefix))
			return
		}
		_ = d.Send(s, m.ChannelID, ui.MatchEnded(sum))
		events.Publish(events.MatchEnded{ChatID: m.ChannelID, Score: sum.Score, Wickets: sum.Wickets})
	}
}

// matchLocked reports whether the channel owns a match that already left
// team assembly.
func (b *Bot) matchLocked(chatID string) bool {
	snap, ok := b.Eng.Get(chatID)
	return ok && snap.State != cricket.StateJoinTeams
}

// parseCommand normalizes "<prefix>Name@SomeBot arg" into ("name", "arg").
// Matching is case-insensitive and a trailing @bot qualifier is stripped.
func parseCommand(content, prefix string) (name, arg string, ok bool) {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, prefix) {
		return "", "", false
	}
	fields := strings.Fields(content[len(prefix):])
	if len(fields) == 0 {
		return "", "", false
	}
	name = strings.ToLower(fields[0])
	if at := strings.IndexByte(name, '@'); at >= 0 {
		name = name[:at]
	}
	if name == "" {
		return "", "", false
	}
	if len(fields) > 1 {
		arg = fields[1]
	}
	return name, arg, true
}

// parsePick maps the raw argument to the 0..6 pick domain. Non-numeric
// and out-of-range input both collapse to ErrBadPick so the reply text is
// identical everywhere.
func parsePick(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || !cricket.ValidPick(n) {
		return 0, cricket.ErrBadPick
	}
	return n, nil
}

// rejection maps engine errors to advisory chat text. Unknown errors fall
// through with their own message; nothing here is a fault.
func rejection(err error, prefix string) string {
	switch {
	case errors.Is(err, cricket.ErrMatchExists):
		return "⚠️ A match is already in progress in this channel."
	case errors.Is(err, cricket.ErrNoMatch):
		return "⚠️ No match here. Open one with `" + prefix + "startmatch`."
	case errors.Is(err, cricket.ErrWrongPhase):
		return "⚠️ Can't do that right now — wrong moment of the match."
	case errors.Is(err, cricket.ErrTeamFull):
		return "⚠️ That team is full (11 players max)."
	case errors.Is(err, cricket.ErrAlreadyIn):
		return "⚠️ You already joined a team."
	case errors.Is(err, cricket.ErrNotHost):
		return "⛔ Only the match host can do that."
	case errors.Is(err, cricket.ErrNoBatsmen):
		return "⚠️ Need at least one batsman before starting."
	case errors.Is(err, cricket.ErrNotYourTurn):
		return "⚠️ It's not your turn."
	case errors.Is(err, cricket.ErrBadPick):
		return "⚠️ Pick a number between **0 and 6**."
	}
	return "⚠️ " + err.Error()
}

func playerOf(m *discordgo.MessageCreate) cricket.Player {
	return cricket.Player{ID: m.Author.ID, Name: d.DisplayName(m)}
}
