// Package ui renders every outbound message of the bot. Handlers never
// build user-facing strings themselves; they pass engine results here.
package ui

import (
	"fmt"
	"strings"

	"github.com/jose-valero/hand-cricket-bot/internal/cricket"
)

func Welcome(prefix string) string {
	return "🏏 Hand cricket! Use `" + prefix + "startmatch` in a server channel to open a match, or `" + prefix + "help` for the rules."
}

func Help(prefix string) string {
	var b strings.Builder
	b.WriteString("🏏 **Hand Cricket — commands**\n\n")
	fmt.Fprintf(&b, "`%sstartmatch` — open a match in this channel\n", prefix)
	fmt.Fprintf(&b, "`%sbat` / `%sbowl` — join the batting / bowling team\n", prefix, prefix)
	fmt.Fprintf(&b, "`%splay` — host locks the teams and play begins\n", prefix)
	fmt.Fprintf(&b, "`%sbowling <0-6>` — bowler's pick, **in DM with me**\n", prefix)
	fmt.Fprintf(&b, "`%sbatting <0-6>` — batsman's pick, in the match channel\n", prefix)
	fmt.Fprintf(&b, "`%send` — host (or a bot owner) ends the match\n\n", prefix)
	b.WriteString("Same pick = wicket, different pick = runs for the batsman. ")
	b.WriteString("If nobody joins bowling, BOT bowls for you.")
	return b.String()
}

func MatchOpened(hostName, prefix string) string {
	return fmt.Sprintf(
		"🏏 **%s** opened a match! Join with `%sbat` or `%sbowl` (11 per side). Host starts with `%splay`.",
		safe(hostName), prefix, prefix, prefix)
}

func Joined(name string, team cricket.Team) string {
	if team == cricket.TeamBatting {
		return fmt.Sprintf("✅ **%s** joins the batting team.", safe(name))
	}
	return fmt.Sprintf("✅ **%s** joins the bowling team.", safe(name))
}

// PlayLocked announces the first ball's pairing after /play.
func PlayLocked(p cricket.Pairing, prefix string) string {
	var b strings.Builder
	b.WriteString("🔒 Teams locked, play!\n")
	fmt.Fprintf(&b, "🏏 **%s** is on strike.\n", safe(p.Batsman.Name))
	b.WriteString(bowlerPrompt(p, prefix))
	return b.String()
}

// BowlTaken tells the group a human bowler has made a pick.
func BowlTaken(batsmanName, prefix string) string {
	return fmt.Sprintf("🎳 The ball is in! **%s**, play your shot: `%sbatting <0-6>`.",
		safe(batsmanName), prefix)
}

// BallReport narrates one resolved ball plus the running score line.
func BallReport(res cricket.BallResult, prefix string) string {
	var b strings.Builder

	if res.BotBowled {
		fmt.Fprintf(&b, "🤖 BOT bowls **%d**.\n", res.BowlNum)
	}
	if res.Wicket {
		fmt.Fprintf(&b, "☝️ **OUT!** %s is dismissed (%d vs %d).\n",
			safe(res.Batsman.Name), res.BatNum, res.BowlNum)
	} else {
		fmt.Fprintf(&b, "🏏 **%s** scores **%d** run(s). (bowled %d)\n",
			safe(res.Batsman.Name), res.Runs, res.BowlNum)
	}

	fmt.Fprintf(&b, "📊 Score: **%d/%d**\n", res.Score, res.Wickets)

	if res.AllOut {
		fmt.Fprintf(&b, "🏁 All out! Final score: **%d/%d**. Thanks for playing!",
			res.Score, res.Wickets)
		return b.String()
	}

	fmt.Fprintf(&b, "🏏 **%s** is on strike.\n", safe(res.Next.Batsman.Name))
	b.WriteString(bowlerPrompt(res.Next, prefix))
	return b.String()
}

func MatchEnded(s cricket.Summary) string {
	return fmt.Sprintf("🏁 Match ended. Final score: **%d/%d**.", s.Score, s.Wickets)
}

func MatchExpired(s cricket.Summary) string {
	return fmt.Sprintf("💤 Match ended automatically after inactivity. Final score: **%d/%d**.",
		s.Score, s.Wickets)
}

// Advisory is the fixed guard message for foreign traffic while a match
// is running in a group channel.
func Advisory(prefix string) string {
	return fmt.Sprintf("⚠️ A match is running here. Only `%sbatting`, `%send`, `%sstart`, `%sinfo` and `%shelp` are available.",
		prefix, prefix, prefix, prefix, prefix)
}

func DMBowlPrompt(prefix string) string {
	return fmt.Sprintf("🎳 Your turn to bowl! Send me `%sbowling <0-6>` right here.", prefix)
}

func DMBowlAccepted(n int) string {
	return fmt.Sprintf("👌 Got it, you bowled **%d**. Back to the match channel!", n)
}

func bowlerPrompt(p cricket.Pairing, prefix string) string {
	if p.BotBowling {
		return fmt.Sprintf("🤖 BOT is bowling — just send `%sbatting <0-6>` here.", prefix)
	}
	return fmt.Sprintf("🎳 **%s** is bowling — send `%sbowling <0-6>` to me **in DM**.",
		safe(p.Bowler.Name), prefix)
}
